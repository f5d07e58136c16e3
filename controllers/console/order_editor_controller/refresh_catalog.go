package order_editor_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

// RefreshCatalog godoc
// @Summary Refetch the editor's catalog snapshot
// @Description Replaces the snapshot and revalidates the cascading selection: selected ids missing from the new snapshot silently revert to unset.
// @Tags Console - Order Editor
// @Produce json
// @Param id path string true "Editor ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Editor not found"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /console/editors/{id}/catalog/refresh [post]
func RefreshCatalog(c *gin.Context) {
	editor, ok := store.Editor(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order editor not found"))
		return
	}

	if err := editor.RefreshCatalog(c.Request.Context()); err != nil {
		log.Printf("[console.editor.refresh] editor=%s err=%v", editor.ID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to refresh catalog"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog refreshed", editor.State()))
}
