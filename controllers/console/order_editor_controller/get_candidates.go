package order_editor_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

// GetCandidates godoc
// @Summary List candidate products for the current selection
// @Description Products matching every set selection slot; unset slots impose no constraint. Listing candidates never mutates the ledger.
// @Tags Console - Order Editor
// @Produce json
// @Param id path string true "Editor ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Editor not found"
// @Router /console/editors/{id}/candidates [get]
func GetCandidates(c *gin.Context) {
	editor, ok := store.Editor(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order editor not found"))
		return
	}

	candidates := editor.Candidates()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Candidates retrieved", gin.H{
		"candidates": candidates,
		"count":      len(candidates),
	}))
}
