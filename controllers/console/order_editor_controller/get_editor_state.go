package order_editor_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

// GetEditorState godoc
// @Summary Read the order editor's current state
// @Description Returns the staged order, the ledger items and the derived total (always recomputed from the items).
// @Tags Console - Order Editor
// @Produce json
// @Param id path string true "Editor ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Editor not found"
// @Router /console/editors/{id} [get]
func GetEditorState(c *gin.Context) {
	editor, ok := store.Editor(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order editor not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Editor state retrieved", editor.State()))
}
