package listview_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

// CloseListView godoc
// @Summary Close a list view session
// @Description Removes the view and cancels any pending debounce timer. In-flight fetches resolve but no longer touch state.
// @Tags Console - List Views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} models.ApiResponse
// @Router /console/views/{id} [delete]
func CloseListView(c *gin.Context) {
	id := c.Param("id")
	store.CloseView(id)
	log.Printf("[console.views.close] view=%s", id)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "List view closed", nil))
}
