package listview_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

// GetListState godoc
// @Summary Read a list view's current state
// @Description Returns the most recent applied fetch result. Superseded fetches never appear here; seq identifies the applied filter generation.
// @Tags Console - List Views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "View not found"
// @Router /console/views/{id} [get]
func GetListState(c *gin.Context) {
	id := c.Param("id")
	view, ok := store.View(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "List view not found"))
		return
	}

	state := view.State()
	meta := state.Meta
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "List state retrieved", state, &meta))
}
