package listview_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

// ChangeFilters godoc
// @Summary Apply a filter change to a list view
// @Description Replaces the view's filter state with the filter bar's latest payload. The fetch is debounced; poll the view state for the applied result.
// @Tags Console - List Views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param change body models.FilterChange true "Filter bar payload"
// @Success 202 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 404 {object} models.ApiResponse "View not found"
// @Router /console/views/{id}/filters [patch]
func ChangeFilters(c *gin.Context) {
	id := c.Param("id")
	view, ok := store.View(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "List view not found"))
		return
	}

	var change models.FilterChange
	if err := c.ShouldBindJSON(&change); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid filter payload"))
		return
	}

	fs := view.ApplyFilterChange(change)
	log.Printf("[console.views.filters] view=%s search=%q enums=%d", id, fs.Search, len(fs.EnumFilters))

	c.JSON(http.StatusAccepted, models.SuccessResponse(c, "Filter change scheduled", gin.H{
		"view_id": id,
	}))
}
