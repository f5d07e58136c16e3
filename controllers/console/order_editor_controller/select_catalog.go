package order_editor_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvela-Retail/norvela-ops-console/catalog"
	"github.com/Norvela-Retail/norvela-ops-console/models"
	"github.com/Norvela-Retail/norvela-ops-console/session"
)

type selectRequest struct {
	Level string `json:"level" binding:"required,oneof=category sub_category brand" example:"category"`
	ID    string `json:"id"` // empty clears the slot
}

// SelectCatalog godoc
// @Summary Change one cascading selection slot
// @Description Sets or clears the category, sub-category or brand slot. Changing the category clears the sub-category in the same step.
// @Tags Console - Order Editor
// @Accept json
// @Produce json
// @Param id path string true "Editor ID"
// @Param request body selectRequest true "Slot change"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Unknown id or mismatched sub-category"
// @Failure 404 {object} models.ApiResponse "Editor not found"
// @Router /console/editors/{id}/selection [post]
func SelectCatalog(c *gin.Context) {
	editor, ok := store.Editor(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order editor not found"))
		return
	}

	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid selection payload"))
		return
	}

	if err := editor.Select(session.SelectionLevel(req.Level), req.ID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrSubCategoryMismatch):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Sub-category does not belong to the selected category"))
		case errors.Is(err, catalog.ErrUnknownCategory),
			errors.Is(err, catalog.ErrUnknownSubCategory),
			errors.Is(err, catalog.ErrUnknownBrand):
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown catalog id"))
		default:
			log.Printf("[console.editor.select] editor=%s err=%v", editor.ID, err)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid selection"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Selection updated", editor.State()))
}
