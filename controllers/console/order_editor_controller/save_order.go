package order_editor_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvela-Retail/norvela-ops-console/models"
	"github.com/Norvela-Retail/norvela-ops-console/session"
	"github.com/Norvela-Retail/norvela-ops-console/upstream"
)

// SaveOrder godoc
// @Summary Persist the edited order
// @Description Submits the whole order with the ledger's recomputed total. An empty ledger is rejected locally and never reaches the upstream; missing line-item images are defaulted to a placeholder.
// @Tags Console - Order Editor
// @Produce json
// @Param id path string true "Editor ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Editor not found"
// @Failure 422 {object} models.ApiResponse "Order has no items"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /console/editors/{id}/save [post]
func SaveOrder(c *gin.Context) {
	editor, ok := store.Editor(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order editor not found"))
		return
	}

	saved, err := editor.Save(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyOrder):
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, "Cannot save an order with no items"))
		case errors.Is(err, upstream.ErrNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order no longer exists"))
		default:
			log.Printf("[console.editor.save] editor=%s err=%v", editor.ID, err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to save order"))
		}
		return
	}

	log.Printf("[console.editor.save] editor=%s order=%s total=%.2f items=%d",
		editor.ID, saved.ID, saved.TotalAmount, len(saved.Items))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order saved", saved))
}
