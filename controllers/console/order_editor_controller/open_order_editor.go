package order_editor_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Norvela-Retail/norvela-ops-console/models"
	"github.com/Norvela-Retail/norvela-ops-console/session"
	"github.com/Norvela-Retail/norvela-ops-console/upstream"
)

// OpenOrderEditor godoc
// @Summary Open an order editor session
// @Description Fetches the order and a fresh catalog snapshot, seeds the line-item ledger from the order payload and returns the editor id.
// @Tags Console - Order Editor
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 201 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 502 {object} models.ApiResponse "Upstream failure"
// @Router /console/orders/{orderId}/editor [post]
func OpenOrderEditor(c *gin.Context) {
	orderID := c.Param("orderId")
	log.Printf("[console.editor.open] order=%s", orderID)

	order, err := api.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[console.editor.open] failed to fetch order: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch order"))
		return
	}

	id := uuid.Must(uuid.NewV7()).String()
	editor, err := session.OpenOrderEditor(c.Request.Context(), id, *order, api, api)
	if err != nil {
		log.Printf("[console.editor.open] failed to load catalog: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to load catalog"))
		return
	}
	store.PutEditor(editor)

	log.Printf("[console.editor.open] editor=%s order=%s items=%d", id, orderID, len(order.Items))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order editor opened", editor.State()))
}
