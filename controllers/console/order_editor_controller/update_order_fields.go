package order_editor_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

type updateOrderFieldsRequest struct {
	Status          *string `json:"status" binding:"omitempty,oneof=pending processing shipped completed cancelled"`
	ShippingAddress *string `json:"shipping_address"`
	ShippingPhone   *string `json:"shipping_phone"`
}

// UpdateOrderFields godoc
// @Summary Stage order header changes
// @Description Updates the status and shipping fields staged for the next save. Totals are never editable; they always come from the ledger.
// @Tags Console - Order Editor
// @Accept json
// @Produce json
// @Param id path string true "Editor ID"
// @Param request body updateOrderFieldsRequest true "Fields to stage"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid payload"
// @Failure 404 {object} models.ApiResponse "Editor not found"
// @Router /console/editors/{id} [patch]
func UpdateOrderFields(c *gin.Context) {
	editor, ok := store.Editor(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order editor not found"))
		return
	}

	var req updateOrderFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid payload"))
		return
	}

	if req.Status != nil {
		editor.SetStatus(*req.Status)
	}
	address, phone := "", ""
	if req.ShippingAddress != nil {
		address = *req.ShippingAddress
	}
	if req.ShippingPhone != nil {
		phone = *req.ShippingPhone
	}
	if address != "" || phone != "" {
		editor.SetShipping(address, phone)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fields staged", editor.State()))
}
