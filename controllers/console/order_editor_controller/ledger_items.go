package order_editor_controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Norvela-Retail/norvela-ops-console/ledger"
	"github.com/Norvela-Retail/norvela-ops-console/models"
	"github.com/Norvela-Retail/norvela-ops-console/session"
)

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" example:"1"` // below 1 counts as 1
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required" example:"2"`
}

// AddItem godoc
// @Summary Add a product to the order ledger
// @Description Adds the product with an explicit quantity. An existing line for the same product merges by incrementing its quantity; the unit price is captured at insertion and never re-resolved.
// @Tags Console - Order Editor
// @Accept json
// @Produce json
// @Param id path string true "Editor ID"
// @Param request body addItemRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Unknown product"
// @Failure 404 {object} models.ApiResponse "Editor not found"
// @Router /console/editors/{id}/items [post]
func AddItem(c *gin.Context) {
	editor, ok := store.Editor(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order editor not found"))
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid item payload"))
		return
	}

	if err := editor.AddItem(req.ProductID, req.Quantity); err != nil {
		if errors.Is(err, session.ErrUnknownProduct) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Product not in catalog"))
			return
		}
		log.Printf("[console.editor.items.add] editor=%s err=%v", editor.ID, err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to add item"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added", editor.State()))
}

// SetItemQuantity godoc
// @Summary Change a line item's quantity
// @Description Quantities below 1 are clamped to 1. Unit prices are not editable.
// @Tags Console - Order Editor
// @Accept json
// @Produce json
// @Param id path string true "Editor ID"
// @Param index path int true "Item position"
// @Param request body setQuantityRequest true "New quantity"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Bad index"
// @Failure 404 {object} models.ApiResponse "Editor not found"
// @Router /console/editors/{id}/items/{index} [patch]
func SetItemQuantity(c *gin.Context) {
	editor, ok := store.Editor(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order editor not found"))
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid item index"))
		return
	}

	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid quantity payload"))
		return
	}

	if err := editor.SetQuantity(index, req.Quantity); err != nil {
		if errors.Is(err, ledger.ErrIndexOutOfRange) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Item index out of range"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to update item"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Quantity updated", editor.State()))
}

// RemoveItem godoc
// @Summary Remove a line item
// @Description Removes the item at the given position; remaining items keep their order.
// @Tags Console - Order Editor
// @Produce json
// @Param id path string true "Editor ID"
// @Param index path int true "Item position"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Bad index"
// @Failure 404 {object} models.ApiResponse "Editor not found"
// @Router /console/editors/{id}/items/{index} [delete]
func RemoveItem(c *gin.Context) {
	editor, ok := store.Editor(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order editor not found"))
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid item index"))
		return
	}

	if err := editor.RemoveItem(index); err != nil {
		if errors.Is(err, ledger.ErrIndexOutOfRange) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Item index out of range"))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to remove item"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed", editor.State()))
}
