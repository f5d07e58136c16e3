package order_editor_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norvela-Retail/norvela-ops-console/models"
	"github.com/Norvela-Retail/norvela-ops-console/services"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download the edited order's invoice PDF
// @Description Renders an invoice from the ledger as currently staged: items and total reflect unsaved edits, not the stored record.
// @Tags Console - Order Editor
// @Produce octet-stream
// @Param id path string true "Editor ID"
// @Success 200 "PDF file"
// @Failure 404 {object} models.ApiResponse "Editor not found"
// @Failure 500 {object} models.ApiResponse "Render failure"
// @Router /console/editors/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	editor, ok := store.Editor(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order editor not found"))
		return
	}

	order, items, total := editor.InvoiceData()
	buf, err := services.BuildOrderInvoicePDF(order, items, total)
	if err != nil {
		log.Printf("[console.editor.invoice] editor=%s err=%v", editor.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to render invoice"))
		return
	}

	label := order.OrderNumber
	if label == "" {
		label = order.ID
	}
	filename := fmt.Sprintf("invoice-%s.pdf", label)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())

	log.Printf("[console.editor.invoice] editor=%s order=%s", editor.ID, order.ID)
}
