package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Norvela-Retail/norvela-ops-console/controllers/console/listview_controller"
	"github.com/Norvela-Retail/norvela-ops-console/controllers/console/order_editor_controller"
)

// SetupConsoleRoutes registers the console session endpoints. Controllers
// must be initialized via their Init funcs first.
func SetupConsoleRoutes(rg *gin.RouterGroup) {
	views := rg.Group("/views")
	{
		views.POST("", listview_controller.CreateListView)
		views.GET("/:id", listview_controller.GetListState)
		views.PATCH("/:id/filters", listview_controller.ChangeFilters)
		views.DELETE("/:id", listview_controller.CloseListView)
	}

	rg.POST("/orders/:orderId/editor", order_editor_controller.OpenOrderEditor)

	editors := rg.Group("/editors")
	{
		editors.GET("/:id", order_editor_controller.GetEditorState)
		editors.PATCH("/:id", order_editor_controller.UpdateOrderFields)
		editors.POST("/:id/selection", order_editor_controller.SelectCatalog)
		editors.GET("/:id/candidates", order_editor_controller.GetCandidates)
		editors.POST("/:id/items", order_editor_controller.AddItem)
		editors.PATCH("/:id/items/:index", order_editor_controller.SetItemQuantity)
		editors.DELETE("/:id/items/:index", order_editor_controller.RemoveItem)
		editors.POST("/:id/save", order_editor_controller.SaveOrder)
		editors.POST("/:id/catalog/refresh", order_editor_controller.RefreshCatalog)
		editors.GET("/:id/invoice", order_editor_controller.DownloadOrderInvoicePDF)
	}
}
