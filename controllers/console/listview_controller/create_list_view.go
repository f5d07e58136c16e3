package listview_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Norvela-Retail/norvela-ops-console/models"
	"github.com/Norvela-Retail/norvela-ops-console/query"
	"github.com/Norvela-Retail/norvela-ops-console/session"
)

type createListViewRequest struct {
	Resource string `json:"resource" binding:"required" example:"reviews"`
}

// CreateListView godoc
// @Summary Open a list view session
// @Description Creates a list view for one paginated resource (categories, sub_categories, products, reviews, orders). The view owns its filter state and debounced query pipeline until closed.
// @Tags Console - List Views
// @Accept json
// @Produce json
// @Param request body createListViewRequest true "Resource to list"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Unknown resource"
// @Router /console/views [post]
func CreateListView(c *gin.Context) {
	var req createListViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	fm, err := query.FieldMapFor(req.Resource)
	if err != nil {
		log.Printf("[console.views.create] unknown resource %q", req.Resource)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown list resource"))
		return
	}

	id := uuid.Must(uuid.NewV7()).String()
	view := session.NewListView(id, fm, compiler, fetcher,
		query.WithSettleDelay(delay), query.WithPageLimit(limit))
	store.PutView(view)

	log.Printf("[console.views.create] view=%s resource=%s", id, req.Resource)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "List view created", gin.H{
		"view_id":  id,
		"resource": req.Resource,
	}))
}
