package upstream

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

type staticCreds string

func (s staticCreds) Token(ctx context.Context) (string, error) { return string(s), nil }

func TestClient_ListSerializesFilterAndSortAsJSON(t *testing.T) {
	var gotURL string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(Page{Page: 1, Limit: 10, Total: 0})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, staticCreds("tok-123"))

	var filter models.QueryPredicate
	filter.Add(models.Equals("status", "pending"))
	_, err := c.List(context.Background(), "orders", ListQuery{
		Filter: filter,
		Sort:   SortDescending,
		Page:   1,
		Limit:  10,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+gotURL, nil)
	require.NoError(t, err)
	params := req.URL.Query()

	assert.JSONEq(t, `{"status":"pending"}`, params.Get("filter"))
	assert.JSONEq(t, `{"created_at":-1}`, params.Get("sort"))
	assert.Equal(t, "1", params.Get("page"))
	assert.Equal(t, "10", params.Get("limit"))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_ListEmptyFilterSerializesAsEmptyObject(t *testing.T) {
	var gotFilter string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filter")
		json.NewEncoder(w).Encode(Page{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.List(context.Background(), "reviews", ListQuery{Sort: SortDescending, Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "{}", gotFilter, "an empty predicate still travels as {}")
}

func TestClient_ListPropagatesUpstreamErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.List(context.Background(), "orders", ListQuery{Page: 1, Limit: 10})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_FetchAllDecodesWholeResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery, "catalog fetches carry no filter")
		json.NewEncoder(w).Encode([]models.Category{{ID: "c1", Name: "Apparel"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	var categories []models.Category
	require.NoError(t, c.FetchAll(context.Background(), "categories", &categories))

	require.Len(t, categories, 1)
	assert.Equal(t, "c1", categories[0].ID)
}

func TestClient_GetOrderNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.GetOrder(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_UpdateOrderNeverSendsCreatedAt(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		json.NewEncoder(w).Encode(models.Order{ID: "o1", Status: "shipped", TotalAmount: 40})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	saved, err := c.UpdateOrder(context.Background(), "o1", models.OrderUpdate{
		Status:          "shipped",
		ShippingAddress: "12 Mill Lane",
		ShippingPhone:   "555-0101",
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Shirt", Image: "img", UnitPrice: 10, Quantity: 2},
		},
		TotalAmount: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/orders/o1", gotPath)
	assert.NotContains(t, gotBody, "created_at")
	assert.NotContains(t, gotBody, "updated_at")
	assert.Equal(t, "shipped", gotBody["status"])
	assert.Equal(t, float64(20), gotBody["total_amount"])
	assert.Equal(t, "shipped", saved.Status)
}

func TestClient_UpdateOrderNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	_, err := c.UpdateOrder(context.Background(), "missing", models.OrderUpdate{})

	assert.ErrorIs(t, err, ErrNotFound)
}
