package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norvela-Retail/norvela-ops-console/catalog"
	"github.com/Norvela-Retail/norvela-ops-console/ledger"
	"github.com/Norvela-Retail/norvela-ops-console/models"
)

func strPtr(s string) *string { return &s }

// fakeUpstream serves canned catalog collections and records order updates.
type fakeUpstream struct {
	categories    []models.Category
	subCategories []models.SubCategory
	brands        []models.Brand
	products      []models.Product

	updateCalls int
	lastUpdate  models.OrderUpdate
	updateErr   error
}

func (f *fakeUpstream) FetchAll(ctx context.Context, resource string, out any) error {
	switch resource {
	case "categories":
		*out.(*[]models.Category) = f.categories
	case "sub_categories":
		*out.(*[]models.SubCategory) = f.subCategories
	case "brands":
		*out.(*[]models.Brand) = f.brands
	case "products":
		*out.(*[]models.Product) = f.products
	default:
		return errors.New("unknown resource " + resource)
	}
	return nil
}

func (f *fakeUpstream) UpdateOrder(ctx context.Context, orderID string, upd models.OrderUpdate) (*models.Order, error) {
	f.updateCalls++
	f.lastUpdate = upd
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.Order{
		ID:              orderID,
		Status:          upd.Status,
		ShippingAddress: upd.ShippingAddress,
		ShippingPhone:   upd.ShippingPhone,
		Items:           upd.Items,
		TotalAmount:     upd.TotalAmount,
	}, nil
}

func catalogFixture() *fakeUpstream {
	return &fakeUpstream{
		categories: []models.Category{
			{ID: "catA", Name: "Apparel"},
			{ID: "catB", Name: "Footwear"},
		},
		subCategories: []models.SubCategory{
			{ID: "subA1", Name: "Shirts", CategoryID: "catA"},
		},
		brands: []models.Brand{
			{ID: "br1", Name: "Northfield"},
		},
		products: []models.Product{
			{ID: "p1", Name: "Linen Shirt", CategoryID: "catA", SubCategoryID: strPtr("subA1"), BrandID: strPtr("br1"), Price: 10},
			{ID: "p2", Name: "Runner", CategoryID: "catB", Price: 20},
		},
	}
}

func openEditor(t *testing.T, up *fakeUpstream, order models.Order) *OrderEditor {
	t.Helper()
	e, err := OpenOrderEditor(context.Background(), "editor-1", order, up, up)
	require.NoError(t, err)
	return e
}

func TestOrderEditor_SeedsLedgerFromOrder(t *testing.T) {
	up := catalogFixture()
	e := openEditor(t, up, models.Order{
		ID: "o1",
		Items: []models.OrderItem{
			{ProductID: "p1", Name: "Linen Shirt", UnitPrice: 10, Quantity: 2},
		},
		TotalAmount: 999, // stale stored total, ignored
	})

	st := e.State()
	require.Len(t, st.Items, 1)
	assert.Equal(t, float64(20), st.Total, "total derives from the items, not the stored amount")
}

func TestOrderEditor_AddItemRequiresCatalogProduct(t *testing.T) {
	up := catalogFixture()
	e := openEditor(t, up, models.Order{ID: "o1"})

	assert.ErrorIs(t, e.AddItem("ghost", 1), ErrUnknownProduct)

	require.NoError(t, e.AddItem("p1", 2))
	require.NoError(t, e.AddItem("p1", 1))

	st := e.State()
	require.Len(t, st.Items, 1, "same product merges into one line")
	assert.Equal(t, 3, st.Items[0].Quantity)
	assert.Equal(t, float64(30), st.Total)
}

func TestOrderEditor_AddItemCapturesBrandName(t *testing.T) {
	up := catalogFixture()
	e := openEditor(t, up, models.Order{ID: "o1"})

	require.NoError(t, e.AddItem("p1", 1))

	item := e.State().Items[0]
	require.NotNil(t, item.BrandName)
	assert.Equal(t, "Northfield", *item.BrandName)
}

func TestOrderEditor_SelectionCascadeAndCandidates(t *testing.T) {
	up := catalogFixture()
	e := openEditor(t, up, models.Order{ID: "o1"})

	require.NoError(t, e.Select(LevelCategory, "catA"))
	require.NoError(t, e.Select(LevelSubCategory, "subA1"))

	candidates := e.Candidates()
	require.Len(t, candidates, 1)
	assert.Equal(t, "p1", candidates[0].ID)

	// Changing the category drops the now-invalid sub-category.
	require.NoError(t, e.Select(LevelCategory, "catB"))
	st := e.State()
	assert.Equal(t, "catB", st.CategoryID)
	assert.Equal(t, "", st.SubCategoryID)

	// Browsing candidates never touched the ledger.
	assert.Empty(t, st.Items)
}

func TestOrderEditor_SelectRejectsUnknownLevel(t *testing.T) {
	up := catalogFixture()
	e := openEditor(t, up, models.Order{ID: "o1"})

	assert.Error(t, e.Select("warehouse", "x"))
	assert.ErrorIs(t, e.Select(LevelCategory, "nope"), catalog.ErrUnknownCategory)
}

func TestOrderEditor_SaveRejectsEmptyLedgerBeforeNetwork(t *testing.T) {
	up := catalogFixture()
	e := openEditor(t, up, models.Order{ID: "o1"})

	_, err := e.Save(context.Background())
	assert.ErrorIs(t, err, ErrEmptyOrder)
	assert.Equal(t, 0, up.updateCalls, "validation failure must not reach the updater")
}

func TestOrderEditor_SaveRecomputesTotalAndDefaultsImages(t *testing.T) {
	up := catalogFixture()
	e := openEditor(t, up, models.Order{
		ID:          "o1",
		Status:      "pending",
		TotalAmount: 999,
	})
	require.NoError(t, e.AddItem("p1", 2)) // p1 has no image in the fixture
	require.NoError(t, e.AddItem("p2", 1))
	e.SetStatus("shipped")
	e.SetShipping("12 Mill Lane", "555-0101")

	saved, err := e.Save(context.Background())
	require.NoError(t, err)

	require.Equal(t, 1, up.updateCalls)
	assert.Equal(t, float64(40), up.lastUpdate.TotalAmount, "total is recomputed from the ledger")
	assert.Equal(t, "shipped", up.lastUpdate.Status)
	assert.Equal(t, "12 Mill Lane", up.lastUpdate.ShippingAddress)
	for _, it := range up.lastUpdate.Items {
		assert.NotEmpty(t, it.Image, "missing images default before submission")
	}
	assert.Equal(t, ledger.PlaceholderImage, up.lastUpdate.Items[0].Image)

	// The editor adopts the saved order as its new baseline.
	assert.Equal(t, float64(40), saved.TotalAmount)
	assert.Equal(t, "shipped", e.State().Order.Status)
}

func TestOrderEditor_SaveErrorLeavesSessionIntact(t *testing.T) {
	up := catalogFixture()
	up.updateErr = errors.New("upstream down")
	e := openEditor(t, up, models.Order{ID: "o1", Status: "pending"})
	require.NoError(t, e.AddItem("p1", 1))

	_, err := e.Save(context.Background())
	require.Error(t, err)

	st := e.State()
	require.Len(t, st.Items, 1, "a failed save keeps the staged items")
	assert.Equal(t, "pending", st.Order.Status)
}

func TestOrderEditor_RefreshCatalogRevalidatesSelection(t *testing.T) {
	up := catalogFixture()
	e := openEditor(t, up, models.Order{ID: "o1"})
	require.NoError(t, e.Select(LevelCategory, "catA"))
	require.NoError(t, e.Select(LevelSubCategory, "subA1"))
	require.NoError(t, e.Select(LevelBrand, "br1"))

	// The sub-category and brand vanish upstream before the refresh.
	up.subCategories = nil
	up.brands = nil
	require.NoError(t, e.RefreshCatalog(context.Background()))

	st := e.State()
	assert.Equal(t, "catA", st.CategoryID)
	assert.Equal(t, "", st.SubCategoryID)
	assert.Equal(t, "", st.BrandID)
}

func TestOrderEditor_InvoiceDataMirrorsLedger(t *testing.T) {
	up := catalogFixture()
	e := openEditor(t, up, models.Order{ID: "o1", OrderNumber: "N-100"})
	require.NoError(t, e.AddItem("p2", 2))

	order, items, total := e.InvoiceData()
	assert.Equal(t, "N-100", order.OrderNumber)
	require.Len(t, items, 1)
	assert.Equal(t, float64(40), total)
}
