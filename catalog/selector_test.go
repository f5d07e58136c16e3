package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

func strPtr(s string) *string { return &s }

func testSnapshot() *Snapshot {
	categories := []models.Category{
		{ID: "catA", Name: "Apparel"},
		{ID: "catB", Name: "Footwear"},
	}
	subCategories := []models.SubCategory{
		{ID: "subA1", Name: "Shirts", CategoryID: "catA"},
		{ID: "subA2", Name: "Trousers", CategoryID: "catA"},
		{ID: "subB1", Name: "Sneakers", CategoryID: "catB"},
	}
	brands := []models.Brand{
		{ID: "br1", Name: "Northfield"},
		{ID: "br2", Name: "Calder"},
	}
	products := []models.Product{
		{ID: "p1", Name: "Linen Shirt", CategoryID: "catA", SubCategoryID: strPtr("subA1"), BrandID: strPtr("br1"), Price: 10},
		{ID: "p2", Name: "Runner", CategoryID: "catB", SubCategoryID: strPtr("subB1"), BrandID: strPtr("br2"), Price: 20},
		{ID: "p3", Name: "Chinos", CategoryID: "catA", SubCategoryID: strPtr("subA2"), Price: 15},
		{ID: "p4", Name: "Gift Card", CategoryID: "catA", Price: 25},
	}
	return NewSnapshot(categories, subCategories, brands, products)
}

func productIDs(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestSnapshot_DenormalizesBrandNames(t *testing.T) {
	snap := testSnapshot()

	p, ok := snap.Product("p1")
	require.True(t, ok)
	require.NotNil(t, p.BrandName)
	assert.Equal(t, "Northfield", *p.BrandName)

	p3, ok := snap.Product("p3")
	require.True(t, ok)
	assert.Nil(t, p3.BrandName)
}

func TestSelector_UnsetSlotsImposeNoConstraint(t *testing.T) {
	sel := NewSelector(testSnapshot())

	assert.ElementsMatch(t, []string{"p1", "p2", "p3", "p4"}, productIDs(sel.Candidates()))
}

func TestSelector_CategoryNarrowsCandidates(t *testing.T) {
	sel := NewSelector(testSnapshot())

	require.NoError(t, sel.SelectCategory("catA"))
	assert.ElementsMatch(t, []string{"p1", "p3", "p4"}, productIDs(sel.Candidates()))

	require.NoError(t, sel.SelectSubCategory("subA1"))
	assert.ElementsMatch(t, []string{"p1"}, productIDs(sel.Candidates()))

	require.NoError(t, sel.SelectBrand("br1"))
	assert.ElementsMatch(t, []string{"p1"}, productIDs(sel.Candidates()))
}

func TestSelector_CategoryChangeClearsSubCategory(t *testing.T) {
	sel := NewSelector(testSnapshot())

	require.NoError(t, sel.SelectCategory("catA"))
	require.NoError(t, sel.SelectSubCategory("subA1"))

	require.NoError(t, sel.SelectCategory("catB"))
	cat, sub, _ := sel.Selection()
	assert.Equal(t, "catB", cat)
	assert.Equal(t, "", sub, "sub-category must reset when the category changes")
}

func TestSelector_ClearingCategoryClearsSubCategory(t *testing.T) {
	sel := NewSelector(testSnapshot())

	require.NoError(t, sel.SelectCategory("catA"))
	require.NoError(t, sel.SelectSubCategory("subA2"))
	require.NoError(t, sel.SelectCategory(""))

	cat, sub, _ := sel.Selection()
	assert.Equal(t, "", cat)
	assert.Equal(t, "", sub)
}

func TestSelector_RejectsMismatchedSubCategory(t *testing.T) {
	sel := NewSelector(testSnapshot())

	require.NoError(t, sel.SelectCategory("catA"))
	err := sel.SelectSubCategory("subB1")
	assert.ErrorIs(t, err, ErrSubCategoryMismatch)

	_, sub, _ := sel.Selection()
	assert.Equal(t, "", sub)
}

func TestSelector_RejectsUnknownIDs(t *testing.T) {
	sel := NewSelector(testSnapshot())

	assert.ErrorIs(t, sel.SelectCategory("nope"), ErrUnknownCategory)
	assert.ErrorIs(t, sel.SelectSubCategory("nope"), ErrUnknownSubCategory)
	assert.ErrorIs(t, sel.SelectBrand("nope"), ErrUnknownBrand)
}

func TestSelector_BrandIsIndependentOfCategory(t *testing.T) {
	sel := NewSelector(testSnapshot())

	require.NoError(t, sel.SelectBrand("br2"))
	require.NoError(t, sel.SelectCategory("catA"))

	_, _, brand := sel.Selection()
	assert.Equal(t, "br2", brand, "category changes leave the brand slot alone")
	assert.Empty(t, sel.Candidates(), "brand and category constraints AND together")
}

func TestSelector_RevalidateUnsetsVanishedIDs(t *testing.T) {
	sel := NewSelector(testSnapshot())
	require.NoError(t, sel.SelectCategory("catA"))
	require.NoError(t, sel.SelectSubCategory("subA1"))
	require.NoError(t, sel.SelectBrand("br1"))

	// catA survives the refetch but subA1 and br1 are gone.
	refetched := NewSnapshot(
		[]models.Category{{ID: "catA", Name: "Apparel"}},
		[]models.SubCategory{{ID: "subA2", Name: "Trousers", CategoryID: "catA"}},
		nil,
		[]models.Product{{ID: "p3", Name: "Chinos", CategoryID: "catA", SubCategoryID: strPtr("subA2")}},
	)
	sel.Revalidate(refetched)

	cat, sub, brand := sel.Selection()
	assert.Equal(t, "catA", cat)
	assert.Equal(t, "", sub)
	assert.Equal(t, "", brand)
	assert.ElementsMatch(t, []string{"p3"}, productIDs(sel.Candidates()))
}

func TestSelector_RevalidateDropsWholeCascadeWhenCategoryVanishes(t *testing.T) {
	sel := NewSelector(testSnapshot())
	require.NoError(t, sel.SelectCategory("catA"))
	require.NoError(t, sel.SelectSubCategory("subA1"))

	refetched := NewSnapshot(
		[]models.Category{{ID: "catB", Name: "Footwear"}},
		[]models.SubCategory{{ID: "subA1", Name: "Shirts", CategoryID: "catA"}},
		nil, nil,
	)
	sel.Revalidate(refetched)

	cat, sub, _ := sel.Selection()
	assert.Equal(t, "", cat)
	assert.Equal(t, "", sub)
}
