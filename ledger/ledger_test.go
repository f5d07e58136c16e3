package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

func product(id, name string, price float64) models.Product {
	return models.Product{ID: id, Name: name, Price: price}
}

func TestLedger_AddOrMergeKeysByProduct(t *testing.T) {
	l := New()

	l.AddOrMerge(product("p1", "Shirt", 10), 2)
	l.AddOrMerge(product("p2", "Sweater", 20), 1)
	l.AddOrMerge(product("p1", "Shirt", 10), 3)

	items := l.Items()
	require.Len(t, items, 2, "adding an existing product merges instead of appending")
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, "p2", items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestLedger_CapturesPriceAtAddTime(t *testing.T) {
	l := New()
	p := product("p1", "Shirt", 10)
	l.AddOrMerge(p, 1)

	// A later catalog reprice never touches the captured unit price.
	p.Price = 99
	l.AddOrMerge(p, 1)

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, float64(10), items[0].UnitPrice)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestLedger_QuantityClampsToOne(t *testing.T) {
	l := New()
	l.AddOrMerge(product("p1", "Shirt", 10), 0)

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	require.NoError(t, l.SetQuantity(0, -3))
	assert.Equal(t, 1, l.Items()[0].Quantity)

	require.NoError(t, l.SetQuantity(0, 7))
	assert.Equal(t, 7, l.Items()[0].Quantity)
}

func TestLedger_SetQuantityAndRemoveBoundsChecked(t *testing.T) {
	l := New()
	l.AddOrMerge(product("p1", "Shirt", 10), 1)

	assert.ErrorIs(t, l.SetQuantity(1, 2), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.SetQuantity(-1, 2), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Remove(1), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.Remove(-1), ErrIndexOutOfRange)
}

func TestLedger_RemoveKeepsOrderStable(t *testing.T) {
	l := New()
	l.AddOrMerge(product("p1", "Shirt", 10), 1)
	l.AddOrMerge(product("p2", "Sweater", 20), 1)
	l.AddOrMerge(product("p3", "Trousers", 15), 1)

	require.NoError(t, l.Remove(1))

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, "p3", items[1].ProductID)
}

func TestLedger_TotalIsDerivedFromItems(t *testing.T) {
	l := New()
	l.AddOrMerge(product("p1", "Shirt", 10), 2)
	l.AddOrMerge(product("p2", "Sweater", 20), 1)
	assert.Equal(t, float64(40), l.Total())

	require.NoError(t, l.SetQuantity(0, 4))
	assert.Equal(t, float64(60), l.Total())

	require.NoError(t, l.Remove(0))
	assert.Equal(t, float64(20), l.Total())

	require.NoError(t, l.Remove(0))
	assert.Equal(t, float64(0), l.Total())
}

func TestLedger_FromItemsMergesDuplicatesOnLoad(t *testing.T) {
	l := FromItems([]models.OrderItem{
		{ProductID: "p1", Name: "Shirt", UnitPrice: 10, Quantity: 1},
		{ProductID: "p2", Name: "Sweater", UnitPrice: 20, Quantity: 0},
		{ProductID: "p1", Name: "Shirt", UnitPrice: 10, Quantity: 2},
	})

	items := l.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity, "zero quantities in the payload clamp to 1")
}

func TestLedger_SubmissionItemsDefaultMissingImage(t *testing.T) {
	l := FromItems([]models.OrderItem{
		{ProductID: "p1", Name: "Shirt", Image: "https://cdn.example.com/shirt.png", UnitPrice: 10, Quantity: 1},
		{ProductID: "p2", Name: "Sweater", UnitPrice: 20, Quantity: 1},
	})

	out := l.SubmissionItems()
	assert.Equal(t, "https://cdn.example.com/shirt.png", out[0].Image)
	assert.Equal(t, PlaceholderImage, out[1].Image)

	// The ledger's own items are untouched.
	assert.Equal(t, "", l.Items()[1].Image)
}

func TestLedger_ItemsReturnsCopy(t *testing.T) {
	l := New()
	l.AddOrMerge(product("p1", "Shirt", 10), 1)

	items := l.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, l.Items()[0].Quantity)
}

func TestLedger_EditSequenceScenario(t *testing.T) {
	l := New()
	l.AddOrMerge(product("p1", "Linen Shirt", 10), 2)
	l.AddOrMerge(product("p2", "Runner", 20), 1)
	assert.Equal(t, float64(40), l.Total())

	require.NoError(t, l.Remove(0))

	items := l.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
	assert.Equal(t, float64(20), l.Total())
}
