package ledger

import (
	"errors"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

// PlaceholderImage is substituted for a missing line-item image at
// submission time; the upstream validates image presence per item.
const PlaceholderImage = "https://placehold.co/300x300?text=No+Image"

var ErrIndexOutOfRange = errors.New("ledger: item index out of range")

// Ledger is the ordered collection of order line items, keyed by product
// identity: at most one item per product id exists at any time. Not safe for
// concurrent use; the owning editor session serializes access.
type Ledger struct {
	items []models.OrderItem
}

func New() *Ledger {
	return &Ledger{}
}

// FromItems builds a ledger from a fetched order payload. Duplicate product
// ids in the payload are merged on load so the uniqueness invariant holds
// from the first read.
func FromItems(items []models.OrderItem) *Ledger {
	l := New()
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		if i := l.indexOf(it.ProductID); i >= 0 {
			l.items[i].Quantity += qty
			continue
		}
		it.Quantity = qty
		l.items = append(l.items, it)
	}
	return l
}

// AddOrMerge adds a product with the given quantity. If a line for the same
// product already exists its quantity is incremented; otherwise a new line
// is appended with the product's current price captured as the unit price.
// The captured price is final — later catalog changes never reprice the
// line. Quantities below 1 count as 1.
func (l *Ledger) AddOrMerge(p models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if i := l.indexOf(p.ID); i >= 0 {
		l.items[i].Quantity += quantity
		return
	}
	l.items = append(l.items, models.OrderItem{
		ProductID: p.ID,
		Name:      p.Name,
		Image:     p.Image,
		UnitPrice: p.Price,
		Quantity:  quantity,
		BrandName: p.BrandName,
	})
}

// SetQuantity replaces the quantity of the item at index, clamped to a
// minimum of 1. Prices are not editable through the ledger.
func (l *Ledger) SetQuantity(index, quantity int) error {
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	if quantity < 1 {
		quantity = 1
	}
	l.items[index].Quantity = quantity
	return nil
}

// Remove deletes the item at index; the remaining items keep their order.
func (l *Ledger) Remove(index int) error {
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// Total is recomputed from the items on every read; it is never cached.
func (l *Ledger) Total() float64 {
	var total float64
	for _, it := range l.items {
		total += it.Extension()
	}
	return total
}

func (l *Ledger) Len() int {
	return len(l.items)
}

// Items returns a copy of the lines in order.
func (l *Ledger) Items() []models.OrderItem {
	out := make([]models.OrderItem, len(l.items))
	copy(out, l.items)
	return out
}

// SubmissionItems returns the lines ready for persistence: a missing image
// is defaulted to the placeholder rather than failing the whole save.
func (l *Ledger) SubmissionItems() []models.OrderItem {
	out := l.Items()
	for i := range out {
		if out[i].Image == "" {
			out[i].Image = PlaceholderImage
		}
	}
	return out
}

func (l *Ledger) indexOf(productID string) int {
	for i, it := range l.items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}
