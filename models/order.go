package models

import "time"

// OrderItem is one product-quantity-price line in an order. Identity is
// ProductID; a ledger never holds two items for the same product. UnitPrice
// is the catalog price captured when the line was added — later catalog
// changes never reprice an existing line.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	BrandName *string `json:"brand_name,omitempty"`
}

// Extension is this line's contribution to the order total.
func (it OrderItem) Extension() float64 {
	return it.UnitPrice * float64(it.Quantity)
}

// Order as fetched from the upstream API. TotalAmount on a fetched record is
// informational only; the console recomputes it from the items before every
// save.
type Order struct {
	ID              string      `json:"id"`
	OrderNumber     string      `json:"order_number,omitempty"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	ShippingPhone   string      `json:"shipping_phone"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderUpdate is the full payload sent on save. The struct deliberately has
// no created_at field: the upstream rejects it, so it cannot leak onto the
// wire. TotalAmount is always the recomputed ledger total.
type OrderUpdate struct {
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	ShippingPhone   string      `json:"shipping_phone"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
}
