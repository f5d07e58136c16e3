package models

import "time"

// Category is a top-level catalog grouping.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubCategory belongs to exactly one category.
type SubCategory struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CategoryID string    `json:"category_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Brand is a flat catalog dimension; products may or may not carry one.
type Brand struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Variant is a priced option of a product, valid inside a time window.
type Variant struct {
	Label         string     `json:"label"`
	Price         float64    `json:"price"`
	OriginalPrice float64    `json:"original_price"`
	ValidFrom     *time.Time `json:"valid_from,omitempty"`
	ValidTo       *time.Time `json:"valid_to,omitempty"`
}

// Product is one sellable catalog entry. The catalog is fetched as a
// read-only snapshot; nothing in the console mutates products.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Image         string    `json:"image"`
	CategoryID    string    `json:"category_id"`
	SubCategoryID *string   `json:"sub_category_id,omitempty"`
	BrandID       *string   `json:"brand_id,omitempty"`
	BrandName     *string   `json:"brand_name,omitempty"` // denormalized by the snapshot
	Price         float64   `json:"price"`
	MRP           float64   `json:"mrp"`
	Status        string    `json:"status"`
	Variants      []Variant `json:"variants,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Review is a customer product review; the reviews list view searches these.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
