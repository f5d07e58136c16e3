package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Norvela-Retail/norvela-ops-console/catalog"
	"github.com/Norvela-Retail/norvela-ops-console/ledger"
	"github.com/Norvela-Retail/norvela-ops-console/models"
)

var (
	// ErrEmptyOrder blocks saving an order with no line items; the persist
	// call is never made.
	ErrEmptyOrder = errors.New("session: order has no items")
	// ErrUnknownProduct rejects adding a product id absent from the catalog
	// snapshot.
	ErrUnknownProduct = errors.New("session: product not in catalog")
)

// CatalogFetcher loads whole catalog collections for the editor's snapshot.
type CatalogFetcher interface {
	FetchAll(ctx context.Context, resource string, out any) error
}

// OrderUpdater persists a fully recomputed order.
type OrderUpdater interface {
	UpdateOrder(ctx context.Context, orderID string, upd models.OrderUpdate) (*models.Order, error)
}

// OrderEditor is one order-editing session: the fetched order, a catalog
// snapshot with its cascading selector, and the line-item ledger. All
// mutations go through the editor's mutex; the ledger and selector
// themselves are single-owner.
type OrderEditor struct {
	ID string

	mu      sync.Mutex
	order   models.Order
	snap    *catalog.Snapshot
	sel     *catalog.Selector
	led     *ledger.Ledger
	fetcher CatalogFetcher
	updater OrderUpdater
	touched time.Time
}

// OpenOrderEditor loads the catalog snapshot and seeds the ledger from the
// order payload.
func OpenOrderEditor(ctx context.Context, id string, order models.Order, fetcher CatalogFetcher, updater OrderUpdater) (*OrderEditor, error) {
	snap, err := loadSnapshot(ctx, fetcher)
	if err != nil {
		return nil, err
	}
	return &OrderEditor{
		ID:      id,
		order:   order,
		snap:    snap,
		sel:     catalog.NewSelector(snap),
		led:     ledger.FromItems(order.Items),
		fetcher: fetcher,
		updater: updater,
		touched: time.Now(),
	}, nil
}

func loadSnapshot(ctx context.Context, fetcher CatalogFetcher) (*catalog.Snapshot, error) {
	var (
		categories    []models.Category
		subCategories []models.SubCategory
		brands        []models.Brand
		products      []models.Product
	)
	if err := fetcher.FetchAll(ctx, "categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if err := fetcher.FetchAll(ctx, "sub_categories", &subCategories); err != nil {
		return nil, fmt.Errorf("failed to load sub-categories: %w", err)
	}
	if err := fetcher.FetchAll(ctx, "brands", &brands); err != nil {
		return nil, fmt.Errorf("failed to load brands: %w", err)
	}
	if err := fetcher.FetchAll(ctx, "products", &products); err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return catalog.NewSnapshot(categories, subCategories, brands, products), nil
}

// SelectionLevel names one selector slot.
type SelectionLevel string

const (
	LevelCategory    SelectionLevel = "category"
	LevelSubCategory SelectionLevel = "sub_category"
	LevelBrand       SelectionLevel = "brand"
)

// Select applies one slot change to the cascading selector.
func (e *OrderEditor) Select(level SelectionLevel, id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touched = time.Now()
	switch level {
	case LevelCategory:
		return e.sel.SelectCategory(id)
	case LevelSubCategory:
		return e.sel.SelectSubCategory(id)
	case LevelBrand:
		return e.sel.SelectBrand(id)
	default:
		return fmt.Errorf("session: unknown selection level %q", level)
	}
}

// Candidates lists the products matching the current selection. Selecting a
// candidate does not touch the ledger; adding is a separate, explicit step.
func (e *OrderEditor) Candidates() []models.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sel.Candidates()
}

// AddItem adds a catalog product to the ledger with an explicit quantity.
func (e *OrderEditor) AddItem(productID string, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touched = time.Now()
	p, ok := e.snap.Product(productID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	e.led.AddOrMerge(p, quantity)
	return nil
}

func (e *OrderEditor) SetQuantity(index, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touched = time.Now()
	return e.led.SetQuantity(index, quantity)
}

func (e *OrderEditor) RemoveItem(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touched = time.Now()
	return e.led.Remove(index)
}

// SetShipping updates the editable shipping fields.
func (e *OrderEditor) SetShipping(address, phone string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touched = time.Now()
	if address != "" {
		e.order.ShippingAddress = address
	}
	if phone != "" {
		e.order.ShippingPhone = phone
	}
}

// SetStatus updates the order status staged for the next save.
func (e *OrderEditor) SetStatus(status string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.touched = time.Now()
	if status != "" {
		e.order.Status = status
	}
}

// EditorState is the editor's current view for the UI.
type EditorState struct {
	Order         models.Order       `json:"order"`
	Items         []models.OrderItem `json:"items"`
	Total         float64            `json:"total"`
	CategoryID    string             `json:"category_id,omitempty"`
	SubCategoryID string             `json:"sub_category_id,omitempty"`
	BrandID       string             `json:"brand_id,omitempty"`
}

// State snapshots the session. Total always comes from the ledger; the
// stored order total is informational once any item has been touched.
func (e *OrderEditor) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	cat, sub, brand := e.sel.Selection()
	return EditorState{
		Order:         e.order,
		Items:         e.led.Items(),
		Total:         e.led.Total(),
		CategoryID:    cat,
		SubCategoryID: sub,
		BrandID:       brand,
	}
}

// Save validates locally, recomputes the total from the ledger and submits
// the whole order. An empty ledger never reaches the updater.
func (e *OrderEditor) Save(ctx context.Context) (*models.Order, error) {
	e.mu.Lock()
	if e.led.Len() == 0 {
		e.mu.Unlock()
		return nil, ErrEmptyOrder
	}
	upd := models.OrderUpdate{
		Status:          e.order.Status,
		ShippingAddress: e.order.ShippingAddress,
		ShippingPhone:   e.order.ShippingPhone,
		Items:           e.led.SubmissionItems(),
		TotalAmount:     e.led.Total(),
	}
	orderID := e.order.ID
	e.mu.Unlock()

	saved, err := e.updater.UpdateOrder(ctx, orderID, upd)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.order = *saved
	e.led = ledger.FromItems(saved.Items)
	e.touched = time.Now()
	e.mu.Unlock()
	return saved, nil
}

// RefreshCatalog refetches the snapshot and revalidates the selection:
// selected ids missing from the new snapshot silently revert to unset.
func (e *OrderEditor) RefreshCatalog(ctx context.Context) error {
	snap, err := loadSnapshot(ctx, e.fetcher)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.snap = snap
	e.sel.Revalidate(snap)
	e.touched = time.Now()
	return nil
}

// InvoiceData returns what the invoice renderer needs.
func (e *OrderEditor) InvoiceData() (models.Order, []models.OrderItem, float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.order, e.led.Items(), e.led.Total()
}

func (e *OrderEditor) lastTouched() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.touched
}
