package catalog

import (
	"time"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

// Snapshot is a read-only view of the catalog as of one fetch. It is shared
// by reference and never mutated; a refresh builds a new Snapshot and the
// selector revalidates against it.
type Snapshot struct {
	fetchedAt     time.Time
	categories    map[string]models.Category
	subCategories map[string]models.SubCategory
	brands        map[string]models.Brand
	products      []models.Product
}

// NewSnapshot indexes the fetched collections. Brand names are denormalized
// onto products here so ledger lines can carry them without another lookup.
func NewSnapshot(categories []models.Category, subCategories []models.SubCategory, brands []models.Brand, products []models.Product) *Snapshot {
	s := &Snapshot{
		fetchedAt:     time.Now(),
		categories:    make(map[string]models.Category, len(categories)),
		subCategories: make(map[string]models.SubCategory, len(subCategories)),
		brands:        make(map[string]models.Brand, len(brands)),
		products:      make([]models.Product, len(products)),
	}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	for _, sc := range subCategories {
		s.subCategories[sc.ID] = sc
	}
	for _, b := range brands {
		s.brands[b.ID] = b
	}
	copy(s.products, products)
	for i := range s.products {
		p := &s.products[i]
		if p.BrandID != nil {
			if b, ok := s.brands[*p.BrandID]; ok {
				name := b.Name
				p.BrandName = &name
			}
		}
	}
	return s
}

func (s *Snapshot) FetchedAt() time.Time { return s.fetchedAt }

func (s *Snapshot) HasCategory(id string) bool {
	_, ok := s.categories[id]
	return ok
}

func (s *Snapshot) HasBrand(id string) bool {
	_, ok := s.brands[id]
	return ok
}

func (s *Snapshot) SubCategory(id string) (models.SubCategory, bool) {
	sc, ok := s.subCategories[id]
	return sc, ok
}

func (s *Snapshot) Product(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Products returns the full product list. Callers must treat it as
// read-only.
func (s *Snapshot) Products() []models.Product {
	return s.products
}

// Categories returns the categories keyed by id, for presentational listing.
func (s *Snapshot) Categories() []models.Category {
	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out
}

// SubCategoriesOf lists the sub-categories belonging to one category.
func (s *Snapshot) SubCategoriesOf(categoryID string) []models.SubCategory {
	var out []models.SubCategory
	for _, sc := range s.subCategories {
		if sc.CategoryID == categoryID {
			out = append(out, sc)
		}
	}
	return out
}
