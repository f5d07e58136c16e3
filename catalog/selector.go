package catalog

import (
	"errors"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

var (
	ErrUnknownCategory    = errors.New("catalog: unknown category")
	ErrUnknownSubCategory = errors.New("catalog: unknown sub-category")
	ErrUnknownBrand       = errors.New("catalog: unknown brand")
	// ErrSubCategoryMismatch rejects a sub-category that belongs to a
	// different category than the one currently selected.
	ErrSubCategoryMismatch = errors.New("catalog: sub-category does not belong to selected category")
)

// Selector is the cascading category → sub-category → brand selection over
// one catalog snapshot. Each slot is unset ("") or set to an id. Changing
// the category clears the sub-category in the same step, so an inconsistent
// pairing is never observable. Not safe for concurrent use; the owning
// session serializes access.
type Selector struct {
	snap          *Snapshot
	categoryID    string
	subCategoryID string
	brandID       string
}

func NewSelector(snap *Snapshot) *Selector {
	return &Selector{snap: snap}
}

// SelectCategory sets or clears ("") the category slot. Any change clears
// the sub-category slot; a sub-category belongs to exactly one category.
func (s *Selector) SelectCategory(id string) error {
	if id != "" && !s.snap.HasCategory(id) {
		return ErrUnknownCategory
	}
	if id != s.categoryID {
		s.subCategoryID = ""
	}
	s.categoryID = id
	return nil
}

// SelectSubCategory sets or clears ("") the sub-category slot. When a
// category is selected the sub-category must belong to it.
func (s *Selector) SelectSubCategory(id string) error {
	if id == "" {
		s.subCategoryID = ""
		return nil
	}
	sc, ok := s.snap.SubCategory(id)
	if !ok {
		return ErrUnknownSubCategory
	}
	if s.categoryID != "" && sc.CategoryID != s.categoryID {
		return ErrSubCategoryMismatch
	}
	s.subCategoryID = id
	return nil
}

// SelectBrand sets or clears ("") the brand slot.
func (s *Selector) SelectBrand(id string) error {
	if id != "" && !s.snap.HasBrand(id) {
		return ErrUnknownBrand
	}
	s.brandID = id
	return nil
}

// Selection reports the three slots; empty string means unset.
func (s *Selector) Selection() (categoryID, subCategoryID, brandID string) {
	return s.categoryID, s.subCategoryID, s.brandID
}

// Candidates returns every product matching all currently set slots. Unset
// slots impose no constraint.
func (s *Selector) Candidates() []models.Product {
	out := make([]models.Product, 0)
	for _, p := range s.snap.Products() {
		if s.categoryID != "" && p.CategoryID != s.categoryID {
			continue
		}
		if s.subCategoryID != "" && (p.SubCategoryID == nil || *p.SubCategoryID != s.subCategoryID) {
			continue
		}
		if s.brandID != "" && (p.BrandID == nil || *p.BrandID != s.brandID) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Revalidate swaps in a fresh snapshot. A selected id that no longer exists
// reverts its slot to unset rather than dangling; this is silent, not an
// error. A surviving sub-category whose parent no longer matches the
// selected category is also unset.
func (s *Selector) Revalidate(snap *Snapshot) {
	s.snap = snap
	if s.categoryID != "" && !snap.HasCategory(s.categoryID) {
		s.categoryID = ""
		s.subCategoryID = ""
	}
	if s.subCategoryID != "" {
		sc, ok := snap.SubCategory(s.subCategoryID)
		switch {
		case !ok:
			s.subCategoryID = ""
		case s.categoryID != "" && sc.CategoryID != s.categoryID:
			s.subCategoryID = ""
		}
	}
	if s.brandID != "" && !snap.HasBrand(s.brandID) {
		s.brandID = ""
	}
}
