package models

import (
	"log"
	"strconv"
	"strings"
	"time"
)

// FilterChange is the payload the presentational filter bar emits on every
// change. It is the sole input to a list view's FilterState; controllers never
// look at the request beyond this shape.
type FilterChange struct {
	Search    string     `json:"search"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Status    *string    `json:"status,omitempty"`
	Rating    *string    `json:"rating,omitempty"`
}

// FilterState is the sparse filter state owned by one list view. It lives for
// the view's lifetime and is replaced wholesale on every FilterChange.
type FilterState struct {
	Search      string
	StartDate   *time.Time
	EndDate     *time.Time
	EnumFilters map[string]string
}

// FilterStateFrom maps a filter-bar payload into a fresh FilterState.
func FilterStateFrom(ch FilterChange) FilterState {
	fs := FilterState{
		Search:      strings.TrimSpace(ch.Search),
		StartDate:   ch.StartDate,
		EndDate:     ch.EndDate,
		EnumFilters: map[string]string{},
	}
	if ch.Status != nil && *ch.Status != "" {
		fs.EnumFilters["status"] = *ch.Status
	}
	if ch.Rating != nil && *ch.Rating != "" {
		fs.EnumFilters["rating"] = *ch.Rating
	}
	return fs
}

// Clone returns an independent copy; the scheduler holds one so later changes
// cannot race a pending compile.
func (f FilterState) Clone() FilterState {
	out := f
	out.EnumFilters = make(map[string]string, len(f.EnumFilters))
	for k, v := range f.EnumFilters {
		out.EnumFilters[k] = v
	}
	return out
}

// IsZero reports whether no filter is set at all.
func (f FilterState) IsZero() bool {
	return f.Search == "" && f.StartDate == nil && f.EndDate == nil && len(f.EnumFilters) == 0
}

// EnumMapping maps one UI filter value onto the stored value(s) it stands
// for. Some UI values span more than one stored literal because status
// strings were written inconsistently elsewhere in the system; the mapping
// table carries that as data instead of hard-coding the alternation.
type EnumMapping struct {
	Field   string
	Numeric bool
	Values  map[string][]string
}

// StoredValues resolves a UI value. Unknown values pass through unchanged so
// a new status literal still filters by exact match.
func (m EnumMapping) StoredValues(uiValue string) []string {
	if vals, ok := m.Values[uiValue]; ok {
		return vals
	}
	return []string{uiValue}
}

// ParseValue converts a single stored value for the wire. Numeric mappings
// (the rating filter) go out as integers.
func (m EnumMapping) ParseValue(v string) any {
	if m.Numeric {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return v
}

// RelatedLookup declares that the search term should also be resolved against
// an already-loaded related collection, contributing an id-set clause on
// Field for every record whose name matches.
type RelatedLookup struct {
	Field      string
	Collection string
}

// FieldMap is the per-resource compile configuration: which fields the free
// search fans out over, where dates and enums land, and whether the
// "<digit> star" shortcut applies.
type FieldMap struct {
	Resource       string
	TextFields     []string
	RelatedLookups []RelatedLookup
	DateField      string
	RatingField    string
	EnumFilters    map[string]EnumMapping
}

// Validate flags mappings whose UI value fans out over several stored
// literals; that alternation papers over inconsistent writes and should be
// visible in the logs rather than silently perpetuated.
func (fm FieldMap) Validate() {
	for key, mapping := range fm.EnumFilters {
		for uiValue, stored := range mapping.Values {
			if len(stored) > 1 {
				log.Printf("[filters] %s: %s=%q spans %d stored literals %v (inconsistent source data)",
					fm.Resource, key, uiValue, len(stored), stored)
			}
		}
	}
}
