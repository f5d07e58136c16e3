package query

import (
	"fmt"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

// Resolver collection names the field maps refer to.
const (
	CollectionProducts  = "products"
	CollectionCustomers = "customers"
)

// statusActiveValues: "Active" in the filter bar has to match both stored
// literals because older records were written with the lowercase form. Kept
// as mapping data; FieldMap.Validate logs the inconsistency on startup.
var statusActiveValues = []string{"Active", "active"}

// FieldMaps returns the per-resource compile configurations for every
// paginated list view the console serves.
func FieldMaps() map[string]models.FieldMap {
	maps := map[string]models.FieldMap{
		"categories": {
			Resource:   "categories",
			TextFields: []string{"name", "description"},
			DateField:  "created_at",
			EnumFilters: map[string]models.EnumMapping{
				"status": {
					Field: "status",
					Values: map[string][]string{
						"Active":   statusActiveValues,
						"Inactive": {"Inactive"},
					},
				},
			},
		},
		"sub_categories": {
			Resource:   "sub_categories",
			TextFields: []string{"name", "description"},
			DateField:  "created_at",
			EnumFilters: map[string]models.EnumMapping{
				"status": {
					Field: "status",
					Values: map[string][]string{
						"Active":   statusActiveValues,
						"Inactive": {"Inactive"},
					},
				},
			},
		},
		"products": {
			Resource:   "products",
			TextFields: []string{"name", "description"},
			DateField:  "created_at",
			EnumFilters: map[string]models.EnumMapping{
				"status": {
					Field: "status",
					Values: map[string][]string{
						"Active":   statusActiveValues,
						"Inactive": {"Inactive"},
					},
				},
			},
		},
		"reviews": {
			Resource:    "reviews",
			TextFields:  []string{"comment", "status"},
			RatingField: "rating",
			DateField:   "created_at",
			RelatedLookups: []models.RelatedLookup{
				{Field: "product_id", Collection: CollectionProducts},
				{Field: "user_id", Collection: CollectionCustomers},
			},
			EnumFilters: map[string]models.EnumMapping{
				"status": {
					Field: "status",
					Values: map[string][]string{
						"Active": statusActiveValues,
						"Hidden": {"Hidden"},
					},
				},
				"rating": {Field: "rating", Numeric: true},
			},
		},
		"orders": {
			Resource:   "orders",
			TextFields: []string{"order_number", "shipping_address", "shipping_phone"},
			DateField:  "created_at",
			RelatedLookups: []models.RelatedLookup{
				{Field: "user_id", Collection: CollectionCustomers},
			},
			EnumFilters: map[string]models.EnumMapping{
				"status": {
					Field: "status",
					Values: map[string][]string{
						"pending":    {"pending"},
						"processing": {"processing"},
						"shipped":    {"shipped"},
						"completed":  {"completed"},
						"cancelled":  {"cancelled"},
					},
				},
			},
		},
	}
	return maps
}

// FieldMapFor looks up the compile configuration for a resource.
func FieldMapFor(resource string) (models.FieldMap, error) {
	fm, ok := FieldMaps()[resource]
	if !ok {
		return models.FieldMap{}, fmt.Errorf("no list view configuration for resource %q", resource)
	}
	return fm, nil
}
