package query

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Norvela-Retail/norvela-ops-console/models"
)

// starPattern recognizes terms like "5 star" / "4 stars". A match adds an
// exact rating clause to the search disjunction on views that declare a
// rating field. Domain convenience, not general tokenization.
var starPattern = regexp.MustCompile(`(?i)^\s*([0-9])\s*stars?\s*$`)

// Compiler turns a FilterState into a QueryPredicate for one resource.
// Compilation is pure: the same state and field map always produce the same
// predicate.
type Compiler struct {
	resolver CrossCollectionResolver
}

// NewCompiler builds a compiler. resolver may be nil, in which case related
// lookups contribute nothing.
func NewCompiler(resolver CrossCollectionResolver) *Compiler {
	return &Compiler{resolver: resolver}
}

// Compile builds the predicate: the search term fans out as a disjunction
// over the view's text fields, related-id lookups, and the star shortcut;
// enum and date-range filters are conjoined with it, never merged into it.
// An empty FilterState compiles to the empty predicate.
func (c *Compiler) Compile(fs models.FilterState, fm models.FieldMap) models.QueryPredicate {
	var q models.QueryPredicate

	if term := strings.TrimSpace(fs.Search); term != "" {
		q.Add(c.searchClause(term, fm))
	}

	for _, key := range sortedKeys(fs.EnumFilters) {
		mapping, ok := fm.EnumFilters[key]
		if !ok {
			continue
		}
		q.Add(enumClause(mapping, fs.EnumFilters[key]))
	}

	if fm.DateField != "" && (fs.StartDate != nil || fs.EndDate != nil) {
		q.Add(models.DateRange(fm.DateField, fs.StartDate, fs.EndDate))
	}

	return q
}

func (c *Compiler) searchClause(term string, fm models.FieldMap) models.Clause {
	var parts []models.Clause

	for _, field := range fm.TextFields {
		parts = append(parts, models.Contains(field, term))
	}

	if c.resolver != nil {
		for _, rl := range fm.RelatedLookups {
			if ids := c.resolver.MatchIDs(rl.Collection, term); len(ids) > 0 {
				parts = append(parts, models.In(rl.Field, ids))
			}
		}
	}

	if fm.RatingField != "" {
		if m := starPattern.FindStringSubmatch(term); m != nil {
			rating, _ := strconv.Atoi(m[1])
			parts = append(parts, models.Equals(fm.RatingField, rating))
		}
	}

	switch len(parts) {
	case 0:
		return models.Clause{}
	case 1:
		return parts[0]
	default:
		return models.Or(parts...)
	}
}

// enumClause compiles one UI enum value. A value that maps onto several
// stored literals becomes an $in alternation so records written with either
// literal still match.
func enumClause(mapping models.EnumMapping, uiValue string) models.Clause {
	stored := mapping.StoredValues(uiValue)
	if len(stored) == 1 {
		return models.Equals(mapping.Field, mapping.ParseValue(stored[0]))
	}
	if mapping.Numeric {
		parts := make([]models.Clause, 0, len(stored))
		for _, v := range stored {
			parts = append(parts, models.Equals(mapping.Field, mapping.ParseValue(v)))
		}
		return models.Or(parts...)
	}
	return models.In(mapping.Field, stored)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
