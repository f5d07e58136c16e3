package models

import (
	"encoding/json"
	"sort"
	"time"
)

// Clause is a single predicate node in the upstream's filter syntax: one
// field condition or one operator group ($or). A QueryPredicate is the
// conjunction of its clauses.
type Clause map[string]any

// Equals matches records whose field equals value exactly.
func Equals(field string, value any) Clause {
	return Clause{field: value}
}

// In matches records whose field equals any of the given values.
func In(field string, values []string) Clause {
	return Clause{field: map[string]any{"$in": values}}
}

// Contains matches records whose field contains term as a case-insensitive
// substring.
func Contains(field, term string) Clause {
	return Clause{field: map[string]any{"$regex": term, "$options": "i"}}
}

// DateRange matches records whose field falls inside the given bounds.
// Nil bounds are open ends; both nil yields an empty clause.
func DateRange(field string, gte, lte *time.Time) Clause {
	bounds := map[string]any{}
	if gte != nil {
		bounds["$gte"] = gte.UTC().Format(time.RFC3339)
	}
	if lte != nil {
		bounds["$lte"] = lte.UTC().Format(time.RFC3339)
	}
	if len(bounds) == 0 {
		return Clause{}
	}
	return Clause{field: bounds}
}

// Or groups clauses into a disjunction.
func Or(clauses ...Clause) Clause {
	return Clause{"$or": clauses}
}

// QueryPredicate is the conjunction of zero or more clauses. Zero clauses is
// the empty predicate and matches every record.
type QueryPredicate struct {
	clauses []Clause
}

// Add appends a clause to the conjunction. Empty clauses are dropped.
func (q *QueryPredicate) Add(c Clause) {
	if len(c) == 0 {
		return
	}
	q.clauses = append(q.clauses, c)
}

func (q QueryPredicate) IsEmpty() bool {
	return len(q.clauses) == 0
}

// Document renders the conjunction as a single filter document. Clauses are
// merged by key; if two clauses constrain the same field the whole predicate
// falls back to an explicit {"$and": [...]} so no condition is lost.
func (q QueryPredicate) Document() map[string]any {
	doc := map[string]any{}
	for _, c := range q.clauses {
		for k, v := range c {
			if _, dup := doc[k]; dup {
				return q.andDocument()
			}
			doc[k] = v
		}
	}
	return doc
}

func (q QueryPredicate) andDocument() map[string]any {
	parts := make([]Clause, len(q.clauses))
	copy(parts, q.clauses)
	sort.Slice(parts, func(i, j int) bool { return firstKey(parts[i]) < firstKey(parts[j]) })
	return map[string]any{"$and": parts}
}

func firstKey(c Clause) string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// MarshalJSON serializes the predicate document. encoding/json emits map keys
// in sorted order, so compiling the same FilterState twice produces
// byte-identical output.
func (q QueryPredicate) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.Document())
}
