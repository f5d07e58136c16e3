package query

import (
	"strings"
	"sync"
)

// CrossCollectionResolver resolves a free-text search term against a related
// collection that is already loaded in memory, returning the ids of matching
// records. The upstream API cannot join and text-search across collections in
// one call, so this join happens on our side against whatever snapshot is
// resident. If the collection has not loaded (or has gone stale) the match is
// empty or stale; that is an accepted trade-off, not an error.
type CrossCollectionResolver interface {
	MatchIDs(collection, term string) []string
}

// NamedRecord is the minimal shape the resolver indexes.
type NamedRecord struct {
	ID   string
	Name string
}

// CollectionIndex is an in-memory CrossCollectionResolver fed by whole
// collection loads. Safe for concurrent use.
type CollectionIndex struct {
	mu          sync.RWMutex
	collections map[string][]NamedRecord
}

func NewCollectionIndex() *CollectionIndex {
	return &CollectionIndex{collections: map[string][]NamedRecord{}}
}

// Load replaces a collection wholesale.
func (x *CollectionIndex) Load(collection string, records []NamedRecord) {
	copied := make([]NamedRecord, len(records))
	copy(copied, records)
	x.mu.Lock()
	x.collections[collection] = copied
	x.mu.Unlock()
}

// MatchIDs returns ids of records whose name contains term,
// case-insensitively. An unloaded collection matches nothing.
func (x *CollectionIndex) MatchIDs(collection, term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	x.mu.RLock()
	defer x.mu.RUnlock()
	var ids []string
	for _, r := range x.collections[collection] {
		if strings.Contains(strings.ToLower(r.Name), term) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}
