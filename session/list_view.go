package session

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/Norvela-Retail/norvela-ops-console/models"
	"github.com/Norvela-Retail/norvela-ops-console/query"
)

// ListState is the last applied fetch result for a list view. Seq exposes
// the issuance sequence so clients can see which filter generation they are
// looking at.
type ListState struct {
	Seq       uint64            `json:"seq"`
	Items     []json.RawMessage `json:"items"`
	Meta      models.Pagination `json:"meta"`
	Error     string            `json:"error,omitempty"`
	FetchedAt *time.Time        `json:"fetched_at,omitempty"`
}

// ListView owns one paginated list's filter state and its debounced query
// pipeline. FilterState changes only through ApplyFilterChange; results land
// through the scheduler's apply callback.
type ListView struct {
	ID       string
	Resource string

	mu      sync.RWMutex
	filters models.FilterState
	sched   *query.Scheduler
	state   ListState
	touched time.Time
}

// NewListView wires a view for one resource.
func NewListView(id string, fm models.FieldMap, compiler *query.Compiler, fetcher query.ListFetcher, opts ...query.Option) *ListView {
	v := &ListView{
		ID:       id,
		Resource: fm.Resource,
		filters:  models.FilterState{EnumFilters: map[string]string{}},
		touched:  time.Now(),
	}
	v.sched = query.NewScheduler(compiler, fm, fetcher, v.applyResult, opts...)
	return v
}

// ApplyFilterChange replaces the view's FilterState with the filter bar's
// latest payload and (re)schedules the fetch.
func (v *ListView) ApplyFilterChange(ch models.FilterChange) models.FilterState {
	fs := models.FilterStateFrom(ch)
	v.mu.Lock()
	v.filters = fs
	v.touched = time.Now()
	v.mu.Unlock()
	v.sched.Schedule(fs)
	return fs
}

// Refresh reschedules a fetch with the current filter state, e.g. after a
// mutation elsewhere invalidated the listing.
func (v *ListView) Refresh() {
	v.mu.RLock()
	fs := v.filters.Clone()
	v.mu.RUnlock()
	v.sched.Schedule(fs)
}

// State returns the last applied result.
func (v *ListView) State() ListState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Filters returns a copy of the current filter state.
func (v *ListView) Filters() models.FilterState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.filters.Clone()
}

// Close cancels any pending debounce timer and drops future results.
func (v *ListView) Close() {
	v.sched.Close()
}

func (v *ListView) lastTouched() time.Time {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.touched
}

func (v *ListView) applyResult(r query.Result) {
	v.mu.Lock()
	defer v.mu.Unlock()
	now := time.Now()
	if r.Err != nil {
		log.Printf("[console.list] %s fetch seq=%d failed: %v", v.Resource, r.Seq, r.Err)
		v.state = ListState{Seq: r.Seq, Items: v.state.Items, Meta: v.state.Meta, Error: r.Err.Error(), FetchedAt: &now}
		return
	}
	v.state = ListState{
		Seq:   r.Seq,
		Items: r.Page.Items,
		Meta: models.Pagination{
			Page:       r.Page.Page,
			Limit:      r.Page.Limit,
			Total:      r.Page.Total,
			TotalPages: r.Page.TotalPages,
		},
		FetchedAt: &now,
	}
}
