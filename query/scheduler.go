package query

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Norvela-Retail/norvela-ops-console/models"
	"github.com/Norvela-Retail/norvela-ops-console/upstream"
)

// DefaultSettleDelay is how long a burst of filter changes must stay quiet
// before a fetch is issued.
const DefaultSettleDelay = 500 * time.Millisecond

const fetchTimeout = 15 * time.Second

// ListFetcher executes a compiled query against a paginated list resource.
type ListFetcher interface {
	List(ctx context.Context, resource string, q upstream.ListQuery) (*upstream.Page, error)
}

// Result is one fetch outcome tagged with its issuance sequence.
type Result struct {
	Seq  uint64
	Page *upstream.Page
	Err  error
}

// Scheduler debounces filter changes for one list view. Every Schedule call
// restarts a single pending timer; when the timer fires the latest state is
// compiled and fetched with the fixed recency sort and page reset to 1.
// Fetches carry a monotonic sequence number; a response whose sequence is
// not the latest issued is discarded, so out-of-order arrivals can never
// overwrite fresher results. The underlying request is not aborted — only
// its effect on state is suppressed.
type Scheduler struct {
	compiler *Compiler
	fieldMap models.FieldMap
	fetcher  ListFetcher
	apply    func(Result)
	delay    time.Duration
	limit    int

	mu      sync.Mutex
	latest  models.FilterState
	timer   *time.Timer
	seq     uint64 // last issued
	applied uint64 // last delivered to apply
	closed  bool
}

// Option tunes a Scheduler.
type Option func(*Scheduler)

// WithSettleDelay overrides the debounce window.
func WithSettleDelay(d time.Duration) Option {
	return func(s *Scheduler) { s.delay = d }
}

// WithPageLimit overrides the fetch page size.
func WithPageLimit(limit int) Option {
	return func(s *Scheduler) { s.limit = limit }
}

// NewScheduler wires a scheduler for one view. apply is invoked (off the
// caller's goroutine) with every non-superseded result, errors included.
func NewScheduler(compiler *Compiler, fm models.FieldMap, fetcher ListFetcher, apply func(Result), opts ...Option) *Scheduler {
	s := &Scheduler{
		compiler: compiler,
		fieldMap: fm,
		fetcher:  fetcher,
		apply:    apply,
		delay:    DefaultSettleDelay,
		limit:    10,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule records the newest filter state and restarts the settling timer.
func (s *Scheduler) Schedule(fs models.FilterState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.latest = fs.Clone()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.fire)
}

// Cancel stops any pending timer without closing the scheduler. In-flight
// fetches still resolve and, if not superseded, apply.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Close cancels the pending timer and drops every future result. Called when
// the owning view goes away.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// fire compiles the state as of now, not as of scheduling.
func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	fs := s.latest.Clone()
	s.seq++
	seq := s.seq
	limit := s.limit
	s.mu.Unlock()

	predicate := s.compiler.Compile(fs, s.fieldMap)
	q := upstream.ListQuery{
		Filter: predicate,
		Sort:   upstream.SortDescending,
		Page:   1,
		Limit:  limit,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		page, err := s.fetcher.List(ctx, s.fieldMap.Resource, q)
		s.deliver(Result{Seq: seq, Page: page, Err: err})
	}()
}

func (s *Scheduler) deliver(r Result) {
	s.mu.Lock()
	if s.closed || r.Seq != s.seq || r.Seq <= s.applied {
		// Superseded by a later issuance; dropped silently.
		s.mu.Unlock()
		if r.Err != nil {
			log.Printf("[query.scheduler] superseded fetch seq=%d for %s failed: %v", r.Seq, s.fieldMap.Resource, r.Err)
		}
		return
	}
	s.applied = r.Seq
	apply := s.apply
	s.mu.Unlock()

	apply(r)
}
