package session

import (
	"log"
	"sync"
	"time"
)

// DefaultTTL is how long an untouched session survives before the store
// evicts it. Eviction closes list views so their pending timers are
// cancelled.
const DefaultTTL = 30 * time.Minute

// Store holds every live console session. It is the single application-state
// container: nothing session-scoped lives in package globals.
type Store struct {
	ttl time.Duration

	mu      sync.RWMutex
	views   map[string]*ListView
	editors map[string]*OrderEditor
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		ttl:     ttl,
		views:   map[string]*ListView{},
		editors: map[string]*OrderEditor{},
	}
}

func (s *Store) PutView(v *ListView) {
	s.sweep()
	s.mu.Lock()
	s.views[v.ID] = v
	s.mu.Unlock()
}

func (s *Store) View(id string) (*ListView, bool) {
	s.mu.RLock()
	v, ok := s.views[id]
	s.mu.RUnlock()
	if ok && time.Since(v.lastTouched()) > s.ttl {
		s.CloseView(id)
		return nil, false
	}
	return v, ok
}

// CloseView removes the view and cancels its pending timer.
func (s *Store) CloseView(id string) {
	s.mu.Lock()
	v, ok := s.views[id]
	delete(s.views, id)
	s.mu.Unlock()
	if ok {
		v.Close()
	}
}

func (s *Store) PutEditor(e *OrderEditor) {
	s.sweep()
	s.mu.Lock()
	s.editors[e.ID] = e
	s.mu.Unlock()
}

func (s *Store) Editor(id string) (*OrderEditor, bool) {
	s.mu.RLock()
	e, ok := s.editors[id]
	s.mu.RUnlock()
	if ok && time.Since(e.lastTouched()) > s.ttl {
		s.CloseEditor(id)
		return nil, false
	}
	return e, ok
}

func (s *Store) CloseEditor(id string) {
	s.mu.Lock()
	delete(s.editors, id)
	s.mu.Unlock()
}

// sweep evicts expired sessions opportunistically on writes.
func (s *Store) sweep() {
	s.mu.Lock()
	var expiredViews []*ListView
	for id, v := range s.views {
		if time.Since(v.lastTouched()) > s.ttl {
			expiredViews = append(expiredViews, v)
			delete(s.views, id)
		}
	}
	var evictedEditors int
	for id, e := range s.editors {
		if time.Since(e.lastTouched()) > s.ttl {
			delete(s.editors, id)
			evictedEditors++
		}
	}
	s.mu.Unlock()

	for _, v := range expiredViews {
		v.Close()
	}
	if len(expiredViews) > 0 || evictedEditors > 0 {
		log.Printf("[session.store] evicted %d views %d editors", len(expiredViews), evictedEditors)
	}
}
