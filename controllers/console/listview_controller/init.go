package listview_controller

import (
	"errors"
	"time"

	"github.com/Norvela-Retail/norvela-ops-console/query"
	"github.com/Norvela-Retail/norvela-ops-console/session"
)

var (
	store    *session.Store
	compiler *query.Compiler
	fetcher  query.ListFetcher
	delay    time.Duration
	limit    int
)

// Init wires the controller's collaborators. Must be called before routes
// are registered.
func Init(s *session.Store, c *query.Compiler, f query.ListFetcher, settleDelay time.Duration, pageLimit int) error {
	if s == nil || c == nil || f == nil {
		return errors.New("listview_controller: nil dependency")
	}
	store = s
	compiler = c
	fetcher = f
	delay = settleDelay
	limit = pageLimit
	return nil
}
