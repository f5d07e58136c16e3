package order_editor_controller

import (
	"context"
	"errors"

	"github.com/Norvela-Retail/norvela-ops-console/models"
	"github.com/Norvela-Retail/norvela-ops-console/session"
)

// UpstreamAPI is the slice of the upstream client the order editor needs.
type UpstreamAPI interface {
	session.CatalogFetcher
	session.OrderUpdater
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
}

var (
	store *session.Store
	api   UpstreamAPI
)

// Init wires the controller's collaborators. Must be called before routes
// are registered.
func Init(s *session.Store, upstreamAPI UpstreamAPI) error {
	if s == nil || upstreamAPI == nil {
		return errors.New("order_editor_controller: nil dependency")
	}
	store = s
	api = upstreamAPI
	return nil
}
