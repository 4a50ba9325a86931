// Package handler implements the HTTP handlers for the item catalog API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into concern-specific files (health.go, item.go, export.go)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/nward/catalog-api/internal/domain"
)

// ItemServicer defines the business operations the item handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ItemServicer interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	GetByID(ctx context.Context, id int64) (domain.Item, error)
	List(ctx context.Context, f domain.ItemFilter, p domain.PaginationParams) ([]domain.Item, int64, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// Exporter defines the export operation the export handler depends on.
type Exporter interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Pinger reports database reachability for the readiness probe.
// *pgxpool.Pool satisfies it directly.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandler(server, nil).
// Methods are in concern-specific files but all operate on this struct.
type Server struct {
	items  ItemServicer
	export Exporter
	db     Pinger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(items ItemServicer, export Exporter, db Pinger) *Server {
	return &Server{items: items, export: export, db: db}
}

// NewHealthHandler returns a Server for health-check-only use.
// Keeps handler tests that only exercise /healthz free of mock wiring.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}
