package ports

import (
	"context"

	"logistics/internal/core/domain/model/directory"
)

// HubRepository defines the persistence contract for hub aggregates.
type HubRepository interface {
	// Add persists a new hub. Returns DuplicateValue when the business key
	// is already taken.
	Add(ctx context.Context, aggregate *directory.Hub) error

	// Update persists changes to an existing hub.
	Update(ctx context.Context, aggregate *directory.Hub) error

	// GetByKey retrieves a hub by business key, or nil with a nil error
	// when the key is unknown. The directory resolver turns the nil into
	// an UnknownReference at the point of use.
	GetByKey(ctx context.Context, key string) (*directory.Hub, error)

	// GetAll retrieves every hub, ordered by key.
	GetAll(ctx context.Context) ([]*directory.Hub, error)
}

// RouteRepository defines the persistence contract for route aggregates.
type RouteRepository interface {
	// Add persists a new route. Returns DuplicateValue when the business
	// key is already taken.
	Add(ctx context.Context, aggregate *directory.Route) error

	// GetByKey retrieves a route by business key, or nil with a nil error
	// when the key is unknown.
	GetByKey(ctx context.Context, key string) (*directory.Route, error)

	// GetAll retrieves every route, ordered by key.
	GetAll(ctx context.Context) ([]*directory.Route, error)
}
