package services

import (
	"context"

	"logistics/internal/core/domain/model/directory"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

// HubProvider looks hubs up by business key. A nil aggregate with a nil
// error means the key is unknown.
type HubProvider interface {
	GetByKey(ctx context.Context, key string) (*directory.Hub, error)
}

// RouteProvider looks routes up by business key. A nil aggregate with a nil
// error means the key is unknown.
type RouteProvider interface {
	GetByKey(ctx context.Context, key string) (*directory.Route, error)
}

// DirectoryResolver is a domain service that checks hub and route references
// against the directory before a shipment is allowed to point at them.
//
// Business rules:
//   - A shipment may only reference hub and route keys that exist.
//   - References are validated at assignment time; a hub later going into
//     maintenance does not invalidate shipments already assigned to it.
//   - An unknown key is a distinct failure from a malformed request: the
//     request was well-formed, the world just does not contain that entity.
//
// Example usage:
//
//	resolver := services.NewDirectoryResolver(hubs, routes)
//	if err := resolver.AssignHub(ctx, shipment, "HUB-SEA-01"); err != nil {
//	    var unknownErr *errs.UnknownReferenceError
//	    if errors.As(err, &unknownErr) {
//	        // The key does not name an existing hub
//	    }
//	    return err
//	}
type DirectoryResolver struct {
	hubs   HubProvider
	routes RouteProvider
}

// NewDirectoryResolver creates a resolver over the given directory lookups.
func NewDirectoryResolver(hubs HubProvider, routes RouteProvider) DirectoryResolver {
	return DirectoryResolver{hubs: hubs, routes: routes}
}

// ResolveHub returns the hub named by key, or UnknownReference if the
// directory has no such hub.
func (d DirectoryResolver) ResolveHub(ctx context.Context, key string) (*directory.Hub, error) {
	if key == "" {
		return nil, errs.NewValueIsRequiredError("hubKey")
	}

	hub, err := d.hubs.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if hub == nil {
		return nil, errs.NewUnknownReferenceError("hub", key)
	}

	return hub, nil
}

// ResolveRoute returns the route named by key, or UnknownReference if the
// directory has no such route.
func (d DirectoryResolver) ResolveRoute(ctx context.Context, key string) (*directory.Route, error) {
	if key == "" {
		return nil, errs.NewValueIsRequiredError("routeKey")
	}

	route, err := d.routes.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, errs.NewUnknownReferenceError("route", key)
	}

	return route, nil
}

// AssignHub resolves the hub key and, on success, points the shipment at it.
// The shipment is untouched when resolution fails.
func (d DirectoryResolver) AssignHub(ctx context.Context, sh *shipment.Shipment, key string) error {
	if err := sh.Validate(); err != nil {
		return err
	}

	hub, err := d.ResolveHub(ctx, key)
	if err != nil {
		return err
	}

	return sh.AssignHub(hub.Key())
}

// AssignRoute resolves the route key and, on success, points the shipment
// at it. The shipment is untouched when resolution fails.
func (d DirectoryResolver) AssignRoute(ctx context.Context, sh *shipment.Shipment, key string) error {
	if err := sh.Validate(); err != nil {
		return err
	}

	route, err := d.ResolveRoute(ctx, key)
	if err != nil {
		return err
	}

	return sh.AssignRoute(route.Key())
}
