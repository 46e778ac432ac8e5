package directory

import (
	"errors"
	"slices"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route instance was not
	// created through NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")
)

// Route is an ordered sequence of hubs a shipment travels along.
//
// Like hubs, routes carry a short human-assigned business key such as
// "RT-SEA-PDX" that shipments reference. The hub keys on a route are stored
// as keys, not resolved aggregates; whether they exist is checked at
// assignment time by the directory resolver.
type Route struct {
	id        kernel.UUID
	key       string
	name      string
	hubKeys   []string
	createdAt time.Time

	isConstructed bool
}

// NewRoute creates a route through the given hubs, in travel order.
func NewRoute(id kernel.UUID, key, name string, hubKeys []string) (*Route, error) {
	r := &Route{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setKey(key),
		r.setName(name),
		r.setHubKeys(hubKeys),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute rebuilds a route from persistence.
func RestoreRoute(id kernel.UUID, key, name string, hubKeys []string, createdAt time.Time) (*Route, error) {
	r := &Route{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setKey(key),
		r.setName(name),
		r.setHubKeys(hubKeys),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// IsEqual compares two routes by identifier.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route's surrogate identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// Key returns the immutable business key, e.g. "RT-SEA-PDX".
func (r *Route) Key() string {
	return r.key
}

// Name returns the route's display name.
func (r *Route) Name() string {
	return r.name
}

// HubKeys returns a copy of the hub keys in travel order.
func (r *Route) HubKeys() []string {
	return slices.Clone(r.hubKeys)
}

// CreatedAt returns the route creation time.
func (r *Route) CreatedAt() time.Time {
	return r.createdAt
}

// ChangeName updates the display name. The key and hub sequence are fixed.
func (r *Route) ChangeName(name string) error {
	return r.setName(name)
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setKey(key string) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}
	r.key = key
	return nil
}

func (r *Route) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Route) setHubKeys(hubKeys []string) error {
	if len(hubKeys) == 0 {
		return errs.NewValueIsRequiredError("hubKeys")
	}
	for i, key := range hubKeys {
		if key == "" {
			return errs.NewValueIsRequiredError("hubKeys")
		}
		if slices.Contains(hubKeys[:i], key) {
			return errs.NewValueIsInvalidError("hubKeys")
		}
	}
	r.hubKeys = slices.Clone(hubKeys)
	return nil
}
