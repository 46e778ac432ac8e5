// Package ports defines the contracts between the core and infrastructure.
// Repository interfaces, the unit of work, and the security primitives
// (password hashing, token signing) all live here so the core depends on
// abstractions only.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
//
// Tracking numbers double as identity: every method addresses shipments by
// tracking number, and Add both reserves the number and stores the aggregate
// in one atomic step.
type ShipmentRepository interface {
	// Add reserves the shipment's tracking number and persists the aggregate
	// atomically. If the number is already reserved, even by a shipment that
	// has since been deleted, Add fails with DuplicateValue and persists
	// nothing; the caller generates a fresh number and retries.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment, appending any
	// uncommitted events and bumping the optimistic concurrency version.
	// Returns VersionConflict when another writer got there first.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment with its full event history by tracking
	// number. Returns ObjectNotFound when no such shipment exists.
	Get(ctx context.Context, trackingNumber kernel.TrackingNumber) (*shipment.Shipment, error)

	// Delete removes the shipment and its events. The tracking number
	// reservation is intentionally left behind so the number is never
	// issued again.
	Delete(ctx context.Context, trackingNumber kernel.TrackingNumber) error
}
