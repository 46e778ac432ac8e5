// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// HubRepoFactory provides access to the hub repository within a transaction.
	HubRepoFactory interface {
		HubRepository() ports.HubRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// DirectoryUoW manages transactions over the hub and route directory.
	DirectoryUoW interface {
		TxManager
		HubRepoFactory
		RouteRepoFactory
	}

	// DirectoryUoWFactory creates new directory unit of work instances.
	DirectoryUoWFactory interface {
		Create() DirectoryUoW
	}

	// DispatchUoW manages transactions that touch shipments and the
	// directory together, such as creating a shipment whose hub and route
	// references must resolve in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipmentRepo := uow.ShipmentRepository()
	//   hubRepo := uow.HubRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DispatchUoW interface {
		TxManager
		ShipmentRepoFactory
		HubRepoFactory
		RouteRepoFactory
	}

	// DispatchUoWFactory creates new unit of work instances for
	// shipment-plus-directory operations.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
