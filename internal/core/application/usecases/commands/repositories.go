// Package commands contains the operations that change the fleet: registering and
// deleting ships, creating and deleting containers, moving containers onto ships
// and filling or emptying free containers.
// Every handler validates its command, runs inside one unit of work and rolls
// back on any failure.
package commands

import (
	"context"

	"fleet/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipRepoFactory provides access to the ship repository within a transaction.
	ShipRepoFactory interface {
		ShipRepository() ports.ShipRepository
	}

	// ContainerRepoFactory provides access to the free-pool repository within a transaction.
	ContainerRepoFactory interface {
		ContainerRepository() ports.ContainerRepository
	}

	// ShipUoW manages transactions for ship-only operations.
	ShipUoW interface {
		TxManager
		ShipRepoFactory
	}

	// ShipUoWFactory creates new ship unit of work instances.
	ShipUoWFactory interface {
		Create() ShipUoW
	}

	// ContainerUoW manages transactions for free-pool-only operations.
	ContainerUoW interface {
		TxManager
		ContainerRepoFactory
	}

	// ContainerUoWFactory creates new container unit of work instances.
	ContainerUoWFactory interface {
		Create() ContainerUoW
	}

	// UoW spans ships and the free pool, for operations that move a container
	// from one to the other.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   c, err := uow.ContainerRepository().Get(ctx, serial)
	//   s, err := uow.ShipRepository().Get(ctx, shipID)
	//   // ... load and save the ship
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ShipRepoFactory
		ContainerRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
