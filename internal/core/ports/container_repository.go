package ports

import (
	"context"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for the free pool:
// containers that are not on any ship. Loaded containers are reached through
// their ship.
type ContainerRepository interface {
	// Add places a new, unloaded container in the free pool.
	Add(ctx context.Context, aggregate container.Container) error

	// Update persists the cargo of a free container.
	Update(ctx context.Context, aggregate container.Container) error

	// Get returns the free container with the given serial number. A container
	// that is unknown or already on a ship yields an errs.ObjectNotFoundError.
	Get(ctx context.Context, serial kernel.SerialNumber) (container.Container, error)

	// GetAllFree returns the free pool ordered by serial sequence.
	GetAllFree(ctx context.Context) ([]container.Container, error)

	// Delete removes a container from the free pool. An unknown serial is a no-op.
	Delete(ctx context.Context, serial kernel.SerialNumber) error
}
