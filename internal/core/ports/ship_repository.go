package ports

import (
	"context"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/ship"
)

// ShipRepository defines the persistence contract for ship aggregates.
// A ship is stored together with its containers; saving a ship also saves the
// containers it holds, in loading order.
type ShipRepository interface {
	// Add registers a new ship. Ships keep their registration order.
	Add(ctx context.Context, aggregate *ship.Ship) error

	// Update persists the ship and its current container list. Containers that
	// are no longer on the ship are discarded.
	Update(ctx context.Context, aggregate *ship.Ship) error

	// Get returns the ship with the given ID or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error)

	// GetAll returns every ship in registration order.
	GetAll(ctx context.Context) ([]*ship.Ship, error)

	// Delete removes the ship and discards every container on it.
	// An unknown ID yields an errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error
}
