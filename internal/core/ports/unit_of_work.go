package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups the registry writes of one command into a single transaction.
// Callers Begin it, defer Rollback and Commit on success.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback fails when no transaction is open, as after a successful Commit.
	// The error is safe to ignore in a deferred call.
	Rollback(ctx context.Context) error

	// ShipRepository is bound to the open transaction, or to the plain
	// connection when none is open.
	ShipRepository() ShipRepository

	// ContainerRepository holds the free pool, bound like ShipRepository.
	ContainerRepository() ContainerRepository
}
