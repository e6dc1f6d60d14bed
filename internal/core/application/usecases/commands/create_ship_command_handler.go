package commands

import (
	"context"

	"fleet/internal/core/domain/model/ship"
)

// CreateShipCommandHandler registers new ships.
//
// Example:
//
//	handler := NewCreateShipCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipCommand(kernel.NewUUID(), 20, 10, 40000)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("ship registration failed: %w", err)
//	}
type CreateShipCommandHandler struct {
	uowFactory ShipUoWFactory
}

func NewCreateShipCommandHandler(uowFactory ShipUoWFactory) CreateShipCommandHandler {
	return CreateShipCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the ship and adds it to the registry, after every ship already there.
func (h CreateShipCommandHandler) Handle(ctx context.Context, cmd CreateShipCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := ship.NewShip(cmd.ShipID(), cmd.MaxSpeed(), cmd.MaxContainerCount(), cmd.MaxWeight())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
