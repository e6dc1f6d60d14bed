package commands

import (
	"context"
)

// DeleteShipCommandHandler removes ships from the registry. The ship's containers
// are discarded with it; none of them returns to the free pool.
type DeleteShipCommandHandler struct {
	uowFactory ShipUoWFactory
}

func NewDeleteShipCommandHandler(uowFactory ShipUoWFactory) DeleteShipCommandHandler {
	return DeleteShipCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns an errs.ObjectNotFoundError when the ship is not registered.
func (h DeleteShipCommandHandler) Handle(ctx context.Context, cmd DeleteShipCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ShipRepository().Delete(ctx, cmd.ShipID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
