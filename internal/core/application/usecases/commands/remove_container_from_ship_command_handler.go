package commands

import (
	"context"
)

// RemoveContainerFromShipCommandHandler discards a container from a ship. The
// container does not return to the free pool. A serial number the ship does not
// carry is a no-op; an unknown ship is an errs.ObjectNotFoundError.
type RemoveContainerFromShipCommandHandler struct {
	uowFactory ShipUoWFactory
}

func NewRemoveContainerFromShipCommandHandler(uowFactory ShipUoWFactory) RemoveContainerFromShipCommandHandler {
	return RemoveContainerFromShipCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveContainerFromShipCommandHandler) Handle(ctx context.Context, cmd RemoveContainerFromShipCommand) error {
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

	shipRepo := uow.ShipRepository()

	aggregate, err := shipRepo.Get(ctx, cmd.ShipID())
	if err != nil {
		return err
	}

	if !aggregate.RemoveContainer(cmd.SerialNumber()) {
		return nil
	}

	if err = shipRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
