package commands

import (
	"context"
)

// LoadContainerOnShipCommandHandler moves a container from the free pool onto a ship.
// The container leaves the pool only once the ship has accepted it; a rejected
// load (ship.CapacityExceededError) leaves both the ship and the pool unchanged.
//
// Example:
//
//	handler := NewLoadContainerOnShipCommandHandler(uowFactory)
//	cmd, _ := NewLoadContainerOnShipCommand(shipID, serial)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown ship, or container not in the free pool
//	case errors.Is(err, ship.ErrCapacityExceeded):
//	    // count or weight limit reached
//	}
type LoadContainerOnShipCommandHandler struct {
	uowFactory UoWFactory
}

func NewLoadContainerOnShipCommandHandler(uowFactory UoWFactory) LoadContainerOnShipCommandHandler {
	return LoadContainerOnShipCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h LoadContainerOnShipCommandHandler) Handle(ctx context.Context, cmd LoadContainerOnShipCommand) error {
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
	containerRepo := uow.ContainerRepository()

	aggregate, err := shipRepo.Get(ctx, cmd.ShipID())
	if err != nil {
		return err
	}

	free, err := containerRepo.Get(ctx, cmd.SerialNumber())
	if err != nil {
		return err
	}

	if err = aggregate.LoadContainer(free); err != nil {
		return err
	}

	if err = shipRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
