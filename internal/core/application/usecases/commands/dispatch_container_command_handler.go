package commands

import (
	"context"
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/services"
)

var ErrNoShipsRegistered = errors.New("no ships registered")

// DispatchContainerCommandHandler picks a ship for a free container with
// services.ContainerDispatcher and loads it there.
//
// Example:
//
//	shipID, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoShipsRegistered), errors.Is(err, services.ErrNoShipCanTakeContainer):
//	    // the container stays in the free pool
//	case err != nil:
//	    return err
//	}
type DispatchContainerCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.ContainerDispatcher
}

func NewDispatchContainerCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.ContainerDispatcher,
) DispatchContainerCommandHandler {
	return DispatchContainerCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle returns the ID of the ship that took the container.
func (h DispatchContainerCommandHandler) Handle(ctx context.Context, cmd DispatchContainerCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipRepo := uow.ShipRepository()

	free, err := uow.ContainerRepository().Get(ctx, cmd.SerialNumber())
	if err != nil {
		return kernel.UUID{}, err
	}

	ships, err := shipRepo.GetAll(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}
	if len(ships) == 0 {
		return kernel.UUID{}, ErrNoShipsRegistered
	}

	chosen, err := h.dispatcher.Dispatch(free, ships)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = shipRepo.Update(ctx, chosen); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return chosen.ID(), nil
}
