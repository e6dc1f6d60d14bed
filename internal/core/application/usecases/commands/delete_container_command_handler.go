package commands

import (
	"context"
)

// DeleteContainerCommandHandler removes containers from the free pool. Deleting a
// serial number that is not in the pool is a no-op; containers on ships are
// removed through RemoveContainerFromShipCommandHandler instead.
type DeleteContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
}

func NewDeleteContainerCommandHandler(uowFactory ContainerUoWFactory) DeleteContainerCommandHandler {
	return DeleteContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteContainerCommandHandler) Handle(ctx context.Context, cmd DeleteContainerCommand) error {
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

	if err := uow.ContainerRepository().Delete(ctx, cmd.SerialNumber()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
