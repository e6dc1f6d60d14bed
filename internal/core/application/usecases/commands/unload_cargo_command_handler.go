package commands

import (
	"context"
)

// UnloadCargoCommandHandler empties free containers. Gas containers may keep a
// residual share of their cargo.
type UnloadCargoCommandHandler struct {
	uowFactory ContainerUoWFactory
}

func NewUnloadCargoCommandHandler(uowFactory ContainerUoWFactory) UnloadCargoCommandHandler {
	return UnloadCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UnloadCargoCommandHandler) Handle(ctx context.Context, cmd UnloadCargoCommand) error {
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

	containerRepo := uow.ContainerRepository()

	free, err := containerRepo.Get(ctx, cmd.SerialNumber())
	if err != nil {
		return err
	}

	free.Unload()

	if err = containerRepo.Update(ctx, free); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
