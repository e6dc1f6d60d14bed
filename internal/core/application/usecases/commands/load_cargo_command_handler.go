package commands

import (
	"context"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/ports"
)

// LoadCargoCommandHandler fills free containers. Containers on ships are sealed
// and cannot be filled, so a ship's weight can only change through loading or
// removing containers.
//
// Hazard notices raised during the load are published before the outcome is
// known, so an overfilled liquid container is reported even though the load fails.
//
// Example:
//
//	handler := NewLoadCargoCommandHandler(uowFactory, publisher)
//	cmd, _ := NewLoadCargoCommand(serial, 51)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, container.ErrOverfill) {
//	    // nothing was added; a hazard notice may have been published
//	}
type LoadCargoCommandHandler struct {
	uowFactory ContainerUoWFactory
	publisher  ports.HazardPublisher
}

func NewLoadCargoCommandHandler(
	uowFactory ContainerUoWFactory,
	publisher ports.HazardPublisher,
) LoadCargoCommandHandler {
	return LoadCargoCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

func (h LoadCargoCommandHandler) Handle(ctx context.Context, cmd LoadCargoCommand) error {
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

	loadErr := free.Load(cmd.Mass())
	publishHazards(ctx, h.publisher, free)
	if loadErr != nil {
		return loadErr
	}

	if err = containerRepo.Update(ctx, free); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// publishHazards drains the notices c raised, if its kind can raise any.
func publishHazards(ctx context.Context, publisher ports.HazardPublisher, c container.Container) {
	reporter, ok := c.(container.HazardReporter)
	if !ok {
		return
	}

	notices := reporter.PullHazardNotices()
	if publisher == nil {
		return
	}
	for _, notice := range notices {
		publisher.Publish(ctx, notice)
	}
}
