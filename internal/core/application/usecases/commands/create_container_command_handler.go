package commands

import (
	"context"
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
)

var ErrContainerFactoryIsRequired = errors.New("container factory is required")

// CreateContainerCommandHandler builds containers through the shared factory, so
// every container draws its serial number from the same counter, and adds them
// to the free pool.
//
// Example:
//
//	handler := NewCreateContainerCommandHandler(uowFactory, factory)
//	cmd, _ := NewCreateLiquidContainerCommand(dims, true)
//	serial, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println("created", serial)
type CreateContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
	factory    *container.Factory
}

func NewCreateContainerCommandHandler(
	uowFactory ContainerUoWFactory,
	factory *container.Factory,
) CreateContainerCommandHandler {
	return CreateContainerCommandHandler{
		uowFactory: uowFactory,
		factory:    factory,
	}
}

// Handle returns the serial number assigned to the new container. A serial that
// was reserved for a container which then failed to persist is not reused.
func (h CreateContainerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateContainerCommand,
) (kernel.SerialNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.SerialNumber{}, err
	}
	if h.factory == nil {
		return kernel.SerialNumber{}, ErrContainerFactoryIsRequired
	}

	created, err := h.build(cmd)
	if err != nil {
		return kernel.SerialNumber{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.SerialNumber{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ContainerRepository().Add(ctx, created); err != nil {
		return kernel.SerialNumber{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.SerialNumber{}, err
	}

	return created.SerialNumber(), nil
}

func (h CreateContainerCommandHandler) build(cmd CreateContainerCommand) (container.Container, error) {
	switch cmd.Kind() {
	case kernel.Liquid:
		return h.factory.NewLiquid(cmd.IsHazardous(), cmd.Dimensions())
	case kernel.Gas:
		return h.factory.NewGas(cmd.Pressure(), cmd.Dimensions())
	case kernel.Refrigerated:
		return h.factory.NewRefrigerated(cmd.ProductType(), cmd.Temperature(), cmd.Dimensions())
	default:
		return nil, fmt.Errorf("unsupported container kind %q", cmd.Kind())
	}
}
