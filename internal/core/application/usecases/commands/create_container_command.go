package commands

import (
	"errors"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrCreateContainerCommandIsNotConstructed = errors.New(
	"CreateContainerCommand must be created via NewCreateLiquidContainerCommand, " +
		"NewCreateGasContainerCommand or NewCreateRefrigeratedContainerCommand",
)

// CreateContainerCommand represents a request to build a container of one kind
// and place it in the free pool. Only the parameters of its kind are meaningful.
//
// Example:
//
//	cmd, err := NewCreateGasContainerCommand(container.Dimensions{
//	    MaxCapacity: 1000, OwnWeight: 200, Height: 250, Depth: 600,
//	}, 3.5)
//	if err != nil {
//	    return err
//	}
//	serial, err := handler.Handle(ctx, cmd)
type CreateContainerCommand struct { //nolint:recvcheck //using for validation
	kind       kernel.ContainerKind
	dimensions container.Dimensions

	isHazardous bool
	pressure    float64
	productType string
	temperature float64

	guard guard.ConstructorGuard
}

func NewCreateLiquidContainerCommand(dims container.Dimensions, isHazardous bool) (CreateContainerCommand, error) {
	cmd, err := newCreateContainerCommand(kernel.Liquid, dims)
	if err != nil {
		return CreateContainerCommand{}, err
	}

	cmd.isHazardous = isHazardous
	return cmd, nil
}

func NewCreateGasContainerCommand(dims container.Dimensions, pressure float64) (CreateContainerCommand, error) {
	cmd, err := newCreateContainerCommand(kernel.Gas, dims)
	if err != nil {
		return CreateContainerCommand{}, err
	}

	cmd.pressure = pressure
	return cmd, nil
}

func NewCreateRefrigeratedContainerCommand(
	dims container.Dimensions,
	productType string,
	temperature float64,
) (CreateContainerCommand, error) {
	cmd, err := newCreateContainerCommand(kernel.Refrigerated, dims)
	if err != nil {
		return CreateContainerCommand{}, err
	}

	cmd.productType = productType
	cmd.temperature = temperature
	return cmd, nil
}

func newCreateContainerCommand(kind kernel.ContainerKind, dims container.Dimensions) (CreateContainerCommand, error) {
	if err := dims.Validate(); err != nil {
		return CreateContainerCommand{}, err
	}

	return CreateContainerCommand{
		kind:       kind,
		dimensions: dims,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateContainerCommand) Validate() error {
	return c.guard.Validate(ErrCreateContainerCommandIsNotConstructed)
}

func (c CreateContainerCommand) Kind() kernel.ContainerKind {
	return c.kind
}

func (c CreateContainerCommand) Dimensions() container.Dimensions {
	return c.dimensions
}

func (c CreateContainerCommand) IsHazardous() bool {
	return c.isHazardous
}

func (c CreateContainerCommand) Pressure() float64 {
	return c.pressure
}

func (c CreateContainerCommand) ProductType() string {
	return c.productType
}

func (c CreateContainerCommand) Temperature() float64 {
	return c.temperature
}
