package container

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
)

// ErrFactoryRequiresCounter is returned by NewFactory when no counter is supplied.
var ErrFactoryRequiresCounter = errors.New("container factory requires a serial counter")

// Factory creates containers with serial numbers drawn from one shared counter.
// Parameters are validated before a serial is reserved, so rejected requests leave
// no gaps in the sequence.
type Factory struct {
	counter *kernel.SerialCounter
}

func NewFactory(counter *kernel.SerialCounter) (*Factory, error) {
	if counter == nil {
		return nil, ErrFactoryRequiresCounter
	}
	return &Factory{counter: counter}, nil
}

func (f *Factory) NewLiquid(isHazardous bool, dims Dimensions) (*LiquidContainer, error) {
	serial, err := f.reserve(kernel.Liquid, dims)
	if err != nil {
		return nil, err
	}
	return NewLiquidContainer(serial, isHazardous, dims)
}

func (f *Factory) NewGas(pressure float64, dims Dimensions) (*GasContainer, error) {
	serial, err := f.reserve(kernel.Gas, dims)
	if err != nil {
		return nil, err
	}
	return NewGasContainer(serial, pressure, dims)
}

func (f *Factory) NewRefrigerated(productType string, temperature float64, dims Dimensions) (*RefrigeratedContainer, error) {
	serial, err := f.reserve(kernel.Refrigerated, dims)
	if err != nil {
		return nil, err
	}
	return NewRefrigeratedContainer(serial, productType, temperature, dims)
}

func (f *Factory) reserve(kind kernel.ContainerKind, dims Dimensions) (kernel.SerialNumber, error) {
	if err := dims.Validate(); err != nil {
		return kernel.SerialNumber{}, err
	}
	return f.counter.Next(kind)
}
