package container

import (
	"fleet/internal/core/domain/model/kernel"
)

// RefrigeratedContainer carries chilled goods. Product type and temperature are
// descriptive only; loading and unloading follow the shared rules.
type RefrigeratedContainer struct {
	base

	productType string
	temperature float64
}

var _ Container = (*RefrigeratedContainer)(nil)

// NewRefrigeratedContainer creates an empty refrigerated container.
// serial must be of kind kernel.Refrigerated.
func NewRefrigeratedContainer(
	serial kernel.SerialNumber,
	productType string,
	temperature float64,
	dims Dimensions,
) (*RefrigeratedContainer, error) {
	b, err := newBase(kernel.Refrigerated, serial, dims)
	if err != nil {
		return nil, err
	}

	return &RefrigeratedContainer{base: b, productType: productType, temperature: temperature}, nil
}

// RestoreRefrigeratedContainer rebuilds a refrigerated container from the registry.
func RestoreRefrigeratedContainer(
	serial kernel.SerialNumber,
	productType string,
	temperature float64,
	dims Dimensions,
	cargoMass float64,
	shipID *kernel.UUID,
) (*RefrigeratedContainer, error) {
	b, err := restoreBase(kernel.Refrigerated, serial, dims, cargoMass, shipID)
	if err != nil {
		return nil, err
	}

	return &RefrigeratedContainer{base: b, productType: productType, temperature: temperature}, nil
}

func (c *RefrigeratedContainer) ProductType() string {
	return c.productType
}

func (c *RefrigeratedContainer) Temperature() float64 {
	return c.temperature
}

func (c *RefrigeratedContainer) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.base.Validate()
}
