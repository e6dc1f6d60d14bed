package container

import (
	"fleet/internal/core/domain/model/kernel"
)

const (
	// gasResidualThreshold is the cargo mass below which an unload empties the container.
	gasResidualThreshold = 10
	// gasResidualRatio is the share of cargo kept after unloading a heavier load.
	gasResidualRatio = 0.05
)

// GasContainer carries pressurised gas. Loading follows the shared capacity rule;
// unloading keeps 5% of the cargo unless less than 10 remains.
type GasContainer struct {
	base
	hazards hazardLog

	pressure float64
}

var (
	_ Container      = (*GasContainer)(nil)
	_ HazardReporter = (*GasContainer)(nil)
)

// NewGasContainer creates an empty gas container. serial must be of kind kernel.Gas.
func NewGasContainer(serial kernel.SerialNumber, pressure float64, dims Dimensions) (*GasContainer, error) {
	b, err := newBase(kernel.Gas, serial, dims)
	if err != nil {
		return nil, err
	}

	return &GasContainer{base: b, pressure: pressure}, nil
}

// RestoreGasContainer rebuilds a gas container from the registry.
func RestoreGasContainer(
	serial kernel.SerialNumber,
	pressure float64,
	dims Dimensions,
	cargoMass float64,
	shipID *kernel.UUID,
) (*GasContainer, error) {
	b, err := restoreBase(kernel.Gas, serial, dims, cargoMass, shipID)
	if err != nil {
		return nil, err
	}

	return &GasContainer{base: b, pressure: pressure}, nil
}

func (c *GasContainer) Pressure() float64 {
	return c.pressure
}

// Unload releases pressure: cargo under the threshold is emptied, anything heavier
// keeps a residual share.
func (c *GasContainer) Unload() {
	if c.cargoMass < gasResidualThreshold {
		c.cargoMass = 0
		return
	}
	c.cargoMass *= gasResidualRatio
}

func (c *GasContainer) NotifyHazard(message string) {
	c.hazards.record(c.serialNumber, message)
}

func (c *GasContainer) PullHazardNotices() []HazardNotice {
	return c.hazards.pull()
}

func (c *GasContainer) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.base.Validate()
}
