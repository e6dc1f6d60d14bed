package container

import (
	"fleet/internal/core/domain/model/kernel"
)

const (
	// hazardousFillRatio caps a single load into a hazardous liquid container.
	hazardousFillRatio = 0.5
	// safeFillRatio caps a single load into a non-hazardous liquid container.
	safeFillRatio = 0.9
)

// LiquidContainer carries liquids. A single load may not exceed half the capacity
// for hazardous cargo, or 90% otherwise; passing that limit raises a hazard notice
// and fails the load.
type LiquidContainer struct {
	base
	hazards hazardLog

	isHazardous bool
}

var (
	_ Container      = (*LiquidContainer)(nil)
	_ HazardReporter = (*LiquidContainer)(nil)
)

// NewLiquidContainer creates an empty liquid container. serial must be of kind kernel.Liquid.
func NewLiquidContainer(serial kernel.SerialNumber, isHazardous bool, dims Dimensions) (*LiquidContainer, error) {
	b, err := newBase(kernel.Liquid, serial, dims)
	if err != nil {
		return nil, err
	}

	return &LiquidContainer{base: b, isHazardous: isHazardous}, nil
}

// RestoreLiquidContainer rebuilds a liquid container from the registry.
func RestoreLiquidContainer(
	serial kernel.SerialNumber,
	isHazardous bool,
	dims Dimensions,
	cargoMass float64,
	shipID *kernel.UUID,
) (*LiquidContainer, error) {
	b, err := restoreBase(kernel.Liquid, serial, dims, cargoMass, shipID)
	if err != nil {
		return nil, err
	}

	return &LiquidContainer{base: b, isHazardous: isHazardous}, nil
}

func (c *LiquidContainer) IsHazardous() bool {
	return c.isHazardous
}

// FillLimit is the largest mass a single Load accepts before the capacity check.
func (c *LiquidContainer) FillLimit() float64 {
	if c.isHazardous {
		return c.MaxCapacity() * hazardousFillRatio
	}
	return c.MaxCapacity() * safeFillRatio
}

// Load rejects a mass above FillLimit after raising a hazard notice, then defers
// to the capacity check shared by all containers.
func (c *LiquidContainer) Load(mass float64) error {
	if err := validateMass(mass); err != nil {
		return err
	}

	limit := c.FillLimit()
	if mass > limit {
		c.NotifyHazard(HazardOverfillMessage)
		return &OverfillError{
			Serial:    c.serialNumber,
			Attempted: mass,
			Current:   c.cargoMass,
			Limit:     limit,
		}
	}

	return c.base.Load(mass)
}

func (c *LiquidContainer) NotifyHazard(message string) {
	c.hazards.record(c.serialNumber, message)
}

func (c *LiquidContainer) PullHazardNotices() []HazardNotice {
	return c.hazards.pull()
}

func (c *LiquidContainer) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.base.Validate()
}
