package commands

import (
	"errors"
	"fmt"
	"math"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var ErrLoadCargoCommandIsNotConstructed = errors.New(
	"LoadCargoCommand must be created via NewLoadCargoCommand constructor",
)

// LoadCargoCommand adds cargo mass to a free container.
type LoadCargoCommand struct { //nolint:recvcheck //using for validation
	serial kernel.SerialNumber
	mass   float64

	guard guard.ConstructorGuard
}

func NewLoadCargoCommand(serial kernel.SerialNumber, mass float64) (LoadCargoCommand, error) {
	cmd := LoadCargoCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(cmd.setSerialNumber(serial), cmd.setMass(mass)); err != nil {
		return LoadCargoCommand{}, err
	}

	return cmd, nil
}

func (c LoadCargoCommand) Validate() error {
	return c.guard.Validate(ErrLoadCargoCommandIsNotConstructed)
}

func (c LoadCargoCommand) SerialNumber() kernel.SerialNumber {
	return c.serial
}

func (c LoadCargoCommand) Mass() float64 {
	return c.mass
}

func (c *LoadCargoCommand) setSerialNumber(serial kernel.SerialNumber) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	c.serial = serial
	return nil
}

func (c *LoadCargoCommand) setMass(mass float64) error {
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass < 0 {
		return errs.NewValueIsInvalidErrorWithCause("mass", fmt.Errorf("%g is not a non-negative number", mass))
	}

	c.mass = mass
	return nil
}
