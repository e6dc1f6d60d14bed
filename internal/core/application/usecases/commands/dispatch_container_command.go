package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrDispatchContainerCommandIsNotConstructed = errors.New(
	"DispatchContainerCommand must be created via NewDispatchContainerCommand constructor",
)

// DispatchContainerCommand moves a free container onto whichever ship fits it best.
type DispatchContainerCommand struct { //nolint:recvcheck //using for validation
	serial kernel.SerialNumber

	guard guard.ConstructorGuard
}

func NewDispatchContainerCommand(serial kernel.SerialNumber) (DispatchContainerCommand, error) {
	if err := serial.Validate(); err != nil {
		return DispatchContainerCommand{}, err
	}

	return DispatchContainerCommand{serial: serial, guard: guard.NewConstructorGuard()}, nil
}

func (c DispatchContainerCommand) Validate() error {
	return c.guard.Validate(ErrDispatchContainerCommandIsNotConstructed)
}

func (c DispatchContainerCommand) SerialNumber() kernel.SerialNumber {
	return c.serial
}
