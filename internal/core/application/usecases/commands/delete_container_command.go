package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrDeleteContainerCommandIsNotConstructed = errors.New(
	"DeleteContainerCommand must be created via NewDeleteContainerCommand constructor",
)

// DeleteContainerCommand removes a container from the free pool.
type DeleteContainerCommand struct { //nolint:recvcheck //using for validation
	serial kernel.SerialNumber

	guard guard.ConstructorGuard
}

func NewDeleteContainerCommand(serial kernel.SerialNumber) (DeleteContainerCommand, error) {
	if err := serial.Validate(); err != nil {
		return DeleteContainerCommand{}, err
	}

	return DeleteContainerCommand{serial: serial, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteContainerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteContainerCommandIsNotConstructed)
}

func (c DeleteContainerCommand) SerialNumber() kernel.SerialNumber {
	return c.serial
}
