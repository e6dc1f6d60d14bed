package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrUnloadCargoCommandIsNotConstructed = errors.New(
	"UnloadCargoCommand must be created via NewUnloadCargoCommand constructor",
)

// UnloadCargoCommand empties a free container according to its kind's policy.
type UnloadCargoCommand struct { //nolint:recvcheck //using for validation
	serial kernel.SerialNumber

	guard guard.ConstructorGuard
}

func NewUnloadCargoCommand(serial kernel.SerialNumber) (UnloadCargoCommand, error) {
	if err := serial.Validate(); err != nil {
		return UnloadCargoCommand{}, err
	}

	return UnloadCargoCommand{serial: serial, guard: guard.NewConstructorGuard()}, nil
}

func (c UnloadCargoCommand) Validate() error {
	return c.guard.Validate(ErrUnloadCargoCommandIsNotConstructed)
}

func (c UnloadCargoCommand) SerialNumber() kernel.SerialNumber {
	return c.serial
}
