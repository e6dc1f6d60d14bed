package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrDeleteShipCommandIsNotConstructed = errors.New(
	"DeleteShipCommand must be created via NewDeleteShipCommand constructor",
)

// DeleteShipCommand removes a ship together with every container it carries.
type DeleteShipCommand struct { //nolint:recvcheck //using for validation
	shipID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteShipCommand(shipID kernel.UUID) (DeleteShipCommand, error) {
	if err := shipID.Validate(); err != nil {
		return DeleteShipCommand{}, err
	}

	return DeleteShipCommand{shipID: shipID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteShipCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipCommandIsNotConstructed)
}

func (c DeleteShipCommand) ShipID() kernel.UUID {
	return c.shipID
}
