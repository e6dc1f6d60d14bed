package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrRemoveContainerFromShipCommandIsNotConstructed = errors.New(
	"RemoveContainerFromShipCommand must be created via NewRemoveContainerFromShipCommand constructor",
)

// RemoveContainerFromShipCommand discards a container carried by a ship.
type RemoveContainerFromShipCommand struct { //nolint:recvcheck //using for validation
	shipID kernel.UUID
	serial kernel.SerialNumber

	guard guard.ConstructorGuard
}

func NewRemoveContainerFromShipCommand(
	shipID kernel.UUID,
	serial kernel.SerialNumber,
) (RemoveContainerFromShipCommand, error) {
	if err := errors.Join(shipID.Validate(), serial.Validate()); err != nil {
		return RemoveContainerFromShipCommand{}, err
	}

	return RemoveContainerFromShipCommand{
		shipID: shipID,
		serial: serial,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveContainerFromShipCommand) Validate() error {
	return c.guard.Validate(ErrRemoveContainerFromShipCommandIsNotConstructed)
}

func (c RemoveContainerFromShipCommand) ShipID() kernel.UUID {
	return c.shipID
}

func (c RemoveContainerFromShipCommand) SerialNumber() kernel.SerialNumber {
	return c.serial
}
