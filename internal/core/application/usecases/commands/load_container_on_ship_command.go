package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrLoadContainerOnShipCommandIsNotConstructed = errors.New(
	"LoadContainerOnShipCommand must be created via NewLoadContainerOnShipCommand constructor",
)

// LoadContainerOnShipCommand moves a free container onto the given ship.
type LoadContainerOnShipCommand struct { //nolint:recvcheck //using for validation
	shipID kernel.UUID
	serial kernel.SerialNumber

	guard guard.ConstructorGuard
}

func NewLoadContainerOnShipCommand(shipID kernel.UUID, serial kernel.SerialNumber) (LoadContainerOnShipCommand, error) {
	if err := errors.Join(shipID.Validate(), serial.Validate()); err != nil {
		return LoadContainerOnShipCommand{}, err
	}

	return LoadContainerOnShipCommand{
		shipID: shipID,
		serial: serial,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c LoadContainerOnShipCommand) Validate() error {
	return c.guard.Validate(ErrLoadContainerOnShipCommandIsNotConstructed)
}

func (c LoadContainerOnShipCommand) ShipID() kernel.UUID {
	return c.shipID
}

func (c LoadContainerOnShipCommand) SerialNumber() kernel.SerialNumber {
	return c.serial
}
