package commands

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var ErrCreateShipCommandIsNotConstructed = errors.New(
	"CreateShipCommand must be created via NewCreateShipCommand constructor",
)

// CreateShipCommand represents a request to register a new ship.
// Limits are validated by the Ship aggregate when the command is handled.
//
// Example:
//
//	cmd, err := NewCreateShipCommand(kernel.NewUUID(), 20, 10, 40000)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateShipCommand struct { //nolint:recvcheck //using for validation
	shipID            kernel.UUID
	maxSpeed          float64
	maxContainerCount int
	maxWeight         float64

	guard guard.ConstructorGuard
}

func NewCreateShipCommand(
	shipID kernel.UUID,
	maxSpeed float64,
	maxContainerCount int,
	maxWeight float64,
) (CreateShipCommand, error) {
	cmd := CreateShipCommand{
		maxSpeed:          maxSpeed,
		maxContainerCount: maxContainerCount,
		maxWeight:         maxWeight,
		guard:             guard.NewConstructorGuard(),
	}

	if err := cmd.setShipID(shipID); err != nil {
		return CreateShipCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipCommandIsNotConstructed)
}

func (c CreateShipCommand) ShipID() kernel.UUID {
	return c.shipID
}

func (c CreateShipCommand) MaxSpeed() float64 {
	return c.maxSpeed
}

func (c CreateShipCommand) MaxContainerCount() int {
	return c.maxContainerCount
}

func (c CreateShipCommand) MaxWeight() float64 {
	return c.maxWeight
}

func (c *CreateShipCommand) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	c.shipID = shipID
	return nil
}
