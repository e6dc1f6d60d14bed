package menu

import (
	"context"
	"errors"
	"fmt"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/ship"
	"fleet/internal/core/domain/services"
	"fleet/internal/pkg/errs"
)

func (m *Menu) addShip(ctx context.Context) error {
	maxSpeed, err := m.readFloat("Max speed: ")
	if err != nil {
		return err
	}
	maxCount, err := m.readInt("Max container count: ")
	if err != nil {
		return err
	}
	maxWeight, err := m.readFloat("Max weight: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateShipCommand(kernel.NewUUID(), maxSpeed, maxCount, maxWeight)
	if err != nil {
		return err
	}
	if err = m.handlers.CreateShip.Handle(ctx, cmd); err != nil {
		return err
	}

	return m.success("Ship added.")
}

func (m *Menu) removeShip(ctx context.Context) error {
	shipID, err := m.readShip(ctx, "Number of the ship to remove: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteShipCommand(shipID)
	if err != nil {
		return err
	}
	if err = m.handlers.DeleteShip.Handle(ctx, cmd); err != nil {
		return err
	}

	return m.success("Ship removed.")
}

func (m *Menu) addContainer(ctx context.Context) error {
	m.printf("Container type:\n1. Liquid\n2. Gas\n3. Refrigerated\n")
	kind, err := m.readInt("Choose a type: ")
	if err != nil {
		return err
	}

	var cmd commands.CreateContainerCommand
	switch kind {
	case 1:
		cmd, err = m.readLiquid()
	case 2:
		cmd, err = m.readGas()
	case 3:
		cmd, err = m.readRefrigerated()
	default:
		return &inputError{message: "Invalid container type."}
	}
	if err != nil {
		return err
	}

	serial, err := m.handlers.CreateContainer.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	return m.success("Container %s added.", serial)
}

func (m *Menu) readLiquid() (commands.CreateContainerCommand, error) {
	hazardous, err := m.readBool("Is the cargo hazardous? (true/false): ")
	if err != nil {
		return commands.CreateContainerCommand{}, err
	}
	dims, err := m.readDimensions()
	if err != nil {
		return commands.CreateContainerCommand{}, err
	}
	return commands.NewCreateLiquidContainerCommand(dims, hazardous)
}

func (m *Menu) readGas() (commands.CreateContainerCommand, error) {
	pressure, err := m.readFloat("Pressure: ")
	if err != nil {
		return commands.CreateContainerCommand{}, err
	}
	dims, err := m.readDimensions()
	if err != nil {
		return commands.CreateContainerCommand{}, err
	}
	return commands.NewCreateGasContainerCommand(dims, pressure)
}

func (m *Menu) readRefrigerated() (commands.CreateContainerCommand, error) {
	productType, err := m.readLine("Product type: ")
	if err != nil {
		return commands.CreateContainerCommand{}, err
	}
	temperature, err := m.readFloat("Temperature: ")
	if err != nil {
		return commands.CreateContainerCommand{}, err
	}
	dims, err := m.readDimensions()
	if err != nil {
		return commands.CreateContainerCommand{}, err
	}
	return commands.NewCreateRefrigeratedContainerCommand(dims, productType, temperature)
}

func (m *Menu) readDimensions() (container.Dimensions, error) {
	var dims container.Dimensions
	fields := []struct {
		prompt string
		value  *float64
	}{
		{"Max capacity: ", &dims.MaxCapacity},
		{"Own weight: ", &dims.OwnWeight},
		{"Height: ", &dims.Height},
		{"Depth: ", &dims.Depth},
	}

	for _, f := range fields {
		v, err := m.readFloat(f.prompt)
		if err != nil {
			return container.Dimensions{}, err
		}
		*f.value = v
	}

	return dims, nil
}

func (m *Menu) removeContainer(ctx context.Context) error {
	serial, err := m.readSerial("Serial number of the container to remove: ")
	if err != nil {
		var invalid *inputError
		if errors.As(err, &invalid) {
			// an unparsable serial names no container, so there is nothing to remove
			return nil
		}
		return err
	}

	cmd, err := commands.NewDeleteContainerCommand(serial)
	if err != nil {
		return err
	}
	return m.handlers.DeleteContainer.Handle(ctx, cmd)
}

func (m *Menu) loadContainerOnShip(ctx context.Context) error {
	shipID, err := m.readShip(ctx, "Ship number: ")
	if err != nil {
		return err
	}
	serial, err := m.readSerial("Container serial number: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewLoadContainerOnShipCommand(shipID, serial)
	if err != nil {
		return err
	}
	if err = m.handlers.LoadContainerOnShip.Handle(ctx, cmd); err != nil {
		return err
	}

	return m.success("Container %s loaded.", serial)
}

func (m *Menu) dispatchContainer(ctx context.Context) error {
	serial, err := m.readSerial("Container serial number: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDispatchContainerCommand(serial)
	if err != nil {
		return err
	}
	shipID, err := m.handlers.DispatchContainer.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	ships, err := m.handlers.GetAllShips.Handle(ctx, queries.NewGetAllShipsQuery())
	if err != nil {
		return err
	}
	for _, s := range ships {
		if s.ID.IsEqual(shipID) {
			return m.success("Container %s loaded onto ship %d.", serial, s.Position)
		}
	}

	return m.success("Container %s loaded.", serial)
}

func (m *Menu) removeContainerFromShip(ctx context.Context) error {
	shipID, err := m.readShip(ctx, "Ship number: ")
	if err != nil {
		return err
	}
	serial, err := m.readSerial("Container serial number: ")
	if err != nil {
		var invalid *inputError
		if errors.As(err, &invalid) {
			return nil
		}
		return err
	}

	cmd, err := commands.NewRemoveContainerFromShipCommand(shipID, serial)
	if err != nil {
		return err
	}
	return m.handlers.RemoveContainerFromShip.Handle(ctx, cmd)
}

func (m *Menu) loadCargo(ctx context.Context) error {
	serial, err := m.readSerial("Container serial number: ")
	if err != nil {
		return err
	}
	mass, err := m.readFloat("Cargo mass: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewLoadCargoCommand(serial, mass)
	if err != nil {
		return err
	}
	if err = m.handlers.LoadCargo.Handle(ctx, cmd); err != nil {
		return err
	}

	return m.success("Cargo loaded into %s.", serial)
}

func (m *Menu) unloadCargo(ctx context.Context) error {
	serial, err := m.readSerial("Container serial number: ")
	if err != nil {
		return err
	}

	cmd, err := commands.NewUnloadCargoCommand(serial)
	if err != nil {
		return err
	}
	if err = m.handlers.UnloadCargo.Handle(ctx, cmd); err != nil {
		return err
	}

	return m.success("Container %s unloaded.", serial)
}

func (m *Menu) showShipContainers(ctx context.Context) error {
	shipID, err := m.readShip(ctx, "Ship number: ")
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipContainersQuery(shipID)
	if err != nil {
		return err
	}
	views, err := m.handlers.GetShipContainers.Handle(ctx, query)
	if err != nil {
		return err
	}

	if len(views) == 0 {
		m.println("None")
	}
	for _, v := range views {
		m.println(formatContainer(v))
	}
	return nil
}

// reportFailure prints what went wrong with an action in terms of the menu.
func (m *Menu) reportFailure(ctx context.Context, err error) {
	m.logger.DebugContext(ctx, "action failed", "error", err)

	var (
		invalid  *inputError
		overfill *container.OverfillError
		capacity *ship.CapacityExceededError
	)

	var message string
	switch {
	case errors.As(err, &invalid):
		message = invalid.message
	case errors.As(err, &overfill):
		message = "Error: " + overfill.Error()
	case errors.As(err, &capacity):
		message = "Error: " + capacity.Error()
	case errors.Is(err, services.ErrNoShipCanTakeContainer), errors.Is(err, commands.ErrNoShipsRegistered):
		message = "No ship can take the container."
	case errors.Is(err, errs.ErrObjectNotFound):
		message = "Not found: " + err.Error()
	default:
		message = fmt.Sprintf("Error: %v", err)
	}

	m.println(m.color.Red(message))
}
