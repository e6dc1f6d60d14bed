package commands_test

import (
	"math"
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateShipCommand(id, 20, 10, 40000)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.ShipID())
	assert.InDelta(t, 20, cmd.MaxSpeed(), 1e-9)
	assert.Equal(t, 10, cmd.MaxContainerCount())
	assert.InDelta(t, 40000, cmd.MaxWeight(), 1e-9)
}

func TestNewCreateShipCommand_InvalidShipID(t *testing.T) {
	_, err := commands.NewCreateShipCommand(kernel.UUID{}, 20, 10, 40000)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateContainerCommands(t *testing.T) {
	liquid, err := commands.NewCreateLiquidContainerCommand(testDims, true)
	require.NoError(t, err)
	assert.Equal(t, kernel.Liquid, liquid.Kind())
	assert.True(t, liquid.IsHazardous())
	assert.Equal(t, testDims, liquid.Dimensions())

	gas, err := commands.NewCreateGasContainerCommand(testDims, 4.2)
	require.NoError(t, err)
	assert.Equal(t, kernel.Gas, gas.Kind())
	assert.InDelta(t, 4.2, gas.Pressure(), 1e-9)

	cold, err := commands.NewCreateRefrigeratedContainerCommand(testDims, "Bananas", 13.3)
	require.NoError(t, err)
	assert.Equal(t, kernel.Refrigerated, cold.Kind())
	assert.Equal(t, "Bananas", cold.ProductType())
	assert.InDelta(t, 13.3, cold.Temperature(), 1e-9)
}

func TestNewCreateContainerCommand_InvalidDimensions(t *testing.T) {
	_, err := commands.NewCreateGasContainerCommand(container.Dimensions{Height: -1}, 1)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewLoadCargoCommand(t *testing.T) {
	serial := newTestSerial(t, kernel.Liquid, 1)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewLoadCargoCommand(serial, 12.5)

		require.NoError(t, err)
		assert.True(t, cmd.SerialNumber().IsEqual(serial))
		assert.InDelta(t, 12.5, cmd.Mass(), 1e-9)
	})

	for _, mass := range []float64{-1, math.NaN(), math.Inf(1)} {
		t.Run("rejects invalid mass", func(t *testing.T) {
			_, err := commands.NewLoadCargoCommand(serial, mass)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}

	t.Run("aggregates errors", func(t *testing.T) {
		_, err := commands.NewLoadCargoCommand(kernel.SerialNumber{}, -1)

		require.ErrorIs(t, err, kernel.ErrSerialNumberIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSerialCommandsRejectZeroSerial(t *testing.T) {
	var zero kernel.SerialNumber

	_, err := commands.NewDeleteContainerCommand(zero)
	require.ErrorIs(t, err, kernel.ErrSerialNumberIsNotConstructed)

	_, err = commands.NewDispatchContainerCommand(zero)
	require.ErrorIs(t, err, kernel.ErrSerialNumberIsNotConstructed)

	_, err = commands.NewUnloadCargoCommand(zero)
	require.ErrorIs(t, err, kernel.ErrSerialNumberIsNotConstructed)

	_, err = commands.NewLoadContainerOnShipCommand(kernel.NewUUID(), zero)
	require.ErrorIs(t, err, kernel.ErrSerialNumberIsNotConstructed)

	_, err = commands.NewRemoveContainerFromShipCommand(kernel.UUID{}, zero)
	require.ErrorIs(t, err, kernel.ErrSerialNumberIsNotConstructed)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewDeleteShipCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCommandsBuiltWithoutConstructorFailValidation(t *testing.T) {
	assert.ErrorIs(t, commands.CreateShipCommand{}.Validate(), commands.ErrCreateShipCommandIsNotConstructed)
	assert.ErrorIs(t, commands.DeleteShipCommand{}.Validate(), commands.ErrDeleteShipCommandIsNotConstructed)
	assert.ErrorIs(t, commands.CreateContainerCommand{}.Validate(), commands.ErrCreateContainerCommandIsNotConstructed)
	assert.ErrorIs(t, commands.DeleteContainerCommand{}.Validate(), commands.ErrDeleteContainerCommandIsNotConstructed)
	assert.ErrorIs(t, commands.LoadContainerOnShipCommand{}.Validate(),
		commands.ErrLoadContainerOnShipCommandIsNotConstructed)
	assert.ErrorIs(t, commands.DispatchContainerCommand{}.Validate(), commands.ErrDispatchContainerCommandIsNotConstructed)
	assert.ErrorIs(t, commands.RemoveContainerFromShipCommand{}.Validate(),
		commands.ErrRemoveContainerFromShipCommandIsNotConstructed)
	assert.ErrorIs(t, commands.LoadCargoCommand{}.Validate(), commands.ErrLoadCargoCommandIsNotConstructed)
	assert.ErrorIs(t, commands.UnloadCargoCommand{}.Validate(), commands.ErrUnloadCargoCommandIsNotConstructed)
}
