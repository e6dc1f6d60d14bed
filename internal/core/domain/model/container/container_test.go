package container_test

import (
	"errors"
	"math"
	"testing"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensions_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		dims        container.Dimensions
		shouldError string
	}{
		{"all zero", container.Dimensions{}, ""},
		{"typical", container.Dimensions{MaxCapacity: 1000, OwnWeight: 200, Height: 2.5, Depth: 6}, ""},
		{"negative capacity", container.Dimensions{MaxCapacity: -1}, "maxCapacity"},
		{"negative own weight", container.Dimensions{OwnWeight: -0.1}, "ownWeight"},
		{"negative height", container.Dimensions{Height: -3}, "height"},
		{"negative depth", container.Dimensions{Depth: -3}, "depth"},
		{"NaN capacity", container.Dimensions{MaxCapacity: math.NaN()}, "maxCapacity"},
		{"infinite weight", container.Dimensions{OwnWeight: math.Inf(1)}, "ownWeight"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.dims.Validate()

			if tc.shouldError == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), tc.shouldError)
		})
	}

	t.Run("aggregates every failure", func(t *testing.T) {
		err := container.Dimensions{MaxCapacity: -1, OwnWeight: -1, Height: -1, Depth: -1}.Validate()

		require.Error(t, err)
		for _, name := range []string{"maxCapacity", "ownWeight", "height", "depth"} {
			assert.Contains(t, err.Error(), name)
		}
	})
}

func TestBaseLoad(t *testing.T) {
	t.Run("adds mass up to max capacity", func(t *testing.T) {
		c := newRefrigerated(t, 100)

		require.NoError(t, c.Load(60))
		require.NoError(t, c.Load(40))

		assert.InDelta(t, 100, c.CargoMass(), 1e-9)
		assert.InDelta(t, 200, c.GrossWeight(), 1e-9)
	})

	t.Run("rejects overfill without mutation", func(t *testing.T) {
		c := newRefrigerated(t, 100)
		require.NoError(t, c.Load(70))

		err := c.Load(31)

		var overfill *container.OverfillError
		require.ErrorAs(t, err, &overfill)
		require.ErrorIs(t, err, container.ErrOverfill)
		assert.InDelta(t, 31, overfill.Attempted, 1e-9)
		assert.InDelta(t, 70, overfill.Current, 1e-9)
		assert.InDelta(t, 100, overfill.Limit, 1e-9)
		assert.Equal(t, "KON-C-3", overfill.Serial.String())
		assert.InDelta(t, 70, c.CargoMass(), 1e-9)
	})

	t.Run("rejects negative mass", func(t *testing.T) {
		c := newRefrigerated(t, 100)

		err := c.Load(-5)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Zero(t, c.CargoMass())
	})

	t.Run("zero mass is accepted", func(t *testing.T) {
		c := newRefrigerated(t, 0)

		require.NoError(t, c.Load(0))
		assert.Zero(t, c.CargoMass())
	})
}

func TestBaseUnload(t *testing.T) {
	c := newRefrigerated(t, 100)
	require.NoError(t, c.Load(55))

	c.Unload()

	assert.Zero(t, c.CargoMass())
}

func TestCapacityInvariantHoldsAcrossSequences(t *testing.T) {
	containers := []container.Container{
		newLiquid(t, true, 100),
		newLiquid(t, false, 100),
		newGas(t, 100),
		newRefrigerated(t, 100),
	}
	masses := []float64{10, 45, 50, 0, 91, 30, 100, 5, 60, 20}

	for _, c := range containers {
		for i, m := range masses {
			_ = c.Load(m)
			if i%3 == 2 {
				c.Unload()
			}
			assert.GreaterOrEqual(t, c.CargoMass(), 0.0, c.SerialNumber().String())
			assert.LessOrEqual(t, c.CargoMass(), c.MaxCapacity(), c.SerialNumber().String())
		}
	}
}

func TestAttachToShip(t *testing.T) {
	t.Run("records membership once", func(t *testing.T) {
		c := newGas(t, 100)
		shipID := kernel.NewUUID()

		require.False(t, c.IsLoaded())
		require.Nil(t, c.ShipID())

		require.NoError(t, c.AttachToShip(shipID))
		assert.True(t, c.IsLoaded())
		assert.True(t, c.ShipID().IsEqual(shipID))

		err := c.AttachToShip(kernel.NewUUID())
		require.ErrorIs(t, err, container.ErrContainerAlreadyLoaded)
		assert.True(t, c.ShipID().IsEqual(shipID))
	})

	t.Run("rejects zero ship ID", func(t *testing.T) {
		c := newGas(t, 100)

		err := c.AttachToShip(kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.False(t, c.IsLoaded())
	})

	t.Run("ShipID returns a copy", func(t *testing.T) {
		c := newGas(t, 100)
		require.NoError(t, c.AttachToShip(kernel.NewUUID()))

		id := c.ShipID()
		*id = kernel.NewUUID()

		assert.False(t, c.ShipID().IsEqual(*id))
	})
}

func TestConstructorsRejectMismatchedSerial(t *testing.T) {
	_, err := container.NewLiquidContainer(serial(t, kernel.Gas, 1), false, dims(10))
	require.ErrorIs(t, err, container.ErrSerialKindMismatch)

	_, err = container.NewGasContainer(serial(t, kernel.Refrigerated, 1), 1, dims(10))
	require.ErrorIs(t, err, container.ErrSerialKindMismatch)

	_, err = container.NewRefrigeratedContainer(serial(t, kernel.Liquid, 1), "Fish", -18, dims(10))
	require.ErrorIs(t, err, container.ErrSerialKindMismatch)
}

func TestConstructorsAggregateErrors(t *testing.T) {
	var zeroSerial kernel.SerialNumber

	_, err := container.NewLiquidContainer(zeroSerial, true, container.Dimensions{MaxCapacity: -1})

	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrSerialNumberIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestoreContainers(t *testing.T) {
	t.Run("restores cargo and ship membership", func(t *testing.T) {
		shipID := kernel.NewUUID()

		c, err := container.RestoreGasContainer(serial(t, kernel.Gas, 9), 2, dims(100), 40, &shipID)

		require.NoError(t, err)
		assert.InDelta(t, 40, c.CargoMass(), 1e-9)
		assert.True(t, c.ShipID().IsEqual(shipID))
		require.NoError(t, c.Validate())
	})

	t.Run("rejects cargo above capacity", func(t *testing.T) {
		_, err := container.RestoreRefrigeratedContainer(serial(t, kernel.Refrigerated, 4), "Fish", -18, dims(100), 101, nil)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects negative cargo", func(t *testing.T) {
		_, err := container.RestoreLiquidContainer(serial(t, kernel.Liquid, 4), false, dims(100), -1, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValidate(t *testing.T) {
	t.Run("nil container", func(t *testing.T) {
		var c *container.LiquidContainer

		require.ErrorIs(t, c.Validate(), container.ErrContainerIsNotConstructed)
	})

	t.Run("literal container", func(t *testing.T) {
		c := &container.RefrigeratedContainer{}

		require.ErrorIs(t, c.Validate(), container.ErrContainerIsNotConstructed)
	})

	t.Run("constructed container", func(t *testing.T) {
		require.NoError(t, newLiquid(t, false, 1).Validate())
	})
}

func TestOverfillErrorMessage(t *testing.T) {
	err := &container.OverfillError{Serial: serial(t, kernel.Liquid, 5), Attempted: 51, Current: 0, Limit: 50}

	assert.Equal(t, "overfill: KON-L-5 cannot take 51 more (cargo 0, limit 50)", err.Error())
	assert.True(t, errors.Is(err, container.ErrOverfill))
}
