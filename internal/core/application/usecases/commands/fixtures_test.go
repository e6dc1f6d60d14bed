package commands_test

import (
	"testing"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/ship"

	"github.com/stretchr/testify/require"
)

var testDims = container.Dimensions{MaxCapacity: 100, OwnWeight: 100, Height: 250, Depth: 600}

func newTestFactory(t *testing.T) *container.Factory {
	t.Helper()
	factory, err := container.NewFactory(kernel.NewSerialCounter())
	require.NoError(t, err)
	return factory
}

func newTestShip(t *testing.T, maxCount int, maxWeight float64) *ship.Ship {
	t.Helper()
	s, err := ship.NewShip(kernel.NewUUID(), 20, maxCount, maxWeight)
	require.NoError(t, err)
	return s
}

func newTestSerial(t *testing.T, kind kernel.ContainerKind, seq uint64) kernel.SerialNumber {
	t.Helper()
	serial, err := kernel.NewSerialNumber(kind, seq)
	require.NoError(t, err)
	return serial
}
