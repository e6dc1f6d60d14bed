package container_test

import (
	"testing"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func serial(t *testing.T, kind kernel.ContainerKind, seq uint64) kernel.SerialNumber {
	t.Helper()
	s, err := kernel.NewSerialNumber(kind, seq)
	require.NoError(t, err)
	return s
}

func dims(maxCapacity float64) container.Dimensions {
	return container.Dimensions{MaxCapacity: maxCapacity, OwnWeight: 100, Height: 250, Depth: 600}
}

func newLiquid(t *testing.T, hazardous bool, maxCapacity float64) *container.LiquidContainer {
	t.Helper()
	c, err := container.NewLiquidContainer(serial(t, kernel.Liquid, 1), hazardous, dims(maxCapacity))
	require.NoError(t, err)
	return c
}

func newGas(t *testing.T, maxCapacity float64) *container.GasContainer {
	t.Helper()
	c, err := container.NewGasContainer(serial(t, kernel.Gas, 2), 3.5, dims(maxCapacity))
	require.NoError(t, err)
	return c
}

func newRefrigerated(t *testing.T, maxCapacity float64) *container.RefrigeratedContainer {
	t.Helper()
	c, err := container.NewRefrigeratedContainer(serial(t, kernel.Refrigerated, 3), "Bananas", 13.3, dims(maxCapacity))
	require.NoError(t, err)
	return c
}
