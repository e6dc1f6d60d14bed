package commands_test

import (
	"context"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/ship"
	"fleet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipRepository struct{ mock.Mock }

func (m *MockShipRepository) Add(ctx context.Context, s *ship.Ship) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipRepository) Update(ctx context.Context, s *ship.Ship) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipRepository) Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ship.Ship), args.Error(1)
}

func (m *MockShipRepository) GetAll(ctx context.Context) ([]*ship.Ship, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ship.Ship), args.Error(1)
}

func (m *MockShipRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockContainerRepository struct{ mock.Mock }

func (m *MockContainerRepository) Add(ctx context.Context, c container.Container) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContainerRepository) Update(ctx context.Context, c container.Container) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContainerRepository) Get(ctx context.Context, serial kernel.SerialNumber) (container.Container, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(container.Container), args.Error(1)
}

func (m *MockContainerRepository) GetAllFree(ctx context.Context) ([]container.Container, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]container.Container), args.Error(1)
}

func (m *MockContainerRepository) Delete(ctx context.Context, serial kernel.SerialNumber) error {
	args := m.Called(ctx, serial)
	return args.Error(0)
}

// MockUoW satisfies every unit of work flavor the handlers ask for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipRepository() ports.ShipRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipRepository)
}

func (m *MockUoW) ContainerRepository() ports.ContainerRepository {
	args := m.Called()
	return args.Get(0).(ports.ContainerRepository)
}

type MockShipUoWFactory struct{ mock.Mock }

func (m *MockShipUoWFactory) Create() commands.ShipUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipUoW)
}

type MockContainerUoWFactory struct{ mock.Mock }

func (m *MockContainerUoWFactory) Create() commands.ContainerUoW {
	args := m.Called()
	return args.Get(0).(commands.ContainerUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockHazardPublisher struct{ mock.Mock }

func (m *MockHazardPublisher) Publish(ctx context.Context, notice container.HazardNotice) {
	m.Called(ctx, notice)
}
