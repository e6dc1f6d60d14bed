package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"fleet/internal/adapters/in/menu"
	"fleet/internal/adapters/out/hazard"
	"fleet/internal/adapters/out/sqlite"
	"fleet/internal/adapters/out/sqlite/containerrepo"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/services"
	"fleet/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *sqlite.GormUnitOfWorkFactory
	containers *container.Factory
	publisher  ports.HazardPublisher
	logger     *slog.Logger
}

// NewCompositionRoot wires the use cases over gormDB. console receives hazard
// notices meant for the operator. The serial counter resumes after the highest
// sequence already stored, so serials stay unique for a reused database.
func NewCompositionRoot(
	ctx context.Context,
	cfg Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
	console io.Writer,
) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	last, err := containerrepo.LastSerialSequence(ctx, gormDB)
	if err != nil {
		return nil, fmt.Errorf("failed to read serial sequence: %w", err)
	}

	containers, err := container.NewFactory(kernel.ResumeSerialCounter(last))
	if err != nil {
		return nil, err
	}

	publishers := hazard.MultiPublisher{hazard.NewConsolePublisher(console, cfg.Menu.Color)}
	if cfg.Menu.HazardLog {
		publishers = append(publishers, hazard.NewLoggerPublisher(logger))
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: sqlite.NewGormUnitOfWorkFactory(gormDB, logger),
		containers: containers,
		publisher:  publishers,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) shipUoWFactory() commands.ShipUoWFactory {
	return FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) containerUoWFactory() commands.ContainerUoWFactory {
	return FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateShipCommandHandler() commands.CreateShipCommandHandler {
	return commands.NewCreateShipCommandHandler(c.shipUoWFactory())
}

func (c *CompositionRoot) CreateDeleteShipCommandHandler() commands.DeleteShipCommandHandler {
	return commands.NewDeleteShipCommandHandler(c.shipUoWFactory())
}

func (c *CompositionRoot) CreateCreateContainerCommandHandler() commands.CreateContainerCommandHandler {
	return commands.NewCreateContainerCommandHandler(c.containerUoWFactory(), c.containers)
}

func (c *CompositionRoot) CreateDeleteContainerCommandHandler() commands.DeleteContainerCommandHandler {
	return commands.NewDeleteContainerCommandHandler(c.containerUoWFactory())
}

func (c *CompositionRoot) CreateLoadContainerOnShipCommandHandler() commands.LoadContainerOnShipCommandHandler {
	return commands.NewLoadContainerOnShipCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateDispatchContainerCommandHandler() commands.DispatchContainerCommandHandler {
	return commands.NewDispatchContainerCommandHandler(c.uow(), services.NewContainerDispatcher())
}

func (c *CompositionRoot) CreateRemoveContainerFromShipCommandHandler() commands.RemoveContainerFromShipCommandHandler {
	return commands.NewRemoveContainerFromShipCommandHandler(c.shipUoWFactory())
}

func (c *CompositionRoot) CreateLoadCargoCommandHandler() commands.LoadCargoCommandHandler {
	return commands.NewLoadCargoCommandHandler(c.containerUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUnloadCargoCommandHandler() commands.UnloadCargoCommandHandler {
	return commands.NewUnloadCargoCommandHandler(c.containerUoWFactory())
}

func (c *CompositionRoot) CreateGetAllShipsQueryHandler() queries.GetAllShipsQueryHandler {
	return queries.NewGetAllShipsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFreeContainersQueryHandler() queries.GetFreeContainersQueryHandler {
	return queries.NewGetFreeContainersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipContainersQueryHandler() queries.GetShipContainersQueryHandler {
	return queries.NewGetShipContainersQueryHandler(c.gormDB)
}

// CreateMenu builds the interactive menu over every use case.
func (c *CompositionRoot) CreateMenu(in io.Reader, out io.Writer) *menu.Menu {
	handlers := menu.Handlers{
		CreateShip:              c.CreateCreateShipCommandHandler(),
		DeleteShip:              c.CreateDeleteShipCommandHandler(),
		CreateContainer:         c.CreateCreateContainerCommandHandler(),
		DeleteContainer:         c.CreateDeleteContainerCommandHandler(),
		LoadContainerOnShip:     c.CreateLoadContainerOnShipCommandHandler(),
		DispatchContainer:       c.CreateDispatchContainerCommandHandler(),
		RemoveContainerFromShip: c.CreateRemoveContainerFromShipCommandHandler(),
		LoadCargo:               c.CreateLoadCargoCommandHandler(),
		UnloadCargo:             c.CreateUnloadCargoCommandHandler(),
		GetAllShips:             c.CreateGetAllShipsQueryHandler(),
		GetFreeContainers:       c.CreateGetFreeContainersQueryHandler(),
		GetShipContainers:       c.CreateGetShipContainersQueryHandler(),
	}
	return menu.NewMenu(handlers, in, out, c.cfg.Menu.Color, c.logger)
}

type FuncShipUoWFactory func() commands.ShipUoW

func (f FuncShipUoWFactory) Create() commands.ShipUoW {
	return f()
}

type FuncContainerUoWFactory func() commands.ContainerUoW

func (f FuncContainerUoWFactory) Create() commands.ContainerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
