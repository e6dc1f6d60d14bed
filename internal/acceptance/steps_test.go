package acceptance_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"fleet/cmd"
	"fleet/internal/adapters/out/sqlite"
	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/ship"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultOwnWeight   = 100
	defaultMaxCapacity = 500
	tolerance          = 1e-9
)

// fleetContext holds one scenario's application and the names it gave to
// containers and ships.
type fleetContext struct {
	db      *gorm.DB
	root    *cmd.CompositionRoot
	console bytes.Buffer

	containers map[string]kernel.SerialNumber
	created    []kernel.SerialNumber
	ships      map[string]kernel.UUID
	err        error
}

func (fc *fleetContext) reset() {
	if fc.db != nil {
		_ = sqlite.Close(fc.db)
	}
	fc.db = nil
	fc.root = nil
	fc.console.Reset()
	fc.containers = make(map[string]kernel.SerialNumber)
	fc.created = nil
	fc.ships = make(map[string]kernel.UUID)
	fc.err = nil
}

// ============================================================================
// Setup Steps
// ============================================================================

func (fc *fleetContext) anEmptyFleet(ctx context.Context) error {
	db, err := sqlite.NewConnection(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		return fmt.Errorf("failed to create registry: %w", err)
	}
	fc.db = db

	cfg := cmd.Config{Menu: cmd.MenuConfig{Color: false}}
	root, err := cmd.NewCompositionRoot(ctx, cfg, db, nil, &fc.console)
	if err != nil {
		return err
	}
	fc.root = root
	return nil
}

func (fc *fleetContext) aShip(ctx context.Context, name string, maxCount int, maxWeight float64) error {
	id := kernel.NewUUID()
	command, err := commands.NewCreateShipCommand(id, 20, maxCount, maxWeight)
	if err != nil {
		return err
	}
	if err = fc.root.CreateCreateShipCommandHandler().Handle(ctx, command); err != nil {
		return err
	}
	fc.ships[name] = id
	return nil
}

// ============================================================================
// Action Steps
// ============================================================================

func (fc *fleetContext) iCreateALiquidContainer(ctx context.Context, kind, name string, maxCapacity float64) error {
	dims := container.Dimensions{MaxCapacity: maxCapacity, OwnWeight: defaultOwnWeight, Height: 2, Depth: 6}
	command, err := commands.NewCreateLiquidContainerCommand(dims, kind == "hazardous")
	if err != nil {
		return err
	}
	return fc.create(ctx, name, command)
}

func (fc *fleetContext) iCreateAGasContainer(ctx context.Context, name string, maxCapacity, ownWeight float64) error {
	dims := container.Dimensions{MaxCapacity: maxCapacity, OwnWeight: ownWeight, Height: 2, Depth: 6}
	command, err := commands.NewCreateGasContainerCommand(dims, 5)
	if err != nil {
		return err
	}
	return fc.create(ctx, name, command)
}

func (fc *fleetContext) iCreateARefrigeratedContainer(
	ctx context.Context,
	name, productType string,
	temperature float64,
) error {
	dims := container.Dimensions{MaxCapacity: defaultMaxCapacity, OwnWeight: defaultOwnWeight, Height: 2, Depth: 6}
	command, err := commands.NewCreateRefrigeratedContainerCommand(dims, productType, temperature)
	if err != nil {
		return err
	}
	return fc.create(ctx, name, command)
}

func (fc *fleetContext) create(ctx context.Context, name string, command commands.CreateContainerCommand) error {
	serial, err := fc.root.CreateCreateContainerCommandHandler().Handle(ctx, command)
	if err != nil {
		return err
	}
	fc.containers[name] = serial
	fc.created = append(fc.created, serial)
	return nil
}

func (fc *fleetContext) iLoadCargo(ctx context.Context, mass float64, name string) error {
	command, err := commands.NewLoadCargoCommand(fc.containers[name], mass)
	if err != nil {
		return err
	}
	fc.err = fc.root.CreateLoadCargoCommandHandler().Handle(ctx, command)
	return nil
}

func (fc *fleetContext) iUnload(ctx context.Context, name string) error {
	command, err := commands.NewUnloadCargoCommand(fc.containers[name])
	if err != nil {
		return err
	}
	fc.err = fc.root.CreateUnloadCargoCommandHandler().Handle(ctx, command)
	return fc.err
}

func (fc *fleetContext) iLoadOntoShip(ctx context.Context, name, shipName string) error {
	command, err := commands.NewLoadContainerOnShipCommand(fc.ships[shipName], fc.containers[name])
	if err != nil {
		return err
	}
	fc.err = fc.root.CreateLoadContainerOnShipCommandHandler().Handle(ctx, command)
	return nil
}

func (fc *fleetContext) iRemoveFromShip(ctx context.Context, name, shipName string) error {
	command, err := commands.NewRemoveContainerFromShipCommand(fc.ships[shipName], fc.containers[name])
	if err != nil {
		return err
	}
	fc.err = fc.root.CreateRemoveContainerFromShipCommandHandler().Handle(ctx, command)
	return nil
}

func (fc *fleetContext) iDeleteContainer(ctx context.Context, name string) error {
	command, err := commands.NewDeleteContainerCommand(fc.containers[name])
	if err != nil {
		return err
	}
	fc.err = fc.root.CreateDeleteContainerCommandHandler().Handle(ctx, command)
	return nil
}

func (fc *fleetContext) iDeleteShip(ctx context.Context, shipName string) error {
	command, err := commands.NewDeleteShipCommand(fc.ships[shipName])
	if err != nil {
		return err
	}
	fc.err = fc.root.CreateDeleteShipCommandHandler().Handle(ctx, command)
	return nil
}

// ============================================================================
// Assertion Steps
// ============================================================================

func (fc *fleetContext) theOperationSucceeds() error {
	if fc.err != nil {
		return fmt.Errorf("expected success, got: %w", fc.err)
	}
	return nil
}

func (fc *fleetContext) theOperationFailsWithAnOverfillError() error {
	var overfill *container.OverfillError
	if !errors.As(fc.err, &overfill) {
		return fmt.Errorf("expected an overfill error, got: %v", fc.err)
	}
	return nil
}

func (fc *fleetContext) theOperationFailsWithACapacityExceededError() error {
	if !errors.Is(fc.err, ship.ErrCapacityExceeded) {
		return fmt.Errorf("expected a capacity exceeded error, got: %v", fc.err)
	}
	return nil
}

func (fc *fleetContext) hasSerialNumber(name, want string) error {
	serial, ok := fc.containers[name]
	if !ok {
		return fmt.Errorf("no container named %q", name)
	}
	if serial.String() != want {
		return fmt.Errorf("expected %s to be %s, got %s", name, want, serial)
	}
	return nil
}

func (fc *fleetContext) serialNumbersAreDistinctAndIncreasing() error {
	for i := 1; i < len(fc.created); i++ {
		if fc.created[i].Sequence() <= fc.created[i-1].Sequence() {
			return fmt.Errorf("%s does not follow %s", fc.created[i], fc.created[i-1])
		}
	}
	return nil
}

func (fc *fleetContext) freeContainer(ctx context.Context, name string) (queries.ContainerView, bool, error) {
	views, err := fc.root.CreateGetFreeContainersQueryHandler().Handle(ctx, queries.NewGetFreeContainersQuery())
	if err != nil {
		return queries.ContainerView{}, false, err
	}
	for _, v := range views {
		if v.Serial.IsEqual(fc.containers[name]) {
			return v, true, nil
		}
	}
	return queries.ContainerView{}, false, nil
}

func (fc *fleetContext) holdsCargo(ctx context.Context, name string, want float64) error {
	view, ok, err := fc.freeContainer(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s is not in the free pool", name)
	}
	if math.Abs(view.CargoMass-want) > tolerance {
		return fmt.Errorf("expected %s to hold %g, got %g", name, want, view.CargoMass)
	}
	return nil
}

func (fc *fleetContext) isInTheFreePool(ctx context.Context, name string) error {
	_, ok, err := fc.freeContainer(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("expected %s in the free pool", name)
	}
	return nil
}

func (fc *fleetContext) isNotInTheFreePool(ctx context.Context, name string) error {
	_, ok, err := fc.freeContainer(ctx, name)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("expected %s to be gone from the free pool", name)
	}
	return nil
}

func (fc *fleetContext) shipCarries(ctx context.Context, shipName string, count int, weight float64) error {
	ships, err := fc.root.CreateGetAllShipsQueryHandler().Handle(ctx, queries.NewGetAllShipsQuery())
	if err != nil {
		return err
	}
	for _, s := range ships {
		if !s.ID.IsEqual(fc.ships[shipName]) {
			continue
		}
		if s.ContainerCount != count || math.Abs(s.TotalWeight-weight) > tolerance {
			return fmt.Errorf("expected %s to carry %d weighing %g, got %d weighing %g",
				shipName, count, weight, s.ContainerCount, s.TotalWeight)
		}
		return nil
	}
	return fmt.Errorf("no ship named %q", shipName)
}

func (fc *fleetContext) aHazardNoticeIsReported(message, name string) error {
	want := fmt.Sprintf("[HAZARD] %s: %s", fc.containers[name], message)
	if !strings.Contains(fc.console.String(), want) {
		return fmt.Errorf("expected %q on the console, got %q", want, fc.console.String())
	}
	return nil
}

func (fc *fleetContext) noHazardNoticeIsReported() error {
	if strings.Contains(fc.console.String(), "[HAZARD]") {
		return fmt.Errorf("unexpected hazard notice: %q", fc.console.String())
	}
	return nil
}

const number = `(-?\d+(?:\.\d+)?)`

func InitializeFleetScenario(sc *godog.ScenarioContext) {
	fc := &fleetContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		fc.reset()
		return ctx, nil
	})
	sc.After(func(ctx context.Context, _ *godog.Scenario, err error) (context.Context, error) {
		fc.reset()
		return ctx, err
	})

	sc.Step(`^an empty fleet$`, fc.anEmptyFleet)
	sc.Step(`^a ship "([^"]*)" with max (\d+) containers? and max weight `+number+`$`, fc.aShip)

	sc.Step(`^I create a (hazardous|non-hazardous) liquid container "([^"]*)" with max capacity `+number+`$`,
		fc.iCreateALiquidContainer)
	sc.Step(`^I create a gas container "([^"]*)" with max capacity `+number+` and own weight `+number+`$`,
		fc.iCreateAGasContainer)
	sc.Step(`^I create a refrigerated container "([^"]*)" carrying "([^"]*)" at `+number+` degrees$`,
		fc.iCreateARefrigeratedContainer)
	sc.Step(`^I load `+number+` kg of cargo into "([^"]*)"$`, fc.iLoadCargo)
	sc.Step(`^I unload "([^"]*)"$`, fc.iUnload)
	sc.Step(`^I load "([^"]*)" onto ship "([^"]*)"$`, fc.iLoadOntoShip)
	sc.Step(`^I remove "([^"]*)" from ship "([^"]*)"$`, fc.iRemoveFromShip)
	sc.Step(`^I delete container "([^"]*)"$`, fc.iDeleteContainer)
	sc.Step(`^I delete ship "([^"]*)"$`, fc.iDeleteShip)

	sc.Step(`^the operation succeeds$`, fc.theOperationSucceeds)
	sc.Step(`^the operation fails with an overfill error$`, fc.theOperationFailsWithAnOverfillError)
	sc.Step(`^the operation fails with a capacity exceeded error$`, fc.theOperationFailsWithACapacityExceededError)
	sc.Step(`^"([^"]*)" has serial number "([^"]*)"$`, fc.hasSerialNumber)
	sc.Step(`^the serial numbers are distinct and increasing$`, fc.serialNumbersAreDistinctAndIncreasing)
	sc.Step(`^"([^"]*)" holds `+number+` kg of cargo$`, fc.holdsCargo)
	sc.Step(`^"([^"]*)" is in the free pool$`, fc.isInTheFreePool)
	sc.Step(`^"([^"]*)" is not in the free pool$`, fc.isNotInTheFreePool)
	sc.Step(`^ship "([^"]*)" carries (\d+) containers? weighing `+number+` kg$`, fc.shipCarries)
	sc.Step(`^a hazard notice "([^"]*)" is reported for "([^"]*)"$`, fc.aHazardNoticeIsReported)
	sc.Step(`^no hazard notice is reported$`, fc.noHazardNoticeIsReported)
}
