// Package menu is the interactive console front end of the fleet. It reads one
// action per line, turns the answers into commands and queries, and prints the
// outcome. Ships are addressed by their 1-based position in the listing and
// containers by serial number.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/application/usecases/queries"

	"github.com/labstack/gommon/color"
)

// Handlers are the use cases the menu drives.
type Handlers struct {
	CreateShip              commands.CreateShipCommandHandler
	DeleteShip              commands.DeleteShipCommandHandler
	CreateContainer         commands.CreateContainerCommandHandler
	DeleteContainer         commands.DeleteContainerCommandHandler
	LoadContainerOnShip     commands.LoadContainerOnShipCommandHandler
	DispatchContainer       commands.DispatchContainerCommandHandler
	RemoveContainerFromShip commands.RemoveContainerFromShipCommandHandler
	LoadCargo               commands.LoadCargoCommandHandler
	UnloadCargo             commands.UnloadCargoCommandHandler

	GetAllShips       queries.GetAllShipsQueryHandler
	GetFreeContainers queries.GetFreeContainersQueryHandler
	GetShipContainers queries.GetShipContainersQueryHandler
}

// errExit ends the session from the exit action.
var errExit = errors.New("exit")

type action struct {
	label string
	run   func(m *Menu, ctx context.Context) error
}

var actions = []action{
	{"Add ship", (*Menu).addShip},
	{"Remove ship", (*Menu).removeShip},
	{"Add container", (*Menu).addContainer},
	{"Remove container", (*Menu).removeContainer},
	{"Load container onto ship", (*Menu).loadContainerOnShip},
	{"Dispatch container to a ship", (*Menu).dispatchContainer},
	{"Remove container from ship", (*Menu).removeContainerFromShip},
	{"Load cargo into container", (*Menu).loadCargo},
	{"Unload container", (*Menu).unloadCargo},
	{"Show ship containers", (*Menu).showShipContainers},
}

type Menu struct {
	handlers Handlers
	in       *bufio.Scanner
	out      io.Writer
	color    *color.Color
	logger   *slog.Logger
}

// NewMenu builds a menu reading from in and writing to out. Color is used only
// when colored is set and out is a terminal.
func NewMenu(handlers Handlers, in io.Reader, out io.Writer, colored bool, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.Default()
	}

	c := color.New()
	c.SetOutput(out)
	if !colored {
		c.Disable()
	}

	return &Menu{
		handlers: handlers,
		in:       bufio.NewScanner(in),
		out:      out,
		color:    c,
		logger:   logger.With("component", "menu"),
	}
}

// Run shows the fleet and serves actions until the exit action is chosen or
// the input ends. Failed actions are reported and the loop goes on. Input
// failures, listing failures and context cancellation stop it with an error.
func (m *Menu) Run(ctx context.Context) error {
	m.logger.DebugContext(ctx, "menu started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := m.step(ctx)
		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			m.logger.DebugContext(ctx, "menu stopped")
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			var sessionErr *sessionError
			if errors.As(err, &sessionErr) {
				return sessionErr.err
			}
			m.reportFailure(ctx, err)
		}
	}
}

func (m *Menu) step(ctx context.Context) error {
	if err := m.printOverview(ctx); err != nil {
		return &sessionError{err: fmt.Errorf("failed to list the fleet: %w", err)}
	}

	m.printf("\nActions:\n")
	for i, a := range actions {
		m.printf("%d. %s\n", i+1, a.label)
	}
	m.printf("0. Exit\n")

	choice, err := m.readInt("Choose an option: ")
	if err != nil {
		return err
	}

	if choice == 0 {
		return errExit
	}
	if choice < 0 || choice > len(actions) {
		m.println(m.color.Red("Invalid option."))
		return nil
	}

	a := actions[choice-1]
	m.logger.DebugContext(ctx, "action selected", "action", a.label)
	return a.run(m, ctx)
}

func (m *Menu) printOverview(ctx context.Context) error {
	ships, err := m.handlers.GetAllShips.Handle(ctx, queries.NewGetAllShipsQuery())
	if err != nil {
		return err
	}

	m.println(m.color.Bold("Ships:"))
	if len(ships) == 0 {
		m.println("None")
	}
	for _, s := range ships {
		m.printf("Ship %d (speed=%g, maxContainerNum=%d, maxWeight=%g, containers=%d, weight=%g)\n",
			s.Position, s.MaxSpeed, s.MaxContainerCount, s.MaxWeight, s.ContainerCount, s.TotalWeight)
	}

	free, err := m.handlers.GetFreeContainers.Handle(ctx, queries.NewGetFreeContainersQuery())
	if err != nil {
		return err
	}

	m.println(m.color.Bold("Containers:"))
	if len(free) == 0 {
		m.println("None")
	}
	for _, c := range free {
		m.println(formatContainer(c))
	}

	return nil
}

func formatContainer(c queries.ContainerView) string {
	return fmt.Sprintf("%s (%s, cargo=%g/%g, ownWeight=%g)",
		c.Serial, c.Kind.Name(), c.CargoMass, c.MaxCapacity, c.OwnWeight)
}

func (m *Menu) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}

func (m *Menu) success(format string, args ...any) error {
	m.println(m.color.Green(fmt.Sprintf(format, args...)))
	return nil
}
