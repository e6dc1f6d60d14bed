package ship

import (
	"errors"
	"fmt"
	"math"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	// ErrCapacityExceeded is the sentinel wrapped by every CapacityExceededError.
	ErrCapacityExceeded = errors.New("ship capacity exceeded")

	// ErrShipIsNotConstructed is returned when using a ship built without NewShip or RestoreShip.
	ErrShipIsNotConstructed = errors.New("Ship must be created via NewShip constructor")

	// ErrContainerIsRequired is returned when loading a nil container.
	ErrContainerIsRequired = errs.NewValueIsRequiredError("container")
)

// CapacityReason tells which ship limit rejected a load.
type CapacityReason string

const (
	CapacityReasonCount  CapacityReason = "count"
	CapacityReasonWeight CapacityReason = "weight"
)

// CapacityExceededError reports a container the ship could not take.
type CapacityExceededError struct {
	Reason CapacityReason
	Serial kernel.SerialNumber
	// Current and Limit are container counts or weights, depending on Reason.
	Current float64
	Adding  float64
	Limit   float64
}

func (e *CapacityExceededError) Error() string {
	if e.Reason == CapacityReasonCount {
		return fmt.Sprintf("%s: cannot load %s, ship already carries %g of %g containers",
			ErrCapacityExceeded, e.Serial, e.Current, e.Limit)
	}
	return fmt.Sprintf("%s: cannot load %s weighing %g, ship carries %g of max %g",
		ErrCapacityExceeded, e.Serial, e.Adding, e.Current, e.Limit)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// Ship is an aggregate root owning the containers loaded on it.
//
// Business rules:
//   - maxSpeed, maxContainerCount and maxWeight are non-negative and fixed at creation
//   - containers keep their loading order
//   - a container belongs to at most one ship and is never handed back to the pool
//   - the sum of container gross weights never exceeds maxWeight
//
// Example usage:
//
//	s, err := ship.NewShip(kernel.NewUUID(), 20, 10, 40000)
//	if err != nil {
//	    // handle validation error
//	}
//	err = s.LoadContainer(c)
type Ship struct {
	id                kernel.UUID
	maxSpeed          float64
	maxContainerCount int
	maxWeight         float64
	containers        []container.Container

	guard guard.ConstructorGuard
}

// NewShip creates an empty ship. All limits must be non-negative; a zero
// maxContainerCount yields a ship that accepts nothing.
func NewShip(id kernel.UUID, maxSpeed float64, maxContainerCount int, maxWeight float64) (*Ship, error) {
	s := &Ship{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setMaxSpeed(maxSpeed),
		s.setMaxContainerCount(maxContainerCount),
		s.setMaxWeight(maxWeight),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShip rebuilds a ship from the registry with its containers in loading order.
// Every container must already be attached to id, and the restored load must
// respect both limits.
func RestoreShip(
	id kernel.UUID,
	maxSpeed float64,
	maxContainerCount int,
	maxWeight float64,
	containers []container.Container,
) (*Ship, error) {
	s, err := NewShip(id, maxSpeed, maxContainerCount, maxWeight)
	if err != nil {
		return nil, err
	}

	if len(containers) > maxContainerCount {
		return nil, errs.NewValueIsOutOfRangeError("containers", len(containers), 0, maxContainerCount)
	}

	var total float64
	for i, c := range containers {
		if c == nil {
			return nil, fmt.Errorf("container %d: %w", i, ErrContainerIsRequired)
		}
		if err = c.Validate(); err != nil {
			return nil, fmt.Errorf("container %d: %w", i, err)
		}
		owner := c.ShipID()
		if owner == nil || !owner.IsEqual(id) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"containers",
				fmt.Errorf("%s is not attached to ship %s", c.SerialNumber(), id),
			)
		}
		total += c.GrossWeight()
	}
	if total > maxWeight {
		return nil, errs.NewValueIsOutOfRangeError("totalWeight", total, 0, maxWeight)
	}

	s.containers = append(make([]container.Container, 0, len(containers)), containers...)
	return s, nil
}

func (s *Ship) ID() kernel.UUID {
	return s.id
}

func (s *Ship) MaxSpeed() float64 {
	return s.maxSpeed
}

func (s *Ship) MaxContainerCount() int {
	return s.maxContainerCount
}

func (s *Ship) MaxWeight() float64 {
	return s.maxWeight
}

// Containers returns the loaded containers in loading order. The slice is a copy.
func (s *Ship) Containers() []container.Container {
	out := make([]container.Container, len(s.containers))
	copy(out, s.containers)
	return out
}

func (s *Ship) ContainerCount() int {
	return len(s.containers)
}

// TotalWeight sums the gross weight of every loaded container.
func (s *Ship) TotalWeight() float64 {
	var total float64
	for _, c := range s.containers {
		total += c.GrossWeight()
	}
	return total
}

// CanLoad reports whether LoadContainer would accept c.
func (s *Ship) CanLoad(c container.Container) bool {
	return s.checkLoad(c) == nil
}

// LoadContainer appends c and attaches it to the ship. On any error neither the
// ship nor the container is modified.
func (s *Ship) LoadContainer(c container.Container) error {
	if err := s.checkLoad(c); err != nil {
		return err
	}

	if err := c.AttachToShip(s.id); err != nil {
		return err
	}
	s.containers = append(s.containers, c)
	return nil
}

// RemoveContainer drops the container with the given serial number from the ship.
// It reports whether anything was removed; an unknown serial is a no-op.
// The removed container keeps its ship association and does not return to the pool.
func (s *Ship) RemoveContainer(serial kernel.SerialNumber) bool {
	for i, c := range s.containers {
		if c.SerialNumber().IsEqual(serial) {
			s.containers = append(s.containers[:i], s.containers[i+1:]...)
			return true
		}
	}
	return false
}

// FindContainer returns the loaded container with the given serial number.
func (s *Ship) FindContainer(serial kernel.SerialNumber) (container.Container, bool) {
	for _, c := range s.containers {
		if c.SerialNumber().IsEqual(serial) {
			return c, true
		}
	}
	return nil, false
}

func (s *Ship) Validate() error {
	if s == nil {
		return ErrShipIsNotConstructed
	}
	return s.guard.Validate(ErrShipIsNotConstructed)
}

func (s *Ship) checkLoad(c container.Container) error {
	if c == nil {
		return ErrContainerIsRequired
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if c.IsLoaded() {
		return fmt.Errorf("%w: %s", container.ErrContainerAlreadyLoaded, c.SerialNumber())
	}

	if len(s.containers) >= s.maxContainerCount {
		return &CapacityExceededError{
			Reason:  CapacityReasonCount,
			Serial:  c.SerialNumber(),
			Current: float64(len(s.containers)),
			Adding:  1,
			Limit:   float64(s.maxContainerCount),
		}
	}

	total := s.TotalWeight()
	if total+c.GrossWeight() > s.maxWeight {
		return &CapacityExceededError{
			Reason:  CapacityReasonWeight,
			Serial:  c.SerialNumber(),
			Current: total,
			Adding:  c.GrossWeight(),
			Limit:   s.maxWeight,
		}
	}
	return nil
}

func (s *Ship) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Ship) setMaxSpeed(maxSpeed float64) error {
	if err := validateLimit("maxSpeed", maxSpeed); err != nil {
		return err
	}

	s.maxSpeed = maxSpeed
	return nil
}

func (s *Ship) setMaxContainerCount(maxContainerCount int) error {
	if maxContainerCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxContainerCount",
			fmt.Errorf("%d is less than 0", maxContainerCount),
		)
	}

	s.maxContainerCount = maxContainerCount
	return nil
}

func (s *Ship) setMaxWeight(maxWeight float64) error {
	if err := validateLimit("maxWeight", maxWeight); err != nil {
		return err
	}

	s.maxWeight = maxWeight
	return nil
}

func validateLimit(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is not a finite number", value))
	}
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is less than 0", value))
	}
	return nil
}
