package container

import (
	"errors"
	"fmt"
	"math"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

var (
	// ErrOverfill is the sentinel wrapped by every OverfillError.
	ErrOverfill = errors.New("overfill")

	// ErrContainerAlreadyLoaded is returned when attaching a container that already sits on a ship.
	ErrContainerAlreadyLoaded = errors.New("container already belongs to a ship")

	// ErrContainerIsNotConstructed is returned when using a container built without its constructor.
	ErrContainerIsNotConstructed = errors.New("container must be created via its constructor")

	// ErrSerialKindMismatch is returned when a serial number's <TYPE> differs from the variant.
	ErrSerialKindMismatch = errors.New("serial number kind does not match container kind")
)

// Container is the behavior shared by the liquid, gas and refrigerated variants.
type Container interface {
	SerialNumber() kernel.SerialNumber
	Kind() kernel.ContainerKind
	CargoMass() float64
	MaxCapacity() float64
	OwnWeight() float64
	Height() float64
	Depth() float64

	// GrossWeight is own weight plus cargo mass, the figure ships account for.
	GrossWeight() float64

	// ShipID is nil while the container is in the free pool.
	ShipID() *kernel.UUID
	IsLoaded() bool

	// Load adds mass to the cargo. It fails with an *OverfillError, without mutation,
	// when the result would exceed the variant's limit.
	Load(mass float64) error

	// Unload empties the cargo according to the variant's policy.
	Unload()

	// AttachToShip records the ship that took ownership of the container.
	AttachToShip(shipID kernel.UUID) error

	Validate() error
}

// Dimensions are the fixed physical parameters every variant is built with.
type Dimensions struct {
	MaxCapacity float64
	OwnWeight   float64
	Height      float64
	Depth       float64
}

// Validate requires every dimension to be a finite, non-negative number.
func (d Dimensions) Validate() error {
	return errors.Join(
		validateNonNegative("maxCapacity", d.MaxCapacity),
		validateNonNegative("ownWeight", d.OwnWeight),
		validateNonNegative("height", d.Height),
		validateNonNegative("depth", d.Depth),
	)
}

// OverfillError reports a load rejected because Current+Attempted would pass Limit,
// or, for liquids, because Attempted alone passes the hazard-adjusted Limit.
type OverfillError struct {
	Serial    kernel.SerialNumber
	Attempted float64
	Current   float64
	Limit     float64
}

func (e *OverfillError) Error() string {
	return fmt.Sprintf("%s: %s cannot take %g more (cargo %g, limit %g)",
		ErrOverfill, e.Serial, e.Attempted, e.Current, e.Limit)
}

func (e *OverfillError) Unwrap() error {
	return ErrOverfill
}

// base carries the fields and the default load/unload algorithm. Variants embed it
// and shadow Load or Unload where their rules differ.
type base struct {
	serialNumber kernel.SerialNumber
	cargoMass    float64
	dimensions   Dimensions
	shipID       *kernel.UUID

	guard guard.ConstructorGuard
}

func newBase(kind kernel.ContainerKind, serial kernel.SerialNumber, dims Dimensions) (base, error) {
	b := base{guard: guard.NewConstructorGuard()}

	if err := errors.Join(b.setSerialNumber(kind, serial), b.setDimensions(dims)); err != nil {
		return base{}, err
	}
	return b, nil
}

func restoreBase(
	kind kernel.ContainerKind,
	serial kernel.SerialNumber,
	dims Dimensions,
	cargoMass float64,
	shipID *kernel.UUID,
) (base, error) {
	b, err := newBase(kind, serial, dims)
	if err != nil {
		return base{}, err
	}

	if err = errors.Join(b.setCargoMass(cargoMass), b.setShipID(shipID)); err != nil {
		return base{}, err
	}
	return b, nil
}

func (b *base) SerialNumber() kernel.SerialNumber {
	return b.serialNumber
}

func (b *base) Kind() kernel.ContainerKind {
	return b.serialNumber.Kind()
}

func (b *base) CargoMass() float64 {
	return b.cargoMass
}

func (b *base) MaxCapacity() float64 {
	return b.dimensions.MaxCapacity
}

func (b *base) OwnWeight() float64 {
	return b.dimensions.OwnWeight
}

func (b *base) Height() float64 {
	return b.dimensions.Height
}

func (b *base) Depth() float64 {
	return b.dimensions.Depth
}

func (b *base) GrossWeight() float64 {
	return b.dimensions.OwnWeight + b.cargoMass
}

func (b *base) ShipID() *kernel.UUID {
	if b.shipID == nil {
		return nil
	}
	id := *b.shipID
	return &id
}

func (b *base) IsLoaded() bool {
	return b.shipID != nil
}

// Load adds mass unless cargoMass+mass would exceed the max capacity.
func (b *base) Load(mass float64) error {
	if err := validateMass(mass); err != nil {
		return err
	}

	if b.cargoMass+mass > b.dimensions.MaxCapacity {
		return &OverfillError{
			Serial:    b.serialNumber,
			Attempted: mass,
			Current:   b.cargoMass,
			Limit:     b.dimensions.MaxCapacity,
		}
	}

	b.cargoMass += mass
	return nil
}

// Unload empties the cargo completely.
func (b *base) Unload() {
	b.cargoMass = 0
}

func (b *base) AttachToShip(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}
	if b.shipID != nil {
		return ErrContainerAlreadyLoaded
	}

	b.shipID = &shipID
	return nil
}

func (b *base) Validate() error {
	if b == nil {
		return ErrContainerIsNotConstructed
	}
	return b.guard.Validate(ErrContainerIsNotConstructed)
}

func (b *base) setSerialNumber(kind kernel.ContainerKind, serial kernel.SerialNumber) error {
	if err := serial.Validate(); err != nil {
		return err
	}
	if serial.Kind() != kind {
		return fmt.Errorf("%w: %s is not a %s serial", ErrSerialKindMismatch, serial, kind.Name())
	}

	b.serialNumber = serial
	return nil
}

func (b *base) setDimensions(dims Dimensions) error {
	if err := dims.Validate(); err != nil {
		return err
	}

	b.dimensions = dims
	return nil
}

// setCargoMass is used during restoration only; loads go through Load.
func (b *base) setCargoMass(cargoMass float64) error {
	if err := validateNonNegative("cargoMass", cargoMass); err != nil {
		return err
	}
	if cargoMass > b.dimensions.MaxCapacity {
		return errs.NewValueIsOutOfRangeError("cargoMass", cargoMass, 0, b.dimensions.MaxCapacity)
	}

	b.cargoMass = cargoMass
	return nil
}

func (b *base) setShipID(shipID *kernel.UUID) error {
	if shipID == nil {
		b.shipID = nil
		return nil
	}
	if err := shipID.Validate(); err != nil {
		return err
	}

	id := *shipID
	b.shipID = &id
	return nil
}

func validateMass(mass float64) error {
	return validateNonNegative("mass", mass)
}

func validateNonNegative(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is not a finite number", value))
	}
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is less than 0", value))
	}
	return nil
}
