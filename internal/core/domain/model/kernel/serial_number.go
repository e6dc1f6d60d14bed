package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fleet/internal/pkg/errs"
	"fleet/internal/pkg/guard"
)

const serialNumberPrefix = "KON"

// ErrSerialNumberIsNotConstructed is returned when validating a zero-value SerialNumber.
var ErrSerialNumberIsNotConstructed = errors.New(
	"SerialNumber must be created via NewSerialNumber or ParseSerialNumber",
)

// SerialNumber is the identity of a container, formatted as "KON-<TYPE>-<N>".
// N is a sequence value drawn from a SerialCounter shared by all variants.
type SerialNumber struct {
	kind     ContainerKind
	sequence uint64

	guard guard.ConstructorGuard
}

// NewSerialNumber builds a serial number from its parts. Sequence values start at 1.
func NewSerialNumber(kind ContainerKind, sequence uint64) (SerialNumber, error) {
	if err := kind.Validate(); err != nil {
		return SerialNumber{}, err
	}
	if sequence == 0 {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence",
			errors.New("sequence values start at 1"),
		)
	}

	return SerialNumber{kind: kind, sequence: sequence, guard: guard.NewConstructorGuard()}, nil
}

// ParseSerialNumber reads the "KON-<TYPE>-<N>" form.
func ParseSerialNumber(s string) (SerialNumber, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SerialNumber{}, errs.NewValueIsRequiredError("serialNumber")
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != serialNumberPrefix {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"serialNumber",
			fmt.Errorf("%q does not match %s-<TYPE>-<N>", s, serialNumberPrefix),
		)
	}

	kind, err := ContainerKindFromString(parts[1])
	if err != nil {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause("serialNumber", err)
	}

	sequence, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return SerialNumber{}, errs.NewValueIsInvalidErrorWithCause("serialNumber", err)
	}

	return NewSerialNumber(kind, sequence)
}

func (s SerialNumber) Kind() ContainerKind {
	return s.kind
}

func (s SerialNumber) Sequence() uint64 {
	return s.sequence
}

func (s SerialNumber) String() string {
	return fmt.Sprintf("%s-%s-%d", serialNumberPrefix, s.kind, s.sequence)
}

func (s SerialNumber) IsEqual(other SerialNumber) bool {
	return s.kind == other.kind && s.sequence == other.sequence
}

func (s SerialNumber) Validate() error {
	return s.guard.Validate(ErrSerialNumberIsNotConstructed)
}
