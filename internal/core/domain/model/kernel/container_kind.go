package kernel

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// ContainerKind is the closed set of container variants. The value doubles as the
// <TYPE> segment of a serial number.
type ContainerKind string

const (
	Liquid       ContainerKind = "L"
	Gas          ContainerKind = "G"
	Refrigerated ContainerKind = "C"
)

// ContainerKindFromString accepts the single-letter code of a variant.
func ContainerKindFromString(s string) (ContainerKind, error) {
	kind := ContainerKind(s)
	if err := kind.Validate(); err != nil {
		return "", err
	}
	return kind, nil
}

func (k ContainerKind) Validate() error {
	switch k {
	case Liquid, Gas, Refrigerated:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"container kind",
			fmt.Errorf("%q is not one of %q, %q, %q", string(k), Liquid, Gas, Refrigerated),
		)
	}
}

func (k ContainerKind) String() string {
	return string(k)
}

// Name returns a human-readable label for listings.
func (k ContainerKind) Name() string {
	switch k {
	case Liquid:
		return "liquid"
	case Gas:
		return "gas"
	case Refrigerated:
		return "refrigerated"
	default:
		return "unknown"
	}
}
