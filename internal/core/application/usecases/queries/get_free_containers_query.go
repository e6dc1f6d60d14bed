package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrGetFreeContainersQueryIsNotConstructed = errors.New(
		"GetFreeContainersQuery must be created via NewGetFreeContainersQuery constructor",
	)
)

// GetFreeContainersQuery lists the containers not assigned to any ship.
type GetFreeContainersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFreeContainersQuery() GetFreeContainersQuery {
	return GetFreeContainersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFreeContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetFreeContainersQueryIsNotConstructed)
}

// ContainerView is a container row as the menu lists it. It is shared by the
// free pool and ship manifest listings.
type ContainerView struct {
	Serial      kernel.SerialNumber
	Kind        kernel.ContainerKind
	CargoMass   float64
	MaxCapacity float64
	OwnWeight   float64
}
