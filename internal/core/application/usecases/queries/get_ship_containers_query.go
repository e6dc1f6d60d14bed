package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrGetShipContainersQueryIsNotConstructed = errors.New(
		"GetShipContainersQuery must be created via NewGetShipContainersQuery constructor",
	)
)

// GetShipContainersQuery lists one ship's containers in loading order.
type GetShipContainersQuery struct {
	shipID kernel.UUID
	guard  guard.ConstructorGuard
}

func NewGetShipContainersQuery(shipID kernel.UUID) (GetShipContainersQuery, error) {
	if err := shipID.Validate(); err != nil {
		return GetShipContainersQuery{}, err
	}

	return GetShipContainersQuery{
		shipID: shipID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipContainersQuery) ShipID() kernel.UUID {
	return q.shipID
}

func (q GetShipContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetShipContainersQueryIsNotConstructed)
}
