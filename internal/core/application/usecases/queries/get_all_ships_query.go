// Package queries contains read operations for the fleet listings.
// Queries bypass the aggregates and read the registry tables directly.
package queries

import (
	"errors"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/guard"
)

var (
	ErrGetAllShipsQueryIsNotConstructed = errors.New(
		"GetAllShipsQuery must be created via NewGetAllShipsQuery constructor",
	)
)

// GetAllShipsQuery lists every registered ship with its limits and current load.
//
// Example:
//
//	handler := NewGetAllShipsQueryHandler(db)
//
//	ships, err := handler.Handle(ctx, NewGetAllShipsQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to list ships: %w", err)
//	}
//
//	for _, s := range ships {
//	    fmt.Printf("%d. %d/%d containers, %.1f/%.1f kg\n",
//	        s.Position, s.ContainerCount, s.MaxContainerCount, s.TotalWeight, s.MaxWeight)
//	}
type GetAllShipsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllShipsQuery() GetAllShipsQuery {
	return GetAllShipsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllShipsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipsQueryIsNotConstructed)
}

// GetAllShipsQueryResponse is one ship in registration order. Position is
// 1-based and is what the menu shows instead of the ID.
type GetAllShipsQueryResponse struct {
	ID                kernel.UUID
	Position          int
	MaxSpeed          float64
	MaxContainerCount int
	MaxWeight         float64
	ContainerCount    int
	TotalWeight       float64
}
