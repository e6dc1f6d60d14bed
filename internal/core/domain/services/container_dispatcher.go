package services

import (
	"errors"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/ship"
)

// ErrNoShipCanTakeContainer is returned when none of the candidate ships accepts the container.
var ErrNoShipCanTakeContainer = errors.New("no ship can take the container")

// ContainerDispatcher is a domain service that picks a ship for a free container
// and loads it there.
//
// Selection rules:
//   - only ships for which Ship.CanLoad reports true are considered
//   - the ship left with the most weight headroom after the load wins
//   - ties go to the ship listed first
//
// Example usage:
//
//	dispatcher := services.NewContainerDispatcher()
//	chosen, err := dispatcher.Dispatch(c, ships)
//	if errors.Is(err, services.ErrNoShipCanTakeContainer) {
//	    // the container stays in the free pool
//	}
type ContainerDispatcher struct{}

func NewContainerDispatcher() ContainerDispatcher {
	return ContainerDispatcher{}
}

// Dispatch loads c onto the best ship among ships and returns that ship.
// On error neither the ships nor the container are modified.
func (d ContainerDispatcher) Dispatch(c container.Container, ships []*ship.Ship) (*ship.Ship, error) {
	if c == nil {
		return nil, ship.ErrContainerIsRequired
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsLoaded() {
		return nil, container.ErrContainerAlreadyLoaded
	}

	best, err := d.findBestShip(c, ships)
	if err != nil {
		return nil, err
	}

	if err = best.LoadContainer(c); err != nil {
		return nil, err
	}
	return best, nil
}

func (d ContainerDispatcher) findBestShip(c container.Container, ships []*ship.Ship) (*ship.Ship, error) {
	var (
		best         *ship.Ship
		bestHeadroom float64
	)

	for _, s := range ships {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if !s.CanLoad(c) {
			continue
		}

		headroom := s.MaxWeight() - s.TotalWeight() - c.GrossWeight()
		if best == nil || headroom > bestHeadroom {
			best = s
			bestHeadroom = headroom
		}
	}

	if best == nil {
		return nil, ErrNoShipCanTakeContainer
	}
	return best, nil
}
