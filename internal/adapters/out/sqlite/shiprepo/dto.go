package shiprepo

import (
	"fleet/internal/adapters/out/sqlite/containerrepo"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/ship"

	"github.com/google/uuid"
)

// ShipDTO is a ship row. Sequence records registration order.
type ShipDTO struct {
	ID                uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	Sequence          int64                        `gorm:"not null;uniqueIndex"`
	MaxSpeed          float64                      `gorm:"not null"`
	MaxContainerCount int                          `gorm:"not null"`
	MaxWeight         float64                      `gorm:"not null"`
	Containers        []containerrepo.ContainerDTO `gorm:"foreignKey:ShipID"`
}

func (ShipDTO) TableName() string {
	return "ships"
}

func fromDomain(aggregate *ship.Ship) (ShipDTO, []containerrepo.ContainerDTO) {
	containers := make([]containerrepo.ContainerDTO, 0, aggregate.ContainerCount())
	for slot, c := range aggregate.Containers() {
		containers = append(containers, containerrepo.FromDomain(c, slot))
	}

	return ShipDTO{
		ID:                aggregate.ID().Bytes(),
		MaxSpeed:          aggregate.MaxSpeed(),
		MaxContainerCount: aggregate.MaxContainerCount(),
		MaxWeight:         aggregate.MaxWeight(),
	}, containers
}

func toDomain(dto ShipDTO) (*ship.Ship, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	containers := make([]container.Container, 0, len(dto.Containers))
	for _, containerDTO := range dto.Containers {
		c, cErr := containerrepo.ToDomain(containerDTO)
		if cErr != nil {
			return nil, cErr
		}
		containers = append(containers, c)
	}

	return ship.RestoreShip(id, dto.MaxSpeed, dto.MaxContainerCount, dto.MaxWeight, containers)
}
