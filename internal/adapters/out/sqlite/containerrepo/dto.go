package containerrepo

import (
	"fmt"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContainerDTO is the row of every container, free or loaded. Variant columns are
// zero for kinds that do not use them. ShipID is NULL while the container is in
// the free pool; ShipSlot is its position in the ship's loading order.
// Discarded containers are soft-deleted so their sequence values stay reserved.
type ContainerDTO struct {
	Serial    string     `gorm:"type:varchar(32);primaryKey"`
	Kind      string     `gorm:"type:varchar(1);not null"`
	SerialSeq int64      `gorm:"not null;uniqueIndex"`
	ShipID    *uuid.UUID `gorm:"type:uuid;index"`
	ShipSlot  int        `gorm:"not null;default:0"`

	CargoMass   float64 `gorm:"not null"`
	MaxCapacity float64 `gorm:"not null"`
	OwnWeight   float64 `gorm:"not null"`
	Height      float64 `gorm:"not null"`
	Depth       float64 `gorm:"not null"`

	IsHazardous bool
	Pressure    float64
	ProductType string `gorm:"type:varchar(255)"`
	Temperature float64

	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ContainerDTO) TableName() string {
	return "containers"
}

// FromDomain maps a container to its row. slot is the loading position for
// containers on a ship and ignored for free ones.
func FromDomain(c container.Container, slot int) ContainerDTO {
	dto := ContainerDTO{
		Serial:      c.SerialNumber().String(),
		Kind:        c.Kind().String(),
		SerialSeq:   int64(c.SerialNumber().Sequence()), //nolint:gosec // sequences stay far below MaxInt64
		CargoMass:   c.CargoMass(),
		MaxCapacity: c.MaxCapacity(),
		OwnWeight:   c.OwnWeight(),
		Height:      c.Height(),
		Depth:       c.Depth(),
	}

	if shipID := c.ShipID(); shipID != nil {
		raw := shipID.Bytes()
		dto.ShipID = &raw
		dto.ShipSlot = slot
	}

	switch v := c.(type) {
	case *container.LiquidContainer:
		dto.IsHazardous = v.IsHazardous()
	case *container.GasContainer:
		dto.Pressure = v.Pressure()
	case *container.RefrigeratedContainer:
		dto.ProductType = v.ProductType()
		dto.Temperature = v.Temperature()
	}

	return dto
}

// ToDomain restores the container a row describes.
func ToDomain(dto ContainerDTO) (container.Container, error) {
	kind, err := kernel.ContainerKindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}
	if dto.SerialSeq <= 0 {
		return nil, fmt.Errorf("container %s: invalid serial sequence %d", dto.Serial, dto.SerialSeq)
	}

	serial, err := kernel.NewSerialNumber(kind, uint64(dto.SerialSeq))
	if err != nil {
		return nil, err
	}
	if serial.String() != dto.Serial {
		return nil, fmt.Errorf("container %s: serial does not match kind %s and sequence %d",
			dto.Serial, dto.Kind, dto.SerialSeq)
	}

	var shipID *kernel.UUID
	if dto.ShipID != nil {
		id, idErr := kernel.UUIDFromBytes((*dto.ShipID)[:])
		if idErr != nil {
			return nil, idErr
		}
		shipID = &id
	}

	dims := container.Dimensions{
		MaxCapacity: dto.MaxCapacity,
		OwnWeight:   dto.OwnWeight,
		Height:      dto.Height,
		Depth:       dto.Depth,
	}

	switch kind {
	case kernel.Liquid:
		return container.RestoreLiquidContainer(serial, dto.IsHazardous, dims, dto.CargoMass, shipID)
	case kernel.Gas:
		return container.RestoreGasContainer(serial, dto.Pressure, dims, dto.CargoMass, shipID)
	default:
		return container.RestoreRefrigeratedContainer(serial, dto.ProductType, dto.Temperature, dims, dto.CargoMass, shipID)
	}
}
