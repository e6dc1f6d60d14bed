package shiprepo

import (
	"context"
	"errors"

	"fleet/internal/adapters/out/sqlite/containerrepo"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/ship"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipRepository stores ships and the containers they carry.
type GormShipRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormShipRepository(db *gorm.DB, tracker aggregateTracker) *GormShipRepository {
	return &GormShipRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormShipRepository) Add(ctx context.Context, aggregate *ship.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	var last int64
	if err := db.Model(&ShipDTO{}).Select("COALESCE(MAX(sequence), 0)").Scan(&last).Error; err != nil {
		return err
	}

	dto, containers := fromDomain(aggregate)
	dto.Sequence = last + 1
	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.saveContainers(db, dto.ID, containers); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update rewrites the ship's container list: containers no longer on the ship are
// discarded, the others are written with their current loading position.
func (r *GormShipRepository) Update(ctx context.Context, aggregate *ship.Ship) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto, containers := fromDomain(aggregate)

	result := db.Model(&ShipDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"max_speed":           dto.MaxSpeed,
		"max_container_count": dto.MaxContainerCount,
		"max_weight":          dto.MaxWeight,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("ship", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	if err := r.saveContainers(db, dto.ID, containers); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormShipRepository) Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipDTO
	if err := r.db.WithContext(ctx).
		Preload("Containers", orderBySlot).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ship", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormShipRepository) GetAll(ctx context.Context) ([]*ship.Ship, error) {
	var dtos []ShipDTO
	if err := r.db.WithContext(ctx).
		Preload("Containers", orderBySlot).
		Order("sequence").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	ships := make([]*ship.Ship, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		ships = append(ships, s)
	}

	return ships, nil
}

// Delete removes the ship row and discards its containers.
func (r *GormShipRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	if err := db.Where("ship_id = ?", id.Bytes()).Delete(&containerrepo.ContainerDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&ShipDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ship", id.String())
	}

	return nil
}

func (r *GormShipRepository) saveContainers(db *gorm.DB, shipID any, containers []containerrepo.ContainerDTO) error {
	keep := make([]string, 0, len(containers))
	for _, c := range containers {
		keep = append(keep, c.Serial)
	}

	discard := db.Where("ship_id = ?", shipID)
	if len(keep) > 0 {
		discard = discard.Where("serial NOT IN ?", keep)
	}
	if err := discard.Delete(&containerrepo.ContainerDTO{}).Error; err != nil {
		return err
	}

	for i := range containers {
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&containers[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func orderBySlot(db *gorm.DB) *gorm.DB {
	return db.Order("ship_slot")
}
