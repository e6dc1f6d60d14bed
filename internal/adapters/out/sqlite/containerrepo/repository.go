package containerrepo

import (
	"context"
	"errors"
	"fmt"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrContainerIsLoaded is returned when adding or updating a container that sits on a ship.
var ErrContainerIsLoaded = errors.New("container is on a ship; save it through its ship")

// GormContainerRepository stores the free pool: rows of the containers table whose
// ship_id is NULL.
type GormContainerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormContainerRepository(db *gorm.DB, tracker aggregateTracker) *GormContainerRepository {
	return &GormContainerRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormContainerRepository) Add(ctx context.Context, aggregate container.Container) error {
	if err := validateFree(aggregate); err != nil {
		return err
	}

	dto := FromDomain(aggregate, 0)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.Serial, aggregate)
	return nil
}

// Update writes the cargo mass, the only field that changes while a container is free.
func (r *GormContainerRepository) Update(ctx context.Context, aggregate container.Container) error {
	if err := validateFree(aggregate); err != nil {
		return err
	}

	serial := aggregate.SerialNumber().String()
	result := r.db.WithContext(ctx).
		Model(&ContainerDTO{}).
		Where("serial = ? AND ship_id IS NULL", serial).
		Update("cargo_mass", aggregate.CargoMass())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("container", serial, gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(serial, aggregate)
	return nil
}

func (r *GormContainerRepository) Get(ctx context.Context, serial kernel.SerialNumber) (container.Container, error) {
	if err := serial.Validate(); err != nil {
		return nil, err
	}

	var dto ContainerDTO
	err := r.db.WithContext(ctx).
		Where("serial = ? AND ship_id IS NULL", serial.String()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("container", serial.String())
		}
		return nil, err
	}

	return ToDomain(dto)
}

func (r *GormContainerRepository) GetAllFree(ctx context.Context) ([]container.Container, error) {
	var dtos []ContainerDTO
	if err := r.db.WithContext(ctx).
		Where("ship_id IS NULL").
		Order("serial_seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	containers := make([]container.Container, 0, len(dtos))
	for _, dto := range dtos {
		c, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}

	return containers, nil
}

func (r *GormContainerRepository) Delete(ctx context.Context, serial kernel.SerialNumber) error {
	if err := serial.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("serial = ? AND ship_id IS NULL", serial.String()).
		Delete(&ContainerDTO{}).Error
}

// LastSerialSequence returns the highest sequence ever stored, discarded containers
// included, or 0 for an empty registry.
func LastSerialSequence(ctx context.Context, db *gorm.DB) (uint64, error) {
	var last int64
	if err := db.WithContext(ctx).
		Unscoped().
		Model(&ContainerDTO{}).
		Select("COALESCE(MAX(serial_seq), 0)").
		Scan(&last).Error; err != nil {
		return 0, fmt.Errorf("read last serial sequence: %w", err)
	}
	return uint64(last), nil //nolint:gosec // sequences are positive
}

func validateFree(aggregate container.Container) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("container")
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsLoaded() {
		return fmt.Errorf("%w: %s", ErrContainerIsLoaded, aggregate.SerialNumber())
	}
	return nil
}
