package queries

import (
	"context"

	"fleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllShipsQueryHandler aggregates each ship's containers in SQL so the
// listing never restores full aggregates.
type GetAllShipsQueryHandler struct {
	db *gorm.DB
}

func NewGetAllShipsQueryHandler(db *gorm.DB) GetAllShipsQueryHandler {
	return GetAllShipsQueryHandler{db: db}
}

// Handle returns the ships ordered by registration.
func (h GetAllShipsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipsQuery,
) ([]GetAllShipsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ships := make([]GetAllShipsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.max_speed,
			s.max_container_count,
			s.max_weight,
			COUNT(c.serial),
			COALESCE(SUM(c.own_weight + c.cargo_mass), 0)
		FROM ships s
		LEFT JOIN containers c ON c.ship_id = s.id AND c.deleted_at IS NULL
		GROUP BY s.id, s.sequence, s.max_speed, s.max_container_count, s.max_weight
		ORDER BY s.sequence
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s GetAllShipsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&s.MaxSpeed,
			&s.MaxContainerCount,
			&s.MaxWeight,
			&s.ContainerCount,
			&s.TotalWeight,
		)
		if err != nil {
			return nil, err
		}

		shipID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		s.ID = shipID
		s.Position = len(ships) + 1
		ships = append(ships, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ships, nil
}
