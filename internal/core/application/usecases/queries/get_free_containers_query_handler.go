package queries

import (
	"context"
	"database/sql"

	"fleet/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GetFreeContainersQueryHandler struct {
	db *gorm.DB
}

func NewGetFreeContainersQueryHandler(db *gorm.DB) GetFreeContainersQueryHandler {
	return GetFreeContainersQueryHandler{db: db}
}

// Handle returns the free pool in creation order.
func (h GetFreeContainersQueryHandler) Handle(
	ctx context.Context,
	query GetFreeContainersQuery,
) ([]ContainerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			serial,
			cargo_mass,
			max_capacity,
			own_weight
		FROM containers
		WHERE ship_id IS NULL AND deleted_at IS NULL
		ORDER BY serial_seq
	`).Rows()
	if err != nil {
		return nil, err
	}

	return scanContainerViews(rows)
}

func scanContainerViews(rows *sql.Rows) ([]ContainerView, error) {
	defer rows.Close()

	views := make([]ContainerView, 0)
	for rows.Next() {
		var view ContainerView
		var serial string

		err := rows.Scan(
			&serial,
			&view.CargoMass,
			&view.MaxCapacity,
			&view.OwnWeight,
		)
		if err != nil {
			return nil, err
		}

		parsed, parseErr := kernel.ParseSerialNumber(serial)
		if parseErr != nil {
			return nil, parseErr
		}
		view.Serial = parsed
		view.Kind = parsed.Kind()
		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
