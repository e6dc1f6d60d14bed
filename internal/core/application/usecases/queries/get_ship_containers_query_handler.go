package queries

import (
	"context"

	"fleet/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetShipContainersQueryHandler struct {
	db *gorm.DB
}

func NewGetShipContainersQueryHandler(db *gorm.DB) GetShipContainersQueryHandler {
	return GetShipContainersQueryHandler{db: db}
}

// Handle returns the ship's containers in loading order. An unknown ship is
// reported as errs.ErrObjectNotFound so the menu can tell it apart from an
// empty ship.
func (h GetShipContainersQueryHandler) Handle(
	ctx context.Context,
	query GetShipContainersQuery,
) ([]ContainerView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	shipID := query.ShipID().String()

	var ships int64
	if err := db.Raw(`SELECT COUNT(*) FROM ships WHERE id = ?`, shipID).Scan(&ships).Error; err != nil {
		return nil, err
	}
	if ships == 0 {
		return nil, errs.NewObjectNotFoundError("ship", shipID)
	}

	rows, err := db.Raw(`
		SELECT
			serial,
			cargo_mass,
			max_capacity,
			own_weight
		FROM containers
		WHERE ship_id = ? AND deleted_at IS NULL
		ORDER BY ship_slot
	`, shipID).Rows()
	if err != nil {
		return nil, err
	}

	return scanContainerViews(rows)
}
