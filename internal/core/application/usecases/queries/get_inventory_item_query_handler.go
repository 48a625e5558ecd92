package queries

import (
	"context"
	"database/sql"
	"errors"

	"campusdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetInventoryItemQueryHandler struct {
	db *gorm.DB
}

func NewGetInventoryItemQueryHandler(db *gorm.DB) GetInventoryItemQueryHandler {
	return GetInventoryItemQueryHandler{db: db}
}

func (h GetInventoryItemQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryItemQuery,
) (InventoryItemResponse, error) {
	if err := query.Validate(); err != nil {
		return InventoryItemResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+inventoryItemColumns+`
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE i.product_id = ?
	`, query.productID.Bytes()).Row()

	item, err := scanInventoryItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return InventoryItemResponse{}, errs.NewObjectNotFoundError("productID", query.productID.String())
	}
	return item, err
}
