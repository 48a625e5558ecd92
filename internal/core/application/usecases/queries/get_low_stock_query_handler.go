package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetLowStockQueryHandler struct {
	db *gorm.DB
}

func NewGetLowStockQueryHandler(db *gorm.DB) GetLowStockQueryHandler {
	return GetLowStockQueryHandler{db: db}
}

// Handle orders the emptiest rows first.
func (h GetLowStockQueryHandler) Handle(ctx context.Context, query GetLowStockQuery) ([]InventoryItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	condition := "i.quantity < i.min_quantity"
	if query.outOfStockOnly {
		condition = "i.quantity = 0"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + inventoryItemColumns + `
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		WHERE ` + condition + `
		ORDER BY i.quantity, p.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]InventoryItemResponse, 0)
	for rows.Next() {
		item, scanErr := scanInventoryItem(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
