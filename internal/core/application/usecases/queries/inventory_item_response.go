package queries

import (
	"database/sql"
	"time"

	"campusdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItemResponse is a stock row together with its catalog entry.
type InventoryItemResponse struct {
	ProductID       kernel.UUID
	ProductName     string
	ProductIsActive bool
	CostPrice       kernel.Money
	SellingPrice    kernel.Money
	Discount        decimal.Decimal
	Quantity        int
	MinQuantity     int
	UpdatedAt       time.Time
}

const inventoryItemColumns = `
	i.product_id,
	p.name,
	p.is_active,
	i.cost_price,
	i.selling_price,
	i.discount_percent,
	i.quantity,
	i.min_quantity,
	i.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

var (
	_ rowScanner = (*sql.Row)(nil)
	_ rowScanner = (*sql.Rows)(nil)
)

func scanInventoryItem(row rowScanner) (InventoryItemResponse, error) {
	var (
		resp                 InventoryItemResponse
		productID            uuid.UUID
		costPrice, sellPrice decimal.Decimal
	)
	err := row.Scan(&productID, &resp.ProductName, &resp.ProductIsActive,
		&costPrice, &sellPrice, &resp.Discount, &resp.Quantity, &resp.MinQuantity, &resp.UpdatedAt)
	if err != nil {
		return InventoryItemResponse{}, err
	}

	if resp.ProductID, err = toUUID(productID); err != nil {
		return InventoryItemResponse{}, err
	}
	if resp.CostPrice, err = toMoney(costPrice); err != nil {
		return InventoryItemResponse{}, err
	}
	if resp.SellingPrice, err = toMoney(sellPrice); err != nil {
		return InventoryItemResponse{}, err
	}
	return resp, nil
}
