// Package inventoryrepo persists stock rows and the movement ledger, and
// reads the product catalog they belong to.
package inventoryrepo

import (
	"time"

	"campusdelivery/internal/adapters/out/postgres/pgutil"
	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO is the catalog row. The catalog is maintained elsewhere; this
// service only reads it.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:varchar(512)"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// InventoryDTO is the stock row of one product. The check constraint backs up
// the conditional decrement.
type InventoryDTO struct {
	ProductID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CostPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	SellingPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	Quantity        int             `gorm:"not null;check:inventory_quantity_non_negative,quantity >= 0"`
	MinQuantity     int             `gorm:"not null;default:0"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

func (InventoryDTO) TableName() string {
	return "inventory"
}

type MovementDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Delta         int        `gorm:"not null"`
	Reason        string     `gorm:"type:varchar(32);not null"`
	ReferenceType string     `gorm:"type:varchar(32);not null"`
	ReferenceID   string     `gorm:"type:varchar(128)"`
	ActorType     string     `gorm:"type:varchar(16);not null"`
	ActorID       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time  `gorm:"not null;index"`
}

func (MovementDTO) TableName() string {
	return "inventory_movements"
}

// Models lists every table of this package for migrations.
func Models() []any {
	return []any{&ProductDTO{}, &InventoryDTO{}, &MovementDTO{}}
}

// snapshotRow is the result of the catalog and stock join.
type snapshotRow struct {
	ProductID       uuid.UUID
	Name            string
	IsActive        bool
	SellingPrice    decimal.Decimal
	DiscountPercent decimal.Decimal
	Quantity        int
}

func fromDomain(item *inventory.Item) InventoryDTO {
	return InventoryDTO{
		ProductID:       item.ProductID().Bytes(),
		CostPrice:       item.CostPrice().Amount(),
		SellingPrice:    item.SellingPrice().Amount(),
		DiscountPercent: item.Discount().Decimal(),
		Quantity:        item.Quantity(),
		MinQuantity:     item.MinQuantity(),
		UpdatedAt:       item.UpdatedAt(),
	}
}

func toDomain(dto InventoryDTO) (*inventory.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	cost, err := kernel.NewMoney(dto.CostPrice)
	if err != nil {
		return nil, err
	}
	selling, err := kernel.NewMoney(dto.SellingPrice)
	if err != nil {
		return nil, err
	}
	discount, err := kernel.NewPercent(dto.DiscountPercent)
	if err != nil {
		return nil, err
	}
	return inventory.RestoreItem(productID, cost, selling, discount, dto.Quantity, dto.MinQuantity, dto.UpdatedAt)
}

func (row snapshotRow) toDomain() (inventory.Snapshot, error) {
	productID, err := kernel.UUIDFromBytes(row.ProductID[:])
	if err != nil {
		return inventory.Snapshot{}, err
	}
	price, err := kernel.NewMoney(row.SellingPrice)
	if err != nil {
		return inventory.Snapshot{}, err
	}
	discount, err := kernel.NewPercent(row.DiscountPercent)
	if err != nil {
		return inventory.Snapshot{}, err
	}
	return inventory.Snapshot{
		ProductID:    productID,
		Name:         row.Name,
		Active:       row.IsActive,
		SellingPrice: price,
		Discount:     discount,
		Quantity:     row.Quantity,
	}, nil
}

func movementFromDomain(m *inventory.Movement) MovementDTO {
	actorType, actorID := pgutil.ActorColumns(m.Actor())
	return MovementDTO{
		ID:            m.ID().Bytes(),
		ProductID:     m.ProductID().Bytes(),
		Delta:         m.Delta(),
		Reason:        string(m.Reason()),
		ReferenceType: string(m.ReferenceType()),
		ReferenceID:   m.ReferenceID(),
		ActorType:     actorType,
		ActorID:       actorID,
		CreatedAt:     m.CreatedAt(),
	}
}
