// Package orderrepo persists orders with their address snapshot, priced
// items, status events, rider assignment and payment.
package orderrepo

import (
	"time"

	"campusdelivery/internal/adapters/out/postgres/pgutil"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Status is stored by name so that raw read
// queries can filter on it directly.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      string          `gorm:"type:varchar(32);not null;index"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Total       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Address OrderAddressDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	Items   []OrderItemDTO  `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderAddressDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Label   string    `gorm:"type:varchar(64)"`
	Line1   string    `gorm:"type:varchar(255);not null"`
	Line2   string    `gorm:"type:varchar(255)"`
}

func (OrderAddressDTO) TableName() string {
	return "order_addresses"
}

// OrderItemDTO keeps the price snapshot of one cart line. Position preserves
// cart order.
type OrderItemDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position        int             `gorm:"not null"`
	ProductID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        int             `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	DiscountPercent decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	FinalPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

type OrderEventDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	FromStatus string     `gorm:"type:varchar(32);not null"`
	ToStatus   string     `gorm:"type:varchar(32);not null"`
	ActorType  string     `gorm:"type:varchar(16);not null"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	Reason     string     `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"not null;index"`
}

func (OrderEventDTO) TableName() string {
	return "order_events"
}

// RiderAssignmentDTO has order_id as its primary key, which is what makes a
// second claim on the same order fail.
type RiderAssignmentDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RiderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignedAt time.Time `gorm:"not null"`
}

func (RiderAssignmentDTO) TableName() string {
	return "rider_assignments"
}

type PaymentDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status      string          `gorm:"type:varchar(16);not null"`
	Provider    string          `gorm:"type:varchar(16);not null"`
	ProviderRef string          `gorm:"type:varchar(128)"`
	CreatedAt   time.Time       `gorm:"not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

// Models lists every table of this package for migrations.
func Models() []any {
	return []any{
		&OrderDTO{},
		&OrderAddressDTO{},
		&OrderItemDTO{},
		&OrderEventDTO{},
		&RiderAssignmentDTO{},
		&PaymentDTO{},
	}
}

func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:              uuid.New(),
			OrderID:         id,
			Position:        i,
			ProductID:       item.ProductID().Bytes(),
			Quantity:        item.Quantity(),
			UnitPrice:       item.UnitPrice().Amount(),
			DiscountPercent: item.Discount().Decimal(),
			FinalPrice:      item.FinalPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:          id,
		CustomerID:  o.CustomerID().Bytes(),
		Status:      o.Status().String(),
		DeliveryFee: o.DeliveryFee().Amount(),
		Subtotal:    o.Subtotal().Amount(),
		Total:       o.Total().Amount(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.CreatedAt(),
		Address: OrderAddressDTO{
			OrderID: id,
			Label:   o.Address().Label(),
			Line1:   o.Address().Line1(),
			Line2:   o.Address().Line2(),
		},
		Items: items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	address, err := order.NewAddress(dto.Address.Label, dto.Address.Line1, dto.Address.Line2)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	fee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, status, address, items, fee, subtotal, total, dto.CreatedAt)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	discount, err := kernel.NewPercent(dto.DiscountPercent)
	if err != nil {
		return order.Item{}, err
	}
	finalPrice, err := kernel.NewMoney(dto.FinalPrice)
	if err != nil {
		return order.Item{}, err
	}
	return order.RestoreItem(productID, dto.Quantity, unitPrice, discount, finalPrice)
}

func eventFromDomain(e order.Event) OrderEventDTO {
	actorType, actorID := pgutil.ActorColumns(e.Actor())
	return OrderEventDTO{
		ID:         e.ID().Bytes(),
		OrderID:    e.OrderID().Bytes(),
		FromStatus: e.From().String(),
		ToStatus:   e.To().String(),
		ActorType:  actorType,
		ActorID:    actorID,
		Reason:     e.Reason(),
		CreatedAt:  e.OccurredAt(),
	}
}

func assignmentToDomain(dto RiderAssignmentDTO) (order.Assignment, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Assignment{}, err
	}
	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return order.Assignment{}, err
	}
	return order.RestoreAssignment(orderID, riderID, dto.AssignedAt)
}
