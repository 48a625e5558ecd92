package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type OTPRequest struct {
	Phone string `json:"phone" validate:"required,min=7,max=20"`
}

type OTPVerify struct {
	Phone string `json:"phone" validate:"required,min=7,max=20"`
	Code  string `json:"code"  validate:"required,len=6,numeric"`
}

type Token struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Address struct {
	Label string `json:"label,omitempty" validate:"max=100"`
	Line1 string `json:"line1"           validate:"required,max=255"`
	Line2 string `json:"line2,omitempty" validate:"max=255"`
}

type NewOrderItem struct {
	ProductID openapi_types.UUID `json:"productId" validate:"required"`
	Quantity  int                `json:"quantity"  validate:"required,min=1,max=100"`
}

// NewOrder carries either AddressID or Address.
type NewOrder struct {
	AddressID *openapi_types.UUID `json:"addressId,omitempty" validate:"required_without=Address,excluded_with=Address"`
	Address   *Address            `json:"address,omitempty"   validate:"required_without=AddressID"`
	Items     []NewOrderItem      `json:"items"               validate:"required,min=1,dive"`
}

type PlacedOrder struct {
	ID          openapi_types.UUID `json:"id"`
	Status      string             `json:"status"`
	Subtotal    string             `json:"subtotal"`
	DeliveryFee string             `json:"deliveryFee"`
	Total       string             `json:"total"`
}

type OrderSummary struct {
	ID           openapi_types.UUID  `json:"id"`
	CustomerID   openapi_types.UUID  `json:"customerId"`
	Status       string              `json:"status"`
	Total        string              `json:"total"`
	ItemCount    int                 `json:"itemCount"`
	AddressLabel string              `json:"addressLabel,omitempty"`
	AddressLine1 string              `json:"addressLine1,omitempty"`
	RiderID      *openapi_types.UUID `json:"riderId,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type OrderItem struct {
	ProductID   openapi_types.UUID `json:"productId"`
	ProductName string             `json:"productName,omitempty"`
	Quantity    int                `json:"quantity"`
	UnitPrice   string             `json:"unitPrice"`
	Discount    string             `json:"discount"`
	FinalPrice  string             `json:"finalPrice"`
}

type Payment struct {
	Amount   string    `json:"amount"`
	Status   string    `json:"status"`
	Provider string    `json:"provider"`
	PaidAt   time.Time `json:"paidAt"`
}

type OrderDetails struct {
	ID          openapi_types.UUID  `json:"id"`
	CustomerID  openapi_types.UUID  `json:"customerId"`
	Status      string              `json:"status"`
	Address     Address             `json:"address"`
	Items       []OrderItem         `json:"items"`
	Subtotal    string              `json:"subtotal"`
	DeliveryFee string              `json:"deliveryFee"`
	Total       string              `json:"total"`
	RiderID     *openapi_types.UUID `json:"riderId,omitempty"`
	AssignedAt  *time.Time          `json:"assignedAt,omitempty"`
	Payment     *Payment            `json:"payment,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type OrderEvent struct {
	ID        openapi_types.UUID  `json:"id"`
	From      string              `json:"from"`
	To        string              `json:"to"`
	ActorType string              `json:"actorType"`
	ActorID   *openapi_types.UUID `json:"actorId,omitempty"`
	Reason    string              `json:"reason,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

type CancelOrder struct {
	Reason string `json:"reason" validate:"max=500"`
}

type NewInventoryItem struct {
	ProductID    openapi_types.UUID `json:"productId"    validate:"required"`
	CostPrice    string             `json:"costPrice"    validate:"required,numeric"`
	SellingPrice string             `json:"sellingPrice" validate:"required,numeric"`
	Discount     string             `json:"discount"     validate:"omitempty,numeric"`
	Quantity     int                `json:"quantity"     validate:"min=0"`
	MinQuantity  int                `json:"minQuantity"  validate:"min=0"`
}

type InventoryPricing struct {
	CostPrice    string `json:"costPrice"    validate:"required,numeric"`
	SellingPrice string `json:"sellingPrice" validate:"required,numeric"`
	Discount     string `json:"discount"     validate:"omitempty,numeric"`
	MinQuantity  int    `json:"minQuantity"  validate:"min=0"`
}

type StockReceipt struct {
	Quantity    int    `json:"quantity"              validate:"required,min=1"`
	Reason      string `json:"reason"                validate:"required,oneof=PURCHASE ADJUSTMENT"`
	ReferenceID string `json:"referenceId,omitempty" validate:"max=100"`
}

type InventoryItem struct {
	ProductID       openapi_types.UUID `json:"productId"`
	ProductName     string             `json:"productName,omitempty"`
	ProductIsActive bool               `json:"productIsActive"`
	CostPrice       string             `json:"costPrice"`
	SellingPrice    string             `json:"sellingPrice"`
	Discount        string             `json:"discount"`
	Quantity        int                `json:"quantity"`
	MinQuantity     int                `json:"minQuantity"`
	LowStock        bool               `json:"lowStock"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

type InventoryMovement struct {
	ID            openapi_types.UUID  `json:"id"`
	ProductID     openapi_types.UUID  `json:"productId"`
	Delta         int                 `json:"delta"`
	Reason        string              `json:"reason"`
	ReferenceType string              `json:"referenceType"`
	ReferenceID   string              `json:"referenceId,omitempty"`
	ActorType     string              `json:"actorType"`
	ActorID       *openapi_types.UUID `json:"actorId,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ListCustomerOrdersParams carries a comma separated Status list, which takes
// precedence over Filter.
type ListCustomerOrdersParams struct {
	Status *string `form:"status" json:"status,omitempty"`
	Filter *string `form:"filter" json:"filter,omitempty"`
}

type ListOrdersParams struct {
	Status *string `form:"status" json:"status,omitempty"`
	Filter *string `form:"filter" json:"filter,omitempty"`
	Limit  *int    `form:"limit"  json:"limit,omitempty"`
}

type ListInventoryMovementsParams struct {
	ProductID *openapi_types.UUID `form:"productId" json:"productId,omitempty"`
	Limit     *int                `form:"limit"     json:"limit,omitempty"`
}

type ListLowStockParams struct {
	OutOfStock *bool `form:"outOfStock" json:"outOfStock,omitempty"`
}
