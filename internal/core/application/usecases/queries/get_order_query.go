package queries

import (
	"errors"
	"time"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery or NewGetCustomerOrderQuery constructor",
)

// GetOrderQuery reads one order with everything attached to it.
//
// Example:
//
//	query, err := NewGetCustomerOrderQuery(orderID, customerID)
//	if err != nil {
//	    return err
//	}
//	details, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // missing, or owned by someone else
//	}
type GetOrderQuery struct {
	orderID    kernel.UUID
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery reads any order. Used by admins.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// NewGetCustomerOrderQuery reads the order only if customerID placed it.
func NewGetCustomerOrderQuery(orderID, customerID kernel.UUID) (GetOrderQuery, error) {
	q, err := NewGetOrderQuery(orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}
	if err = customerID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	q.customerID = &customerID
	return q, nil
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

type AddressResponse struct {
	Label string
	Line1 string
	Line2 string
}

type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   kernel.Money
	Discount    decimal.Decimal
	FinalPrice  kernel.Money
}

type PaymentResponse struct {
	Amount   kernel.Money
	Status   string
	Provider string
	PaidAt   time.Time
}

// GetOrderQueryResponse is the order as placed plus its delivery progress.
// RiderID and Payment are nil until the order is claimed and delivered.
type GetOrderQueryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Status      order.Status
	Address     AddressResponse
	Items       []OrderItemResponse
	DeliveryFee kernel.Money
	Subtotal    kernel.Money
	Total       kernel.Money
	RiderID     *kernel.UUID
	AssignedAt  *time.Time
	Payment     *PaymentResponse
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
