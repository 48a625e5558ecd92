package order

import (
	"errors"
	"time"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer's delivery order.
//
// Invariants:
//   - at least one item, each with a price snapshot
//   - subtotal is the sum of the already rounded line prices, rounded again
//   - total is subtotal plus delivery fee, rounded
//   - status changes only through guarded transitions in storage
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	status      Status
	address     Address
	items       []Item
	deliveryFee kernel.Money
	subtotal    kernel.Money
	total       kernel.Money
	createdAt   time.Time

	isConstructed bool
}

// NewOrder builds a Created order and computes its subtotal and total from the
// priced items.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	address Address,
	items []Item,
	deliveryFee kernel.Money,
) (*Order, error) {
	o := &Order{
		status:        Created,
		deliveryFee:   deliveryFee,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	sum := decimal.Zero
	for _, item := range o.items {
		sum = sum.Add(item.FinalPrice().Amount())
	}
	subtotal, err := kernel.NewMoney(sum)
	if err != nil {
		return nil, err
	}
	o.subtotal = subtotal
	o.total = subtotal.Add(deliveryFee)

	return o, nil
}

// RestoreOrder rehydrates a persisted order. Stored amounts are trusted as-is so
// that later price changes never alter a placed order.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	status Status,
	address Address,
	items []Item,
	deliveryFee, subtotal, total kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		deliveryFee:   deliveryFee,
		subtotal:      subtotal,
		total:         total,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setStatus(status),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Address() Address {
	return o.address
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
