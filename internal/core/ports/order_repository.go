package ports

import (
	"context"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// the records that hang off them (events, rider assignment, payment).
//
// Status is never written through Add or an update of the aggregate: the only
// way to move an order is TryTransition, which is a compare-and-set on the
// stored status.
type OrderRepository interface {
	// Add persists a new order together with its address snapshot and items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its address and items.
	// Returns errs.ErrObjectNotFound when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetStatus reads only the current status of an order.
	// Returns errs.ErrObjectNotFound when no order has the given id.
	GetStatus(ctx context.Context, id kernel.UUID) (order.Status, error)

	// TryTransition sets the status to next only if it currently equals
	// expected. It reports false, without error, when the row is missing or
	// another transaction changed the status first.
	//
	// Example:
	//   ok, err := repo.TryTransition(ctx, id, order.Confirmed, order.AssignedRider)
	//   if err != nil {
	//       return err
	//   }
	//   if !ok {
	//       return order.ErrOrderAlreadyAssigned
	//   }
	TryTransition(ctx context.Context, id kernel.UUID, expected, next order.Status) (bool, error)

	// AppendEvent stores one status transition record.
	AppendEvent(ctx context.Context, event order.Event) error

	// AddAssignment claims the order for a rider.
	// Returns order.ErrOrderAlreadyAssigned if the order already has a rider.
	AddAssignment(ctx context.Context, assignment order.Assignment) error

	// GetAssignment returns the rider assignment of an order.
	// Returns errs.ErrObjectNotFound when the order has not been claimed.
	GetAssignment(ctx context.Context, orderID kernel.UUID) (order.Assignment, error)

	// AddPayment stores the payment record of an order.
	AddPayment(ctx context.Context, payment *order.Payment) error
}
