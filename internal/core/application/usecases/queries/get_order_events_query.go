package queries

import (
	"errors"
	"time"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/pkg/guard"
)

var ErrGetOrderEventsQueryIsNotConstructed = errors.New(
	"GetOrderEventsQuery must be created via NewGetOrderEventsQuery constructor",
)

// GetOrderEventsQuery reads the status history of one order, newest first.
type GetOrderEventsQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderEventsQuery(orderID kernel.UUID) (GetOrderEventsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderEventsQuery{}, err
	}
	return GetOrderEventsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEventsQueryIsNotConstructed)
}

// GetOrderEventsQueryResponse is one transition. ActorID is nil for system
// actors.
type GetOrderEventsQueryResponse struct {
	ID        kernel.UUID
	From      order.Status
	To        order.Status
	ActorType kernel.ActorType
	ActorID   *kernel.UUID
	Reason    string
	CreatedAt time.Time
}
