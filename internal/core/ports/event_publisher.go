package ports

import (
	"context"

	"campusdelivery/internal/core/domain/model/order"
)

// EventPublisher announces committed order changes to other systems.
// It is called after commit; a failure here never undoes the change.
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, placed *order.Order) error
	PublishStatusChanged(ctx context.Context, event order.Event) error
}
