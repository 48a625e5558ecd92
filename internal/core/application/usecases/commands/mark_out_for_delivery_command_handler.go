package commands

import (
	"context"

	"campusdelivery/internal/core/domain/model/order"
)

// MarkOutForDeliveryCommandHandler moves an order from AssignedRider to
// OutForDelivery on behalf of the rider holding it.
type MarkOutForDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

func NewMarkOutForDeliveryCommandHandler(uowFactory UoWFactory) MarkOutForDeliveryCommandHandler {
	return MarkOutForDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h MarkOutForDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkOutForDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	err := advanceAssignedOrder(ctx, uow.OrderRepository(), cmd.OrderID(), cmd.RiderID(),
		order.AssignedRider, order.OutForDelivery)
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
