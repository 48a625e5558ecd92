package commands

import (
	"context"

	"campusdelivery/internal/core/domain/model/order"
)

// MarkDeliveredCommandHandler moves an order from OutForDelivery to Delivered
// and settles it with one cash-on-delivery payment for the order total, in
// the same transaction.
type MarkDeliveredCommandHandler struct {
	uowFactory UoWFactory
}

func NewMarkDeliveredCommandHandler(uowFactory UoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	orderRepo := uow.OrderRepository()

	err := advanceAssignedOrder(ctx, orderRepo, cmd.OrderID(), cmd.RiderID(),
		order.OutForDelivery, order.Delivered)
	if err != nil {
		return err
	}

	delivered, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	payment, err := order.NewCashOnDeliveryPayment(delivered.ID(), delivered.Total())
	if err != nil {
		return err
	}
	if err = orderRepo.AddPayment(ctx, payment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
