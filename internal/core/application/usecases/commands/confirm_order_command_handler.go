package commands

import (
	"context"

	"campusdelivery/internal/core/domain/model/order"
)

// ConfirmOrderCommandHandler moves a Created order to Confirmed.
// Returns ErrOrderNotFound or order.ErrOrderStatusInvalid.
type ConfirmOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewConfirmOrderCommandHandler(uowFactory UoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
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

	status, err := currentStatus(ctx, orderRepo, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = status.ValidateTransition(order.Confirmed); err != nil {
		return err
	}

	ok, err := transitionOrder(ctx, orderRepo, cmd.OrderID(), status, order.Confirmed, cmd.Actor(), "")
	if err != nil {
		return err
	}
	if !ok {
		return order.ErrOrderStatusInvalid
	}

	return uow.Commit(ctx)
}
