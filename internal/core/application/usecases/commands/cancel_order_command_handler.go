package commands

import (
	"context"

	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order and puts every item back into
// stock with an ORDER_CANCELLED movement.
//
// An order that is already cancelled is reported as order.ErrAlreadyCancelled
// and nothing is written. Delivered and refunded orders give
// order.ErrOrderNotCancellable. If another transaction moves the order between
// the read and the compare-and-set, the status is read once more to report
// what happened; the cancel is not retried.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if err = status.ValidateCancel(); err != nil {
		return err
	}

	ok, err := transitionOrder(ctx, orderRepo, cmd.OrderID(), status, order.Cancelled, cmd.Actor(), cmd.Reason())
	if err != nil {
		return err
	}
	if !ok {
		return h.lostRace(ctx, orderRepo, cmd.OrderID())
	}

	cancelled, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	lines, err := linesOf(cancelled.Items())
	if err != nil {
		return err
	}
	source, err := inventory.OrderMovementSource(inventory.ReasonOrderCancelled, cmd.OrderID(), cmd.Actor())
	if err != nil {
		return err
	}
	if err = restoreStock(ctx, uow.InventoryRepository(), lines, &source); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CancelOrderCommandHandler) lostRace(ctx context.Context, repo ports.OrderRepository, orderID kernel.UUID) error {
	status, err := currentStatus(ctx, repo, orderID)
	if err != nil {
		return err
	}
	if err = status.ValidateCancel(); err != nil {
		return err
	}
	return order.ErrOrderStatusInvalid
}
