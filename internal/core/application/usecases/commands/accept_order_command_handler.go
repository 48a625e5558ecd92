package commands

import (
	"context"
	"errors"
	"fmt"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/pkg/errs"
)

// AcceptOrderCommandHandler lets a rider claim an order.
//
// The claim is guarded twice inside one transaction: the status compare-and-set
// from order.ClaimableStatus, and the primary key of the assignment row. Of two
// riders racing for the same order exactly one wins; the other gets
// order.ErrOrderAlreadyAssigned whichever guard stopped it. An order that is
// not confirmed yet, or was cancelled, yields order.ErrOrderStatusInvalid.
//
// Example:
//
//	cmd, _ := NewAcceptOrderCommand(orderID, riderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderAlreadyAssigned):
//	    // another rider was faster
//	case errors.Is(err, ErrRiderInactive):
//	    // rider account is disabled
//	}
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewAcceptOrderCommandHandler(uowFactory UoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	r, err := uow.RiderRepository().Get(ctx, cmd.RiderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrRiderNotFound
	}
	if err != nil {
		return err
	}
	if err = r.ValidateCanClaim(); err != nil {
		return err
	}

	actor, err := kernel.NewActor(kernel.ActorRider, cmd.RiderID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	ok, err := transitionOrder(ctx, orderRepo, cmd.OrderID(), order.ClaimableStatus, order.AssignedRider, actor, "")
	if err != nil {
		return err
	}
	if !ok {
		var status order.Status
		if status, err = currentStatus(ctx, orderRepo, cmd.OrderID()); err != nil {
			return err
		}
		switch status {
		case order.AssignedRider, order.OutForDelivery, order.Delivered, order.Refunded:
			return order.ErrOrderAlreadyAssigned
		default:
			return fmt.Errorf("%w: order is %s, expected %s", order.ErrOrderStatusInvalid, status, order.ClaimableStatus)
		}
	}

	assignment, err := order.NewAssignment(cmd.OrderID(), cmd.RiderID())
	if err != nil {
		return err
	}
	if err = orderRepo.AddAssignment(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
