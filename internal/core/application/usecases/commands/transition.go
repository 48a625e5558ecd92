package commands

import (
	"context"
	"errors"
	"fmt"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/core/ports"
	"campusdelivery/internal/pkg/errs"
)

// transitionOrder moves an order from expected to next and records the event
// in the same transaction. It returns false when another transaction changed
// the status first; nothing is written in that case.
func transitionOrder(
	ctx context.Context,
	repo ports.OrderRepository,
	orderID kernel.UUID,
	expected, next order.Status,
	actor kernel.Actor,
	reason string,
) (bool, error) {
	event, err := order.NewEvent(orderID, expected, next, actor, reason)
	if err != nil {
		return false, err
	}

	ok, err := repo.TryTransition(ctx, orderID, expected, next)
	if err != nil || !ok {
		return false, err
	}

	if err = repo.AppendEvent(ctx, event); err != nil {
		return false, err
	}
	return true, nil
}

func currentStatus(ctx context.Context, repo ports.OrderRepository, orderID kernel.UUID) (order.Status, error) {
	status, err := repo.GetStatus(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return order.Unknown, ErrOrderNotFound
	}
	return status, err
}

// advanceAssignedOrder moves an order the rider holds one step along the
// delivery path.
func advanceAssignedOrder(
	ctx context.Context,
	repo ports.OrderRepository,
	orderID, riderID kernel.UUID,
	from, to order.Status,
) error {
	status, err := currentStatus(ctx, repo, orderID)
	if err != nil {
		return err
	}

	assignment, err := repo.GetAssignment(ctx, orderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return order.ErrOrderNotAssignedToRider
	}
	if err != nil {
		return err
	}
	if err = assignment.ValidateRider(riderID); err != nil {
		return err
	}

	if status != from {
		return fmt.Errorf("%w: order is %s, expected %s", order.ErrOrderStatusInvalid, status, from)
	}

	actor, err := kernel.NewActor(kernel.ActorRider, riderID)
	if err != nil {
		return err
	}
	ok, err := transitionOrder(ctx, repo, orderID, from, to, actor, "")
	if err != nil {
		return err
	}
	if !ok {
		return order.ErrOrderStatusInvalid
	}
	return nil
}
