package commands

import (
	"errors"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/guard"
)

var ErrMarkOutForDeliveryCommandIsNotConstructed = errors.New(
	"MarkOutForDeliveryCommand must be created via NewMarkOutForDeliveryCommand constructor",
)

// MarkOutForDeliveryCommand represents the assigned rider picking the order up.
type MarkOutForDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOutForDeliveryCommand(orderID, riderID kernel.UUID) (MarkOutForDeliveryCommand, error) {
	if err := errors.Join(orderID.Validate(), riderID.Validate()); err != nil {
		return MarkOutForDeliveryCommand{}, err
	}

	return MarkOutForDeliveryCommand{
		orderID: orderID,
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOutForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkOutForDeliveryCommandIsNotConstructed)
}

func (c MarkOutForDeliveryCommand) OrderID() kernel.UUID { return c.orderID }
func (c MarkOutForDeliveryCommand) RiderID() kernel.UUID { return c.riderID }
