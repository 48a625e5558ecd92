package commands

import (
	"errors"
	"fmt"

	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"
	"campusdelivery/internal/pkg/guard"
)

var ErrAddStockCommandIsNotConstructed = errors.New(
	"AddStockCommand must be created via NewAddStockCommand constructor",
)

// AddStockCommand books incoming stock for one product: a purchase or a
// positive manual adjustment.
type AddStockCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	quantity  int
	source    inventory.MovementSource

	guard guard.ConstructorGuard
}

func NewAddStockCommand(
	productID kernel.UUID,
	quantity int,
	reason inventory.Reason,
	referenceType inventory.ReferenceType,
	referenceID string,
	actor kernel.Actor,
) (AddStockCommand, error) {
	if err := productID.Validate(); err != nil {
		return AddStockCommand{}, err
	}
	if quantity <= 0 {
		return AddStockCommand{}, errs.NewValueIsInvalidError("quantity")
	}
	if reason != inventory.ReasonPurchase && reason != inventory.ReasonAdjustment {
		return AddStockCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"reason", fmt.Errorf("%q cannot be used to add stock", reason))
	}

	source, err := inventory.NewMovementSource(reason, referenceType, referenceID, actor)
	if err != nil {
		return AddStockCommand{}, err
	}

	return AddStockCommand{
		productID: productID,
		quantity:  quantity,
		source:    source,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AddStockCommand) Validate() error {
	return c.guard.Validate(ErrAddStockCommandIsNotConstructed)
}

func (c AddStockCommand) ProductID() kernel.UUID { return c.productID }
func (c AddStockCommand) Quantity() int { return c.quantity }
func (c AddStockCommand) Movement() inventory.MovementSource { return c.source }
