package commands

import (
	"errors"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"
	"campusdelivery/internal/pkg/guard"
)

var ErrCreateInventoryItemCommandIsNotConstructed = errors.New(
	"CreateInventoryItemCommand must be created via NewCreateInventoryItemCommand constructor",
)

// CreateInventoryItemCommand opens the stock row of a catalog product.
type CreateInventoryItemCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	costPrice    kernel.Money
	sellingPrice kernel.Money
	discount     kernel.Percent
	quantity     int
	minQuantity  int
	actor        kernel.Actor

	guard guard.ConstructorGuard
}

func NewCreateInventoryItemCommand(
	productID kernel.UUID,
	costPrice, sellingPrice kernel.Money,
	discount kernel.Percent,
	quantity, minQuantity int,
	actor kernel.Actor,
) (CreateInventoryItemCommand, error) {
	var quantityErr, minQuantityErr error
	if quantity < 0 {
		quantityErr = errs.NewValueIsInvalidError("quantity")
	}
	if minQuantity < 0 {
		minQuantityErr = errs.NewValueIsInvalidError("minQuantity")
	}
	if err := errors.Join(productID.Validate(), actor.Validate(), quantityErr, minQuantityErr); err != nil {
		return CreateInventoryItemCommand{}, err
	}

	return CreateInventoryItemCommand{
		productID:    productID,
		costPrice:    costPrice,
		sellingPrice: sellingPrice,
		discount:     discount,
		quantity:     quantity,
		minQuantity:  minQuantity,
		actor:        actor,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateInventoryItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryItemCommandIsNotConstructed)
}

func (c CreateInventoryItemCommand) ProductID() kernel.UUID { return c.productID }
func (c CreateInventoryItemCommand) CostPrice() kernel.Money { return c.costPrice }
func (c CreateInventoryItemCommand) SellingPrice() kernel.Money { return c.sellingPrice }
func (c CreateInventoryItemCommand) Discount() kernel.Percent { return c.discount }
func (c CreateInventoryItemCommand) Quantity() int { return c.quantity }
func (c CreateInventoryItemCommand) MinQuantity() int { return c.minQuantity }
func (c CreateInventoryItemCommand) Actor() kernel.Actor { return c.actor }
