package commands

import (
	"errors"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"
	"campusdelivery/internal/pkg/guard"
)

var ErrUpdateInventoryPricingCommandIsNotConstructed = errors.New(
	"UpdateInventoryPricingCommand must be created via NewUpdateInventoryPricingCommand constructor",
)

// UpdateInventoryPricingCommand changes prices and the low-stock threshold of
// a product. Placed orders keep the prices they were placed with.
type UpdateInventoryPricingCommand struct { //nolint:recvcheck //using for validation
	productID    kernel.UUID
	costPrice    kernel.Money
	sellingPrice kernel.Money
	discount     kernel.Percent
	minQuantity  int

	guard guard.ConstructorGuard
}

func NewUpdateInventoryPricingCommand(
	productID kernel.UUID,
	costPrice, sellingPrice kernel.Money,
	discount kernel.Percent,
	minQuantity int,
) (UpdateInventoryPricingCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateInventoryPricingCommand{}, err
	}
	if minQuantity < 0 {
		return UpdateInventoryPricingCommand{}, errs.NewValueIsInvalidError("minQuantity")
	}

	return UpdateInventoryPricingCommand{
		productID:    productID,
		costPrice:    costPrice,
		sellingPrice: sellingPrice,
		discount:     discount,
		minQuantity:  minQuantity,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateInventoryPricingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInventoryPricingCommandIsNotConstructed)
}

func (c UpdateInventoryPricingCommand) ProductID() kernel.UUID { return c.productID }
func (c UpdateInventoryPricingCommand) CostPrice() kernel.Money { return c.costPrice }
func (c UpdateInventoryPricingCommand) SellingPrice() kernel.Money { return c.sellingPrice }
func (c UpdateInventoryPricingCommand) Discount() kernel.Percent { return c.discount }
func (c UpdateInventoryPricingCommand) MinQuantity() int { return c.minQuantity }
