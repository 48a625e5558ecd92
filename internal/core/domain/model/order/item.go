package order

import (
	"errors"
	"fmt"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"
	"campusdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line with the price snapshot taken when the order was placed.
type Item struct {
	productID  kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	discount   kernel.Percent
	finalPrice kernel.Money
	guard      guard.ConstructorGuard
}

// NewItem prices the line as unitPrice × quantity × (1 − discount/100),
// rounded to two places.
func NewItem(productID kernel.UUID, quantity int, unitPrice kernel.Money, discount kernel.Percent) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	final, err := kernel.NewMoney(
		unitPrice.Amount().Mul(decimal.NewFromInt(int64(quantity))).Mul(discount.Remainder()),
	)
	if err != nil {
		return Item{}, err
	}

	return Item{
		productID:  productID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		discount:   discount,
		finalPrice: final,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem rebuilds a persisted line without repricing it.
func RestoreItem(
	productID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	discount kernel.Percent,
	finalPrice kernel.Money,
) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	return Item{
		productID:  productID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		discount:   discount,
		finalPrice: finalPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (i Item) ProductID() kernel.UUID { return i.productID }
func (i Item) Quantity() int { return i.quantity }
func (i Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i Item) Discount() kernel.Percent { return i.discount }
func (i Item) FinalPrice() kernel.Money { return i.finalPrice }

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}
