package inventory

import (
	"errors"
	"fmt"
	"time"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is the stock row of one product. Quantity is only ever changed by
// storage-side conditional updates paired with a Movement.
type Item struct {
	productID    kernel.UUID
	costPrice    kernel.Money
	sellingPrice kernel.Money
	discount     kernel.Percent
	quantity     int
	minQuantity  int
	updatedAt    time.Time

	isConstructed bool
}

func NewItem(
	productID kernel.UUID,
	costPrice, sellingPrice kernel.Money,
	discount kernel.Percent,
	quantity, minQuantity int,
) (*Item, error) {
	return RestoreItem(productID, costPrice, sellingPrice, discount, quantity, minQuantity, time.Now().UTC())
}

func RestoreItem(
	productID kernel.UUID,
	costPrice, sellingPrice kernel.Money,
	discount kernel.Percent,
	quantity, minQuantity int,
	updatedAt time.Time,
) (*Item, error) {
	i := &Item{
		costPrice:     costPrice,
		sellingPrice:  sellingPrice,
		discount:      discount,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		i.setProductID(productID),
		i.setQuantity(quantity),
		i.setMinQuantity(minQuantity),
	); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ProductID() kernel.UUID { return i.productID }
func (i *Item) CostPrice() kernel.Money { return i.costPrice }
func (i *Item) SellingPrice() kernel.Money { return i.sellingPrice }
func (i *Item) Discount() kernel.Percent { return i.discount }
func (i *Item) Quantity() int { return i.quantity }
func (i *Item) MinQuantity() int { return i.minQuantity }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// IsLowStock reports whether the row has dropped below its reorder threshold.
func (i *Item) IsLowStock() bool {
	return i.quantity < i.minQuantity
}

// Reprice changes prices and the reorder threshold. It never touches quantity.
func (i *Item) Reprice(costPrice, sellingPrice kernel.Money, discount kernel.Percent, minQuantity int) error {
	if err := i.setMinQuantity(minQuantity); err != nil {
		return err
	}
	i.costPrice = costPrice
	i.sellingPrice = sellingPrice
	i.discount = discount
	i.updatedAt = time.Now().UTC()
	return nil
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.productID = id
	return nil
}

func (i *Item) setQuantity(q int) error {
	if q < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", q))
	}
	i.quantity = q
	return nil
}

func (i *Item) setMinQuantity(q int) error {
	if q < 0 {
		return errs.NewValueIsInvalidErrorWithCause("min quantity", fmt.Errorf("%d is negative", q))
	}
	i.minQuantity = q
	return nil
}
