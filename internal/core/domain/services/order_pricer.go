package services

import (
	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
)

// OrderPricer turns a cart into priced order items using a catalog snapshot
// taken in the same transaction.
//
// Every cart line is checked before anything is priced:
//   - the product must have an inventory row (inventory.ErrProductNotFound)
//   - the product must be active (inventory.ErrProductInactive)
//   - on-hand quantity must cover the product's total across all lines
//     (inventory.ErrOutOfStock)
//
// The first failing line aborts pricing with an *inventory.ProductError.
// Passing this check does not reserve anything; a concurrent order can still
// take the stock before the reservation runs.
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Price returns one order item per cart line, in cart order.
func (p OrderPricer) Price(lines []inventory.Line, snapshots map[kernel.UUID]inventory.Snapshot) ([]order.Item, error) {
	requested := make(map[kernel.UUID]int, len(lines))
	for _, l := range inventory.Coalesce(lines) {
		requested[l.ProductID()] = l.Quantity()
	}

	for _, l := range lines {
		if err := p.check(l.ProductID(), requested[l.ProductID()], snapshots); err != nil {
			return nil, err
		}
	}

	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		snap := snapshots[l.ProductID()]
		item, err := order.NewItem(l.ProductID(), l.Quantity(), snap.SellingPrice, snap.Discount)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (p OrderPricer) check(productID kernel.UUID, requested int, snapshots map[kernel.UUID]inventory.Snapshot) error {
	snap, ok := snapshots[productID]
	switch {
	case !ok:
		return inventory.NewProductError(productID, inventory.ErrProductNotFound)
	case !snap.Active:
		return inventory.NewProductError(productID, inventory.ErrProductInactive)
	case snap.Quantity < requested:
		return inventory.NewProductError(productID, inventory.ErrOutOfStock)
	default:
		return nil
	}
}
