package inventory

import "campusdelivery/internal/core/domain/model/kernel"

// Snapshot is the catalog view of a product used to price a cart: its current
// price, discount, active flag and on-hand quantity, read in one batch.
type Snapshot struct {
	ProductID    kernel.UUID
	Name         string
	Active       bool
	SellingPrice kernel.Money
	Discount     kernel.Percent
	Quantity     int
}
