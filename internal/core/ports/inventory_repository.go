package ports

import (
	"context"

	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for stock rows and the
// movement ledger.
type InventoryRepository interface {
	// Add creates the stock row of a product.
	Add(ctx context.Context, item *inventory.Item) error

	// Get returns the stock row of a product.
	// Returns errs.ErrObjectNotFound when the product has no stock row.
	Get(ctx context.Context, productID kernel.UUID) (*inventory.Item, error)

	// Update writes prices and the low-stock threshold. Quantity is left as is.
	Update(ctx context.Context, item *inventory.Item) error

	// ProductExists reports whether the catalog knows the product.
	ProductExists(ctx context.Context, productID kernel.UUID) (bool, error)

	// GetSnapshots reads catalog and stock state for the given products in one
	// round trip. Products without a stock row are absent from the result.
	GetSnapshots(ctx context.Context, productIDs []kernel.UUID) (map[kernel.UUID]inventory.Snapshot, error)

	// DecrementIfSufficient subtracts qty only if at least qty is on hand and
	// reports whether it did. The check and the write are one statement.
	DecrementIfSufficient(ctx context.Context, productID kernel.UUID, qty int) (bool, error)

	// Increment adds qty and reports whether a stock row was found.
	Increment(ctx context.Context, productID kernel.UUID, qty int) (bool, error)

	// AppendMovement stores one ledger entry.
	AppendMovement(ctx context.Context, movement *inventory.Movement) error
}
