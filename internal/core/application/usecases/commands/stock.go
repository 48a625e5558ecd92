package commands

import (
	"context"

	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/core/ports"
)

// reserveStock takes every line out of stock or fails on the first product
// that does not have enough. Earlier decrements are undone by the caller's
// rollback. No movements are written here. Rows are updated in
// inventory.LockOrder.
func reserveStock(ctx context.Context, repo ports.InventoryRepository, lines []inventory.Line) error {
	for _, line := range inventory.LockOrder(lines) {
		ok, err := repo.DecrementIfSufficient(ctx, line.ProductID(), line.Quantity())
		if err != nil {
			return err
		}
		if !ok {
			return inventory.NewProductError(line.ProductID(), inventory.ErrInsufficientStock)
		}
	}
	return nil
}

// restoreStock puts every line back in inventory.LockOrder. When source is
// not nil one movement per product is appended with it.
func restoreStock(
	ctx context.Context,
	repo ports.InventoryRepository,
	lines []inventory.Line,
	source *inventory.MovementSource,
) error {
	for _, line := range inventory.LockOrder(lines) {
		ok, err := repo.Increment(ctx, line.ProductID(), line.Quantity())
		if err != nil {
			return err
		}
		if !ok {
			return inventory.NewProductError(line.ProductID(), inventory.ErrInventoryRowMissing)
		}
		if source == nil {
			continue
		}
		if err = appendMovement(ctx, repo, line.ProductID(), line.Quantity(), *source); err != nil {
			return err
		}
	}
	return nil
}

func appendMovement(
	ctx context.Context,
	repo ports.InventoryRepository,
	productID kernel.UUID,
	delta int,
	source inventory.MovementSource,
) error {
	movement, err := inventory.NewMovement(productID, delta, source)
	if err != nil {
		return err
	}
	return repo.AppendMovement(ctx, movement)
}

func linesOf(items []order.Item) ([]inventory.Line, error) {
	lines := make([]inventory.Line, 0, len(items))
	for _, item := range items {
		line, err := inventory.NewLine(item.ProductID(), item.Quantity())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
