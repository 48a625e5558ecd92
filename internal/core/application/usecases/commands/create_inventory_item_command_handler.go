package commands

import (
	"context"
	"errors"

	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/pkg/errs"
)

// CreateInventoryItemCommandHandler creates a stock row. Opening stock is
// booked as an INITIAL_STOCK movement so the ledger starts balanced.
type CreateInventoryItemCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewCreateInventoryItemCommandHandler(uowFactory InventoryUoWFactory) CreateInventoryItemCommandHandler {
	return CreateInventoryItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateInventoryItemCommandHandler) Handle(
	ctx context.Context,
	cmd CreateInventoryItemCommand,
) (*inventory.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InventoryRepository()

	exists, err := repo.ProductExists(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, inventory.NewProductError(cmd.ProductID(), inventory.ErrProductNotFound)
	}

	_, err = repo.Get(ctx, cmd.ProductID())
	switch {
	case err == nil:
		return nil, ErrInventoryItemExists
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, err
	}

	item, err := inventory.NewItem(
		cmd.ProductID(),
		cmd.CostPrice(),
		cmd.SellingPrice(),
		cmd.Discount(),
		cmd.Quantity(),
		cmd.MinQuantity(),
	)
	if err != nil {
		return nil, err
	}
	if err = repo.Add(ctx, item); err != nil {
		return nil, err
	}

	if cmd.Quantity() > 0 {
		source, err := inventory.NewMovementSource(
			inventory.ReasonInitialStock,
			inventory.ReferenceAdjustment,
			cmd.ProductID().String(),
			cmd.Actor(),
		)
		if err != nil {
			return nil, err
		}
		if err = appendMovement(ctx, repo, cmd.ProductID(), cmd.Quantity(), source); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
