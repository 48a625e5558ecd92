package commands

import (
	"context"

	"campusdelivery/internal/core/domain/model/inventory"
)

// AddStockCommandHandler increments stock and writes the matching movement.
type AddStockCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewAddStockCommandHandler(uowFactory InventoryUoWFactory) AddStockCommandHandler {
	return AddStockCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddStockCommandHandler) Handle(ctx context.Context, cmd AddStockCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InventoryRepository()

	ok, err := repo.Increment(ctx, cmd.ProductID(), cmd.Quantity())
	if err != nil {
		return err
	}
	if !ok {
		return inventory.NewProductError(cmd.ProductID(), inventory.ErrProductNotFound)
	}

	if err = appendMovement(ctx, repo, cmd.ProductID(), cmd.Quantity(), cmd.Movement()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
