package commands

import (
	"context"
	"errors"

	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/pkg/errs"
)

type UpdateInventoryPricingCommandHandler struct {
	uowFactory InventoryUoWFactory
}

func NewUpdateInventoryPricingCommandHandler(uowFactory InventoryUoWFactory) UpdateInventoryPricingCommandHandler {
	return UpdateInventoryPricingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle reprices the stock row and returns it. Quantity is not touched.
func (h UpdateInventoryPricingCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateInventoryPricingCommand,
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

	item, err := repo.Get(ctx, cmd.ProductID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, inventory.NewProductError(cmd.ProductID(), inventory.ErrProductNotFound)
	}
	if err != nil {
		return nil, err
	}

	if err = item.Reprice(cmd.CostPrice(), cmd.SellingPrice(), cmd.Discount(), cmd.MinQuantity()); err != nil {
		return nil, err
	}
	if err = repo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
