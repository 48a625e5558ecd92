package commands

import (
	"context"
	"errors"

	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"
	"campusdelivery/internal/core/domain/services"
	"campusdelivery/internal/core/ports"
	"campusdelivery/internal/pkg/errs"
)

// CreateOrderCommandHandler places an order: it checks the catalog, reserves
// stock, snapshots prices and the address, and records the stock movements,
// all in one transaction.
//
// Failures, each carrying the product id where one applies:
//   - ErrAddressNotFound when the saved address is missing or not the customer's
//   - inventory.ErrProductNotFound, inventory.ErrProductInactive
//   - inventory.ErrOutOfStock, also when a concurrent order took the stock
//     between the check and the reservation
type CreateOrderCommandHandler struct {
	uowFactory  UoWFactory
	deliveryFee kernel.Money
}

// NewCreateOrderCommandHandler creates a handler that charges deliveryFee on
// every order.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, deliveryFee kernel.Money) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		deliveryFee: deliveryFee,
	}
}

// Handle returns the placed order in Created status.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	address, err := h.resolveAddress(ctx, uow.CustomerRepository(), cmd)
	if err != nil {
		return nil, err
	}

	inventoryRepo := uow.InventoryRepository()
	lines := cmd.Lines()
	coalesced := inventory.Coalesce(lines)

	productIDs := make([]kernel.UUID, 0, len(coalesced))
	for _, line := range coalesced {
		productIDs = append(productIDs, line.ProductID())
	}
	snapshots, err := inventoryRepo.GetSnapshots(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	items, err := services.NewOrderPricer().Price(lines, snapshots)
	if err != nil {
		return nil, err
	}

	if err = reserveStock(ctx, inventoryRepo, lines); err != nil {
		var productErr *inventory.ProductError
		if errors.As(err, &productErr) && errors.Is(err, inventory.ErrInsufficientStock) {
			return nil, inventory.NewProductError(productErr.ProductID, inventory.ErrOutOfStock)
		}
		return nil, err
	}

	placed, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), address, items, h.deliveryFee)
	if err != nil {
		return nil, err
	}
	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	actor, err := kernel.NewActor(kernel.ActorCustomer, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	source, err := inventory.OrderMovementSource(inventory.ReasonOrderPlaced, placed.ID(), actor)
	if err != nil {
		return nil, err
	}
	for _, line := range coalesced {
		if err = appendMovement(ctx, inventoryRepo, line.ProductID(), -line.Quantity(), source); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

func (h CreateOrderCommandHandler) resolveAddress(
	ctx context.Context,
	repo ports.CustomerRepository,
	cmd CreateOrderCommand,
) (order.Address, error) {
	if cmd.AddressID() == nil {
		return *cmd.Address(), nil
	}

	saved, err := repo.GetAddress(ctx, *cmd.AddressID(), cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return order.Address{}, ErrAddressNotFound
	}
	if err != nil {
		return order.Address{}, err
	}
	return saved.Snapshot()
}
