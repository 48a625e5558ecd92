package http

import (
	"net/http"

	"campusdelivery/internal/core/application/usecases/commands"
	"campusdelivery/internal/core/application/usecases/queries"
	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListOrders handles GET /api/v1/admin/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	statuses, err := queries.StatusesFromQuery(params.Status, params.Filter)
	if err != nil {
		return err
	}
	filter := queries.OrderFilter{Statuses: statuses}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}

	query, err := queries.NewListOrdersQuery(filter)
	if err != nil {
		return err
	}
	rows, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderSummaries(rows))
}

// GetOrder handles GET /api/v1/admin/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}
	details, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderDetails(details))
}

// GetOrderEvents handles GET /api/v1/admin/orders/{orderId}/events.
func (s *Server) GetOrderEvents(ctx echo.Context, orderID openapi_types.UUID) error {
	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderEventsQuery(id)
	if err != nil {
		return err
	}
	rows, err := s.queries.GetOrderEvents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderEvents(rows))
}

// ConfirmOrder handles POST /api/v1/admin/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewConfirmOrderCommand(id, actor)
	if err != nil {
		return err
	}
	if err = s.commands.ConfirmOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/admin/orders/{orderId}/cancel. The body
// with a reason is optional.
func (s *Server) CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}
	var body CancelOrder
	if ctx.Request().ContentLength != 0 {
		if err = bindBody(ctx, &body); err != nil {
			return err
		}
	}

	cmd, err := commands.NewCancelOrderCommand(id, actor, body.Reason)
	if err != nil {
		return err
	}
	if err = s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateInventoryItem handles POST /api/v1/admin/inventory.
func (s *Server) CreateInventoryItem(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	var body NewInventoryItem
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	productID, err := toKernelUUID(body.ProductID)
	if err != nil {
		return err
	}
	costPrice, sellingPrice, discount, err := parsePricing(body.CostPrice, body.SellingPrice, body.Discount)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateInventoryItemCommand(
		productID, costPrice, sellingPrice, discount, body.Quantity, body.MinQuantity, actor)
	if err != nil {
		return err
	}
	if _, err = s.commands.CreateInventoryItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondInventoryItem(ctx, http.StatusCreated, productID)
}

// UpdateInventoryItem handles PATCH /api/v1/admin/inventory/{productId}.
func (s *Server) UpdateInventoryItem(ctx echo.Context, productID openapi_types.UUID) error {
	id, err := toKernelUUID(productID)
	if err != nil {
		return err
	}
	var body InventoryPricing
	if err = bindBody(ctx, &body); err != nil {
		return err
	}
	costPrice, sellingPrice, discount, err := parsePricing(body.CostPrice, body.SellingPrice, body.Discount)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateInventoryPricingCommand(id, costPrice, sellingPrice, discount, body.MinQuantity)
	if err != nil {
		return err
	}
	if _, err = s.commands.UpdateInventoryPricing.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return s.respondInventoryItem(ctx, http.StatusOK, id)
}

// AddStock handles POST /api/v1/admin/inventory/{productId}/stock.
func (s *Server) AddStock(ctx echo.Context, productID openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := toKernelUUID(productID)
	if err != nil {
		return err
	}
	var body StockReceipt
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	reason, err := inventory.ParseReason(body.Reason)
	if err != nil {
		return err
	}
	referenceType := inventory.ReferencePurchase
	if reason == inventory.ReasonAdjustment {
		referenceType = inventory.ReferenceAdjustment
	}

	cmd, err := commands.NewAddStockCommand(id, body.Quantity, reason, referenceType, body.ReferenceID, actor)
	if err != nil {
		return err
	}
	if err = s.commands.AddStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListInventoryMovements handles GET /api/v1/admin/inventory/movements.
func (s *Server) ListInventoryMovements(ctx echo.Context, params ListInventoryMovementsParams) error {
	var productID *kernel.UUID
	if params.ProductID != nil {
		id, err := toKernelUUID(*params.ProductID)
		if err != nil {
			return err
		}
		productID = &id
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetInventoryMovementsQuery(productID, limit)
	if err != nil {
		return err
	}
	rows, err := s.queries.GetInventoryMovements.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toInventoryMovements(rows))
}

// ListLowStock handles GET /api/v1/admin/inventory/low-stock.
func (s *Server) ListLowStock(ctx echo.Context, params ListLowStockParams) error {
	query := queries.NewGetLowStockQuery(params.OutOfStock != nil && *params.OutOfStock)
	rows, err := s.queries.GetLowStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toInventoryItems(rows))
}

// GetInventoryItem handles GET /api/v1/admin/inventory/{productId}.
func (s *Server) GetInventoryItem(ctx echo.Context, productID openapi_types.UUID) error {
	id, err := toKernelUUID(productID)
	if err != nil {
		return err
	}
	return s.respondInventoryItem(ctx, http.StatusOK, id)
}

// respondInventoryItem reads the stock row back through the query side so
// writes and reads return the same shape.
func (s *Server) respondInventoryItem(ctx echo.Context, status int, productID kernel.UUID) error {
	query, err := queries.NewGetInventoryItemQuery(productID)
	if err != nil {
		return err
	}
	row, err := s.queries.GetInventoryItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(status, toInventoryItem(row))
}

func parsePricing(cost, selling, discount string) (kernel.Money, kernel.Money, kernel.Percent, error) {
	costPrice, err := kernel.MoneyFromString(cost)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, kernel.Percent{}, err
	}
	sellingPrice, err := kernel.MoneyFromString(selling)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, kernel.Percent{}, err
	}
	percent, err := percentFromString(discount)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, kernel.Percent{}, err
	}
	return costPrice, sellingPrice, percent, nil
}
