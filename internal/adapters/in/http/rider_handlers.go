package http

import (
	"net/http"

	"campusdelivery/internal/core/application/usecases/commands"
	"campusdelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (s *Server) listForRider(ctx echo.Context, filter queries.OrderFilter) error {
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

// ListAvailableOrders handles GET /api/v1/rider/orders/available.
func (s *Server) ListAvailableOrders(ctx echo.Context) error {
	return s.listForRider(ctx, queries.AvailableForRiders())
}

// ListActiveOrders handles GET /api/v1/rider/orders/active.
func (s *Server) ListActiveOrders(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	return s.listForRider(ctx, queries.ActiveForRider(actor.ID()))
}

// AcceptOrder handles POST /api/v1/rider/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAcceptOrderCommand(id, actor.ID())
	if err != nil {
		return err
	}
	if err = s.commands.AcceptOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkOutForDelivery handles POST /api/v1/rider/orders/{orderId}/out-for-delivery.
func (s *Server) MarkOutForDelivery(ctx echo.Context, orderID openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkOutForDeliveryCommand(id, actor.ID())
	if err != nil {
		return err
	}
	if err = s.commands.MarkOutForDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/rider/orders/{orderId}/delivered.
func (s *Server) MarkDelivered(ctx echo.Context, orderID openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	id, err := toKernelUUID(orderID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewMarkDeliveredCommand(id, actor.ID())
	if err != nil {
		return err
	}
	if err = s.commands.MarkDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
