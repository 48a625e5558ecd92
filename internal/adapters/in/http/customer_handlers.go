package http

import (
	"net/http"

	"campusdelivery/internal/core/application/usecases/commands"
	"campusdelivery/internal/core/application/usecases/queries"
	"campusdelivery/internal/core/domain/model/inventory"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// RequestOTP handles POST /api/v1/customer/otp/request.
func (s *Server) RequestOTP(ctx echo.Context) error {
	var body OTPRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRequestOTPCommand(body.Phone)
	if err != nil {
		return err
	}
	if err = s.commands.RequestOTP.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusAccepted)
}

// VerifyOTP handles POST /api/v1/customer/otp/verify and signs the customer in.
func (s *Server) VerifyOTP(ctx echo.Context) error {
	var body OTPVerify
	if err := bindBody(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewVerifyOTPCommand(body.Phone, body.Code)
	if err != nil {
		return err
	}
	c, err := s.commands.VerifyOTP.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	actor, err := kernel.NewActor(kernel.ActorCustomer, c.ID())
	if err != nil {
		return err
	}
	token, expiresAt, err := s.tokens.Issue(actor)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Token{Token: token, ExpiresAt: expiresAt})
}

// CreateOrder handles POST /api/v1/customer/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	var body NewOrder
	if err = bindBody(ctx, &body); err != nil {
		return err
	}

	lines := make([]inventory.Line, 0, len(body.Items))
	for _, item := range body.Items {
		productID, err := toKernelUUID(item.ProductID)
		if err != nil {
			return err
		}
		line, err := inventory.NewLine(productID, item.Quantity)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	var addressID *kernel.UUID
	if body.AddressID != nil {
		id, err := toKernelUUID(*body.AddressID)
		if err != nil {
			return err
		}
		addressID = &id
	}
	var address *order.Address
	if body.Address != nil {
		a, err := order.NewAddress(body.Address.Label, body.Address.Line1, body.Address.Line2)
		if err != nil {
			return err
		}
		address = &a
	}

	cmd, err := commands.NewCreateOrderCommand(actor.ID(), lines, addressID, address)
	if err != nil {
		return err
	}
	placed, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toPlacedOrder(placed))
}

// ListCustomerOrders handles GET /api/v1/customer/orders.
func (s *Server) ListCustomerOrders(ctx echo.Context, params ListCustomerOrdersParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	statuses, err := queries.StatusesFromQuery(params.Status, params.Filter)
	if err != nil {
		return err
	}

	customerID := actor.ID()
	query, err := queries.NewListOrdersQuery(queries.OrderFilter{Statuses: statuses, CustomerID: &customerID})
	if err != nil {
		return err
	}
	rows, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderSummaries(rows))
}

// customerOrder loads an order only if it belongs to the signed-in customer.
func (s *Server) customerOrder(ctx echo.Context, orderID openapi_types.UUID) (queries.GetOrderQueryResponse, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}
	id, err := toKernelUUID(orderID)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}
	query, err := queries.NewGetCustomerOrderQuery(id, actor.ID())
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}
	return s.queries.GetOrder.Handle(ctx.Request().Context(), query)
}

// GetCustomerOrder handles GET /api/v1/customer/orders/{orderId}.
func (s *Server) GetCustomerOrder(ctx echo.Context, orderID openapi_types.UUID) error {
	details, err := s.customerOrder(ctx, orderID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderDetails(details))
}

// GetCustomerOrderQR handles GET /api/v1/customer/orders/{orderId}/qr. The
// code carries the order id so the rider can match the parcel at handoff.
func (s *Server) GetCustomerOrderQR(ctx echo.Context, orderID openapi_types.UUID) error {
	details, err := s.customerOrder(ctx, orderID)
	if err != nil {
		return err
	}
	png, err := qrcode.Encode(details.ID.String(), qrcode.Medium, qrSize)
	if err != nil {
		return err
	}
	return ctx.Blob(http.StatusOK, "image/png", png)
}
