package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists one method per operation of api/openapi.yaml.
type ServerInterface interface {
	RequestOTP(ctx echo.Context) error
	VerifyOTP(ctx echo.Context) error
	CreateOrder(ctx echo.Context) error
	ListCustomerOrders(ctx echo.Context, params ListCustomerOrdersParams) error
	GetCustomerOrder(ctx echo.Context, orderID openapi_types.UUID) error
	GetCustomerOrderQR(ctx echo.Context, orderID openapi_types.UUID) error

	ListAvailableOrders(ctx echo.Context) error
	ListActiveOrders(ctx echo.Context) error
	AcceptOrder(ctx echo.Context, orderID openapi_types.UUID) error
	MarkOutForDelivery(ctx echo.Context, orderID openapi_types.UUID) error
	MarkDelivered(ctx echo.Context, orderID openapi_types.UUID) error

	ListOrders(ctx echo.Context, params ListOrdersParams) error
	GetOrder(ctx echo.Context, orderID openapi_types.UUID) error
	GetOrderEvents(ctx echo.Context, orderID openapi_types.UUID) error
	ConfirmOrder(ctx echo.Context, orderID openapi_types.UUID) error
	CancelOrder(ctx echo.Context, orderID openapi_types.UUID) error
	CreateInventoryItem(ctx echo.Context) error
	UpdateInventoryItem(ctx echo.Context, productID openapi_types.UUID) error
	AddStock(ctx echo.Context, productID openapi_types.UUID) error
	ListInventoryMovements(ctx echo.Context, params ListInventoryMovementsParams) error
	ListLowStock(ctx echo.Context, params ListLowStockParams) error
	GetInventoryItem(ctx echo.Context, productID openapi_types.UUID) error
}

// ServerInterfaceWrapper binds path and query parameters before calling the
// ServerInterface method.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindQuery(ctx echo.Context, name string, dest any) error {
	err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func (w *ServerInterfaceWrapper) withOrderID(call func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		orderID, err := bindPathUUID(ctx, "orderId")
		if err != nil {
			return err
		}
		return call(ctx, orderID)
	}
}

func (w *ServerInterfaceWrapper) withProductID(call func(echo.Context, openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		productID, err := bindPathUUID(ctx, "productId")
		if err != nil {
			return err
		}
		return call(ctx, productID)
	}
}

func (w *ServerInterfaceWrapper) ListCustomerOrders(ctx echo.Context) error {
	var params ListCustomerOrdersParams
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "filter", &params.Filter); err != nil {
		return err
	}
	return w.Handler.ListCustomerOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "filter", &params.Filter); err != nil {
		return err
	}
	if err := bindQuery(ctx, "limit", &params.Limit); err != nil {
		return err
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) ListInventoryMovements(ctx echo.Context) error {
	var params ListInventoryMovementsParams
	if err := bindQuery(ctx, "productId", &params.ProductID); err != nil {
		return err
	}
	if err := bindQuery(ctx, "limit", &params.Limit); err != nil {
		return err
	}
	return w.Handler.ListInventoryMovements(ctx, params)
}

func (w *ServerInterfaceWrapper) ListLowStock(ctx echo.Context) error {
	var params ListLowStockParams
	if err := bindQuery(ctx, "outOfStock", &params.OutOfStock); err != nil {
		return err
	}
	return w.Handler.ListLowStock(ctx, params)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	Group(prefix string, m ...echo.MiddlewareFunc) *echo.Group
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// Guards restrict each route group to one kind of actor.
type Guards struct {
	Customer echo.MiddlewareFunc
	Rider    echo.MiddlewareFunc
	Admin    echo.MiddlewareFunc
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL. Sign-in
// routes are public; the rest sit behind the guard of their audience.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string, guards Guards) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/customer/otp/request", si.RequestOTP)
	router.POST(baseURL+"/customer/otp/verify", si.VerifyOTP)

	customer := router.Group(baseURL+"/customer/orders", guards.Customer)
	customer.POST("", si.CreateOrder)
	customer.GET("", w.ListCustomerOrders)
	customer.GET("/:orderId", w.withOrderID(si.GetCustomerOrder))
	customer.GET("/:orderId/qr", w.withOrderID(si.GetCustomerOrderQR))

	rider := router.Group(baseURL+"/rider/orders", guards.Rider)
	rider.GET("/available", si.ListAvailableOrders)
	rider.GET("/active", si.ListActiveOrders)
	rider.POST("/:orderId/accept", w.withOrderID(si.AcceptOrder))
	rider.POST("/:orderId/out-for-delivery", w.withOrderID(si.MarkOutForDelivery))
	rider.POST("/:orderId/delivered", w.withOrderID(si.MarkDelivered))

	admin := router.Group(baseURL+"/admin", guards.Admin)
	admin.GET("/orders", w.ListOrders)
	admin.GET("/orders/:orderId", w.withOrderID(si.GetOrder))
	admin.GET("/orders/:orderId/events", w.withOrderID(si.GetOrderEvents))
	admin.POST("/orders/:orderId/confirm", w.withOrderID(si.ConfirmOrder))
	admin.POST("/orders/:orderId/cancel", w.withOrderID(si.CancelOrder))
	admin.POST("/inventory", si.CreateInventoryItem)
	admin.GET("/inventory/movements", w.ListInventoryMovements)
	admin.GET("/inventory/low-stock", w.ListLowStock)
	admin.GET("/inventory/:productId", w.withProductID(si.GetInventoryItem))
	admin.PATCH("/inventory/:productId", w.withProductID(si.UpdateInventoryItem))
	admin.POST("/inventory/:productId/stock", w.withProductID(si.AddStock))
}
