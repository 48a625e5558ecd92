package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campusdelivery/api"
	"campusdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// stubServer records the operation that was routed to and its bound
// parameters, then answers 204.
type stubServer struct {
	operation string
	id        openapi_types.UUID
	params    any
}

func (s *stubServer) done(ctx echo.Context, operation string, id openapi_types.UUID, params any) error {
	s.operation, s.id, s.params = operation, id, params
	return ctx.NoContent(http.StatusNoContent)
}

func (s *stubServer) RequestOTP(ctx echo.Context) error {
	return s.done(ctx, "RequestOTP", uuid.Nil, nil)
}

func (s *stubServer) VerifyOTP(ctx echo.Context) error {
	return s.done(ctx, "VerifyOTP", uuid.Nil, nil)
}

func (s *stubServer) CreateOrder(ctx echo.Context) error {
	return s.done(ctx, "CreateOrder", uuid.Nil, nil)
}

func (s *stubServer) ListCustomerOrders(ctx echo.Context, params ListCustomerOrdersParams) error {
	return s.done(ctx, "ListCustomerOrders", uuid.Nil, params)
}

func (s *stubServer) GetCustomerOrder(ctx echo.Context, id openapi_types.UUID) error {
	return s.done(ctx, "GetCustomerOrder", id, nil)
}

func (s *stubServer) GetCustomerOrderQR(ctx echo.Context, id openapi_types.UUID) error {
	return s.done(ctx, "GetCustomerOrderQR", id, nil)
}

func (s *stubServer) ListAvailableOrders(ctx echo.Context) error {
	return s.done(ctx, "ListAvailableOrders", uuid.Nil, nil)
}

func (s *stubServer) ListActiveOrders(ctx echo.Context) error {
	return s.done(ctx, "ListActiveOrders", uuid.Nil, nil)
}

func (s *stubServer) AcceptOrder(ctx echo.Context, id openapi_types.UUID) error {
	return s.done(ctx, "AcceptOrder", id, nil)
}

func (s *stubServer) MarkOutForDelivery(ctx echo.Context, id openapi_types.UUID) error {
	return s.done(ctx, "MarkOutForDelivery", id, nil)
}

func (s *stubServer) MarkDelivered(ctx echo.Context, id openapi_types.UUID) error {
	return s.done(ctx, "MarkDelivered", id, nil)
}

func (s *stubServer) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	return s.done(ctx, "ListOrders", uuid.Nil, params)
}

func (s *stubServer) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	return s.done(ctx, "GetOrder", id, nil)
}

func (s *stubServer) GetOrderEvents(ctx echo.Context, id openapi_types.UUID) error {
	return s.done(ctx, "GetOrderEvents", id, nil)
}

func (s *stubServer) ConfirmOrder(ctx echo.Context, id openapi_types.UUID) error {
	return s.done(ctx, "ConfirmOrder", id, nil)
}

func (s *stubServer) CancelOrder(ctx echo.Context, id openapi_types.UUID) error {
	return s.done(ctx, "CancelOrder", id, nil)
}

func (s *stubServer) CreateInventoryItem(ctx echo.Context) error {
	return s.done(ctx, "CreateInventoryItem", uuid.Nil, nil)
}

func (s *stubServer) UpdateInventoryItem(ctx echo.Context, id openapi_types.UUID) error {
	return s.done(ctx, "UpdateInventoryItem", id, nil)
}

func (s *stubServer) AddStock(ctx echo.Context, id openapi_types.UUID) error {
	return s.done(ctx, "AddStock", id, nil)
}

func (s *stubServer) ListInventoryMovements(ctx echo.Context, params ListInventoryMovementsParams) error {
	return s.done(ctx, "ListInventoryMovements", uuid.Nil, params)
}

func (s *stubServer) ListLowStock(ctx echo.Context, params ListLowStockParams) error {
	return s.done(ctx, "ListLowStock", uuid.Nil, params)
}

func (s *stubServer) GetInventoryItem(ctx echo.Context, id openapi_types.UUID) error {
	return s.done(ctx, "GetInventoryItem", id, nil)
}

type RouterTestSuite struct {
	suite.Suite
	stub   *stubServer
	e      *echo.Echo
	tokens *Tokens
	admin  string
	rider  string
	buyer  string
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.stub = &stubServer{}
	s.tokens = NewTokens(testSecret, time.Hour)

	e, err := NewRouter(context.Background(), s.stub, s.tokens, RouterOptions{
		OpenAPI:        api.OpenAPI,
		AllowedOrigins: []string{"http://localhost:5173"},
		Logger:         slog.New(slog.DiscardHandler),
	})
	s.Require().NoError(err)
	s.e = e

	s.admin = s.token(kernel.ActorAdmin)
	s.rider = s.token(kernel.ActorRider)
	s.buyer = s.token(kernel.ActorCustomer)
}

func (s *RouterTestSuite) token(typ kernel.ActorType) string {
	actor, err := kernel.NewActor(typ, kernel.NewUUID())
	s.Require().NoError(err)
	raw, _, err := s.tokens.Issue(actor)
	s.Require().NoError(err)
	return raw
}

func (s *RouterTestSuite) do(method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *RouterTestSuite) TestOTPRoutesArePublic() {
	rec := s.do(http.MethodPost, "/api/v1/customer/otp/request", "", `{"phone":"+15550100"}`)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("RequestOTP", s.stub.operation)
}

func (s *RouterTestSuite) TestGuards() {
	orderID := uuid.New().String()
	tests := []struct {
		name   string
		method string
		target string
		token  string
		status int
	}{
		{"customer route without token", http.MethodGet, "/api/v1/customer/orders", "", http.StatusUnauthorized},
		{"customer route with rider token", http.MethodGet, "/api/v1/customer/orders", s.rider, http.StatusForbidden},
		{"rider route with customer token", http.MethodPost, "/api/v1/rider/orders/" + orderID + "/accept", s.buyer, http.StatusForbidden},
		{"admin route with rider token", http.MethodGet, "/api/v1/admin/orders", s.rider, http.StatusForbidden},
		{"admin route with admin token", http.MethodGet, "/api/v1/admin/orders", s.admin, http.StatusNoContent},
		{"rider route with rider token", http.MethodGet, "/api/v1/rider/orders/available", s.rider, http.StatusNoContent},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(tt.method, tt.target, tt.token, "")
			s.Equal(tt.status, rec.Code, rec.Body.String())
		})
	}
}

func (s *RouterTestSuite) TestPathParameterBinding() {
	orderID := uuid.New()

	rec := s.do(http.MethodPost, "/api/v1/rider/orders/"+orderID.String()+"/accept", s.rider, "")

	s.Require().Equal(http.StatusNoContent, rec.Code)
	s.Equal("AcceptOrder", s.stub.operation)
	s.Equal(orderID, s.stub.id)
}

func (s *RouterTestSuite) TestStaticInventoryRoutesWinOverProductID() {
	productID := uuid.New()

	s.do(http.MethodGet, "/api/v1/admin/inventory/movements?productId="+productID.String()+"&limit=5", s.admin, "")
	s.Equal("ListInventoryMovements", s.stub.operation)
	params, ok := s.stub.params.(ListInventoryMovementsParams)
	s.Require().True(ok)
	s.Require().NotNil(params.ProductID)
	s.Equal(productID, *params.ProductID)
	s.Require().NotNil(params.Limit)
	s.Equal(5, *params.Limit)

	s.do(http.MethodGet, "/api/v1/admin/inventory/low-stock?outOfStock=true", s.admin, "")
	s.Equal("ListLowStock", s.stub.operation)

	s.do(http.MethodGet, "/api/v1/admin/inventory/"+productID.String(), s.admin, "")
	s.Equal("GetInventoryItem", s.stub.operation)
	s.Equal(productID, s.stub.id)
}

func (s *RouterTestSuite) TestQueryParameterBinding() {
	rec := s.do(http.MethodGet, "/api/v1/admin/orders?status=confirmed,ASSIGNED_RIDER&filter=Done&limit=10", s.admin, "")

	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	params, ok := s.stub.params.(ListOrdersParams)
	s.Require().True(ok)
	s.Require().NotNil(params.Status)
	s.Equal("confirmed,ASSIGNED_RIDER", *params.Status)
	s.Require().NotNil(params.Filter)
	s.Equal("Done", *params.Filter)
	s.Require().NotNil(params.Limit)
	s.Equal(10, *params.Limit)
}

func (s *RouterTestSuite) TestCustomerOrdersBindStatusAndFilter() {
	rec := s.do(http.MethodGet, "/api/v1/customer/orders?status=CREATED,%20OUT_FOR_DELIVERY&filter=canceled", s.buyer, "")

	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	s.Equal("ListCustomerOrders", s.stub.operation)
	params, ok := s.stub.params.(ListCustomerOrdersParams)
	s.Require().True(ok)
	s.Require().NotNil(params.Status)
	s.Equal("CREATED, OUT_FOR_DELIVERY", *params.Status)
	s.Require().NotNil(params.Filter)
	s.Equal("canceled", *params.Filter)
}

func (s *RouterTestSuite) TestRequestsAreCheckedAgainstTheDocument() {
	tests := []struct {
		name   string
		method string
		target string
		token  string
		body   string
	}{
		{"unknown status", http.MethodGet, "/api/v1/admin/orders?status=LOST", s.admin, ""},
		{"unknown status in list", http.MethodGet, "/api/v1/customer/orders?status=CONFIRMED,PAID", s.buyer, ""},
		{"limit too large", http.MethodGet, "/api/v1/admin/orders?limit=1000", s.admin, ""},
		{"unknown customer filter", http.MethodGet, "/api/v1/customer/orders?filter=archived", s.buyer, ""},
		{"short otp code", http.MethodPost, "/api/v1/customer/otp/verify", "", `{"phone":"+15550100","code":"12"}`},
		{"missing phone", http.MethodPost, "/api/v1/customer/otp/request", "", `{}`},
		{"empty cart", http.MethodPost, "/api/v1/customer/orders", s.buyer, `{"items":[]}`},
		{"zero quantity", http.MethodPost, "/api/v1/customer/orders", s.buyer,
			`{"addressId":"` + uuid.NewString() + `","items":[{"productId":"` + uuid.NewString() + `","quantity":0}]}`},
		{"bad stock reason", http.MethodPost, "/api/v1/admin/inventory/" + uuid.NewString() + "/stock", s.admin,
			`{"quantity":3,"reason":"ORDER_PLACED"}`},
		{"malformed order id", http.MethodGet, "/api/v1/admin/orders/not-a-uuid", s.admin, ""},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.stub.operation = ""

			rec := s.do(tt.method, tt.target, tt.token, tt.body)

			s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			s.Empty(s.stub.operation)
		})
	}
}

func (s *RouterTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/customer/orders", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
	rec := httptest.NewRecorder()

	s.e.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	s.Equal("authorization,content-type", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestLoadOpenAPI_RejectsBrokenDocument(t *testing.T) {
	_, err := LoadOpenAPI(context.Background(), []byte("openapi: 3.0.3\npaths: 12"))
	require.Error(t, err)
}

func TestValidator_NewOrderDestination(t *testing.T) {
	v := NewValidator()
	addressID := uuid.New()
	items := []NewOrderItem{{ProductID: uuid.New(), Quantity: 1}}

	assert.NoError(t, v.Validate(NewOrder{AddressID: &addressID, Items: items}))
	assert.NoError(t, v.Validate(NewOrder{Address: &Address{Line1: "Hall B, room 12"}, Items: items}))
	assert.Error(t, v.Validate(NewOrder{Items: items}), "no destination")
	assert.Error(t, v.Validate(NewOrder{AddressID: &addressID, Address: &Address{Line1: "Hall B"}, Items: items}),
		"both destinations")
	assert.Error(t, v.Validate(NewOrder{Address: &Address{}, Items: items}), "address without line1")
}
