package http

import (
	"campusdelivery/internal/core/application/usecases/commands"
	"campusdelivery/internal/core/application/usecases/queries"

	"github.com/go-playground/validator/v10"
)

// CommandHandlers are the write operations exposed over HTTP.
type CommandHandlers struct {
	RequestOTP             commands.RequestOTPCommandHandler
	VerifyOTP              commands.VerifyOTPCommandHandler
	CreateOrder            commands.CreateOrderCommandHandler
	ConfirmOrder           commands.ConfirmOrderCommandHandler
	AcceptOrder            commands.AcceptOrderCommandHandler
	MarkOutForDelivery     commands.MarkOutForDeliveryCommandHandler
	MarkDelivered          commands.MarkDeliveredCommandHandler
	CancelOrder            commands.CancelOrderCommandHandler
	CreateInventoryItem    commands.CreateInventoryItemCommandHandler
	UpdateInventoryPricing commands.UpdateInventoryPricingCommandHandler
	AddStock               commands.AddStockCommandHandler
}

// QueryHandlers are the read models exposed over HTTP.
type QueryHandlers struct {
	GetOrder              queries.GetOrderQueryHandler
	ListOrders            queries.ListOrdersQueryHandler
	GetOrderEvents        queries.GetOrderEventsQueryHandler
	GetInventoryItem      queries.GetInventoryItemQueryHandler
	GetInventoryMovements queries.GetInventoryMovementsQueryHandler
	GetLowStock           queries.GetLowStockQueryHandler
}

// Server implements ServerInterface. It translates requests into commands and
// queries and their results into response bodies; every failure is returned
// to the echo error handler.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	tokens   *Tokens
}

var _ ServerInterface = (*Server)(nil)

func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, tokens *Tokens) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		tokens:   tokens,
	}
}

// Validator plugs go-playground/validator into echo.Context.Validate.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
