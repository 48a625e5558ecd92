package cmd

import (
	"log/slog"

	httpin "campusdelivery/internal/adapters/in/http"
	"campusdelivery/internal/adapters/out/postgres"
	"campusdelivery/internal/core/application/usecases/commands"
	"campusdelivery/internal/core/application/usecases/queries"
	"campusdelivery/internal/core/ports"
	"campusdelivery/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot builds every handler from one gorm connection and the
// outbound adapters chosen in main.
type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	otpStore   ports.OTPStore
	otpSender  ports.OTPSender
	logger     *slog.Logger
}

// NewCompositionRoot accepts a nil publisher; committed changes are then not
// announced anywhere.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	otpStore ports.OTPStore,
	otpSender ports.OTPSender,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		otpStore:   otpStore,
		otpSender:  otpSender,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoWFactory() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRequestOTPCommandHandler() commands.RequestOTPCommandHandler {
	return commands.NewRequestOTPCommandHandler(c.customerUoWFactory(), c.otpStore, c.otpSender, c.cfg.OTPTTL)
}

func (c *CompositionRoot) CreateVerifyOTPCommandHandler() commands.VerifyOTPCommandHandler {
	return commands.NewVerifyOTPCommandHandler(c.customerUoWFactory(), c.otpStore)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.cfg.DeliveryFee)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOutForDeliveryCommandHandler() commands.MarkOutForDeliveryCommandHandler {
	return commands.NewMarkOutForDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	return commands.NewMarkDeliveredCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateInventoryItemCommandHandler() commands.CreateInventoryItemCommandHandler {
	return commands.NewCreateInventoryItemCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateInventoryPricingCommandHandler() commands.UpdateInventoryPricingCommandHandler {
	return commands.NewUpdateInventoryPricingCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateAddStockCommandHandler() commands.AddStockCommandHandler {
	return commands.NewAddStockCommandHandler(c.inventoryUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderEventsQueryHandler() queries.GetOrderEventsQueryHandler {
	return queries.NewGetOrderEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryItemQueryHandler() queries.GetInventoryItemQueryHandler {
	return queries.NewGetInventoryItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryMovementsQueryHandler() queries.GetInventoryMovementsQueryHandler {
	return queries.NewGetInventoryMovementsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockQueryHandler() queries.GetLowStockQueryHandler {
	return queries.NewGetLowStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTokens() *httpin.Tokens {
	return httpin.NewTokens(c.cfg.JWTSecret, c.cfg.CustomerTokenTTL)
}

// CreateServer wires every HTTP operation to its handler.
func (c *CompositionRoot) CreateServer(tokens *httpin.Tokens) *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			RequestOTP:             c.CreateRequestOTPCommandHandler(),
			VerifyOTP:              c.CreateVerifyOTPCommandHandler(),
			CreateOrder:            c.CreateCreateOrderCommandHandler(),
			ConfirmOrder:           c.CreateConfirmOrderCommandHandler(),
			AcceptOrder:            c.CreateAcceptOrderCommandHandler(),
			MarkOutForDelivery:     c.CreateMarkOutForDeliveryCommandHandler(),
			MarkDelivered:          c.CreateMarkDeliveredCommandHandler(),
			CancelOrder:            c.CreateCancelOrderCommandHandler(),
			CreateInventoryItem:    c.CreateCreateInventoryItemCommandHandler(),
			UpdateInventoryPricing: c.CreateUpdateInventoryPricingCommandHandler(),
			AddStock:               c.CreateAddStockCommandHandler(),
		},
		httpin.QueryHandlers{
			GetOrder:              c.CreateGetOrderQueryHandler(),
			ListOrders:            c.CreateListOrdersQueryHandler(),
			GetOrderEvents:        c.CreateGetOrderEventsQueryHandler(),
			GetInventoryItem:      c.CreateGetInventoryItemQueryHandler(),
			GetInventoryMovements: c.CreateGetInventoryMovementsQueryHandler(),
			GetLowStock:           c.CreateGetLowStockQueryHandler(),
		},
		tokens,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.logger,
		jobs.NewLowStockReportJob(c.CreateGetLowStockQueryHandler(), c.cfg.LowStockCron, c.logger),
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}
