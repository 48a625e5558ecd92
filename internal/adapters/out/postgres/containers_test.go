package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	postgres_adapter "campusdelivery/internal/adapters/out/postgres"
	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const truncateAll = `TRUNCATE TABLE
	products, inventory, inventory_movements,
	orders, order_addresses, order_items, order_events, rider_assignments, payments,
	riders, customers, addresses, phone_whitelist`

// startPostgres runs a container and migrates the full schema into it.
func startPostgres(s *suite.Suite) (*postgres.PostgresContainer, *gorm.DB) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	s.Require().NoError(err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)

	s.Require().NoError(postgres_adapter.Migrate(db))
	return container, db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderPlaced(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishStatusChanged(ctx context.Context, event order.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// newTestOrder builds a placed order of one 2 x 10.00 line and a 5.00 fee.
func newTestOrder(s *suite.Suite) *order.Order {
	address, err := order.NewAddress("Library", "Desk 4", "")
	s.Require().NoError(err)
	price, err := kernel.MoneyFromString("10.00")
	s.Require().NoError(err)
	fee, err := kernel.MoneyFromString("5.00")
	s.Require().NoError(err)

	noDiscount, err := kernel.NewPercent(decimal.Zero)
	s.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), 2, price, noDiscount)
	s.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), address, []order.Item{item}, fee)
	s.Require().NoError(err)
	return o
}
