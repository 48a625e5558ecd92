package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"campusdelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultLowStockSchedule runs the report every 15 minutes. Schedules carry a
// seconds field.
const DefaultLowStockSchedule = "0 */15 * * * *"

type lowStockReader interface {
	Handle(ctx context.Context, query queries.GetLowStockQuery) ([]queries.InventoryItemResponse, error)
}

// LowStockReportJob logs one warning per product whose quantity fell below
// its minimum, so operators can restock before customers hit ErrOutOfStock.
type LowStockReportJob struct {
	reader   lowStockReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewLowStockReportJob(reader lowStockReader, schedule string, logger *slog.Logger) *LowStockReportJob {
	if schedule == "" {
		schedule = DefaultLowStockSchedule
	}
	return &LowStockReportJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "low_stock_report_job"),
	}
}

// Start registers the report on its schedule and starts the scheduler.
func (j *LowStockReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	}); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report and returns how many products are below threshold.
func (j *LowStockReportJob) Run(ctx context.Context) (int, error) {
	items, err := j.reader.Handle(ctx, queries.NewGetLowStockQuery(false))
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock report failed", "error", err)
		return 0, err
	}

	for _, item := range items {
		j.logger.WarnContext(ctx, "Product below minimum stock",
			"product_id", item.ProductID.String(),
			"product_name", item.ProductName,
			"quantity", item.Quantity,
			"min_quantity", item.MinQuantity)
	}
	if len(items) > 0 {
		j.logger.InfoContext(ctx, "Low stock report finished", "products", len(items))
	}
	return len(items), nil
}

// Stop waits for a running report to finish.
func (j *LowStockReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
