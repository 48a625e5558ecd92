// Package jobs provides scheduled background tasks for the delivery service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field and run outside of
// any order or stock transaction.
//
// # Available Jobs
//
// LowStockReportJob logs the products whose quantity fell below their
// minimum. Its schedule comes from LOW_STOCK_CRON.
//
// # Usage
//
//	report := jobs.NewLowStockReportJob(lowStockHandler, cfg.LowStockCron, logger)
//	jobManager := jobs.NewJobManager(logger, report)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
