package jobs

import (
	"context"
	"log/slog"

	"withus/internal/core/application/usecases/queries"
	"withus/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// LowStockReportJob periodically scans the catalog for items whose stock
// fell below the configured threshold and emails the administrator a
// report. Runs hourly; an empty report sends nothing.
type LowStockReportJob struct {
	handler   queries.GetLowStockItemsQueryHandler
	notifier  ports.Notifier
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockReportJob creates the hourly low stock report job.
func NewLowStockReportJob(
	handler queries.GetLowStockItemsQueryHandler,
	notifier ports.Notifier,
	threshold int,
	logger *slog.Logger,
) *LowStockReportJob {
	return &LowStockReportJob{
		handler:   handler,
		notifier:  notifier,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "low_stock_report_job"),
	}
}

// Start schedules the job to run at the top of every hour.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Low stock report job started (running hourly)", "threshold", j.threshold)
	return nil
}

// Stop stops the job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}

// run executes one report cycle. Failures are logged and never propagate:
// the next cycle simply tries again.
func (j *LowStockReportJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetLowStockItemsQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock report job misconfigured", "error", err)
		return
	}

	items, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock report job failed", "error", err)
		return
	}

	if len(items) == 0 {
		return
	}

	lines := make([]ports.StockAlertLine, len(items))
	for i, item := range items {
		lines[i] = ports.StockAlertLine{ItemName: item.Name, Stock: item.StockQuantity}
	}

	if err := j.notifier.StockAlert(ctx, lines); err != nil {
		j.logger.ErrorContext(ctx, "Failed to send low stock report", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Low stock report sent", "items", len(lines))
}
