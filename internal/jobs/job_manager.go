// Package jobs provides the scheduled background tasks of the shop,
// implemented with github.com/robfig/cron/v3. Jobs are best-effort: every
// failure is logged and the next scheduled run retries from scratch.
package jobs

import (
	"fmt"
	"log/slog"

	"withus/internal/core/application/usecases/queries"
	"withus/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	lowStockReportJob *LowStockReportJob
}

// NewJobManager creates a job manager with all required jobs wired up.
func NewJobManager(
	lowStockHandler queries.GetLowStockItemsQueryHandler,
	notifier ports.Notifier,
	lowStockThreshold int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockReportJob: NewLowStockReportJob(
			lowStockHandler, notifier, lowStockThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockReportJob.Stop()
}
