package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions of the background jobs.
type Schedules struct {
	Dispatch   string
	Completion string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dispatchJob   *DeliveryDispatchJob
	completionJob *DeliveryCompletionJob
}

func NewJobManager(
	dispatchHandler dispatchDeliveryHandler,
	completionHandler completeDeliveriesHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchJob:   NewDeliveryDispatchJob(dispatchHandler, schedules.Dispatch, logger),
		completionJob: NewDeliveryCompletionJob(completionHandler, schedules.Completion, logger),
	}
}

// StartAll starts all scheduled jobs. If one fails to start, the ones already
// running are stopped.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start delivery dispatch job: %w", err)
	}

	if err := jm.completionJob.Start(); err != nil {
		jm.dispatchJob.Stop()
		return fmt.Errorf("failed to start delivery completion job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.completionJob.Stop()
	jm.dispatchJob.Stop()
}
