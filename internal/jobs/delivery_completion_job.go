package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type completeDeliveriesHandler interface {
	Handle(ctx context.Context, cmd commands.CompleteDeliveriesCommand) error
}

// DeliveryCompletionJob periodically completes every delivery in progress.
type DeliveryCompletionJob struct {
	handler  completeDeliveriesHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDeliveryCompletionJob(handler completeDeliveriesHandler, schedule string, logger *slog.Logger) *DeliveryCompletionJob {
	return &DeliveryCompletionJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_completion_job"),
	}
}

func (j *DeliveryCompletionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery completion job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running tick to finish.
func (j *DeliveryCompletionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery completion job stopped")
}

func (j *DeliveryCompletionJob) run() {
	ctx := context.Background()
	cmd := commands.NewCompleteDeliveriesCommand()

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Delivery completion job failed", "error", err)
	}
}
