package jobs

import (
	"context"
	"errors"
	"log/slog"

	"shop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type dispatchDeliveryHandler interface {
	Handle(ctx context.Context, cmd commands.DispatchDeliveryCommand) error
}

// DeliveryDispatchJob periodically starts the delivery of the oldest order
// whose shipment is still Ready. One order is dispatched per tick.
type DeliveryDispatchJob struct {
	handler  dispatchDeliveryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryDispatchJob creates the job. schedule is a six-field cron
// expression with a leading seconds field.
func NewDeliveryDispatchJob(handler dispatchDeliveryHandler, schedule string, logger *slog.Logger) *DeliveryDispatchJob {
	return &DeliveryDispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_dispatch_job"),
	}
}

func (j *DeliveryDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running tick to finish.
func (j *DeliveryDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery dispatch job stopped")
}

func (j *DeliveryDispatchJob) run() {
	ctx := context.Background()
	cmd := commands.NewDispatchDeliveryCommand()

	err := j.handler.Handle(ctx, cmd)
	switch {
	case err == nil:
		j.logger.DebugContext(ctx, "Delivery dispatched")
	case errors.Is(err, commands.ErrNoOrderReadyForDelivery):
		// Nothing waiting.
	default:
		j.logger.ErrorContext(ctx, "Delivery dispatch job failed", "error", err)
	}
}
