package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// FulfillmentJob runs the fulfillment sweep on a fixed schedule.
// Each run first ships the processing orders whose dwell has passed, then
// moves dwelled pending orders into processing, so every order spends at
// least one interval in processing before it ships.
type FulfillmentJob struct {
	handler   commands.AdvanceFulfillmentCommandHandler
	cron      *cron.Cron
	schedule  string
	batchSize int
	dwell     time.Duration
	logger    *slog.Logger
}

// NewFulfillmentJob creates the fulfillment sweep job.
// The schedule is a six-field cron expression with a seconds column.
func NewFulfillmentJob(
	handler commands.AdvanceFulfillmentCommandHandler,
	schedule string,
	batchSize int,
	dwell time.Duration,
	logger *slog.Logger,
) *FulfillmentJob {
	return &FulfillmentJob{
		handler:   handler,
		cron:      cron.New(cron.WithSeconds()),
		schedule:  schedule,
		batchSize: batchSize,
		dwell:     dwell,
		logger:    logger.With("component", "fulfillment_job"),
	}
}

// Start begins the fulfillment sweep on its schedule.
func (j *FulfillmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewAdvanceFulfillmentCommand(j.batchSize, j.dwell)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Fulfillment sweep misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Fulfillment sweep failed", "error", handleErr)
		}
	})

	if err != nil {
		return fmt.Errorf("failed to schedule fulfillment sweep: %w", err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment job started",
		"schedule", j.schedule, "batch_size", j.batchSize, "dwell", j.dwell.String())
	return nil
}

// Stop stops the fulfillment job.
func (j *FulfillmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fulfillment job stopped")
}
