package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// staleAfter is how long an order may sit in a non-terminal status before the
// progression job nudges it forward.
const staleAfter = 30 * time.Second

// OrderProgressionJob manages the scheduled advancement of active orders.
// Runs every five seconds and advances every order whose status has not
// changed for staleAfter, simulating the kitchen and delivery workflow.
type OrderProgressionJob struct {
	handler commands.ProgressOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderProgressionJob creates a new job for advancing stale orders.
// Uses ProgressOrdersCommandHandler to process progression every five seconds.
func NewOrderProgressionJob(handler commands.ProgressOrdersCommandHandler, logger *slog.Logger) *OrderProgressionJob {
	return &OrderProgressionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_progression_job"),
	}
}

// Start begins the order progression job to run every five seconds.
func (j *OrderProgressionJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewProgressOrdersCommand(time.Now().Add(-staleAfter))
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order progression command rejected", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order progression job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order progression job started (running every five seconds)")
	return nil
}

// Stop stops the order progression job.
func (j *OrderProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order progression job stopped")
}
