package jobs

import (
	"context"
	"log/slog"
	"time"

	"beverage/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationRetentionJob prunes aged read notification entries on a
// schedule. Runs hourly; the retention window is configuration.
type NotificationRetentionJob struct {
	handler   commands.PruneNotificationsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationRetentionJob creates the retention job.
// Uses PruneNotificationsCommandHandler to delete read entries older than
// the retention window.
func NewNotificationRetentionJob(
	handler commands.PruneNotificationsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *NotificationRetentionJob {
	return &NotificationRetentionJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "notification_retention_job"),
	}
}

// Start begins the retention job to run at the top of every hour.
func (j *NotificationRetentionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPruneNotificationsCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Notification retention job misconfigured", "error", cmdErr)
			return
		}

		pruned, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Notification retention job failed", "error", handleErr)
			return
		}

		if pruned > 0 {
			j.logger.InfoContext(ctx, "Pruned read notifications", "count", pruned)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retention job started (running hourly)")
	return nil
}

// Stop stops the retention job.
func (j *NotificationRetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification retention job stopped")
}
