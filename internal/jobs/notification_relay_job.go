package jobs

import (
	"context"
	"log/slog"

	"fooddispatch/internal/core/ports"

	"github.com/robfig/cron/v3"
)

const relayBatchSize = 100

// NotificationRelayJob drains the outbox on a schedule. Each tick fetches
// unsent rows, hands them to the notifier and stamps them sent. A row whose
// delivery fails stays unsent and is retried on the next tick.
type NotificationRelayJob struct {
	notifications ports.NotificationRepository
	notifier      ports.Notifier
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewNotificationRelayJob creates a job relaying outbox rows to the
// notifier.
func NewNotificationRelayJob(
	notifications ports.NotificationRepository,
	notifier ports.Notifier,
	logger *slog.Logger,
) *NotificationRelayJob {
	return &NotificationRelayJob{
		notifications: notifications,
		notifier:      notifier,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "notification_relay_job"),
	}
}

// Start begins the relay job, running every second.
func (j *NotificationRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.relayOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Notification relay tick failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *NotificationRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification relay job stopped")
}

func (j *NotificationRelayJob) relayOnce(ctx context.Context) error {
	unsent, err := j.notifications.GetUnsent(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, note := range unsent {
		if err := j.notifier.Notify(ctx, note); err != nil {
			j.logger.ErrorContext(ctx, "Notification delivery failed",
				"notification_id", note.ID().String(), "error", err)
			continue
		}
		if err := j.notifications.MarkSent(ctx, note.ID()); err != nil {
			j.logger.ErrorContext(ctx, "Failed to mark notification sent",
				"notification_id", note.ID().String(), "error", err)
		}
	}

	return nil
}
