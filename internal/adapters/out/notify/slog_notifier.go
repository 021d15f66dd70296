// Package notify delivers lifecycle notifications to their recipients.
// The current transport writes structured log records; the relay job and
// outbox do not care what sits behind the Notifier port.
package notify

import (
	"context"
	"log/slog"

	"fooddispatch/internal/core/domain/model/notification"
)

// SlogNotifier implements the Notifier port over structured logging.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a log-backed notifier.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{
		logger: logger.With("component", "notifier"),
	}
}

// Notify emits one notification as a structured log record.
func (n *SlogNotifier) Notify(ctx context.Context, note *notification.Notification) error {
	if err := note.Validate(); err != nil {
		return err
	}

	n.logger.InfoContext(ctx, "Notification delivered",
		"notification_id", note.ID().String(),
		"order_id", note.OrderID().String(),
		"recipient_id", note.RecipientID().String(),
		"event", string(note.Event()),
	)
	return nil
}
