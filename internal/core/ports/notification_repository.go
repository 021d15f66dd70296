package ports

import (
	"context"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/notification"
)

// NotificationRepository persists the lifecycle-event outbox. Records are
// added in the same transaction as the order state change they describe, so
// an event exists exactly when its transition committed.
type NotificationRepository interface {
	// Add persists a new outbox record.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// GetUnsent retrieves up to limit unsent records, oldest first.
	GetUnsent(ctx context.Context, limit int) ([]*notification.Notification, error)

	// MarkSent stamps the record as handed off to the notifier.
	MarkSent(ctx context.Context, id kernel.UUID) error
}

// Notifier delivers one notification to its recipient. The core treats
// delivery as fire-and-forget; transport concerns live behind this port.
type Notifier interface {
	Notify(ctx context.Context, n *notification.Notification) error
}
