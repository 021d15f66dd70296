// Package notificationrepo persists the lifecycle-event outbox. Rows are
// written inside the same transaction as the order change they describe and
// relayed to the notifier by a background job.
package notificationrepo

import (
	"time"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents one outbox row.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	RecipientID uuid.UUID `gorm:"type:uuid"`
	Event       string    `gorm:"type:varchar(32)"`
	CreatedAt   time.Time
	SentAt      *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox rows.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		RecipientID: aggregate.RecipientID().Bytes(),
		Event:       string(aggregate.Event()),
		CreatedAt:   aggregate.CreatedAt(),
		SentAt:      aggregate.SentAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id, orderID, recipientID,
		notification.Event(dto.Event),
		dto.CreatedAt, dto.SentAt)
}
