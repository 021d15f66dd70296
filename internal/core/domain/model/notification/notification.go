// Package notification models the lifecycle-event records handed to the
// notification collaborator. Only the triggering event is captured here;
// transport (email, push) is outside the core.
package notification

import (
	"errors"
	"fmt"
	"time"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification")

// Event names the order-lifecycle moment a notification is about.
type Event string

const (
	EventJobClaimed     Event = "JobClaimed"
	EventOrderDelivered Event = "OrderDelivered"
	EventOrderCancelled Event = "OrderCancelled"
)

// Validate checks the event is one of the known lifecycle moments.
func (e Event) Validate() error {
	switch e {
	case EventJobClaimed, EventOrderDelivered, EventOrderCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("event",
			fmt.Errorf("%q is not a known notification event", string(e)))
	}
}

// Notification is one outbox record: which order, which recipient, what
// happened. Records are written in the same transaction as the state change
// they describe and relayed asynchronously.
type Notification struct {
	id          kernel.UUID
	orderID     kernel.UUID
	recipientID kernel.UUID
	event       Event
	createdAt   time.Time
	sentAt      *time.Time

	isConstructed bool
}

// NewNotification creates an unsent notification for an order event.
func NewNotification(orderID, recipientID kernel.UUID, event Event) (*Notification, error) {
	if err := errors.Join(
		orderID.Validate(),
		recipientID.Validate(),
		event.Validate(),
	); err != nil {
		return nil, err
	}

	return &Notification{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		recipientID:   recipientID,
		event:         event,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id, orderID, recipientID kernel.UUID,
	event Event,
	createdAt time.Time,
	sentAt *time.Time,
) (*Notification, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		recipientID.Validate(),
		event.Validate(),
	); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		orderID:       orderID,
		recipientID:   recipientID,
		event:         event,
		createdAt:     createdAt,
		sentAt:        sentAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Notification came from a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// OrderID returns the order the event belongs to.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// RecipientID returns the identity the notification is addressed to.
func (n *Notification) RecipientID() kernel.UUID {
	return n.recipientID
}

// Event returns the lifecycle event being announced.
func (n *Notification) Event() Event {
	return n.event
}

// CreatedAt returns when the record was written.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// SentAt returns when the relay handed the record off, or nil while unsent.
func (n *Notification) SentAt() *time.Time {
	return n.sentAt
}

// IsSent reports whether the relay already processed this record.
func (n *Notification) IsSent() bool {
	return n.sentAt != nil
}

// MarkSent records the relay hand-off time. Marking twice is an error; the
// relay must not double-send.
func (n *Notification) MarkSent(at time.Time) error {
	if n.sentAt != nil {
		return errs.NewValueIsInvalidErrorWithCause("notification",
			fmt.Errorf("notification %s already sent", n.id))
	}
	n.sentAt = &at
	return nil
}
