package commands

import (
	"context"

	"fooddispatch/internal/core/domain/model/notification"
	"fooddispatch/internal/core/domain/model/order"
)

// ConfirmReceiptCommandHandler records the customer's side of the delivery
// handshake under the same row lock as the courier's, so the two
// confirmations serialize and the second one always observes the first.
type ConfirmReceiptCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmReceiptCommandHandler creates a handler for customer
// confirmations.
func NewConfirmReceiptCommandHandler(uowFactory UoWFactory) ConfirmReceiptCommandHandler {
	return ConfirmReceiptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the customer confirmation on the order and returns the
// updated aggregate. When the courier already confirmed, the order settles
// as Delivered and the courier is notified through the outbox.
func (h ConfirmReceiptCommandHandler) Handle(ctx context.Context, cmd ConfirmReceiptCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ConfirmReceipt(cmd.CustomerID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if aggregate.Status() == order.Delivered && aggregate.Courier() != nil {
		deliveredNote, err := notification.NewNotification(
			aggregate.ID(), *aggregate.Courier(), notification.EventOrderDelivered)
		if err != nil {
			return nil, err
		}
		if err = uow.NotificationRepository().Add(ctx, deliveredNote); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
