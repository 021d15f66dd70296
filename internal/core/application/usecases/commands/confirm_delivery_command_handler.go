package commands

import (
	"context"

	"fooddispatch/internal/core/domain/model/notification"
	"fooddispatch/internal/core/domain/model/order"
)

// ConfirmDeliveryCommandHandler records the courier's side of the delivery
// handshake. The order is locked for the duration of the transaction so two
// interleaved confirmations cannot lose each other's flag.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for courier
// confirmations.
func NewConfirmDeliveryCommandHandler(uowFactory UoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the courier confirmation on the order and returns the updated
// aggregate. When the customer already confirmed, the order settles as
// Delivered and the customer is notified through the outbox.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (*order.Order, error) {
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

	if err = aggregate.ConfirmDelivery(cmd.CourierID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if aggregate.Status() == order.Delivered {
		deliveredNote, err := notification.NewNotification(
			aggregate.ID(), aggregate.CustomerID(), notification.EventOrderDelivered)
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
