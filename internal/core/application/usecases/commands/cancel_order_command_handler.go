package commands

import (
	"context"

	"fooddispatch/internal/core/domain/model/notification"
	"fooddispatch/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles order cancellation by the owning
// customer. The order is re-read under a row lock inside the same
// transaction that writes the new status, so a concurrent claim and a cancel
// serialize; whichever commits first wins and the loser sees the new state.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation and returns the cancelled order.
// Fails with ErrForbidden when the caller does not own the order and with
// ErrInvalidTransition when the order is no longer Pending.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if err = aggregate.Cancel(cmd.CustomerID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	cancelledNote, err := notification.NewNotification(
		aggregate.ID(), aggregate.CustomerID(), notification.EventOrderCancelled)
	if err != nil {
		return nil, err
	}
	if err = uow.NotificationRepository().Add(ctx, cancelledNote); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
