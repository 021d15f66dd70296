package commands

import (
	"context"

	"fooddispatch/internal/core/domain/model/notification"
	"fooddispatch/internal/core/domain/model/order"
)

// ClaimJobCommandHandler handles the courier claim, the at-most-one-claimant
// acceptance protocol. The exclusivity guarantee rests entirely on the
// repository's single conditional write against the store, not on any
// in-process lock, so it holds across multiple service instances.
//
// Example:
//
//	handler := NewClaimJobCommandHandler(uowFactory)
//	cmd, _ := NewClaimJobCommand(orderID, courierID)
//
//	claimed, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrJobUnavailable):
//	    // lost the race; re-list available jobs and try another
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // no such order
//	}
type ClaimJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewClaimJobCommandHandler creates a handler for claim operations.
func NewClaimJobCommandHandler(uowFactory UoWFactory) ClaimJobCommandHandler {
	return ClaimJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim and returns the claimed order on success.
//
// The conditional update, the re-read of the updated row, and the outbox
// record all commit in one transaction. A zero-row conditional update
// surfaces as ErrJobUnavailable (or ErrObjectNotFound for an order that was
// never created); either way nothing is persisted.
func (h ClaimJobCommandHandler) Handle(ctx context.Context, cmd ClaimJobCommand) (*order.Order, error) {
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
	if err := orderRepo.Claim(ctx, cmd.OrderID(), cmd.CourierID()); err != nil {
		return nil, err
	}

	claimed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	claimedNote, err := notification.NewNotification(
		claimed.ID(), claimed.CustomerID(), notification.EventJobClaimed)
	if err != nil {
		return nil, err
	}
	if err = uow.NotificationRepository().Add(ctx, claimedNote); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return claimed, nil
}
