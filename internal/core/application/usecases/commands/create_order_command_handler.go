package commands

import (
	"context"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/order"
	"fooddispatch/internal/core/ports"
	"fooddispatch/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves every referenced menu item through the catalog in one read,
// freezes per-line prices, and persists the order with all of its items as a
// single atomic unit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, catalog)
//	cmd, _ := NewCreateOrderCommand(customerID, items)
//
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrValidation) {
//	    // every unresolved id and bad quantity is listed in err
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.MenuCatalog
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and the catalog
// reader for menu item resolution.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, catalog ports.MenuCatalog) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the order creation command and returns the created order.
//
// The catalog read happens before the transaction opens, so no lock is held
// across the external call. Unresolvable ids are aggregated into one
// ValidationError naming every missing id, not just the first. On success the
// order row and all item rows commit together; any failure rolls back the
// whole unit and persists nothing.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ids := cmd.SortedMenuItemIDs()
	resolved, err := h.catalog.ResolveMenuItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	validationErr := errs.NewValidationError()
	for _, id := range ids {
		if _, ok := resolved[id]; !ok {
			validationErr.Append("menu item %s not found", id)
		}
	}
	if validationErr.HasIssues() {
		return nil, validationErr
	}

	quantities := cmd.Items()
	items := make([]order.Item, 0, len(ids))
	for _, id := range ids {
		item, itemErr := order.NewItemFromMenu(resolved[id], quantities[id])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), cmd.CustomerID(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
