package commands

import (
	"errors"
	"sort"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/pkg/errs"
	"fooddispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand",
	)
)

// CreateOrderCommand represents a customer's request to place an order.
// Carries the requested menu items as a mapping of menu item id to quantity.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, map[kernel.UUID]int{
//	    pizzaID: 2,
//	    colaID:  1,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	items      map[kernel.UUID]int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The item set must be non-empty and every quantity must be a positive
// integer; every offending quantity is listed in one ValidationError so the
// caller can fix everything in a single round trip.
func NewCreateOrderCommand(customerID kernel.UUID, items map[kernel.UUID]int) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identity of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns a copy of the requested menu item quantities.
func (c CreateOrderCommand) Items() map[kernel.UUID]int {
	items := make(map[kernel.UUID]int, len(c.items))
	for id, qty := range c.items {
		items[id] = qty
	}
	return items
}

// SortedMenuItemIDs returns the requested menu item ids in a deterministic
// order, so catalog resolution and error reporting are stable.
func (c CreateOrderCommand) SortedMenuItemIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items map[kernel.UUID]int) error {
	if len(items) == 0 {
		return errs.NewValidationError("items must not be empty")
	}

	validationErr := errs.NewValidationError()
	ids := make([]kernel.UUID, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	for _, id := range ids {
		if err := id.Validate(); err != nil {
			validationErr.Append("menu item id is invalid")
			continue
		}
		if qty := items[id]; qty <= 0 {
			validationErr.Append("quantity for %s must be positive, got %d", id, qty)
		}
	}
	if validationErr.HasIssues() {
		return validationErr
	}

	c.items = make(map[kernel.UUID]int, len(items))
	for id, qty := range items {
		c.items[id] = qty
	}
	return nil
}
