package commands

import (
	"errors"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/pkg/guard"
)

var (
	ErrConfirmReceiptCommandIsNotConstructed = errors.New(
		"ConfirmReceiptCommand must be created via NewConfirmReceiptCommand",
	)
)

// ConfirmReceiptCommand represents the customer's half of the delivery
// handshake.
type ConfirmReceiptCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmReceiptCommand creates a command recording the customer's
// receipt confirmation. Both identifiers must be valid.
func NewConfirmReceiptCommand(orderID, customerID kernel.UUID) (ConfirmReceiptCommand, error) {
	cmd := ConfirmReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return ConfirmReceiptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceiptCommandIsNotConstructed)
}

// OrderID returns the order being confirmed.
func (c ConfirmReceiptCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the caller's identity, checked against the order owner.
func (c ConfirmReceiptCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *ConfirmReceiptCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmReceiptCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
