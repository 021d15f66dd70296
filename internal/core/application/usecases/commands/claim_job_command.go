package commands

import (
	"errors"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/pkg/guard"
)

var (
	ErrClaimJobCommandIsNotConstructed = errors.New(
		"ClaimJobCommand must be created via NewClaimJobCommand",
	)
)

// ClaimJobCommand represents a courier's attempt to take a pending order.
// Among all concurrent claims for the same order exactly one wins; the rest
// receive ErrJobUnavailable and are expected to re-list and retry.
type ClaimJobCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimJobCommand creates a command for a courier to claim an order.
// Both identifiers must be valid.
func NewClaimJobCommand(orderID, courierID kernel.UUID) (ClaimJobCommand, error) {
	cmd := ClaimJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return ClaimJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimJobCommand) Validate() error {
	return c.guard.Validate(ErrClaimJobCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c ClaimJobCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the claiming courier's identity.
func (c ClaimJobCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *ClaimJobCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ClaimJobCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
