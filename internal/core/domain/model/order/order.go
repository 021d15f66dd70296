package order

import (
	"errors"
	"fmt"
	"time"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a delivery order. It is the aggregate root that drives the
// lifecycle from creation through the claim to the dual delivery
// confirmation.
//
// Order maintains these invariants:
//   - At least one item; every item is valid and write-once
//   - totalPrice always equals the sum of the items' quantity x priceAtTime
//   - Status is Delivered if and only if both confirmation flags are true
//   - A courier is set if and only if status is Delivering or Delivered
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through the lifecycle methods, never partial field edits.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the owning customer (managed by the auth
	// collaborator; non-owning reference)
	customerID kernel.UUID

	// courierID is the assigned courier's ID (nil until a claim succeeds)
	courierID *kernel.UUID

	// items are the order lines, owned by the order and write-once
	items []Item

	// totalPrice is computed from the items at construction, never supplied
	// by a caller
	totalPrice kernel.Money

	// createdAt is the creation timestamp
	createdAt time.Time

	// status is the current state in the order lifecycle
	status Status

	// driverConfirmed records the assigned courier's delivery confirmation
	driverConfirmed bool

	// customerConfirmed records the owning customer's receipt confirmation
	customerConfirmed bool

	// isConstructed ensures the order came from a constructor
	isConstructed bool
}

// NewOrder creates a new Pending order owning the given items. The total
// price is computed as the sum of the items' line totals; callers never
// supply it.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: identity of the owning customer
//   - items: at least one order line, each already carrying its price snapshot
//
// The new order has no courier and both confirmation flags unset.
func NewOrder(id, customerID kernel.UUID, items []Item) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence. It revalidates every
// invariant so a corrupted row cannot produce an inconsistent aggregate:
// the total is recomputed from the items, the courier reference must match
// the status, and the Delivered status must agree with the confirmation
// flags.
func RestoreOrder(
	id, customerID kernel.UUID,
	courierID *kernel.UUID,
	items []Item,
	status Status,
	createdAt time.Time,
	driverConfirmed, customerConfirmed bool,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}
	if (status == Delivered) != (driverConfirmed && customerConfirmed) {
		return nil, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s does not agree with confirmations driver=%t customer=%t",
				status.String(), driverConfirmed, customerConfirmed))
	}

	order := &Order{
		courierID:         courierID,
		status:            status,
		createdAt:         createdAt,
		driverConfirmed:   driverConfirmed,
		customerConfirmed: customerConfirmed,
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed. Call it when
// accepting orders from outside the package, e.g. before persisting.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identity.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Courier returns the assigned courier's ID, or nil before a claim.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the computed order total.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DriverConfirmed reports whether the assigned courier confirmed delivery.
func (o *Order) DriverConfirmed() bool {
	return o.driverConfirmed
}

// CustomerConfirmed reports whether the owning customer confirmed receipt.
func (o *Order) CustomerConfirmed() bool {
	return o.customerConfirmed
}

// Cancel withdraws the order on behalf of the owning customer.
//
// Business rules:
//   - Only the owning customer may cancel (ForbiddenError otherwise)
//   - Only Pending orders can be cancelled (InvalidTransitionError otherwise)
//
// Cancellation is a status transition, not removal; the order and its items
// remain on record.
func (o *Order) Cancel(caller kernel.UUID) error {
	if !caller.IsEqual(o.customerID) {
		return errs.NewForbiddenError("cancel order", "caller is not the owning customer")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Assign records a courier claim on the aggregate: Pending -> Delivering with
// the courier set in the same step.
//
// Note the aggregate-level check alone cannot arbitrate concurrent claims
// across processes; the repository performs the equivalent guard as a single
// conditional update against the store, and this method keeps in-memory
// aggregates consistent with that rule.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.courierID != nil {
		return errs.NewJobUnavailableError(o.id.String())
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// ConfirmDelivery records the assigned courier's confirmation.
//
// Business rules:
//   - Only the assigned courier may confirm (ForbiddenError otherwise,
//     including when no courier is assigned yet)
//   - Confirming twice is idempotent: the flag stays true, no error
//   - The order becomes Delivered the instant both flags are true
func (o *Order) ConfirmDelivery(caller kernel.UUID) error {
	if o.courierID == nil || !caller.IsEqual(*o.courierID) {
		return errs.NewForbiddenError("confirm delivery", "caller is not the assigned courier")
	}
	if err := o.status.ValidateConfirm("confirm delivery"); err != nil {
		return err
	}

	o.driverConfirmed = true
	o.settleDelivered()
	return nil
}

// ConfirmReceipt records the owning customer's confirmation.
//
// Business rules:
//   - Only the owning customer may confirm (ForbiddenError otherwise)
//   - The order must have been claimed first (InvalidTransitionError for
//     Pending or Cancelled orders)
//   - Confirming twice is idempotent
//   - The order becomes Delivered the instant both flags are true
func (o *Order) ConfirmReceipt(caller kernel.UUID) error {
	if !caller.IsEqual(o.customerID) {
		return errs.NewForbiddenError("confirm receipt", "caller is not the owning customer")
	}
	if err := o.status.ValidateConfirm("confirm receipt"); err != nil {
		return err
	}

	o.customerConfirmed = true
	o.settleDelivered()
	return nil
}

// settleDelivered flips the status to Delivered once both parties confirmed.
// Safe to call repeatedly.
func (o *Order) settleDelivered() {
	if o.driverConfirmed && o.customerConfirmed {
		o.status = Delivered
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	total := kernel.Money{}
	owned := make([]Item, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		owned[i] = item
		total = total.Add(item.LineTotal())
	}

	o.items = owned
	o.totalPrice = total
	return nil
}
