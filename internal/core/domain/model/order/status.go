package order

import (
	"fmt"

	"fooddispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──claim──> Delivering ──second confirmation──> Delivered
//	   │
//	   └──cancel──> Cancelled
//
// Delivered and Cancelled are terminal. The transition to Delivered is not an
// event of its own: it fires inside the confirmation handling the moment the
// second of the two confirmation flags becomes true.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status. Pending orders with no courier form the
	// job pool visible to couriers.
	Pending

	// Delivering indicates exactly one courier claimed the order and the
	// delivery is in flight. The courier reference is set together with this
	// status, never separately.
	Delivering

	// Delivered indicates both parties confirmed the delivery. Terminal.
	Delivered

	// Cancelled indicates the owning customer withdrew the order before any
	// courier claimed it. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Delivering: "Delivering",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Delivering: "Delivering",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// ParseStatus converts the persisted string form back into a Status.
// Returns an error for anything outside the four reachable states.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the four reachable states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. This is also the
// persisted representation. Implements fmt.Stringer and is safe on any value,
// including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//
// Any other starting status fails with InvalidTransitionError: an order that
// a courier already claimed, or that reached a terminal state, cannot be
// cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("cancel", s.String())
	}

	return Cancelled, nil
}

// Claim transitions the status to Delivering.
//
// Valid transitions:
//   - Pending -> Delivering
//
// The caller must set the courier reference in the same operation; status and
// courier assignment change together or not at all.
func (s Status) Claim() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError("claim", s.String())
	}

	return Delivering, nil
}

// ValidateConfirm checks that a confirmation may be recorded from the current
// status. Confirmations are only meaningful once a courier is on the job:
// Delivering, or Delivered for an idempotent re-confirmation.
func (s Status) ValidateConfirm(event string) error {
	if s != Delivering && s != Delivered {
		return errs.NewInvalidTransitionError(event, s.String())
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment: a courier is set if and only if the order passed
// through a claim, i.e. status is Delivering or Delivered.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Delivering && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()))
	}

	if !courier && (s == Delivering || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()))
	}

	return nil
}
