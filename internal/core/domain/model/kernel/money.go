package kernel

import (
	"fmt"

	"fooddispatch/internal/pkg/errs"
)

// Money is a value object representing a non-negative monetary amount in
// cents. Storing integer cents keeps price arithmetic exact: a menu item at
// 5.99 is 599 cents, and 2 x 599 + 299 is precisely 1497.
//
// The zero value is a valid amount of 0.00. Money is immutable; arithmetic
// methods return new values.
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an amount in cents.
// Returns an error for negative amounts.
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// MustMoneyFromCents is NewMoneyFromCents that panics on invalid input.
// Intended for test fixtures and constants.
func MustMoneyFromCents(cents int64) Money {
	m, err := NewMoneyFromCents(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyQty returns the amount multiplied by a line quantity.
func (m Money) MultiplyQty(qty int) Money {
	return Money{cents: m.cents * int64(qty)}
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "14.97".
// Implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
