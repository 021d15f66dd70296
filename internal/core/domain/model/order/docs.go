// Package order provides domain entities and business logic for the order
// lifecycle. It implements the Order aggregate root with price snapshotting,
// the claim assignment rules, and the two-party delivery confirmation
// handshake.
//
// The package includes:
//   - Order: the aggregate root owning its items, total, and lifecycle state
//   - Item: one order line with a price frozen at creation time
//   - Status: a state machine enforcing the legal lifecycle transitions
//
// Key business rules:
//   - An order is created Pending with at least one item; every line price is
//     copied from the catalog at creation and never changes afterwards
//   - The total always equals the sum of quantity x price-at-time per line
//   - Pending -> Delivering happens through the claim, which also sets the
//     courier; Pending -> Cancelled is available only to the owning customer
//   - Delivered is reached the instant both the assigned courier and the
//     owning customer have confirmed, in either order; re-confirmation by the
//     same party is idempotent
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
