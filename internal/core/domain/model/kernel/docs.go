// Package kernel provides core domain primitives used throughout the model.
// It implements fundamental building blocks following Domain-Driven Design
// principles.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: an exact-cents monetary amount used for prices and totals
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
