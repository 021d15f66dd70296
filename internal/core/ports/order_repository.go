package ports

import (
	"context"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its items as a
	// single atomic unit. Either every row exists with a consistent total or
	// none do.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate (status, courier,
	// confirmation flags). Items are write-once and never updated.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order while taking a row lock for the rest of
	// the current transaction. State-changing operations use it so that the
	// read and the subsequent write form one atomic unit.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingUnassigned retrieves the job pool: orders in Pending
	// status with no courier. No ordering is guaranteed, and the result is a
	// snapshot that may be stale relative to concurrent claims.
	GetAllPendingUnassigned(ctx context.Context) ([]*order.Order, error)

	// Claim atomically assigns the courier to the order: in a single
	// conditional write it verifies the order is still Pending and
	// unassigned, sets the courier, and moves the status to Delivering.
	// Among concurrent claimants for the same order exactly one succeeds;
	// the rest receive ErrJobUnavailable. ErrObjectNotFound reports an order
	// that does not exist at all.
	Claim(ctx context.Context, orderID, courierID kernel.UUID) error
}
