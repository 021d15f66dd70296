package queries

import (
	"errors"
	"time"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/pkg/guard"
)

var (
	ErrGetCourierDeliveriesQueryIsNotConstructed = errors.New(
		"GetCourierDeliveriesQuery must be created via NewGetCourierDeliveriesQuery constructor",
	)
)

// GetCourierDeliveriesQuery retrieves every order assigned to one courier,
// both in-flight and already delivered.
type GetCourierDeliveriesQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierDeliveriesQuery creates a query scoped to a single courier.
func NewGetCourierDeliveriesQuery(courierID kernel.UUID) (GetCourierDeliveriesQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierDeliveriesQuery{}, err
	}

	return GetCourierDeliveriesQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierDeliveriesQueryIsNotConstructed)
}

// CourierID returns the courier whose deliveries are requested.
func (q GetCourierDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierDeliveriesQueryResponse is one delivery in the courier's
// worklist. The customer id is visible here since the courier needs it to
// hand the order over.
type GetCourierDeliveriesQueryResponse struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	Status            string
	TotalPriceCents   int64
	DriverConfirmed   bool
	CustomerConfirmed bool
	CreatedAt         time.Time
}
