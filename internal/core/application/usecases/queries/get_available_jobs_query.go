// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning plain response structs shaped for their consumers.
package queries

import (
	"errors"
	"time"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/pkg/guard"
)

var (
	ErrGetAvailableJobsQueryIsNotConstructed = errors.New(
		"GetAvailableJobsQuery must be created via NewGetAvailableJobsQuery constructor",
	)
)

// GetAvailableJobsQuery retrieves the job pool: every order a courier could
// claim right now. The result is a snapshot; a claim may race it, and the
// authoritative check happens at claim time, not here.
type GetAvailableJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableJobsQuery creates a query for the job pool. It takes no
// parameters; the pool is the same for every courier.
func NewGetAvailableJobsQuery() GetAvailableJobsQuery {
	return GetAvailableJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableJobsQueryIsNotConstructed)
}

// GetAvailableJobsQueryResponse is one claimable job as shown to couriers.
// The customer's identity stays hidden until the job is claimed.
type GetAvailableJobsQueryResponse struct {
	ID              kernel.UUID
	TotalPriceCents int64
	ItemCount       int
	CreatedAt       time.Time
}
