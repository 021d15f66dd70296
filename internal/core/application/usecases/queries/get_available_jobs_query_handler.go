package queries

import (
	"context"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableJobsQueryHandler reads the job pool straight from the
// database: Pending orders with no courier, oldest first so long-waiting
// orders surface at the top of the list.
type GetAvailableJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableJobsQueryHandler creates a handler for job pool queries.
func NewGetAvailableJobsQueryHandler(db *gorm.DB) GetAvailableJobsQueryHandler {
	return GetAvailableJobsQueryHandler{db: db}
}

// Handle executes the query and returns every claimable job.
func (h GetAvailableJobsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableJobsQuery,
) ([]GetAvailableJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetAvailableJobsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.total_price_cents,
			COUNT(i.id),
			o.created_at
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status = ? AND o.courier_id IS NULL
		GROUP BY o.id, o.total_price_cents, o.created_at
		ORDER BY o.created_at, o.id
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var job GetAvailableJobsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&job.TotalPriceCents,
			&job.ItemCount,
			&job.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		job.ID = jobID
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
