package queries

import (
	"context"

	"fooddispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierDeliveriesQueryHandler reads a courier's worklist from the
// database. In-flight deliveries come before finished ones, each group
// newest first.
type GetCourierDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierDeliveriesQueryHandler creates a handler for courier
// worklist queries.
func NewGetCourierDeliveriesQueryHandler(db *gorm.DB) GetCourierDeliveriesQueryHandler {
	return GetCourierDeliveriesQueryHandler{db: db}
}

// Handle executes the query and returns the courier's deliveries.
func (h GetCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetCourierDeliveriesQuery,
) ([]GetCourierDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetCourierDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			total_price_cents,
			driver_confirmed,
			customer_confirmed,
			created_at
		FROM orders
		WHERE courier_id = ?
		ORDER BY status = 'Delivering' DESC, created_at DESC, id
	`, query.CourierID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var delivery GetCourierDeliveriesQueryResponse
		var id, customerID uuid.UUID

		err = rows.Scan(
			&id,
			&customerID,
			&delivery.Status,
			&delivery.TotalPriceCents,
			&delivery.DriverConfirmed,
			&delivery.CustomerConfirmed,
			&delivery.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		delivery.ID = orderID

		customer, cErr := kernel.UUIDFromBytes(customerID[:])
		if cErr != nil {
			return nil, cErr
		}
		delivery.CustomerID = customer

		deliveries = append(deliveries, delivery)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
