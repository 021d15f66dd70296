package http

import "time"

// DTOs for the HTTP surface. Kept separate from the domain model; the wire
// shape changes on its own schedule.

// NewOrderRequest is the body of POST /api/v1/orders.
type NewOrderRequest struct {
	Items []NewOrderItemRequest `json:"items"`
}

// NewOrderItemRequest is one requested line of a new order.
type NewOrderItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// OrderResponse is the full order representation returned by mutations and
// the customer history listing.
type OrderResponse struct {
	ID                string              `json:"id"`
	CustomerID        string              `json:"customer_id"`
	CourierID         *string             `json:"courier_id,omitempty"`
	Status            string              `json:"status"`
	TotalPriceCents   int64               `json:"total_price_cents"`
	DriverConfirmed   bool                `json:"driver_confirmed"`
	CustomerConfirmed bool                `json:"customer_confirmed"`
	CreatedAt         time.Time           `json:"created_at"`
	Items             []OrderItemResponse `json:"items,omitempty"`
}

// OrderItemResponse is one priced line of an order.
type OrderItemResponse struct {
	ID               string `json:"id"`
	MenuItemID       string `json:"menu_item_id"`
	Quantity         int    `json:"quantity"`
	PriceAtTimeCents int64  `json:"price_at_time_cents"`
}

// JobResponse is one claimable job as listed to couriers.
type JobResponse struct {
	ID              string    `json:"id"`
	TotalPriceCents int64     `json:"total_price_cents"`
	ItemCount       int       `json:"item_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// DeliveryResponse is one entry of a courier's worklist.
type DeliveryResponse struct {
	ID                string    `json:"id"`
	CustomerID        string    `json:"customer_id"`
	Status            string    `json:"status"`
	TotalPriceCents   int64     `json:"total_price_cents"`
	DriverConfirmed   bool      `json:"driver_confirmed"`
	CustomerConfirmed bool      `json:"customer_confirmed"`
	CreatedAt         time.Time `json:"created_at"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Issues  []string `json:"issues,omitempty"`
}
