// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Indexed by status and courier so the job pool query and
// per-courier worklists stay cheap.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;index"`
	CourierID         *uuid.UUID `gorm:"type:uuid;index"`
	Status            string     `gorm:"type:varchar(16);index"`
	TotalPriceCents   int64
	DriverConfirmed   bool
	CustomerConfirmed bool
	CreatedAt         time.Time
	Items             []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order rows.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. The price is the snapshot taken at
// order creation, not a reference to the live menu price.
type ItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID       uuid.UUID `gorm:"type:uuid"`
	Quantity         int
	PriceAtTimeCents int64
}

// TableName specifies the database table name for order line rows.
func (ItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ID:               item.ID().Bytes(),
			OrderID:          aggregate.ID().Bytes(),
			MenuItemID:       item.MenuItemID().Bytes(),
			Quantity:         item.Quantity(),
			PriceAtTimeCents: item.PriceAtTime().Cents(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		CourierID:         courierID,
		Status:            aggregate.Status().String(),
		TotalPriceCents:   aggregate.TotalPrice().Cents(),
		DriverConfirmed:   aggregate.DriverConfirmed(),
		CustomerConfirmed: aggregate.CustomerConfirmed(),
		CreatedAt:         aggregate.CreatedAt(),
		Items:             items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, courierID, items, status,
		dto.CreatedAt, dto.DriverConfirmed, dto.CustomerConfirmed)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceAtTimeCents)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(id, menuItemID, dto.Quantity, price)
}
