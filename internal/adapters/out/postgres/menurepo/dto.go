// Package menurepo provides read access to the menu catalog. The dispatch
// core never writes menu rows; they are owned by the catalog side and only
// resolved here when an order snapshots its prices.
package menurepo

import (
	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents one purchasable menu row.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string    `gorm:"type:varchar(255)"`
	PriceCents   int64
}

// TableName specifies the database table name for menu rows.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func toDomain(dto MenuItemDTO) (menu.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return menu.Item{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return menu.Item{}, err
	}

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return menu.Item{}, err
	}

	return menu.NewItem(id, restaurantID, dto.Name, price)
}
