// Package menu holds the read-only view of the restaurant catalog the
// dispatch core consumes. Menu items are owned by the catalog collaborator;
// the core only reads identity, current price, and restaurant association.
package menu

import (
	"errors"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/pkg/errs"
)

// Item is an immutable snapshot of one catalog entry at resolution time.
// The order ledger copies Price into the order line as the price snapshot;
// later catalog changes never reach back into created orders.
type Item struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        kernel.Money
}

// NewItem creates a catalog item reference. All identifiers must be valid;
// the name must not be empty.
func NewItem(id, restaurantID kernel.UUID, name string, price kernel.Money) (Item, error) {
	if err := errors.Join(id.Validate(), restaurantID.Validate()); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("menu item name")
	}

	return Item{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		price:        price,
	}, nil
}

// ID returns the catalog identifier of the item.
func (i Item) ID() kernel.UUID {
	return i.id
}

// RestaurantID returns the identifier of the owning restaurant.
func (i Item) RestaurantID() kernel.UUID {
	return i.restaurantID
}

// Name returns the display name of the item.
func (i Item) Name() string {
	return i.name
}

// Price returns the current catalog price of the item.
func (i Item) Price() kernel.Money {
	return i.price
}
