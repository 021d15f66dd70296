package order

import (
	"errors"
	"fmt"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/menu"
	"fooddispatch/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// one of the constructor functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or NewItemFromMenu")

// Item is one order line. It belongs to exactly one Order and is write-once:
// created together with the order and never mutated afterwards.
//
// priceAtTime is a frozen copy of the menu item's price at the moment the
// order was created; later catalog price changes do not affect it.
type Item struct {
	id          kernel.UUID
	menuItemID  kernel.UUID
	quantity    int
	priceAtTime kernel.Money

	isConstructed bool
}

// NewItem creates an order line with an explicit price snapshot.
// Quantity must be positive; both identifiers must be valid.
func NewItem(id, menuItemID kernel.UUID, quantity int, priceAtTime kernel.Money) (Item, error) {
	item := Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.priceAtTime = priceAtTime
	return item, nil
}

// NewItemFromMenu creates an order line from a resolved catalog item, taking
// the price snapshot from the item's current catalog price.
func NewItemFromMenu(menuItem menu.Item, quantity int) (Item, error) {
	return NewItem(kernel.NewUUID(), menuItem.ID(), quantity, menuItem.Price())
}

// Validate ensures the Item was properly constructed.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced catalog item identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity. Always positive.
func (i Item) Quantity() int {
	return i.quantity
}

// PriceAtTime returns the per-unit price frozen at order creation.
func (i Item) PriceAtTime() kernel.Money {
	return i.priceAtTime
}

// LineTotal returns quantity x price-at-time for this line.
func (i Item) LineTotal() kernel.Money {
	return i.priceAtTime.MultiplyQty(i.quantity)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
