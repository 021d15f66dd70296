package order_test

import (
	"testing"

	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/menu"
	"fooddispatch/internal/core/domain/model/order"
	"fooddispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMenuItem(t *testing.T, priceCents int64) menu.Item {
	t.Helper()
	item, err := menu.NewItem(kernel.NewUUID(), kernel.NewUUID(), "Margherita", kernel.MustMoneyFromCents(priceCents))
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("valid_item", func(t *testing.T) {
		id := kernel.NewUUID()
		menuItemID := kernel.NewUUID()

		item, err := order.NewItem(id, menuItemID, 2, kernel.MustMoneyFromCents(599))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.MenuItemID().IsEqual(menuItemID))
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, int64(599), item.PriceAtTime().Cents())
	})

	t.Run("zero_quantity_rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 0, kernel.MustMoneyFromCents(599))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_quantity_rejected", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), -3, kernel.MustMoneyFromCents(599))

		require.Error(t, err)
	})

	t.Run("invalid_ids_rejected", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewItem(zero, kernel.NewUUID(), 1, kernel.MustMoneyFromCents(100))
		require.Error(t, err)

		_, err = order.NewItem(kernel.NewUUID(), zero, 1, kernel.MustMoneyFromCents(100))
		require.Error(t, err)
	})
}

func TestNewItemFromMenu(t *testing.T) {
	menuItem := mustMenuItem(t, 299)

	item, err := order.NewItemFromMenu(menuItem, 3)

	require.NoError(t, err)
	assert.True(t, item.MenuItemID().IsEqual(menuItem.ID()))
	assert.Equal(t, 3, item.Quantity())
	assert.Equal(t, int64(299), item.PriceAtTime().Cents(), "price snapshot copied from catalog")
}

func TestItem_LineTotal(t *testing.T) {
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 2, kernel.MustMoneyFromCents(599))
	require.NoError(t, err)

	assert.Equal(t, int64(1198), item.LineTotal().Cents())
}

func TestItem_Validate_ZeroValue(t *testing.T) {
	var item order.Item

	require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
}
