package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/psds-microservice/shop-api/internal/errors"
)

func newCartFixture() (*CartServiceImpl, *ItemServiceImpl) {
	logger := zap.NewNop()
	items := NewItemRepository()
	carts := NewCartRepository()
	return NewCartService(logger, carts, items), NewItemService(logger, items)
}

func iptr(v int64) *int64 { return &v }

func TestCartServiceCreateAndGetEmpty(t *testing.T) {
	carts, _ := newCartFixture()
	ctx := context.Background()

	id, err := carts.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	cart, err := carts.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Price)
	assert.Zero(t, cart.Quantity)
}

func TestCartServiceGetUnknown(t *testing.T) {
	carts, _ := newCartFixture()
	_, err := carts.Get(context.Background(), 42)
	assert.ErrorIs(t, err, errors.ErrCartNotFound)
}

func TestCartServiceAddItemAccumulates(t *testing.T) {
	carts, items := newCartFixture()
	ctx := context.Background()

	item, err := items.Create(ctx, "milk", 100)
	require.NoError(t, err)
	cartID, err := carts.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, carts.AddItem(ctx, cartID, item.ID))
	require.NoError(t, carts.AddItem(ctx, cartID, item.ID))

	cart, err := carts.Get(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].Quantity)
	assert.Equal(t, "milk", cart.Items[0].Name)
	assert.True(t, cart.Items[0].Available)
	assert.Equal(t, 200.0, cart.Price)
	assert.Equal(t, int64(2), cart.Quantity)
}

func TestCartServiceAddItemUnknownTargets(t *testing.T) {
	carts, items := newCartFixture()
	ctx := context.Background()

	item, err := items.Create(ctx, "milk", 100)
	require.NoError(t, err)
	cartID, err := carts.Create(ctx)
	require.NoError(t, err)

	assert.ErrorIs(t, carts.AddItem(ctx, 999, item.ID), errors.ErrCartNotFound)
	assert.ErrorIs(t, carts.AddItem(ctx, cartID, 999), errors.ErrItemNotFound)
}

func TestCartServiceDeletedItemExcludedFromTotals(t *testing.T) {
	carts, items := newCartFixture()
	ctx := context.Background()

	milk, err := items.Create(ctx, "milk", 100)
	require.NoError(t, err)
	bread, err := items.Create(ctx, "bread", 50)
	require.NoError(t, err)

	cartID, err := carts.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, carts.AddItem(ctx, cartID, milk.ID))
	require.NoError(t, carts.AddItem(ctx, cartID, bread.ID))

	_, err = items.Delete(ctx, milk.ID)
	require.NoError(t, err)

	cart, err := carts.Get(ctx, cartID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	// Позиция остаётся, но недоступна и не входит в итоги.
	assert.False(t, cart.Items[0].Available)
	assert.True(t, cart.Items[1].Available)
	assert.Equal(t, 50.0, cart.Price)
	assert.Equal(t, int64(1), cart.Quantity)
}

func TestCartServiceListFilters(t *testing.T) {
	carts, items := newCartFixture()
	ctx := context.Background()

	milk, err := items.Create(ctx, "milk", 100)
	require.NoError(t, err)

	// Корзина 1: пустая. Корзина 2: 1 шт. Корзина 3: 3 шт.
	empty, err := carts.Create(ctx)
	require.NoError(t, err)
	one, err := carts.Create(ctx)
	require.NoError(t, err)
	require.NoError(t, carts.AddItem(ctx, one, milk.ID))
	three, err := carts.Create(ctx)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, carts.AddItem(ctx, three, milk.ID))
	}

	all, err := carts.List(ctx, CartFilter{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := carts.List(ctx, CartFilter{Limit: 10, MinPrice: fptr(50)})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	filtered, err = carts.List(ctx, CartFilter{Limit: 10, MaxQuantity: iptr(1)})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, empty, filtered[0].ID)
	assert.Equal(t, one, filtered[1].ID)

	filtered, err = carts.List(ctx, CartFilter{Limit: 10, MinQuantity: iptr(2)})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, three, filtered[0].ID)

	windowed, err := carts.List(ctx, CartFilter{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, windowed, 1)
	assert.Equal(t, one, windowed[0].ID)
}
