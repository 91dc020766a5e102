//go:build unit

package cart_test

import (
	"testing"

	"extinguard/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAdd(t *testing.T) {
	t.Run("new product gets quantity one", func(t *testing.T) {
		c := cart.New()
		c.Add(1, "Extintor ABC 10lb", 85000)

		require.Len(t, c.Items, 1)
		assert.Equal(t, 1, c.Items[0].Qty)
		assert.Equal(t, "Extintor ABC 10lb", c.Items[0].Name)
	})

	t.Run("adding the same product increments quantity", func(t *testing.T) {
		c := cart.New()
		c.Add(1, "Extintor ABC 10lb", 85000)
		c.Add(1, "Extintor ABC 10lb", 85000)
		c.Add(2, "Extintor CO2 5lb", 120000)

		require.Len(t, c.Items, 2)
		assert.Equal(t, 2, c.Items[0].Qty)
		assert.Equal(t, 1, c.Items[1].Qty)
	})

	t.Run("price is snapshotted at add time", func(t *testing.T) {
		c := cart.New()
		c.Add(1, "Extintor ABC 10lb", 85000)
		c.Add(1, "Extintor ABC 10lb", 99000)

		require.Len(t, c.Items, 1)
		assert.Equal(t, 85000.0, c.Items[0].Price)
	})
}

func TestCartUpdateQty(t *testing.T) {
	c := cart.New()
	c.Add(1, "Extintor ABC 10lb", 85000)

	t.Run("sets the quantity", func(t *testing.T) {
		require.NoError(t, c.UpdateQty(1, 5))
		assert.Equal(t, 5, c.Items[0].Qty)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		require.ErrorIs(t, c.UpdateQty(1, 0), cart.ErrInvalidQuantity)
		require.ErrorIs(t, c.UpdateQty(1, -3), cart.ErrInvalidQuantity)
		assert.Equal(t, 5, c.Items[0].Qty)
	})

	t.Run("unknown product", func(t *testing.T) {
		require.ErrorIs(t, c.UpdateQty(99, 2), cart.ErrItemNotFound)
	})
}

func TestCartRemove(t *testing.T) {
	c := cart.New()
	c.Add(1, "Extintor ABC 10lb", 85000)
	c.Add(2, "Extintor CO2 5lb", 120000)

	require.NoError(t, c.Remove(1))
	require.Len(t, c.Items, 1)
	assert.Equal(t, int64(2), c.Items[0].ProductID)

	require.ErrorIs(t, c.Remove(1), cart.ErrItemNotFound)
}

func TestCartTotals(t *testing.T) {
	c := cart.New()
	assert.Equal(t, 0.0, c.Total())
	assert.Equal(t, 0, c.Count())

	c.Add(1, "Extintor ABC 10lb", 85000)
	c.Add(1, "Extintor ABC 10lb", 85000)
	c.Add(2, "Extintor CO2 5lb", 120000)

	assert.Equal(t, 290000.0, c.Total())
	assert.Equal(t, 3, c.Count())

	c.Clear()
	assert.Empty(t, c.Items)
	assert.Equal(t, 0.0, c.Total())
}
