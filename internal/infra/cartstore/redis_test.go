//go:build unit

package cartstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extinguard/internal/domain/cart"
	"extinguard/internal/infra/cartstore"
)

func newStore(t *testing.T, ttl time.Duration) (*cartstore.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return cartstore.New(client, ttl), mr
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key means an empty cart", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)

		c, err := store.Get(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Empty(t, c.Items)
	})

	t.Run("round trips a saved cart", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)

		c := cart.New()
		c.Add(1, "Extintor ABC 10lb", 85000)
		c.Add(1, "Extintor ABC 10lb", 85000)
		require.NoError(t, store.Save(ctx, 7, c))

		loaded, err := store.Get(ctx, 7)
		require.NoError(t, err)
		require.Len(t, loaded.Items, 1)
		assert.Equal(t, 2, loaded.Items[0].Qty)
		assert.Equal(t, 170000.0, loaded.Total())
	})

	t.Run("carts are isolated per user", func(t *testing.T) {
		store, _ := newStore(t, time.Hour)

		c := cart.New()
		c.Add(1, "Extintor ABC 10lb", 85000)
		require.NoError(t, store.Save(ctx, 7, c))

		other, err := store.Get(ctx, 8)
		require.NoError(t, err)
		assert.Empty(t, other.Items)
	})

	t.Run("corrupt value is discarded and replaced by an empty cart", func(t *testing.T) {
		store, mr := newStore(t, time.Hour)
		require.NoError(t, mr.Set("fx:cart:7", "{not json"))

		c, err := store.Get(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, c.Items)
		assert.False(t, mr.Exists("fx:cart:7"))
	})
}

func TestSave(t *testing.T) {
	ctx := context.Background()

	t.Run("sets the configured TTL", func(t *testing.T) {
		store, mr := newStore(t, time.Hour)

		require.NoError(t, store.Save(ctx, 7, cart.New()))
		assert.Equal(t, time.Hour, mr.TTL("fx:cart:7"))
	})

	t.Run("cart expires after the TTL", func(t *testing.T) {
		store, mr := newStore(t, time.Minute)

		c := cart.New()
		c.Add(1, "Extintor ABC 10lb", 85000)
		require.NoError(t, store.Save(ctx, 7, c))

		mr.FastForward(2 * time.Minute)

		loaded, err := store.Get(ctx, 7)
		require.NoError(t, err)
		assert.Empty(t, loaded.Items)
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, time.Hour)

	c := cart.New()
	c.Add(1, "Extintor ABC 10lb", 85000)
	require.NoError(t, store.Save(ctx, 7, c))

	require.NoError(t, store.Clear(ctx, 7))
	assert.False(t, mr.Exists("fx:cart:7"))

	// Clearing an already empty cart is fine
	require.NoError(t, store.Clear(ctx, 7))
}
