//go:build unit

package recargastore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	bolt "github.com/boltdb/bolt"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extinguard/internal/domain/recarga"
	"extinguard/internal/infra"
	"extinguard/internal/infra/recargastore"
	"extinguard/internal/pkg/clock"
	"extinguard/tests/common/builder"
)

func newStore(t *testing.T, clk clock.Clock) *recargastore.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recargas.db")
	store, err := recargastore.New(path, clk, "admin")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreate(t *testing.T) {
	t.Run("assigns a millisecond id and persists the initial state", func(t *testing.T) {
		now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		store := newStore(t, clock.NewMockClock(now))

		id, err := store.Create(context.Background(), builder.NewRecargaBuilder().BuildInput())
		require.NoError(t, err)
		assert.Equal(t, "SR-1788256800000", id)

		rec, err := store.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, rec.ID)
		assert.Equal(t, recarga.StatusPendiente, rec.Status)
		require.Len(t, rec.Timeline, 1)
		assert.Equal(t, "cliente@example.com", rec.Timeline[0].By)
	})

	t.Run("same millisecond yields distinct consecutive ids", func(t *testing.T) {
		now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		store := newStore(t, clock.NewMockClock(now))

		in := builder.NewRecargaBuilder().BuildInput()
		id1, err := store.Create(context.Background(), in)
		require.NoError(t, err)
		id2, err := store.Create(context.Background(), in)
		require.NoError(t, err)
		id3, err := store.Create(context.Background(), in)
		require.NoError(t, err)

		assert.Equal(t, "SR-1788256800000", id1)
		assert.Equal(t, "SR-1788256800001", id2)
		assert.Equal(t, "SR-1788256800002", id3)
	})

	t.Run("invalid input is rejected before touching the database", func(t *testing.T) {
		store := newStore(t, clock.NewMockClock(time.Now()))

		in := builder.NewRecargaBuilder().
			With(func(b *builder.RecargaBuilder) { b.Tipo = "FOAM" }).
			BuildInput()
		_, err := store.Create(context.Background(), in)
		require.ErrorIs(t, err, recarga.ErrInvalidTipo)

		all, err := store.ListAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestListAll(t *testing.T) {
	t.Run("returns requests in insertion order", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
		store := newStore(t, clk)

		var ids []string
		for i := 0; i < 3; i++ {
			id, err := store.Create(context.Background(), builder.NewRecargaBuilder().BuildInput())
			require.NoError(t, err)
			ids = append(ids, id)
			clk.Add(time.Minute)
		}

		all, err := store.ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 3)
		for i, rec := range all {
			assert.Equal(t, ids[i], rec.ID)
		}
	})

	t.Run("empty store lists as empty, not nil", func(t *testing.T) {
		store := newStore(t, clock.NewMockClock(time.Now()))

		all, err := store.ListAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})
}

func TestListByOwner(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	store := newStore(t, clk)

	mkInput := func(email string) recarga.NewRecargaInput {
		return builder.NewRecargaBuilder().
			With(func(b *builder.RecargaBuilder) { b.UserEmail = email }).
			BuildInput()
	}

	_, err := store.Create(context.Background(), mkInput("ana@example.com"))
	require.NoError(t, err)
	clk.Add(time.Second)
	_, err = store.Create(context.Background(), mkInput("luis@example.com"))
	require.NoError(t, err)
	clk.Add(time.Second)
	anaSecond, err := store.Create(context.Background(), mkInput("ana@example.com"))
	require.NoError(t, err)

	t.Run("filters on exact owner email", func(t *testing.T) {
		items, err := store.ListByOwner(context.Background(), "ana@example.com")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, anaSecond, items[1].ID)
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		items, err := store.ListByOwner(context.Background(), "ANA@example.com")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("unknown owner gets an empty list", func(t *testing.T) {
		items, err := store.ListByOwner(context.Background(), "nadie@example.com")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestGetByID(t *testing.T) {
	store := newStore(t, clock.NewMockClock(time.Now()))

	_, err := store.GetByID(context.Background(), "SR-1")
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("advances status and appends to the timeline", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
		store := newStore(t, clk)

		id, err := store.Create(ctx, builder.NewRecargaBuilder().BuildInput())
		require.NoError(t, err)

		clk.Add(time.Hour)
		rec, err := store.UpdateStatus(ctx, id, recarga.StatusRecogido, "tecnico@example.com")
		require.NoError(t, err)

		assert.Equal(t, recarga.StatusRecogido, rec.Status)
		require.Len(t, rec.Timeline, 2)
		assert.Equal(t, "tecnico@example.com", rec.Timeline[1].By)
		assert.Equal(t, clk.Now(), rec.UpdatedAt)

		stored, err := store.GetByID(ctx, id)
		require.NoError(t, err)
		if diff := cmp.Diff(rec, stored); diff != "" {
			t.Errorf("stored record differs from returned one (-want +got):\n%s", diff)
		}
	})

	t.Run("empty actor falls back to the configured default", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
		store := newStore(t, clk)

		id, err := store.Create(ctx, builder.NewRecargaBuilder().BuildInput())
		require.NoError(t, err)

		rec, err := store.UpdateStatus(ctx, id, recarga.StatusRecogido, "")
		require.NoError(t, err)
		assert.Equal(t, "admin", rec.Timeline[1].By)
	})

	t.Run("backward transition leaves the stored record unchanged", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
		store := newStore(t, clk)

		id, err := store.Create(ctx, builder.NewRecargaBuilder().BuildInput())
		require.NoError(t, err)
		_, err = store.UpdateStatus(ctx, id, recarga.StatusListo, "admin")
		require.NoError(t, err)

		before, err := store.GetByID(ctx, id)
		require.NoError(t, err)

		clk.Add(time.Hour)
		_, err = store.UpdateStatus(ctx, id, recarga.StatusRecogido, "admin")
		require.ErrorIs(t, err, recarga.ErrBackwardTransition)

		after, err := store.GetByID(ctx, id)
		require.NoError(t, err)
		if diff := cmp.Diff(before, after); diff != "" {
			t.Errorf("record mutated by rejected transition (-want +got):\n%s", diff)
		}
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		store := newStore(t, clock.NewMockClock(time.Now()))

		_, err := store.UpdateStatus(ctx, "SR-1", recarga.StatusRecogido, "admin")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := newStore(t, clock.NewMockClock(time.Now()))

	id, err := store.Create(ctx, builder.NewRecargaBuilder().BuildInput())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, id))

	_, err = store.GetByID(ctx, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	err = store.Delete(ctx, id)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestCorruptRecords(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "recargas.db")

	store, err := recargastore.New(path, clock.NewMockClock(now), "admin")
	require.NoError(t, err)

	goodID, err := store.Create(ctx, builder.NewRecargaBuilder().BuildInput())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Plant a record that no longer parses next to the good one.
	db, err := bolt.Open(path, 0600, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("recargas")).Put([]byte("SR-1"), []byte("{not json"))
	}))
	require.NoError(t, db.Close())

	store, err = recargastore.New(path, clock.NewMockClock(now), "admin")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	t.Run("listing skips the corrupt record", func(t *testing.T) {
		all, err := store.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, goodID, all[0].ID)
	})

	t.Run("lookup reports the record as corrupt", func(t *testing.T) {
		_, err := store.GetByID(ctx, "SR-1")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindCorruptRecord))
	})

	t.Run("status update discards the corrupt record", func(t *testing.T) {
		_, err := store.UpdateStatus(ctx, "SR-1", recarga.StatusRecogido, "admin")
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		_, err = store.GetByID(ctx, "SR-1")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
