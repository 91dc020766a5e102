//go:build unit

package recarga_test

import (
	"testing"
	"time"

	"extinguard/internal/domain/recarga"
	"extinguard/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RecargaBuilder)
	errIs  error
}

func TestNewRecarga(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewRecargaBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Empty(t, actual.ID)
		assert.Equal(t, recarga.StatusPendiente, actual.Status)
		assert.Equal(t, b.Now, actual.CreatedAt)
		assert.Equal(t, b.Now, actual.UpdatedAt)

		require.Len(t, actual.Timeline, 1)
		assert.Equal(t, recarga.StatusPendiente, actual.Timeline[0].Status)
		assert.Equal(t, b.UserEmail, actual.Timeline[0].By)
		assert.Equal(t, b.Now, actual.Timeline[0].TS)
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing user email",
				mutate: func(b *builder.RecargaBuilder) { b.UserEmail = "  " },
				errIs:  recarga.ErrMissingUserEmail,
			},
			{
				name:   "unknown extinguisher type",
				mutate: func(b *builder.RecargaBuilder) { b.Tipo = "FOAM" },
				errIs:  recarga.ErrInvalidTipo,
			},
			{
				name:   "empty fecha",
				mutate: func(b *builder.RecargaBuilder) { b.Fecha = "" },
				errIs:  recarga.ErrMissingField,
			},
			{
				name:   "whitespace franja",
				mutate: func(b *builder.RecargaBuilder) { b.Franja = "   " },
				errIs:  recarga.ErrMissingField,
			},
			{
				name:   "empty direccion",
				mutate: func(b *builder.RecargaBuilder) { b.Direccion = "" },
				errIs:  recarga.ErrMissingField,
			},
			{
				name:   "empty telefono",
				mutate: func(b *builder.RecargaBuilder) { b.Telefono = "" },
				errIs:  recarga.ErrMissingField,
			},
			{
				name:   "observaciones may be empty",
				mutate: func(b *builder.RecargaBuilder) { b.Observaciones = "" },
			},
			{
				name:   "nil user id is allowed",
				mutate: func(b *builder.RecargaBuilder) { b.UserID = nil },
			},
			{
				name:   "CO2 type",
				mutate: func(b *builder.RecargaBuilder) { b.Tipo = "CO2" },
			},
			{
				name:   "class K type",
				mutate: func(b *builder.RecargaBuilder) { b.Tipo = "K" },
			},
		})
	})

	t.Run("owner email is trimmed", func(t *testing.T) {
		actual, err := builder.NewRecargaBuilder().
			With(func(b *builder.RecargaBuilder) { b.UserEmail = "  cliente@example.com  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "cliente@example.com", actual.UserEmail)
	})
}

func TestApplyStatus(t *testing.T) {
	newRecarga := func(t *testing.T) *recarga.Recarga {
		t.Helper()
		rec, err := builder.NewRecargaBuilder().BuildDomain()
		require.NoError(t, err)
		return rec
	}

	t.Run("forward transition appends a timeline entry", func(t *testing.T) {
		rec := newRecarga(t)
		later := rec.CreatedAt.Add(2 * time.Hour)

		err := rec.ApplyStatus(recarga.StatusRecogido, "admin", later)
		require.NoError(t, err)

		assert.Equal(t, recarga.StatusRecogido, rec.Status)
		assert.Equal(t, later, rec.UpdatedAt)
		require.Len(t, rec.Timeline, 2)
		assert.Equal(t, recarga.StatusRecogido, rec.Timeline[1].Status)
		assert.Equal(t, "admin", rec.Timeline[1].By)
	})

	t.Run("skipping intermediate stages is allowed", func(t *testing.T) {
		rec := newRecarga(t)

		err := rec.ApplyStatus(recarga.StatusListo, "admin", rec.CreatedAt.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, recarga.StatusListo, rec.Status)
	})

	t.Run("self transition is allowed and recorded", func(t *testing.T) {
		rec := newRecarga(t)

		err := rec.ApplyStatus(recarga.StatusPendiente, "admin", rec.CreatedAt.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, recarga.StatusPendiente, rec.Status)
		assert.Len(t, rec.Timeline, 2)
	})

	t.Run("backward transition leaves the entity untouched", func(t *testing.T) {
		rec := newRecarga(t)
		require.NoError(t, rec.ApplyStatus(recarga.StatusEnRecarga, "admin", rec.CreatedAt.Add(time.Hour)))

		before := *rec
		err := rec.ApplyStatus(recarga.StatusPendiente, "admin", rec.CreatedAt.Add(2*time.Hour))
		require.ErrorIs(t, err, recarga.ErrBackwardTransition)

		assert.Equal(t, before.Status, rec.Status)
		assert.Equal(t, before.UpdatedAt, rec.UpdatedAt)
		assert.Len(t, rec.Timeline, len(before.Timeline))
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		rec := newRecarga(t)

		err := rec.ApplyStatus(recarga.Status("CANCELADO"), "admin", rec.CreatedAt.Add(time.Hour))
		require.ErrorIs(t, err, recarga.ErrInvalidStatus)
		assert.Len(t, rec.Timeline, 1)
	})

	t.Run("empty actor is rejected", func(t *testing.T) {
		rec := newRecarga(t)

		err := rec.ApplyStatus(recarga.StatusRecogido, "", rec.CreatedAt.Add(time.Hour))
		require.ErrorIs(t, err, recarga.ErrMissingActor)
	})

	t.Run("full lifecycle reaches finalizado", func(t *testing.T) {
		rec := newRecarga(t)
		ts := rec.CreatedAt

		for _, status := range recarga.StatusOrder[1:] {
			ts = ts.Add(time.Hour)
			require.NoError(t, rec.ApplyStatus(status, "admin", ts))
		}

		assert.True(t, rec.IsFinalized())
		assert.Len(t, rec.Timeline, len(recarga.StatusOrder))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRecargaBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
