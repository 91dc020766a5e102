//go:build unit

package user_test

import (
	"testing"

	"extinguard/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("valid addresses", func(t *testing.T) {
		for _, v := range []string{"a@b.co", "cliente@example.com", "first.last+tag@sub.example.org"} {
			email, err := user.NewEmail(v)
			require.NoError(t, err, v)
			assert.Equal(t, v, email.Value())
		}
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		email, err := user.NewEmail("  cliente@example.com ")
		require.NoError(t, err)
		assert.Equal(t, "cliente@example.com", email.Value())
	})

	t.Run("invalid addresses", func(t *testing.T) {
		for _, v := range []string{"", "no-at-sign", "user@", "@example.com", "user@example"} {
			_, err := user.NewEmail(v)
			require.ErrorIs(t, err, user.ErrInvalidEmail, v)
		}
	})
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("12345")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	pw, err := user.NewPassword("123456")
	require.NoError(t, err)
	assert.Equal(t, "123456", pw.Value())
}

func TestNewRole(t *testing.T) {
	role, err := user.NewRole("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, role)

	_, err = user.NewRole("admin")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewCredentials(t *testing.T) {
	creds, err := user.NewCredentials("cliente@example.com", "secreto1")
	require.NoError(t, err)
	assert.Equal(t, "cliente@example.com", creds.Email().Value())
	assert.Equal(t, "secreto1", creds.Password().Value())

	_, err = user.NewCredentials("bad", "secreto1")
	require.ErrorIs(t, err, user.ErrInvalidEmail)

	_, err = user.NewCredentials("cliente@example.com", "123")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)
}
