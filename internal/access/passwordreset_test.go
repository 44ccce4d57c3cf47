package access

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/server/data"
)

func TestPasswordResetRequest(t *testing.T) {
	db := setupDB(t)
	createTestUser(t, db, "maria@example.com")

	token, user, err := PasswordResetRequest(db, "maria@example.com")
	assert.NilError(t, err)
	assert.Equal(t, len(token), 64)
	assert.Equal(t, user.Email, "maria@example.com")

	stored, err := data.GetUser(db, data.ByEmail("maria@example.com"))
	assert.NilError(t, err)
	assert.Equal(t, *stored.ResetToken, token)
	assert.Assert(t, stored.ResetTokenExpiry.After(time.Now().Add(59*time.Minute)))
	assert.Assert(t, stored.ResetTokenExpiry.Before(time.Now().Add(61*time.Minute)))

	t.Run("second request replaces the token", func(t *testing.T) {
		token2, _, err := PasswordResetRequest(db, "maria@example.com")
		assert.NilError(t, err)
		assert.Assert(t, token2 != token)

		_, err = ValidateResetToken(db, token)
		assert.ErrorIs(t, err, internal.ErrInvalidToken)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := PasswordResetRequest(db, "ninguem@example.com")
		assert.ErrorIs(t, err, internal.ErrNotFound)
	})
}

func TestValidateResetToken(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db, "maria@example.com")

	token, _, err := PasswordResetRequest(db, "maria@example.com")
	assert.NilError(t, err)

	t.Run("valid token", func(t *testing.T) {
		found, err := ValidateResetToken(db, token)
		assert.NilError(t, err)
		assert.Equal(t, found.ID, user.ID)
	})

	t.Run("does not consume the token", func(t *testing.T) {
		_, err := ValidateResetToken(db, token)
		assert.NilError(t, err)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := ValidateResetToken(db, "deadbeef")
		assert.ErrorIs(t, err, internal.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := time.Now().Add(-time.Second)
		err := db.Model(user).Update("reset_token_expiry", expired).Error
		assert.NilError(t, err)

		_, err = ValidateResetToken(db, token)
		assert.ErrorIs(t, err, internal.ErrExpiredToken)
	})
}

func TestResetPassword(t *testing.T) {
	db := setupDB(t)
	createTestUser(t, db, "maria@example.com")

	token, _, err := PasswordResetRequest(db, "maria@example.com")
	assert.NilError(t, err)

	err = ResetPassword(db, token, "novasenha")
	assert.NilError(t, err)

	t.Run("new password works", func(t *testing.T) {
		_, err := Authenticate(db, "maria@example.com", "novasenha")
		assert.NilError(t, err)
	})

	t.Run("old password rejected", func(t *testing.T) {
		_, err := Authenticate(db, "maria@example.com", "senha123")
		assert.ErrorIs(t, err, internal.ErrUnauthorized)
	})

	t.Run("token can not be replayed", func(t *testing.T) {
		err := ResetPassword(db, token, "maisoutra")
		assert.ErrorIs(t, err, internal.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, user, err := PasswordResetRequest(db, "maria@example.com")
		assert.NilError(t, err)

		expired := time.Now().Add(-time.Second)
		assert.NilError(t, db.Model(user).Update("reset_token_expiry", expired).Error)

		err = ResetPassword(db, token, "naoimporta")
		assert.ErrorIs(t, err, internal.ErrExpiredToken)
	})
}
