package data

import (
	"errors"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/server/models"
)

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := setupDB(t)

	err := CreateUser(db, &models.User{Name: "Ana", Email: "ana@example.com"})
	assert.NilError(t, err)

	err = CreateUser(db, &models.User{Name: "Outra Ana", Email: "ana@example.com"})

	var ucErr UniqueConstraintError
	assert.Assert(t, errors.As(err, &ucErr), "expected unique constraint error, got %v", err)
}

func TestGetUser(t *testing.T) {
	db := setupDB(t)

	user := &models.User{Name: "Bruno", Email: "bruno@example.com"}
	assert.NilError(t, CreateUser(db, user))

	actual, err := GetUser(db, ByEmail("bruno@example.com"))
	assert.NilError(t, err)
	assert.Equal(t, actual.Name, "Bruno")
	assert.Equal(t, actual.ID, user.ID)

	_, err = GetUser(db, ByEmail("nobody@example.com"))
	assert.ErrorIs(t, err, internal.ErrNotFound)
}

func TestSetResetToken(t *testing.T) {
	db := setupDB(t)

	user := &models.User{Name: "Carla", Email: "carla@example.com"}
	assert.NilError(t, CreateUser(db, user))

	expiry := time.Now().Add(time.Hour)
	err := SetResetToken(db, user, "tok-123", expiry)
	assert.NilError(t, err)

	actual, err := GetUserByResetToken(db, "tok-123")
	assert.NilError(t, err)
	assert.Equal(t, actual.Email, "carla@example.com")
	assert.Assert(t, actual.ResetToken != nil)
	assert.Assert(t, actual.ResetTokenExpiry != nil)

	t.Run("falls back to email when id misses", func(t *testing.T) {
		ghost := &models.User{Model: models.Model{ID: 9999}, Email: "carla@example.com"}
		err := SetResetToken(db, ghost, "tok-456", expiry)
		assert.NilError(t, err)

		_, err = GetUserByResetToken(db, "tok-456")
		assert.NilError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		ghost := &models.User{Model: models.Model{ID: 9999}, Email: "nobody@example.com"}
		err := SetResetToken(db, ghost, "tok-789", expiry)
		assert.ErrorIs(t, err, internal.ErrNotFound)
	})
}

func TestResetPassword(t *testing.T) {
	db := setupDB(t)

	user := &models.User{Name: "Davi", Email: "davi@example.com", PasswordHash: "old"}
	assert.NilError(t, CreateUser(db, user))
	assert.NilError(t, SetResetToken(db, user, "tok-abc", time.Now().Add(time.Hour)))

	err := ResetPassword(db, "tok-abc", "new-hash")
	assert.NilError(t, err)

	actual, err := GetUser(db, ByID(user.ID))
	assert.NilError(t, err)
	assert.Equal(t, actual.PasswordHash, "new-hash")

	// both token fields cleared together
	assert.Assert(t, actual.ResetToken == nil)
	assert.Assert(t, actual.ResetTokenExpiry == nil)

	// a consumed token can not be replayed
	err = ResetPassword(db, "tok-abc", "other-hash")
	assert.ErrorIs(t, err, internal.ErrNotFound)
}

func TestRemoveExpiredResetTokens(t *testing.T) {
	db := setupDB(t)

	expired := &models.User{Name: "Elisa", Email: "elisa@example.com"}
	assert.NilError(t, CreateUser(db, expired))
	assert.NilError(t, SetResetToken(db, expired, "tok-old", time.Now().Add(-time.Minute)))

	fresh := &models.User{Name: "Fábio", Email: "fabio@example.com"}
	assert.NilError(t, CreateUser(db, fresh))
	assert.NilError(t, SetResetToken(db, fresh, "tok-new", time.Now().Add(time.Hour)))

	assert.NilError(t, RemoveExpiredResetTokens(db))

	_, err := GetUserByResetToken(db, "tok-old")
	assert.ErrorIs(t, err, internal.ErrNotFound)

	_, err = GetUserByResetToken(db, "tok-new")
	assert.NilError(t, err)
}
