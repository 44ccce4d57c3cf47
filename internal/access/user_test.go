package access

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/server/data"
)

func TestCreateUser(t *testing.T) {
	db := setupDB(t)

	user, err := CreateUser(db, "João Lima", "joao@example.com", "segredo", "15/03/2001")
	assert.NilError(t, err)
	assert.Assert(t, user.ID != 0)
	assert.Assert(t, user.PasswordHash != "segredo")
	assert.Equal(t, *user.BirthDate, "2001-03-15")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := CreateUser(db, "Outro João", "joao@example.com", "outra", "")
		var ucErr data.UniqueConstraintError
		assert.Assert(t, errors.As(err, &ucErr), "expected unique constraint error, got %v", err)
		assert.Equal(t, ucErr.Column, "email")
	})

	t.Run("invalid birth date", func(t *testing.T) {
		_, err := CreateUser(db, "Ana", "ana@example.com", "segredo", "15/13/2001")
		assert.ErrorIs(t, err, internal.ErrBadRequest)
	})
}

func TestAuthenticate(t *testing.T) {
	db := setupDB(t)
	createTestUser(t, db, "maria@example.com")

	t.Run("valid credentials", func(t *testing.T) {
		user, err := Authenticate(db, "maria@example.com", "senha123")
		assert.NilError(t, err)
		assert.Equal(t, user.Email, "maria@example.com")
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := Authenticate(db, "maria@example.com", "senha124")
		assert.ErrorIs(t, err, internal.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := Authenticate(db, "ninguem@example.com", "senha123")
		assert.ErrorIs(t, err, internal.ErrUnauthorized)
	})
}

func TestUpdateUser(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db, "maria@example.com")

	t.Run("partial update keeps other fields", func(t *testing.T) {
		name := "Maria S. Lima"
		updated, err := UpdateUser(db, user.ID, UserUpdate{Name: &name})
		assert.NilError(t, err)
		assert.Equal(t, updated.Name, "Maria S. Lima")
		assert.Equal(t, updated.Email, "maria@example.com")
	})

	t.Run("normalizes birth date", func(t *testing.T) {
		birth := "02/01/1999"
		updated, err := UpdateUser(db, user.ID, UserUpdate{BirthDate: &birth})
		assert.NilError(t, err)
		assert.Equal(t, *updated.BirthDate, "1999-01-02")
	})

	t.Run("empty birth date clears it", func(t *testing.T) {
		birth := ""
		updated, err := UpdateUser(db, user.ID, UserUpdate{BirthDate: &birth})
		assert.NilError(t, err)
		assert.Assert(t, updated.BirthDate == nil)
	})

	t.Run("no fields is an error", func(t *testing.T) {
		_, err := UpdateUser(db, user.ID, UserUpdate{})
		assert.ErrorIs(t, err, internal.ErrBadRequest)
	})

	t.Run("unknown user", func(t *testing.T) {
		name := "Fantasma"
		_, err := UpdateUser(db, 9999, UserUpdate{Name: &name})
		assert.ErrorIs(t, err, internal.ErrNotFound)
	})
}
