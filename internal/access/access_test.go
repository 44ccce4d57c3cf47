package access

import (
	"testing"

	"gorm.io/gorm"
	"gotest.tools/v3/assert"

	"github.com/gitCabezas/PontoJovem/internal/server/data"
	"github.com/gitCabezas/PontoJovem/internal/server/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	driver, err := data.NewSQLiteDriver("file::memory:")
	assert.NilError(t, err)

	db, err := data.NewDB(driver)
	assert.NilError(t, err)
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user, err := CreateUser(db, "Maria Souza", email, "senha123", "")
	assert.NilError(t, err)
	return user
}
