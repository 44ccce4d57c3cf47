package data

import (
	"testing"

	"gorm.io/gorm"
	"gotest.tools/v3/assert"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	driver, err := NewSQLiteDriver("file::memory:")
	assert.NilError(t, err)

	db, err := NewDB(driver)
	assert.NilError(t, err)
	return db
}
