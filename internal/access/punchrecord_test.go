package access

import (
	"errors"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/server/data"
)

func TestRegisterEntry(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db, "maria@example.com")

	now := time.Date(2025, 3, 10, 8, 2, 30, 0, time.Local)
	punch, err := RegisterEntry(db, user.ID, now)
	assert.NilError(t, err)
	assert.Equal(t, punch.Date, "2025-03-10")
	assert.Equal(t, punch.EntryTime, "08:02:30")
	assert.Assert(t, punch.ExitTime == nil)

	t.Run("second entry same day", func(t *testing.T) {
		_, err := RegisterEntry(db, user.ID, now.Add(time.Minute))
		var ucErr data.UniqueConstraintError
		assert.Assert(t, errors.As(err, &ucErr), "expected unique constraint error, got %v", err)
	})

	t.Run("next day is a new row", func(t *testing.T) {
		punch, err := RegisterEntry(db, user.ID, now.Add(24*time.Hour))
		assert.NilError(t, err)
		assert.Equal(t, punch.Date, "2025-03-11")
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := RegisterEntry(db, 9999, now)
		assert.ErrorIs(t, err, internal.ErrNotFound)
	})
}

func TestRegisterExit(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db, "maria@example.com")

	entry := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	_, err := RegisterEntry(db, user.ID, entry)
	assert.NilError(t, err)

	punch, err := RegisterExit(db, user.ID, entry.Add(9*time.Hour))
	assert.NilError(t, err)
	assert.Equal(t, *punch.ExitTime, "17:00:00")
	assert.Equal(t, punch.EntryTime, "08:00:00")

	t.Run("no entry that day", func(t *testing.T) {
		_, err := RegisterExit(db, user.ID, entry.Add(24*time.Hour))
		assert.ErrorIs(t, err, internal.ErrNotFound)
	})
}

func TestListPunches(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db, "maria@example.com")
	other := createTestUser(t, db, "joao@example.com")

	for day := 10; day <= 12; day++ {
		_, err := RegisterEntry(db, user.ID, time.Date(2025, 3, day, 8, 0, 0, 0, time.Local))
		assert.NilError(t, err)
	}
	_, err := RegisterEntry(db, other.ID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local))
	assert.NilError(t, err)

	punches, err := ListPunches(db, user.ID)
	assert.NilError(t, err)
	assert.Equal(t, len(punches), 3)
	assert.Equal(t, punches[0].Date, "2025-03-12")
	assert.Equal(t, punches[2].Date, "2025-03-10")

	t.Run("no punches is an empty list", func(t *testing.T) {
		empty := createTestUser(t, db, "ana@example.com")
		punches, err := ListPunches(db, empty.ID)
		assert.NilError(t, err)
		assert.Equal(t, len(punches), 0)
	})
}

func TestAttachJustification(t *testing.T) {
	db := setupDB(t)
	user := createTestUser(t, db, "maria@example.com")

	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	punch, err := RegisterEntry(db, user.ID, now)
	assert.NilError(t, err)

	t.Run("by punch id", func(t *testing.T) {
		err := AttachJustification(db, user.ID, punch.ID, "", "https://files.example.com/a.pdf")
		assert.NilError(t, err)

		stored, err := data.GetPunchRecord(db, data.ByID(punch.ID))
		assert.NilError(t, err)
		assert.Equal(t, *stored.JustificationURL, "https://files.example.com/a.pdf")
	})

	t.Run("by date", func(t *testing.T) {
		err := AttachJustification(db, user.ID, 0, "2025-03-10", "https://files.example.com/b.pdf")
		assert.NilError(t, err)

		stored, err := data.GetPunchRecord(db, data.ByID(punch.ID))
		assert.NilError(t, err)
		assert.Equal(t, *stored.JustificationURL, "https://files.example.com/b.pdf")
	})

	t.Run("no matching row", func(t *testing.T) {
		err := AttachJustification(db, user.ID, 0, "2025-03-11", "https://files.example.com/c.pdf")
		assert.ErrorIs(t, err, internal.ErrNotFound)
	})
}
