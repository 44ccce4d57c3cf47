package access

import (
	"time"

	"gorm.io/gorm"

	"github.com/gitCabezas/PontoJovem/internal/server/data"
	"github.com/gitCabezas/PontoJovem/internal/server/models"
)

// RegisterEntry creates the punch row for the user's current day. The row
// carries the server-local date and time; a second entry on the same day
// fails on the (user_id, date) unique index.
func RegisterEntry(db *gorm.DB, userID uint, now time.Time) (*models.PunchRecord, error) {
	if _, err := data.GetUser(db, data.ByID(userID)); err != nil {
		return nil, err
	}

	punch := &models.PunchRecord{
		UserID:    userID,
		Date:      now.Format("2006-01-02"),
		EntryTime: now.Format("15:04:05"),
	}

	if err := data.CreatePunchRecord(db, punch); err != nil {
		return nil, err
	}
	return punch, nil
}

// RegisterExit stamps the exit time on today's punch row.
func RegisterExit(db *gorm.DB, userID uint, now time.Time) (*models.PunchRecord, error) {
	date := now.Format("2006-01-02")
	if err := data.SetExitTime(db, userID, date, now.Format("15:04:05")); err != nil {
		return nil, err
	}

	return data.GetPunchRecord(db, data.ByUserID(userID), data.ByDate(date))
}

// ListPunches returns the user's punches, newest first.
func ListPunches(db *gorm.DB, userID uint) ([]models.PunchRecord, error) {
	return data.ListPunchRecords(db, data.ByUserID(userID), data.OrderBy("date DESC"))
}

// AttachJustification records the public URL of an uploaded justification
// file on one of the user's punch rows, selected by row id or by date.
func AttachJustification(db *gorm.DB, userID, punchID uint, date, url string) error {
	return data.SetJustificationURL(db, userID, punchID, date, url)
}
