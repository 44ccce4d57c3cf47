package data

import (
	"gorm.io/gorm"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/server/models"
)

func CreatePunchRecord(db *gorm.DB, punch *models.PunchRecord) error {
	return add(db, punch)
}

func GetPunchRecord(db *gorm.DB, selectors ...SelectorFunc) (*models.PunchRecord, error) {
	return get[models.PunchRecord](db, selectors...)
}

func ListPunchRecords(db *gorm.DB, selectors ...SelectorFunc) ([]models.PunchRecord, error) {
	return list[models.PunchRecord](db, selectors...)
}

// SetExitTime stamps the exit on the user's punch row for date. There is no
// row to update when the user never registered an entry that day.
func SetExitTime(db *gorm.DB, userID uint, date, exitTime string) error {
	result := db.Model(&models.PunchRecord{}).
		Where("user_id = ? AND date = ?", userID, date).
		Update("exit_time", exitTime)
	if result.Error != nil {
		return handleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrNotFound
	}
	return nil
}

// SetJustificationURL attaches the uploaded file URL to one of the user's
// punch rows, selected by row id when given, otherwise by date.
func SetJustificationURL(db *gorm.DB, userID, punchID uint, date, url string) error {
	q := db.Model(&models.PunchRecord{}).Where("user_id = ?", userID)
	if punchID != 0 {
		q = q.Where("id = ?", punchID)
	} else {
		q = q.Where("date = ?", date)
	}

	result := q.Update("justification_url", url)
	if result.Error != nil {
		return handleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrNotFound
	}
	return nil
}
