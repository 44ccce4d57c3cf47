package data

import (
	"time"

	"gorm.io/gorm"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/logging"
	"github.com/gitCabezas/PontoJovem/internal/server/models"
)

func CreateUser(db *gorm.DB, user *models.User) error {
	return add(db, user)
}

func GetUser(db *gorm.DB, selectors ...SelectorFunc) (*models.User, error) {
	return get[models.User](db, selectors...)
}

func SaveUser(db *gorm.DB, user *models.User) error {
	return save(db, user)
}

// SetResetToken persists a reset token and its expiry on the user row. The
// update is keyed by id; if that touches no row it retries keyed by email,
// matching rows created before ids were stable.
func SetResetToken(db *gorm.DB, user *models.User, token string, expiry time.Time) error {
	values := map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}

	result := db.Model(&models.User{}).Where("id = ?", user.ID).Updates(values)
	if result.Error == nil && result.RowsAffected > 0 {
		return nil
	}
	if result.Error != nil {
		logging.Warnf("reset token update by id failed, retrying by email: %s", result.Error)
	}

	result = db.Model(&models.User{}).Where("email = ?", user.Email).Updates(values)
	if result.Error != nil {
		return handleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrNotFound
	}
	return nil
}

// GetUserByResetToken returns the user holding token, expired or not. The
// caller decides whether the token is still usable.
func GetUserByResetToken(db *gorm.DB, token string) (*models.User, error) {
	return get[models.User](db, ByResetToken(token))
}

// ResetPassword sets a new password hash and clears the token fields in one
// statement keyed by the token itself, so a consumed token can never be
// replayed.
func ResetPassword(db *gorm.DB, token, passwordHash string) error {
	result := db.Model(&models.User{}).Where("reset_token = ?", token).Updates(map[string]interface{}{
		"password_hash":      passwordHash,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	})
	if result.Error != nil {
		return handleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrNotFound
	}
	return nil
}

// RemoveExpiredResetTokens clears the token fields on every row whose expiry
// is in the past.
func RemoveExpiredResetTokens(db *gorm.DB) error {
	return db.Model(&models.User{}).
		Where("reset_token_expiry < ?", time.Now()).
		Updates(map[string]interface{}{
			"reset_token":        nil,
			"reset_token_expiry": nil,
		}).Error
}
