package access

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/generate"
	"github.com/gitCabezas/PontoJovem/internal/server/data"
	"github.com/gitCabezas/PontoJovem/internal/server/models"
)

// ResetTokenTTL is how long an issued reset token stays usable.
const ResetTokenTTL = time.Hour

// resetTokenBytes random bytes, hex-encoded, so tokens are 64 characters.
const resetTokenBytes = 32

// PasswordResetRequest issues a reset token for the account registered under
// email. The caller is responsible for not revealing an ErrNotFound to the
// client, the response must look the same whether or not the email exists.
func PasswordResetRequest(db *gorm.DB, email string) (string, *models.User, error) {
	user, err := data.GetUser(db, data.ByEmail(email))
	if err != nil {
		return "", nil, err
	}

	token, err := generate.HexToken(resetTokenBytes)
	if err != nil {
		return "", nil, err
	}

	expiry := time.Now().Add(ResetTokenTTL)
	if err := data.SetResetToken(db, user, token, expiry); err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// ValidateResetToken is a read-only check, it does not consume the token.
// An expired token fails with ErrExpiredToken, distinct from a token that
// never matched.
func ValidateResetToken(db *gorm.DB, token string) (*models.User, error) {
	user, err := data.GetUserByResetToken(db, token)
	if err != nil {
		if errors.Is(err, internal.ErrNotFound) {
			return nil, internal.ErrInvalidToken
		}
		return nil, err
	}

	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return nil, internal.ErrExpiredToken
	}

	return user, nil
}

// ResetPassword consumes the token: the new password hash is written and
// both token fields are cleared in a single statement, so a second call
// with the same token fails as invalid.
//
// The validity checks run again here because the token may have expired
// between rendering the reset form and submitting it.
func ResetPassword(db *gorm.DB, token, newPassword string) error {
	if _, err := ValidateResetToken(db, token); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := data.ResetPassword(db, token, string(hash)); err != nil {
		if errors.Is(err, internal.ErrNotFound) {
			// consumed by a concurrent request between the check and the update
			return internal.ErrInvalidToken
		}
		return err
	}

	return nil
}
