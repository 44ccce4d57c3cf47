package models

import (
	"time"
)

// User is an account that can log in and register punches.
//
// ResetToken and ResetTokenExpiry always move together: both null when no
// reset is in flight, both set when a token was issued. A token is expired
// when ResetTokenExpiry is in the past; there is no separate stored state.
type User struct {
	Model

	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string
	BirthDate    *string // YYYY-MM-DD

	ResetToken       *string `gorm:"index"`
	ResetTokenExpiry *time.Time
}
