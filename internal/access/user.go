// Package access implements the business rules between the HTTP handlers
// and the data layer.
package access

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/format"
	"github.com/gitCabezas/PontoJovem/internal/server/data"
	"github.com/gitCabezas/PontoJovem/internal/server/models"
)

func CreateUser(db *gorm.DB, name, email, password string, birthDate string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if birthDate != "" {
		normalized, err := format.NormalizeDate(birthDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", internal.ErrBadRequest, err)
		}
		user.BirthDate = &normalized
	}

	if err := data.CreateUser(db, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credential with a constant-time comparison
// against the stored hash. An unknown email and a wrong password fail the
// same way so the response can not distinguish them.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	user, err := data.GetUser(db, data.ByEmail(email))
	if err != nil {
		if errors.Is(err, internal.ErrNotFound) {
			return nil, internal.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, internal.ErrUnauthorized
	}

	return user, nil
}

func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	return data.GetUser(db, data.ByID(id))
}

// UserUpdate carries the fields of a partial profile update. Nil pointers
// leave the stored value untouched; an empty birth date clears it.
type UserUpdate struct {
	Name      *string
	Email     *string
	BirthDate *string
}

func (u UserUpdate) empty() bool {
	return u.Name == nil && u.Email == nil && u.BirthDate == nil
}

func UpdateUser(db *gorm.DB, id uint, update UserUpdate) (*models.User, error) {
	if update.empty() {
		return nil, fmt.Errorf("%w: nenhum dado para atualizar", internal.ErrBadRequest)
	}

	user, err := data.GetUser(db, data.ByID(id))
	if err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name != "" {
		user.Name = *update.Name
	}
	if update.Email != nil && *update.Email != "" {
		user.Email = *update.Email
	}
	if update.BirthDate != nil {
		if *update.BirthDate == "" {
			user.BirthDate = nil
		} else {
			normalized, err := format.NormalizeDate(*update.BirthDate)
			if err != nil {
				return nil, fmt.Errorf("%w: formato de data inválido, use DD/MM/AAAA ou AAAA-MM-DD", internal.ErrBadRequest)
			}
			user.BirthDate = &normalized
		}
	}

	if err := data.SaveUser(db, user); err != nil {
		return nil, err
	}
	return user, nil
}
