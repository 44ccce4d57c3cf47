package api

import (
	"github.com/gitCabezas/PontoJovem/internal/validate"
)

// User is the representation of an account returned to the mobile client.
// The password hash never leaves the server.
type User struct {
	ID             uint    `json:"id_usuario"`
	Nome           string  `json:"nome"`
	Email          string  `json:"email"`
	DataNascimento *string `json:"data_nascimento"`
}

type CreateUserRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"password"`
	// SenhaHash is accepted as an alias for password, older client builds
	// send the credential under this name.
	SenhaHash      string `json:"senha_hash"`
	DataNascimento string `json:"data_nascimento"`
}

func (r CreateUserRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("nome", r.Nome),
		validate.Required("email", r.Email),
		validate.Email("email", r.Email),
		validate.String("password", r.Password, 6, 0),
		validate.String("senha_hash", r.SenhaHash, 6, 0),
		validate.DateString("data_nascimento", r.DataNascimento),
	}
}

type CreateUserResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    User   `json:"data"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("email", r.Email),
		validate.Required("password", r.Password),
	}
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    User   `json:"data"`
}

type GetUserRequest struct {
	ID uint `uri:"id"`
}

func (r GetUserRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
	}
}

type GetUserResponse struct {
	Success bool `json:"success"`
	Data    User `json:"data"`
}

// UpdateUserRequest is a partial update: nil pointers leave the field
// untouched, an empty DataNascimento clears the stored date.
type UpdateUserRequest struct {
	ID             uint    `uri:"id" json:"-"`
	Nome           *string `json:"nome"`
	Email          *string `json:"email"`
	DataNascimento *string `json:"data_nascimento"`
}

func (r UpdateUserRequest) ValidationRules() []validate.ValidationRule {
	var email string
	if r.Email != nil {
		email = *r.Email
	}
	return []validate.ValidationRule{
		validate.Required("id", r.ID),
		validate.Email("email", email),
	}
}

type UpdateUserResponse struct {
	Success bool `json:"success"`
	Data    User `json:"data"`
}
