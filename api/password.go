package api

import (
	"github.com/gitCabezas/PontoJovem/internal/validate"
)

type PasswordResetRequest struct {
	Email string `json:"email"`
}

func (r PasswordResetRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("email", r.Email),
		validate.Email("email", r.Email),
	}
}

// PasswordResetResponse carries the same message whether or not the email
// exists, so the endpoint can not be used to probe for accounts.
type PasswordResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (r ResetPasswordRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("token", r.Token),
		validate.String("token", r.Token, 64, 64, validate.HexLower...),
		validate.Required("newPassword", r.NewPassword),
		validate.String("newPassword", r.NewPassword, 6, 0),
	}
}

type ResetPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ValidateTokenRequest struct {
	Token string `uri:"token"`
}

func (r ValidateTokenRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("token", r.Token),
	}
}

type ValidateTokenResponse struct {
	Success bool   `json:"success"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Email   string `json:"email,omitempty"`
	Nome    string `json:"nome,omitempty"`
}
