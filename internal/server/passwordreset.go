package server

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/gitCabezas/PontoJovem/api"
	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/access"
	"github.com/gitCabezas/PontoJovem/internal/logging"
	"github.com/gitCabezas/PontoJovem/internal/server/email"
)

// passwordResetSentMessage is returned whether or not the email exists, so
// the endpoint can not be used to probe for registered accounts.
const passwordResetSentMessage = "Se o email estiver cadastrado, você receberá as instruções de recuperação"

func (a *API) RequestPasswordReset(c *gin.Context, r *api.PasswordResetRequest) (*api.PasswordResetResponse, error) {
	resp := &api.PasswordResetResponse{
		Success: true,
		Message: passwordResetSentMessage,
	}

	token, user, err := access.PasswordResetRequest(getDB(c), r.Email)
	if err != nil {
		if errors.Is(err, internal.ErrNotFound) {
			return resp, nil // don't tell the caller the email is unknown
		}
		return nil, err
	}

	link := fmt.Sprintf("%s/bk-mobile/redefinir-senha?token=%s",
		email.AppDomain, url.QueryEscape(token))

	err = email.SendPasswordReset(user.Name, user.Email, email.PasswordResetData{
		Name: user.Name,
		Link: link,
	})
	if err != nil {
		// the token is stored, so the response stays the same; a retry of
		// the request issues a fresh token
		logging.L.Error().Err(err).Msg("failed to send password reset email")
	}

	return resp, nil
}

func (a *API) ResetPassword(c *gin.Context, r *api.ResetPasswordRequest) (*api.ResetPasswordResponse, error) {
	if err := access.ResetPassword(getDB(c), r.Token, r.NewPassword); err != nil {
		return nil, err
	}

	return &api.ResetPasswordResponse{
		Success: true,
		Message: "Senha redefinida com sucesso",
	}, nil
}

func (a *API) ValidateResetToken(c *gin.Context, r *api.ValidateTokenRequest) (*api.ValidateTokenResponse, error) {
	user, err := access.ValidateResetToken(getDB(c), r.Token)
	if err != nil {
		return nil, err
	}

	return &api.ValidateTokenResponse{
		Success: true,
		Valid:   true,
		Message: "Token válido",
		Email:   user.Email,
		Nome:    user.Name,
	}, nil
}
