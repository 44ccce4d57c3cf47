package server

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/access"
	"github.com/gitCabezas/PontoJovem/internal/logging"
)

//go:embed resetform.html
var resetFormFS embed.FS

var resetFormTemplate = template.Must(template.ParseFS(resetFormFS, "resetform.html"))

type resetFormData struct {
	Token string
	Name  string
	// Error is set when the token can not be used; the page shows the
	// message instead of the form.
	Error string
}

// resetFormHandler serves the password reset page opened from the link in
// the recovery email. Some email clients prefix the copied token with
// "click:" and URL-encode it, so the token is cleaned up before it is
// checked.
func (a *API) resetFormHandler(c *gin.Context) {
	token := c.Query("token")
	token = strings.TrimPrefix(token, "click:")
	if decoded, err := url.QueryUnescape(token); err == nil {
		token = decoded
	}

	data := resetFormData{Token: token}
	user, err := access.ValidateResetToken(getDB(c), token)
	switch {
	case err == nil:
		data.Name = user.Name
	case errors.Is(err, internal.ErrExpiredToken):
		data.Error = "Este link de recuperação expirou. Solicite um novo no aplicativo."
	default:
		data.Error = "Este link de recuperação é inválido. Solicite um novo no aplicativo."
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := resetFormTemplate.Execute(c.Writer, data); err != nil {
		logging.L.Error().Err(err).Msg("rendering reset form")
	}
}
