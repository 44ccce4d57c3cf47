package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gitCabezas/PontoJovem/api"
	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/access"
	"github.com/gitCabezas/PontoJovem/internal/server/models"
	"github.com/gitCabezas/PontoJovem/internal/server/storage"
)

func (a *API) RegisterEntry(c *gin.Context, r *api.RegisterPunchRequest) (*api.RegisterPunchResponse, error) {
	punch, err := access.RegisterEntry(getDB(c), r.UserID, time.Now())
	if err != nil {
		return nil, err
	}

	return &api.RegisterPunchResponse{
		Success: true,
		Message: "Entrada registrada com sucesso",
		Data:    apiPunch(punch),
	}, nil
}

func (a *API) RegisterExit(c *gin.Context, r *api.RegisterPunchRequest) (*api.RegisterPunchResponse, error) {
	punch, err := access.RegisterExit(getDB(c), r.UserID, time.Now())
	if err != nil {
		if errors.Is(err, internal.ErrNotFound) {
			return nil, fmt.Errorf("%w: nenhuma entrada registrada hoje", internal.ErrNotFound)
		}
		return nil, err
	}

	return &api.RegisterPunchResponse{
		Success: true,
		Message: "Saída registrada com sucesso",
		Data:    apiPunch(punch),
	}, nil
}

func (a *API) ListPunches(c *gin.Context, r *api.ListPunchesRequest) (*api.ListPunchesResponse, error) {
	punches, err := access.ListPunches(getDB(c), r.UserID)
	if err != nil {
		return nil, err
	}

	resp := &api.ListPunchesResponse{
		Success: true,
		Data:    make([]api.Punch, 0, len(punches)),
	}
	for i := range punches {
		resp.Data = append(resp.Data, apiPunch(&punches[i]))
	}
	return resp, nil
}

// uploadJustificationHandler receives a multipart form with the
// justification file and attaches its public URL to a punch row, selected by
// id_ponto when present, otherwise by data_registro.
func (a *API) uploadJustificationHandler(c *gin.Context) {
	if a.server.store == nil {
		sendAPIError(c, fmt.Errorf("object storage not configured"))
		return
	}

	userID, err := formUint(c, "id_usuario")
	if err != nil {
		sendAPIError(c, err)
		return
	}
	punchID, err := formUint(c, "id_ponto")
	if err != nil {
		sendAPIError(c, err)
		return
	}
	date := c.PostForm("data_registro")
	if punchID == 0 && date == "" {
		sendAPIError(c, fmt.Errorf("%w: informe id_ponto ou data_registro", internal.ErrBadRequest))
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		sendAPIError(c, fmt.Errorf("%w: arquivo de justificativa ausente", internal.ErrBadRequest))
		return
	}

	file, err := header.Open()
	if err != nil {
		sendAPIError(c, err)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	bucket := a.server.options.Storage.JustificationsBucket
	key := storage.JustificationKey(userID, header.Filename)
	if err := a.server.store.Upload(c.Request.Context(), bucket, key, file, contentType); err != nil {
		sendAPIError(c, err)
		return
	}

	fileURL := a.server.store.PublicURL(bucket, key)
	if err := access.AttachJustification(getDB(c), userID, punchID, date, fileURL); err != nil {
		sendAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.UploadJustificationResponse{
		Success: true,
		Message: "Justificativa enviada com sucesso",
		URL:     fileURL,
	})
}

func formUint(c *gin.Context, name string) (uint, error) {
	value := c.PostForm(name)
	if value == "" {
		if name == "id_usuario" {
			return 0, fmt.Errorf("%w: %s é obrigatório", internal.ErrBadRequest, name)
		}
		return 0, nil
	}
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s inválido", internal.ErrBadRequest, name)
	}
	return uint(n), nil
}

func apiPunch(punch *models.PunchRecord) api.Punch {
	return api.Punch{
		ID:            punch.ID,
		UserID:        punch.UserID,
		Date:          punch.Date,
		EntryTime:     punch.EntryTime,
		ExitTime:      punch.ExitTime,
		Justification: punch.JustificationURL,
	}
}
