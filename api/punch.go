package api

import (
	"github.com/gitCabezas/PontoJovem/internal/validate"
)

// Punch is one day of attendance: date, entry and exit times, and the URL of
// a justification file when one was uploaded.
type Punch struct {
	ID            uint    `json:"id_ponto"`
	UserID        uint    `json:"id_usuario"`
	Date          string  `json:"data_registro"`
	EntryTime     string  `json:"hora_entrada"`
	ExitTime      *string `json:"hora_saida"`
	Justification *string `json:"justificativa"`
}

type RegisterPunchRequest struct {
	UserID uint `json:"id_usuario"`
}

func (r RegisterPunchRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id_usuario", r.UserID),
	}
}

type RegisterPunchResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    Punch  `json:"data"`
}

type ListPunchesRequest struct {
	UserID uint `uri:"user_id"`
}

func (r ListPunchesRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("user_id", r.UserID),
	}
}

type ListPunchesResponse struct {
	Success bool    `json:"success"`
	Data    []Punch `json:"data"`
}

type UploadJustificationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url"`
}

type GenerateReportRequest struct {
	UserID    uint   `json:"id_usuario"`
	StartDate string `json:"data_inicio"`
	EndDate   string `json:"data_fim"`
	UserName  string `json:"nome_usuario"`
}

func (r GenerateReportRequest) ValidationRules() []validate.ValidationRule {
	return []validate.ValidationRule{
		validate.Required("id_usuario", r.UserID),
		validate.Required("data_inicio", r.StartDate),
		validate.DateString("data_inicio", r.StartDate),
		validate.Required("data_fim", r.EndDate),
		validate.DateString("data_fim", r.EndDate),
	}
}

type GenerateReportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url"`
}
