package server

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gitCabezas/PontoJovem/api"
	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/format"
	"github.com/gitCabezas/PontoJovem/internal/server/report"
)

func (a *API) GenerateReport(c *gin.Context, r *api.GenerateReportRequest) (*api.GenerateReportResponse, error) {
	if a.server.store == nil {
		return nil, fmt.Errorf("object storage not configured")
	}

	start, err := format.NormalizeDate(r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", internal.ErrBadRequest, err)
	}
	end, err := format.NormalizeDate(r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", internal.ErrBadRequest, err)
	}
	if start > end {
		return nil, fmt.Errorf("%w: data_inicio posterior a data_fim", internal.ErrBadRequest)
	}

	url, err := report.Generate(c.Request.Context(), getDB(c), a.server.store,
		a.server.options.Storage.ReportsBucket,
		r.UserID, start, end, r.UserName, time.Now())
	if err != nil {
		return nil, err
	}

	return &api.GenerateReportResponse{
		Success: true,
		Message: "Relatório gerado com sucesso",
		URL:     url,
	}, nil
}
