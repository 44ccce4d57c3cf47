package report

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	"github.com/gitCabezas/PontoJovem/internal/format"
	"github.com/gitCabezas/PontoJovem/internal/timesheet"
)

// Render lays out doc as an A4 PDF.
func Render(doc *Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// core fonts are cp1252, translate so accented Portuguese text survives
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatório de Ponto"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr("Usuário: "+doc.UserName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Período: "+format.DateBR(doc.StartDate)+" a "+format.DateBR(doc.EndDate)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{40, 35, 35, 45}
	headers := []string{"Data", "Entrada", "Saída", "Justificativa"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range doc.Rows {
		exit := "-"
		if row.ExitTime != nil && *row.ExitTime != "" {
			exit = *row.ExitTime
		}
		justified := "-"
		if row.JustificationURL != nil && *row.JustificationURL != "" {
			justified = "Sim"
		}

		pdf.CellFormat(widths[0], 7, format.DateBR(row.Date), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, row.EntryTime, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 7, exit, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, justified, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr("Total no período: "+timesheet.FormatMinutes(doc.Totals.PeriodMinutes)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Mês vigente ("+doc.Totals.MonthLabel+"): "+timesheet.FormatMinutes(doc.Totals.MonthMinutes)), "", 1, "L", false, 0, "")

	pdf.SetY(-15)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 10, tr("Gerado em "+doc.GeneratedAt.Format("02/01/2006 15:04")), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
