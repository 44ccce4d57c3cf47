// Package report builds the worked-hours PDF report for a user over a date
// range and publishes it to the object store.
package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gitCabezas/PontoJovem/internal"
	"github.com/gitCabezas/PontoJovem/internal/server/data"
	"github.com/gitCabezas/PontoJovem/internal/server/models"
	"github.com/gitCabezas/PontoJovem/internal/server/storage"
	"github.com/gitCabezas/PontoJovem/internal/timesheet"
)

// Totals aggregates the worked minutes of a document.
type Totals struct {
	// PeriodMinutes is the total over the requested range.
	PeriodMinutes int
	// WeekMinutes is the per-ISO-week breakdown of the requested range.
	WeekMinutes map[string]int
	// MonthMinutes is the total over the calendar month the report was
	// generated in, independent of the requested range.
	MonthMinutes int
	// MonthLabel is that month as MM/YYYY.
	MonthLabel string
}

// Document is everything the renderer needs to lay out a report.
type Document struct {
	UserName  string
	StartDate string
	EndDate   string
	Rows      []models.PunchRecord
	Totals    Totals

	GeneratedAt time.Time
}

// Build collects the punch rows and totals for a report. The range is
// inclusive on both ends; a range with no punches is ErrNotFound. When the
// user row is gone, fallbackName labels the report instead.
func Build(db *gorm.DB, userID uint, start, end, fallbackName string, now time.Time) (*Document, error) {
	rows, err := data.ListPunchRecords(db,
		data.ByUserID(userID),
		data.ByDateRange(start, end),
		data.OrderBy("date ASC"),
	)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: nenhum ponto registrado no período", internal.ErrNotFound)
	}

	name := fallbackName
	user, err := data.GetUser(db, data.ByID(userID))
	switch {
	case err == nil:
		name = user.Name
	case !errors.Is(err, internal.ErrNotFound):
		return nil, err
	}
	if name == "" {
		name = "Usuário"
	}

	entries := toEntries(rows)

	monthStart, monthEnd := timesheet.MonthBounds(now)
	monthRows, err := data.ListPunchRecords(db,
		data.ByUserID(userID),
		data.ByDateRange(monthStart, monthEnd),
	)
	if err != nil {
		return nil, err
	}

	return &Document{
		UserName:  name,
		StartDate: start,
		EndDate:   end,
		Rows:      rows,
		Totals: Totals{
			PeriodMinutes: timesheet.Sum(entries),
			WeekMinutes:   timesheet.SumByWeek(entries),
			MonthMinutes:  timesheet.Sum(toEntries(monthRows)),
			MonthLabel:    now.Format("01/2006"),
		},
		GeneratedAt: now,
	}, nil
}

func toEntries(rows []models.PunchRecord) []timesheet.Entry {
	entries := make([]timesheet.Entry, 0, len(rows))
	for _, row := range rows {
		exit := ""
		if row.ExitTime != nil {
			exit = *row.ExitTime
		}
		entries = append(entries, timesheet.Entry{
			Date:      row.Date,
			EntryTime: row.EntryTime,
			ExitTime:  exit,
		})
	}
	return entries
}

// Generate builds and renders the report, uploads the PDF, and returns its
// public URL.
func Generate(ctx context.Context, db *gorm.DB, store storage.Store, bucket string, userID uint, start, end, fallbackName string, now time.Time) (string, error) {
	doc, err := Build(db, userID, start, end, fallbackName, now)
	if err != nil {
		return "", err
	}

	pdf, err := Render(doc)
	if err != nil {
		return "", fmt.Errorf("rendering report: %w", err)
	}

	key := storage.ReportKey(userID)
	if err := store.Upload(ctx, bucket, key, bytes.NewReader(pdf), "application/pdf"); err != nil {
		return "", err
	}

	return store.PublicURL(bucket, key), nil
}
