// Package timesheet computes worked time from punch records. All functions
// are pure; dates are YYYY-MM-DD strings and times of day are HH:MM:SS.
package timesheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseToMinutes converts an HH:MM:SS time of day into minutes since
// midnight. Missing components are treated as zero, and seconds are floored
// into minutes. An empty string is zero.
func ParseToMinutes(hms string) int {
	if hms == "" {
		return 0
	}

	var hh, mm, ss int
	parts := strings.Split(hms, ":")
	if len(parts) > 0 {
		hh = atoi(parts[0])
	}
	if len(parts) > 1 {
		mm = atoi(parts[1])
	}
	if len(parts) > 2 {
		ss = atoi(parts[2])
	}

	return hh*60 + mm + ss/60
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// ElapsedMinutes returns the worked minutes between entry and exit. A
// missing exit, or an exit before the entry, counts as zero.
func ElapsedMinutes(entry, exit string) int {
	d := ParseToMinutes(exit) - ParseToMinutes(entry)
	if d < 0 {
		return 0
	}
	return d
}

// FormatMinutes renders a minute total as zero-padded HH:MM. Hours are not
// wrapped at 24.
func FormatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ISOWeekKey returns the ISO-8601 week key (YYYY-Www) for a YYYY-MM-DD date.
// The year is the ISO week-numbering year, which near January 1 may differ
// from the calendar year.
func ISOWeekKey(date string) (string, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("week key: %w", err)
	}
	year, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week), nil
}

// MonthBounds returns the first and last day of now's calendar month as
// YYYY-MM-DD strings.
func MonthBounds(now time.Time) (start, end string) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

// CurrentMonthBounds is MonthBounds anchored to the local wall clock.
func CurrentMonthBounds() (start, end string) {
	return MonthBounds(time.Now())
}

// Entry is one punch row as seen by the aggregator.
type Entry struct {
	Date      string
	EntryTime string
	ExitTime  string
}

// Sum returns the total worked minutes over entries.
func Sum(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += ElapsedMinutes(e.EntryTime, e.ExitTime)
	}
	return total
}

// SumByWeek groups entries by ISO week key and sums worked minutes per week.
// Entries with unparseable dates are skipped.
func SumByWeek(entries []Entry) map[string]int {
	weeks := make(map[string]int)
	for _, e := range entries {
		key, err := ISOWeekKey(e.Date)
		if err != nil {
			continue
		}
		weeks[key] += ElapsedMinutes(e.EntryTime, e.ExitTime)
	}
	return weeks
}
