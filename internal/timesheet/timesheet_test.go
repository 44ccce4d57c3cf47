package timesheet

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestParseToMinutes(t *testing.T) {
	type testCase struct {
		input    string
		expected int
	}

	run := func(t *testing.T, tc testCase) {
		assert.Equal(t, ParseToMinutes(tc.input), tc.expected)
	}

	testCases := []testCase{
		{input: "", expected: 0},
		{input: "08:00:00", expected: 480},
		{input: "08:30:00", expected: 510},
		{input: "08:30:59", expected: 510}, // seconds floor, never round up
		{input: "08:30:60", expected: 511},
		{input: "12:00", expected: 720},
		{input: "9", expected: 540},
		{input: "00:00:00", expected: 0},
		{input: "23:59:59", expected: 1439},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			run(t, tc)
		})
	}
}

func TestElapsedMinutes(t *testing.T) {
	assert.Equal(t, ElapsedMinutes("08:00:00", "12:30:00"), 270)
	assert.Equal(t, ElapsedMinutes("08:00:00", "08:00:00"), 0)

	// exit before entry clamps to zero
	assert.Equal(t, ElapsedMinutes("12:00:00", "08:00:00"), 0)

	// missing exit clamps to zero
	assert.Equal(t, ElapsedMinutes("08:00:00", ""), 0)

	assert.Equal(t, ElapsedMinutes("08:15:00", "17:45:00"),
		ParseToMinutes("17:45:00")-ParseToMinutes("08:15:00"))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, FormatMinutes(0), "00:00")
	assert.Equal(t, FormatMinutes(90), "01:30")
	assert.Equal(t, FormatMinutes(480), "08:00")
	assert.Equal(t, FormatMinutes(59), "00:59")

	// hours keep growing past two digits, no wraparound at 24
	assert.Equal(t, FormatMinutes(6000), "100:00")
}

func TestISOWeekKey(t *testing.T) {
	type testCase struct {
		date     string
		expected string
	}

	run := func(t *testing.T, tc testCase) {
		key, err := ISOWeekKey(tc.date)
		assert.NilError(t, err)
		assert.Equal(t, key, tc.expected)
	}

	testCases := []testCase{
		{date: "2025-01-01", expected: "2025-W01"},
		// Dec 31 2024 falls in ISO week 1 of 2025
		{date: "2024-12-31", expected: "2025-W01"},
		{date: "2025-06-16", expected: "2025-W25"},
		// Jan 1 2023 is a Sunday, still ISO week 52 of 2022
		{date: "2023-01-01", expected: "2022-W52"},
		{date: "2025-12-29", expected: "2026-W01"},
	}

	for _, tc := range testCases {
		t.Run(tc.date, func(t *testing.T) {
			run(t, tc)
		})
	}

	_, err := ISOWeekKey("31/12/2024")
	assert.ErrorContains(t, err, "week key")
}

func TestMonthBounds(t *testing.T) {
	now := time.Date(2025, 2, 14, 10, 0, 0, 0, time.UTC)
	start, end := MonthBounds(now)
	assert.Equal(t, start, "2025-02-01")
	assert.Equal(t, end, "2025-02-28")

	now = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	start, end = MonthBounds(now)
	assert.Equal(t, start, "2024-02-01")
	assert.Equal(t, end, "2024-02-29")

	now = time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)
	start, end = MonthBounds(now)
	assert.Equal(t, start, "2025-12-01")
	assert.Equal(t, end, "2025-12-31")
}

func TestSumByWeek(t *testing.T) {
	entries := []Entry{
		{Date: "2025-01-01", EntryTime: "08:00:00", ExitTime: "12:00:00"},
		{Date: "2025-01-02", EntryTime: "08:00:00", ExitTime: "12:00:00"},
		{Date: "2025-01-06", EntryTime: "09:00:00", ExitTime: "10:30:00"},
		{Date: "not-a-date", EntryTime: "08:00:00", ExitTime: "12:00:00"},
	}

	weeks := SumByWeek(entries)
	assert.Equal(t, len(weeks), 2)
	assert.Equal(t, weeks["2025-W01"], 480)
	assert.Equal(t, weeks["2025-W02"], 90)

	assert.Equal(t, Sum(entries), 570)
}
