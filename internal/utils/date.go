package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseLooseDate parses a loosely-formatted calendar date string, accepting
// common textual and numeric formats ("2025-06-15", "June 15, 2025",
// "6/15/2025", ...). The result is truncated to a date: midnight UTC with no
// time-of-day component.
func ParseLooseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", s, err)
	}

	return DateOnly(t), nil
}

// DateOnly truncates a time to its calendar date at midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a date by a signed number of days using ordinary calendar
// arithmetic; month and year boundaries roll over normally, with no clamping.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
