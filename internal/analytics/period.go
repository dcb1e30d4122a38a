package analytics

import (
	"fmt"
	"strings"
	"time"
)

type Period int

const (
	PeriodDaily Period = iota
	PeriodWeekly
	PeriodMonthly
	PeriodYearly
)

const DefaultPeriod = "weekly"

// ParsePeriod is case-insensitive. Unknown values fall back to daily.
func ParsePeriod(s string) Period {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weekly":
		return PeriodWeekly
	case "monthly":
		return PeriodMonthly
	case "yearly":
		return PeriodYearly
	default:
		return PeriodDaily
	}
}

func (p Period) String() string {
	switch p {
	case PeriodWeekly:
		return "weekly"
	case PeriodMonthly:
		return "monthly"
	case PeriodYearly:
		return "yearly"
	default:
		return "daily"
	}
}

// PeriodLabel names the bucket t falls into.
// Weeks are ISO weeks, labelled with their ISO year, e.g. 2024-W03.
func PeriodLabel(t time.Time, p Period) string {
	switch p {
	case PeriodWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case PeriodMonthly:
		return t.Format("2006-01")
	case PeriodYearly:
		return t.Format("2006")
	default:
		return t.Format(time.DateOnly)
	}
}

// civilDate drops the time of day, keeping the wall clock date of t.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// wholeDaysBetween counts full 24h periods from a to b.
func wholeDaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

func wholeWeeksBetween(a, b time.Time) int {
	return int(b.Sub(a) / (7 * 24 * time.Hour))
}
