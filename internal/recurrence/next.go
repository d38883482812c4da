// Package recurrence computes the next occurrence date of a recurring
// transaction.
package recurrence

import (
	"fmt"
	"time"

	"github.com/GregMSThompson/budget-planner/internal/models"
)

// Next returns the date, formatted as YYYY-MM-DD, of the first occurrence
// after ref for the given frequency. The calendar date is read in ref's
// location.
//
// Monthly and yearly steps keep the day of month, clamped to the last day of
// the target month: Jan 31 becomes Feb 28 (or 29), and Feb 29 becomes Feb 28
// in a non-leap year.
func Next(freq models.Frequency, ref time.Time) (string, error) {
	y, m, d := ref.Date()

	var next time.Time
	switch freq {
	case models.FrequencyWeekly:
		next = time.Date(y, m, d+7, 0, 0, 0, 0, time.UTC)
	case models.FrequencyMonthly:
		if m == time.December {
			next = clampDay(y+1, time.January, d)
		} else {
			next = clampDay(y, m+1, d)
		}
	case models.FrequencyYearly:
		next = clampDay(y+1, m, d)
	default:
		return "", fmt.Errorf("unsupported frequency %q", freq)
	}

	return next.Format(models.DateLayout), nil
}

// clampDay builds the date for day in the given month, using the month's last
// day when day is past it.
func clampDay(year int, month time.Month, day int) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
