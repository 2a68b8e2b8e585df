package services

import (
	"fmt"
	"strings"
	"time"
)

// FormatDeadlineDisplay converts an ISO deadline string into the short label
// agents put in front of interns ("Today", "Tomorrow", "In 3 days").
// Unparseable input falls back to "In 1 day" rather than surfacing an error.
func FormatDeadlineDisplay(isoDeadline string) string {
	deadline, err := parseISODeadline(isoDeadline)
	if err != nil {
		return "In 1 day"
	}

	days := daysBetween(time.Now(), deadline)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days > 1:
		return fmt.Sprintf("In %d days", days)
	default:
		return "Overdue"
	}
}

// DaysUntilDeadline returns the day distance to the deadline, negative when
// it has passed. Unparseable input counts as one day out.
func DaysUntilDeadline(isoDeadline string) int {
	deadline, err := parseISODeadline(isoDeadline)
	if err != nil {
		return 1
	}

	return daysBetween(time.Now(), deadline)
}

func parseISODeadline(isoDeadline string) (time.Time, error) {
	value := strings.TrimSpace(isoDeadline)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	// Timestamps without a zone offset, e.g. "2026-01-13T10:00:00".
	return time.Parse("2006-01-02T15:04:05", value)
}

// daysBetween compares dates only; the time of day is ignored.
func daysBetween(from, to time.Time) int {
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)

	return int(toDate.Sub(fromDate).Hours() / 24)
}
