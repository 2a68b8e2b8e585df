package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func isoInDays(days int) string {
	return time.Now().AddDate(0, 0, days).Format(time.RFC3339)
}

func TestFormatDeadlineDisplay(t *testing.T) {
	assert.Equal(t, "Today", FormatDeadlineDisplay(isoInDays(0)))
	assert.Equal(t, "Tomorrow", FormatDeadlineDisplay(isoInDays(1)))
	assert.Equal(t, "In 3 days", FormatDeadlineDisplay(isoInDays(3)))
	assert.Equal(t, "In 10 days", FormatDeadlineDisplay(isoInDays(10)))
	assert.Equal(t, "Overdue", FormatDeadlineDisplay(isoInDays(-2)))
}

func TestFormatDeadlineDisplayUnparseableFallsBack(t *testing.T) {
	assert.Equal(t, "In 1 day", FormatDeadlineDisplay("next Tuesday"))
	assert.Equal(t, "In 1 day", FormatDeadlineDisplay(""))
}

func TestFormatDeadlineDisplayWithoutZoneOffset(t *testing.T) {
	deadline := time.Now().AddDate(0, 0, 2).Format("2006-01-02T15:04:05")
	assert.Equal(t, "In 2 days", FormatDeadlineDisplay(deadline))
}

func TestDaysUntilDeadline(t *testing.T) {
	assert.Equal(t, 0, DaysUntilDeadline(isoInDays(0)))
	assert.Equal(t, 5, DaysUntilDeadline(isoInDays(5)))
	assert.Equal(t, -3, DaysUntilDeadline(isoInDays(-3)))
	assert.Equal(t, 1, DaysUntilDeadline("not a date"))
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	from := time.Date(2026, 1, 10, 23, 59, 0, 0, time.UTC)
	to := time.Date(2026, 1, 11, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 1, daysBetween(from, to))
}
