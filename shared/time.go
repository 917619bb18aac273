package shared

import (
	"fmt"
	"time"
)

const (
	// SimpleDateFormat is the wire format for date-only values.
	SimpleDateFormat = "2006-01-02"

	// SimpleDateTimeFormat is the wire format for date-and-time values.
	SimpleDateTimeFormat = "2006-01-02 15:04:05"

	isoDateTimeFormat = "2006-01-02T15:04:05"
)

// NormalizeDateTime formats date as "YYYY-MM-DD HH:MM:SS", optionally shifted
// by days. A time of day sitting exactly on a day boundary (00:00:00 or
// 23:59:59, nanoseconds ignored) is rewritten to the start or end of the day
// according to endOfDay; any other time of day is preserved.
func NormalizeDateTime(date time.Time, days *int, endOfDay bool) string {
	if days != nil {
		date = date.AddDate(0, 0, *days)
	}

	if isDayBoundary(date) {
		year, month, day := date.Date()

		if endOfDay {
			date = time.Date(year, month, day, 23, 59, 59, 0, date.Location())
		} else {
			date = time.Date(year, month, day, 0, 0, 0, 0, date.Location())
		}
	}

	return date.Format(SimpleDateTimeFormat)
}

func isDayBoundary(date time.Time) bool {
	hour, minute, second := date.Clock()

	atStart := hour == 0 && minute == 0 && second == 0
	atEnd := hour == 23 && minute == 59 && second == 59

	return atStart || atEnd
}

// NormalizeDate formats date as "YYYY-MM-DD", optionally shifted by days.
func NormalizeDate(date time.Time, days *int) string {
	if days != nil {
		date = date.AddDate(0, 0, *days)
	}

	return date.Format(SimpleDateFormat)
}

// ParseDateTime parses dateStr as RFC3339, "YYYY-MM-DDTHH:MM:SS",
// "YYYY-MM-DD HH:MM:SS" or "YYYY-MM-DD", in that order. The boolean result
// reports whether dateStr carried a time of day. Date-only input resolves to
// the start of the day, or to 23:59:59 when isEndDate is true.
func ParseDateTime(dateStr string, isEndDate bool) (time.Time, bool, error) {
	layoutsWithTime := []string{time.RFC3339, isoDateTimeFormat, SimpleDateTimeFormat}

	for _, layout := range layoutsWithTime {
		if parsed, err := time.Parse(layout, dateStr); err == nil {
			return parsed, true, nil
		}
	}

	parsed, err := time.Parse(SimpleDateFormat, dateStr)
	if err != nil {
		return time.Time{}, false, ValidationError{
			Field:   "date",
			Message: fmt.Sprintf("unsupported date format: %s", dateStr),
		}
	}

	if isEndDate {
		parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 23, 59, 59, 0, parsed.Location())
	}

	return parsed, false, nil
}

// IsValidDate reports whether date is a well-formed "YYYY-MM-DD" value.
func IsValidDate(date string) bool {
	_, err := time.Parse(SimpleDateFormat, date)

	return err == nil
}

// IsValidDateTime reports whether date is a well-formed
// "YYYY-MM-DD HH:MM:SS" value.
func IsValidDateTime(date string) bool {
	_, err := time.Parse(SimpleDateTimeFormat, date)

	return err == nil
}

// IsInitialDateBeforeFinalDate reports whether initial is on or before final.
func IsInitialDateBeforeFinalDate(initial, final time.Time) bool {
	return !initial.After(final)
}

// IsDateRangeWithinMonthLimit reports whether final falls within limit months
// of initial.
func IsDateRangeWithinMonthLimit(initial, final time.Time, limit int) bool {
	return !final.After(initial.AddDate(0, limit, 0))
}

// UTCNow returns the current time in UTC.
func UTCNow() time.Time {
	return time.Now().UTC()
}

// ParseISODate parses value as an ISO-8601 timestamp. Accepted shapes are
// RFC3339 with optional fractional seconds, a naive "YYYY-MM-DDTHH:MM:SS"
// timestamp and a bare "YYYY-MM-DD" date.
func ParseISODate(value string) (time.Time, error) {
	layouts := []string{time.RFC3339Nano, isoDateTimeFormat, SimpleDateFormat}

	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, ValidationError{
		Field:   "date",
		Message: fmt.Sprintf("invalid ISO date format: %s", value),
	}
}

// FormatISODate renders t as an ISO-8601 timestamp with nanosecond precision.
func FormatISODate(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// DaysAgo returns the UTC instant the given number of days before now.
func DaysAgo(days int) time.Time {
	return UTCNow().AddDate(0, 0, -days)
}

// HoursAgo returns the UTC instant the given number of hours before now.
func HoursAgo(hours int) time.Time {
	return UTCNow().Add(-time.Duration(hours) * time.Hour)
}
