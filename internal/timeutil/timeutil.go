package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ClockLayout defines how game start times render inside guide text.
const ClockLayout = "3:04 PM"

// LongDateLayout defines the spelled-out date used by guide text.
const LongDateLayout = "Monday, January 2"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseStart parses an RFC3339 game start time.
func ParseStart(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

// FormatClock formats a start time for guide text, e.g. "7:30 PM".
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatLongDate formats a start time's date for guide text, e.g. "Saturday, March 9".
func FormatLongDate(t time.Time) string {
	return t.Format(LongDateLayout)
}

// FormatDayName returns the weekday name for guide text.
func FormatDayName(t time.Time) string {
	return t.Format("Monday")
}
