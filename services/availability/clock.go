// Package availability computes bookable time slots for a staff member,
// service and date from working hours, existing bookings and blocked
// intervals. All interval arithmetic runs on minutes since midnight;
// clock strings appear only at the boundaries.
package availability

import (
	"fmt"
	"time"
)

// MinutesPerDay bounds every interval handled by the engine.
const MinutesPerDay = 1440

// ParseClock parses a 24-hour "HH:mm" clock time into minutes since
// midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseBookingTime parses a booking start time, which historically comes
// in one of two encodings: strict 24-hour "HH:mm", or the legacy
// "h:mm AM/PM" written by the first version of the booking form. The
// second return value is false when the string matches neither.
func ParseBookingTime(s string) (int, bool) {
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Hour()*60 + t.Minute(), true
	}
	if t, err := time.Parse("3:04 PM", s); err == nil {
		return t.Hour()*60 + t.Minute(), true
	}
	return 0, false
}

// FormatClock renders minutes since midnight as 24-hour "HH:mm".
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FormatDisplay renders minutes since midnight in the 12-hour form shown
// to customers, e.g. "2:15 PM".
func FormatDisplay(m int) string {
	hour := m / 60
	minute := m % 60
	period := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		hour -= 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, period)
}

// DayName returns the English weekday name for a "YYYY-MM-DD" date.
// time.Weekday names are fixed, so the lookup is deterministic across
// locales and environments.
func DayName(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return t.Weekday().String(), nil
}
