package calendar

import "time"

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DayExists reports whether day is a valid day-of-month for the given month.
func DayExists(year int, month time.Month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}

// ClampDay builds a date at the given day-of-month, clamping to the last day
// of the month when the month is too short. Day 31 in April yields April 30,
// never May 1. Months outside 1..12 normalize the way time.Date does, so
// month 13 of a year is January of the next.
func ClampDay(year int, month time.Month, day int) time.Time {
	if day < 1 {
		day = 1
	}
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// LastDayOfMonth returns midnight UTC on the final day of the given month.
func LastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
}

// Midnight truncates a timestamp to midnight UTC on the same calendar date.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from a to b, negative when b is
// before a. Both are truncated to their calendar date first.
func DaysBetween(a, b time.Time) int {
	return int(Midnight(b).Sub(Midnight(a)).Hours() / 24)
}
