package shared

import "time"

// ParseDate accepts RFC3339 or bare YYYY-MM-DD, the two forms clients send
// for statement dates, due dates, and expense dates. Empty input is a zero
// time, not an error; optional fields decide for themselves.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}
