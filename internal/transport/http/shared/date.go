package shared

import "time"

// ParseDate accepts RFC3339, YYYY-MM-DD or dd/mm/yyyy. Date-only values are
// placed at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return parseDateIn(value, time.UTC)
}

func parseDateIn(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	if parsed, err := time.ParseInLocation("02/01/2006", value, loc); err == nil {
		return parsed, nil
	}
	return time.ParseInLocation("2006-01-02", value, loc)
}
