package leave

import (
	"fmt"
	"strings"
	"time"
)

// CalculateDays returns the inclusive calendar-day count between start and
// end. Both are reduced to their calendar dates first, so time of day and
// DST shifts do not affect the result.
func CalculateDays(start, end time.Time) (int, error) {
	days := int(civilDay(end)-civilDay(start)) + 1
	if days < 1 {
		return 0, fmt.Errorf("%w: end date before start date", ErrInvalidRange)
	}
	return days, nil
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Validate checks a prospective request against the requester's balance
// and returns its length in days.
func Validate(start, end time.Time, purpose string, balance int) (int, error) {
	if IsWeekend(start) || IsWeekend(end) {
		return 0, fmt.Errorf("%w: leave cannot start or end on a weekend", ErrInvalidRange)
	}
	days, err := CalculateDays(start, end)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(purpose) == "" {
		return 0, fmt.Errorf("%w: purpose", ErrMissingField)
	}
	if days > balance {
		return 0, fmt.Errorf("%w: requested %d days, balance %d", ErrInsufficientBalance, days, balance)
	}
	return days, nil
}

func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
