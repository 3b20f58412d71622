package jobs

import (
	"context"
	"sync"
	"time"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/notifications"
)

type EmployeeLister interface {
	List(ctx context.Context) []core.Employee
}

type AttendanceChecker interface {
	SubmittedToday(ctx context.Context, employeeID string) bool
}

type Notifier interface {
	Create(ctx context.Context, userID, ntype, title, body string) error
}

type ReminderResult struct {
	Date     string   `json:"date"`
	Skipped  bool     `json:"skipped,omitempty"`
	Reminded []string `json:"reminded"`
}

// AttendanceReminder notifies every employee who has not submitted
// attendance today. Weekends are skipped. A reminder is sent at most once
// per employee per day.
func AttendanceReminder(clock core.Clock, employees EmployeeLister, attendance AttendanceChecker, notify Notifier) Func {
	var (
		mu      sync.Mutex
		lastDay string
		sent    = map[string]bool{}
	)

	return func(ctx context.Context) (any, error) {
		mu.Lock()
		defer mu.Unlock()

		now := clock.Now()
		day := now.Format(time.DateOnly)
		result := ReminderResult{Date: day, Reminded: []string{}}
		if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
			result.Skipped = true
			return result, nil
		}
		if day != lastDay {
			lastDay = day
			sent = map[string]bool{}
		}

		for _, emp := range employees.List(ctx) {
			if sent[emp.ID] || attendance.SubmittedToday(ctx, emp.ID) {
				continue
			}
			if err := notify.Create(ctx, emp.ID, notifications.TypeAttendanceMissed,
				"Attendance not submitted",
				"You have not submitted attendance for "+day+"."); err != nil {
				return result, err
			}
			sent[emp.ID] = true
			result.Reminded = append(result.Reminded, emp.ID)
		}
		return result, nil
	}
}
