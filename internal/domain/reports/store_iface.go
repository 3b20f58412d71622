package reports

import (
	"context"
	"time"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/meeting"
	"hrdesk/internal/domain/payroll"
)

type StoreAPI interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	ListEmployees(ctx context.Context) []core.Employee
	ListEmployeesByDivision(ctx context.Context, division core.Division) []core.Employee
	MonthlyPresentCount(ctx context.Context, employeeID string, month time.Month, year int) int
	AttendanceBreakdown(ctx context.Context, employeeID string, month time.Month, year int) attendance.Breakdown
	PendingLeaveByDivision(ctx context.Context, division core.Division) []leave.Request
	ListLeaveRequests(ctx context.Context, filter leave.Filter) []leave.Request
	MeetingsOwnedBy(ctx context.Context, division core.Division) []meeting.Meeting
	TodaysMeetingsForDivision(ctx context.Context, division core.Division, now time.Time) []meeting.Meeting
}

type SalaryCalculator interface {
	MonthlySalary(ctx context.Context, emp core.Employee, now time.Time) payroll.Breakdown
}
