package attendance

import (
	"context"
	"time"

	"hrdesk/internal/domain/core"
)

type StoreAPI interface {
	WithinReadWrite(ctx context.Context, fn func(ctx context.Context) error) error
	GetEmployee(ctx context.Context, id string) (core.Employee, bool)
	FindAttendance(ctx context.Context, employeeID string, day time.Time) (Record, bool)
	RecordAttendance(ctx context.Context, rec Record) (Record, error)
	ListAttendance(ctx context.Context, employeeID string) []Record
	AttendanceBreakdown(ctx context.Context, employeeID string, month time.Month, year int) Breakdown
}
