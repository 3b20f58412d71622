package leave

import (
	"context"
	"time"

	"hrdesk/internal/domain/core"
)

type StoreAPI interface {
	WithinReadWrite(ctx context.Context, fn func(ctx context.Context) error) error
	GetEmployee(ctx context.Context, id string) (core.Employee, bool)
	ListEmployees(ctx context.Context) []core.Employee
	CreateLeaveRequest(ctx context.Context, req Request) (Request, error)
	GetLeaveRequest(ctx context.Context, id string) (Request, bool)
	ListLeaveRequests(ctx context.Context, filter Filter) []Request
	PendingLeaveByDivision(ctx context.Context, division core.Division) []Request
	DecideLeaveRequest(ctx context.Context, id, approverID string, approve bool, at time.Time) (Request, error)
}
