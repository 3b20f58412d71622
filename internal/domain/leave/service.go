package leave

import (
	"context"
	"fmt"
	"strings"

	"hrdesk/internal/domain/core"
)

type Service struct {
	store StoreAPI
	clock core.Clock
}

func NewService(store StoreAPI, clock core.Clock) *Service {
	return &Service{store: store, clock: clock}
}

// Submit validates against the employee's current balance and files a
// Pending request. The balance is not touched until approval.
func (s *Service) Submit(ctx context.Context, employeeID string, in SubmitInput) (Request, error) {
	var created Request
	err := s.store.WithinReadWrite(ctx, func(ctx context.Context) error {
		emp, ok := s.store.GetEmployee(ctx, employeeID)
		if !ok {
			return core.ErrEmployeeNotFound
		}
		if _, err := Validate(in.StartDate, in.EndDate, in.Purpose, emp.LeaveBalance); err != nil {
			return err
		}
		req, err := s.store.CreateLeaveRequest(ctx, Request{
			EmployeeID: emp.ID,
			StartDate:  in.StartDate,
			EndDate:    in.EndDate,
			Reason:     strings.TrimSpace(in.Reason),
			Purpose:    strings.TrimSpace(in.Purpose),
			Status:     StatusPending,
			CreatedAt:  s.clock.Now(),
		})
		if err != nil {
			return err
		}
		created = req
		return nil
	})
	return created, err
}

// Decide approves or rejects a Pending request on behalf of approver.
func (s *Service) Decide(ctx context.Context, requestID string, approver core.Employee, approve bool) (Request, error) {
	var decided Request
	err := s.store.WithinReadWrite(ctx, func(ctx context.Context) error {
		req, ok := s.store.GetLeaveRequest(ctx, requestID)
		if !ok {
			return ErrNotFound
		}
		requester, found := s.store.GetEmployee(ctx, req.EmployeeID)
		if err := Authorize(approver, requester, found); err != nil {
			return err
		}
		out, err := s.store.DecideLeaveRequest(ctx, requestID, approver.ID, approve, s.clock.Now())
		if err != nil {
			return err
		}
		decided = out
		return nil
	})
	return decided, err
}

// Authorize lets HR decide any request and a manager decide requests from
// their own division.
func Authorize(approver, requester core.Employee, requesterFound bool) error {
	switch approver.Role {
	case core.RoleHR:
		return nil
	case core.RoleManager:
		if requesterFound && requester.Division == approver.Division {
			return nil
		}
		return fmt.Errorf("%w: request is outside division %s", ErrForbidden, approver.Division)
	default:
		return ErrForbidden
	}
}

// PendingFor lists what the approver may act on.
func (s *Service) PendingFor(ctx context.Context, approver core.Employee) ([]Request, error) {
	switch approver.Role {
	case core.RoleHR:
		return s.store.ListLeaveRequests(ctx, Filter{Statuses: []Status{StatusPending}}), nil
	case core.RoleManager:
		return s.store.PendingLeaveByDivision(ctx, approver.Division), nil
	default:
		return nil, ErrForbidden
	}
}

// ProcessedFor lists decided requests visible to the approver.
func (s *Service) ProcessedFor(ctx context.Context, approver core.Employee) ([]Request, error) {
	decided := []Status{StatusApproved, StatusRejected}
	switch approver.Role {
	case core.RoleHR:
		return s.store.ListLeaveRequests(ctx, Filter{Statuses: decided}), nil
	case core.RoleManager:
		return s.ProcessedForDivision(ctx, approver.Division), nil
	default:
		return nil, ErrForbidden
	}
}

func (s *Service) ProcessedForDivision(ctx context.Context, division core.Division) []Request {
	return s.store.ListLeaveRequests(ctx, Filter{
		Division: division,
		Statuses: []Status{StatusApproved, StatusRejected},
	})
}

func (s *Service) History(ctx context.Context, employeeID string) []Request {
	return s.store.ListLeaveRequests(ctx, Filter{EmployeeID: employeeID})
}

func (s *Service) Stats(ctx context.Context) Stats {
	return Summarize(s.store.ListLeaveRequests(ctx, Filter{}))
}

// Approvers returns the ids that should hear about a new request from the
// employee: managers of the same division and every HR member.
func (s *Service) Approvers(ctx context.Context, employeeID string) []string {
	requester, ok := s.store.GetEmployee(ctx, employeeID)
	if !ok {
		return nil
	}
	var ids []string
	for _, emp := range s.store.ListEmployees(ctx) {
		if emp.ID == requester.ID {
			continue
		}
		if emp.Role == core.RoleHR || (emp.Role == core.RoleManager && emp.Division == requester.Division) {
			ids = append(ids, emp.ID)
		}
	}
	return ids
}

// Summarize counts requests per status and averages approved lengths.
func Summarize(requests []Request) Stats {
	var stats Stats
	approvedDays := 0
	for _, req := range requests {
		switch req.Status {
		case StatusPending:
			stats.Pending++
		case StatusApproved:
			stats.Approved++
			approvedDays += req.Days()
		case StatusRejected:
			stats.Rejected++
		}
	}
	if stats.Approved > 0 {
		stats.AverageApprovedDays = float64(approvedDays) / float64(stats.Approved)
	}
	return stats
}
