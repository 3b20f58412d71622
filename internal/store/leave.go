package store

import (
	"context"
	"slices"
	"time"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
)

// CreateLeaveRequest appends req unconditionally; validation lives in the
// leave service.
func (s *Store) CreateLeaveRequest(ctx context.Context, req leave.Request) (leave.Request, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return leave.Request{}, err
	}
	defer unlock()

	if req.ID == "" {
		req.ID = s.newID()
	}
	if req.Status == "" {
		req.Status = leave.StatusPending
	}
	s.leaves = append(s.leaves, req)
	return req, nil
}

func (s *Store) GetLeaveRequest(ctx context.Context, id string) (leave.Request, bool) {
	defer s.rlock(ctx)()
	for _, req := range s.leaves {
		if req.ID == id {
			return req, true
		}
	}
	return leave.Request{}, false
}

// ListLeaveRequests returns matching requests, newest first. A division
// filter skips requests whose employee no longer resolves.
func (s *Store) ListLeaveRequests(ctx context.Context, filter leave.Filter) []leave.Request {
	defer s.rlock(ctx)()
	var out []leave.Request
	for _, req := range s.leaves {
		if filter.EmployeeID != "" && req.EmployeeID != filter.EmployeeID {
			continue
		}
		if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, req.Status) {
			continue
		}
		if filter.Division != "" {
			emp, ok := s.employees[req.EmployeeID]
			if !ok || emp.Division != filter.Division {
				continue
			}
		}
		out = append(out, req)
	}
	slices.Reverse(out)
	return out
}

// PendingLeaveByDivision returns Pending requests from employees of the
// division in submission order.
func (s *Store) PendingLeaveByDivision(ctx context.Context, division core.Division) []leave.Request {
	defer s.rlock(ctx)()
	var out []leave.Request
	for _, req := range s.leaves {
		if req.Status != leave.StatusPending {
			continue
		}
		emp, ok := s.employees[req.EmployeeID]
		if !ok || emp.Division != division {
			continue
		}
		out = append(out, req)
	}
	return out
}

// DecideLeaveRequest moves a Pending request to Approved or Rejected. On
// approval the requester's balance drops by the request's length.
func (s *Store) DecideLeaveRequest(ctx context.Context, id, approverID string, approve bool, at time.Time) (leave.Request, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return leave.Request{}, err
	}
	defer unlock()

	idx := slices.IndexFunc(s.leaves, func(r leave.Request) bool { return r.ID == id })
	if idx < 0 {
		return leave.Request{}, leave.ErrNotFound
	}
	req := s.leaves[idx]
	if req.Status != leave.StatusPending {
		return leave.Request{}, leave.ErrAlreadyDecided
	}

	req.ApproverID = approverID
	req.DecidedAt = at
	if approve {
		req.Status = leave.StatusApproved
		if emp, ok := s.employees[req.EmployeeID]; ok {
			emp.LeaveBalance -= req.Days()
			s.employees[emp.ID] = emp
		}
	} else {
		req.Status = leave.StatusRejected
	}
	s.leaves[idx] = req
	return req, nil
}
