package store

import (
	"context"
	"sort"

	"hrdesk/internal/domain/core"
)

// CreateEmployee inserts emp unless the id is taken. Base salary is always
// derived and a zero balance becomes the default.
func (s *Store) CreateEmployee(ctx context.Context, emp core.Employee) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if emp.ID == "" {
		return core.ErrMissingField
	}
	if _, exists := s.employees[emp.ID]; exists {
		return core.ErrDuplicateKey
	}
	if emp.LeaveBalance == 0 {
		emp.LeaveBalance = core.DefaultLeaveBalance
	}
	emp.RecomputeBaseSalary()
	s.employees[emp.ID] = emp
	return nil
}

func (s *Store) GetEmployee(ctx context.Context, id string) (core.Employee, bool) {
	defer s.rlock(ctx)()
	emp, ok := s.employees[id]
	return emp, ok
}

// UpdateEmployee applies fn to a copy and stores it only when fn succeeds.
// The id cannot be changed.
func (s *Store) UpdateEmployee(ctx context.Context, id string, fn func(*core.Employee) error) (core.Employee, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return core.Employee{}, err
	}
	defer unlock()

	emp, ok := s.employees[id]
	if !ok {
		return core.Employee{}, core.ErrEmployeeNotFound
	}
	if err := fn(&emp); err != nil {
		return core.Employee{}, err
	}
	emp.ID = id
	emp.RecomputeBaseSalary()
	s.employees[id] = emp
	return emp, nil
}

// ListEmployees returns every employee ordered by id.
func (s *Store) ListEmployees(ctx context.Context) []core.Employee {
	defer s.rlock(ctx)()
	out := make([]core.Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) ListEmployeesByDivision(ctx context.Context, division core.Division) []core.Employee {
	defer s.rlock(ctx)()
	var out []core.Employee
	for _, emp := range s.employees {
		if emp.Division == division {
			out = append(out, emp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
