package core

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	store           StoreAPI
	clock           Clock
	defaultPassword string
}

func NewService(store StoreAPI, clock Clock, defaultPassword string) *Service {
	if strings.TrimSpace(defaultPassword) == "" {
		defaultPassword = DefaultPassword
	}
	return &Service{store: store, clock: clock, defaultPassword: defaultPassword}
}

type CreateInput struct {
	ID       string
	Name     string
	Password string
	Role     string
	Division string
	Title    string
}

type UpdateInput struct {
	Name     *string
	Role     *string
	Division *string
	Title    *string
}

type ProfileInput struct {
	Name            string
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

func (s *Service) Get(ctx context.Context, id string) (Employee, error) {
	emp, ok := s.store.GetEmployee(ctx, strings.TrimSpace(id))
	if !ok {
		return Employee{}, ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *Service) List(ctx context.Context) []Employee {
	return s.store.ListEmployees(ctx)
}

func (s *Service) ListByDivision(ctx context.Context, division Division) []Employee {
	return s.store.ListEmployeesByDivision(ctx, division)
}

// Create registers a new employee hired today with the default leave
// balance. An empty password falls back to the configured default.
func (s *Service) Create(ctx context.Context, in CreateInput) (Employee, error) {
	id := strings.TrimSpace(in.ID)
	name := strings.TrimSpace(in.Name)
	title := strings.TrimSpace(in.Title)
	required := []struct{ field, value string }{
		{"id", id}, {"name", name}, {"role", in.Role}, {"division", in.Division}, {"title", title},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return Employee{}, fmt.Errorf("%w: %s", ErrMissingField, r.field)
		}
	}
	role, err := ParseRole(in.Role)
	if err != nil {
		return Employee{}, err
	}
	division, err := ParseDivision(in.Division)
	if err != nil {
		return Employee{}, err
	}

	password := in.Password
	if strings.TrimSpace(password) == "" {
		password = s.defaultPassword
	}

	emp := Employee{
		ID:           id,
		Name:         name,
		Password:     password,
		Role:         role,
		Division:     division,
		Title:        title,
		HiredAt:      s.clock.Now(),
		LeaveBalance: DefaultLeaveBalance,
	}
	emp.RecomputeBaseSalary()
	if err := s.store.CreateEmployee(ctx, emp); err != nil {
		return Employee{}, err
	}
	return emp, nil
}

// Update applies an HR edit. Only the provided fields change; the base
// salary follows the new role and division.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Employee, error) {
	var (
		role     Role
		division Division
		err      error
	)
	if in.Role != nil {
		if role, err = ParseRole(*in.Role); err != nil {
			return Employee{}, err
		}
	}
	if in.Division != nil {
		if division, err = ParseDivision(*in.Division); err != nil {
			return Employee{}, err
		}
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return Employee{}, fmt.Errorf("%w: name", ErrMissingField)
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return Employee{}, fmt.Errorf("%w: title", ErrMissingField)
	}

	return s.store.UpdateEmployee(ctx, strings.TrimSpace(id), func(emp *Employee) error {
		if in.Name != nil {
			emp.Name = strings.TrimSpace(*in.Name)
		}
		if in.Title != nil {
			emp.Title = strings.TrimSpace(*in.Title)
		}
		if in.Role != nil {
			emp.Role = role
		}
		if in.Division != nil {
			emp.Division = division
		}
		return nil
	})
}

// UpdateProfile is the self-service edit. A password change is attempted
// only when an old password is supplied; any failure leaves the record as
// it was.
func (s *Service) UpdateProfile(ctx context.Context, id string, in ProfileInput) (Employee, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Employee{}, fmt.Errorf("%w: name", ErrMissingField)
	}

	return s.store.UpdateEmployee(ctx, id, func(emp *Employee) error {
		emp.Name = name
		if in.OldPassword == "" {
			return nil
		}
		if emp.Password != in.OldPassword {
			return ErrWrongPassword
		}
		if in.NewPassword == "" {
			return fmt.Errorf("%w: newPassword", ErrMissingField)
		}
		if in.NewPassword != in.ConfirmPassword {
			return ErrPasswordMismatch
		}
		emp.Password = in.NewPassword
		return nil
	})
}

func (s *Service) ResetPassword(ctx context.Context, id string) (Employee, error) {
	return s.store.UpdateEmployee(ctx, id, func(emp *Employee) error {
		emp.Password = s.defaultPassword
		return nil
	})
}
