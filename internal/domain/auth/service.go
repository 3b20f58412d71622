package auth

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"hrdesk/internal/domain/core"
)

type EmployeeLookup interface {
	GetEmployee(ctx context.Context, id string) (core.Employee, bool)
}

type Service struct {
	employees EmployeeLookup
	secret    string
	ttl       time.Duration
}

func NewService(employees EmployeeLookup, secret string, ttl time.Duration) *Service {
	return &Service{employees: employees, secret: secret, ttl: ttl}
}

// Login checks the password by plain equality and issues a session token.
// Unknown ids and wrong passwords fail the same way.
func (s *Service) Login(ctx context.Context, id, password string) (Session, error) {
	emp, err := s.Authenticate(ctx, id, password)
	if err != nil {
		return Session{}, err
	}
	token, err := GenerateToken(s.secret, Claims{
		UserID:   emp.ID,
		RoleName: string(emp.Role),
		Division: string(emp.Division),
	}, s.ttl)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: time.Now().Add(s.ttl), Employee: emp}, nil
}

func (s *Service) Authenticate(ctx context.Context, id, password string) (core.Employee, error) {
	id = strings.TrimSpace(id)
	password = strings.TrimSpace(password)
	if id == "" || password == "" {
		return core.Employee{}, ErrMissingCredentials
	}
	emp, ok := s.employees.GetEmployee(ctx, id)
	if !ok {
		return core.Employee{}, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(emp.Password), []byte(password)) != 1 {
		return core.Employee{}, ErrInvalidCredentials
	}
	return emp, nil
}
