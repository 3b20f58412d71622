package payroll

import (
	"context"
	"time"

	"hrdesk/internal/domain/core"
)

type StoreAPI interface {
	GetEmployee(ctx context.Context, id string) (core.Employee, bool)
	ListEmployees(ctx context.Context) []core.Employee
	MonthlyPresentCount(ctx context.Context, employeeID string, month time.Month, year int) int
}

// Encrypter seals payslips when a key is configured.
type Encrypter interface {
	Configured() bool
	Encrypt(plain []byte) ([]byte, error)
}
