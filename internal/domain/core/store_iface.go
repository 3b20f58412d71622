package core

import "context"

type StoreAPI interface {
	CreateEmployee(ctx context.Context, emp Employee) error
	GetEmployee(ctx context.Context, id string) (Employee, bool)
	UpdateEmployee(ctx context.Context, id string, fn func(*Employee) error) (Employee, error)
	ListEmployees(ctx context.Context) []Employee
	ListEmployeesByDivision(ctx context.Context, division Division) []Employee
}
