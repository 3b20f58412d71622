package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleStaff   Role = "staff"
	RoleHR      Role = "hr"
	RoleManager Role = "manager"
)

type Division string

const (
	DivisionMarketing Division = "Marketing"
	DivisionHR        Division = "HR"
	DivisionFinance   Division = "Finance"
)

var (
	Roles     = []Role{RoleStaff, RoleHR, RoleManager}
	Divisions = []Division{DivisionMarketing, DivisionHR, DivisionFinance}
)

// Employee is keyed by ID, which doubles as the login username.
type Employee struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Password     string          `json:"-"`
	Role         Role            `json:"role"`
	Division     Division        `json:"division"`
	Title        string          `json:"title"`
	HiredAt      time.Time       `json:"hiredAt"`
	LeaveBalance int             `json:"leaveBalance"`
	BaseSalary   decimal.Decimal `json:"baseSalary"`
}

// RecomputeBaseSalary derives the base salary from role and division.
func (e *Employee) RecomputeBaseSalary() {
	e.BaseSalary = BaseSalary(e.Role, e.Division)
}

// WorkYears counts completed anniversaries of the hire date up to now.
func (e Employee) WorkYears(now time.Time) int {
	return WholeYearsBetween(e.HiredAt, now)
}

// Profile is the outward view of an employee. Sensitive fields are nil
// when the viewer may not see them.
type Profile struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Role         Role             `json:"role"`
	Division     Division         `json:"division"`
	Title        string           `json:"title"`
	HiredAt      time.Time        `json:"hiredAt"`
	LeaveBalance *int             `json:"leaveBalance,omitempty"`
	BaseSalary   *decimal.Decimal `json:"baseSalary,omitempty"`
}
