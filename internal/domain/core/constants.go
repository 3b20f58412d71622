package core

import "strings"

const (
	DefaultLeaveBalance = 12
	DefaultPassword     = "password123"
)

// ParseRole is case-insensitive and also accepts the legacy role names.
func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "staff", "employee", "pegawai":
		return RoleStaff, nil
	case "hr", "hrd":
		return RoleHR, nil
	case "manager", "manajer":
		return RoleManager, nil
	}
	return "", ErrInvalidRole
}

// ParseDivision matches division names exactly. Keuangan is kept as an
// alias of Finance.
func ParseDivision(raw string) (Division, error) {
	switch Division(strings.TrimSpace(raw)) {
	case DivisionMarketing:
		return DivisionMarketing, nil
	case DivisionHR:
		return DivisionHR, nil
	case DivisionFinance, "Keuangan":
		return DivisionFinance, nil
	}
	return "", ErrInvalidDivision
}
