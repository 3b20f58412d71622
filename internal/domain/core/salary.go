package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	baseSalaryAnchor = decimal.NewFromInt(4_000_000)

	managerFactor   = decimal.RequireFromString("2.5")
	hrFactor        = decimal.RequireFromString("1.8")
	financeFactor   = decimal.RequireFromString("1.2")
	marketingFactor = decimal.RequireFromString("1.1")
)

// RoleFactor is case-insensitive; unknown roles earn the staff factor.
func RoleFactor(role Role) decimal.Decimal {
	switch strings.ToLower(string(role)) {
	case string(RoleManager), "manajer":
		return managerFactor
	case string(RoleHR):
		return hrFactor
	default:
		return decimal.NewFromInt(1)
	}
}

// DivisionFactor is case-sensitive; unknown divisions get factor 1.
func DivisionFactor(division Division) decimal.Decimal {
	switch division {
	case DivisionFinance, "Keuangan":
		return financeFactor
	case DivisionMarketing:
		return marketingFactor
	default:
		return decimal.NewFromInt(1)
	}
}

func BaseSalary(role Role, division Division) decimal.Decimal {
	return baseSalaryAnchor.Mul(RoleFactor(role)).Mul(DivisionFactor(division))
}
