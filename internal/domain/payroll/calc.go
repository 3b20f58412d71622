package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Breakdown struct {
	EmployeeID           string          `json:"employeeId"`
	Month                time.Month      `json:"month"`
	Year                 int             `json:"year"`
	Base                 decimal.Decimal `json:"base"`
	WorkYears            int             `json:"workYears"`
	ExperienceMultiplier decimal.Decimal `json:"experienceMultiplier"`
	PresentDays          int             `json:"presentDays"`
	AttendanceBonus      decimal.Decimal `json:"attendanceBonus"`
	Total                decimal.Decimal `json:"total"`
}

// ExperienceMultiplier is 1 plus 5% per completed year, capped at 1.5.
func ExperienceMultiplier(workYears int) decimal.Decimal {
	if workYears < 0 {
		workYears = 0
	}
	raise := ExperienceStep.Mul(decimal.NewFromInt(int64(workYears)))
	if raise.GreaterThan(ExperienceCap) {
		raise = ExperienceCap
	}
	return decimal.NewFromInt(1).Add(raise)
}

// ComputeMonthly returns base × experience multiplier plus the attendance
// bonus for presentDays.
func ComputeMonthly(base decimal.Decimal, workYears, presentDays int) Breakdown {
	multiplier := ExperienceMultiplier(workYears)
	bonus := AttendanceBonusPerDay.Mul(decimal.NewFromInt(int64(presentDays)))
	return Breakdown{
		Base:                 base,
		WorkYears:            max(workYears, 0),
		ExperienceMultiplier: multiplier,
		PresentDays:          presentDays,
		AttendanceBonus:      bonus,
		Total:                base.Mul(multiplier).Add(bonus),
	}
}
