package reports

import (
	"math"

	"github.com/shopspring/decimal"
)

// WorkingDaysPerMonth is the fixed denominator for attendance rates.
const WorkingDaysPerMonth = 22

const (
	LowAttendanceThreshold = 15
	HighPerformerThreshold = 20
)

const (
	HealthGood             = "good"
	HealthNeedsImprovement = "needs_improvement"
	HealthLow              = "low"
)

// ClassifyAttendanceRate grades a company attendance rate in percent:
// 80 and above is good, 60 and above needs improvement, anything less is low.
func ClassifyAttendanceRate(rate float64) string {
	switch {
	case rate >= 80:
		return HealthGood
	case rate >= 60:
		return HealthNeedsImprovement
	default:
		return HealthLow
	}
}

// AttendancePercentage is presentDays over a 22-day month, in percent.
func AttendancePercentage(presentDays int) float64 {
	if presentDays <= 0 {
		return 0
	}
	return float64(presentDays) / WorkingDaysPerMonth * 100
}

// RoundedPercentage rounds AttendancePercentage half away from zero.
func RoundedPercentage(presentDays int) int {
	return int(math.Round(AttendancePercentage(presentDays)))
}

// AverageAttendance is the mean of the present-day counts, 0 when empty.
func AverageAttendance(presentDays []int) float64 {
	if len(presentDays) == 0 {
		return 0
	}
	total := 0
	for _, d := range presentDays {
		total += d
	}
	return float64(total) / float64(len(presentDays))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func EmployeeDashboard(presentDays, leaveBalance int, monthlySalary decimal.Decimal, meetingsToday int) map[string]any {
	return map[string]any{
		"presentDays":          presentDays,
		"attendancePercentage": round2(AttendancePercentage(presentDays)),
		"leaveBalance":         leaveBalance,
		"monthlySalary":        monthlySalary,
		"meetingsToday":        meetingsToday,
	}
}

func ManagerDashboard(teamSize, pendingApprovals, meetingsOwned int, averageAttendance float64) map[string]any {
	return map[string]any{
		"teamSize":          teamSize,
		"pendingApprovals":  pendingApprovals,
		"meetingsOwned":     meetingsOwned,
		"averageAttendance": round2(averageAttendance),
	}
}

func HRDashboard(headcount, leavePending int, payrollTotal decimal.Decimal, averageAttendance float64) map[string]any {
	return map[string]any{
		"headcount":         headcount,
		"leavePending":      leavePending,
		"payrollTotal":      payrollTotal,
		"averageAttendance": round2(averageAttendance),
	}
}
