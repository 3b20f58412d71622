package reports

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAttendancePercentage(t *testing.T) {
	if got := AttendancePercentage(0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := AttendancePercentage(11); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
	if got := AttendancePercentage(22); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
	if got := RoundedPercentage(7); got != 32 {
		t.Fatalf("expected 32, got %v", got)
	}
}

func TestAverageAttendance(t *testing.T) {
	if got := AverageAttendance(nil); got != 0 {
		t.Fatalf("expected 0 for empty set, got %v", got)
	}
	if got := AverageAttendance([]int{10, 20, 0}); got != 10 {
		t.Fatalf("expected 10, got %v", got)
	}
}

func TestEmployeeDashboard(t *testing.T) {
	payload := EmployeeDashboard(11, 9, decimal.NewFromInt(4_950_000), 2)
	if payload["presentDays"].(int) != 11 {
		t.Fatal("unexpected present days")
	}
	if payload["attendancePercentage"].(float64) != 50 {
		t.Fatal("unexpected attendance percentage")
	}
	if payload["leaveBalance"].(int) != 9 {
		t.Fatal("unexpected leave balance")
	}
	if !payload["monthlySalary"].(decimal.Decimal).Equal(decimal.NewFromInt(4_950_000)) {
		t.Fatal("unexpected monthly salary")
	}
}

func TestManagerDashboard(t *testing.T) {
	payload := ManagerDashboard(3, 1, 2, 6.666)
	if payload["teamSize"].(int) != 3 {
		t.Fatal("unexpected team size")
	}
	if payload["pendingApprovals"].(int) != 1 {
		t.Fatal("unexpected approvals count")
	}
	if payload["averageAttendance"].(float64) != 6.67 {
		t.Fatal("unexpected average attendance")
	}
}

func TestHRDashboard(t *testing.T) {
	payload := HRDashboard(6, 2, decimal.NewFromInt(100), 5)
	if payload["headcount"].(int) != 6 {
		t.Fatal("unexpected headcount")
	}
	if payload["leavePending"].(int) != 2 {
		t.Fatal("unexpected leave pending")
	}
}

func TestClassifyAttendanceRate(t *testing.T) {
	cases := []struct {
		rate float64
		want string
	}{
		{100, HealthGood},
		{80, HealthGood},
		{79.99, HealthNeedsImprovement},
		{60, HealthNeedsImprovement},
		{59.9, HealthLow},
		{0, HealthLow},
	}
	for _, tc := range cases {
		if got := ClassifyAttendanceRate(tc.rate); got != tc.want {
			t.Fatalf("rate %.2f: expected %s, got %s", tc.rate, tc.want, got)
		}
	}
}
