package core

import (
	"testing"
	"time"
)

func sampleEmployee() Employee {
	emp := Employee{
		ID:           "andi@example.com",
		Name:         "Andi",
		Password:     "secret",
		Role:         RoleStaff,
		Division:     DivisionMarketing,
		Title:        "Staff Marketing",
		HiredAt:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		LeaveBalance: 12,
	}
	emp.RecomputeBaseSalary()
	return emp
}

func TestFilterEmployeeFieldsHR(t *testing.T) {
	profile := FilterEmployeeFields(sampleEmployee(), RoleHR, false, false)

	if profile.BaseSalary == nil || profile.LeaveBalance == nil {
		t.Fatal("HR should see salary and balance")
	}
}

func TestFilterEmployeeFieldsManagerSameDivision(t *testing.T) {
	profile := FilterEmployeeFields(sampleEmployee(), RoleManager, false, true)

	if profile.BaseSalary == nil || profile.LeaveBalance == nil {
		t.Fatal("manager should see salary of own division")
	}
}

func TestFilterEmployeeFieldsManagerOtherDivision(t *testing.T) {
	profile := FilterEmployeeFields(sampleEmployee(), RoleManager, false, false)

	if profile.BaseSalary != nil || profile.LeaveBalance != nil {
		t.Fatal("manager should not see salary of another division")
	}
}

func TestFilterEmployeeFieldsEmployeeSelf(t *testing.T) {
	profile := FilterEmployeeFields(sampleEmployee(), RoleStaff, true, true)

	if profile.BaseSalary == nil || *profile.LeaveBalance != 12 {
		t.Fatal("employee should see own salary and balance")
	}
}

func TestFilterEmployeeFieldsEmployeeOther(t *testing.T) {
	profile := FilterEmployeeFields(sampleEmployee(), RoleStaff, false, true)

	if profile.BaseSalary != nil || profile.LeaveBalance != nil {
		t.Fatal("employee should not see a colleague's salary")
	}
	if profile.Name != "Andi" {
		t.Fatalf("expected public fields to remain, got %q", profile.Name)
	}
}
