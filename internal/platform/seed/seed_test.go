package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/platform/seed"
	"hrdesk/internal/store"
)

// Wednesday.
var now = time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

func TestLoadEmbeddedFixture(t *testing.T) {
	f, err := seed.Load("")
	require.NoError(t, err)
	assert.Len(t, f.Employees, 6)
	assert.Equal(t, 10, f.Attendance.Days)
	assert.Len(t, f.Meetings, 2)
	assert.Len(t, f.Leave, 3)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := seed.Parse([]byte("employees: [\n"))
	require.Error(t, err)
}

func TestDemoPopulatesStore(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	require.NoError(t, seed.Demo(ctx, s, now))

	assert.Len(t, s.ListEmployees(ctx), 6)

	mgr, ok := s.GetEmployee(ctx, "manajer@gawe.com")
	require.True(t, ok)
	assert.Equal(t, core.RoleManager, mgr.Role)
	assert.True(t, mgr.BaseSalary.Equal(decimal.NewFromInt(12_000_000)), mgr.BaseSalary.String())
	assert.Equal(t, 12, mgr.LeaveBalance)

	// 10 days back from a Wednesday covers 8 weekdays.
	assert.Len(t, s.ListAttendance(ctx, "pegawai@gawe.com"), 8)
	assert.Empty(t, s.ListAttendance(ctx, "kepala.marketing@gawe.com"))

	todayRec, ok := s.FindAttendance(ctx, "staff.hr@gawe.com", now)
	require.True(t, ok)
	assert.Equal(t, attendance.StatusOvertime, todayRec.Status)

	meetings := s.ListMeetings(ctx)
	require.Len(t, meetings, 2)

	pending := s.PendingLeaveByDivision(ctx, core.DivisionMarketing)
	require.Len(t, pending, 1)
	assert.Equal(t, 3, pending[0].Days())

	approved := s.ListLeaveRequests(ctx, leave.Filter{EmployeeID: "staff.keuangan@gawe.com"})
	require.Len(t, approved, 1)
	assert.Equal(t, leave.StatusApproved, approved[0].Status)
	assert.Equal(t, "hr@gawe.com", approved[0].ApproverID)

	fin, _ := s.GetEmployee(ctx, "staff.keuangan@gawe.com")
	assert.Equal(t, 12, fin.LeaveBalance)
}

func TestApplyKeepsExistingEmployees(t *testing.T) {
	ctx := context.Background()
	s := store.New()
	require.NoError(t, s.CreateEmployee(ctx, core.Employee{
		ID: "hr@gawe.com", Name: "Someone Else", Password: "x",
		Role: core.RoleHR, Division: core.DivisionHR,
	}))

	require.NoError(t, seed.Demo(ctx, s, now))

	emp, _ := s.GetEmployee(ctx, "hr@gawe.com")
	assert.Equal(t, "Someone Else", emp.Name)
}

func TestApplyRejectsUnknownRole(t *testing.T) {
	f := seed.Fixture{Employees: []seed.EmployeeFixture{{ID: "a", Name: "A", Role: "intern", Division: "HR"}}}
	err := seed.Apply(context.Background(), store.New(), f, now)
	require.ErrorIs(t, err, core.ErrInvalidRole)
}
