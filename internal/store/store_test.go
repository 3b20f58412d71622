package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/meeting"
)

var now = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func newEmployee(id string, role core.Role, division core.Division) core.Employee {
	return core.Employee{
		ID:       id,
		Name:     id,
		Password: "pw",
		Role:     role,
		Division: division,
		Title:    "Title",
		HiredAt:  now,
	}
}

func seeded(t *testing.T) *Store {
	t.Helper()
	s := New()
	ctx := context.Background()
	require.NoError(t, s.CreateEmployee(ctx, newEmployee("andi", core.RoleStaff, core.DivisionMarketing)))
	require.NoError(t, s.CreateEmployee(ctx, newEmployee("dedi", core.RoleManager, core.DivisionMarketing)))
	require.NoError(t, s.CreateEmployee(ctx, newEmployee("fajar", core.RoleStaff, core.DivisionFinance)))
	return s
}

func TestCreateEmployeeDefaultsAndDerivedSalary(t *testing.T) {
	s := New()
	emp := newEmployee("cici", core.RoleManager, core.DivisionFinance)
	emp.BaseSalary = decimal.NewFromInt(1)

	require.NoError(t, s.CreateEmployee(context.Background(), emp))

	got, ok := s.GetEmployee(context.Background(), "cici")
	require.True(t, ok)
	assert.Equal(t, core.DefaultLeaveBalance, got.LeaveBalance)
	assert.True(t, decimal.NewFromInt(12_000_000).Equal(got.BaseSalary), "got %s", got.BaseSalary)
}

func TestCreateEmployeeDuplicateLeavesOriginal(t *testing.T) {
	s := seeded(t)
	dup := newEmployee("andi", core.RoleHR, core.DivisionHR)
	dup.Name = "Impostor"

	err := s.CreateEmployee(context.Background(), dup)
	require.ErrorIs(t, err, core.ErrDuplicateKey)

	got, _ := s.GetEmployee(context.Background(), "andi")
	assert.Equal(t, "andi", got.Name)
	assert.Equal(t, core.RoleStaff, got.Role)
	assert.Len(t, s.ListEmployees(context.Background()), 3)
}

func TestUpdateEmployeeRecomputesSalary(t *testing.T) {
	s := seeded(t)

	updated, err := s.UpdateEmployee(context.Background(), "andi", func(e *core.Employee) error {
		e.Role = core.RoleHR
		e.Division = core.DivisionFinance
		e.BaseSalary = decimal.Zero
		return nil
	})
	require.NoError(t, err)
	assert.True(t, core.BaseSalary(core.RoleHR, core.DivisionFinance).Equal(updated.BaseSalary))
}

func TestUpdateEmployeeErrorDiscardsChanges(t *testing.T) {
	s := seeded(t)

	_, err := s.UpdateEmployee(context.Background(), "andi", func(e *core.Employee) error {
		e.Name = "changed"
		return core.ErrWrongPassword
	})
	require.ErrorIs(t, err, core.ErrWrongPassword)

	got, _ := s.GetEmployee(context.Background(), "andi")
	assert.Equal(t, "andi", got.Name)

	_, err = s.UpdateEmployee(context.Background(), "nobody", func(*core.Employee) error { return nil })
	require.ErrorIs(t, err, core.ErrEmployeeNotFound)
}

func TestAttendanceCounts(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	for i, status := range []attendance.Status{attendance.StatusPresent, attendance.StatusPresent, attendance.StatusSick, attendance.StatusOvertime} {
		_, err := s.RecordAttendance(ctx, attendance.Record{EmployeeID: "andi", Date: now.AddDate(0, 0, -i), Status: status})
		require.NoError(t, err)
	}
	_, err := s.RecordAttendance(ctx, attendance.Record{EmployeeID: "andi", Date: now.AddDate(0, -1, 0), Status: attendance.StatusPresent})
	require.NoError(t, err)

	assert.Equal(t, 2, s.MonthlyPresentCount(ctx, "andi", time.January, 2024))
	assert.Equal(t, 1, s.CountAttendance(ctx, "andi", time.January, 2024, attendance.StatusSick))
	assert.Equal(t, attendance.Breakdown{Present: 2, Sick: 1, Overtime: 1}, s.AttendanceBreakdown(ctx, "andi", time.January, 2024))

	history := s.ListAttendance(ctx, "andi")
	require.Len(t, history, 5)
	assert.True(t, history[0].Date.Equal(now))
	assert.NotEmpty(t, history[0].ID)

	_, found := s.FindAttendance(ctx, "andi", now.Add(5*time.Hour))
	assert.True(t, found)
	_, found = s.FindAttendance(ctx, "fajar", now)
	assert.False(t, found)
}

func TestPendingLeaveByDivision(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	mustLeave := func(employeeID string, status leave.Status) leave.Request {
		req, err := s.CreateLeaveRequest(ctx, leave.Request{EmployeeID: employeeID, StartDate: now, EndDate: now, Purpose: "p", Status: status})
		require.NoError(t, err)
		return req
	}
	first := mustLeave("andi", leave.StatusPending)
	mustLeave("andi", leave.StatusApproved)
	mustLeave("fajar", leave.StatusPending)
	mustLeave("ghost", leave.StatusPending)
	second := mustLeave("dedi", leave.StatusPending)

	pending := s.PendingLeaveByDivision(ctx, core.DivisionMarketing)
	require.Len(t, pending, 2)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, second.ID, pending[1].ID)

	finance := s.ListLeaveRequests(ctx, leave.Filter{Division: core.DivisionFinance})
	require.Len(t, finance, 1)
	assert.Equal(t, "fajar", finance[0].EmployeeID)
}

func TestDecideLeaveRequest(t *testing.T) {
	s := seeded(t)
	ctx := context.Background()
	req, err := s.CreateLeaveRequest(ctx, leave.Request{
		EmployeeID: "andi",
		StartDate:  time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		Purpose:    "family",
	})
	require.NoError(t, err)

	decided, err := s.DecideLeaveRequest(ctx, req.ID, "dedi", true, now)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Status)
	assert.Equal(t, "dedi", decided.ApproverID)

	emp, _ := s.GetEmployee(ctx, "andi")
	assert.Equal(t, 9, emp.LeaveBalance)

	_, err = s.DecideLeaveRequest(ctx, req.ID, "dedi", false, now)
	require.ErrorIs(t, err, leave.ErrAlreadyDecided)

	_, err = s.DecideLeaveRequest(ctx, "missing", "dedi", true, now)
	require.ErrorIs(t, err, leave.ErrNotFound)
}

func TestMeetingsAreCopied(t *testing.T) {
	s := New()
	ctx := context.Background()
	created, err := s.CreateMeeting(ctx, meeting.Meeting{
		Name:              "Review",
		Division:          core.DivisionMarketing,
		Start:             now,
		End:               now.Add(time.Hour),
		RequiredDivisions: []core.Division{core.DivisionMarketing, core.DivisionHR},
	})
	require.NoError(t, err)
	created.RequiredDivisions[0] = "Tampered"

	today := s.TodaysMeetingsForDivision(ctx, core.DivisionHR, now.Add(2*time.Hour))
	require.Len(t, today, 1)
	assert.Equal(t, core.DivisionMarketing, today[0].RequiredDivisions[0])
	assert.Empty(t, s.TodaysMeetingsForDivision(ctx, core.DivisionFinance, now))
	assert.Empty(t, s.TodaysMeetingsForDivision(ctx, core.DivisionHR, now.AddDate(0, 0, 1)))
	assert.Len(t, s.MeetingsOwnedBy(ctx, core.DivisionMarketing), 1)
}

func TestScopesDoNotRelock(t *testing.T) {
	s := seeded(t)

	err := s.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		if _, ok := s.GetEmployee(ctx, "andi"); !ok {
			t.Fatal("expected employee inside scope")
		}
		return s.CreateEmployee(ctx, newEmployee("eka", core.RoleStaff, core.DivisionHR))
	})
	require.NoError(t, err)

	err = s.WithinReadOnly(context.Background(), func(ctx context.Context) error {
		return s.CreateEmployee(ctx, newEmployee("budi", core.RoleHR, core.DivisionHR))
	})
	require.ErrorIs(t, err, ErrReadOnlyScope)
	_, ok := s.GetEmployee(context.Background(), "budi")
	assert.False(t, ok)
}

func TestConcurrentCreateEmployeeAdmitsOne(t *testing.T) {
	s := New()
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.CreateEmployee(context.Background(), newEmployee("same", core.RoleStaff, core.DivisionHR)); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, success)
}
