package reports_test

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
	"hrdesk/internal/domain/meeting"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/domain/reports"
	"hrdesk/internal/store"
)

var now = time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*reports.Service, *store.Store) {
	t.Helper()
	st := store.New()
	ctx := context.Background()
	for _, emp := range []core.Employee{
		{ID: "andi", Name: "Andi", Role: core.RoleStaff, Division: core.DivisionMarketing},
		{ID: "dedi", Name: "Dedi", Role: core.RoleManager, Division: core.DivisionMarketing},
		{ID: "gita", Name: "Gita", Role: core.RoleStaff, Division: core.DivisionMarketing},
		{ID: "budi", Name: "Budi", Role: core.RoleHR, Division: core.DivisionHR},
	} {
		emp.HiredAt = now
		require.NoError(t, st.CreateEmployee(ctx, emp))
	}
	presence := map[string]int{"andi": 20, "dedi": 5, "gita": 7}
	for id, days := range presence {
		for i := 0; i < days; i++ {
			_, err := st.RecordAttendance(ctx, attendance.Record{EmployeeID: id, Date: now.AddDate(0, 0, -i), Status: attendance.StatusPresent})
			require.NoError(t, err)
		}
	}
	_, err := st.RecordAttendance(ctx, attendance.Record{EmployeeID: "budi", Date: now, Status: attendance.StatusSick})
	require.NoError(t, err)

	clock := core.FixedClock{At: now}
	return reports.NewService(st, payroll.NewService(st, clock, nil), clock), st
}

func TestTeamOverviewExcludesManager(t *testing.T) {
	svc, st := setup(t)
	ctx := context.Background()
	_, err := st.CreateLeaveRequest(ctx, leave.Request{EmployeeID: "andi", StartDate: now, EndDate: now, Purpose: "x"})
	require.NoError(t, err)
	_, err = st.CreateMeeting(ctx, meeting.Meeting{Name: "Sync", Division: core.DivisionMarketing, Start: now, End: now.Add(time.Hour)})
	require.NoError(t, err)

	manager, _ := st.GetEmployee(ctx, "dedi")
	team := svc.TeamOverview(ctx, manager)

	require.Equal(t, 2, team.TeamSize)
	ids := []string{team.Members[0].ID, team.Members[1].ID}
	assert.ElementsMatch(t, []string{"andi", "gita"}, ids)
	for _, m := range team.Members {
		if m.ID == "andi" {
			assert.Equal(t, 91, m.Percentage)
			assert.True(t, m.MonthlySalary.Equal(decimal.NewFromInt(5_400_000)), "got %s", m.MonthlySalary)
		}
	}
	assert.Len(t, team.PendingLeave, 1)
	assert.Len(t, team.Meetings, 1)
	assert.InDelta(t, 13.5, team.AverageAttendance, 0.0001)
	assert.True(t, team.TotalSalary.Equal(decimal.NewFromInt(5_400_000+4_750_000)), "got %s", team.TotalSalary)
}

func TestCompanyOverview(t *testing.T) {
	svc, _ := setup(t)

	overview := svc.CompanyOverview(context.Background())
	assert.Equal(t, 4, overview.Headcount)
	assert.Equal(t, 3, overview.HeadcountByDivision[core.DivisionMarketing])
	assert.Equal(t, 2, overview.HeadcountByRole[core.RoleStaff])
	assert.Equal(t, 3, overview.ActiveEmployees)
	assert.Len(t, overview.LowAttendance, 3)
	require.Len(t, overview.HighPerformers, 1)
	assert.Equal(t, "andi", overview.HighPerformers[0].ID)
	assert.InDelta(t, 8.0, overview.AverageAttendance, 0.0001)
	assert.InDelta(t, 36.36, overview.AttendanceRate, 0.001)
	assert.Equal(t, reports.HealthLow, overview.AttendanceHealth)

	var sum decimal.Decimal
	for _, v := range overview.PayrollByDivision {
		sum = sum.Add(v)
	}
	assert.True(t, sum.Equal(overview.TotalPayroll))
}

func TestStatusBreakdown(t *testing.T) {
	svc, _ := setup(t)

	report := svc.StatusBreakdown(context.Background(), time.January, 2024, "")
	require.Len(t, report.Rows, 4)
	for _, row := range report.Rows {
		if row.EmployeeID == "budi" {
			assert.Equal(t, 1, row.Sick)
			assert.Zero(t, row.Percentage)
		}
		if row.EmployeeID == "andi" {
			assert.Equal(t, 20, row.Present)
			assert.InDelta(t, 90.91, row.Percentage, 0.001)
		}
	}
	assert.Empty(t, svc.StatusBreakdown(context.Background(), time.February, 2024, "").Rows[0].Breakdown.Present)
}

func TestStatusBreakdownByDivision(t *testing.T) {
	svc, _ := setup(t)

	report := svc.StatusBreakdown(context.Background(), time.January, 2024, core.DivisionHR)
	assert.Equal(t, core.DivisionHR, report.Division)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "budi", report.Rows[0].EmployeeID)
	assert.Zero(t, report.AverageAttendance)

	assert.Empty(t, svc.StatusBreakdown(context.Background(), time.January, 2024, core.DivisionFinance).Rows)
}

func TestReportsInsideWriteScope(t *testing.T) {
	svc, st := setup(t)

	err := st.WithinReadWrite(context.Background(), func(ctx context.Context) error {
		_, err := st.RecordAttendance(ctx, attendance.Record{EmployeeID: "gita", Date: now.AddDate(0, 0, -10), Status: attendance.StatusPresent})
		if err != nil {
			return err
		}
		overview := svc.CompanyOverview(ctx)
		assert.Equal(t, 4, overview.Headcount)
		assert.InDelta(t, 8.25, overview.AverageAttendance, 0.0001)
		return nil
	})
	require.NoError(t, err)
}

func TestDashboardPerRole(t *testing.T) {
	svc, st := setup(t)
	ctx := context.Background()

	andi, _ := st.GetEmployee(ctx, "andi")
	staff := svc.Dashboard(ctx, andi)
	assert.Equal(t, 20, staff["presentDays"])
	assert.Equal(t, 12, staff["leaveBalance"])

	dedi, _ := st.GetEmployee(ctx, "dedi")
	manager := svc.Dashboard(ctx, dedi)
	assert.Equal(t, 2, manager["teamSize"])

	budi, _ := st.GetEmployee(ctx, "budi")
	hr := svc.Dashboard(ctx, budi)
	assert.Equal(t, 4, hr["headcount"])
}
