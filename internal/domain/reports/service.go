package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
)

type Service struct {
	store  StoreAPI
	salary SalaryCalculator
	clock  core.Clock
}

func NewService(store StoreAPI, salary SalaryCalculator, clock core.Clock) *Service {
	return &Service{store: store, salary: salary, clock: clock}
}

// snapshot runs fn under one read scope so an aggregate never mixes
// states from before and after a concurrent write.
func (s *Service) snapshot(ctx context.Context, fn func(ctx context.Context)) {
	_ = s.store.WithinReadOnly(ctx, func(ctx context.Context) error {
		fn(ctx)
		return nil
	})
}

// Dashboard returns the summary matching the viewer's role.
func (s *Service) Dashboard(ctx context.Context, viewer core.Employee) map[string]any {
	var out map[string]any
	s.snapshot(ctx, func(ctx context.Context) {
		now := s.clock.Now()
		switch viewer.Role {
		case core.RoleManager:
			team := s.TeamOverview(ctx, viewer)
			out = ManagerDashboard(team.TeamSize, len(team.PendingLeave), len(team.Meetings), team.AverageAttendance)
		case core.RoleHR:
			employees := s.store.ListEmployees(ctx)
			pending := s.store.ListLeaveRequests(ctx, leave.Filter{Statuses: []leave.Status{leave.StatusPending}})
			_, total := s.PayrollByDivision(ctx)
			out = HRDashboard(len(employees), len(pending), total, s.averageAttendance(ctx, employees, now))
		default:
			present := s.store.MonthlyPresentCount(ctx, viewer.ID, now.Month(), now.Year())
			salary := s.salary.MonthlySalary(ctx, viewer, now)
			meetings := s.store.TodaysMeetingsForDivision(ctx, viewer.Division, now)
			out = EmployeeDashboard(present, viewer.LeaveBalance, salary.Total, len(meetings))
		}
	})
	return out
}

// TeamOverview summarizes the manager's division, excluding the manager.
func (s *Service) TeamOverview(ctx context.Context, manager core.Employee) TeamOverview {
	var out TeamOverview
	s.snapshot(ctx, func(ctx context.Context) {
		out = s.teamOverview(ctx, manager)
	})
	return out
}

func (s *Service) teamOverview(ctx context.Context, manager core.Employee) TeamOverview {
	now := s.clock.Now()
	out := TeamOverview{
		Division:     manager.Division,
		Members:      []TeamMember{},
		TotalSalary:  decimal.Zero,
		PendingLeave: s.store.PendingLeaveByDivision(ctx, manager.Division),
		Meetings:     s.store.MeetingsOwnedBy(ctx, manager.Division),
	}

	var presentDays []int
	for _, emp := range s.store.ListEmployeesByDivision(ctx, manager.Division) {
		if emp.ID == manager.ID {
			continue
		}
		present := s.store.MonthlyPresentCount(ctx, emp.ID, now.Month(), now.Year())
		salary := s.salary.MonthlySalary(ctx, emp, now)
		out.Members = append(out.Members, TeamMember{
			ID:            emp.ID,
			Name:          emp.Name,
			Title:         emp.Title,
			PresentDays:   present,
			Percentage:    RoundedPercentage(present),
			MonthlySalary: salary.Total,
			LeaveBalance:  emp.LeaveBalance,
		})
		out.TotalSalary = out.TotalSalary.Add(salary.Total)
		presentDays = append(presentDays, present)
	}
	out.TeamSize = len(out.Members)
	out.AverageAttendance = AverageAttendance(presentDays)
	return out
}

// PayrollByDivision sums current monthly salaries per division.
func (s *Service) PayrollByDivision(ctx context.Context) (map[core.Division]decimal.Decimal, decimal.Decimal) {
	now := s.clock.Now()
	byDivision := map[core.Division]decimal.Decimal{}
	total := decimal.Zero
	s.snapshot(ctx, func(ctx context.Context) {
		for _, emp := range s.store.ListEmployees(ctx) {
			salary := s.salary.MonthlySalary(ctx, emp, now).Total
			byDivision[emp.Division] = byDivision[emp.Division].Add(salary)
			total = total.Add(salary)
		}
	})
	return byDivision, total
}

// StatusBreakdown counts every status for each employee in the given month.
// An empty division reports the whole company.
func (s *Service) StatusBreakdown(ctx context.Context, month time.Month, year int, division core.Division) AttendanceReport {
	report := AttendanceReport{Month: month, Year: year, Division: division, Rows: []StatusBreakdown{}}
	s.snapshot(ctx, func(ctx context.Context) {
		employees := s.store.ListEmployees(ctx)
		if division != "" {
			employees = s.store.ListEmployeesByDivision(ctx, division)
		}
		var presentDays []int
		for _, emp := range employees {
			b := s.store.AttendanceBreakdown(ctx, emp.ID, month, year)
			report.Rows = append(report.Rows, StatusBreakdown{
				EmployeeID: emp.ID,
				Name:       emp.Name,
				Division:   emp.Division,
				Breakdown:  b,
				Percentage: round2(AttendancePercentage(b.Present)),
			})
			presentDays = append(presentDays, b.Present)
		}
		report.AverageAttendance = AverageAttendance(presentDays)
	})
	return report
}

// CompanyOverview is the HR analytics view for the current month.
func (s *Service) CompanyOverview(ctx context.Context) CompanyOverview {
	var out CompanyOverview
	s.snapshot(ctx, func(ctx context.Context) {
		out = s.companyOverview(ctx)
	})
	return out
}

func (s *Service) companyOverview(ctx context.Context) CompanyOverview {
	now := s.clock.Now()
	employees := s.store.ListEmployees(ctx)
	out := CompanyOverview{
		Month:               now.Month(),
		Year:                now.Year(),
		Headcount:           len(employees),
		HeadcountByDivision: map[core.Division]int{},
		HeadcountByRole:     map[core.Role]int{},
		LowAttendance:       []EmployeeSummary{},
		HighPerformers:      []EmployeeSummary{},
	}

	var presentDays []int
	for _, emp := range employees {
		out.HeadcountByDivision[emp.Division]++
		out.HeadcountByRole[emp.Role]++

		present := s.store.MonthlyPresentCount(ctx, emp.ID, now.Month(), now.Year())
		presentDays = append(presentDays, present)
		summary := EmployeeSummary{ID: emp.ID, Name: emp.Name, Division: emp.Division, PresentDays: present}
		if present > 0 {
			out.ActiveEmployees++
		}
		if present < LowAttendanceThreshold {
			out.LowAttendance = append(out.LowAttendance, summary)
		}
		if present >= HighPerformerThreshold {
			out.HighPerformers = append(out.HighPerformers, summary)
		}
	}
	out.AverageAttendance = round2(AverageAttendance(presentDays))
	out.AttendanceRate = round2(out.AverageAttendance / WorkingDaysPerMonth * 100)
	out.AttendanceHealth = ClassifyAttendanceRate(out.AttendanceRate)
	out.PayrollByDivision, out.TotalPayroll = s.PayrollByDivision(ctx)
	out.Leave = leave.Summarize(s.store.ListLeaveRequests(ctx, leave.Filter{}))
	return out
}

func (s *Service) averageAttendance(ctx context.Context, employees []core.Employee, now time.Time) float64 {
	presentDays := make([]int, 0, len(employees))
	for _, emp := range employees {
		presentDays = append(presentDays, s.store.MonthlyPresentCount(ctx, emp.ID, now.Month(), now.Year()))
	}
	return AverageAttendance(presentDays)
}
