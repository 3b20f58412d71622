package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/meeting"
)

type StatusBreakdown struct {
	EmployeeID string        `json:"employeeId"`
	Name       string        `json:"name"`
	Division   core.Division `json:"division"`
	attendance.Breakdown
	Percentage float64 `json:"percentage"`
}

type AttendanceReport struct {
	Month             time.Month        `json:"month"`
	Year              int               `json:"year"`
	Division          core.Division     `json:"division,omitempty"`
	Rows              []StatusBreakdown `json:"rows"`
	AverageAttendance float64           `json:"averageAttendance"`
}

type TeamMember struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Title         string          `json:"title"`
	PresentDays   int             `json:"presentDays"`
	Percentage    int             `json:"percentage"`
	MonthlySalary decimal.Decimal `json:"monthlySalary"`
	LeaveBalance  int             `json:"leaveBalance"`
}

type TeamOverview struct {
	Division          core.Division     `json:"division"`
	Members           []TeamMember      `json:"members"`
	TeamSize          int               `json:"teamSize"`
	PendingLeave      []leave.Request   `json:"pendingLeave"`
	Meetings          []meeting.Meeting `json:"meetings"`
	AverageAttendance float64           `json:"averageAttendance"`
	TotalSalary       decimal.Decimal   `json:"totalSalary"`
}

type EmployeeSummary struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Division    core.Division `json:"division"`
	PresentDays int           `json:"presentDays"`
}

type CompanyOverview struct {
	Month               time.Month                        `json:"month"`
	Year                int                               `json:"year"`
	Headcount           int                               `json:"headcount"`
	HeadcountByDivision map[core.Division]int             `json:"headcountByDivision"`
	HeadcountByRole     map[core.Role]int                 `json:"headcountByRole"`
	ActiveEmployees     int                               `json:"activeEmployees"`
	LowAttendance       []EmployeeSummary                 `json:"lowAttendance"`
	HighPerformers      []EmployeeSummary                 `json:"highPerformers"`
	AverageAttendance   float64                           `json:"averageAttendance"`
	AttendanceRate      float64                           `json:"attendanceRate"`
	AttendanceHealth    string                            `json:"attendanceHealth"`
	PayrollByDivision   map[core.Division]decimal.Decimal `json:"payrollByDivision"`
	TotalPayroll        decimal.Decimal                   `json:"totalPayroll"`
	Leave               leave.Stats                       `json:"leave"`
}
