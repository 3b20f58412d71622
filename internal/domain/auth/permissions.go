package auth

import (
	"context"
	"slices"

	"hrdesk/internal/domain/core"
)

const (
	PermEmployeesRead   = "employees.read"
	PermEmployeesWrite  = "employees.write"
	PermAttendanceWrite = "attendance.write"
	PermLeaveRead       = "leave.read"
	PermLeaveWrite      = "leave.write"
	PermLeaveApprove    = "leave.approve"
	PermMeetingsRead    = "meetings.read"
	PermMeetingsWrite   = "meetings.write"
	PermPayrollRead     = "payroll.read"
	PermPayrollAdmin    = "payroll.admin"
	PermReportsRead     = "reports.read"
	PermAuditRead       = "audit.read"
	PermJobsRun         = "jobs.run"
)

var DefaultPermissions = []string{
	PermEmployeesRead,
	PermEmployeesWrite,
	PermAttendanceWrite,
	PermLeaveRead,
	PermLeaveWrite,
	PermLeaveApprove,
	PermMeetingsRead,
	PermMeetingsWrite,
	PermPayrollRead,
	PermPayrollAdmin,
	PermReportsRead,
	PermAuditRead,
	PermJobsRun,
}

var RolePermissions = map[core.Role][]string{
	core.RoleStaff: {
		PermAttendanceWrite,
		PermLeaveRead,
		PermLeaveWrite,
		PermMeetingsRead,
		PermPayrollRead,
		PermReportsRead,
	},
	core.RoleManager: {
		PermEmployeesRead,
		PermAttendanceWrite,
		PermLeaveRead,
		PermLeaveWrite,
		PermLeaveApprove,
		PermMeetingsRead,
		PermMeetingsWrite,
		PermPayrollRead,
		PermReportsRead,
	},
	core.RoleHR: {
		PermEmployeesRead,
		PermEmployeesWrite,
		PermAttendanceWrite,
		PermLeaveRead,
		PermLeaveWrite,
		PermLeaveApprove,
		PermMeetingsRead,
		PermPayrollRead,
		PermPayrollAdmin,
		PermReportsRead,
		PermAuditRead,
		PermJobsRun,
	},
}

func HasPermission(role core.Role, permission string) bool {
	return slices.Contains(RolePermissions[role], permission)
}

// StaticPermissions resolves permissions from RolePermissions.
type StaticPermissions struct{}

func (StaticPermissions) HasPermission(_ context.Context, roleName, permission string) (bool, error) {
	return HasPermission(core.Role(roleName), permission), nil
}
