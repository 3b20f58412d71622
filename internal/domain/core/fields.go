package core

// FilterEmployeeFields builds the profile a viewer is allowed to see.
// HR and the employee themselves see everything; a manager sees salary and
// balance only for their own division.
func FilterEmployeeFields(emp Employee, viewerRole Role, isSelf, sameDivision bool) Profile {
	profile := Profile{
		ID:       emp.ID,
		Name:     emp.Name,
		Role:     emp.Role,
		Division: emp.Division,
		Title:    emp.Title,
		HiredAt:  emp.HiredAt,
	}

	if viewerRole == RoleHR || isSelf || (viewerRole == RoleManager && sameDivision) {
		balance := emp.LeaveBalance
		salary := emp.BaseSalary
		profile.LeaveBalance = &balance
		profile.BaseSalary = &salary
	}
	return profile
}
