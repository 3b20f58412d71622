package notifications

const (
	TypeLeaveSubmitted   = "leave_submitted"
	TypeLeaveApproved    = "leave_approved"
	TypeLeaveRejected    = "leave_rejected"
	TypeMeetingScheduled = "meeting_scheduled"
	TypePasswordReset    = "password_reset"
	TypeAttendanceMissed = "attendance_missed"
)
