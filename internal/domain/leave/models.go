package leave

import (
	"time"

	"hrdesk/internal/domain/core"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

type Request struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Reason     string    `json:"reason"`
	Purpose    string    `json:"purpose"`
	Status     Status    `json:"status"`
	ApproverID string    `json:"approverId,omitempty"`
	DecidedAt  time.Time `json:"decidedAt,omitzero"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Days is the inclusive calendar-day length of the request.
func (r Request) Days() int {
	days, err := CalculateDays(r.StartDate, r.EndDate)
	if err != nil {
		return 0
	}
	return days
}

// FormattedRange renders the period as "dd/mm/yyyy - dd/mm/yyyy".
func (r Request) FormattedRange() string {
	return r.StartDate.Format("02/01/2006") + " - " + r.EndDate.Format("02/01/2006")
}

type Filter struct {
	EmployeeID string
	Division   core.Division
	Statuses   []Status
}

type Stats struct {
	Pending             int     `json:"pending"`
	Approved            int     `json:"approved"`
	Rejected            int     `json:"rejected"`
	AverageApprovedDays float64 `json:"averageApprovedDays"`
}

type SubmitInput struct {
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Purpose   string
}
