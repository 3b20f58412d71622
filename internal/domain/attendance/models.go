package attendance

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPresent        Status = "Present"
	StatusExcusedAbsence Status = "ExcusedAbsence"
	StatusSick           Status = "Sick"
	StatusOvertime       Status = "Overtime"
)

var Statuses = []Status{StatusPresent, StatusExcusedAbsence, StatusSick, StatusOvertime}

// ParseStatus accepts the canonical names case-insensitively as well as the
// legacy labels Hadir, Izin, Sakit and Lembur.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "present", "hadir":
		return StatusPresent, nil
	case "excusedabsence", "excused_absence", "excused", "izin":
		return StatusExcusedAbsence, nil
	case "sick", "sakit":
		return StatusSick, nil
	case "overtime", "lembur":
		return StatusOvertime, nil
	}
	return "", ErrInvalidStatus
}

type Record struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Date       time.Time `json:"date"`
	Status     Status    `json:"status"`
	ApprovedBy string    `json:"approvedBy,omitempty"`
	Note       string    `json:"note,omitempty"`
}

// Breakdown counts one employee's records per status within a month.
type Breakdown struct {
	Present        int `json:"present"`
	ExcusedAbsence int `json:"excusedAbsence"`
	Sick           int `json:"sick"`
	Overtime       int `json:"overtime"`
}

func (b *Breakdown) Add(status Status) {
	switch status {
	case StatusPresent:
		b.Present++
	case StatusExcusedAbsence:
		b.ExcusedAbsence++
	case StatusSick:
		b.Sick++
	case StatusOvertime:
		b.Overtime++
	}
}

func (b Breakdown) Count(status Status) int {
	switch status {
	case StatusPresent:
		return b.Present
	case StatusExcusedAbsence:
		return b.ExcusedAbsence
	case StatusSick:
		return b.Sick
	case StatusOvertime:
		return b.Overtime
	}
	return 0
}

func (b Breakdown) Total() int {
	return b.Present + b.ExcusedAbsence + b.Sick + b.Overtime
}
