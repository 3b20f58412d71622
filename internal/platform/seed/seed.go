// Package seed loads demo records into the store.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/meeting"
)

//go:embed demo.yaml
var demoFixture []byte

type Fixture struct {
	Employees  []EmployeeFixture `yaml:"employees"`
	Attendance AttendanceFixture `yaml:"attendance"`
	Meetings   []MeetingFixture  `yaml:"meetings"`
	Leave      []LeaveFixture    `yaml:"leave"`
}

type EmployeeFixture struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Division string `yaml:"division"`
	Title    string `yaml:"title"`
}

// AttendanceFixture generates records for the last Days days (today
// included). An entry with Every > 0 uses Alternate on every Every-th day.
type AttendanceFixture struct {
	Days         int               `yaml:"days"`
	SkipWeekends bool              `yaml:"skip_weekends"`
	Entries      []AttendanceEntry `yaml:"entries"`
}

type AttendanceEntry struct {
	Employee  string `yaml:"employee"`
	Status    string `yaml:"status"`
	Every     int    `yaml:"every"`
	Alternate string `yaml:"alternate"`
}

// MeetingFixture starts DayOffset days from now. Without StartHour the
// meeting starts at the current time.
type MeetingFixture struct {
	Name          string   `yaml:"name"`
	Topic         string   `yaml:"topic"`
	Theme         string   `yaml:"theme"`
	Division      string   `yaml:"division"`
	Required      []string `yaml:"required"`
	Participants  string   `yaml:"participants"`
	Room          string   `yaml:"room"`
	DayOffset     int      `yaml:"day_offset"`
	StartHour     *int     `yaml:"start_hour"`
	DurationHours int      `yaml:"duration_hours"`
}

type LeaveFixture struct {
	Employee    string `yaml:"employee"`
	StartOffset int    `yaml:"start_offset"`
	EndOffset   int    `yaml:"end_offset"`
	Reason      string `yaml:"reason"`
	Purpose     string `yaml:"purpose"`
	Status      string `yaml:"status"`
	Approver    string `yaml:"approver"`
}

// Target is the subset of the store seeding writes to.
type Target interface {
	CreateEmployee(ctx context.Context, emp core.Employee) error
	RecordAttendance(ctx context.Context, rec attendance.Record) (attendance.Record, error)
	CreateMeeting(ctx context.Context, m meeting.Meeting) (meeting.Meeting, error)
	CreateLeaveRequest(ctx context.Context, req leave.Request) (leave.Request, error)
}

func Parse(data []byte) (Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("seed: parse fixture: %w", err)
	}
	return f, nil
}

// Load reads the fixture at path, or the embedded demo fixture when path
// is empty.
func Load(path string) (Fixture, error) {
	if path == "" {
		return Parse(demoFixture)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("seed: read fixture: %w", err)
	}
	return Parse(data)
}

// Apply writes the fixture relative to now. Employees already present are
// left alone. Approved leave is stored as decided without touching the
// balance.
func Apply(ctx context.Context, target Target, f Fixture, now time.Time) error {
	for _, e := range f.Employees {
		role, err := core.ParseRole(e.Role)
		if err != nil {
			return fmt.Errorf("seed: employee %s: %w", e.ID, err)
		}
		division, err := core.ParseDivision(e.Division)
		if err != nil {
			return fmt.Errorf("seed: employee %s: %w", e.ID, err)
		}
		err = target.CreateEmployee(ctx, core.Employee{
			ID:           e.ID,
			Name:         e.Name,
			Password:     e.Password,
			Role:         role,
			Division:     division,
			Title:        e.Title,
			HiredAt:      now,
			LeaveBalance: core.DefaultLeaveBalance,
		})
		if err != nil && !errors.Is(err, core.ErrDuplicateKey) {
			return fmt.Errorf("seed: employee %s: %w", e.ID, err)
		}
	}

	if err := applyAttendance(ctx, target, f.Attendance, now); err != nil {
		return err
	}

	for _, m := range f.Meetings {
		start := now.AddDate(0, 0, m.DayOffset)
		if m.StartHour != nil {
			y, mo, d := start.Date()
			start = time.Date(y, mo, d, *m.StartHour, 0, 0, 0, now.Location())
		}
		required := make([]core.Division, 0, len(m.Required))
		for _, r := range m.Required {
			required = append(required, core.Division(r))
		}
		_, err := target.CreateMeeting(ctx, meeting.Meeting{
			Name:              m.Name,
			Topic:             m.Topic,
			Theme:             m.Theme,
			Division:          core.Division(m.Division),
			Start:             start,
			End:               start.Add(time.Duration(m.DurationHours) * time.Hour),
			RequiredDivisions: required,
			Participants:      m.Participants,
			Room:              m.Room,
		})
		if err != nil {
			return fmt.Errorf("seed: meeting %s: %w", m.Name, err)
		}
	}

	today := core.StartOfDay(now)
	for _, l := range f.Leave {
		req := leave.Request{
			EmployeeID: l.Employee,
			StartDate:  today.AddDate(0, 0, l.StartOffset),
			EndDate:    today.AddDate(0, 0, l.EndOffset),
			Reason:     l.Reason,
			Purpose:    l.Purpose,
			Status:     leave.Status(l.Status),
			CreatedAt:  now,
		}
		if req.Status == "" {
			req.Status = leave.StatusPending
		}
		if req.Status != leave.StatusPending {
			req.ApproverID = l.Approver
			req.DecidedAt = now
		}
		if _, err := target.CreateLeaveRequest(ctx, req); err != nil {
			return fmt.Errorf("seed: leave for %s: %w", l.Employee, err)
		}
	}
	return nil
}

// Demo applies the embedded fixture.
func Demo(ctx context.Context, target Target, now time.Time) error {
	f, err := Parse(demoFixture)
	if err != nil {
		return err
	}
	return Apply(ctx, target, f, now)
}

func applyAttendance(ctx context.Context, target Target, f AttendanceFixture, now time.Time) error {
	for i := 0; i < f.Days; i++ {
		day := now.AddDate(0, 0, -i)
		if f.SkipWeekends && leave.IsWeekend(day) {
			continue
		}
		for _, entry := range f.Entries {
			raw := entry.Status
			if entry.Every > 0 && i%entry.Every == 0 && entry.Alternate != "" {
				raw = entry.Alternate
			}
			status, err := attendance.ParseStatus(raw)
			if err != nil {
				return fmt.Errorf("seed: attendance for %s: %w", entry.Employee, err)
			}
			if _, err := target.RecordAttendance(ctx, attendance.Record{
				EmployeeID: entry.Employee,
				Date:       day,
				Status:     status,
			}); err != nil {
				return fmt.Errorf("seed: attendance for %s: %w", entry.Employee, err)
			}
		}
	}
	return nil
}
