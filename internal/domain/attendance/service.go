package attendance

import (
	"context"
	"strings"
	"time"

	"hrdesk/internal/domain/core"
)

type Service struct {
	store StoreAPI
	clock core.Clock
}

func NewService(store StoreAPI, clock core.Clock) *Service {
	return &Service{store: store, clock: clock}
}

// Submit records today's attendance for the employee.
func (s *Service) Submit(ctx context.Context, employeeID, status, note string) (Record, error) {
	return s.SubmitAt(ctx, employeeID, status, note, s.clock.Now())
}

// SubmitAt records attendance for the calendar day of date. A second
// submission for the same day is refused and nothing is written.
func (s *Service) SubmitAt(ctx context.Context, employeeID, status, note string, date time.Time) (Record, error) {
	parsed, err := ParseStatus(status)
	if err != nil {
		return Record{}, err
	}

	var created Record
	err = s.store.WithinReadWrite(ctx, func(ctx context.Context) error {
		if _, ok := s.store.GetEmployee(ctx, employeeID); !ok {
			return core.ErrEmployeeNotFound
		}
		if _, exists := s.store.FindAttendance(ctx, employeeID, date); exists {
			return ErrAlreadySubmitted
		}
		rec, err := s.store.RecordAttendance(ctx, Record{
			EmployeeID: employeeID,
			Date:       date,
			Status:     parsed,
			Note:       strings.TrimSpace(note),
		})
		if err != nil {
			return err
		}
		created = rec
		return nil
	})
	return created, err
}

// SubmittedToday reports whether the employee already has a record today.
func (s *Service) SubmittedToday(ctx context.Context, employeeID string) bool {
	_, ok := s.store.FindAttendance(ctx, employeeID, s.clock.Now())
	return ok
}

func (s *Service) History(ctx context.Context, employeeID string) []Record {
	return s.store.ListAttendance(ctx, employeeID)
}

// MonthlyBreakdown counts the employee's records for the current month.
func (s *Service) MonthlyBreakdown(ctx context.Context, employeeID string) (Breakdown, time.Time) {
	now := s.clock.Now()
	return s.store.AttendanceBreakdown(ctx, employeeID, now.Month(), now.Year()), now
}
