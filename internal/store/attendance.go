package store

import (
	"context"
	"slices"
	"sort"
	"time"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
)

// RecordAttendance appends rec unconditionally; the one-per-day rule lives
// in the attendance service.
func (s *Store) RecordAttendance(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return attendance.Record{}, err
	}
	defer unlock()

	if rec.ID == "" {
		rec.ID = s.newID()
	}
	s.attendance = append(s.attendance, rec)
	return rec, nil
}

func (s *Store) FindAttendance(ctx context.Context, employeeID string, day time.Time) (attendance.Record, bool) {
	defer s.rlock(ctx)()
	for _, rec := range s.attendance {
		if rec.EmployeeID == employeeID && core.SameDay(day, rec.Date) {
			return rec, true
		}
	}
	return attendance.Record{}, false
}

// ListAttendance returns the employee's history, newest first.
func (s *Store) ListAttendance(ctx context.Context, employeeID string) []attendance.Record {
	defer s.rlock(ctx)()
	var out []attendance.Record
	for _, rec := range s.attendance {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	slices.Reverse(out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// CountAttendance counts the employee's records with status in the given
// month.
func (s *Store) CountAttendance(ctx context.Context, employeeID string, month time.Month, year int, status attendance.Status) int {
	defer s.rlock(ctx)()
	count := 0
	for _, rec := range s.attendance {
		if rec.EmployeeID == employeeID && rec.Status == status && core.InMonth(rec.Date, month, year) {
			count++
		}
	}
	return count
}

func (s *Store) MonthlyPresentCount(ctx context.Context, employeeID string, month time.Month, year int) int {
	return s.CountAttendance(ctx, employeeID, month, year, attendance.StatusPresent)
}

func (s *Store) AttendanceBreakdown(ctx context.Context, employeeID string, month time.Month, year int) attendance.Breakdown {
	defer s.rlock(ctx)()
	var b attendance.Breakdown
	for _, rec := range s.attendance {
		if rec.EmployeeID == employeeID && core.InMonth(rec.Date, month, year) {
			b.Add(rec.Status)
		}
	}
	return b
}
