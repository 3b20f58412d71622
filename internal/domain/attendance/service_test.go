package attendance_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/store"
)

var today = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*attendance.Service, *store.Store) {
	t.Helper()
	st := store.New()
	require.NoError(t, st.CreateEmployee(context.Background(), core.Employee{
		ID: "andi", Name: "Andi", Role: core.RoleStaff, Division: core.DivisionMarketing, HiredAt: today,
	}))
	return attendance.NewService(st, core.FixedClock{At: today}), st
}

func TestSubmitOncePerDay(t *testing.T) {
	svc, st := setup(t)
	ctx := context.Background()

	rec, err := svc.Submit(ctx, "andi", "Hadir", " on time ")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, "on time", rec.Note)
	assert.True(t, svc.SubmittedToday(ctx, "andi"))

	_, err = svc.SubmitAt(ctx, "andi", "Sick", "", today.Add(3*time.Hour))
	require.ErrorIs(t, err, attendance.ErrAlreadySubmitted)
	assert.Len(t, st.ListAttendance(ctx, "andi"), 1)

	_, err = svc.SubmitAt(ctx, "andi", "Sick", "", today.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, svc.History(ctx, "andi"), 2)
}

func TestSubmitRejectsUnknownInputs(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "andi", "Vacation", "")
	require.ErrorIs(t, err, attendance.ErrInvalidStatus)

	_, err = svc.Submit(ctx, "ghost", "Present", "")
	require.ErrorIs(t, err, core.ErrEmployeeNotFound)
}

func TestConcurrentSubmitsRecordOnce(t *testing.T) {
	svc, st := setup(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Submit(context.Background(), "andi", "Present", "")
		}()
	}
	wg.Wait()
	assert.Len(t, st.ListAttendance(context.Background(), "andi"), 1)
}

func TestMonthlyBreakdown(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	for i, status := range []string{"Present", "Lembur", "Izin", "Present"} {
		_, err := svc.SubmitAt(ctx, "andi", status, "", today.AddDate(0, 0, -i))
		require.NoError(t, err)
	}

	breakdown, at := svc.MonthlyBreakdown(ctx, "andi")
	assert.Equal(t, time.January, at.Month())
	assert.Equal(t, attendance.Breakdown{Present: 2, ExcusedAbsence: 1, Overtime: 1}, breakdown)
	assert.Equal(t, 4, breakdown.Total())
}

func TestParseStatus(t *testing.T) {
	for raw, want := range map[string]attendance.Status{
		"present":        attendance.StatusPresent,
		"IZIN":           attendance.StatusExcusedAbsence,
		"ExcusedAbsence": attendance.StatusExcusedAbsence,
		"sakit":          attendance.StatusSick,
		" Overtime ":     attendance.StatusOvertime,
	} {
		got, err := attendance.ParseStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}
