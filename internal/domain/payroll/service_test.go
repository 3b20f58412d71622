package payroll_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/store"
)

var now = time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

type fakeSealer struct{}

func (fakeSealer) Configured() bool { return true }

func (fakeSealer) Encrypt(plain []byte) ([]byte, error) {
	out := append([]byte("SEALED"), plain...)
	return out, nil
}

func setup(t *testing.T, hiredAt time.Time) (*store.Store, core.Employee) {
	t.Helper()
	st := store.New()
	emp := core.Employee{ID: "cici@gawe.com", Name: "Cici", Role: core.RoleManager, Division: core.DivisionFinance, Title: "Finance Manager", HiredAt: hiredAt}
	require.NoError(t, st.CreateEmployee(context.Background(), emp))
	stored, _ := st.GetEmployee(context.Background(), emp.ID)
	return st, stored
}

func TestMonthlySalaryNewHireEqualsBase(t *testing.T) {
	st, emp := setup(t, now)
	svc := payroll.NewService(st, core.FixedClock{At: now}, nil)

	b := svc.MonthlySalary(context.Background(), emp, now)
	assert.True(t, b.Total.Equal(decimal.NewFromInt(12_000_000)), "got %s", b.Total)
	assert.Equal(t, 0, b.WorkYears)
}

func TestMonthlySalaryCountsPresentDaysThisMonth(t *testing.T) {
	st, emp := setup(t, now.AddDate(-3, 0, 0))
	ctx := context.Background()
	for i, status := range []attendance.Status{attendance.StatusPresent, attendance.StatusPresent, attendance.StatusOvertime} {
		_, err := st.RecordAttendance(ctx, attendance.Record{EmployeeID: emp.ID, Date: now.AddDate(0, 0, -i), Status: status})
		require.NoError(t, err)
	}
	_, err := st.RecordAttendance(ctx, attendance.Record{EmployeeID: emp.ID, Date: now.AddDate(0, -1, 0), Status: attendance.StatusPresent})
	require.NoError(t, err)

	svc := payroll.NewService(st, core.FixedClock{At: now}, nil)
	b, err := svc.Current(ctx, emp.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, b.WorkYears)
	assert.Equal(t, 2, b.PresentDays)
	// 12,000,000 × 1.15 + 2 × 50,000
	assert.True(t, b.Total.Equal(decimal.NewFromInt(13_900_000)), "got %s", b.Total)

	_, err = svc.Current(ctx, "ghost")
	require.ErrorIs(t, err, core.ErrEmployeeNotFound)
}

func TestReportTotals(t *testing.T) {
	st, _ := setup(t, now)
	require.NoError(t, st.CreateEmployee(context.Background(), core.Employee{ID: "andi", Role: core.RoleStaff, Division: core.DivisionMarketing, HiredAt: now}))
	svc := payroll.NewService(st, core.FixedClock{At: now}, nil)

	report := svc.Report(context.Background())
	require.Len(t, report.Rows, 2)
	assert.True(t, report.Total.Equal(decimal.NewFromInt(16_400_000)), "got %s", report.Total)
	assert.Equal(t, time.January, report.Month)
}

func TestPayslipPDF(t *testing.T) {
	st, emp := setup(t, now)
	svc := payroll.NewService(st, core.FixedClock{At: now}, nil)

	slip, err := svc.Payslip(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.False(t, slip.Encrypted)
	assert.Equal(t, payroll.PayslipContentType, slip.ContentType)
	assert.Equal(t, "payslip-cici_gawe.com-2024-01.pdf", slip.FileName)
	assert.True(t, bytes.HasPrefix(slip.Data, []byte("%PDF")))
}

func TestPayslipEncrypted(t *testing.T) {
	st, emp := setup(t, now)
	svc := payroll.NewService(st, core.FixedClock{At: now}, fakeSealer{})

	slip, err := svc.Payslip(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.True(t, slip.Encrypted)
	assert.True(t, bytes.HasPrefix(slip.Data, []byte("SEALED%PDF")))
	assert.Equal(t, payroll.PayslipEncryptedContentType, slip.ContentType)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "Rp 12.000.000", payroll.FormatAmount(decimal.NewFromInt(12_000_000)))
	assert.Equal(t, "Rp 950", payroll.FormatAmount(decimal.RequireFromString("949.6")))
	assert.Equal(t, "Rp 0", payroll.FormatAmount(decimal.Zero))
}
