package payroll

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"hrdesk/internal/domain/core"
)

type Service struct {
	store  StoreAPI
	clock  core.Clock
	crypto Encrypter
}

func NewService(store StoreAPI, clock core.Clock, crypto Encrypter) *Service {
	return &Service{store: store, clock: clock, crypto: crypto}
}

// MonthlySalary computes emp's salary for the month containing now. It is
// recomputed on every call.
func (s *Service) MonthlySalary(ctx context.Context, emp core.Employee, now time.Time) Breakdown {
	present := s.store.MonthlyPresentCount(ctx, emp.ID, now.Month(), now.Year())
	out := ComputeMonthly(emp.BaseSalary, emp.WorkYears(now), present)
	out.EmployeeID = emp.ID
	out.Month = now.Month()
	out.Year = now.Year()
	return out
}

// Current is MonthlySalary for the employee with id at the clock's now.
func (s *Service) Current(ctx context.Context, employeeID string) (Breakdown, error) {
	emp, ok := s.store.GetEmployee(ctx, employeeID)
	if !ok {
		return Breakdown{}, core.ErrEmployeeNotFound
	}
	return s.MonthlySalary(ctx, emp, s.clock.Now()), nil
}

type ReportRow struct {
	EmployeeID string        `json:"employeeId"`
	Name       string        `json:"name"`
	Division   core.Division `json:"division"`
	Title      string        `json:"title"`
	Breakdown
}

type Report struct {
	Month time.Month      `json:"month"`
	Year  int             `json:"year"`
	Rows  []ReportRow     `json:"rows"`
	Total decimal.Decimal `json:"total"`
}

// Report lists every employee's current monthly salary.
func (s *Service) Report(ctx context.Context) Report {
	now := s.clock.Now()
	report := Report{Month: now.Month(), Year: now.Year(), Total: decimal.Zero}
	for _, emp := range s.store.ListEmployees(ctx) {
		b := s.MonthlySalary(ctx, emp, now)
		report.Rows = append(report.Rows, ReportRow{
			EmployeeID: emp.ID,
			Name:       emp.Name,
			Division:   emp.Division,
			Title:      emp.Title,
			Breakdown:  b,
		})
		report.Total = report.Total.Add(b.Total)
	}
	return report
}

type Payslip struct {
	FileName    string
	ContentType string
	Encrypted   bool
	Data        []byte
}

// Payslip renders the current month's payslip as a PDF, sealed when the
// crypto service has a key.
func (s *Service) Payslip(ctx context.Context, employeeID string) (Payslip, error) {
	emp, ok := s.store.GetEmployee(ctx, employeeID)
	if !ok {
		return Payslip{}, core.ErrEmployeeNotFound
	}
	now := s.clock.Now()
	b := s.MonthlySalary(ctx, emp, now)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", emp.Name, emp.ID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s, %s", emp.Title, emp.Division))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Hired: %s", emp.HiredAt.Format("02/01/2006")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", now.Month(), now.Year()))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Base salary: %s", FormatAmount(b.Base)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Experience: %d years (x%s)", b.WorkYears, b.ExperienceMultiplier.String()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Attendance bonus: %d days, %s", b.PresentDays, FormatAmount(b.AttendanceBonus)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %s", FormatAmount(b.Total)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Payslip{}, fmt.Errorf("%w: %v", ErrPayslipRender, err)
	}

	slip := Payslip{
		FileName:    fmt.Sprintf("payslip-%s-%04d-%02d.pdf", sanitizeFileName(emp.ID), now.Year(), int(now.Month())),
		ContentType: PayslipContentType,
		Data:        buf.Bytes(),
	}
	if s.crypto != nil && s.crypto.Configured() {
		sealed, err := s.crypto.Encrypt(slip.Data)
		if err != nil {
			return Payslip{}, err
		}
		slip.Data = sealed
		slip.FileName += ".enc"
		slip.ContentType = PayslipEncryptedContentType
		slip.Encrypted = true
	}
	return slip, nil
}

// FormatAmount renders a currency amount as a whole number with dot
// thousand separators, e.g. "Rp 12.000.000".
func FormatAmount(amount decimal.Decimal) string {
	digits := amount.Round(0).Abs().StringFixed(0)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	sign := ""
	if amount.Round(0).IsNegative() {
		sign = "-"
	}
	return "Rp " + sign + b.String()
}

func sanitizeFileName(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, value)
}
