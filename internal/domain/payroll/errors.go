package payroll

import "errors"

var ErrPayslipRender = errors.New("payroll: payslip rendering failed")
