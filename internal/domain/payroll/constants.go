package payroll

import "github.com/shopspring/decimal"

var (
	AttendanceBonusPerDay = decimal.NewFromInt(50_000)
	ExperienceStep        = decimal.RequireFromString("0.05")
	ExperienceCap         = decimal.RequireFromString("0.5")
)

const (
	PayslipContentType          = "application/pdf"
	PayslipEncryptedContentType = "application/octet-stream"
)
