package shared

import (
	"errors"
	"log/slog"
	"net/http"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/meeting"
	"hrdesk/internal/domain/notifications"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/transport/http/api"
)

type errorMapping struct {
	target error
	status int
	code   string
}

var domainErrors = []errorMapping{
	{core.ErrDuplicateKey, http.StatusConflict, "duplicate_key"},
	{attendance.ErrAlreadySubmitted, http.StatusConflict, "already_submitted"},
	{leave.ErrAlreadyDecided, http.StatusConflict, "already_decided"},
	{core.ErrEmployeeNotFound, http.StatusNotFound, "employee_not_found"},
	{leave.ErrNotFound, http.StatusNotFound, "leave_request_not_found"},
	{notifications.ErrNotFound, http.StatusNotFound, "notification_not_found"},
	{leave.ErrInvalidRange, http.StatusUnprocessableEntity, "invalid_range"},
	{leave.ErrInsufficientBalance, http.StatusUnprocessableEntity, "insufficient_balance"},
	{meeting.ErrInvalidTimeRange, http.StatusUnprocessableEntity, "invalid_time_range"},
	{core.ErrWrongPassword, http.StatusUnprocessableEntity, "wrong_password"},
	{core.ErrPasswordMismatch, http.StatusUnprocessableEntity, "password_mismatch"},
	{leave.ErrForbidden, http.StatusForbidden, "forbidden"},
	{meeting.ErrForbidden, http.StatusForbidden, "forbidden"},
	{core.ErrMissingField, http.StatusBadRequest, "missing_field"},
	{leave.ErrMissingField, http.StatusBadRequest, "missing_field"},
	{meeting.ErrMissingField, http.StatusBadRequest, "missing_field"},
	{core.ErrInvalidRole, http.StatusBadRequest, "invalid_role"},
	{core.ErrInvalidDivision, http.StatusBadRequest, "invalid_division"},
	{attendance.ErrInvalidStatus, http.StatusBadRequest, "invalid_status"},
	{auth.ErrMissingCredentials, http.StatusBadRequest, "missing_credentials"},
	{auth.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{payroll.ErrPayslipRender, http.StatusInternalServerError, "payslip_failed"},
}

// ErrorStatus maps a domain error to its HTTP status and error code.
// Unknown errors are reported as 500.
func ErrorStatus(err error) (int, string) {
	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "internal_error"
}

// FailDomain writes the envelope for err. Server errors are logged and
// their message is not exposed.
func FailDomain(w http.ResponseWriter, err error, requestID string) {
	status, code := ErrorStatus(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "err", err, "requestId", requestID)
		message = "internal server error"
	}
	api.Fail(w, status, code, message, requestID)
}

// EventCounter receives named domain events for the metrics endpoint.
type EventCounter interface {
	Inc(event string)
}

func CountEvent(c EventCounter, event string) {
	if c != nil {
		c.Inc(event)
	}
}
