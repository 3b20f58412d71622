package payrollhandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/audit"
	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service *payroll.Service
	Perms   middleware.PermissionStore
	Audit   *audit.Service
}

func NewHandler(service *payroll.Service, perms middleware.PermissionStore, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Perms: perms, Audit: auditSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermPayrollRead, h.Perms)).Get("/me", h.handleCurrent)
		r.With(middleware.RequirePermission(auth.PermPayrollRead, h.Perms)).Get("/me/payslip", h.handleDownloadPayslip)
		r.With(middleware.RequirePermission(auth.PermPayrollAdmin, h.Perms)).Get("/report", h.handleReport)
	})
}

func (h *Handler) handleCurrent(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	breakdown, err := h.Service.Current(r.Context(), user.UserID)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	api.Success(w, breakdown, reqID)
}

func (h *Handler) handleDownloadPayslip(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	slip, err := h.Service.Payslip(r.Context(), user.UserID)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	if err := h.Audit.Record(r.Context(), user.UserID, "payroll.payslip.download", "payslip", slip.FileName, reqID, middleware.ClientIP(r), nil, map[string]any{"encrypted": slip.Encrypted}); err != nil {
		slog.Warn("audit payroll.payslip.download failed", "err", err)
	}

	api.Attachment(w, slip.ContentType, slip.FileName, slip.Data)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.Report(r.Context()), middleware.GetRequestID(r.Context()))
}
