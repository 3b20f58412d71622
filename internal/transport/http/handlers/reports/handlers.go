package reportshandler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/reports"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service   *reports.Service
	Employees *core.Service
	Perms     middleware.PermissionStore
	Clock     core.Clock
}

func NewHandler(service *reports.Service, employees *core.Service, perms middleware.PermissionStore, clock core.Clock) *Handler {
	return &Handler{Service: service, Employees: employees, Perms: perms, Clock: clock}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermReportsRead, h.Perms)).Get("/dashboard", h.handleDashboard)
		r.With(middleware.RequirePermission(auth.PermLeaveApprove, h.Perms)).Get("/team", h.handleTeam)
		r.With(middleware.RequirePermission(auth.PermPayrollAdmin, h.Perms)).Get("/overview", h.handleOverview)
		r.With(middleware.RequirePermission(auth.PermPayrollAdmin, h.Perms)).Get("/attendance", h.handleAttendance)
	})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	viewer, ok := shared.CurrentEmployee(w, r, h.Employees)
	if !ok {
		return
	}
	api.Success(w, h.Service.Dashboard(r.Context(), viewer), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleTeam(w http.ResponseWriter, r *http.Request) {
	manager, ok := shared.CurrentEmployee(w, r, h.Employees)
	if !ok {
		return
	}
	api.Success(w, h.Service.TeamOverview(r.Context(), manager), middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Service.CompanyOverview(r.Context()), middleware.GetRequestID(r.Context()))
}

// handleAttendance defaults to the current month across all divisions;
// ?month=1..12, ?year= and ?division= narrow it.
func (h *Handler) handleAttendance(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	now := h.Clock.Now()
	month, year := now.Month(), now.Year()

	v := shared.NewValidator()
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			v.Add("month", "must be between 1 and 12")
		} else {
			month = time.Month(m)
		}
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 {
			v.Add("year", "must be a positive number")
		} else {
			year = y
		}
	}
	var division core.Division
	if raw := r.URL.Query().Get("division"); raw != "" {
		parsed, err := core.ParseDivision(raw)
		if err != nil {
			v.Add("division", "must be Marketing, HR or Finance")
		}
		division = parsed
	}
	if v.Reject(w, reqID) {
		return
	}
	api.Success(w, h.Service.StatusBreakdown(r.Context(), month, year, division), reqID)
}
