package corehandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/audit"
	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/notifications"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service *core.Service
	Perms   middleware.PermissionStore
	Notify  *notifications.Service
	Audit   *audit.Service
}

func NewHandler(service *core.Service, perms middleware.PermissionStore, notify *notifications.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Perms: perms, Notify: notify, Audit: auditSvc}
}

type createEmployeeRequest struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password"`
	Role     string `json:"role" validate:"required"`
	Division string `json:"division" validate:"required"`
	Title    string `json:"title" validate:"required"`
}

type updateEmployeeRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Division *string `json:"division"`
	Title    *string `json:"title"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermEmployeesRead, h.Perms)).Get("/", h.handleList)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite, h.Perms)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermEmployeesRead, h.Perms)).Get("/{employeeID}", h.handleGet)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite, h.Perms)).Put("/{employeeID}", h.handleUpdate)
		r.With(middleware.RequirePermission(auth.PermEmployeesWrite, h.Perms)).Post("/{employeeID}/reset-password", h.handleResetPassword)
	})
}

// handleList returns HR the whole company, optionally filtered by
// ?division=, and managers their own division.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.CurrentEmployee(w, r, h.Service)
	if !ok {
		return
	}

	var employees []core.Employee
	division := r.URL.Query().Get("division")
	switch {
	case caller.Role != core.RoleHR:
		employees = h.Service.ListByDivision(r.Context(), caller.Division)
	case division != "":
		parsed, err := core.ParseDivision(division)
		if err != nil {
			shared.FailDomain(w, err, reqID)
			return
		}
		employees = h.Service.ListByDivision(r.Context(), parsed)
	default:
		employees = h.Service.List(r.Context())
	}

	out := make([]core.Profile, 0, len(employees))
	for _, emp := range employees {
		out = append(out, view(caller, emp))
	}
	api.Success(w, out, reqID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	caller, ok := shared.CurrentEmployee(w, r, h.Service)
	if !ok {
		return
	}

	emp, err := h.Service.Get(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	if caller.Role != core.RoleHR && emp.Division != caller.Division && emp.ID != caller.ID {
		api.Fail(w, http.StatusForbidden, "forbidden", "employee is outside your division", reqID)
		return
	}
	api.Success(w, view(caller, emp), reqID)
}

func view(caller, emp core.Employee) core.Profile {
	return core.FilterEmployeeFields(emp, caller.Role, emp.ID == caller.ID, emp.Division == caller.Division)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload createEmployeeRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}

	emp, err := h.Service.Create(r.Context(), core.CreateInput{
		ID:       payload.ID,
		Name:     payload.Name,
		Password: payload.Password,
		Role:     payload.Role,
		Division: payload.Division,
		Title:    payload.Title,
	})
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}

	if err := h.Audit.Record(r.Context(), user.UserID, "employee.create", "employee", emp.ID, reqID, middleware.ClientIP(r), nil, emp); err != nil {
		slog.Warn("audit employee.create failed", "err", err)
	}
	api.Created(w, emp, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	var payload updateEmployeeRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}

	before, err := h.Service.Get(r.Context(), employeeID)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	updated, err := h.Service.Update(r.Context(), employeeID, core.UpdateInput{
		Name:     payload.Name,
		Role:     payload.Role,
		Division: payload.Division,
		Title:    payload.Title,
	})
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}

	if err := h.Audit.Record(r.Context(), user.UserID, "employee.update", "employee", employeeID, reqID, middleware.ClientIP(r), before, updated); err != nil {
		slog.Warn("audit employee.update failed", "err", err)
	}
	api.Success(w, updated, reqID)
}

func (h *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	emp, err := h.Service.ResetPassword(r.Context(), employeeID)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}

	if err := h.Audit.Record(r.Context(), user.UserID, "employee.password.reset", "employee", emp.ID, reqID, middleware.ClientIP(r), nil, nil); err != nil {
		slog.Warn("audit employee.password.reset failed", "err", err)
	}
	if h.Notify != nil {
		if err := h.Notify.Create(r.Context(), emp.ID, notifications.TypePasswordReset, "Password reset", "Your password was reset to the default by HR."); err != nil {
			slog.Warn("password reset notification failed", "err", err)
		}
	}
	api.Success(w, map[string]string{"status": "reset"}, reqID)
}
