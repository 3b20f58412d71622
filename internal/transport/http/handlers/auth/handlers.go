package authhandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ulule/limiter/v3"

	"hrdesk/internal/domain/audit"
	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service      *auth.Service
	Employees    *core.Service
	Audit        *audit.Service
	LoginLimiter *limiter.Limiter
	Events       shared.EventCounter
}

func NewHandler(service *auth.Service, employees *core.Service, auditSvc *audit.Service, loginLimiter *limiter.Limiter, events shared.EventCounter) *Handler {
	return &Handler{Service: service, Employees: employees, Audit: auditSvc, LoginLimiter: loginLimiter, Events: events}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name            string `json:"name" validate:"required"`
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type meResponse struct {
	Employee    core.Employee `json:"employee"`
	Permissions []string      `json:"permissions"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(middleware.RateLimit(h.LoginLimiter, middleware.ClientIP)).Post("/auth/login", h.HandleLogin)
	r.With(middleware.RequireUser).Get("/me", h.handleMe)
	r.With(middleware.RequireUser).Put("/me/profile", h.handleUpdateProfile)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload loginRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}

	session, err := h.Service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		shared.CountEvent(h.Events, "auth.login.failed")
		slog.Info("login rejected", "username", payload.Username, "ip", middleware.ClientIP(r), "requestId", reqID)
		shared.FailDomain(w, err, reqID)
		return
	}

	if err := h.Audit.Record(r.Context(), session.Employee.ID, "auth.login", "employee", session.Employee.ID, reqID, middleware.ClientIP(r), nil, nil); err != nil {
		slog.Warn("audit auth.login failed", "err", err)
	}
	shared.CountEvent(h.Events, "auth.login.succeeded")
	api.Success(w, session, reqID)
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())
	emp, err := h.Employees.Get(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "account no longer exists", reqID)
		return
	}
	perms := auth.RolePermissions[emp.Role]
	if perms == nil {
		perms = []string{}
	}
	api.Success(w, meResponse{Employee: emp, Permissions: perms}, reqID)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload profileRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}

	before, err := h.Employees.Get(r.Context(), user.UserID)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	updated, err := h.Employees.UpdateProfile(r.Context(), user.UserID, core.ProfileInput{
		Name:            payload.Name,
		OldPassword:     payload.OldPassword,
		NewPassword:     payload.NewPassword,
		ConfirmPassword: payload.ConfirmPassword,
	})
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}

	after := map[string]any{"name": updated.Name, "passwordChanged": updated.Password != before.Password}
	if err := h.Audit.Record(r.Context(), user.UserID, "employee.profile.update", "employee", user.UserID, reqID, middleware.ClientIP(r), map[string]any{"name": before.Name}, after); err != nil {
		slog.Warn("audit employee.profile.update failed", "err", err)
	}
	api.Success(w, updated, reqID)
}
