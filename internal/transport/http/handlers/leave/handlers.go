package leavehandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/audit"
	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/leave"
	"hrdesk/internal/domain/notifications"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service   *leave.Service
	Employees *core.Service
	Perms     middleware.PermissionStore
	Notify    *notifications.Service
	Audit     *audit.Service
	Events    shared.EventCounter
}

func NewHandler(service *leave.Service, employees *core.Service, perms middleware.PermissionStore, notify *notifications.Service, auditSvc *audit.Service, events shared.EventCounter) *Handler {
	return &Handler{Service: service, Employees: employees, Perms: perms, Notify: notify, Audit: auditSvc, Events: events}
}

type submitRequest struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
	Reason    string `json:"reason"`
	Purpose   string `json:"purpose"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermLeaveRead, h.Perms)).Get("/requests", h.handleListRequests)
		r.With(middleware.RequirePermission(auth.PermLeaveWrite, h.Perms)).Post("/requests", h.handleCreateRequest)
		r.With(middleware.RequirePermission(auth.PermLeaveApprove, h.Perms)).Get("/pending", h.handlePending)
		r.With(middleware.RequirePermission(auth.PermLeaveApprove, h.Perms)).Get("/processed", h.handleProcessed)
		r.With(middleware.RequirePermission(auth.PermLeaveApprove, h.Perms)).Get("/stats", h.handleStats)
		r.With(middleware.RequirePermission(auth.PermLeaveApprove, h.Perms)).Post("/requests/{requestID}/approve", h.handleApproveRequest)
		r.With(middleware.RequirePermission(auth.PermLeaveApprove, h.Perms)).Post("/requests/{requestID}/reject", h.handleRejectRequest)
	})
}

func (h *Handler) handleListRequests(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	writeRequests(w, r, h.Service.History(r.Context(), user.UserID))
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload submitRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	v := shared.NewValidator()
	start, _ := v.Date("startDate", payload.StartDate)
	end, _ := v.Date("endDate", payload.EndDate)
	if v.Reject(w, reqID) {
		return
	}

	created, err := h.Service.Submit(r.Context(), user.UserID, leave.SubmitInput{
		StartDate: start,
		EndDate:   end,
		Reason:    payload.Reason,
		Purpose:   payload.Purpose,
	})
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}

	if err := h.Audit.Record(r.Context(), user.UserID, "leave.request.create", "leave_request", created.ID, reqID, middleware.ClientIP(r), nil, created); err != nil {
		slog.Warn("audit leave.request.create failed", "err", err)
	}
	shared.CountEvent(h.Events, "leave.submitted")
	if h.Notify != nil {
		body := fmt.Sprintf("%s requested leave for %s (%d days).", user.UserID, created.FormattedRange(), created.Days())
		for _, approverID := range h.Service.Approvers(r.Context(), user.UserID) {
			if err := h.Notify.Create(r.Context(), approverID, notifications.TypeLeaveSubmitted, "Leave request submitted", body); err != nil {
				slog.Warn("leave submitted notification failed", "err", err)
			}
		}
	}
	api.Created(w, created, reqID)
}

func (h *Handler) handlePending(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	approver, ok := shared.CurrentEmployee(w, r, h.Employees)
	if !ok {
		return
	}
	requests, err := h.Service.PendingFor(r.Context(), approver)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	writeRequests(w, r, requests)
}

func (h *Handler) handleProcessed(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	approver, ok := shared.CurrentEmployee(w, r, h.Employees)
	if !ok {
		return
	}
	requests, err := h.Service.ProcessedFor(r.Context(), approver)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	writeRequests(w, r, requests)
}

// handleStats covers the whole company for HR and the approver's division
// for managers.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	approver, ok := shared.CurrentEmployee(w, r, h.Employees)
	if !ok {
		return
	}
	if approver.Role == core.RoleHR {
		api.Success(w, h.Service.Stats(r.Context()), reqID)
		return
	}
	pending, err := h.Service.PendingFor(r.Context(), approver)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	processed, err := h.Service.ProcessedFor(r.Context(), approver)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	api.Success(w, leave.Summarize(append(pending, processed...)), reqID)
}

func (h *Handler) handleApproveRequest(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, true)
}

func (h *Handler) handleRejectRequest(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, false)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, approve bool) {
	reqID := middleware.GetRequestID(r.Context())
	approver, ok := shared.CurrentEmployee(w, r, h.Employees)
	if !ok {
		return
	}

	requestID := chi.URLParam(r, "requestID")
	result, err := h.Service.Decide(r.Context(), requestID, approver, approve)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}

	action, ntype, title := "leave.request.reject", notifications.TypeLeaveRejected, "Leave rejected"
	if approve {
		action, ntype, title = "leave.request.approve", notifications.TypeLeaveApproved, "Leave approved"
	}
	if err := h.Audit.Record(r.Context(), approver.ID, action, "leave_request", requestID, reqID, middleware.ClientIP(r), nil, map[string]any{"employeeId": result.EmployeeID, "days": result.Days()}); err != nil {
		slog.Warn("audit "+action+" failed", "err", err)
	}
	shared.CountEvent(h.Events, "leave."+strings.ToLower(string(result.Status)))
	if h.Notify != nil {
		body := fmt.Sprintf("Your leave request for %s was %s.", result.FormattedRange(), result.Status)
		if err := h.Notify.Create(r.Context(), result.EmployeeID, ntype, title, body); err != nil {
			slog.Warn("leave decision notification failed", "err", err)
		}
	}
	api.Success(w, result, reqID)
}

func writeRequests(w http.ResponseWriter, r *http.Request, requests []leave.Request) {
	if requests == nil {
		requests = []leave.Request{}
	}
	api.Success(w, requests, middleware.GetRequestID(r.Context()))
}
