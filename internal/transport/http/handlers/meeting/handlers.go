package meetinghandler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/audit"
	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/core"
	"hrdesk/internal/domain/meeting"
	"hrdesk/internal/domain/notifications"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service   *meeting.Service
	Employees *core.Service
	Perms     middleware.PermissionStore
	Notify    *notifications.Service
	Audit     *audit.Service
}

func NewHandler(service *meeting.Service, employees *core.Service, perms middleware.PermissionStore, notify *notifications.Service, auditSvc *audit.Service) *Handler {
	return &Handler{Service: service, Employees: employees, Perms: perms, Notify: notify, Audit: auditSvc}
}

type scheduleRequest struct {
	Name              string   `json:"name" validate:"required"`
	Topic             string   `json:"topic"`
	Theme             string   `json:"theme"`
	Start             string   `json:"start" validate:"required"`
	End               string   `json:"end" validate:"required"`
	Room              string   `json:"room" validate:"required"`
	Participants      string   `json:"participants"`
	RequiredDivisions []string `json:"requiredDivisions"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/meetings", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermMeetingsRead, h.Perms)).Get("/today", h.handleToday)
		r.With(middleware.RequirePermission(auth.PermMeetingsRead, h.Perms)).Get("/upcoming", h.handleUpcoming)
		r.With(middleware.RequirePermission(auth.PermMeetingsRead, h.Perms)).Get("/owned", h.handleOwned)
		r.With(middleware.RequirePermission(auth.PermMeetingsWrite, h.Perms)).Post("/", h.handleSchedule)
	})
}

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	caller, ok := shared.CurrentEmployee(w, r, h.Employees)
	if !ok {
		return
	}
	h.writeList(w, r, h.Service.Today(r.Context(), caller.Division))
}

func (h *Handler) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	caller, ok := shared.CurrentEmployee(w, r, h.Employees)
	if !ok {
		return
	}
	h.writeList(w, r, h.Service.Upcoming(r.Context(), caller.Division))
}

func (h *Handler) handleOwned(w http.ResponseWriter, r *http.Request) {
	caller, ok := shared.CurrentEmployee(w, r, h.Employees)
	if !ok {
		return
	}
	h.writeList(w, r, h.Service.OwnedBy(r.Context(), caller.Division))
}

func (h *Handler) writeList(w http.ResponseWriter, r *http.Request, meetings []meeting.Meeting) {
	if meetings == nil {
		meetings = []meeting.Meeting{}
	}
	api.Success(w, meetings, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload scheduleRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	v := shared.NewValidator()
	start, _ := v.Date("start", payload.Start)
	end, _ := v.Date("end", payload.End)
	required := make([]core.Division, 0, len(payload.RequiredDivisions))
	for _, raw := range payload.RequiredDivisions {
		division, err := core.ParseDivision(raw)
		if err != nil {
			v.Add("requiredDivisions", fmt.Sprintf("unknown division %q", raw))
			continue
		}
		required = append(required, division)
	}
	if v.Reject(w, reqID) {
		return
	}

	organizer, ok := shared.CurrentEmployee(w, r, h.Employees)
	if !ok {
		return
	}
	created, err := h.Service.Schedule(r.Context(), organizer, meeting.ScheduleInput{
		Name:              payload.Name,
		Topic:             payload.Topic,
		Theme:             payload.Theme,
		Start:             start,
		End:               end,
		Room:              payload.Room,
		Participants:      payload.Participants,
		RequiredDivisions: required,
	})
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}

	if err := h.Audit.Record(r.Context(), user.UserID, "meeting.schedule", "meeting", created.ID, reqID, middleware.ClientIP(r), nil, created); err != nil {
		slog.Warn("audit meeting.schedule failed", "err", err)
	}
	h.notifyAttendees(r, organizer, created)
	api.Created(w, created, reqID)
}

func (h *Handler) notifyAttendees(r *http.Request, organizer core.Employee, m meeting.Meeting) {
	if h.Notify == nil {
		return
	}
	body := fmt.Sprintf("%s in %s on %s.", m.Name, m.Room, m.FormattedStart())
	for _, division := range m.RequiredDivisions {
		for _, emp := range h.Employees.ListByDivision(r.Context(), division) {
			if emp.ID == organizer.ID {
				continue
			}
			if err := h.Notify.Create(r.Context(), emp.ID, notifications.TypeMeetingScheduled, "Meeting scheduled", body); err != nil {
				slog.Warn("meeting notification failed", "err", err)
			}
		}
	}
}
