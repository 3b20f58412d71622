package attendancehandler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/attendance"
	"hrdesk/internal/domain/auth"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
	Perms   middleware.PermissionStore
}

func NewHandler(service *attendance.Service, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Perms: perms}
}

type submitRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note" validate:"max=500"`
}

type summaryResponse struct {
	Month     time.Month           `json:"month"`
	Year      int                  `json:"year"`
	Breakdown attendance.Breakdown `json:"breakdown"`
	Total     int                  `json:"total"`
	Submitted bool                 `json:"submittedToday"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermAttendanceWrite, h.Perms))
		r.Post("/", h.handleSubmit)
		r.Get("/", h.handleHistory)
		r.Get("/summary", h.handleSummary)
	})
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, _ := middleware.GetUser(r.Context())

	var payload submitRequest
	if !shared.DecodeJSON(w, r, &payload, reqID) {
		return
	}
	rec, err := h.Service.Submit(r.Context(), user.UserID, payload.Status, payload.Note)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	api.Created(w, rec, reqID)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	records := h.Service.History(r.Context(), user.UserID)
	if records == nil {
		records = []attendance.Record{}
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	breakdown, now := h.Service.MonthlyBreakdown(r.Context(), user.UserID)
	api.Success(w, summaryResponse{
		Month:     now.Month(),
		Year:      now.Year(),
		Breakdown: breakdown,
		Total:     breakdown.Total(),
		Submitted: h.Service.SubmittedToday(r.Context(), user.UserID),
	}, middleware.GetRequestID(r.Context()))
}
