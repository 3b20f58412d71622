package jobshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/auth"
	"hrdesk/internal/platform/jobs"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
	"hrdesk/internal/transport/http/shared"
)

type Handler struct {
	Service  *jobs.Service
	Reminder jobs.Func
	Perms    middleware.PermissionStore
}

func NewHandler(service *jobs.Service, reminder jobs.Func, perms middleware.PermissionStore) *Handler {
	return &Handler{Service: service, Reminder: reminder, Perms: perms}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/jobs", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermJobsRun, h.Perms))
		r.Get("/runs", h.handleListRuns)
		r.Post("/attendance-reminder", h.handleRunReminder)
	})
}

func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 20, 100)
	runs := h.Service.Runs()
	shared.WriteTotal(w, len(runs))

	if page.Offset >= len(runs) {
		runs = []jobs.Run{}
	} else {
		runs = runs[page.Offset:min(len(runs), page.Offset+page.Limit)]
	}
	api.Success(w, runs, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleRunReminder(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	details, err := h.Service.RunNow(r.Context(), jobs.JobAttendanceReminder, h.Reminder)
	if err != nil {
		shared.FailDomain(w, err, reqID)
		return
	}
	api.Success(w, details, reqID)
}
