package shared

import (
	"context"
	"net/http"

	"hrdesk/internal/domain/core"
	"hrdesk/internal/transport/http/api"
	"hrdesk/internal/transport/http/middleware"
)

type EmployeeGetter interface {
	Get(ctx context.Context, id string) (core.Employee, error)
}

// CurrentEmployee loads the caller's record from the store. Role and
// division come from the record, not from the token, so HR changes apply
// before the session expires.
func CurrentEmployee(w http.ResponseWriter, r *http.Request, employees EmployeeGetter) (core.Employee, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", middleware.GetRequestID(r.Context()))
		return core.Employee{}, false
	}
	emp, err := employees.Get(r.Context(), user.UserID)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "account no longer exists", middleware.GetRequestID(r.Context()))
		return core.Employee{}, false
	}
	return emp, true
}
