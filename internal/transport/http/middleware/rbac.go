package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"hrdesk/internal/transport/http/api"
)

// PermissionStore answers whether a role grants a permission.
type PermissionStore interface {
	HasPermission(ctx context.Context, roleName, permission string) (bool, error)
}

// RequirePermission lets the request through when the caller's role grants
// permission. Anonymous callers get 401 and denied ones get 403 naming the
// missing permission.
func RequirePermission(permission string, store PermissionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			reqID := GetRequestID(ctx)
			user, ok := GetUser(ctx)
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
				return
			}

			switch allowed, err := store.HasPermission(ctx, user.RoleName, permission); {
			case err != nil:
				slog.Error("permission lookup failed", "role", user.RoleName, "permission", permission, "err", err)
				api.Fail(w, http.StatusInternalServerError, "permission_error", "permission check failed", reqID)
			case !allowed:
				api.FailWithDetails(w, http.StatusForbidden, "forbidden", "insufficient permissions",
					map[string]string{"required": permission}, reqID)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
