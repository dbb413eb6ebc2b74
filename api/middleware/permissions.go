package middleware

import (
	"net/http"

	"github.com/floordesk/floordesk-backend/api/responses"
	"github.com/floordesk/floordesk-backend/pkg/enums"
	pkgerrors "github.com/floordesk/floordesk-backend/pkg/errors"
	"github.com/floordesk/floordesk-backend/pkg/logger"
)

// RequireAdmin gates a route to admin accounts.
func RequireAdmin(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromContext(r.Context()) != enums.UserRoleAdmin {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin role required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireModule gates a route to accounts holding at least the given level
// on a module. Admins always pass.
func RequireModule(module enums.ModuleKey, level enums.PermissionLevel, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if RoleFromContext(ctx) == enums.UserRoleAdmin {
				next.ServeHTTP(w, r)
				return
			}

			granted := PermissionsFromContext(ctx).Level(module)
			allowed := granted.AllowsView()
			if level == enums.PermissionEdit {
				allowed = granted.AllowsEdit()
			}
			if !allowed {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "module access denied").
					WithDetails(map[string]any{"module": string(module)}))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
