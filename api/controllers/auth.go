package controllers

import (
	"net/http"

	"github.com/floordesk/floordesk-backend/api/middleware"
	"github.com/floordesk/floordesk-backend/api/responses"
	"github.com/floordesk/floordesk-backend/api/validators"
	"github.com/floordesk/floordesk-backend/internal/users"
	pkgerrors "github.com/floordesk/floordesk-backend/pkg/errors"
	"github.com/floordesk/floordesk-backend/pkg/logger"
)

// AuthLogin exchanges credentials for an access token.
func AuthLogin(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable"))
			return
		}

		var body users.LoginInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AuthMe returns the authenticated account as seeded by the auth middleware.
func AuthMe(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middleware.UserIDFromContext(ctx)
		if userID == 0 {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		responses.WriteSuccess(w, users.PublicUser{
			ID:          userID,
			Username:    middleware.UsernameFromContext(ctx),
			Role:        middleware.RoleFromContext(ctx),
			Permissions: middleware.PermissionsFromContext(ctx),
		})
	}
}
