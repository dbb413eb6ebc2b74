package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/floordesk/floordesk-backend/api/responses"
	"github.com/floordesk/floordesk-backend/internal/users"
	pkgAuth "github.com/floordesk/floordesk-backend/pkg/auth"
	"github.com/floordesk/floordesk-backend/pkg/config"
	pkgerrors "github.com/floordesk/floordesk-backend/pkg/errors"
	"github.com/floordesk/floordesk-backend/pkg/logger"
)

// AccountLoader fetches the current account for an authenticated user id.
// Role and permission changes take effect on the next request, not at the
// next token refresh.
type AccountLoader interface {
	Get(ctx context.Context, id int64) (*users.PublicUser, error)
}

// Auth validates a bearer token, reloads the account, and seeds the request
// context with the actor.
func Auth(cfg config.JWTConfig, loader AccountLoader, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			if loader == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "account loader unavailable"))
				return
			}

			account, err := loader.Get(r.Context(), claims.UserID)
			if err != nil {
				if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "account no longer exists"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load account"))
				return
			}

			ctx := WithActor(r.Context(), account.ID, account.Username, account.Role, account.Permissions)

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id":    account.ID,
					"actor_role": string(account.Role),
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
