package middleware

import (
	"context"

	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"github.com/floordesk/floordesk-backend/pkg/enums"
)

type contextKey string

const (
	ctxUserID      contextKey = "user_id"
	ctxUsername    contextKey = "username"
	ctxRole        contextKey = "actor_role"
	ctxPermissions contextKey = "permissions"
)

func UserIDFromContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	if v, ok := ctx.Value(ctxUserID).(int64); ok {
		return v
	}
	return 0
}

func UsernameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUsername).(string); ok {
		return v
	}
	return ""
}

func RoleFromContext(ctx context.Context) enums.UserRole {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRole).(enums.UserRole); ok {
		return v
	}
	return ""
}

func PermissionsFromContext(ctx context.Context) models.PermissionMap {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxPermissions).(models.PermissionMap); ok {
		return v
	}
	return nil
}

// WithActor seeds the context with the authenticated account. Exposed for
// handler tests.
func WithActor(ctx context.Context, userID int64, username string, role enums.UserRole, perms models.PermissionMap) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxUserID, userID)
	ctx = context.WithValue(ctx, ctxUsername, username)
	ctx = context.WithValue(ctx, ctxRole, role)
	return context.WithValue(ctx, ctxPermissions, perms)
}
