package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/floordesk/floordesk-backend/internal/users"
	pkgAuth "github.com/floordesk/floordesk-backend/pkg/auth"
	"github.com/floordesk/floordesk-backend/pkg/config"
	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"github.com/floordesk/floordesk-backend/pkg/enums"
	pkgerrors "github.com/floordesk/floordesk-backend/pkg/errors"
)

type stubAccountLoader struct {
	accounts map[int64]users.PublicUser
}

func (s stubAccountLoader) Get(ctx context.Context, id int64) (*users.PublicUser, error) {
	account, ok := s.accounts[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return &account, nil
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "middleware-test-secret", Issuer: "floordesk-test", ExpirationMinutes: 5}
}

func mintTestToken(t *testing.T, cfg config.JWTConfig, userID int64, role enums.UserRole) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg, time.Now(), pkgAuth.AccessTokenPayload{
		UserID:   userID,
		Username: "tester",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestAuthRejectsMissingToken(t *testing.T) {
	loader := stubAccountLoader{accounts: map[int64]users.PublicUser{}}
	handler := Auth(testJWTConfig(), loader, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	loader := stubAccountLoader{accounts: map[int64]users.PublicUser{}}
	handler := Auth(testJWTConfig(), loader, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthSeedsActorFromLoadedAccount(t *testing.T) {
	cfg := testJWTConfig()
	loader := stubAccountLoader{accounts: map[int64]users.PublicUser{
		7: {
			ID:       7,
			Username: "aliya",
			Role:     enums.UserRoleUser,
			Permissions: models.PermissionMap{
				enums.ModuleOrders: enums.PermissionEdit,
			},
		},
	}}

	var captured struct {
		userID int64
		role   enums.UserRole
		level  enums.PermissionLevel
	}
	handler := Auth(cfg, loader, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.userID = UserIDFromContext(r.Context())
		captured.role = RoleFromContext(r.Context())
		captured.level = PermissionsFromContext(r.Context()).Level(enums.ModuleOrders)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, cfg, 7, enums.UserRoleUser))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.userID != 7 {
		t.Fatalf("expected user id 7 got %d", captured.userID)
	}
	if captured.role != enums.UserRoleUser {
		t.Fatalf("expected role user got %s", captured.role)
	}
	if captured.level != enums.PermissionEdit {
		t.Fatalf("expected edit permission got %s", captured.level)
	}
}

func TestAuthRejectsVanishedAccount(t *testing.T) {
	cfg := testJWTConfig()
	loader := stubAccountLoader{accounts: map[int64]users.PublicUser{}}
	handler := Auth(cfg, loader, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, cfg, 99, enums.UserRoleUser))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
