package users

import (
	"context"
	"testing"

	"github.com/floordesk/floordesk-backend/pkg/auth"
	"github.com/floordesk/floordesk-backend/pkg/config"
	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"github.com/floordesk/floordesk-backend/pkg/enums"
	pkgerrors "github.com/floordesk/floordesk-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUsersRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newStubUsersRepo() *stubUsersRepo {
	return &stubUsersRepo{users: map[int64]*models.User{}}
}

func (s *stubUsersRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubUsersRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (s *stubUsersRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUsersRepo) List(ctx context.Context) ([]models.User, error) {
	var rows []models.User
	for _, user := range s.users {
		rows = append(rows, *user)
	}
	return rows, nil
}

func (s *stubUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	s.nextID++
	user.ID = s.nextID
	clone := *user
	s.users[user.ID] = &clone
	return user, nil
}

func (s *stubUsersRepo) Save(ctx context.Context, user *models.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *user
	s.users[user.ID] = &clone
	return nil
}

func (s *stubUsersRepo) Delete(ctx context.Context, id int64) error {
	delete(s.users, id)
	return nil
}

func (s *stubUsersRepo) CountByRole(ctx context.Context, role enums.UserRole) (int64, error) {
	var count int64
	for _, user := range s.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

func testConfigs() (config.JWTConfig, config.PasswordConfig) {
	jwtCfg := config.JWTConfig{Secret: "secret", Issuer: "floordesk", ExpirationMinutes: 30}
	passCfg := config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
	return jwtCfg, passCfg
}

func newTestService(t *testing.T) (Service, *stubUsersRepo) {
	t.Helper()
	repo := newStubUsersRepo()
	jwtCfg, passCfg := testConfigs()
	svc, err := NewService(repo, jwtCfg, passCfg)
	require.NoError(t, err)
	return svc, repo
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	require.Error(t, err)
	coded := pkgerrors.As(err)
	require.NotNil(t, coded, "expected coded error, got %v", err)
	assert.Equal(t, code, coded.Code())
}

func TestCreateAndLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserInput{
		Username: "admin",
		Password: "admin-pass",
		Role:     enums.UserRoleAdmin,
		Permissions: models.PermissionMap{
			enums.ModuleOrders: enums.PermissionEdit,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", created.Username)

	result, err := svc.Login(ctx, LoginInput{Username: "admin", Password: "admin-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	assert.Equal(t, created.ID, result.User.ID)

	jwtCfg, _ := testConfigs()
	claims, err := auth.ParseAccessToken(jwtCfg, result.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, enums.UserRoleAdmin, claims.Role)
}

func TestLoginBadPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserInput{
		Username: "admin", Password: "right", Role: enums.UserRoleAdmin,
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginInput{Username: "admin", Password: "wrong"})
	assertCode(t, err, pkgerrors.CodeUnauthorized)

	_, err = svc.Login(ctx, LoginInput{Username: "ghost", Password: "whatever"})
	assertCode(t, err, pkgerrors.CodeUnauthorized)
}

func TestCreateDuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserInput{Username: "admin", Password: "x1234", Role: enums.UserRoleAdmin})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateUserInput{Username: "admin", Password: "y1234", Role: enums.UserRoleUser})
	assertCode(t, err, pkgerrors.CodeConflict)
}

func TestCreateRejectsUnknownPermissionModule(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), CreateUserInput{
		Username: "clerk",
		Password: "x1234",
		Role:     enums.UserRoleUser,
		Permissions: models.PermissionMap{
			enums.ModuleKey("bogus"): enums.PermissionView,
		},
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestUpdateChangesRoleAndPassword(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	// two admins so the demotion is allowed
	_, err := svc.Create(ctx, CreateUserInput{Username: "root", Password: "x1234", Role: enums.UserRoleAdmin})
	require.NoError(t, err)
	target, err := svc.Create(ctx, CreateUserInput{Username: "second", Password: "old-pass", Role: enums.UserRoleAdmin})
	require.NoError(t, err)

	newPass := "new-pass"
	updated, err := svc.Update(ctx, target.ID, UpdateUserInput{
		Role:     enums.UserRoleUser,
		Password: &newPass,
		Permissions: models.PermissionMap{
			enums.ModuleDashboard: enums.PermissionView,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, enums.UserRoleUser, updated.Role)
	assert.Equal(t, enums.PermissionView, repo.users[target.ID].Permissions.Level(enums.ModuleDashboard))

	_, err = svc.Login(ctx, LoginInput{Username: "second", Password: "new-pass"})
	require.NoError(t, err)
}

func TestLastAdminGuard(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	admin, err := svc.Create(ctx, CreateUserInput{Username: "root", Password: "x1234", Role: enums.UserRoleAdmin})
	require.NoError(t, err)

	err = svc.Delete(ctx, admin.ID)
	assertCode(t, err, pkgerrors.CodeStateConflict)

	_, err = svc.Update(ctx, admin.ID, UpdateUserInput{Role: enums.UserRoleUser})
	assertCode(t, err, pkgerrors.CodeStateConflict)

	// a second admin unblocks both operations
	_, err = svc.Create(ctx, CreateUserInput{Username: "backup", Password: "x1234", Role: enums.UserRoleAdmin})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, admin.ID))
}

func TestResetPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserInput{Username: "clerk", Password: "old-pass", Role: enums.UserRoleUser})
	require.NoError(t, err)

	result, err := svc.ResetPassword(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, result.TempPassword, tempPasswordLength)

	_, err = svc.Login(ctx, LoginInput{Username: "clerk", Password: "old-pass"})
	assertCode(t, err, pkgerrors.CodeUnauthorized)

	_, err = svc.Login(ctx, LoginInput{Username: "clerk", Password: result.TempPassword})
	require.NoError(t, err)
}
