package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/floordesk/floordesk-backend/pkg/auth"
	"github.com/floordesk/floordesk-backend/pkg/config"
	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"github.com/floordesk/floordesk-backend/pkg/enums"
	pkgerrors "github.com/floordesk/floordesk-backend/pkg/errors"
	"github.com/floordesk/floordesk-backend/pkg/security"
	"gorm.io/gorm"
)

const tempPasswordLength = 10

// Service defines account and authentication operations.
type Service interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	List(ctx context.Context) ([]PublicUser, error)
	Get(ctx context.Context, id int64) (*PublicUser, error)
	Create(ctx context.Context, input CreateUserInput) (*PublicUser, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*PublicUser, error)
	Delete(ctx context.Context, id int64) error
	ResetPassword(ctx context.Context, id int64) (*ResetPasswordResult, error)
}

type service struct {
	repo    Repository
	jwtCfg  config.JWTConfig
	passCfg config.PasswordConfig
	now     func() time.Time
}

// NewService builds a user service with the required dependencies.
func NewService(repo Repository, jwtCfg config.JWTConfig, passCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if jwtCfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	return &service{
		repo:    repo,
		jwtCfg:  jwtCfg,
		passCfg: passCfg,
		now:     time.Now,
	}, nil
}

func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if input.Username == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username and password required")
	}

	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")
	}

	token, err := auth.MintAccessToken(s.jwtCfg, s.now(), auth.AccessTokenPayload{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint access token")
	}

	return &LoginResult{Token: token, User: publicUser(user)}, nil
}

func (s *service) List(ctx context.Context) ([]PublicUser, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}
	out := make([]PublicUser, 0, len(rows))
	for i := range rows {
		out = append(out, publicUser(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*PublicUser, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	pub := publicUser(user)
	return &pub, nil
}

func (s *service) Create(ctx context.Context, input CreateUserInput) (*PublicUser, error) {
	if input.Username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username required")
	}
	if input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password required")
	}
	if !input.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	if err := validatePermissions(input.Permissions); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check username")
	}

	hash, err := security.HashPassword(input.Password, s.passCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		Permissions:  input.Permissions,
	}
	if _, err := s.repo.Create(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}

	pub := publicUser(user)
	return &pub, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateUserInput) (*PublicUser, error) {
	if !input.Role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	if err := validatePermissions(input.Permissions); err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Role == enums.UserRoleAdmin && input.Role != enums.UserRoleAdmin {
		if err := s.guardLastAdmin(ctx); err != nil {
			return nil, err
		}
	}

	user.Role = input.Role
	user.Permissions = input.Permissions
	if input.Password != nil && *input.Password != "" {
		hash, err := security.HashPassword(*input.Password, s.passCfg)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update user")
	}

	pub := publicUser(user)
	return &pub, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == enums.UserRoleAdmin {
		if err := s.guardLastAdmin(ctx); err != nil {
			return err
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete user")
	}
	return nil
}

func (s *service) ResetPassword(ctx context.Context, id int64) (*ResetPasswordResult, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}

	temp, err := security.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate temp password")
	}
	hash, err := security.HashPassword(temp, s.passCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user.PasswordHash = hash
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store password")
	}

	return &ResetPasswordResult{TempPassword: temp}, nil
}

func (s *service) findUser(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	return user, nil
}

// guardLastAdmin rejects the operation when it would leave the system with
// no admin account.
func (s *service) guardLastAdmin(ctx context.Context) error {
	count, err := s.repo.CountByRole(ctx, enums.UserRoleAdmin)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count admins")
	}
	if count <= 1 {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "cannot remove the last admin")
	}
	return nil
}

func validatePermissions(perms models.PermissionMap) error {
	for module, level := range perms {
		if !module.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown module %q", module))
		}
		if !level.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid permission level %q", level))
		}
	}
	return nil
}
