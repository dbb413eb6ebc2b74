package users

import (
	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"github.com/floordesk/floordesk-backend/pkg/enums"
)

// LoginInput captures the credential form.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the minted access token and the authenticated user.
type LoginResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// PublicUser is the account shape returned to clients, without credentials.
type PublicUser struct {
	ID          int64                `json:"id"`
	Username    string               `json:"username"`
	Role        enums.UserRole       `json:"role"`
	Permissions models.PermissionMap `json:"permissions"`
}

// CreateUserInput captures the account creation form.
type CreateUserInput struct {
	Username    string               `json:"username" validate:"required,min=3"`
	Password    string               `json:"password" validate:"required,min=4"`
	Role        enums.UserRole       `json:"role" validate:"required"`
	Permissions models.PermissionMap `json:"permissions"`
}

// UpdateUserInput captures the account edit form. A nil password leaves the
// stored credential untouched.
type UpdateUserInput struct {
	Role        enums.UserRole       `json:"role" validate:"required"`
	Permissions models.PermissionMap `json:"permissions"`
	Password    *string              `json:"password" validate:"omitempty,min=4"`
}

// ResetPasswordResult returns the generated temporary credential once.
type ResetPasswordResult struct {
	TempPassword string `json:"temp_password"`
}

func publicUser(u *models.User) PublicUser {
	return PublicUser{
		ID:          u.ID,
		Username:    u.Username,
		Role:        u.Role,
		Permissions: u.Permissions,
	}
}
