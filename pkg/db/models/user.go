package models

import (
	"time"

	"github.com/floordesk/floordesk-backend/pkg/enums"
)

// PermissionMap maps application modules to the permission level granted.
type PermissionMap map[enums.ModuleKey]enums.PermissionLevel

// Level returns the granted level for a module, defaulting to none.
func (p PermissionMap) Level(module enums.ModuleKey) enums.PermissionLevel {
	if p == nil {
		return enums.PermissionNone
	}
	if lvl, ok := p[module]; ok {
		return lvl
	}
	return enums.PermissionNone
}

// User is a staff account for the single-tenant dashboard.
type User struct {
	ID           int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string         `gorm:"column:username;not null;uniqueIndex"`
	PasswordHash string         `gorm:"column:password_hash;not null;default:''"`
	Role         enums.UserRole `gorm:"column:role;not null;default:'user'"`
	Permissions  PermissionMap  `gorm:"column:permissions;type:text;serializer:json"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
