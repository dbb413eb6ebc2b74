package enums

import "fmt"

// PermissionLevel gates what a user can do inside one application module.
type PermissionLevel string

const (
	PermissionNone PermissionLevel = "none"
	PermissionView PermissionLevel = "view"
	PermissionEdit PermissionLevel = "edit"
)

var validPermissionLevels = []PermissionLevel{
	PermissionNone,
	PermissionView,
	PermissionEdit,
}

// String implements fmt.Stringer.
func (p PermissionLevel) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PermissionLevel.
func (p PermissionLevel) IsValid() bool {
	for _, candidate := range validPermissionLevels {
		if candidate == p {
			return true
		}
	}
	return false
}

// AllowsView reports whether the level grants at least read access.
func (p PermissionLevel) AllowsView() bool {
	return p == PermissionView || p == PermissionEdit
}

// AllowsEdit reports whether the level grants write access.
func (p PermissionLevel) AllowsEdit() bool {
	return p == PermissionEdit
}

// ParsePermissionLevel converts raw input into a PermissionLevel.
func ParsePermissionLevel(value string) (PermissionLevel, error) {
	for _, candidate := range validPermissionLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid permission level %q", value)
}

// ModuleKey identifies an application module a permission applies to.
type ModuleKey string

const (
	ModuleDashboard  ModuleKey = "dashboard"
	ModuleOrders     ModuleKey = "orders"
	ModulePositions  ModuleKey = "positions"
	ModuleCategories ModuleKey = "categories"
	ModuleDebtors    ModuleKey = "debtors"
	ModuleAnalytics  ModuleKey = "analytics"
	ModuleSettings   ModuleKey = "settings"
)

var validModuleKeys = []ModuleKey{
	ModuleDashboard,
	ModuleOrders,
	ModulePositions,
	ModuleCategories,
	ModuleDebtors,
	ModuleAnalytics,
	ModuleSettings,
}

// String implements fmt.Stringer.
func (m ModuleKey) String() string {
	return string(m)
}

// IsValid reports whether the value is a known ModuleKey.
func (m ModuleKey) IsValid() bool {
	for _, candidate := range validModuleKeys {
		if candidate == m {
			return true
		}
	}
	return false
}

// ModuleKeys returns every known module, in display order.
func ModuleKeys() []ModuleKey {
	out := make([]ModuleKey, len(validModuleKeys))
	copy(out, validModuleKeys)
	return out
}
