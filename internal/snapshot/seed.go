package snapshot

import (
	"github.com/floordesk/floordesk-backend/pkg/db/models"
	"github.com/floordesk/floordesk-backend/pkg/enums"
)

// DefaultAdminUsername is the seeded account. Its password defaults to
// "admin" and should be changed after the first login.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
)

func defaultCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Vinyl", DisplayOrder: 1, Color: "#10b981"},
		{ID: 2, Name: "Solid board", DisplayOrder: 2, Color: "#f59e0b"},
		{ID: 3, Name: "Fencing", DisplayOrder: 3, Color: "#ef4444"},
		{ID: 4, Name: "Quartz parquet", DisplayOrder: 4, Color: "#3b82f6"},
		{ID: 5, Name: "Laminate", DisplayOrder: 5, Color: "#3b82f6"},
		{ID: 6, Name: "Modular parquet", DisplayOrder: 6, Color: "#f59e0b"},
		{ID: 7, Name: "Underlay", DisplayOrder: 7, Color: "#94a3b8"},
		{ID: 8, Name: "Skirting", DisplayOrder: 8, Color: "#94a3b8"},
		{ID: 9, Name: "Consumables", DisplayOrder: 9, Color: "#94a3b8"},
		{ID: 10, Name: "Plywood", DisplayOrder: 10, Color: "#94a3b8"},
		{ID: 11, Name: "Service", DisplayOrder: 11, Color: "#10b981"},
		{ID: 12, Name: "Chemicals", DisplayOrder: 12, Color: "#10b981"},
		{ID: 24, Name: "Stairs", DisplayOrder: 13, Color: "#f59e0b"},
		{ID: 25, Name: "Decorative element", DisplayOrder: 14, Color: "#3b82f6"},
		{ID: 26, Name: "Labor", DisplayOrder: 15, Color: "#10b981"},
		{ID: 27, Name: "Linoleum", DisplayOrder: 16, Color: "#10b981"},
	}
}

func defaultWorkCategories() []models.WorkCategory {
	return []models.WorkCategory{
		{ID: 1, Name: "Subfloor preparation"},
		{ID: 2, Name: "Flooring installation"},
		{ID: 3, Name: "Skirting and threshold fitting"},
		{ID: 4, Name: "Additional services"},
	}
}

func defaultWorkPositions() []models.WorkPosition {
	return []models.WorkPosition{
		{ID: 1, CategoryID: 1, Name: "Floor priming", Price: "100.00", Unit: "m2"},
		{ID: 2, CategoryID: 1, Name: "Screed sanding", Price: "250.00", Unit: "m2"},
		{ID: 3, CategoryID: 1, Name: "Self-leveling floor (labor)", Price: "450.00", Unit: "m2"},
		{ID: 4, CategoryID: 2, Name: "Laminate installation", Price: "350.00", Unit: "m2"},
		{ID: 5, CategoryID: 2, Name: "Vinyl installation", Price: "400.00", Unit: "m2"},
		{ID: 6, CategoryID: 2, Name: "Engineered board installation", Price: "650.00", Unit: "m2"},
		{ID: 7, CategoryID: 3, Name: "Skirting fitting (plastic)", Price: "150.00", Unit: "lm"},
		{ID: 8, CategoryID: 3, Name: "Skirting fitting (MDF)", Price: "300.00", Unit: "lm"},
		{ID: 9, CategoryID: 4, Name: "Debris removal", Price: "2000.00", Unit: "trip"},
	}
}

func defaultCargoStatuses() []models.CargoStatus {
	return []models.CargoStatus{
		{ID: 1, Name: "preorder", DisplayOrder: 0, Color: "#94a3b8", TextColor: "#ffffff"},
		{ID: 2, Name: "at supplier", DisplayOrder: 1, Color: "#f59e0b", TextColor: "#ffffff"},
		{ID: 3, Name: "in transit", DisplayOrder: 2, Color: "#3b82f6", TextColor: "#ffffff"},
		{ID: 4, Name: "in vehicle", DisplayOrder: 3, Color: "#3b82f6", TextColor: "#ffffff"},
		{ID: 5, Name: "in warehouse", DisplayOrder: 4, Color: "#10b981", TextColor: "#ffffff"},
		{ID: 6, Name: "in store", DisplayOrder: 5, Color: "#10b981", TextColor: "#ffffff"},
		{ID: 7, Name: "at client (debt)", DisplayOrder: 6, Color: "#ef4444", TextColor: "#ffffff"},
		{ID: 8, Name: "at client", DisplayOrder: 7, Color: "#059669", TextColor: "#ffffff"},
		{ID: 9, Name: "canceled", DisplayOrder: 8, Color: "#374151", TextColor: "#ffffff"},
		{ID: 10, Name: "returned", DisplayOrder: 9, Color: "#374151", TextColor: "#ffffff"},
	}
}

func defaultAdminPermissions() models.PermissionMap {
	perms := models.PermissionMap{}
	for _, module := range enums.ModuleKeys() {
		perms[module] = enums.PermissionEdit
	}
	return perms
}
