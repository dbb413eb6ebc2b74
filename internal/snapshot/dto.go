package snapshot

import "github.com/floordesk/floordesk-backend/pkg/db/models"

// Snapshot is the whole-database backup shape used by export and import.
// Orders embed their items, so the file round-trips without a join step.
type Snapshot struct {
	Categories     []models.Category     `json:"categories"`
	Positions      []models.Position     `json:"positions"`
	WorkCategories []models.WorkCategory `json:"work_categories"`
	WorkPositions  []models.WorkPosition `json:"work_positions"`
	CargoStatuses  []models.CargoStatus  `json:"cargo_statuses"`
	Orders         []models.Order        `json:"orders"`
	Users          []models.User         `json:"users"`
}

// ImportSummary reports what an import wrote.
type ImportSummary struct {
	Categories     int `json:"categories"`
	Positions      int `json:"positions"`
	WorkCategories int `json:"work_categories"`
	WorkPositions  int `json:"work_positions"`
	CargoStatuses  int `json:"cargo_statuses"`
	Orders         int `json:"orders"`
	Users          int `json:"users"`
}
