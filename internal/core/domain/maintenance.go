package domain

import "time"

// MaintenanceStatus tracks the lifecycle of a maintenance request.
type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "open"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceResolved   MaintenanceStatus = "resolved"
)

// MaintenanceRequest is a tenant-reported issue against a unit.
// New requests always start in the open state.
type MaintenanceRequest struct {
	ID        string            `json:"id"`
	UnitID    string            `json:"unit_id"`
	Issue     string            `json:"issue"`
	Priority  string            `json:"priority"`
	Status    MaintenanceStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}
