package ports

import "context"

// DashboardSummary holds the headline counts shown on the admin and
// owner dashboards.
type DashboardSummary struct {
	Tenants         int64 `json:"tenants"`
	OpenMaintenance int64 `json:"open_maintenance"`
	Payments        int64 `json:"payments"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
