package ports

import (
	"context"

	"github.com/rentwise/property-system/internal/core/domain"
)

type CreateMaintenanceInput struct {
	UnitID   string
	Issue    string
	Priority string
}

type MaintenanceRepository interface {
	List(ctx context.Context) ([]domain.MaintenanceRequest, error)
	Create(ctx context.Context, req *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error)
	CountByStatus(ctx context.Context, status domain.MaintenanceStatus) (int64, error)
}

type MaintenanceService interface {
	List(ctx context.Context) ([]domain.MaintenanceRequest, error)
	Create(ctx context.Context, input CreateMaintenanceInput) (*domain.MaintenanceRequest, error)
}
