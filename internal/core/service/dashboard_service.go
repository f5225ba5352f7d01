package service

import (
	"context"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// DashboardService aggregates the headline counts across repositories.
type DashboardService struct {
	users       ports.AuthRepository
	maintenance ports.MaintenanceRepository
	payments    ports.PaymentRepository
}

func NewDashboardService(users ports.AuthRepository, maintenance ports.MaintenanceRepository, payments ports.PaymentRepository) *DashboardService {
	return &DashboardService{users: users, maintenance: maintenance, payments: payments}
}

func (s *DashboardService) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	tenants, err := s.users.CountByRole(ctx, domain.RoleTenant)
	if err != nil {
		return nil, err
	}
	open, err := s.maintenance.CountByStatus(ctx, domain.MaintenanceOpen)
	if err != nil {
		return nil, err
	}
	payments, err := s.payments.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.DashboardSummary{
		Tenants:         tenants,
		OpenMaintenance: open,
		Payments:        payments,
	}, nil
}
