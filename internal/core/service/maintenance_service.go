package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

type MaintenanceService struct {
	repo   ports.MaintenanceRepository
	logger zerolog.Logger
}

func NewMaintenanceService(repo ports.MaintenanceRepository, logger zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{repo: repo, logger: logger}
}

func (s *MaintenanceService) List(ctx context.Context) ([]domain.MaintenanceRequest, error) {
	return s.repo.List(ctx)
}

// Create records a new request. The status is always forced to open;
// callers cannot create a request in any other state.
func (s *MaintenanceService) Create(ctx context.Context, input ports.CreateMaintenanceInput) (*domain.MaintenanceRequest, error) {
	if strings.TrimSpace(input.UnitID) == "" || strings.TrimSpace(input.Issue) == "" {
		return nil, domain.ErrInvalidInput
	}

	req := &domain.MaintenanceRequest{
		UnitID:    input.UnitID,
		Issue:     input.Issue,
		Priority:  input.Priority,
		Status:    domain.MaintenanceOpen,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("unit_id", created.UnitID).Str("priority", created.Priority).Msg("maintenance request created")
	return created, nil
}
