package service

import (
	"context"
	"strings"
	"time"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

type PaymentService struct {
	repo ports.PaymentRepository
}

func NewPaymentService(repo ports.PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return s.repo.List(ctx)
}

func (s *PaymentService) Create(ctx context.Context, input ports.CreatePaymentInput) (*domain.Payment, error) {
	if strings.TrimSpace(input.LeaseID) == "" || input.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	when := input.PaymentDate
	if when.IsZero() {
		when = time.Now().UTC()
	}

	payment := &domain.Payment{
		LeaseID:     input.LeaseID,
		Amount:      input.Amount,
		Status:      input.Status,
		PaymentDate: when,
		CreatedAt:   time.Now().UTC(),
	}
	return s.repo.Create(ctx, payment)
}
