package ports

import (
	"context"
	"time"

	"github.com/rentwise/property-system/internal/core/domain"
)

type CreatePaymentInput struct {
	LeaseID     string
	Amount      float64
	Status      string
	PaymentDate time.Time
}

type PaymentRepository interface {
	// List returns payments ordered by payment date, newest first.
	List(ctx context.Context) ([]domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Count(ctx context.Context) (int64, error)
}

type PaymentService interface {
	List(ctx context.Context) ([]domain.Payment, error)
	Create(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error)
}
