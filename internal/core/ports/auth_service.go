package ports

import (
	"context"

	"github.com/rentwise/property-system/internal/core/domain"
)

// RegisterInput carries everything needed to create an account.
// DocumentURL optionally references an already-uploaded verification
// document; this service never handles the file itself.
type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	Role        domain.Role
	DocumentURL string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
