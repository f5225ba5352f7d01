package ports

import (
	"context"
	"time"
)

// TokenRevoker is a denylist of JWT IDs. Entries only need to live as
// long as the token itself, so Revoke takes the remaining lifetime.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
