package auth

import (
	"context"
	"time"
)

// TokenRepository persists issued refresh tokens so they survive restarts and
// can be revoked server-side.
type TokenRepository interface {
	Store(ctx context.Context, token string, userID string, expiresAt time.Time) error
	Revoke(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
