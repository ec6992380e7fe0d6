package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/teamhours/officehours-backend-go/internal/domain/auth"
	"github.com/teamhours/officehours-backend-go/internal/pkg/database"
)

type tokenRepositoryImpl struct {
	db *database.DB
}

func NewTokenRepository(db *database.DB) auth.TokenRepository {
	return &tokenRepositoryImpl{db: db}
}

// Store implements auth.TokenRepository.
func (r *tokenRepositoryImpl) Store(ctx context.Context, token string, userID string, expiresAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (token, user_id, expires_at, revoked, created_at)
		VALUES ($1, $2, $3, FALSE, NOW())`

	if _, err := q.Exec(ctx, query, token, userID, expiresAt); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// Revoke implements auth.TokenRepository. Revoking an unknown token is a no-op.
func (r *tokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `UPDATE refresh_tokens SET revoked = TRUE WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// IsRevoked implements auth.TokenRepository. Tokens the store has never seen
// count as revoked so only tokens issued by this instance can be redeemed.
func (r *tokenRepositoryImpl) IsRevoked(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var revoked bool
	var expiresAt time.Time
	err := q.QueryRow(ctx, `SELECT revoked, expires_at FROM refresh_tokens WHERE token = $1`, token).Scan(&revoked, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return true, nil
		}
		return false, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if time.Now().After(expiresAt) {
		return true, nil
	}
	return revoked, nil
}
