package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teamhours/officehours-backend-go/internal/domain/profile"
	"github.com/teamhours/officehours-backend-go/internal/pkg/database"
)

type profileRepositoryImpl struct {
	db *database.DB
}

func NewProfileRepository(db *database.DB) profile.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

const profileColumns = `principal, name, home_time_zone_id, created_at, updated_at`

// GetByPrincipal implements profile.ProfileRepository.
func (r *profileRepositoryImpl) GetByPrincipal(ctx context.Context, principal string) (profile.UserProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE principal = $1`

	var p profile.UserProfile
	err := q.QueryRow(ctx, query, principal).Scan(
		&p.Principal,
		&p.Name,
		&p.HomeTimeZoneID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.UserProfile{}, profile.ErrProfileNotFound
		}
		return profile.UserProfile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// Upsert implements profile.ProfileRepository. Saving twice overwrites the
// previous name and time zone for the same principal.
func (r *profileRepositoryImpl) Upsert(ctx context.Context, p profile.UserProfile) (profile.UserProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_profiles (principal, name, home_time_zone_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (principal) DO UPDATE
		SET name = EXCLUDED.name, home_time_zone_id = EXCLUDED.home_time_zone_id, updated_at = NOW()
		RETURNING ` + profileColumns

	var saved profile.UserProfile
	err := q.QueryRow(ctx, query, p.Principal, p.Name, p.HomeTimeZoneID).Scan(
		&saved.Principal,
		&saved.Name,
		&saved.HomeTimeZoneID,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return profile.UserProfile{}, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return saved, nil
}
