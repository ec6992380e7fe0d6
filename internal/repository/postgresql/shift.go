package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teamhours/officehours-backend-go/internal/domain/shift"
	"github.com/teamhours/officehours-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, start_time, end_time, recurrence, notes, meeting_link, host_name, created_by, created_at, updated_at`

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (start_time, end_time, recurrence, notes, meeting_link, host_name, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + shiftColumns

	row := q.QueryRow(ctx, query,
		s.StartTime, s.EndTime, string(s.Recurrence), s.Notes, s.MeetingLink, s.HostName, s.CreatedBy)

	created, err := scanShift(row)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id int64) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return s, nil
}

// List implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	return r.list(ctx, `SELECT `+shiftColumns+` FROM shifts ORDER BY start_time`)
}

// ListClaimed implements shift.ShiftRepository. Blank and whitespace-only
// hosts count as unclaimed, matching the claim-queue predicate.
func (r *shiftRepositoryImpl) ListClaimed(ctx context.Context) ([]shift.Shift, error) {
	return r.list(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE TRIM(host_name) <> '' ORDER BY start_time`)
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET start_time = $2, end_time = $3, notes = $4, meeting_link = $5, host_name = $6, updated_at = NOW()
		WHERE id = $1`

	tag, err := q.Exec(ctx, query, s.ID, s.StartTime, s.EndTime, s.Notes, s.MeetingLink, s.HostName)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// ClaimHost implements shift.ShiftRepository. The predicate makes the write
// land only on an unclaimed row, so two racing claimers cannot both win even
// under read-committed: the loser's UPDATE matches zero rows.
func (r *shiftRepositoryImpl) ClaimHost(ctx context.Context, id int64, hostName string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET host_name = $2, updated_at = NOW()
		WHERE id = $1 AND TRIM(host_name) = ''`

	tag, err := q.Exec(ctx, query, id, hostName)
	if err != nil {
		return fmt.Errorf("failed to claim shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftAlreadyClaimed
	}
	return nil
}

// Delete implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func (r *shiftRepositoryImpl) list(ctx context.Context, query string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shifts: %w", err)
	}
	return shifts, nil
}

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	var recurrence string
	err := row.Scan(
		&s.ID,
		&s.StartTime,
		&s.EndTime,
		&recurrence,
		&s.Notes,
		&s.MeetingLink,
		&s.HostName,
		&s.CreatedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, err
	}
	s.Recurrence = shift.Recurrence(recurrence)
	return s, nil
}
