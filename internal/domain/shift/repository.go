package shift

import "context"

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id int64) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	ListClaimed(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, s Shift) error
	// ClaimHost sets the host on an unclaimed shift only. Callers verify the
	// shift exists first; zero rows written means another claimer won.
	ClaimHost(ctx context.Context, id int64, hostName string) error
	Delete(ctx context.Context, id int64) error
}
