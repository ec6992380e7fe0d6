package cron

import (
	"context"
	"log/slog"

	"github.com/teamhours/officehours-backend-go/internal/domain/shift"
	"github.com/teamhours/officehours-backend-go/internal/pkg/timezone"
)

// QueueWatchJob logs how many shifts in the upcoming claim window are still
// unclaimed, so coverage gaps show up in the logs before anyone complains.
func QueueWatchJob(shiftService shift.ShiftService) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		queue, err := shiftService.GetClaimQueue(ctx, timezone.UTC.ID)
		if err != nil {
			return err
		}

		summary, err := shiftService.GetAdminSummary(ctx)
		if err != nil {
			return err
		}

		slog.Info("Claim queue status",
			"unclaimed", len(queue),
			"total_in_window", summary.ShiftStats.TotalShifts,
			"claimed_in_window", summary.ShiftStats.ClaimedShifts,
		)
		return nil
	}
}
