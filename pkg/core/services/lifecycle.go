package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// LifecycleStore defines the database operations needed for the raid lifecycle
type LifecycleStore interface {
	GetRaid(ctx context.Context, date time.Time) (*model.Raid, error)
	SetRaidFinalized(ctx context.Context, date time.Time, finalizedAt *time.Time) error
}

// FinalizeRaid locks a raid's roster, signups, and event log for edits.
// Finalizing an already finalized raid is rejected.
func FinalizeRaid(ctx context.Context, store LifecycleStore, logger *zap.Logger, date time.Time, now time.Time) error {
	raid, err := store.GetRaid(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to get raid: %w", err)
	}

	if raid.IsFinalized() {
		return fmt.Errorf("raid %s is already finalized: %w", date.Format(model.DateFormat), model.ErrConflict)
	}

	if err := store.SetRaidFinalized(ctx, date, &now); err != nil {
		return fmt.Errorf("failed to finalize raid: %w", err)
	}

	logger.Info("Raid finalized", zap.String("raid", date.Format(model.DateFormat)), zap.Time("finalized_at", now))
	return nil
}

// ReopenRaid unlocks a finalized raid for further edits. Reopening a raid
// that is already open is rejected.
func ReopenRaid(ctx context.Context, store LifecycleStore, logger *zap.Logger, date time.Time) error {
	raid, err := store.GetRaid(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to get raid: %w", err)
	}

	if !raid.IsFinalized() {
		return fmt.Errorf("raid %s is not finalized: %w", date.Format(model.DateFormat), model.ErrConflict)
	}

	if err := store.SetRaidFinalized(ctx, date, nil); err != nil {
		return fmt.Errorf("failed to reopen raid: %w", err)
	}

	logger.Info("Raid reopened", zap.String("raid", date.Format(model.DateFormat)))
	return nil
}
