package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// RosterStore defines the database operations needed for encounter rosters
type RosterStore interface {
	GetRaid(ctx context.Context, date time.Time) (*model.Raid, error)
	InsertEncounter(ctx context.Context, date time.Time, boss model.Boss) error
	DeleteEncounter(ctx context.Context, date time.Time, boss model.Boss) error
	UpsertAssignment(ctx context.Context, date time.Time, boss model.Boss, playerName string, role model.Role) error
	DeleteAssignment(ctx context.Context, date time.Time, boss model.Boss, playerName string) error
}

// AddEncounter adds a boss encounter to a raid. Each boss can appear at most
// once per raid.
func AddEncounter(ctx context.Context, store RosterStore, logger *zap.Logger, date time.Time, boss model.Boss) error {
	logger.Debug("Adding encounter", zap.String("raid", date.Format(model.DateFormat)), zap.String("boss", string(boss)))

	if !boss.IsValid() {
		return fmt.Errorf("unknown boss %q: %w", boss, model.ErrValidation)
	}

	raid, err := store.GetRaid(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to get raid: %w", err)
	}

	if raid.IsFinalized() {
		return fmt.Errorf("raid %s is finalized: %w", date.Format(model.DateFormat), model.ErrConflict)
	}
	if raid.ContainsBoss(boss) {
		return fmt.Errorf("raid already contains an encounter for %s: %w", boss, model.ErrConflict)
	}

	if err := store.InsertEncounter(ctx, date, boss); err != nil {
		return fmt.Errorf("failed to insert encounter: %w", err)
	}

	logger.Info("Encounter added", zap.String("raid", date.Format(model.DateFormat)), zap.String("boss", string(boss)))
	return nil
}

// DeleteEncounter removes a boss encounter and its roster from a raid.
// Deleting an encounter that does not exist is a no-op.
func DeleteEncounter(ctx context.Context, store RosterStore, logger *zap.Logger, date time.Time, boss model.Boss) error {
	logger.Debug("Deleting encounter", zap.String("raid", date.Format(model.DateFormat)), zap.String("boss", string(boss)))

	raid, err := store.GetRaid(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to get raid: %w", err)
	}

	if raid.IsFinalized() {
		return fmt.Errorf("raid %s is finalized: %w", date.Format(model.DateFormat), model.ErrConflict)
	}

	if err := store.DeleteEncounter(ctx, date, boss); err != nil {
		return fmt.Errorf("failed to delete encounter: %w", err)
	}

	return nil
}

// AssignPlayer puts an accepted player on an encounter's roster under the
// given role. A player already on the roster keeps their position and takes
// the new role. Role eligibility is deliberately not checked here: the
// presentation layer only offers a player's eligible roles, mirroring the
// signup sheet the guild is used to.
func AssignPlayer(ctx context.Context, store RosterStore, logger *zap.Logger, date time.Time, boss model.Boss, playerName string, role model.Role) error {
	logger.Debug("Assigning player",
		zap.String("raid", date.Format(model.DateFormat)),
		zap.String("boss", string(boss)),
		zap.String("player", playerName),
		zap.String("role", string(role)))

	if !role.IsValid() {
		return fmt.Errorf("unknown role %q: %w", role, model.ErrValidation)
	}

	raid, err := store.GetRaid(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to get raid: %w", err)
	}

	if raid.IsFinalized() {
		return fmt.Errorf("raid %s is finalized: %w", date.Format(model.DateFormat), model.ErrConflict)
	}
	if !raid.ContainsBoss(boss) {
		return fmt.Errorf("raid has no encounter for %s: %w", boss, model.ErrNotFound)
	}
	if !raid.IsAccepted(playerName) {
		return fmt.Errorf("player %s has not accepted the raid: %w", playerName, model.ErrValidation)
	}

	if err := store.UpsertAssignment(ctx, date, boss, playerName, role); err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}

	logger.Info("Player assigned",
		zap.String("raid", date.Format(model.DateFormat)),
		zap.String("boss", string(boss)),
		zap.String("player", playerName),
		zap.String("role", string(role)))
	return nil
}

// RemovePlayer takes a player off an encounter's roster. Removing a player
// who is not on the roster is a no-op.
func RemovePlayer(ctx context.Context, store RosterStore, logger *zap.Logger, date time.Time, boss model.Boss, playerName string) error {
	logger.Debug("Removing player",
		zap.String("raid", date.Format(model.DateFormat)),
		zap.String("boss", string(boss)),
		zap.String("player", playerName))

	raid, err := store.GetRaid(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to get raid: %w", err)
	}

	if raid.IsFinalized() {
		return fmt.Errorf("raid %s is finalized: %w", date.Format(model.DateFormat), model.ErrConflict)
	}
	if !raid.ContainsBoss(boss) {
		return fmt.Errorf("raid has no encounter for %s: %w", boss, model.ErrNotFound)
	}

	if err := store.DeleteAssignment(ctx, date, boss, playerName); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}
