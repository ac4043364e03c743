package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// InsertEncounter adds a boss encounter to a raid
func (db *DB) InsertEncounter(ctx context.Context, date time.Time, boss model.Boss) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO encounter (raid_date, boss) VALUES ($1, $2)
	`, date, boss)
	if err != nil {
		return fmt.Errorf("failed to insert encounter: %w", err)
	}
	return nil
}

// DeleteEncounter removes a boss encounter and, via cascade, its roster
func (db *DB) DeleteEncounter(ctx context.Context, date time.Time, boss model.Boss) error {
	_, err := db.pool.Exec(ctx, `
		DELETE FROM encounter WHERE raid_date = $1 AND boss = $2
	`, date, boss)
	if err != nil {
		return fmt.Errorf("failed to delete encounter: %w", err)
	}
	return nil
}

// UpsertAssignment puts a player on an encounter roster under the given
// role. Re-assigning only changes the role; the row keeps its sequence so
// roster order reflects first assignment.
func (db *DB) UpsertAssignment(ctx context.Context, date time.Time, boss model.Boss, playerName string, role model.Role) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO assignment (id, raid_date, boss, player_name, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (raid_date, boss, player_name) DO UPDATE
		SET role = EXCLUDED.role
	`, uuid.New().String(), date, boss, playerName, role)
	if err != nil {
		return fmt.Errorf("failed to upsert assignment: %w", err)
	}
	return nil
}

// DeleteAssignment removes a player from an encounter roster; absent
// assignments are a no-op
func (db *DB) DeleteAssignment(ctx context.Context, date time.Time, boss model.Boss, playerName string) error {
	_, err := db.pool.Exec(ctx, `
		DELETE FROM assignment WHERE raid_date = $1 AND boss = $2 AND player_name = $3
	`, date, boss, playerName)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}
