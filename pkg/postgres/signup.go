package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// InsertSignup records a signup for a raid. A player's existing signup for
// the same raid is replaced, keeping its original position in signup order.
func (db *DB) InsertSignup(ctx context.Context, date time.Time, signup model.Signup) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO signup (id, raid_date, player_name, signup_time, type, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (raid_date, player_name) DO UPDATE
		SET signup_time = EXCLUDED.signup_time,
		    type = EXCLUDED.type,
		    comment = EXCLUDED.comment
	`, uuid.New().String(), date, signup.Player.Name, signup.Time, signup.Type, signup.Comment)
	if err != nil {
		return fmt.Errorf("failed to insert signup: %w", err)
	}
	return nil
}

// DeleteSignup removes a player's signup from a raid; absent signups are a no-op
func (db *DB) DeleteSignup(ctx context.Context, date time.Time, playerName string) error {
	_, err := db.pool.Exec(ctx, `
		DELETE FROM signup WHERE raid_date = $1 AND player_name = $2
	`, date, playerName)
	if err != nil {
		return fmt.Errorf("failed to delete signup: %w", err)
	}
	return nil
}
