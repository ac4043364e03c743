package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// InsertEvent appends a note to a raid's event log
func (db *DB) InsertEvent(ctx context.Context, date time.Time, event model.Event) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO event (id, raid_date, player_name, event_time, type, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New().String(), date, event.Player.Name, event.Time, event.Type, event.Comment)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// DeleteEvent removes events matching the exact timestamp. The timestamp is
// the log's natural key; simultaneous events would all be removed.
func (db *DB) DeleteEvent(ctx context.Context, date time.Time, eventTime time.Time) error {
	_, err := db.pool.Exec(ctx, `
		DELETE FROM event WHERE raid_date = $1 AND event_time = $2
	`, date, eventTime)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
