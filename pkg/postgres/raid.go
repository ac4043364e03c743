package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// GetRaid retrieves the raid for the given date, creating it on first
// reference.
func (db *DB) GetRaid(ctx context.Context, date time.Time) (*model.Raid, error) {
	if err := db.InsertRaid(ctx, date); err != nil {
		return nil, err
	}

	raids, err := db.loadRaids(ctx, &date)
	if err != nil {
		return nil, err
	}
	if len(raids) == 0 {
		return nil, fmt.Errorf("raid %s vanished after insert", date.Format(model.DateFormat))
	}
	return raids[0], nil
}

// GetRaids retrieves the full raid history in chronological order
func (db *DB) GetRaids(ctx context.Context) ([]*model.Raid, error) {
	return db.loadRaids(ctx, nil)
}

// InsertRaid creates a raid for the given date; an existing raid is left as is
func (db *DB) InsertRaid(ctx context.Context, date time.Time) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO raid (start_date) VALUES ($1)
		ON CONFLICT (start_date) DO NOTHING
	`, date)
	if err != nil {
		return fmt.Errorf("failed to insert raid: %w", err)
	}
	return nil
}

// SetRaidFinalized sets or clears the raid's finalized timestamp
func (db *DB) SetRaidFinalized(ctx context.Context, date time.Time, finalizedAt *time.Time) error {
	_, err := db.pool.Exec(ctx, `
		UPDATE raid SET finalized_at = $2 WHERE start_date = $1
	`, date, finalizedAt)
	if err != nil {
		return fmt.Errorf("failed to update raid finalized state: %w", err)
	}
	return nil
}

// loadRaids assembles raids with their signups, encounters, assignments, and
// events. A nil date loads the whole history.
func (db *DB) loadRaids(ctx context.Context, date *time.Time) ([]*model.Raid, error) {
	_, players, err := db.loadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.pool.Query(ctx, `
		SELECT start_date, finalized_at FROM raid
		WHERE $1::date IS NULL OR start_date = $1
		ORDER BY start_date
	`, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query raids: %w", err)
	}

	var raids []*model.Raid
	byDate := make(map[string]*model.Raid)
	for rows.Next() {
		var r model.Raid
		if err := rows.Scan(&r.Start, &r.FinalizedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan raid: %w", err)
		}
		raids = append(raids, &r)
		byDate[r.Start.Format(model.DateFormat)] = &r
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating raids: %w", err)
	}

	if err := db.loadSignups(ctx, date, byDate, players); err != nil {
		return nil, err
	}
	if err := db.loadEncounters(ctx, date, byDate, players); err != nil {
		return nil, err
	}
	if err := db.loadEvents(ctx, date, byDate, players); err != nil {
		return nil, err
	}

	return raids, nil
}

func (db *DB) loadSignups(ctx context.Context, date *time.Time, byDate map[string]*model.Raid, players map[string]model.Player) error {
	rows, err := db.pool.Query(ctx, `
		SELECT raid_date, player_name, signup_time, type, comment FROM signup
		WHERE $1::date IS NULL OR raid_date = $1
		ORDER BY seq
	`, date)
	if err != nil {
		return fmt.Errorf("failed to query signups: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var raidDate time.Time
		var playerName string
		var s model.Signup
		if err := rows.Scan(&raidDate, &playerName, &s.Time, &s.Type, &s.Comment); err != nil {
			return fmt.Errorf("failed to scan signup: %w", err)
		}
		raid, ok := byDate[raidDate.Format(model.DateFormat)]
		if !ok {
			continue
		}
		s.Player = db.resolvePlayer(players, playerName)
		raid.Signups = append(raid.Signups, s)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating signups: %w", err)
	}
	return nil
}

func (db *DB) loadEncounters(ctx context.Context, date *time.Time, byDate map[string]*model.Raid, players map[string]model.Player) error {
	rows, err := db.pool.Query(ctx, `
		SELECT raid_date, boss FROM encounter
		WHERE $1::date IS NULL OR raid_date = $1
		ORDER BY raid_date, boss
	`, date)
	if err != nil {
		return fmt.Errorf("failed to query encounters: %w", err)
	}

	for rows.Next() {
		var raidDate time.Time
		var boss model.Boss
		if err := rows.Scan(&raidDate, &boss); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan encounter: %w", err)
		}
		if raid, ok := byDate[raidDate.Format(model.DateFormat)]; ok {
			raid.Encounters = append(raid.Encounters, model.Encounter{Boss: boss})
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating encounters: %w", err)
	}

	arows, err := db.pool.Query(ctx, `
		SELECT raid_date, boss, player_name, role FROM assignment
		WHERE $1::date IS NULL OR raid_date = $1
		ORDER BY seq
	`, date)
	if err != nil {
		return fmt.Errorf("failed to query assignments: %w", err)
	}
	defer arows.Close()

	for arows.Next() {
		var raidDate time.Time
		var boss model.Boss
		var playerName string
		var role model.Role
		if err := arows.Scan(&raidDate, &boss, &playerName, &role); err != nil {
			return fmt.Errorf("failed to scan assignment: %w", err)
		}
		raid, ok := byDate[raidDate.Format(model.DateFormat)]
		if !ok {
			continue
		}
		if encounter := raid.Encounter(boss); encounter != nil {
			encounter.Assign(db.resolvePlayer(players, playerName), role)
		}
	}

	if err := arows.Err(); err != nil {
		return fmt.Errorf("error iterating assignments: %w", err)
	}
	return nil
}

func (db *DB) loadEvents(ctx context.Context, date *time.Time, byDate map[string]*model.Raid, players map[string]model.Player) error {
	rows, err := db.pool.Query(ctx, `
		SELECT raid_date, player_name, event_time, type, comment FROM event
		WHERE $1::date IS NULL OR raid_date = $1
		ORDER BY event_time
	`, date)
	if err != nil {
		return fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var raidDate time.Time
		var playerName string
		var e model.Event
		if err := rows.Scan(&raidDate, &playerName, &e.Time, &e.Type, &e.Comment); err != nil {
			return fmt.Errorf("failed to scan event: %w", err)
		}
		if raid, ok := byDate[raidDate.Format(model.DateFormat)]; ok {
			e.Player = db.resolvePlayer(players, playerName)
			raid.Events = append(raid.Events, e)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating events: %w", err)
	}
	return nil
}

// resolvePlayer looks up registry data for a stored player name. Rows always
// reference an existing player through foreign keys, but a bare fallback
// keeps reads robust against a partially migrated registry.
func (db *DB) resolvePlayer(players map[string]model.Player, name string) model.Player {
	if p, ok := players[name]; ok {
		return p
	}
	return model.Player{Name: name}
}
