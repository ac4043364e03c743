package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// GetPlayers retrieves the full player registry, eligible roles included
func (db *DB) GetPlayers(ctx context.Context) ([]model.Player, error) {
	players, _, err := db.loadPlayers(ctx)
	return players, err
}

// GetActivePlayers retrieves the players currently raiding with the guild
func (db *DB) GetActivePlayers(ctx context.Context) ([]model.Player, error) {
	players, _, err := db.loadPlayers(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]model.Player, 0, len(players))
	for _, p := range players {
		if p.Active {
			active = append(active, p)
		}
	}
	return active, nil
}

// GetPlayerByName retrieves a single player; unknown names return model.ErrNotFound
func (db *DB) GetPlayerByName(ctx context.Context, name string) (model.Player, error) {
	var p model.Player
	err := db.pool.QueryRow(ctx, `
		SELECT name, class, email, active FROM player WHERE name = $1
	`, name).Scan(&p.Name, &p.Class, &p.Email, &p.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Player{}, fmt.Errorf("player %q: %w", name, model.ErrNotFound)
	}
	if err != nil {
		return model.Player{}, fmt.Errorf("failed to query player: %w", err)
	}

	roles, err := db.loadRoles(ctx)
	if err != nil {
		return model.Player{}, err
	}
	p.Roles = roles[p.Name]
	return p, nil
}

// loadPlayers returns all players in name order plus a lookup map by name
func (db *DB) loadPlayers(ctx context.Context) ([]model.Player, map[string]model.Player, error) {
	roles, err := db.loadRoles(ctx)
	if err != nil {
		return nil, nil, err
	}

	rows, err := db.pool.Query(ctx, `
		SELECT name, class, email, active FROM player ORDER BY name
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []model.Player
	byName := make(map[string]model.Player)
	for rows.Next() {
		var p model.Player
		if err := rows.Scan(&p.Name, &p.Class, &p.Email, &p.Active); err != nil {
			return nil, nil, fmt.Errorf("failed to scan player: %w", err)
		}
		p.Roles = roles[p.Name]
		players = append(players, p)
		byName[p.Name] = p
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating players: %w", err)
	}

	return players, byName, nil
}

// loadRoles returns every player's eligible roles keyed by player name
func (db *DB) loadRoles(ctx context.Context) (map[string][]model.Role, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT player_name, role FROM player_role ORDER BY player_name, role
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query player roles: %w", err)
	}
	defer rows.Close()

	roles := make(map[string][]model.Role)
	for rows.Next() {
		var name string
		var role model.Role
		if err := rows.Scan(&name, &role); err != nil {
			return nil, fmt.Errorf("failed to scan player role: %w", err)
		}
		roles[name] = append(roles[name], role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating player roles: %w", err)
	}

	return roles, nil
}
