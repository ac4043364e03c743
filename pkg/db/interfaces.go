package db

import (
	"context"
	"time"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// PlayerStore provides read access to the guild's player registry
type PlayerStore interface {
	GetPlayers(ctx context.Context) ([]model.Player, error)
	GetActivePlayers(ctx context.Context) ([]model.Player, error)
	// GetPlayerByName returns model.ErrNotFound for unknown players
	GetPlayerByName(ctx context.Context, name string) (model.Player, error)
}

// RaidStore persists raids and their signups, encounters, and events.
// Raids are keyed by calendar date; GetRaid creates the raid on first
// reference. Services own all state validation, the store only persists.
type RaidStore interface {
	GetRaid(ctx context.Context, date time.Time) (*model.Raid, error)
	// GetRaids returns the full raid history in chronological order
	GetRaids(ctx context.Context) ([]*model.Raid, error)
	InsertRaid(ctx context.Context, date time.Time) error
	SetRaidFinalized(ctx context.Context, date time.Time, finalizedAt *time.Time) error

	// InsertSignup replaces any existing signup for the same player
	InsertSignup(ctx context.Context, date time.Time, signup model.Signup) error
	DeleteSignup(ctx context.Context, date time.Time, playerName string) error

	InsertEncounter(ctx context.Context, date time.Time, boss model.Boss) error
	DeleteEncounter(ctx context.Context, date time.Time, boss model.Boss) error
	// UpsertAssignment keeps the player's original roster position when
	// only the role changes
	UpsertAssignment(ctx context.Context, date time.Time, boss model.Boss, playerName string, role model.Role) error
	DeleteAssignment(ctx context.Context, date time.Time, boss model.Boss, playerName string) error

	InsertEvent(ctx context.Context, date time.Time, event model.Event) error
	// DeleteEvent removes by exact timestamp. The timestamp is a known weak
	// key: two events logged in the same instant would both be removed.
	DeleteEvent(ctx context.Context, date time.Time, eventTime time.Time) error
}

// Database combines all store interfaces. Implemented by postgres.DB.
type Database interface {
	PlayerStore
	RaidStore
}
