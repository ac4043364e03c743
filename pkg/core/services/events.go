package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// EventStore defines the database operations needed for the raid event log
type EventStore interface {
	GetRaid(ctx context.Context, date time.Time) (*model.Raid, error)
	InsertEvent(ctx context.Context, date time.Time, event model.Event) error
	DeleteEvent(ctx context.Context, date time.Time, eventTime time.Time) error
}

// AddEvent appends a note to a raid's event log with a server-assigned
// timestamp. The player must exist in the registry.
func AddEvent(ctx context.Context, store EventStore, players PlayerDirectory, logger *zap.Logger, date time.Time, playerName string, eventType model.EventType, comment string) error {
	logger.Debug("Adding event",
		zap.String("raid", date.Format(model.DateFormat)),
		zap.String("player", playerName),
		zap.String("type", string(eventType)))

	if !eventType.IsValid() {
		return fmt.Errorf("unknown event type %q: %w", eventType, model.ErrValidation)
	}

	raid, err := store.GetRaid(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to get raid: %w", err)
	}

	if raid.IsFinalized() {
		return fmt.Errorf("raid %s is finalized: %w", date.Format(model.DateFormat), model.ErrConflict)
	}

	player, err := players.GetPlayerByName(ctx, playerName)
	if err != nil {
		return fmt.Errorf("failed to look up player %q: %w", playerName, err)
	}

	event := model.Event{
		Time:    time.Now(),
		Player:  player,
		Type:    eventType,
		Comment: comment,
	}

	if err := store.InsertEvent(ctx, date, event); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// RemoveEvent deletes the event with the exact timestamp from a raid's log.
// Removing an absent event is a no-op.
func RemoveEvent(ctx context.Context, store EventStore, logger *zap.Logger, date time.Time, eventTime time.Time) error {
	logger.Debug("Removing event",
		zap.String("raid", date.Format(model.DateFormat)),
		zap.Time("event_time", eventTime))

	raid, err := store.GetRaid(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to get raid: %w", err)
	}

	if raid.IsFinalized() {
		return fmt.Errorf("raid %s is finalized: %w", date.Format(model.DateFormat), model.ErrConflict)
	}

	if err := store.DeleteEvent(ctx, date, eventTime); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}
