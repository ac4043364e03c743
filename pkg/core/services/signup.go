package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// SignupRequest is one player's availability submission
type SignupRequest struct {
	Player  string
	Type    model.SignupType
	Comment string
}

// SignupResult reports the outcome for one player in a batch submission
type SignupResult struct {
	Player string
	Err    error
}

// SignupStore defines the database operations needed for the signup ledger
type SignupStore interface {
	GetRaid(ctx context.Context, date time.Time) (*model.Raid, error)
	InsertSignup(ctx context.Context, date time.Time, signup model.Signup) error
	DeleteSignup(ctx context.Context, date time.Time, playerName string) error
}

// PlayerDirectory defines the player registry lookup needed by services
type PlayerDirectory interface {
	GetPlayerByName(ctx context.Context, name string) (model.Player, error)
}

// AddSignups records availability responses for a raid. Each request is
// validated and persisted independently: one player's failure is reported in
// their SignupResult and does not block the rest of the batch. Signups of any
// type other than Accepted require a comment.
func AddSignups(ctx context.Context, store SignupStore, players PlayerDirectory, logger *zap.Logger, date time.Time, requests []SignupRequest) ([]SignupResult, error) {
	logger.Debug("Adding signups", zap.String("raid", date.Format(model.DateFormat)), zap.Int("count", len(requests)))

	raid, err := store.GetRaid(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get raid: %w", err)
	}

	if raid.IsFinalized() {
		return nil, fmt.Errorf("raid %s is finalized: %w", date.Format(model.DateFormat), model.ErrConflict)
	}

	results := make([]SignupResult, 0, len(requests))
	for _, req := range requests {
		results = append(results, SignupResult{
			Player: req.Player,
			Err:    addSignup(ctx, store, players, date, req),
		})
	}

	for _, res := range results {
		if res.Err != nil {
			logger.Info("Signup rejected", zap.String("player", res.Player), zap.Error(res.Err))
		}
	}

	return results, nil
}

func addSignup(ctx context.Context, store SignupStore, players PlayerDirectory, date time.Time, req SignupRequest) error {
	if !req.Type.IsValid() {
		return fmt.Errorf("unknown signup type %q: %w", req.Type, model.ErrValidation)
	}
	if req.Type != model.SignupAccepted && req.Comment == "" {
		return fmt.Errorf("signups of type %s require a comment: %w", req.Type, model.ErrValidation)
	}

	player, err := players.GetPlayerByName(ctx, req.Player)
	if err != nil {
		return fmt.Errorf("failed to look up player %q: %w", req.Player, err)
	}

	signup := model.Signup{
		Time:    time.Now(),
		Player:  player,
		Type:    req.Type,
		Comment: req.Comment,
	}

	if err := store.InsertSignup(ctx, date, signup); err != nil {
		return fmt.Errorf("failed to insert signup: %w", err)
	}

	return nil
}

// RemoveSignup withdraws a player's signup from a raid. Removing a signup
// that does not exist is a no-op.
func RemoveSignup(ctx context.Context, store SignupStore, logger *zap.Logger, date time.Time, playerName string) error {
	logger.Debug("Removing signup", zap.String("raid", date.Format(model.DateFormat)), zap.String("player", playerName))

	raid, err := store.GetRaid(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to get raid: %w", err)
	}

	if raid.IsFinalized() {
		return fmt.Errorf("raid %s is finalized: %w", date.Format(model.DateFormat), model.ErrConflict)
	}

	if err := store.DeleteSignup(ctx, date, playerName); err != nil {
		return fmt.Errorf("failed to delete signup: %w", err)
	}

	return nil
}
