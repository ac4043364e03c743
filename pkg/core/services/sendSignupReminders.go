package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// ReminderSent represents a player who was successfully sent a reminder
type ReminderSent struct {
	Player string
	Email  string
}

// FailedEmail represents a player whose reminder email could not be sent
type FailedEmail struct {
	Player string
	Email  string
	Error  string
}

// ReminderStore defines the database operations needed for signup reminders
type ReminderStore interface {
	GetRaids(ctx context.Context) ([]*model.Raid, error)
}

// ActivePlayerLister lists the players currently raiding with the guild
type ActivePlayerLister interface {
	GetActivePlayers(ctx context.Context) ([]model.Player, error)
}

// Mailer sends a single email. Implemented by gmailclient.Client.
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// SendSignupReminders emails every active player who has not yet responded to
// the next upcoming raid. Send failures are reported per player and do not
// stop the rest of the batch.
func SendSignupReminders(ctx context.Context, store ReminderStore, players ActivePlayerLister, mailer Mailer, logger *zap.Logger) ([]ReminderSent, []FailedEmail, error) {
	logger.Debug("Sending signup reminders")

	raids, err := store.GetRaids(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch raids: %w", err)
	}

	raid := nextUpcomingRaid(raids, time.Now())
	if raid == nil {
		return nil, nil, fmt.Errorf("no upcoming raid found - plan raids first: %w", model.ErrNotFound)
	}

	date := raid.Start.Format(model.DateFormat)
	logger.Debug("Found upcoming raid", zap.String("raid", date), zap.Int("signups", len(raid.Signups)))

	signedUp := make(map[string]bool, len(raid.Signups))
	for _, s := range raid.Signups {
		signedUp[s.Player.Name] = true
	}

	active, err := players.GetActivePlayers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch active players: %w", err)
	}

	var sent []ReminderSent
	var failed []FailedEmail
	for _, p := range active {
		if signedUp[p.Name] {
			continue
		}
		if p.Email == "" {
			logger.Warn("Player has no email address, skipping reminder", zap.String("player", p.Name))
			continue
		}

		subject := fmt.Sprintf("Raid signup needed for %s", date)
		body := fmt.Sprintf(
			"Hi %s,\n\nYou have not signed up for the raid on %s yet.\n"+
				"Please submit your availability so the rosters can be planned.\n\n"+
				"See you in there!\n", p.Name, date)

		if err := mailer.SendEmail(p.Email, subject, body); err != nil {
			logger.Error("Failed to send reminder", zap.String("player", p.Name), zap.Error(err))
			failed = append(failed, FailedEmail{Player: p.Name, Email: p.Email, Error: err.Error()})
			continue
		}
		sent = append(sent, ReminderSent{Player: p.Name, Email: p.Email})
	}

	logger.Info("Signup reminders sent",
		zap.String("raid", date),
		zap.Int("sent", len(sent)),
		zap.Int("failed", len(failed)))

	return sent, failed, nil
}

// nextUpcomingRaid returns the earliest raid starting today or later
func nextUpcomingRaid(raids []*model.Raid, now time.Time) *model.Raid {
	today := midnight(now)
	var next *model.Raid
	for _, r := range raids {
		if r.Start.Before(today) {
			continue
		}
		if next == nil || r.Start.Before(next.Start) {
			next = r
		}
	}
	return next
}
