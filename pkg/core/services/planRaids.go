package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// RaidPlanStore defines the database operations needed for planning raids
type RaidPlanStore interface {
	GetRaids(ctx context.Context) ([]*model.Raid, error)
	InsertRaid(ctx context.Context, date time.Time) error
}

// PlanRaids creates the next count raid dates from the guild's raid schedule,
// a recurrence rule such as "FREQ=WEEKLY;BYDAY=WE,SU". Expansion starts the
// day after the latest known raid (or today when there is none); dates that
// already exist are skipped. Returns the dates that were created.
func PlanRaids(ctx context.Context, store RaidPlanStore, logger *zap.Logger, schedule string, count int) ([]time.Time, error) {
	if count <= 0 {
		return nil, fmt.Errorf("raid count must be positive, got %d: %w", count, model.ErrValidation)
	}

	rule, err := rrule.StrToRRule(schedule)
	if err != nil {
		return nil, fmt.Errorf("invalid raid schedule %q: %w", schedule, err)
	}

	logger.Debug("Planning raids", zap.String("schedule", schedule), zap.Int("count", count))

	raids, err := store.GetRaids(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch raids: %w", err)
	}

	existing := make(map[string]bool, len(raids))
	start := midnight(time.Now())
	for _, r := range raids {
		existing[r.Start.Format(model.DateFormat)] = true
		if r.Start.After(start) {
			start = r.Start
		}
	}
	start = start.AddDate(0, 0, 1)

	logger.Debug("Expanding schedule", zap.Time("from", start), zap.Int("existing", len(existing)))

	rule.DTStart(start)

	// One year ahead is plenty for any sane schedule and raid count
	candidates := rule.Between(start, start.AddDate(1, 0, 0), true)

	var created []time.Time
	for _, c := range candidates {
		if len(created) >= count {
			break
		}
		date := midnight(c)
		if existing[date.Format(model.DateFormat)] {
			continue
		}
		if err := store.InsertRaid(ctx, date); err != nil {
			return created, fmt.Errorf("failed to insert raid %s: %w", date.Format(model.DateFormat), err)
		}
		created = append(created, date)
	}

	if len(created) < count {
		return created, fmt.Errorf("schedule %q yielded only %d of %d raid dates within a year", schedule, len(created), count)
	}

	logger.Info("Raids planned",
		zap.Int("count", len(created)),
		zap.String("first", created[0].Format(model.DateFormat)),
		zap.String("last", created[len(created)-1].Format(model.DateFormat)))

	return created, nil
}

// midnight normalizes a timestamp to its calendar date in UTC
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
