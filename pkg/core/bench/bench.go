// Package bench computes historical bench statistics: how often each player
// accepted a raid but was left off an encounter's roster.
package bench

import (
	"sort"
	"time"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// PlayerStat holds one player's benched-encounter counts per time window.
// Counts are per encounter, not per raid: a player benched for three bosses
// in one evening takes three hits.
type PlayerStat struct {
	Player   model.Player
	Today    int
	TwoWeeks int
	Month    int
	Total    int
}

// Compute builds bench statistics for every player accepted into current,
// scanning the full raid history. Players not benched in the current raid are
// excluded even when they have historical bench counts. The result is sorted
// by Today descending; ties keep signup order.
//
// The Today counter keys off current's date; now anchors the two-week and
// one-month windows, which are strictly exclusive of their lower bound.
func Compute(raids []*model.Raid, current *model.Raid, now time.Time) []PlayerStat {
	twoWeeksAgo := now.AddDate(0, 0, -14)
	monthAgo := now.AddDate(0, -1, 0)

	var stats []PlayerStat
	for _, player := range current.AcceptedPlayers() {
		stat := PlayerStat{Player: player}
		for _, raid := range raids {
			if !raid.IsAccepted(player.Name) {
				continue
			}
			for i := range raid.Encounters {
				if raid.Encounters[i].IsParticipating(player.Name) {
					continue
				}
				stat.Total++
				if sameDate(raid.Start, current.Start) {
					stat.Today++
				}
				if raid.Start.After(twoWeeksAgo) {
					stat.TwoWeeks++
				}
				if raid.Start.After(monthAgo) {
					stat.Month++
				}
			}
		}
		if stat.Today > 0 {
			stats = append(stats, stat)
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Today > stats[j].Today
	})

	return stats
}

func sameDate(a, b time.Time) bool {
	return a.Format(model.DateFormat) == b.Format(model.DateFormat)
}
