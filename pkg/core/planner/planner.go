// Package planner suggests encounter rosters. Candidates are ranked so that
// players who have sat on the bench the most get first pick of the open
// slots; the suggestion is advisory and never persisted.
package planner

import (
	"fmt"
	"sort"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

// Targets is the desired roster size per role for one encounter. Roles
// without an entry get no suggestions.
type Targets map[model.Role]int

// Suggestion is a proposed roster for one encounter
type Suggestion struct {
	Boss model.Boss

	// Roles maps each targeted role to the players suggested for it,
	// best candidate first. Players already assigned are not repeated.
	Roles map[model.Role][]model.Player

	// Bench lists the accepted players left over after filling the targets
	Bench []model.Player
}

// candidate tracks the ranking inputs for one unassigned player
type candidate struct {
	player        model.Player
	benchTotal    int
	assignedCount int
}

// Suggest proposes players for the open slots of the given boss encounter.
// Ranking: all-time bench count descending, then fewest assignments in the
// current raid, then signup order. Only players accepted into the current
// raid who hold the role and are not already assigned to the encounter are
// considered. Existing assignments count toward the targets.
func Suggest(raids []*model.Raid, current *model.Raid, boss model.Boss, targets Targets) (*Suggestion, error) {
	encounter := current.Encounter(boss)
	if encounter == nil {
		return nil, fmt.Errorf("raid has no encounter for %s: %w", boss, model.ErrNotFound)
	}

	benchTotals := allTimeBenchCounts(raids, current)

	var candidates []*candidate
	for _, p := range current.AcceptedPlayers() {
		if encounter.IsParticipating(p.Name) {
			continue
		}
		candidates = append(candidates, &candidate{
			player:        p,
			benchTotal:    benchTotals[p.Name],
			assignedCount: assignmentsInRaid(current, p.Name),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].benchTotal != candidates[j].benchTotal {
			return candidates[i].benchTotal > candidates[j].benchTotal
		}
		return candidates[i].assignedCount < candidates[j].assignedCount
	})

	suggestion := &Suggestion{
		Boss:  boss,
		Roles: make(map[model.Role][]model.Player),
	}

	taken := make(map[string]bool)
	for _, role := range model.Roles() {
		need := targets[role] - len(encounter.PlayersOfRole(role))
		for _, c := range candidates {
			if need <= 0 {
				break
			}
			if taken[c.player.Name] || !c.player.HasRole(role) {
				continue
			}
			suggestion.Roles[role] = append(suggestion.Roles[role], c.player)
			taken[c.player.Name] = true
			need--
		}
	}

	for _, c := range candidates {
		if !taken[c.player.Name] {
			suggestion.Bench = append(suggestion.Bench, c.player)
		}
	}

	return suggestion, nil
}

// allTimeBenchCounts returns each accepted player's total benched-encounter
// count across the whole history, counted the same way the bench statistics
// engine counts its all-time bucket.
func allTimeBenchCounts(raids []*model.Raid, current *model.Raid) map[string]int {
	totals := make(map[string]int)
	for _, p := range current.AcceptedPlayers() {
		for _, raid := range raids {
			if !raid.IsAccepted(p.Name) {
				continue
			}
			for i := range raid.Encounters {
				if !raid.Encounters[i].IsParticipating(p.Name) {
					totals[p.Name]++
				}
			}
		}
	}
	return totals
}

// assignmentsInRaid counts how many encounters of the raid the player is on
func assignmentsInRaid(raid *model.Raid, playerName string) int {
	count := 0
	for i := range raid.Encounters {
		if raid.Encounters[i].IsParticipating(playerName) {
			count++
		}
	}
	return count
}
