package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

func date(s string) time.Time {
	d, err := time.Parse(model.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

// raidOn builds a raid where everyone in accepted signed up Accepted and each
// encounter's roster is given by participants[boss].
func raidOn(day string, accepted []string, participants map[model.Boss][]string) *model.Raid {
	raid := &model.Raid{Start: date(day)}
	for _, name := range accepted {
		raid.Signups = append(raid.Signups, model.Signup{
			Player: model.Player{Name: name, Class: model.ClassShaman},
			Type:   model.SignupAccepted,
		})
	}
	for boss, names := range participants {
		enc := model.Encounter{Boss: boss}
		for _, name := range names {
			enc.Assign(model.Player{Name: name}, model.RoleMelee)
		}
		raid.Encounters = append(raid.Encounters, enc)
	}
	return raid
}

func statFor(t *testing.T, stats []PlayerStat, name string) PlayerStat {
	t.Helper()
	for _, s := range stats {
		if s.Player.Name == name {
			return s
		}
	}
	t.Fatalf("no stat for player %s", name)
	return PlayerStat{}
}

func TestCompute_CountsPerEncounter(t *testing.T) {
	current := raidOn("2024-01-06", []string{"Thrall", "Jaina"}, map[model.Boss][]string{
		model.BossTaloc:  {"Jaina"},
		model.BossVectis: {"Jaina"},
	})

	stats := Compute([]*model.Raid{current}, current, date("2024-01-06"))

	// Thrall sat out both encounters, Jaina none
	require.Len(t, stats, 1)
	assert.Equal(t, "Thrall", stats[0].Player.Name)
	assert.Equal(t, 2, stats[0].Today)
	assert.Equal(t, 2, stats[0].Total)
}

func TestCompute_ExcludesPlayersNotBenchedToday(t *testing.T) {
	history := raidOn("2024-01-01", []string{"Thrall"}, map[model.Boss][]string{
		model.BossTaloc: {},
	})
	current := raidOn("2024-01-06", []string{"Thrall"}, map[model.Boss][]string{
		model.BossTaloc: {"Thrall"},
	})

	stats := Compute([]*model.Raid{history, current}, current, date("2024-01-06"))

	// benched historically but rostered today: not reported
	assert.Empty(t, stats)
}

func TestCompute_TimeWindows(t *testing.T) {
	today := date("2024-02-01")
	bench := map[model.Boss][]string{model.BossTaloc: {}}

	old := raidOn("2023-12-01", []string{"Thrall"}, bench)       // total only
	monthEdge := raidOn("2024-01-01", []string{"Thrall"}, bench) // exactly one month back: excluded from month
	inMonth := raidOn("2024-01-10", []string{"Thrall"}, bench)
	inTwoWeeks := raidOn("2024-01-25", []string{"Thrall"}, bench)
	current := raidOn("2024-02-01", []string{"Thrall"}, bench)

	raids := []*model.Raid{old, monthEdge, inMonth, inTwoWeeks, current}
	stats := Compute(raids, current, today)

	require.Len(t, stats, 1)
	stat := stats[0]
	assert.Equal(t, 1, stat.Today)
	assert.Equal(t, 2, stat.TwoWeeks) // Jan 25 + Feb 1
	assert.Equal(t, 3, stat.Month)    // Jan 10, Jan 25, Feb 1; Jan 1 falls on the bound
	assert.Equal(t, 5, stat.Total)
}

func TestCompute_OnlyAcceptedRaidsCount(t *testing.T) {
	declined := &model.Raid{
		Start: date("2024-01-01"),
		Signups: []model.Signup{{
			Player:  model.Player{Name: "Thrall"},
			Type:    model.SignupDeclined,
			Comment: "away",
		}},
		Encounters: []model.Encounter{{Boss: model.BossTaloc}},
	}
	current := raidOn("2024-01-06", []string{"Thrall"}, map[model.Boss][]string{
		model.BossTaloc: {},
	})

	stats := Compute([]*model.Raid{declined, current}, current, date("2024-01-06"))

	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Total)
}

func TestCompute_SortedByTodayDescending(t *testing.T) {
	current := raidOn("2024-01-06", []string{"Thrall", "Jaina", "Anduin"}, map[model.Boss][]string{
		model.BossTaloc:  {"Thrall"},
		model.BossVectis: {"Thrall", "Jaina"},
	})

	stats := Compute([]*model.Raid{current}, current, date("2024-01-06"))

	require.Len(t, stats, 2)
	assert.Equal(t, "Anduin", stats[0].Player.Name)
	assert.Equal(t, 2, stats[0].Today)
	assert.Equal(t, "Jaina", stats[1].Player.Name)
	assert.Equal(t, 1, stats[1].Today)
}

func TestCompute_TiesKeepSignupOrder(t *testing.T) {
	current := raidOn("2024-01-06", []string{"Thrall", "Jaina", "Anduin"}, map[model.Boss][]string{
		model.BossTaloc: {"Anduin"},
	})

	stats := Compute([]*model.Raid{current}, current, date("2024-01-06"))

	require.Len(t, stats, 2)
	assert.Equal(t, "Thrall", stats[0].Player.Name)
	assert.Equal(t, "Jaina", stats[1].Player.Name)
}

func TestCompute_HistoricalCountsReported(t *testing.T) {
	history := raidOn("2024-01-01", []string{"Thrall", "Jaina"}, map[model.Boss][]string{
		model.BossTaloc:  {"Jaina"},
		model.BossVectis: {"Jaina"},
	})
	current := raidOn("2024-01-06", []string{"Thrall", "Jaina"}, map[model.Boss][]string{
		model.BossTaloc: {"Jaina"},
	})

	stats := Compute([]*model.Raid{history, current}, current, date("2024-01-06"))

	require.Len(t, stats, 1)
	thrall := statFor(t, stats, "Thrall")
	assert.Equal(t, 1, thrall.Today)
	assert.Equal(t, 3, thrall.Total)
}

func TestCompute_WindowsAnchoredAtNowNotRaidDate(t *testing.T) {
	// viewing a raid 40 days back: still benched "today" on that raid, but
	// outside both rolling windows
	current := raidOn("2024-01-06", []string{"Thrall"}, map[model.Boss][]string{
		model.BossTaloc: {},
	})

	stats := Compute([]*model.Raid{current}, current, date("2024-02-15"))

	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Today)
	assert.Equal(t, 0, stats[0].TwoWeeks)
	assert.Equal(t, 0, stats[0].Month)
	assert.Equal(t, 1, stats[0].Total)
}

func TestCompute_NoEncounters(t *testing.T) {
	current := raidOn("2024-01-06", []string{"Thrall"}, nil)

	stats := Compute([]*model.Raid{current}, current, date("2024-01-06"))

	assert.Empty(t, stats)
}
