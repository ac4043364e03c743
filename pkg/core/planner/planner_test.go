package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

func acceptedSignup(name string, roles ...model.Role) model.Signup {
	return model.Signup{
		Player: model.Player{Name: name, Class: model.ClassPaladin, Roles: roles},
		Type:   model.SignupAccepted,
	}
}

func TestSuggest_NoEncounter(t *testing.T) {
	current := &model.Raid{Start: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)}

	_, err := Suggest(nil, current, model.BossTaloc, Targets{})

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestSuggest_FillsRolesFromAcceptedPlayers(t *testing.T) {
	current := &model.Raid{
		Start: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		Signups: []model.Signup{
			acceptedSignup("Thrall", model.RoleTank),
			acceptedSignup("Jaina", model.RoleRanged),
			acceptedSignup("Anduin", model.RoleHealer),
		},
		Encounters: []model.Encounter{{Boss: model.BossTaloc}},
	}

	suggestion, err := Suggest(nil, current, model.BossTaloc, Targets{
		model.RoleTank:   1,
		model.RoleHealer: 1,
		model.RoleRanged: 1,
	})

	require.NoError(t, err)
	require.Len(t, suggestion.Roles[model.RoleTank], 1)
	assert.Equal(t, "Thrall", suggestion.Roles[model.RoleTank][0].Name)
	require.Len(t, suggestion.Roles[model.RoleHealer], 1)
	assert.Equal(t, "Anduin", suggestion.Roles[model.RoleHealer][0].Name)
	require.Len(t, suggestion.Roles[model.RoleRanged], 1)
	assert.Equal(t, "Jaina", suggestion.Roles[model.RoleRanged][0].Name)
	assert.Empty(t, suggestion.Bench)
}

func TestSuggest_PrefersBenchedPlayers(t *testing.T) {
	// Muradin sat out two encounters last raid, Thrall none
	history := &model.Raid{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Signups: []model.Signup{
			acceptedSignup("Thrall", model.RoleTank),
			acceptedSignup("Muradin", model.RoleTank),
		},
		Encounters: []model.Encounter{{Boss: model.BossTaloc}, {Boss: model.BossVectis}},
	}
	history.Encounters[0].Assign(model.Player{Name: "Thrall"}, model.RoleTank)
	history.Encounters[1].Assign(model.Player{Name: "Thrall"}, model.RoleTank)

	current := &model.Raid{
		Start: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		Signups: []model.Signup{
			acceptedSignup("Thrall", model.RoleTank),
			acceptedSignup("Muradin", model.RoleTank),
		},
		Encounters: []model.Encounter{{Boss: model.BossMother}},
	}

	suggestion, err := Suggest([]*model.Raid{history, current}, current, model.BossMother, Targets{
		model.RoleTank: 1,
	})

	require.NoError(t, err)
	require.Len(t, suggestion.Roles[model.RoleTank], 1)
	assert.Equal(t, "Muradin", suggestion.Roles[model.RoleTank][0].Name)
	require.Len(t, suggestion.Bench, 1)
	assert.Equal(t, "Thrall", suggestion.Bench[0].Name)
}

func TestSuggest_NeverRepeatsAssignedPlayers(t *testing.T) {
	current := &model.Raid{
		Start: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		Signups: []model.Signup{
			acceptedSignup("Thrall", model.RoleTank),
			acceptedSignup("Muradin", model.RoleTank),
		},
		Encounters: []model.Encounter{{Boss: model.BossTaloc}},
	}
	current.Encounters[0].Assign(model.Player{Name: "Thrall", Roles: []model.Role{model.RoleTank}}, model.RoleTank)

	suggestion, err := Suggest([]*model.Raid{current}, current, model.BossTaloc, Targets{
		model.RoleTank: 2,
	})

	require.NoError(t, err)
	// Thrall is already on the roster and counts toward the target
	require.Len(t, suggestion.Roles[model.RoleTank], 1)
	assert.Equal(t, "Muradin", suggestion.Roles[model.RoleTank][0].Name)
}

func TestSuggest_RespectsRoleEligibility(t *testing.T) {
	current := &model.Raid{
		Start: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		Signups: []model.Signup{
			acceptedSignup("Jaina", model.RoleRanged),
		},
		Encounters: []model.Encounter{{Boss: model.BossTaloc}},
	}

	suggestion, err := Suggest(nil, current, model.BossTaloc, Targets{
		model.RoleTank: 2,
	})

	require.NoError(t, err)
	assert.Empty(t, suggestion.Roles[model.RoleTank])
	require.Len(t, suggestion.Bench, 1)
	assert.Equal(t, "Jaina", suggestion.Bench[0].Name)
}

func TestSuggest_PlayerFillsOnlyOneRole(t *testing.T) {
	current := &model.Raid{
		Start: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		Signups: []model.Signup{
			acceptedSignup("Thrall", model.RoleTank, model.RoleMelee),
		},
		Encounters: []model.Encounter{{Boss: model.BossTaloc}},
	}

	suggestion, err := Suggest(nil, current, model.BossTaloc, Targets{
		model.RoleTank:  1,
		model.RoleMelee: 1,
	})

	require.NoError(t, err)
	require.Len(t, suggestion.Roles[model.RoleTank], 1)
	assert.Empty(t, suggestion.Roles[model.RoleMelee])
}

func TestSuggest_TiesBrokenByFewestAssignments(t *testing.T) {
	current := &model.Raid{
		Start: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		Signups: []model.Signup{
			acceptedSignup("Thrall", model.RoleTank),
			acceptedSignup("Muradin", model.RoleTank),
		},
		Encounters: []model.Encounter{{Boss: model.BossTaloc}, {Boss: model.BossVectis}},
	}
	// Thrall already tanks Taloc this raid, Muradin has nothing yet
	current.Encounters[0].Assign(model.Player{Name: "Thrall", Roles: []model.Role{model.RoleTank}}, model.RoleTank)

	// no history: bench totals are equal, the current-raid assignment count decides
	suggestion, err := Suggest(nil, current, model.BossVectis, Targets{
		model.RoleTank: 1,
	})

	require.NoError(t, err)
	require.Len(t, suggestion.Roles[model.RoleTank], 1)
	assert.Equal(t, "Muradin", suggestion.Roles[model.RoleTank][0].Name)
}
