package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

type mockRosterStore struct {
	raid               *model.Raid
	insertedEncounters []model.Boss
	deletedEncounters  []model.Boss
	assignments        []string
	removals           []string
}

func (m *mockRosterStore) GetRaid(ctx context.Context, date time.Time) (*model.Raid, error) {
	return m.raid, nil
}

func (m *mockRosterStore) InsertEncounter(ctx context.Context, date time.Time, boss model.Boss) error {
	m.insertedEncounters = append(m.insertedEncounters, boss)
	return nil
}

func (m *mockRosterStore) DeleteEncounter(ctx context.Context, date time.Time, boss model.Boss) error {
	m.deletedEncounters = append(m.deletedEncounters, boss)
	return nil
}

func (m *mockRosterStore) UpsertAssignment(ctx context.Context, date time.Time, boss model.Boss, playerName string, role model.Role) error {
	m.assignments = append(m.assignments, playerName)
	return nil
}

func (m *mockRosterStore) DeleteAssignment(ctx context.Context, date time.Time, boss model.Boss, playerName string) error {
	m.removals = append(m.removals, playerName)
	return nil
}

func raidWithEncounter(boss model.Boss, accepted ...string) *model.Raid {
	raid := &model.Raid{
		Start:      raidDate,
		Encounters: []model.Encounter{{Boss: boss}},
	}
	for _, name := range accepted {
		raid.Signups = append(raid.Signups, model.Signup{
			Player: model.Player{Name: name, Class: model.ClassMage},
			Type:   model.SignupAccepted,
		})
	}
	return raid
}

func TestAddEncounter_Success(t *testing.T) {
	store := &mockRosterStore{raid: openRaid()}

	err := AddEncounter(context.Background(), store, zap.NewNop(), raidDate, model.BossTaloc)

	require.NoError(t, err)
	assert.Equal(t, []model.Boss{model.BossTaloc}, store.insertedEncounters)
}

func TestAddEncounter_UnknownBoss(t *testing.T) {
	store := &mockRosterStore{raid: openRaid()}

	err := AddEncounter(context.Background(), store, zap.NewNop(), raidDate, model.Boss("Ragnaros"))

	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Empty(t, store.insertedEncounters)
}

func TestAddEncounter_UnknownSentinelRejected(t *testing.T) {
	store := &mockRosterStore{raid: openRaid()}

	err := AddEncounter(context.Background(), store, zap.NewNop(), raidDate, model.BossUnknown)

	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestAddEncounter_Duplicate(t *testing.T) {
	store := &mockRosterStore{raid: raidWithEncounter(model.BossTaloc)}

	err := AddEncounter(context.Background(), store, zap.NewNop(), raidDate, model.BossTaloc)

	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestAddEncounter_Finalized(t *testing.T) {
	store := &mockRosterStore{raid: finalizedRaid()}

	err := AddEncounter(context.Background(), store, zap.NewNop(), raidDate, model.BossTaloc)

	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestDeleteEncounter_Success(t *testing.T) {
	store := &mockRosterStore{raid: raidWithEncounter(model.BossTaloc)}

	err := DeleteEncounter(context.Background(), store, zap.NewNop(), raidDate, model.BossTaloc)

	require.NoError(t, err)
	assert.Equal(t, []model.Boss{model.BossTaloc}, store.deletedEncounters)
}

func TestDeleteEncounter_AbsentIsNoOp(t *testing.T) {
	store := &mockRosterStore{raid: openRaid()}

	err := DeleteEncounter(context.Background(), store, zap.NewNop(), raidDate, model.BossTaloc)

	assert.NoError(t, err)
}

func TestAssignPlayer_Success(t *testing.T) {
	store := &mockRosterStore{raid: raidWithEncounter(model.BossTaloc, "Thrall")}

	err := AssignPlayer(context.Background(), store, zap.NewNop(), raidDate, model.BossTaloc, "Thrall", model.RoleTank)

	require.NoError(t, err)
	assert.Equal(t, []string{"Thrall"}, store.assignments)
}

func TestAssignPlayer_InvalidRole(t *testing.T) {
	store := &mockRosterStore{raid: raidWithEncounter(model.BossTaloc, "Thrall")}

	err := AssignPlayer(context.Background(), store, zap.NewNop(), raidDate, model.BossTaloc, "Thrall", model.Role("Bard"))

	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestAssignPlayer_NoEncounter(t *testing.T) {
	store := &mockRosterStore{raid: raidWithEncounter(model.BossTaloc, "Thrall")}

	err := AssignPlayer(context.Background(), store, zap.NewNop(), raidDate, model.BossVectis, "Thrall", model.RoleTank)

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAssignPlayer_NotAccepted(t *testing.T) {
	store := &mockRosterStore{raid: raidWithEncounter(model.BossTaloc, "Thrall")}

	err := AssignPlayer(context.Background(), store, zap.NewNop(), raidDate, model.BossTaloc, "Jaina", model.RoleHealer)

	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Empty(t, store.assignments)
}

func TestAssignPlayer_Finalized(t *testing.T) {
	raid := raidWithEncounter(model.BossTaloc, "Thrall")
	finalizedAt := raidDate.Add(20 * time.Hour)
	raid.FinalizedAt = &finalizedAt
	store := &mockRosterStore{raid: raid}

	err := AssignPlayer(context.Background(), store, zap.NewNop(), raidDate, model.BossTaloc, "Thrall", model.RoleTank)

	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestRemovePlayer_Success(t *testing.T) {
	store := &mockRosterStore{raid: raidWithEncounter(model.BossTaloc, "Thrall")}

	err := RemovePlayer(context.Background(), store, zap.NewNop(), raidDate, model.BossTaloc, "Thrall")

	require.NoError(t, err)
	assert.Equal(t, []string{"Thrall"}, store.removals)
}

func TestRemovePlayer_NoEncounter(t *testing.T) {
	store := &mockRosterStore{raid: openRaid()}

	err := RemovePlayer(context.Background(), store, zap.NewNop(), raidDate, model.BossTaloc, "Thrall")

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRemovePlayer_AbsentPlayerIsNoOp(t *testing.T) {
	store := &mockRosterStore{raid: raidWithEncounter(model.BossTaloc)}

	err := RemovePlayer(context.Background(), store, zap.NewNop(), raidDate, model.BossTaloc, "Jaina")

	assert.NoError(t, err)
}
