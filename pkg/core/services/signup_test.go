package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/superhelt/wow-raid-planner/pkg/core/model"
)

var raidDate = time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

func openRaid() *model.Raid {
	return &model.Raid{Start: raidDate}
}

func finalizedRaid() *model.Raid {
	finalizedAt := raidDate.Add(20 * time.Hour)
	return &model.Raid{Start: raidDate, FinalizedAt: &finalizedAt}
}

type mockSignupStore struct {
	raid     *model.Raid
	inserted []model.Signup
	deleted  []string
}

func (m *mockSignupStore) GetRaid(ctx context.Context, date time.Time) (*model.Raid, error) {
	return m.raid, nil
}

func (m *mockSignupStore) InsertSignup(ctx context.Context, date time.Time, signup model.Signup) error {
	m.inserted = append(m.inserted, signup)
	return nil
}

func (m *mockSignupStore) DeleteSignup(ctx context.Context, date time.Time, playerName string) error {
	m.deleted = append(m.deleted, playerName)
	return nil
}

type mockPlayerDirectory struct {
	players map[string]model.Player
}

func (m *mockPlayerDirectory) GetPlayerByName(ctx context.Context, name string) (model.Player, error) {
	player, ok := m.players[name]
	if !ok {
		return model.Player{}, fmt.Errorf("player %q not found: %w", name, model.ErrNotFound)
	}
	return player, nil
}

func knownPlayers(names ...string) *mockPlayerDirectory {
	players := make(map[string]model.Player, len(names))
	for _, name := range names {
		players[name] = model.Player{Name: name, Class: model.ClassWarrior, Active: true}
	}
	return &mockPlayerDirectory{players: players}
}

func TestAddSignups_Success(t *testing.T) {
	store := &mockSignupStore{raid: openRaid()}
	players := knownPlayers("Thrall", "Jaina")

	requests := []SignupRequest{
		{Player: "Thrall", Type: model.SignupAccepted},
		{Player: "Jaina", Type: model.SignupTentative, Comment: "might be late"},
	}

	results, err := AddSignups(context.Background(), store, players, zap.NewNop(), raidDate, requests)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	require.Len(t, store.inserted, 2)
	assert.Equal(t, "Thrall", store.inserted[0].Player.Name)
	assert.Equal(t, model.SignupTentative, store.inserted[1].Type)
}

func TestAddSignups_CommentRequiredUnlessAccepted(t *testing.T) {
	store := &mockSignupStore{raid: openRaid()}
	players := knownPlayers("Thrall", "Jaina", "Anduin")

	requests := []SignupRequest{
		{Player: "Thrall", Type: model.SignupAccepted},
		{Player: "Jaina", Type: model.SignupTentative},
		{Player: "Anduin", Type: model.SignupDeclined},
	}

	results, err := AddSignups(context.Background(), store, players, zap.NewNop(), raidDate, requests)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, model.ErrValidation)
	assert.ErrorIs(t, results[2].Err, model.ErrValidation)
	assert.Len(t, store.inserted, 1)
}

func TestAddSignups_InvalidType(t *testing.T) {
	store := &mockSignupStore{raid: openRaid()}
	players := knownPlayers("Thrall")

	results, err := AddSignups(context.Background(), store, players, zap.NewNop(), raidDate,
		[]SignupRequest{{Player: "Thrall", Type: "Maybe", Comment: "?"}})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, model.ErrValidation)
	assert.Empty(t, store.inserted)
}

func TestAddSignups_UnknownPlayer(t *testing.T) {
	store := &mockSignupStore{raid: openRaid()}
	players := knownPlayers("Thrall")

	results, err := AddSignups(context.Background(), store, players, zap.NewNop(), raidDate,
		[]SignupRequest{{Player: "Guldan", Type: model.SignupAccepted}})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, model.ErrNotFound)
}

func TestAddSignups_PartialSuccess(t *testing.T) {
	store := &mockSignupStore{raid: openRaid()}
	players := knownPlayers("Thrall", "Jaina")

	requests := []SignupRequest{
		{Player: "Thrall", Type: model.SignupAccepted},
		{Player: "Guldan", Type: model.SignupAccepted},
		{Player: "Jaina", Type: model.SignupAccepted},
	}

	results, err := AddSignups(context.Background(), store, players, zap.NewNop(), raidDate, requests)

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Len(t, store.inserted, 2)
}

func TestAddSignups_FinalizedRaidRejectsWholeBatch(t *testing.T) {
	store := &mockSignupStore{raid: finalizedRaid()}
	players := knownPlayers("Thrall")

	results, err := AddSignups(context.Background(), store, players, zap.NewNop(), raidDate,
		[]SignupRequest{{Player: "Thrall", Type: model.SignupAccepted}})

	assert.ErrorIs(t, err, model.ErrConflict)
	assert.Nil(t, results)
	assert.Empty(t, store.inserted)
}

func TestRemoveSignup_Success(t *testing.T) {
	store := &mockSignupStore{raid: openRaid()}

	err := RemoveSignup(context.Background(), store, zap.NewNop(), raidDate, "Thrall")

	require.NoError(t, err)
	assert.Equal(t, []string{"Thrall"}, store.deleted)
}

func TestRemoveSignup_Finalized(t *testing.T) {
	store := &mockSignupStore{raid: finalizedRaid()}

	err := RemoveSignup(context.Background(), store, zap.NewNop(), raidDate, "Thrall")

	assert.ErrorIs(t, err, model.ErrConflict)
	assert.Empty(t, store.deleted)
}

func TestAddSignups_GetRaidFails(t *testing.T) {
	store := &failingSignupStore{err: errors.New("connection refused")}

	_, err := AddSignups(context.Background(), store, knownPlayers(), zap.NewNop(), raidDate, nil)

	assert.Error(t, err)
}

type failingSignupStore struct {
	err error
}

func (m *failingSignupStore) GetRaid(ctx context.Context, date time.Time) (*model.Raid, error) {
	return nil, m.err
}

func (m *failingSignupStore) InsertSignup(ctx context.Context, date time.Time, signup model.Signup) error {
	return m.err
}

func (m *failingSignupStore) DeleteSignup(ctx context.Context, date time.Time, playerName string) error {
	return m.err
}
