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

type mockEventStore struct {
	raid     *model.Raid
	inserted []model.Event
	deleted  []time.Time
}

func (m *mockEventStore) GetRaid(ctx context.Context, date time.Time) (*model.Raid, error) {
	return m.raid, nil
}

func (m *mockEventStore) InsertEvent(ctx context.Context, date time.Time, event model.Event) error {
	m.inserted = append(m.inserted, event)
	return nil
}

func (m *mockEventStore) DeleteEvent(ctx context.Context, date time.Time, eventTime time.Time) error {
	m.deleted = append(m.deleted, eventTime)
	return nil
}

func TestAddEvent_Success(t *testing.T) {
	store := &mockEventStore{raid: openRaid()}
	players := knownPlayers("Thrall")

	err := AddEvent(context.Background(), store, players, zap.NewNop(), raidDate, "Thrall", model.EventLate, "stuck in traffic")

	require.NoError(t, err)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "Thrall", store.inserted[0].Player.Name)
	assert.Equal(t, model.EventLate, store.inserted[0].Type)
	assert.Equal(t, "stuck in traffic", store.inserted[0].Comment)
	assert.False(t, store.inserted[0].Time.IsZero())
}

func TestAddEvent_InvalidType(t *testing.T) {
	store := &mockEventStore{raid: openRaid()}

	err := AddEvent(context.Background(), store, knownPlayers("Thrall"), zap.NewNop(), raidDate, "Thrall", model.EventType("Banned"), "")

	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Empty(t, store.inserted)
}

func TestAddEvent_UnknownPlayer(t *testing.T) {
	store := &mockEventStore{raid: openRaid()}

	err := AddEvent(context.Background(), store, knownPlayers(), zap.NewNop(), raidDate, "Guldan", model.EventAbsent, "no-show")

	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Empty(t, store.inserted)
}

func TestAddEvent_Finalized(t *testing.T) {
	store := &mockEventStore{raid: finalizedRaid()}

	err := AddEvent(context.Background(), store, knownPlayers("Thrall"), zap.NewNop(), raidDate, "Thrall", model.EventLate, "late")

	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestRemoveEvent_Success(t *testing.T) {
	store := &mockEventStore{raid: openRaid()}
	eventTime := raidDate.Add(19 * time.Hour)

	err := RemoveEvent(context.Background(), store, zap.NewNop(), raidDate, eventTime)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{eventTime}, store.deleted)
}

func TestRemoveEvent_Finalized(t *testing.T) {
	store := &mockEventStore{raid: finalizedRaid()}

	err := RemoveEvent(context.Background(), store, zap.NewNop(), raidDate, time.Now())

	assert.ErrorIs(t, err, model.ErrConflict)
	assert.Empty(t, store.deleted)
}
