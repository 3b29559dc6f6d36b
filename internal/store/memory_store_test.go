package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaplay/practice-service/internal/models"
)

func newTestState(id string) *models.SessionState {
	return &models.SessionState{
		ID:       id,
		GameType: models.FillBlanks,
		Status:   models.SessionInProgress,
		Questions: []models.Question{
			{ID: "fb-1", Type: models.FillBlanks, Prompt: "p", CorrectAnswer: "a"},
		},
		StartedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestMemoryStore_SaveAndGet(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	state := newTestState("sess-1")
	require.NoError(t, s.Save(ctx, state))

	got, err := s.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, state.ID, got.ID)
	assert.Equal(t, state.GameType, got.GameType)
	assert.Len(t, got.Questions, 1)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore(time.Minute)

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, newTestState("sess-1")))

	first, err := s.Get(ctx, "sess-1")
	require.NoError(t, err)
	first.Status = models.SessionComplete

	second, err := s.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, models.SessionInProgress, second.Status)
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	now := time.Now()
	s.now = func() time.Time { return now }
	require.NoError(t, s.Save(ctx, newTestState("sess-1")))

	s.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, err := s.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)

	s.Sweep()
	assert.Empty(t, s.entries)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore(time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, newTestState("sess-1")))
	require.NoError(t, s.Delete(ctx, "sess-1"))

	_, err := s.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
