package badges

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for service tests.
type memStore struct {
	badges map[int64][]Badge
}

func newMemStore() *memStore {
	return &memStore{badges: make(map[int64][]Badge)}
}

func (m *memStore) GetBadges(_ context.Context, userID int64) ([]Badge, error) {
	return m.badges[userID], nil
}

func (m *memStore) InsertBadges(_ context.Context, list []Badge) error {
	for _, b := range list {
		m.badges[b.UserID] = append(m.badges[b.UserID], b)
	}
	return nil
}

func TestUnlockNewBadges(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewService(store)
	now := time.Date(2026, time.February, 20, 21, 0, 0, 0, time.UTC)

	// Crossing two thresholds at once mints both badges.
	names, err := svc.UnlockNewBadges(ctx, 1, 700, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mulai Melangkah", "Terjaga"}, names)

	// Same total again: nothing new.
	names, err = svc.UnlockNewBadges(ctx, 1, 700, now)
	require.NoError(t, err)
	assert.Empty(t, names)

	// Higher total mints only the newly crossed level.
	names, err = svc.UnlockNewBadges(ctx, 1, 1500, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"Konsisten"}, names)

	held, err := svc.GetBadges(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, held, 3)
}

func TestUnlockNewBadges_KeptAfterTotalDrops(t *testing.T) {
	// Badges are append-only: a total that later drops below a threshold
	// does not revoke the badge, and climbing back does not re-mint it.
	ctx := context.Background()
	svc := NewService(newMemStore())
	now := time.Now()

	_, err := svc.UnlockNewBadges(ctx, 2, 300, now)
	require.NoError(t, err)

	names, err := svc.UnlockNewBadges(ctx, 2, 250, now)
	require.NoError(t, err)
	assert.Empty(t, names)

	names, err = svc.UnlockNewBadges(ctx, 2, 320, now)
	require.NoError(t, err)
	assert.Empty(t, names)

	held, err := svc.GetBadges(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, held, 1)
}
