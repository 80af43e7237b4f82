package checkin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutabaah.id/challenge-bot/internal/common"
)

// memStore is an in-memory Store for service tests. calls records the order
// of the steps the submission flow triggers.
type memStore struct {
	checkins map[string]*DailyCheckin
	calls    *[]string
}

func (m *memStore) Upsert(_ context.Context, c *DailyCheckin) error {
	if m.calls != nil {
		*m.calls = append(*m.calls, "upsert")
	}
	m.checkins[common.FormatDate(c.Date)] = c
	return nil
}

func (m *memStore) GetForDate(_ context.Context, _ int64, date time.Time) (*DailyCheckin, error) {
	return m.checkins[common.FormatDate(date)], nil
}

type fakeReconciler struct {
	streak int
	bonus  int
	calls  *[]string
}

func (f fakeReconciler) ReconcileForUser(context.Context, int64, time.Time) (int, int, error) {
	if f.calls != nil {
		*f.calls = append(*f.calls, "reconcile")
	}
	return f.streak, f.bonus, nil
}

type fakeScorer struct {
	total int
	calls *[]string
}

func (f fakeScorer) Total(context.Context, int64) (int, error) {
	if f.calls != nil {
		*f.calls = append(*f.calls, "total")
	}
	return f.total, nil
}

type fakeUnlocker struct {
	names []string
	calls *[]string
}

func (f fakeUnlocker) UnlockNewBadges(context.Context, int64, int, time.Time) ([]string, error) {
	if f.calls != nil {
		*f.calls = append(*f.calls, "badges")
	}
	return f.names, nil
}

// newTestService pins "today" to the given date and wires in-memory fakes.
func newTestService(today time.Time, calls *[]string) (*Service, *memStore) {
	store := &memStore{checkins: make(map[string]*DailyCheckin), calls: calls}
	policy := Policy{
		ChallengeStart: common.Date(2026, time.February, 18),
		ChallengeEnd:   common.Date(2026, time.March, 18),
		EditWindowDays: 2,
	}
	now := func() time.Time {
		return time.Date(today.Year(), today.Month(), today.Day(), 10, 0, 0, 0, time.UTC)
	}
	svc := NewService(
		store, policy,
		fakeReconciler{streak: 3, bonus: 50, calls: calls},
		fakeScorer{total: 105, calls: calls},
		fakeUnlocker{calls: calls},
		now, time.UTC,
	)
	return svc, store
}

func TestSubmit_HappyPath(t *testing.T) {
	var calls []string
	today := common.Date(2026, time.February, 20)
	svc, store := newTestService(today, &calls)

	result, err := svc.Submit(context.Background(), 1, today,
		[]string{"ngaji", "sedekah", "dzikir_pagi_petang"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 30+15+10, result.Checkin.DailyScore)
	assert.Equal(t, 3, result.CurrentStreak)
	assert.Equal(t, 50, result.BonusPoints)
	assert.Equal(t, 105, result.TotalScore)

	stored, err := store.GetForDate(context.Background(), 1, today)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []string{"ngaji", "sedekah", "dzikir_pagi_petang"}, stored.Activities)

	// The write lands first, then the derived state is rebuilt on top of it.
	assert.Equal(t, []string{"upsert", "reconcile", "total", "badges"}, calls)
}

func TestSubmit_EmptySelectionRejected(t *testing.T) {
	var calls []string
	today := common.Date(2026, time.February, 20)
	svc, store := newTestService(today, &calls)

	_, err := svc.Submit(context.Background(), 1, today, nil, nil)
	assert.ErrorIs(t, err, common.ErrNoActivities)

	// Only unknown ids is the same as an empty selection.
	_, err = svc.Submit(context.Background(), 1, today, []string{"tahajud"}, nil)
	assert.ErrorIs(t, err, common.ErrNoActivities)

	assert.Empty(t, store.checkins)
	assert.Empty(t, calls)
}

func TestSubmit_PolicyViolationLeavesStateUntouched(t *testing.T) {
	var calls []string
	today := common.Date(2026, time.February, 25)
	svc, store := newTestService(today, &calls)

	// Existing check-in for a date that has since left the edit window.
	old := common.Date(2026, time.February, 20)
	store.checkins[common.FormatDate(old)] = &DailyCheckin{
		UserID: 1, Date: old, Activities: []string{"ngaji"}, DailyScore: 30,
	}

	tests := []struct {
		name string
		date time.Time
		want error
	}{
		{name: "future date", date: common.Date(2026, time.February, 26), want: common.ErrFutureDate},
		{name: "before challenge", date: common.Date(2026, time.February, 17), want: common.ErrOutsideChallenge},
		{name: "window closed", date: old, want: common.ErrEditWindowClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), 1, tt.date, []string{"sedekah"}, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	// No write, no downstream recompute, old row intact.
	assert.Empty(t, calls)
	assert.Equal(t, 30, store.checkins[common.FormatDate(old)].DailyScore)
}

func TestSubmit_NotesFilteredToCheckedActivities(t *testing.T) {
	today := common.Date(2026, time.February, 20)
	svc, store := newTestService(today, nil)

	// Empty notes and notes for unchecked activities are dropped.
	notes := map[string]string{
		"sedekah":  "10rb",
		"ngaji":    "",
		"kebaikan": "titip salam",
	}
	_, err := svc.Submit(context.Background(), 1, today, []string{"ngaji", "sedekah"}, notes)
	require.NoError(t, err)

	stored, err := store.GetForDate(context.Background(), 1, today)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"sedekah": "10rb"}, stored.Notes)
}

func TestSubmit_ResubmitOverwrites(t *testing.T) {
	today := common.Date(2026, time.February, 20)
	svc, store := newTestService(today, nil)
	ctx := context.Background()

	_, err := svc.Submit(ctx, 1, today, []string{"ngaji", "sedekah"}, nil)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, 1, today, []string{"dzikir_tidur"}, nil)
	require.NoError(t, err)

	stored, err := store.GetForDate(ctx, 1, today)
	require.NoError(t, err)
	assert.Equal(t, []string{"dzikir_tidur"}, stored.Activities)
	assert.Equal(t, 5, stored.DailyScore)
	assert.Len(t, store.checkins, 1)
}
