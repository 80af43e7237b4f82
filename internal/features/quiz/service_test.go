package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutabaah.id/challenge-bot/internal/common"
)

// memStore is an in-memory Store for service tests.
type memStore struct {
	sheets map[string]*AnswerSheet
}

func (m *memStore) Upsert(_ context.Context, a *AnswerSheet) error {
	m.sheets[common.FormatDate(a.Date)] = a
	return nil
}

func (m *memStore) GetForDate(_ context.Context, _ int64, date time.Time) (*AnswerSheet, error) {
	return m.sheets[common.FormatDate(date)], nil
}

type fakeScorer struct{ total int }

func (f fakeScorer) Total(context.Context, int64) (int, error) { return f.total, nil }

type fakeUnlocker struct{ names []string }

func (f fakeUnlocker) UnlockNewBadges(context.Context, int64, int, time.Time) ([]string, error) {
	return f.names, nil
}

// newTestService pins "today" to the given date and wires in-memory fakes.
func newTestService(today time.Time) (*Service, *memStore) {
	store := &memStore{sheets: make(map[string]*AnswerSheet)}
	now := func() time.Time {
		return time.Date(today.Year(), today.Month(), today.Day(), 10, 0, 0, 0, time.UTC)
	}
	svc := NewService(
		store,
		fakeScorer{total: 120},
		fakeUnlocker{names: []string{"Mulai Melangkah"}},
		common.Date(2026, time.February, 18),
		common.Date(2026, time.March, 18),
		now, time.UTC,
	)
	return svc, store
}

func TestTodayQuiz(t *testing.T) {
	// Day 1 of the challenge has a question set.
	svc, _ := newTestService(common.Date(2026, time.February, 18))
	dq, sheet, err := svc.TodayQuiz(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, dq.Day)
	assert.Nil(t, sheet)
}

func TestTodayQuiz_OutsideChallenge(t *testing.T) {
	svc, _ := newTestService(common.Date(2026, time.February, 17))
	_, _, err := svc.TodayQuiz(context.Background(), 1)
	assert.ErrorIs(t, err, common.ErrOutsideChallenge)

	svc, _ = newTestService(common.Date(2026, time.March, 19))
	_, _, err = svc.TodayQuiz(context.Background(), 1)
	assert.ErrorIs(t, err, common.ErrOutsideChallenge)
}

func TestTodayQuiz_NoSetForDay(t *testing.T) {
	// A challenge day without a question set simply has no quiz.
	day := common.Date(2026, time.March, 10)
	_, ok := ForDay(common.ChallengeDay(common.Date(2026, time.February, 18), day))
	require.False(t, ok)

	svc, _ := newTestService(day)
	_, _, err := svc.TodayQuiz(context.Background(), 1)
	assert.ErrorIs(t, err, common.ErrNoQuizToday)
}

func TestSubmit_AnswerCountMismatch(t *testing.T) {
	svc, store := newTestService(common.Date(2026, time.February, 18))

	// Day 1 has two questions; one answer is not enough.
	_, err := svc.Submit(context.Background(), 1, []*int{intp(1)})
	assert.ErrorIs(t, err, common.ErrAnswerCount)
	assert.Empty(t, store.sheets)
}

func TestSubmit_ScoresAndPersists(t *testing.T) {
	today := common.Date(2026, time.February, 18)
	svc, store := newTestService(today)

	// First question answered correctly, second skipped.
	result, err := svc.Submit(context.Background(), 1, []*int{intp(1), nil})
	require.NoError(t, err)

	assert.Equal(t, PointsCorrect, result.Sheet.QuizScore)
	assert.Equal(t, 120, result.TotalScore)
	assert.Equal(t, []string{"Mulai Melangkah"}, result.NewBadges)

	stored := store.sheets[common.FormatDate(today)]
	require.NotNil(t, stored)
	assert.Equal(t, "q1", stored.Answers[0].QuestionID)
	assert.Nil(t, stored.Answers[1].SelectedIndex)
}

func TestSubmit_ResubmitOverwrites(t *testing.T) {
	today := common.Date(2026, time.February, 18)
	svc, store := newTestService(today)
	ctx := context.Background()

	_, err := svc.Submit(ctx, 1, []*int{intp(0), intp(0)})
	require.NoError(t, err)
	require.Equal(t, 2*PointsWrong, store.sheets[common.FormatDate(today)].QuizScore)

	_, err = svc.Submit(ctx, 1, []*int{intp(1), intp(3)})
	require.NoError(t, err)

	assert.Len(t, store.sheets, 1)
	assert.Equal(t, 2*PointsCorrect, store.sheets[common.FormatDate(today)].QuizScore)
}
