package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutabaah.id/challenge-bot/internal/common"
)

func day(d int) time.Time {
	// Challenge-period dates, arbitrary anchor.
	return common.Date(2026, time.February, d)
}

func days(ds ...int) []time.Time {
	out := make([]time.Time, len(ds))
	for i, d := range ds {
		out[i] = day(d)
	}
	return out
}

func TestReconcile_NoCheckins(t *testing.T) {
	rec, bonus := Reconcile(day(20), nil, &Record{UserID: 7})

	assert.Equal(t, int64(7), rec.UserID)
	assert.Equal(t, 0, rec.CurrentStreak)
	assert.Empty(t, rec.EarnedBonuses)
	assert.Equal(t, 0, bonus)
}

func TestReconcile_CountsRunEndingToday(t *testing.T) {
	rec, bonus := Reconcile(day(20), days(18, 19, 20), &Record{})

	assert.Equal(t, 3, rec.CurrentStreak)
	assert.Equal(t, day(20), rec.LastCheckinDate)
	assert.Equal(t, []int{3}, rec.EarnedBonuses)
	assert.Equal(t, 50, bonus)
}

func TestReconcile_NoGraceDay(t *testing.T) {
	// Checked in yesterday and before, nothing today: the run ending at the
	// present day is empty.
	rec, _ := Reconcile(day(21), days(18, 19, 20), &Record{CurrentStreak: 3})

	assert.Equal(t, 0, rec.CurrentStreak)
	assert.Equal(t, day(20), rec.LastCheckinDate)
}

func TestReconcile_GapBreaksRun(t *testing.T) {
	rec, _ := Reconcile(day(22), days(18, 19, 21, 22), &Record{})

	assert.Equal(t, 2, rec.CurrentStreak)
}

func TestReconcile_MultipleThresholdsInOneCall(t *testing.T) {
	// A 7-day history reconciled in one go grants both the 3- and the 7-day
	// bonus together.
	rec, bonus := Reconcile(day(24), days(18, 19, 20, 21, 22, 23, 24), &Record{})

	assert.Equal(t, 7, rec.CurrentStreak)
	assert.ElementsMatch(t, []int{3, 7}, rec.EarnedBonuses)
	assert.Equal(t, 50+150, bonus)
}

func TestReconcile_IdempotentRerun(t *testing.T) {
	dates := days(18, 19, 20)
	first, firstBonus := Reconcile(day(20), dates, &Record{})
	require.Equal(t, 50, firstBonus)

	second, secondBonus := Reconcile(day(20), dates, first)

	assert.Equal(t, first.CurrentStreak, second.CurrentStreak)
	assert.Equal(t, first.EarnedBonuses, second.EarnedBonuses)
	assert.Equal(t, 0, secondBonus)
}

func TestReconcile_TolerantRetention(t *testing.T) {
	// Streak shrank from 7 to 4 but stays at or above the smallest earned
	// threshold (3): bonuses are kept and nothing is re-granted.
	prior := &Record{CurrentStreak: 7, EarnedBonuses: []int{3, 7}}
	rec, bonus := Reconcile(day(24), days(21, 22, 23, 24), prior)

	assert.Equal(t, 4, rec.CurrentStreak)
	assert.ElementsMatch(t, []int{3, 7}, rec.EarnedBonuses)
	assert.Equal(t, 0, bonus)
}

func TestReconcile_ResetBelowSmallestEarned(t *testing.T) {
	// Streak collapsed to 1, below both the prior streak and the smallest
	// earned threshold: the cycle is over, the set clears, no regrant yet.
	prior := &Record{CurrentStreak: 7, EarnedBonuses: []int{3, 7}}
	rec, bonus := Reconcile(day(25), days(18, 19, 20, 21, 22, 23, 24, 25), prior)
	require.Equal(t, 8, rec.CurrentStreak) // sanity: continuous history grows

	rec, bonus = Reconcile(day(27), days(18, 19, 20, 21, 22, 23, 24, 27), prior)

	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Empty(t, rec.EarnedBonuses)
	assert.Equal(t, 0, bonus)
}

func TestReconcile_RegrantAfterReset(t *testing.T) {
	// After a cleared cycle, climbing back to 3 earns the 3-day bonus again.
	prior := &Record{CurrentStreak: 1, EarnedBonuses: nil}
	rec, bonus := Reconcile(day(29), days(27, 28, 29), prior)

	assert.Equal(t, 3, rec.CurrentStreak)
	assert.Equal(t, []int{3}, rec.EarnedBonuses)
	assert.Equal(t, 50, bonus)
}

func TestReconcile_EmptyEarnedSetNeverResets(t *testing.T) {
	// Prior streak 2, nothing earned yet, streak shrinks to 1: with no
	// earned thresholds there is nothing to reset and no clear happens.
	prior := &Record{CurrentStreak: 2, EarnedBonuses: nil}
	rec, bonus := Reconcile(day(25), days(20, 21, 25), prior)

	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Empty(t, rec.EarnedBonuses)
	assert.Equal(t, 0, bonus)
}

func TestReconcile_BackfillExtendsRun(t *testing.T) {
	// Holes 19-20 filled by a backfill edit: the next reconcile sees the
	// longer run and grants the missed thresholds.
	prior := &Record{CurrentStreak: 2, EarnedBonuses: nil}
	rec, bonus := Reconcile(day(22), days(18, 19, 20, 21, 22), prior)

	assert.Equal(t, 5, rec.CurrentStreak)
	assert.Equal(t, []int{3}, rec.EarnedBonuses)
	assert.Equal(t, 50, bonus)
}

func TestReconcile_DuplicateDatesCountOnce(t *testing.T) {
	rec, _ := Reconcile(day(20), days(19, 19, 20, 20), &Record{})

	assert.Equal(t, 2, rec.CurrentStreak)
}

func TestBonusPoints(t *testing.T) {
	tests := []struct {
		name   string
		earned []int
		want   int
	}{
		{name: "none", earned: nil, want: 0},
		{name: "single", earned: []int{3}, want: 50},
		{name: "all", earned: []int{3, 7, 14, 21}, want: 50 + 150 + 400 + 700},
		{name: "unknown threshold ignored", earned: []int{3, 5}, want: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BonusPoints(tt.earned))
		})
	}
}

func TestNextBonus(t *testing.T) {
	b, ok := NextBonus(nil)
	require.True(t, ok)
	assert.Equal(t, 3, b.DaysRequired)

	b, ok = NextBonus([]int{3, 7})
	require.True(t, ok)
	assert.Equal(t, 14, b.DaysRequired)

	_, ok = NextBonus([]int{3, 7, 14, 21})
	assert.False(t, ok)
}
