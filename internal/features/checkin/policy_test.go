package checkin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mutabaah.id/challenge-bot/internal/common"
)

func testPolicy() Policy {
	return Policy{
		ChallengeStart: common.Date(2026, time.February, 18),
		ChallengeEnd:   common.Date(2026, time.March, 18),
		EditWindowDays: 2,
	}
}

func TestPolicy_CheckWritable(t *testing.T) {
	p := testPolicy()
	today := common.Date(2026, time.February, 25)

	tests := []struct {
		name string
		date time.Time
		want error
	}{
		{name: "today", date: today, want: nil},
		{name: "yesterday", date: common.Date(2026, time.February, 24), want: nil},
		{name: "window edge", date: common.Date(2026, time.February, 23), want: nil},
		{name: "past window", date: common.Date(2026, time.February, 22), want: common.ErrEditWindowClosed},
		{name: "tomorrow", date: common.Date(2026, time.February, 26), want: common.ErrFutureDate},
		{name: "before challenge", date: common.Date(2026, time.February, 17), want: common.ErrOutsideChallenge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, p.CheckWritable(today, tt.date), tt.want)
		})
	}
}

func TestPolicy_CheckWritable_AfterChallengeEnd(t *testing.T) {
	p := testPolicy()
	today := common.Date(2026, time.March, 20)

	// The date itself is past the challenge end: rejected even though it is
	// within the trailing window.
	err := p.CheckWritable(today, common.Date(2026, time.March, 19))
	assert.ErrorIs(t, err, common.ErrOutsideChallenge)
}

func TestPolicy_EditableDates_ClippedToStart(t *testing.T) {
	p := testPolicy()

	// Day one of the challenge: only the start date itself is writable.
	got := p.EditableDates(p.ChallengeStart)
	assert.Equal(t, []time.Time{p.ChallengeStart}, got)
}

func TestPolicy_EditableDates_FullWindow(t *testing.T) {
	p := testPolicy()
	today := common.Date(2026, time.February, 25)

	got := p.EditableDates(today)
	assert.Equal(t, []time.Time{
		common.Date(2026, time.February, 23),
		common.Date(2026, time.February, 24),
		today,
	}, got)
}
