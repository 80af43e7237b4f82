package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayIn_CrossesDateBoundary(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)

	// 23:30 UTC is already the next calendar day in Jakarta.
	now := time.Date(2026, time.February, 18, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, Date(2026, time.February, 19), TodayIn(now, jakarta))
	assert.Equal(t, Date(2026, time.February, 18), TodayIn(now, time.UTC))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-18")
	require.NoError(t, err)
	assert.Equal(t, Date(2026, time.February, 18), d)

	_, err = ParseDate("18-02-2026")
	assert.Error(t, err)
}

func TestFormatDate_RoundTrip(t *testing.T) {
	d := Date(2026, time.March, 5)
	parsed, err := ParseDate(FormatDate(d))
	require.NoError(t, err)
	assert.Equal(t, d, parsed)
}

func TestDaysBetween(t *testing.T) {
	a := Date(2026, time.February, 18)
	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 5, DaysBetween(a, Date(2026, time.February, 23)))
	assert.Equal(t, -1, DaysBetween(a, Date(2026, time.February, 17)))
	// Month boundary (February 2026 has 28 days).
	assert.Equal(t, 11, DaysBetween(a, Date(2026, time.March, 1)))
}

func TestChallengeDay(t *testing.T) {
	start := Date(2026, time.February, 18)
	assert.Equal(t, 1, ChallengeDay(start, start))
	assert.Equal(t, 2, ChallengeDay(start, Date(2026, time.February, 19)))
	assert.Equal(t, 0, ChallengeDay(start, Date(2026, time.February, 17)))
}
