package checkin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityScore(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want int
	}{
		{name: "empty", ids: nil, want: 0},
		{name: "single", ids: []string{"ngaji"}, want: 30},
		{name: "full day", ids: []string{"ngaji", "sedekah", "dzikir_pagi_petang", "tidak_tidur", "dzikir_tidur", "kebaikan"}, want: 80},
		{name: "duplicates count once", ids: []string{"ngaji", "ngaji", "sedekah"}, want: 45},
		{name: "unknown id scores zero", ids: []string{"ngaji", "tahajud"}, want: 30},
		{name: "only unknown", ids: []string{"tahajud"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ActivityScore(tt.ids))
		})
	}
}

func TestNormalizeActivities(t *testing.T) {
	got := NormalizeActivities([]string{"sedekah", "ngaji", "sedekah", "tahajud"})
	assert.Equal(t, []string{"sedekah", "ngaji"}, got)
}

func TestLookupActivity(t *testing.T) {
	a, ok := LookupActivity("ngaji")
	require.True(t, ok)
	assert.Equal(t, 30, a.Points)

	_, ok = LookupActivity("tahajud")
	assert.False(t, ok)
}
