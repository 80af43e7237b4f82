package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentLevel(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   string
		wantOK bool
	}{
		{name: "below first", points: 299, wantOK: false},
		{name: "exactly first", points: 300, want: "Mulai Melangkah", wantOK: true},
		{name: "between", points: 1000, want: "Terjaga", wantOK: true},
		{name: "top", points: 5000, want: "Perfect", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := CurrentLevel(tt.points)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, l.Name)
			}
		})
	}
}

func TestNextLevel(t *testing.T) {
	l, ok := NextLevel(0)
	require.True(t, ok)
	assert.Equal(t, "Mulai Melangkah", l.Name)

	l, ok = NextLevel(300)
	require.True(t, ok)
	assert.Equal(t, "Terjaga", l.Name)

	_, ok = NextLevel(3500)
	assert.False(t, ok)
}

func TestNewlyReached(t *testing.T) {
	tests := []struct {
		name   string
		points int
		held   []string
		want   []string
	}{
		{name: "nothing below first threshold", points: 100, held: nil, want: nil},
		{name: "first badge", points: 300, held: nil, want: []string{"Mulai Melangkah"}},
		{name: "jump grants several", points: 1500, held: nil, want: []string{"Mulai Melangkah", "Terjaga", "Konsisten"}},
		{name: "held badges not repeated", points: 1500, held: []string{"Mulai Melangkah", "Terjaga"}, want: []string{"Konsisten"}},
		{name: "all held", points: 1500, held: []string{"Mulai Melangkah", "Terjaga", "Konsisten"}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewlyReached(tt.points, tt.held))
		})
	}
}
