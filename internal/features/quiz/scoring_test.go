package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestScore(t *testing.T) {
	questions := []Question{
		{ID: "q1", CorrectIndex: 1},
		{ID: "q2", CorrectIndex: 3},
	}

	tests := []struct {
		name    string
		answers []Selected
		want    int
	}{
		{
			name: "all correct",
			answers: []Selected{
				{QuestionID: "q1", SelectedIndex: intp(1)},
				{QuestionID: "q2", SelectedIndex: intp(3)},
			},
			want: 20,
		},
		{
			name: "all wrong still earns participation",
			answers: []Selected{
				{QuestionID: "q1", SelectedIndex: intp(0)},
				{QuestionID: "q2", SelectedIndex: intp(0)},
			},
			want: 10,
		},
		{
			name: "skipped earns nothing",
			answers: []Selected{
				{QuestionID: "q1", SelectedIndex: intp(1)},
				{QuestionID: "q2", SelectedIndex: nil},
			},
			want: 10,
		},
		{
			name:    "empty sheet",
			answers: nil,
			want:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(questions, tt.answers))
		})
	}
}

func TestQuizzes_CorrectIndexInRange(t *testing.T) {
	for day, q := range Quizzes {
		require.Equal(t, day, q.Day)
		for _, question := range q.Questions {
			assert.GreaterOrEqual(t, question.CorrectIndex, 0, "day %d %s", day, question.ID)
			assert.Less(t, question.CorrectIndex, len(question.Options), "day %d %s", day, question.ID)
		}
	}
}

func TestForDay(t *testing.T) {
	q, ok := ForDay(1)
	require.True(t, ok)
	assert.NotEmpty(t, q.Questions)

	_, ok = ForDay(0)
	assert.False(t, ok)
}
