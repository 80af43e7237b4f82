package score

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutabaah.id/challenge-bot/internal/features/streak"
)

type fakeSums struct {
	sum int
	err error
}

func (f fakeSums) SumScores(context.Context, int64) (int, error) { return f.sum, f.err }

type fakeStreaks struct {
	rec *streak.Record
	err error
}

func (f fakeStreaks) GetRecord(context.Context, int64) (*streak.Record, error) { return f.rec, f.err }

func TestTotal(t *testing.T) {
	tests := []struct {
		name    string
		checkin int
		quiz    int
		earned  []int
		want    int
	}{
		{name: "all zero", want: 0},
		{name: "checkin plus quiz plus bonus", checkin: 30 + 15, quiz: 10, earned: []int{3}, want: 105},
		{name: "bonus from stored set only", checkin: 100, earned: []int{3, 7}, want: 300},
		{name: "no streak record", checkin: 80, quiz: 20, want: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(
				fakeSums{sum: tt.checkin},
				fakeSums{sum: tt.quiz},
				fakeStreaks{rec: &streak.Record{EarnedBonuses: tt.earned}},
			)

			got, err := svc.Total(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotal_SourceError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(
		fakeSums{err: boom},
		fakeSums{},
		fakeStreaks{rec: &streak.Record{}},
	)

	_, err := svc.Total(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
}
