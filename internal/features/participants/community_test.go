package participants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutabaah.id/challenge-bot/internal/common"
)

func TestNormalizeCommunityCode(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "upper-cased and trimmed", in: "  masjid-alfalah ", want: "MASJID-ALFALAH"},
		{name: "already canonical", in: "RT05", want: "RT05"},
		{name: "markdown characters kept verbatim", in: "a*b_c", want: "A*B_C"},
		{name: "empty", in: "", wantErr: common.ErrCommunityCodeInvalid},
		{name: "whitespace only", in: "   ", wantErr: common.ErrCommunityCodeInvalid},
		{name: "too long", in: strings.Repeat("x", 33), wantErr: common.ErrCommunityCodeInvalid},
		{name: "max length", in: strings.Repeat("x", 32), want: strings.Repeat("X", 32)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCommunityCode(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
