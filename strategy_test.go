package setcover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		want    Strategy
		wantErr bool
	}{
		{"greedy-standard", Dense, false},
		{"greedy-bitvec", Bitset, false},
		{"greedy-textbook", Textbook, false},
		{"bogus", 0, true},
		{"", 0, true},
		{"GREEDY-STANDARD", 0, true},
		{"dense", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.String())
		})
	}
}

func TestStrategy_Valid(t *testing.T) {
	for _, s := range Strategies() {
		assert.True(t, s.Valid())
	}
	assert.False(t, Strategy(-1).Valid())
	assert.False(t, Strategy(3).Valid())
	assert.Equal(t, "unknown", Strategy(3).String())
}
