package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSets(t *testing.T) {
	rng := NewRNG(4711)

	sets := rng.Sets(50, 100, 10)

	require.Len(t, sets, 50)
	for _, s := range sets {
		assert.LessOrEqual(t, len(s), 10)
		for _, e := range s {
			assert.GreaterOrEqual(t, e, 0)
			assert.Less(t, e, 100)
		}
	}
}

func TestCoveringSets(t *testing.T) {
	rng := NewRNG(4711)

	sets := rng.CoveringSets(20, 300, 5)

	seen := make(map[int]bool)
	for _, s := range sets {
		for _, e := range s {
			seen[e] = true
		}
	}
	assert.Len(t, seen, 300)
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	a := rng.Sets(10, 50, 8)
	rng.Reset()
	b := rng.Sets(10, 50, 8)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(42), rng.Seed())
}

func TestCollection_Keys(t *testing.T) {
	rng := NewRNG(1)

	c := rng.Collection(3, 10, 4)

	assert.Contains(t, c, "s00000")
	assert.Contains(t, c, "s00002")
	assert.Len(t, c, 3)
}

func TestCovers(t *testing.T) {
	sets := map[string][]int{
		"a": {1, 2},
		"b": {2, 3},
		"c": {4},
	}

	assert.True(t, Covers(sets, []string{"a", "b", "c"}))
	assert.False(t, Covers(sets, []string{"a", "c"}))
	assert.False(t, Covers(sets, []string{"a", "b", "c", "c"}))
	assert.False(t, Covers(sets, []string{"a", "b", "c", "zzz"}))
	assert.True(t, Covers(map[string][]int{"e": {}}, nil))
}
