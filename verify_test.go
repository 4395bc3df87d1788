package setcover

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	sets := map[string][]string{
		"a": {"x", "y"},
		"b": {"y", "z"},
		"c": {"z"},
		"d": {},
	}

	assert.NoError(t, Verify(sets, []string{"a", "b"}))
	assert.NoError(t, Verify(sets, []string{"a", "c", "d"}))
	assert.ErrorIs(t, Verify(sets, []string{"a"}), ErrIncompleteCover)
	assert.ErrorIs(t, Verify(sets, []string{"a", "b", "a"}), ErrDuplicateKey)
	assert.ErrorIs(t, Verify(sets, []string{"a", "q"}), ErrUnknownKey)
}

func TestVerify_EmptyUniverse(t *testing.T) {
	assert.NoError(t, Verify(map[int][]int{}, nil))
	assert.NoError(t, Verify(map[int][]int{1: {}}, nil))
}

func TestVerify_MissingCount(t *testing.T) {
	err := Verify(map[int][]int{1: {1, 2, 3}, 2: {4, 5}}, []int{2})
	assert.ErrorIs(t, err, ErrIncompleteCover)
	assert.Contains(t, err.Error(), "3 of 5")
}

func TestVerify_NaNKeys(t *testing.T) {
	nan := math.NaN()
	sets := map[float64][]int{
		nan: {1, 2},
		3:   {3},
	}

	assert.NoError(t, Verify(sets, []float64{nan, 3}))
	assert.NoError(t, Verify(sets, []float64{3, nan}))
	assert.ErrorIs(t, Verify(sets, []float64{3}), ErrIncompleteCover)
	assert.ErrorIs(t, Verify(sets, []float64{nan, nan, 3}), ErrDuplicateKey)
	assert.ErrorIs(t, Verify(map[float64][]int{1: {1}}, []float64{nan}), ErrUnknownKey)
}
