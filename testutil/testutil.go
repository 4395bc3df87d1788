package testutil

import (
	"fmt"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Sets returns numSets random sets over the universe [0, universeSize).
// Each set has between 0 and maxLen elements, repeats allowed. Some ids may
// not appear in any set.
func (r *RNG) Sets(numSets, universeSize, maxLen int) [][]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	sets := make([][]int, numSets)
	for i := range sets {
		n := r.rand.Intn(maxLen + 1)
		s := make([]int, n)
		for j := range s {
			s[j] = r.rand.Intn(universeSize)
		}
		sets[i] = s
	}
	return sets
}

// CoveringSets is like Sets but guarantees that every id in
// [0, universeSize) appears in at least one set. numSets must be positive.
func (r *RNG) CoveringSets(numSets, universeSize, maxLen int) [][]int {
	sets := r.Sets(numSets, universeSize, maxLen)

	r.mu.Lock()
	defer r.mu.Unlock()
	for id := range universeSize {
		i := r.rand.Intn(numSets)
		sets[i] = append(sets[i], id)
	}
	return sets
}

// Collection returns Sets keyed by zero-padded names ("s00000", "s00001", ...).
func (r *RNG) Collection(numSets, universeSize, maxLen int) map[string][]int {
	return keyed(r.Sets(numSets, universeSize, maxLen))
}

// CoveringCollection returns CoveringSets keyed like Collection.
func (r *RNG) CoveringCollection(numSets, universeSize, maxLen int) map[string][]int {
	return keyed(r.CoveringSets(numSets, universeSize, maxLen))
}

func keyed(sets [][]int) map[string][]int {
	out := make(map[string][]int, len(sets))
	for i, s := range sets {
		out[fmt.Sprintf("s%05d", i)] = s
	}
	return out
}

// Union returns the distinct elements of every set in the collection.
func Union[K comparable, T comparable](sets map[K][]T) map[T]struct{} {
	out := make(map[T]struct{})
	for _, s := range sets {
		for _, e := range s {
			out[e] = struct{}{}
		}
	}
	return out
}

// Covers reports whether the sets named by cover together contain every
// element of the collection, and no key appears twice or is unknown.
func Covers[K comparable, T comparable](sets map[K][]T, cover []K) bool {
	chosen := make(map[K][]T, len(cover))
	for _, k := range cover {
		s, ok := sets[k]
		if !ok {
			return false
		}
		if _, dup := chosen[k]; dup {
			return false
		}
		chosen[k] = s
	}
	return len(Union(chosen)) == len(Union(sets))
}
