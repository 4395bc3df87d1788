package setcover

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/setcover/internal/bitset"
	"github.com/hupe1980/setcover/internal/greedy"
	"github.com/hupe1980/setcover/internal/universe"
)

// Result is a computed cover together with run statistics.
type Result[K cmp.Ordered] struct {
	// Keys are the chosen set keys, sorted ascending.
	Keys []K
	// Selection holds the same keys in the order the greedy loop chose them.
	Selection []K
	// Gains[i] is the number of elements Selection[i] newly covered.
	Gains []int
	// Strategy is the strategy that produced the cover.
	Strategy Strategy
	// UniverseSize is the number of distinct elements that had to be covered.
	UniverseSize int
	// NumSets is the number of candidate sets.
	NumSets int
	// Elapsed is the wall time of the computation.
	Elapsed time.Duration
}

// invalidStrategy is reported to metrics when the strategy name is rejected.
const invalidStrategy Strategy = -1

// GreedySetCover returns the keys of a small sub-collection of sets whose
// union equals the union of all sets, sorted ascending.
//
// strategy is one of "greedy-standard", "greedy-bitvec" or "greedy-textbook";
// every strategy returns the same keys. An unknown name fails with
// ErrInvalidAlgorithm before any work is done. Partial covers are never
// returned.
//
// Example:
//
//	keys, err := setcover.GreedySetCover(map[string][]int{
//	    "A": {1, 2, 3},
//	    "B": {1, 2},
//	    "C": {2},
//	}, "greedy-bitvec")
//	// keys == []string{"A"}
func GreedySetCover[K cmp.Ordered, T comparable](sets map[K][]T, strategy string, opts ...Option) ([]K, error) {
	s, err := ParseStrategy(strategy)
	if err != nil {
		return nil, rejectStrategy(len(sets), err, opts)
	}
	res, err := Solve(sets, s, opts...)
	if err != nil {
		return nil, err
	}
	return res.Keys, nil
}

// GreedySetCoverDenseKeys is GreedySetCover for sets whose elements are
// already dense non-negative integer ids.
//
// No id compression is done: the universe is [0, max+1), so an id below the
// maximum that appears in no set makes the cover infeasible.
func GreedySetCoverDenseKeys[K cmp.Ordered](sets map[K][]int, strategy string, opts ...Option) ([]K, error) {
	s, err := ParseStrategy(strategy)
	if err != nil {
		return nil, rejectStrategy(len(sets), err, opts)
	}
	res, err := SolveDense(sets, s, opts...)
	if err != nil {
		return nil, err
	}
	return res.Keys, nil
}

// Solve computes a cover with the given strategy and returns it with run
// statistics.
func Solve[K cmp.Ordered, T comparable](sets map[K][]T, strategy Strategy, opts ...Option) (*Result[K], error) {
	if !strategy.Valid() {
		return nil, rejectStrategy(len(sets), &InvalidAlgorithmError{Name: strategy.String()}, opts)
	}
	o := applyOptions(opts)

	keys, ordered := canonicalOrder(sets)

	run := func(g greedy.Options) outcome {
		if strategy == Textbook {
			indices, ok := greedy.Textbook(ordered, g)
			return outcome{indices: indices, universeSize: -1, uncovered: -1, ok: ok}
		}

		dense, reverse := universe.Compress(ordered)
		n := len(reverse)

		var (
			indices []int
			ok      bool
		)
		if strategy == Bitset {
			indices, ok = greedy.Bitset(n, dense, g)
		} else {
			indices, ok = greedy.Dense(n, dense, g)
		}
		return outcome{indices: indices, universeSize: n, uncovered: -1, ok: ok}
	}

	var check func([]K) error
	if o.verify {
		check = func(cover []K) error { return Verify(sets, cover) }
	}

	return execute(keys, strategy, o, run, check)
}

// SolveDense is Solve for sets whose elements are dense non-negative ids.
func SolveDense[K cmp.Ordered](sets map[K][]int, strategy Strategy, opts ...Option) (*Result[K], error) {
	if !strategy.Valid() {
		return nil, rejectStrategy(len(sets), &InvalidAlgorithmError{Name: strategy.String()}, opts)
	}
	o := applyOptions(opts)

	keys, ordered := canonicalOrder(sets)

	n := 0
	for i, s := range ordered {
		for _, e := range s {
			var err error
			switch {
			case e < 0:
				err = fmt.Errorf("%w: set %v contains %d", ErrNegativeElement, keys[i], e)
			case e == math.MaxInt:
				err = fmt.Errorf("%w: set %v contains %d", ErrElementTooLarge, keys[i], e)
			}
			if err != nil {
				o.report(o.logger.WithStrategy(strategy), strategy, 0, len(keys), 0, 0, err)
				return nil, err
			}
			n = max(n, e+1)
		}
	}

	run := func(g greedy.Options) outcome {
		var (
			indices []int
			ok      bool
		)
		switch strategy {
		case Dense:
			indices, ok = greedy.Dense(n, ordered, g)
		case Bitset:
			indices, ok = greedy.Bitset(n, ordered, g)
		default:
			// The hash-set universe only holds ids that occur, so ids that
			// occur nowhere are checked up front.
			if missing := n - presentIDs(n, ordered); missing > 0 {
				return outcome{universeSize: n, uncovered: missing}
			}
			indices, ok = greedy.Textbook(ordered, g)
		}
		return outcome{indices: indices, universeSize: n, uncovered: -1, ok: ok}
	}

	var check func([]K) error
	if o.verify {
		check = func(cover []K) error { return Verify(sets, cover) }
	}

	return execute(keys, strategy, o, run, check)
}

// outcome is what a strategy run reports back to execute.
type outcome struct {
	indices []int
	// universeSize is -1 when it has to be derived from the rounds.
	universeSize int
	// uncovered is -1 when it has to be derived from the rounds.
	uncovered int
	ok        bool
}

func execute[K cmp.Ordered](keys []K, s Strategy, o options, run func(greedy.Options) outcome, check func([]K) error) (*Result[K], error) {
	logger := o.logger.WithStrategy(s)
	if s == Bitset {
		logger.Debug("bitset strategy", "hardware_popcount", bitset.HasHardwarePopcount())
	}

	start := time.Now()

	var (
		gains     []int
		remaining = -1
		progress  = rate.Sometimes{First: 1, Interval: time.Second}
	)
	g := greedy.Options{
		Workers: o.workers,
		OnSelect: func(sel greedy.Selection) {
			gains = append(gains, sel.Gain)
			remaining = sel.Remaining
			progress.Do(func() {
				logger.LogRound(sel.Round, sel.Index, sel.Gain, sel.Remaining)
			})
		},
	}

	out := run(g)
	elapsed := time.Since(start)

	covered := 0
	for _, gain := range gains {
		covered += gain
	}
	universeSize := out.universeSize
	if universeSize < 0 {
		universeSize = covered + max(remaining, 0)
	}

	if !out.ok {
		uncovered := out.uncovered
		if uncovered < 0 {
			uncovered = universeSize - covered
		}
		err := &InfeasibleCoverError{Strategy: s, Uncovered: uncovered}
		o.report(logger, s, universeSize, len(keys), 0, elapsed, err)
		return nil, err
	}

	res := &Result[K]{
		Selection:    make([]K, len(out.indices)),
		Gains:        gains,
		Strategy:     s,
		UniverseSize: universeSize,
		NumSets:      len(keys),
		Elapsed:      elapsed,
	}
	for i, idx := range out.indices {
		res.Selection[i] = keys[idx]
	}
	res.Keys = slices.Clone(res.Selection)
	slices.Sort(res.Keys)

	if check != nil {
		if err := check(res.Keys); err != nil {
			err = fmt.Errorf("verify %s cover: %w", s, err)
			o.report(logger, s, universeSize, len(keys), 0, elapsed, err)
			return nil, err
		}
	}

	o.report(logger, s, universeSize, len(keys), len(res.Keys), elapsed, nil)
	return res, nil
}

func (o options) report(logger *Logger, s Strategy, universeSize, numSets, chosen int, elapsed time.Duration, err error) {
	logger.LogCover(universeSize, numSets, chosen, elapsed, err)
	o.metricsCollector.RecordCover(s, universeSize, numSets, chosen, elapsed, err)
}

func rejectStrategy(numSets int, err error, opts []Option) error {
	o := applyOptions(opts)
	o.report(o.logger, invalidStrategy, 0, numSets, 0, 0, err)
	return err
}

// keyedSet pairs a set with its key. Keys are never looked up again, so
// keys that are not equal to themselves (NaN) keep their elements.
type keyedSet[K cmp.Ordered, T any] struct {
	key K
	set []T
}

// canonicalOrder fixes the index of every set: larger sets first, then
// ascending key. Every strategy sees the same order, which makes tie-breaks
// and therefore the cover deterministic.
func canonicalOrder[K cmp.Ordered, T any](sets map[K][]T) ([]K, [][]T) {
	entries := make([]keyedSet[K, T], 0, len(sets))
	for k, v := range sets {
		entries = append(entries, keyedSet[K, T]{key: k, set: v})
	}
	slices.SortFunc(entries, func(a, b keyedSet[K, T]) int {
		if c := cmp.Compare(len(b.set), len(a.set)); c != 0 {
			return c
		}
		return cmp.Compare(a.key, b.key)
	})

	keys := make([]K, len(entries))
	ordered := make([][]T, len(entries))
	for i, e := range entries {
		keys[i] = e.key
		ordered[i] = e.set
	}
	return keys, ordered
}

// presentIDs counts the distinct ids in [0, n) that occur in some set.
func presentIDs(n int, sets [][]int) int {
	seen := bitset.New(n)
	for _, s := range sets {
		for _, e := range s {
			seen.Set(e)
		}
	}
	return seen.Count()
}
