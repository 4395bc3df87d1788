// Package setcover computes approximate minimum set covers with the greedy
// heuristic.
//
// Given a collection of candidate sets keyed by K, it returns a small
// sub-collection whose union equals the union of all sets, by repeatedly
// choosing the set that covers the most still-uncovered elements.
//
// # Quick Start
//
//	sets := map[string][]int{
//	    "A": {1, 2, 3},
//	    "B": {1, 2},
//	    "C": {2},
//	}
//	keys, err := setcover.GreedySetCover(sets, "greedy-standard")
//	// keys == []string{"A"}
//
// # Strategies
//
// Three strategies realize the same heuristic with different data structures:
//
//	"greedy-standard"  Dense     []bool uncovered marker over compressed ids
//	"greedy-bitvec"    Bitset    64-bit words, gain = popcount(set AND uncovered)
//	"greedy-textbook"  Textbook  hash set of uncovered elements
//
// Sets are put into a canonical order first (more elements first, then
// ascending key) and ties are broken by that order, so all three strategies
// return the same, sorted keys. Any other name fails with ErrInvalidAlgorithm.
//
// # Errors
//
// If some element cannot be covered the call fails with ErrInfeasibleCover
// (an *InfeasibleCoverError); a partial cover is never returned.
//
// # Dense Input
//
// GreedySetCoverDenseKeys and SolveDense accept elements that already are ids
// in [0, n) and skip compression.
//
// # Observability
//
//	keys, err := setcover.GreedySetCover(sets, "greedy-bitvec",
//	    setcover.WithLogger(setcover.NewJSONLogger(slog.LevelDebug)),
//	    setcover.WithMetricsCollector(&setcover.BasicMetricsCollector{}),
//	    setcover.WithParallelism(-1),
//	    setcover.WithVerify(true),
//	)
package setcover
