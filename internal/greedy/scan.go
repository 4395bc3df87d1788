package greedy

import "golang.org/x/sync/errgroup"

// minParallelSets is the set count below which a parallel scan is not worth
// the goroutine fan-out.
const minParallelSets = 64

type candidate struct {
	index int
	gain  int
}

var noCandidate = candidate{index: -1}

// best returns the unused set with the strictly greatest gain.
// The lowest index wins ties; gain 0 means nothing can be covered.
//
// With workers > 1 the index range is split into contiguous chunks scanned
// concurrently. Chunk winners are merged in chunk order with the same strict
// comparison, which yields exactly the sequential answer.
func best(numSets int, used []bool, workers int, gain func(i int) int) candidate {
	if workers <= 1 || numSets < minParallelSets {
		return scanRange(0, numSets, used, gain)
	}

	chunks := min(workers, numSets)
	size := (numSets + chunks - 1) / chunks
	results := make([]candidate, chunks)

	var g errgroup.Group
	for c := range chunks {
		lo := c * size
		hi := min(lo+size, numSets)
		g.Go(func() error {
			results[c] = scanRange(lo, hi, used, gain)
			return nil
		})
	}
	_ = g.Wait()

	out := noCandidate
	for _, r := range results {
		if r.gain > out.gain {
			out = r
		}
	}
	return out
}

func scanRange(lo, hi int, used []bool, gain func(i int) int) candidate {
	out := noCandidate
	for i := lo; i < hi; i++ {
		if used[i] {
			continue
		}
		if g := gain(i); g > out.gain {
			out = candidate{index: i, gain: g}
		}
	}
	return out
}
