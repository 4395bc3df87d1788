package greedy

import "github.com/hupe1980/setcover/internal/bitset"

// Bitset runs the greedy cover over the universe [0, universeSize) with every
// set and the uncovered marker packed into 64-bit words.
//
// Ids outside the universe are ignored. The chosen indices are identical to
// Dense for the same input.
func Bitset(universeSize int, sets [][]int, opts Options) ([]int, bool) {
	if universeSize <= 0 {
		return []int{}, true
	}

	members := make([]*bitset.BitSet, len(sets))
	for i, s := range sets {
		members[i] = bitset.FromIDs(universeSize, s)
	}

	return BitsetSets(universeSize, members, opts)
}

// BitsetSets is Bitset over sets that are already packed. Every bitset must
// have length universeSize.
func BitsetSets(universeSize int, sets []*bitset.BitSet, opts Options) ([]int, bool) {
	if universeSize <= 0 {
		return []int{}, true
	}

	uncovered := bitset.NewFull(universeSize)
	remaining := universeSize
	used := make([]bool, len(sets))
	chosen := make([]int, 0)

	gain := func(i int) int {
		return sets[i].IntersectionCount(uncovered)
	}

	for remaining > 0 {
		win := best(len(sets), used, opts.Workers, gain)
		if win.gain == 0 {
			return nil, false
		}

		used[win.index] = true
		chosen = append(chosen, win.index)

		winner := sets[win.index]
		remaining -= uncovered.IntersectionCount(winner)
		uncovered.AndNot(winner)

		opts.selected(len(chosen), win, remaining)
	}

	return chosen, true
}
