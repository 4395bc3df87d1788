package greedy

// Textbook runs the greedy cover directly on the original elements, tracking
// the uncovered ones in a hash set. The universe is every element that
// appears in some set.
//
// It is the reference the other strategies must agree with.
func Textbook[T comparable](sets [][]T, opts Options) ([]int, bool) {
	members, uncovered := distinctElements(sets)
	if len(uncovered) == 0 {
		return []int{}, true
	}

	used := make([]bool, len(sets))
	chosen := make([]int, 0)

	gain := func(i int) int {
		count := 0
		for _, e := range members[i] {
			if _, ok := uncovered[e]; ok {
				count++
			}
		}
		return count
	}

	for len(uncovered) > 0 {
		win := best(len(sets), used, opts.Workers, gain)
		if win.gain == 0 {
			return nil, false
		}

		used[win.index] = true
		chosen = append(chosen, win.index)

		for _, e := range members[win.index] {
			delete(uncovered, e)
		}

		opts.selected(len(chosen), win, len(uncovered))
	}

	return chosen, true
}

// distinctElements drops repeated elements from every set and collects the
// universe.
func distinctElements[T comparable](sets [][]T) ([][]T, map[T]struct{}) {
	// lastSeen[e] is 1 + the index of the last set that contained e.
	lastSeen := make(map[T]int)
	out := make([][]T, len(sets))

	for i, s := range sets {
		row := make([]T, 0, len(s))
		for _, e := range s {
			if lastSeen[e] == i+1 {
				continue
			}
			lastSeen[e] = i + 1
			row = append(row, e)
		}
		out[i] = row
	}

	universe := make(map[T]struct{}, len(lastSeen))
	for e := range lastSeen {
		universe[e] = struct{}{}
	}

	return out, universe
}
