package greedy

// Dense runs the greedy cover over the universe [0, universeSize) using a
// []bool uncovered marker.
//
// sets[i] lists the ids of set i. Ids outside the universe are ignored and
// repeated ids count once. It returns the chosen set indices in selection
// order, or false if the universe cannot be covered.
func Dense(universeSize int, sets [][]int, opts Options) ([]int, bool) {
	if universeSize <= 0 {
		return []int{}, true
	}

	members := distinctIDs(universeSize, sets)

	uncovered := make([]bool, universeSize)
	for i := range uncovered {
		uncovered[i] = true
	}
	remaining := universeSize
	used := make([]bool, len(sets))
	chosen := make([]int, 0)

	gain := func(i int) int {
		count := 0
		for _, e := range members[i] {
			if uncovered[e] {
				count++
			}
		}
		return count
	}

	for remaining > 0 {
		win := best(len(sets), used, opts.Workers, gain)
		if win.gain == 0 {
			return nil, false
		}

		used[win.index] = true
		chosen = append(chosen, win.index)

		for _, e := range members[win.index] {
			if uncovered[e] {
				uncovered[e] = false
				remaining--
				if remaining == 0 {
					break
				}
			}
		}

		opts.selected(len(chosen), win, remaining)
	}

	return chosen, true
}

// distinctIDs drops out-of-range and repeated ids from every set, keeping
// first-occurrence order.
func distinctIDs(universeSize int, sets [][]int) [][]int {
	// lastSeen[id] is 1 + the index of the last set that contained id.
	lastSeen := make([]int, universeSize)
	out := make([][]int, len(sets))

	for i, s := range sets {
		row := make([]int, 0, len(s))
		for _, e := range s {
			if e < 0 || e >= universeSize || lastSeen[e] == i+1 {
				continue
			}
			lastSeen[e] = i + 1
			row = append(row, e)
		}
		out[i] = row
	}

	return out
}
