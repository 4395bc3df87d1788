package universe

// Compress assigns every distinct element across sets a dense id in
// [0, len(reverse)) and returns the sets rewritten in terms of those ids.
//
// dense[i] has the same length and order as sets[i], duplicates included.
// reverse[id] is the element that was assigned id.
func Compress[T comparable](sets [][]T) (dense [][]int, reverse []T) {
	total := 0
	for _, s := range sets {
		total += len(s)
	}

	ids := make(map[T]int, total)
	reverse = make([]T, 0, min(total, 1024))
	dense = make([][]int, len(sets))

	for i, s := range sets {
		row := make([]int, len(s))
		for j, item := range s {
			id, ok := ids[item]
			if !ok {
				id = len(reverse)
				ids[item] = id
				reverse = append(reverse, item)
			}
			row[j] = id
		}
		dense[i] = row
	}

	return dense, reverse
}
