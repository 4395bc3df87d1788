package setcover

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/setcover/internal/universe"
)

// Verify checks that cover is a valid cover of sets: every key is known,
// no key appears twice, and the union of the chosen sets contains every
// element of every set.
//
// Errors match ErrUnknownKey, ErrDuplicateKey or ErrIncompleteCover.
func Verify[K comparable, T comparable](sets map[K][]T, cover []K) error {
	keys := make([]K, 0, len(sets))
	rows := make([][]T, 0, len(sets))
	for k, s := range sets {
		keys = append(keys, k)
		rows = append(rows, s)
	}

	dense, reverse := universe.Compress(rows)
	if uint64(len(reverse)) > math.MaxUint32 {
		return fmt.Errorf("verify: universe of %d elements exceeds 32-bit ids", len(reverse))
	}

	// Keys that are not equal to themselves (NaN) cannot be found in a map;
	// a cover names them by value, so they are matched in any order.
	index := make(map[K]int, len(keys))
	var unequal []int
	for i, k := range keys {
		if k != k {
			unequal = append(unequal, i)
			continue
		}
		index[k] = i
	}
	hasUnequal := len(unequal) > 0

	covered := roaring.New()
	seen := make(map[K]struct{}, len(cover))
	for _, k := range cover {
		var i int
		if k != k {
			if len(unequal) == 0 {
				if hasUnequal {
					return fmt.Errorf("%w: %v", ErrDuplicateKey, k)
				}
				return fmt.Errorf("%w: %v", ErrUnknownKey, k)
			}
			i, unequal = unequal[0], unequal[1:]
		} else {
			var ok bool
			if i, ok = index[k]; !ok {
				return fmt.Errorf("%w: %v", ErrUnknownKey, k)
			}
			if _, dup := seen[k]; dup {
				return fmt.Errorf("%w: %v", ErrDuplicateKey, k)
			}
			seen[k] = struct{}{}
		}

		for _, id := range dense[i] {
			covered.Add(uint32(id))
		}
	}

	total := uint64(len(reverse))
	if got := covered.GetCardinality(); got != total {
		return fmt.Errorf("%w: %d of %d element(s) missing", ErrIncompleteCover, total-got, total)
	}
	return nil
}
