package setcover_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/setcover"
)

func ExampleGreedySetCover() {
	sets := map[string][]int{
		"A": {1, 2, 3},
		"B": {1, 2},
		"C": {2},
	}

	keys, err := setcover.GreedySetCover(sets, "greedy-bitvec")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(keys)
	// Output: [A]
}

func ExampleGreedySetCoverDenseKeys() {
	sets := map[int][]int{
		1: {0, 1},
		2: {3},
	}

	_, err := setcover.GreedySetCoverDenseKeys(sets, "greedy-standard")
	fmt.Println(errors.Is(err, setcover.ErrInfeasibleCover))
	// Output: true
}

func ExampleSolve() {
	sets := map[int][]string{
		1: {"a", "b", "c", "d"},
		2: {"d", "e"},
		3: {"e"},
	}

	res, err := setcover.Solve(sets, setcover.Textbook)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Keys, res.Gains, res.UniverseSize)
	// Output: [1 2] [4 1] 5
}
