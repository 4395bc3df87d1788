package setcover

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlgorithm is returned when the strategy name is not recognized.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrInfeasibleCover is returned when the sets cannot cover the universe.
	ErrInfeasibleCover = errors.New("unable to find a set cover")

	// ErrNegativeElement is returned by the dense-key entry points when an
	// element is below zero.
	ErrNegativeElement = errors.New("dense elements must be non-negative")

	// ErrElementTooLarge is returned by the dense-key entry points when an
	// element is math.MaxInt, whose universe size max+1 is not representable.
	ErrElementTooLarge = errors.New("dense element too large")

	// ErrIncompleteCover is returned by Verify when some element is not covered.
	ErrIncompleteCover = errors.New("cover does not contain every element")

	// ErrDuplicateKey is returned by Verify when a key appears twice in a cover.
	ErrDuplicateKey = errors.New("duplicate key in cover")

	// ErrUnknownKey is returned by Verify when a cover names a key that is not
	// in the set collection.
	ErrUnknownKey = errors.New("unknown key in cover")
)

// InvalidAlgorithmError indicates an unsupported strategy name.
//
// It matches ErrInvalidAlgorithm via errors.Is.
type InvalidAlgorithmError struct {
	Name string
}

func (e *InvalidAlgorithmError) Error() string {
	return fmt.Sprintf("wrong algo choice %q, must be %q, %q or %q",
		e.Name, StrategyBitset, StrategyDense, StrategyTextbook)
}

func (e *InvalidAlgorithmError) Unwrap() error { return ErrInvalidAlgorithm }

// InfeasibleCoverError indicates that the greedy loop reached a round in
// which no unused set covers any remaining element.
//
// It matches ErrInfeasibleCover via errors.Is.
type InfeasibleCoverError struct {
	Strategy Strategy
	// Uncovered is the number of elements left when the loop stopped.
	Uncovered int
}

func (e *InfeasibleCoverError) Error() string {
	return fmt.Sprintf("unable to find a set cover using algorithm %s: %d element(s) uncovered",
		e.Strategy, e.Uncovered)
}

func (e *InfeasibleCoverError) Unwrap() error { return ErrInfeasibleCover }
