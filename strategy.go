package setcover

// Strategy selects the internal representation used by the greedy loop.
// All strategies return the same cover for the same input.
type Strategy int

const (
	// Dense tracks uncovered elements in a []bool. Name: "greedy-standard".
	Dense Strategy = iota
	// Bitset packs sets into 64-bit words and uses popcount. Name: "greedy-bitvec".
	Bitset
	// Textbook keeps uncovered elements in a hash set. Name: "greedy-textbook".
	Textbook
)

// Canonical strategy names.
const (
	StrategyDense    = "greedy-standard"
	StrategyBitset   = "greedy-bitvec"
	StrategyTextbook = "greedy-textbook"
)

// String returns the canonical name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Dense:
		return StrategyDense
	case Bitset:
		return StrategyBitset
	case Textbook:
		return StrategyTextbook
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined strategies.
func (s Strategy) Valid() bool {
	return s >= Dense && s <= Textbook
}

// ParseStrategy maps a strategy name to its Strategy.
// Unknown names return an *InvalidAlgorithmError.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case StrategyDense:
		return Dense, nil
	case StrategyBitset:
		return Bitset, nil
	case StrategyTextbook:
		return Textbook, nil
	default:
		return 0, &InvalidAlgorithmError{Name: name}
	}
}

// Strategies returns all strategies in a fixed order.
func Strategies() []Strategy {
	return []Strategy{Dense, Bitset, Textbook}
}
