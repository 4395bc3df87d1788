package greedy

// Options tunes a single greedy run.
type Options struct {
	// Workers is the number of goroutines used to compute per-round gains.
	// Values <= 1 scan sequentially. The chosen sets do not depend on it.
	Workers int

	// OnSelect, if set, is called after every round.
	OnSelect func(Selection)
}

// Selection describes one round of the greedy loop.
type Selection struct {
	// Round is 1-based.
	Round int
	// Index is the position of the chosen set in the input.
	Index int
	// Gain is the number of elements the set newly covered.
	Gain int
	// Remaining is the number of elements still uncovered after the round.
	Remaining int
}

func (o Options) selected(round int, c candidate, remaining int) {
	if o.OnSelect == nil {
		return
	}
	o.OnSelect(Selection{
		Round:     round,
		Index:     c.index,
		Gain:      c.gain,
		Remaining: remaining,
	})
}
