// Package greedy implements the greedy set cover heuristic three ways.
//
// All strategies share one selection rule: in every round the unused set
// with the strictly greatest number of still-uncovered distinct elements is
// chosen, the lowest index wins ties, and a round whose best gain is zero
// means no cover exists. Given the same set order they therefore return the
// same index sequence:
//
//   - Dense: []bool uncovered marker, per-element scan
//   - Bitset: []uint64 words, gain is a popcount of (set AND uncovered)
//   - Textbook: hash-set of uncovered elements, no id compression needed
//
// Callers are responsible for the set order; it is the only source of
// tie-break determinism.
package greedy
