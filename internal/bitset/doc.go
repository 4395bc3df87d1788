// Package bitset provides a fixed-size, word-packed bitset for the greedy cover loop.
//
// Architecture:
//   - One uint64 word per 64 elements; bit b of word w is element 64w+b
//   - Fixed universe chosen at construction, no growth
//   - Bits at positions >= the universe size are always zero
//
// The tail invariant matters: gain is computed as the popcount of
// (set AND uncovered), so a stray bit past the universe would be counted.
// Every constructor in this package masks the last word.
//
// Used internally for:
//   - The "uncovered" marker of the bitset strategy
//   - Per-set membership of the bitset strategy
//   - Presence checks on dense integer inputs
package bitset
