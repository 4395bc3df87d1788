package bitset

import "math/bits"

// WordBits is the number of bits per word.
const WordBits = 64

// BitSet is a fixed-size bitset over the universe [0, Len()).
// It is not safe for concurrent mutation; concurrent reads are fine.
type BitSet struct {
	words []uint64
	size  int
}

// NumWords returns the number of words needed for a universe of size n.
func NumWords(n int) int {
	return (n + WordBits - 1) / WordBits
}

// New creates an empty BitSet for a universe of size n.
func New(n int) *BitSet {
	if n < 0 {
		n = 0
	}
	return &BitSet{
		words: make([]uint64, NumWords(n)),
		size:  n,
	}
}

// NewFull creates a BitSet with every bit in [0, n) set.
// The excess high bits of the last word are cleared.
func NewFull(n int) *BitSet {
	b := New(n)
	for i := range b.words {
		b.words[i] = ^uint64(0)
	}
	b.maskTail()
	return b
}

// FromIDs creates a BitSet for a universe of size n with the given ids set.
// Ids outside [0, n) are ignored.
func FromIDs(n int, ids []int) *BitSet {
	b := New(n)
	for _, id := range ids {
		b.Set(id)
	}
	return b
}

func (b *BitSet) maskTail() {
	excess := len(b.words)*WordBits - b.size
	if excess > 0 {
		b.words[len(b.words)-1] &= ^uint64(0) >> excess
	}
}

// Set sets bit i. Out-of-range ids are ignored.
func (b *BitSet) Set(i int) {
	if i < 0 || i >= b.size {
		return
	}
	b.words[i>>6] |= uint64(1) << (uint(i) & 63)
}

// Count returns the number of set bits.
func (b *BitSet) Count() int {
	count := 0
	for _, w := range b.words {
		count += bits.OnesCount64(w)
	}
	return count
}

// IntersectionCount returns popcount(b AND other), summed word by word.
// Both bitsets must share the same universe size.
func (b *BitSet) IntersectionCount(other *BitSet) int {
	ow := other.words[:len(b.words)]
	count := 0
	for i, w := range b.words {
		count += bits.OnesCount64(w & ow[i])
	}
	return count
}

// AndNot clears every bit of b that is set in other (b &^= other).
// Bits already zero stay zero, so the tail invariant holds.
func (b *BitSet) AndNot(other *BitSet) {
	ow := other.words[:len(b.words)]
	for i := range b.words {
		b.words[i] &^= ow[i]
	}
}
