package bitset

import (
	"testing"
)

// has reports whether bit i is set, for assertions only.
func (b *BitSet) has(i int) bool {
	if i < 0 || i >= b.size {
		return false
	}
	return b.words[i>>6]&(uint64(1)<<(uint(i)&63)) != 0
}

func TestBitSet(t *testing.T) {
	b := New(100)

	if b.size != 100 || len(b.words) != 2 {
		t.Errorf("expected size 100 in 2 words, got %d in %d", b.size, len(b.words))
	}

	b.Set(10)
	if !b.has(10) {
		t.Errorf("expected bit 10 to be set")
	}

	if b.Count() != 1 {
		t.Errorf("expected count 1, got %d", b.Count())
	}

	if b.has(11) {
		t.Errorf("expected bit 11 to be unset")
	}

	b.Set(10)
	b.Set(20)
	b.Set(99)
	b.Set(100) // out of range, ignored
	b.Set(-1)

	if b.Count() != 3 {
		t.Errorf("expected count 3, got %d", b.Count())
	}
}

func TestNewFull_MasksTail(t *testing.T) {
	tests := []struct {
		size  int
		words int
	}{
		{0, 0},
		{1, 1},
		{63, 1},
		{64, 1},
		{65, 2},
		{130, 3},
	}

	for _, tt := range tests {
		b := NewFull(tt.size)
		if len(b.words) != tt.words {
			t.Errorf("NewFull(%d) words = %d, expected %d", tt.size, len(b.words), tt.words)
		}
		if b.Count() != tt.size {
			t.Errorf("NewFull(%d) count = %d, expected %d", tt.size, b.Count(), tt.size)
		}
		if b.has(tt.size) {
			t.Errorf("NewFull(%d) has bit %d set", tt.size, tt.size)
		}
	}
}

func TestFromIDs_IgnoresOutOfRange(t *testing.T) {
	b := FromIDs(70, []int{0, 3, 3, 64, 69, 70, 1000, -5})

	if b.Count() != 4 {
		t.Errorf("expected count 4, got %d", b.Count())
	}
	for _, id := range []int{0, 3, 64, 69} {
		if !b.has(id) {
			t.Errorf("expected bit %d to be set", id)
		}
	}
}

func TestIntersectionCountAndNot(t *testing.T) {
	uncovered := NewFull(130)
	set := FromIDs(130, []int{1, 2, 64, 128, 129})

	if got := set.IntersectionCount(uncovered); got != 5 {
		t.Errorf("IntersectionCount = %d, expected 5", got)
	}

	uncovered.AndNot(set)
	if uncovered.Count() != 125 {
		t.Errorf("expected 125 uncovered after AndNot, got %d", uncovered.Count())
	}
	if got := set.IntersectionCount(uncovered); got != 0 {
		t.Errorf("IntersectionCount after AndNot = %d, expected 0", got)
	}

	// Clearing again is a no-op.
	uncovered.AndNot(set)
	if uncovered.Count() != 125 {
		t.Errorf("expected 125 uncovered after second AndNot, got %d", uncovered.Count())
	}
}

func BenchmarkIntersectionCount(b *testing.B) {
	uncovered := NewFull(100_000)
	ids := make([]int, 0, 10_000)
	for i := 0; i < 100_000; i += 10 {
		ids = append(ids, i)
	}
	set := FromIDs(100_000, ids)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = set.IntersectionCount(uncovered)
	}
}
