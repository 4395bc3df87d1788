package bitset

var hasPopcount bool

// HasHardwarePopcount reports whether math/bits.OnesCount64 compiles to a
// single hardware instruction on this CPU.
func HasHardwarePopcount() bool {
	return hasPopcount
}
