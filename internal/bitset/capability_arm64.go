//go:build arm64

package bitset

import "golang.org/x/sys/cpu"

func init() {
	// VCNT is part of the base ASIMD set.
	hasPopcount = cpu.ARM64.HasASIMD
}
