//go:build !amd64 && !arm64

package bitset

func init() {
	hasPopcount = false
}
