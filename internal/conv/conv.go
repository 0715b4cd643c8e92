// Package conv provides safe integer conversion helpers for the NFA graph's
// state IDs. newState (nfa/state.go) and Match (nfa/simulate.go) both need
// an int state count narrowed to the uint32 StateID width; this package
// bounds-checks that narrowing instead of letting it overflow silently.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
//
//go:inline
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
