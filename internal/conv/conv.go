// Package conv provides safe integer narrowing helpers for the tree-NFA
// engine.
//
// State indices and epsilon-closure bitset words are counted with plain
// ints internally but StateID is a fixed uint32. These helpers perform the
// bounds check before the narrowing conversion so an oversized pattern
// fails loudly instead of silently wrapping around.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("treexpr: integer overflow converting int to uint32")
	}
	return uint32(n)
}

// Uint32ToInt safely converts a uint32 to int.
// Panics on 32-bit platforms where n exceeds math.MaxInt32.
func Uint32ToInt(n uint32) int {
	if uint64(n) > uint64(math.MaxInt) {
		panic("treexpr: integer overflow converting uint32 to int")
	}
	return int(n)
}
