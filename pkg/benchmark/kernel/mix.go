package kernel

import "math/bits"

// mixOffset is the 64-bit golden ratio constant used as the avalanche offset.
const mixOffset = 0x9e3779b97f4a7c15

// Mix folds a workload result and its zero-based iteration index into a
// running checksum: XOR with the offset value plus the shifted iteration
// index, then a 13-bit left rotation. Order-sensitive across iterations so
// different iteration counts produce different aggregate checksums. Not a
// cryptographic hash.
func Mix(current, value, iteration uint64) uint64 {
	current ^= value + mixOffset + (iteration << 6) + (iteration >> 2)
	return bits.RotateLeft64(current, 13)
}
