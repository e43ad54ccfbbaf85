// Package kernel implements the six fixed CPU-bound workloads and the
// checksum mixer that folds their results across iterations.
//
// Every function is a pure function of its size parameter. All arithmetic
// wraps modulo 2^64 (native uint64 semantics), so checksums are defined and
// reproducible even on overflow. The constants and loop bounds are part of
// the output contract shared with the companion implementations in other
// languages; changing any of them changes every checksum downstream.
package kernel

// SumXor accumulates (i XOR i>>3) + i mod 8 for i in [1, n].
func SumXor(n uint64) uint64 {
	var acc uint64
	for i := uint64(1); i <= n; i++ {
		acc += (i ^ (i >> 3)) + i%8
	}
	return acc
}

// PrimeTrial classifies every candidate in [2, n] by trial division and folds
// each prime into a checksum weighted by its ordinal. The result packs the
// prime count into the high half: (count << 32) XOR checksum. Returns 0 for
// n < 2.
func PrimeTrial(n uint64) uint64 {
	if n < 2 {
		return 0
	}

	var count, checksum uint64
	for candidate := uint64(2); candidate <= n; candidate++ {
		divisor := uint64(2)
		prime := true
		for divisor*divisor <= candidate {
			if candidate%divisor == 0 {
				prime = false
				break
			}
			divisor++
		}

		if !prime {
			continue
		}

		count++
		checksum += candidate * (count%16 + 1)
	}

	return (count << 32) ^ checksum
}

// AffineGrid walks an n-by-n grid computing an inner-product-like sum per
// cell from two affine byte sequences, then XOR-mixes each cell sum with its
// flattened index scaled by a fixed odd multiplier. Returns 0 for n == 0.
func AffineGrid(n uint64) uint64 {
	if n == 0 {
		return 0
	}

	var checksum uint64
	for row := uint64(0); row < n; row++ {
		for col := uint64(0); col < n; col++ {
			var acc uint64
			for k := uint64(0); k < n; k++ {
				a := (row*131 + k*17 + 13) % 256
				b := (k*19 + col*97 + 53) % 256
				acc += a * b
			}

			index := row*n + col
			checksum ^= acc + index*2654435761
		}
	}

	return checksum
}

// BranchMix runs three independent conditional updates per i in [1, n],
// keyed on i mod 2, i mod 7, and i mod 97, each picking between an additive
// and an XOR update.
func BranchMix(n uint64) uint64 {
	var acc uint64
	for i := uint64(1); i <= n; i++ {
		if i%2 == 0 {
			acc += i << 1
		} else {
			acc ^= i * 3
		}

		if i%7 == 0 {
			acc += i >> 2
		} else {
			acc ^= i % 16
		}

		if i%97 == 0 {
			acc += i * (i%13 + 1)
		}
	}

	return acc
}

// GcdFold reduces the pair (i*37+17, i*53+19) with the iterative Euclidean
// algorithm for each i in [1, n] and folds the divisor into a checksum
// weighted by i mod 16 plus one.
func GcdFold(n uint64) uint64 {
	var checksum uint64
	for i := uint64(1); i <= n; i++ {
		a := i*37 + 17
		b := i*53 + 19
		for b != 0 {
			a, b = b, a%b
		}

		checksum += a * (i%16 + 1)
	}

	return checksum
}

// Parameters of the linear congruential generator behind LcgStream.
const (
	lcgSeed       = 123456789
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 2147483647
)

// LcgStream advances a linear congruential generator n steps, folding each
// state into a checksum (even states add, odd states XOR), and returns the
// checksum XORed with the final state. For n == 0 that is just the seed.
func LcgStream(n uint64) uint64 {
	state := uint64(lcgSeed)
	var checksum uint64

	for i := uint64(0); i < n; i++ {
		state = (state*lcgMultiplier + lcgIncrement) % lcgModulus
		if state%2 == 0 {
			checksum += state
		} else {
			checksum ^= state
		}
	}

	return checksum ^ state
}
