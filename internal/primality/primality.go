// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package primality provides an exact primality test for 64-bit integers.
package primality

import "math/bits"

// witnesses is sufficient for a deterministic Miller-Rabin test of every
// n < 3.3e24, which covers all of uint64.
var witnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime. The result is exact for every uint64.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range witnesses {
		if n%p == 0 {
			return n == p
		}
	}
	if n < 37*37 {
		return true
	}

	// n-1 = d * 2^s with d odd.
	d := n - 1
	s := bits.TrailingZeros64(d)
	d >>= uint(s)

	for _, a := range witnesses {
		if !millerRabinRound(n, d, s, a) {
			return false
		}
	}
	return true
}

// millerRabinRound reports whether n passes one strong-probable-prime round
// for base a.
func millerRabinRound(n, d uint64, s int, a uint64) bool {
	x := powMod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 1; i < s; i++ {
		x = mulMod(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}

// mulMod returns a*b mod m. Both operands must be below m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

func powMod(base, exp, m uint64) uint64 {
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}
