// Copyright 2025 Khaled Yassin. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatcmp

import "math/bits"

// maxDigits is the number of decimal digits that always fit a uint64
// mantissa: 10**19 - 1 < 1<<64.
const maxDigits = 19

var pow10tab = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
	10000000000, 100000000000, 1000000000000, 10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000, 10000000000000000000,
}

// pow10 returns 10**n. n must be at most 19.
func pow10(n uint) uint64 {
	return pow10tab[n]
}

var pow2digitsTab = [...]uint{
	1, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4, 4, 4, 5, 5,
	5, 6, 6, 6, 7, 7, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 11, 11, 11, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 15,
	15, 15, 16, 16, 16, 16, 17, 17, 17, 18, 18, 18, 19, 19, 19, 20, 20,
}

// digits returns n such that 10**(n-1) <= x < 10**n.
// Returns 0 for x == 0.
func digits(x uint64) (n uint) {
	n = pow2digitsTab[bits.Len64(x)]
	if x < pow10tab[n-1] {
		n--
	}
	return n
}

// trailingZeroDigits returns the number of trailing decimal zeros of n.
// n must not be 0.
func trailingZeroDigits(n uint64) uint {
	var d uint
	if n%10000000000000000 == 0 {
		n /= 10000000000000000
		d += 16
	}
	if n%100000000 == 0 {
		n /= 100000000
		d += 8
	}
	if n%10000 == 0 {
		n /= 10000
		d += 4
	}
	if n%100 == 0 {
		n /= 100
		d += 2
	}
	if n%10 == 0 {
		d++
	}
	return d
}

// norm strips trailing decimal zeros from mant. It returns the stripped
// mantissa and the number of digits removed, so that
// mant == stripped * 10**shift. norm(0) == (0, 0).
func norm(mant uint64) (stripped uint64, shift uint) {
	if mant == 0 {
		return 0, 0
	}
	shift = trailingZeroDigits(mant)
	return mant / pow10(shift), shift
}
