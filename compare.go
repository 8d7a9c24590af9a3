// Copyright 2025 Khaled Yassin. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatcmp

import "math/bits"

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Cmp is a total order: exactly one of the three outcomes holds for any pair
// of values, and the order is transitive. There is no tolerance; values are
// equal only when their normalized representations coincide.
func (x Float) Cmp(y Float) int {
	if x.neg != y.neg {
		// zero is never negative, so differing signs decide
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.ucmp(y)
	if x.neg {
		c = -c
	}
	return c
}

// Equal reports whether x and y represent the same value. Normalization
// makes numeric equality coincide with representation identity.
func (x Float) Equal(y Float) bool {
	return x == y
}

// Less reports whether x < y. It is suitable as a sort ordering function.
func (x Float) Less(y Float) bool {
	return x.Cmp(y) < 0
}

// ucmp compares the magnitudes of x and y.
//
// The magnitude of a non-zero value has exp+digits(mant) decimal digits in
// front of the radix point, so magnitudes of different decimal order never
// need their mantissas inspected. Equal orders are decided by scaling the
// larger-exponent mantissa up to the smaller exponent through a 128 bit
// product; a non-zero high word means the scaled mantissa exceeded a uint64
// and is necessarily the larger magnitude. The whole comparison is a fixed
// number of integer operations, independent of the exponent difference.
func (x Float) ucmp(y Float) int {
	if x.mant == 0 || y.mant == 0 {
		switch {
		case x.mant == y.mant:
			return 0
		case x.mant == 0:
			return -1
		}
		return 1
	}
	dx := int64(x.exp) + int64(digits(x.mant))
	dy := int64(y.exp) + int64(digits(y.mant))
	switch {
	case dx < dy:
		return -1
	case dx > dy:
		return 1
	}
	// equal decimal order implies |x.exp - y.exp| < maxDigits
	switch d := int64(x.exp) - int64(y.exp); {
	case d > 0:
		hi, lo := bits.Mul64(x.mant, pow10(uint(d)))
		switch {
		case hi != 0 || lo > y.mant:
			return 1
		case lo < y.mant:
			return -1
		}
	case d < 0:
		hi, lo := bits.Mul64(y.mant, pow10(uint(-d)))
		switch {
		case hi != 0 || lo > x.mant:
			return -1
		case lo < x.mant:
			return 1
		}
	default:
		switch {
		case x.mant < y.mant:
			return -1
		case x.mant > y.mant:
			return 1
		}
	}
	return 0
}
