// Copyright 2025 Khaled Yassin. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sortfloat converts float64 values to uint64 keys that preserve
// numeric order, so plain integer comparison sorts them correctly. It is
// the cheapest contender in the comparison benchmarks: a single branch and
// a couple of bit operations per value, at the cost of keeping no decimal
// structure at all.
package sortfloat

import "math"

// ToSortable returns a uint64 key for a that orders like a. Keys of finite
// values compare the way the values do, -Inf and +Inf sort below and above
// all finite values, NaN sorts below everything, and 0 and -0 share one
// key. The original value is recovered with FromSortable.
func ToSortable(a float64) uint64 {
	if a != a { // NaN
		return 0
	}
	if a == 0 { // unify 0 and -0
		return 1 << 63
	}
	i := math.Float64bits(a)
	if a < 0 {
		// flip everything so larger magnitudes sort lower
		return ^i
	}
	// flip the sign bit so positives sort above negatives
	return i ^ 1<<63
}

// FromSortable returns the float64 that k was derived from. Zero keys decode
// to NaN and the unified zero key decodes to +0.
func FromSortable(k uint64) float64 {
	if k == 0 {
		return math.NaN()
	}
	if k>>63 == 0 {
		k = ^k
	} else {
		k ^= 1 << 63
	}
	return math.Float64frombits(k)
}
