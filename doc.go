// Copyright 2025 Khaled Yassin. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package floatcmp implements a minimal decimal floating point value built for
fast total-order comparisons.

A Float stores a finite value as a sign, an unsigned 64 bit decimal mantissa
and a base-10 exponent:

	value = (-1)^sign × mantissa × 10^exponent

The representation is normalized: the mantissa carries no trailing decimal
zeros and zero has a single canonical form. Each representable value
therefore has exactly one encoding and equality coincides with struct
identity. There is no NaN and no infinity; construction rejects non-finite
input and every operation on successfully constructed values is total.

Float supports no arithmetic. The only operations are construction from a
float64 (or from decimal text), conversion back to the nearest float64, and
comparison:

	a, _ := floatcmp.FromFloat64(1.23)
	b, _ := floatcmp.FromFloat64(4.56)
	if a.Cmp(b) < 0 {
		// a < b
	}

Conversion round-trips exactly: for every finite float64 f,
FromFloat64(f).Float64() == f (with -0 mapping to canonical zero).

Comparison executes a bounded number of primitive integer operations and
never allocates; that is the property the package exists to exercise. The
internal/benchmark harness and the package benchmarks measure it against a
general-purpose decimal library and an order-preserving uint64 encoding.

Float values are immutable and safe for concurrent use without
synchronization.
*/
package floatcmp
