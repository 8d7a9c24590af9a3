// Copyright 2025 Khaled Yassin. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatcmp

import "github.com/zeebo/errs"

// Construction is the only fallible operation in this package. Callers
// classify failures with the classes' Has method.
var (
	// ErrNotFinite is returned when constructing from a NaN or infinite
	// input.
	ErrNotFinite = errs.Class("not finite")

	// ErrUnrepresentable is returned when a value needs more significant
	// digits than the 64 bit mantissa holds, or an exponent outside the
	// supported range.
	ErrUnrepresentable = errs.Class("unrepresentable")

	// ErrSyntax is returned by Parse for malformed input.
	ErrSyntax = errs.Class("invalid syntax")
)
