// Copyright 2025 Khaled Yassin. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatcmp

import (
	"fmt"
	"math"
	"strconv"
)

const debugFloat = false // enable for additional invariant checks

// A Float represents a finite decimal floating point value
//
//	(-1)^neg × mant × 10^exp
//
// with the mantissa normalized to carry no trailing decimal zeros. The zero
// value of the struct is the canonical representation of 0, so new values
// can be declared in the usual ways and denote 0 without further
// initialization.
//
// Float is a plain immutable value: methods never mutate their receiver or
// arguments, and values may be copied and compared from any number of
// goroutines concurrently.
type Float struct {
	mant uint64
	exp  int32
	neg  bool
}

// FromFloat64 returns the Float representing x, or an error if x is NaN or
// infinite.
//
// The decimal mantissa and exponent are extracted from the shortest decimal
// form of x that converts back to x exactly (the standard round-to-nearest-
// even conversion). Any finite float64 has such a form with at most 17
// significant digits, so construction never truncates and
// FromFloat64(x).Float64() == x for every accepted input. Positive and
// negative zero both map to canonical zero.
func FromFloat64(x float64) (Float, error) {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return Float{}, ErrNotFinite.New("cannot represent %v", x)
	}
	if x == 0 {
		return Float{}, nil
	}
	var buf [32]byte
	b := strconv.AppendFloat(buf[:0], x, 'e', -1, 64)
	neg := false
	if b[0] == '-' {
		neg, b = true, b[1:]
	}
	mant, exp := splitShortest(b)
	mant, shift := norm(mant)
	f := Float{mant: mant, exp: int32(exp) + int32(shift), neg: neg}
	if debugFloat {
		f.validate()
	}
	return f, nil
}

// splitShortest unpacks strconv's shortest 'e' format d[.ddd...]e±dd into an
// integer mantissa and a base-10 exponent. The mantissa of a non-zero
// shortest form has at most 17 digits and always fits a uint64.
func splitShortest(b []byte) (mant uint64, exp int) {
	mant = uint64(b[0] - '0')
	i, frac := 1, 0
	if b[i] == '.' {
		for i++; b[i] != 'e'; i++ {
			mant = mant*10 + uint64(b[i]-'0')
			frac++
		}
	}
	i++ // consume 'e'
	eneg := b[i] == '-'
	if b[i] == '-' || b[i] == '+' {
		i++
	}
	for ; i < len(b); i++ {
		exp = exp*10 + int(b[i]-'0')
	}
	if eneg {
		exp = -exp
	}
	return mant, exp - frac
}

// New returns the normalized Float with value (-1)^neg × mant × 10^exp.
// It fails with ErrUnrepresentable if normalization pushes the exponent out
// of int32 range. New(0, exp, neg) is canonical zero for any exp and neg.
func New(mant uint64, exp int32, neg bool) (Float, error) {
	if mant == 0 {
		return Float{}, nil
	}
	mant, shift := norm(mant)
	e := int64(exp) + int64(shift)
	if e > math.MaxInt32 {
		return Float{}, ErrUnrepresentable.New("exponent %d out of range", e)
	}
	f := Float{mant: mant, exp: int32(e), neg: neg}
	if debugFloat {
		f.validate()
	}
	return f, nil
}

// exact powers of ten in float64, 10**0 through 10**22
var float64pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// Float64 returns the nearest 64 bit binary floating point value to x.
// Magnitudes beyond the float64 range saturate to ±Inf with the sign of x;
// magnitudes below the smallest subnormal flush to zero. Both follow the
// standard float64 overflow and underflow behavior.
func (x Float) Float64() float64 {
	if x.mant == 0 {
		return 0
	}
	if x.mant < 1<<53 && -22 <= x.exp && x.exp <= 22 {
		// mantissa and scale are both exact in float64, so a single
		// multiplication or division rounds correctly
		f := float64(x.mant)
		switch {
		case x.exp > 0:
			f *= float64pow10[x.exp]
		case x.exp < 0:
			f /= float64pow10[-x.exp]
		}
		if x.neg {
			return -f
		}
		return f
	}
	return x.float64Slow()
}

func (x Float) float64Slow() float64 {
	var buf [32]byte
	b := strconv.AppendUint(buf[:0], x.mant, 10)
	b = append(b, 'e')
	b = strconv.AppendInt(b, int64(x.exp), 10)
	// a range error means ParseFloat already saturated to ±Inf or flushed
	// a subnormal underflow to 0
	f, _ := strconv.ParseFloat(string(b), 64)
	if x.neg {
		return -f
	}
	return f
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x Float) Sign() int {
	if x.mant == 0 {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Signbit reports whether x is negative. Unlike float64, canonical zero is
// never negative.
func (x Float) Signbit() bool {
	return x.neg
}

// IsZero reports whether x is the canonical zero value.
func (x Float) IsZero() bool {
	return x.mant == 0
}

// MantExp returns the normalized decimal mantissa and exponent of x, such
// that |x| == mant × 10**exp. For x == 0 both results are 0.
func (x Float) MantExp() (mant uint64, exp int32) {
	return x.mant, x.exp
}

// validate panics if x violates its representation invariants.
func (x Float) validate() {
	if x.mant == 0 {
		if x.exp != 0 || x.neg {
			panic(fmt.Sprintf("zero not canonical: %+v", x))
		}
		return
	}
	if x.mant%10 == 0 {
		panic(fmt.Sprintf("mantissa %d has trailing zeros", x.mant))
	}
}
