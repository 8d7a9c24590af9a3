package floatcmp

import (
	"math"
	"strconv"
	"strings"
)

// Parse interprets s as a decimal number of the form
//
//	[ sign ] digits [ "." digits ] [ ( "e" | "E" ) [ sign ] digits ]
//
// and returns the exact normalized Float. Unlike FromFloat64, Parse never
// goes through binary floating point, so Parse("0.1") is exactly 1×10^-1
// rather than the nearest binary approximation.
//
// Parse fails with ErrUnrepresentable if the significant digits of s do not
// fit the 64 bit mantissa or the exponent leaves int32 range; trailing
// zeros are not significant and fold into the exponent first. Non-finite
// spellings ("inf", "infinity", "nan", any case) fail with ErrNotFinite,
// and anything else that is not a plain decimal number fails with
// ErrSyntax. There is no rounding: a value is either represented exactly or
// rejected.
func Parse(s string) (Float, error) {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	switch rest := s[i:]; {
	case strings.EqualFold(rest, "inf"), strings.EqualFold(rest, "infinity"),
		strings.EqualFold(rest, "nan"):
		return Float{}, ErrNotFinite.New("cannot represent %q", s)
	}
	var (
		mant  uint64
		zeros int // pending trailing zero run, not yet folded into mant
		frac  int // digits seen after the radix point
		dot   bool
		seen  bool
	)
loop:
	for ; i < len(s); i++ {
		switch c := s[i]; {
		case c == '.':
			if dot {
				return Float{}, ErrSyntax.New("invalid number %q", s)
			}
			dot = true
		case c == 'e' || c == 'E':
			if !seen {
				return Float{}, ErrSyntax.New("invalid number %q", s)
			}
			break loop
		case '0' <= c && c <= '9':
			seen = true
			if dot {
				frac++
			}
			if c == '0' {
				if mant != 0 {
					zeros++
				}
				continue
			}
			for ; zeros > 0; zeros-- {
				if mant > math.MaxUint64/10 {
					return Float{}, ErrUnrepresentable.New("%q exceeds %d significant digits", s, maxDigits)
				}
				mant *= 10
			}
			d := uint64(c - '0')
			if mant > (math.MaxUint64-d)/10 {
				return Float{}, ErrUnrepresentable.New("%q exceeds %d significant digits", s, maxDigits)
			}
			mant = mant*10 + d
		default:
			return Float{}, ErrSyntax.New("invalid number %q", s)
		}
	}
	if !seen {
		return Float{}, ErrSyntax.New("invalid number %q", s)
	}
	var exp int64
	if i < len(s) { // s[i] is 'e' or 'E'
		i++
		eneg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			eneg = s[i] == '-'
			i++
		}
		if i == len(s) {
			return Float{}, ErrSyntax.New("invalid number %q", s)
		}
		for ; i < len(s); i++ {
			c := s[i]
			if c < '0' || c > '9' {
				return Float{}, ErrSyntax.New("invalid number %q", s)
			}
			exp = exp*10 + int64(c-'0')
			if exp > 1<<40 {
				return Float{}, ErrUnrepresentable.New("exponent out of range in %q", s)
			}
		}
		if eneg {
			exp = -exp
		}
	}
	if mant == 0 {
		// ±0, 0e±n, 0.00... all collapse to canonical zero
		return Float{}, nil
	}
	e := exp - int64(frac) + int64(zeros)
	if e < math.MinInt32 || e > math.MaxInt32 {
		return Float{}, ErrUnrepresentable.New("exponent out of range in %q", s)
	}
	f := Float{mant: mant, exp: int32(e), neg: neg}
	if debugFloat {
		f.validate()
	}
	return f, nil
}

// String returns a decimal representation of x: fixed notation for moderate
// exponents, scientific notation (d.ddde±dd) otherwise. The output parses
// back to x exactly: Parse(x.String()) == x for every valid value.
func (x Float) String() string {
	return string(x.Append(nil))
}

// Append appends the decimal representation of x to buf and returns the
// extended buffer.
func (x Float) Append(buf []byte) []byte {
	if x.neg {
		buf = append(buf, '-')
	}
	if x.mant == 0 {
		return append(buf, '0')
	}
	var tmp [maxDigits + 1]byte
	d := strconv.AppendUint(tmp[:0], x.mant, 10)
	n := len(d)
	e := int(int64(x.exp) + int64(n)) // 10**(e-1) <= |x| < 10**e
	switch {
	case x.exp >= 0 && e <= 21:
		// integer with x.exp trailing zeros
		buf = append(buf, d...)
		for i := int32(0); i < x.exp; i++ {
			buf = append(buf, '0')
		}
	case 0 < e && e <= 21:
		// radix point inside the digits
		buf = append(buf, d[:e]...)
		buf = append(buf, '.')
		buf = append(buf, d[e:]...)
	case -6 < e && e <= 0:
		// 0.00...ddd
		buf = append(buf, '0', '.')
		for i := e; i < 0; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, d...)
	default:
		// scientific
		buf = append(buf, d[0])
		if n > 1 {
			buf = append(buf, '.')
			buf = append(buf, d[1:]...)
		}
		buf = append(buf, 'e')
		if e > 0 {
			buf = append(buf, '+')
		}
		buf = strconv.AppendInt(buf, int64(e)-1, 10)
	}
	return buf
}
