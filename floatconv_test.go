// Copyright 2025 Khaled Yassin. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatcmp

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, test := range []struct {
		in   string
		mant uint64
		exp  int32
		neg  bool
	}{
		{"0", 0, 0, false},
		{"-0", 0, 0, false},
		{"+0", 0, 0, false},
		{"0.000", 0, 0, false},
		{"0e10", 0, 0, false},
		{"-0.0e-10", 0, 0, false},
		{"1", 1, 0, false},
		{"+1", 1, 0, false},
		{"-1", 1, 0, true},
		{"1.23", 123, -2, false},
		{"-4.56", 456, -2, true},
		{"1000", 1, 3, false},
		{"1.2300", 123, -2, false},
		{"0.001", 1, -3, false},
		{"00012.30", 123, -1, false},
		{".5", 5, -1, false},
		{"5.", 5, 0, false},
		{"12e34", 12, 34, false},
		{"12E34", 12, 34, false},
		{"1.5e-10", 15, -11, false},
		{"-1.5e+10", 15, 9, true},
		{"18446744073709551615", 18446744073709551615, 0, false}, // max uint64
		{"1000000000000000000000000", 1, 24, false},              // 25 digits, one significant
		{"1e2147483647", 1, math.MaxInt32, false},
	} {
		f, err := Parse(test.in)
		require.NoError(t, err, "Parse(%q)", test.in)
		f.validate()
		require.Equal(t, test.mant, f.mant, "mantissa of %q", test.in)
		require.Equal(t, test.exp, f.exp, "exponent of %q", test.in)
		require.Equal(t, test.neg, f.neg, "sign of %q", test.in)
	}
}

func TestParseErrors(t *testing.T) {
	syntax := []string{
		"", "+", "-", ".", "-.", "abc", "1.2.3", "1e", "1e+", "e5", ".e5",
		"--1", "1x", "0x10", "1 2", " 1", "1 ", "1e2x",
	}
	for _, s := range syntax {
		_, err := Parse(s)
		require.Error(t, err, "Parse(%q)", s)
		require.True(t, ErrSyntax.Has(err), "Parse(%q) error class", s)
	}

	notFinite := []string{"nan", "NaN", "inf", "Inf", "-inf", "+Inf", "Infinity", "-INFINITY"}
	for _, s := range notFinite {
		_, err := Parse(s)
		require.Error(t, err, "Parse(%q)", s)
		require.True(t, ErrNotFinite.Has(err), "Parse(%q) error class", s)
	}

	unrepresentable := []string{
		"1234567890123456789012345",          // 25 significant digits
		"18446744073709551616",               // max uint64 + 1
		"0.12345678901234567890123456789",    // too many fraction digits
		"1234567890123456789012345000000000", // trailing zeros do not rescue earlier overflow
		"1e99999999999999999",
		"1e2147483648", // exponent just past int32
		"1e-2147483649",
	}
	for _, s := range unrepresentable {
		_, err := Parse(s)
		require.Error(t, err, "Parse(%q)", s)
		require.True(t, ErrUnrepresentable.Has(err), "Parse(%q) error class", s)
	}
}

func TestString(t *testing.T) {
	for _, test := range []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"1", "1"},
		{"-1", "-1"},
		{"1.23", "1.23"},
		{"-4.56", "-4.56"},
		{"100", "100"},
		{"1230", "1230"},
		{"0.5", "0.5"},
		{"0.001", "0.001"},
		{"0.000001", "0.000001"},
		{"1e-7", "1e-7"},
		{"-1e-7", "-1e-7"},
		{"1e21", "1e+21"},
		{"123456.789", "123456.789"},
		{"1.7976931348623157e308", "1.7976931348623157e+308"},
		{"5e-324", "5e-324"},
		{"12e34", "1.2e+35"},
		{"-1e400", "-1e+400"},
	} {
		f := mustParse(t, test.in)
		require.Equal(t, test.want, f.String(), "String of %q", test.in)
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 10000; i++ {
		x := math.Float64frombits(rng.Uint64())
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		f, err := FromFloat64(x)
		require.NoError(t, err)
		back, err := Parse(f.String())
		require.NoError(t, err, "Parse(%q)", f.String())
		require.Equal(t, f, back, "round trip of %v via %q", x, f.String())
	}
}

func TestAppend(t *testing.T) {
	f := mustParse(t, "-1.23")
	buf := []byte("x=")
	buf = f.Append(buf)
	require.Equal(t, "x=-1.23", string(buf))
}

func TestStringMatchesStrconv(t *testing.T) {
	// fixed notation must agree with strconv's shortest formatting for
	// values both render without an exponent
	for _, x := range []float64{1.23, -4.56, 100, 0.001, 123456.789, 0.5} {
		f, err := FromFloat64(x)
		require.NoError(t, err)
		s := f.String()
		require.False(t, strings.ContainsAny(s, "eE"), "unexpected exponent in %q", s)
		require.Equal(t, x, mustParse(t, s).Float64())
	}
}
