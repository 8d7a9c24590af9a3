// Copyright 2025 Khaled Yassin. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmark drives the comparison contenders through repeated
// construction, conversion, comparison and sorting runs and reports the
// wall-clock cost of each. The contenders are the floatcmp.Float type under
// test, a general-purpose decimal library, an order-preserving uint64
// encoding, and native float64 as the floor.
package benchmark

import (
	"math/rand"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	floatcmp "github.com/KhaledYassin/fast-float-compare"
	"github.com/KhaledYassin/fast-float-compare/sortfloat"
)

// Op identifies a measured operation.
type Op string

const (
	OpConstruct Op = "construct"  // float64 -> representation
	OpConvert   Op = "to-float64" // representation -> float64
	OpCompare   Op = "compare"    // ordering of neighboring pairs
	OpSort      Op = "sort"       // sorting a shuffled copy
)

// Impl names, in reporting order.
const (
	ImplFloatcmp  = "floatcmp"
	ImplDecimal   = "decimal"
	ImplSortfloat = "sortfloat"
	ImplFloat64   = "float64"
)

// Result is a single timed measurement.
type Result struct {
	Impl    string
	Op      Op
	N       int           // operations performed
	Elapsed time.Duration // wall clock for all N operations
}

// PerOp returns the mean wall-clock cost of one operation.
func (r Result) PerOp() time.Duration {
	if r.N == 0 {
		return 0
	}
	return r.Elapsed / time.Duration(r.N)
}

// Options configures a Suite.
type Options struct {
	Count int   // values per data set; defaults to 1000
	Seed  int64 // seed for the value generator; defaults to 1
}

// Suite holds one generated data set plus its per-contender forms.
type Suite struct {
	values []float64
	floats []floatcmp.Float
	decs   []decimal.Decimal
	keys   []uint64
}

// New generates a Suite of uniform values in [-1000, 1000) from a seeded
// source, so runs are reproducible.
func New(opts Options) *Suite {
	if opts.Count <= 0 {
		opts.Count = 1000
	}
	if opts.Seed == 0 {
		opts.Seed = 1
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	s := &Suite{
		values: make([]float64, opts.Count),
		floats: make([]floatcmp.Float, opts.Count),
		decs:   make([]decimal.Decimal, opts.Count),
		keys:   make([]uint64, opts.Count),
	}
	for i := range s.values {
		v := rng.Float64()*2000 - 1000
		s.values[i] = v
		s.floats[i], _ = floatcmp.FromFloat64(v) // generated values are finite
		s.decs[i] = decimal.NewFromFloat(v)
		s.keys[i] = sortfloat.ToSortable(v)
	}
	return s
}

// Count returns the data set size.
func (s *Suite) Count() int {
	return len(s.values)
}

// Run executes every operation for every contender and returns the
// measurements grouped by operation.
func (s *Suite) Run() []Result {
	var res []Result
	res = append(res, s.Construct()...)
	res = append(res, s.Convert()...)
	res = append(res, s.Compare()...)
	res = append(res, s.Sort()...)
	return res
}

// sinks keep the measured loops observable so they cannot be optimized away
var (
	sinkFloat floatcmp.Float
	sinkDec   decimal.Decimal
	sinkKey   uint64
	sinkF64   float64
	sinkInt   int
)

func timed(impl string, op Op, n int, fn func()) Result {
	start := time.Now()
	fn()
	return Result{Impl: impl, Op: op, N: n, Elapsed: time.Since(start)}
}

// Construct measures float64 to representation conversion.
func (s *Suite) Construct() []Result {
	n := len(s.values)
	return []Result{
		timed(ImplFloatcmp, OpConstruct, n, func() {
			for _, v := range s.values {
				sinkFloat, _ = floatcmp.FromFloat64(v)
			}
		}),
		timed(ImplDecimal, OpConstruct, n, func() {
			for _, v := range s.values {
				sinkDec = decimal.NewFromFloat(v)
			}
		}),
		timed(ImplSortfloat, OpConstruct, n, func() {
			for _, v := range s.values {
				sinkKey = sortfloat.ToSortable(v)
			}
		}),
		timed(ImplFloat64, OpConstruct, n, func() {
			for _, v := range s.values {
				sinkF64 = v
			}
		}),
	}
}

// Convert measures conversion back to float64.
func (s *Suite) Convert() []Result {
	n := len(s.values)
	return []Result{
		timed(ImplFloatcmp, OpConvert, n, func() {
			for _, f := range s.floats {
				sinkF64 = f.Float64()
			}
		}),
		timed(ImplDecimal, OpConvert, n, func() {
			for _, d := range s.decs {
				sinkF64, _ = d.Float64()
			}
		}),
		timed(ImplSortfloat, OpConvert, n, func() {
			for _, k := range s.keys {
				sinkF64 = sortfloat.FromSortable(k)
			}
		}),
		timed(ImplFloat64, OpConvert, n, func() {
			for _, v := range s.values {
				sinkF64 = v
			}
		}),
	}
}

// Compare measures the ordering of neighboring pairs.
func (s *Suite) Compare() []Result {
	n := len(s.values) - 1
	return []Result{
		timed(ImplFloatcmp, OpCompare, n, func() {
			for i := 0; i < n; i++ {
				sinkInt = s.floats[i].Cmp(s.floats[i+1])
			}
		}),
		timed(ImplDecimal, OpCompare, n, func() {
			for i := 0; i < n; i++ {
				sinkInt = s.decs[i].Cmp(s.decs[i+1])
			}
		}),
		timed(ImplSortfloat, OpCompare, n, func() {
			for i := 0; i < n; i++ {
				if s.keys[i] < s.keys[i+1] {
					sinkInt = -1
				} else {
					sinkInt = 1
				}
			}
		}),
		timed(ImplFloat64, OpCompare, n, func() {
			for i := 0; i < n; i++ {
				if s.values[i] < s.values[i+1] {
					sinkInt = -1
				} else {
					sinkInt = 1
				}
			}
		}),
	}
}

// Sort measures sorting a copy of the data set.
func (s *Suite) Sort() []Result {
	n := len(s.values)
	floats := make([]floatcmp.Float, n)
	decs := make([]decimal.Decimal, n)
	keys := make([]uint64, n)
	values := make([]float64, n)
	copy(floats, s.floats)
	copy(decs, s.decs)
	copy(keys, s.keys)
	copy(values, s.values)
	return []Result{
		timed(ImplFloatcmp, OpSort, n, func() {
			sort.Slice(floats, func(i, j int) bool { return floats[i].Less(floats[j]) })
		}),
		timed(ImplDecimal, OpSort, n, func() {
			sort.Slice(decs, func(i, j int) bool { return decs[i].LessThan(decs[j]) })
		}),
		timed(ImplSortfloat, OpSort, n, func() {
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		}),
		timed(ImplFloat64, OpSort, n, func() {
			sort.Float64s(values)
		}),
	}
}
