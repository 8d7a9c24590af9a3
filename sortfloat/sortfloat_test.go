// Copyright 2025 Khaled Yassin. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sortfloat

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, x := range []float64{
		0, 1, -1, 1.23, -4.56, math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		math.Inf(1), math.Inf(-1),
	} {
		require.Equal(t, x, FromSortable(ToSortable(x)), "round trip of %v", x)
	}

	// zeros unify
	require.Equal(t, ToSortable(0), ToSortable(math.Copysign(0, -1)))
	require.Equal(t, 0.0, FromSortable(ToSortable(math.Copysign(0, -1))))

	// NaN round-trips to NaN
	require.True(t, math.IsNaN(FromSortable(ToSortable(math.NaN()))))
}

func TestOrderPreserved(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20000; i++ {
		a := math.Float64frombits(rng.Uint64())
		b := math.Float64frombits(rng.Uint64())
		if math.IsNaN(a) || math.IsNaN(b) {
			continue
		}
		ka, kb := ToSortable(a), ToSortable(b)
		switch {
		case a < b:
			require.Less(t, ka, kb, "%v vs %v", a, b)
		case a > b:
			require.Greater(t, ka, kb, "%v vs %v", a, b)
		default:
			// a == b covers 0 vs -0 as well
			require.Equal(t, ka, kb, "%v vs %v", a, b)
		}
	}
}

func TestSpecialOrdering(t *testing.T) {
	// NaN < -Inf < finite < +Inf in key space
	require.Less(t, ToSortable(math.NaN()), ToSortable(math.Inf(-1)))
	require.Less(t, ToSortable(math.Inf(-1)), ToSortable(-math.MaxFloat64))
	require.Less(t, ToSortable(math.MaxFloat64), ToSortable(math.Inf(1)))
}

func TestSortAgreesWithFloat64(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	values := make([]float64, 1000)
	keys := make([]uint64, len(values))
	for i := range values {
		values[i] = rng.NormFloat64() * 1e6
		keys[i] = ToSortable(values[i])
	}
	sort.Float64s(values)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for i := range keys {
		require.Equal(t, values[i], FromSortable(keys[i]), "index %d", i)
	}
}
