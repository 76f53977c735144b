// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the reshaping and entrywise
// kernels, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/surus/matrix"
)

// benchShapes are rows×cols windows: a week of days, a month of hours.
var benchShapes = [][2]int{{7, 52}, {24, 30}, {96, 28}}

func randomSeries(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()
	}

	return x
}

func BenchmarkFromSeries(b *testing.B) {
	for _, s := range benchShapes {
		x := randomSeries(s[0]*s[1], 1)
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = matrix.FromSeries(x, s[0], s[1])
			}
		})
	}
}

func BenchmarkShrink(b *testing.B) {
	for _, s := range benchShapes {
		m, _ := matrix.FromSeries(randomSeries(s[0]*s[1], 2), s[0], s[1])
		b.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = matrix.Shrink(m, 0.5)
			}
		})
	}
}
