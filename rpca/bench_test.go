// SPDX-License-Identifier: MIT
package rpca_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/surus/rpca"
)

func benchMatrix(rows, cols int) *mat.Dense {
	rng := rand.New(rand.NewSource(1))
	m := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, float64(j%7)+rng.NormFloat64()*0.1)
		}
	}

	return m
}

func BenchmarkDecompose_DynamicMu_7x52(b *testing.B) {
	m := benchMatrix(7, 52)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rpca.Decompose(m)
	}
}

func BenchmarkDecompose_InexactALM_24x30(b *testing.B) {
	m := benchMatrix(24, 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rpca.Decompose(m, rpca.WithMethod(rpca.InexactALM))
	}
}
