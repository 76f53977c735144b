// SPDX-License-Identifier: MIT

package rpca

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/surus/matrix"
)

// svt performs singular value thresholding: X = U·diag(σ)·Vᵀ is rebuilt with
// σ_k replaced by max(σ_k - tau, 0). It also returns Σ max(σ_k - tau, 0),
// the nuclear norm of the result.
// Singular values come sorted in decreasing order, so only the leading
// components survive and the rest are skipped.
func svt(x mat.Matrix, tau float64) (*mat.Dense, float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, 0, ErrNumerical
	}
	values := svd.Values(nil)

	var nuclear float64
	rank := 0
	for k, s := range values {
		values[k] = matrix.SoftThreshold(s, tau)
		if values[k] > 0 {
			nuclear += values[k]
			rank = k + 1
		}
	}

	r, c := x.Dims()
	out := mat.NewDense(r, c, nil)
	if rank == 0 {
		return out, 0, nil
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Scale the leading columns of U by the thresholded values.
	var us mat.Dense
	us.CloneFrom(u.Slice(0, r, 0, rank))
	for k := 0; k < rank; k++ {
		for i := 0; i < r; i++ {
			us.Set(i, k, us.At(i, k)*values[k])
		}
	}
	out.Mul(&us, v.Slice(0, c, 0, rank).T())

	return out, nuclear, nil
}

// spectralNorm returns the largest singular value of x.
func spectralNorm(x mat.Matrix) (float64, error) {
	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDNone); !ok {
		return 0, ErrNumerical
	}

	return svd.Values(nil)[0], nil
}

// residual returns M - L - S as a new matrix.
func residual(m, l, s mat.Matrix) *mat.Dense {
	var e mat.Dense
	e.Sub(m, l)
	e.Sub(&e, s)

	return &e
}

// frobenius2 returns ‖x‖²_F.
func frobenius2(x mat.Matrix) float64 {
	f := mat.Norm(x, 2)

	return f * f
}
