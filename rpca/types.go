// SPDX-License-Identifier: MIT

package rpca

import "gonum.org/v1/gonum/mat"

// Method selects the iteration used by Decompose.
type Method int

const (
	// DynamicMu is the proximal alternation with a residual-driven penalty
	// scale. Default.
	DynamicMu Method = iota

	// InexactALM is the inexact augmented Lagrange multiplier iteration.
	InexactALM
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case DynamicMu:
		return "dynamic-mu"
	case InexactALM:
		return "ialm"
	default:
		return "unknown"
	}
}

// ParseMethod is the inverse of Method.String.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "dynamic-mu", "":
		return DynamicMu, nil
	case "ialm":
		return InexactALM, nil
	default:
		return 0, rpcaErrorf("ParseMethod", ErrInvalidOption)
	}
}

// Result holds the three components of M and how they were obtained.
// L + S + E equals M up to floating-point rounding.
type Result struct {
	L *mat.Dense // low-rank baseline
	S *mat.Dense // sparse anomalies
	E *mat.Dense // residual noise

	Iterations int     // loop iterations run; 0 for the all-zero shortcut
	Method     Method  // iteration used
	LPenalty   float64 // effective nuclear-norm weight
	SPenalty   float64 // effective L1 weight
}
