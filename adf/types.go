// SPDX-License-Identifier: MIT

package adf

// Regression selects the deterministic terms of the test regression.
type Regression int

const (
	// NoConstant fits Δx_t on x_{t-1} and lagged differences only.
	NoConstant Regression = iota

	// Constant adds an intercept (drift). This is the default.
	Constant

	// ConstantTrend adds an intercept and a linear time trend.
	ConstantTrend
)

// String implements fmt.Stringer.
func (r Regression) String() string {
	switch r {
	case NoConstant:
		return "nc"
	case Constant:
		return "c"
	case ConstantTrend:
		return "ct"
	default:
		return "unknown"
	}
}

// deterministicTerms returns how many columns the regression adds next to
// the lagged level.
func (r Regression) deterministicTerms() int {
	switch r {
	case Constant:
		return 1
	case ConstantTrend:
		return 2
	default:
		return 0
	}
}

// Level is a significance level with a tabulated critical value.
type Level int

const (
	// Level1 is the 1% level.
	Level1 Level = iota
	// Level2_5 is the 2.5% level.
	Level2_5
	// Level5 is the 5% level. This is the default.
	Level5
	// Level10 is the 10% level.
	Level10
)

// String implements fmt.Stringer.
func (l Level) String() string {
	switch l {
	case Level1:
		return "1%"
	case Level2_5:
		return "2.5%"
	case Level5:
		return "5%"
	case Level10:
		return "10%"
	default:
		return "unknown"
	}
}
