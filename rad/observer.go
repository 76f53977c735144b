// SPDX-License-Identifier: MIT

package rad

import "time"

// Outcome classifies how a window ended.
type Outcome int

const (
	// Decomposed windows carry the four derived fields.
	Decomposed Outcome = iota
	// Skipped windows failed the gating check and are returned unchanged.
	Skipped
	// Failed windows returned an error.
	Failed
)

// String implements fmt.Stringer; the values are used as metric labels.
func (o Outcome) String() string {
	switch o {
	case Decomposed:
		return "decomposed"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Report describes one processed window.
type Report struct {
	Outcome     Outcome
	Differenced bool          // series was differenced before decomposition
	Iterations  int           // solver iterations, 0 unless Decomposed
	Elapsed     time.Duration // wall time spent in Process
}

// Observer receives a Report for every window a Detector processes.
// Implementations must be safe for concurrent use when ProcessAll runs
// several windows at once.
type Observer interface {
	ObserveWindow(Report)
}

type nopObserver struct{}

func (nopObserver) ObserveWindow(Report) {}
