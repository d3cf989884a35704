// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package equil implements vapour-liquid equilibrium calculations: the
// iterative vapour-pressure solver and the Rachford-Rice PT flash.
// Both are bounded by explicit iteration caps; exceeding a cap is a
// soft outcome carried inside the result, never a hard failure.
package equil

// Status tags the outcome of an iterative equilibrium calculation
type Status int

const (
	// StatusNotRun means the iteration was never started
	StatusNotRun Status = iota

	// StatusConverged means the tolerance was met within the cap
	StatusConverged

	// StatusSinglePhase means the feed cannot split into two phases
	// and the iteration was short-circuited
	StatusSinglePhase

	// StatusIterLimit means the iteration cap was reached; the result
	// carries the best estimate and its diagnostics
	StatusIterLimit

	// StatusDiverged means the iteration produced exploding or
	// oscillating values and was aborted
	StatusDiverged
)

// String returns a human readable status name
func (o Status) String() string {
	switch o {
	case StatusNotRun:
		return "not-run"
	case StatusConverged:
		return "converged"
	case StatusSinglePhase:
		return "single-phase-detected"
	case StatusIterLimit:
		return "iteration-limit-reached"
	case StatusDiverged:
		return "diverged"
	}
	return "unknown"
}
