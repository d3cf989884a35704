// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

// PhaseState classifies the state of the fluid from the cubic roots
type PhaseState int

const (
	// PhaseLiquid denotes a single liquid-like root
	PhaseLiquid PhaseState = iota

	// PhaseVapour denotes a single vapour-like root
	PhaseVapour

	// PhaseSupercritical denotes T ≥ Tc; the liquid/vapour distinction
	// does not exist and a single root is expected
	PhaseSupercritical

	// PhaseTwoPhase denotes two or three distinct positive roots: the
	// smallest is the liquid Z and the largest the vapour Z
	PhaseTwoPhase
)

// String returns a human readable phase name
func (o PhaseState) String() string {
	switch o {
	case PhaseLiquid:
		return "liquid"
	case PhaseVapour:
		return "vapour"
	case PhaseSupercritical:
		return "supercritical"
	case PhaseTwoPhase:
		return "two-phase"
	}
	return "unknown"
}

// SelectRoots discriminates the cubic roots into liquid and vapour
// Z-factors. Convention: smallest positive root = liquid, largest =
// vapour (larger Z ⇔ lower density ⇔ vapour); a middle root, when
// present, is physically meaningless and discarded. A lone subcritical
// root is classified by comparing Z against the model's critical
// compressibility. No Gibbs-energy stability check is performed: this
// is a deliberate simplification, not a rigorous equilibrium test.
//   Tc -- critical temperature of the compound, or the mole-fraction
//         weighted pseudo-critical temperature for a mixture
func SelectRoots(mdl Model, T, Tc float64, roots []float64) (phase PhaseState, Zliq, Zvap float64) {
	if T >= Tc {
		z := roots[len(roots)-1]
		return PhaseSupercritical, z, z
	}
	if len(roots) == 1 {
		z := roots[0]
		if z > mdl.CriticalZ() {
			return PhaseVapour, z, z
		}
		return PhaseLiquid, z, z
	}
	return PhaseTwoPhase, roots[0], roots[len(roots)-1]
}
