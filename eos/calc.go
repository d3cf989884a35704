// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/ChE-Toolbox/che-toolbox/chem"
	"github.com/ChE-Toolbox/che-toolbox/cubic"
)

// PhaseRequest selects which phase's fugacity coefficients the caller
// wants when the state is two-phase
type PhaseRequest int

const (
	// WantBoth returns liquid and vapour coefficients when available
	WantBoth PhaseRequest = iota

	// WantLiquid returns only the liquid coefficients
	WantLiquid

	// WantVapour returns only the vapour coefficients
	WantVapour
)

// Result is the value object produced by one Z-factor or fugacity
// calculation; produced and discarded per call
type Result struct {
	Phase  PhaseState
	Zliq   float64   // liquid Z-factor (= Zvap when single phase)
	Zvap   float64   // vapour Z-factor
	PhiLiq []float64 // liquid fugacity coefficients per component; nil when absent
	PhiVap []float64 // vapour fugacity coefficients per component; nil when absent
	Psat   float64   // optional vapour pressure [Pa]; 0 when not computed
}

// CalcZ computes the compressibility factor(s) of a state: it builds
// the EOS parameters, solves the cubic and discriminates the roots
func CalcZ(mdl Model, st *State, cons *Constants) (*Result, error) {
	res, _, err := solveState(mdl, st, cons)
	return res, err
}

// CalcFugacity computes fugacity coefficient(s) for a state. With
// WantBoth, a two-phase state yields both liquid and vapour
// coefficients; requesting a phase the state does not have (e.g.
// liquid under supercritical conditions) is an invalid-input error.
func CalcFugacity(mdl Model, st *State, want PhaseRequest, cons *Constants) (*Result, error) {
	res, mp, err := solveState(mdl, st, cons)
	if err != nil {
		return nil, err
	}

	hasLiq := res.Phase == PhaseLiquid || res.Phase == PhaseTwoPhase
	hasVap := res.Phase == PhaseVapour || res.Phase == PhaseTwoPhase || res.Phase == PhaseSupercritical
	if want == WantLiquid && !hasLiq {
		return nil, chem.ErrInvalid("liquid phase is not available in a %v state", res.Phase)
	}
	if want == WantVapour && !hasVap {
		return nil, chem.ErrInvalid("vapour phase is not available in a %v state", res.Phase)
	}

	pure := st.Cmp != nil
	if hasLiq && want != WantVapour {
		res.PhiLiq = phiOf(mdl, pure, res.Zliq, mp)
	}
	if hasVap && want != WantLiquid {
		res.PhiVap = phiOf(mdl, pure, res.Zvap, mp)
	}
	return res, nil
}

// solveState runs the common pipeline: validation, parameter building,
// cubic solution and root selection. For a pure state the MixParams
// carries just the dimensionless A and B groups.
func solveState(mdl Model, st *State, cons *Constants) (*Result, *MixParams, error) {
	if err := st.Validate(); err != nil {
		return nil, nil, err
	}
	var mp *MixParams
	if st.Cmp != nil {
		pp, err := BuildPure(mdl, st.Cmp, st.T, st.P, cons.R)
		if err != nil {
			return nil, nil, err
		}
		mp = &MixParams{Aattr: pp.Aattr, Bcov: pp.Bcov, A: pp.A, B: pp.B}
	} else {
		var err error
		mp, err = BuildMix(mdl, st.Mix, st.T, st.P, cons.R)
		if err != nil {
			return nil, nil, err
		}
	}
	c2, c1, c0 := mdl.CubicCoeffs(mp.A, mp.B)
	roots, err := cubic.Solve(c2, c1, c0, cons.Strategy)
	if err != nil {
		return nil, nil, err
	}
	// a root at or below B means a molar volume inside the co-volume
	phys := roots[:0]
	for _, z := range roots {
		if z > mp.B {
			phys = append(phys, z)
		}
	}
	if len(phys) == 0 {
		return nil, nil, chem.ErrNoRoot("all cubic roots fall inside the co-volume; A=%g B=%g", mp.A, mp.B)
	}
	roots = phys
	res := new(Result)
	res.Phase, res.Zliq, res.Zvap = SelectRoots(mdl, st.T, st.PseudoTc(), roots)
	return res, mp, nil
}

// phiOf evaluates the fugacity coefficients at a given Z
func phiOf(mdl Model, pure bool, Z float64, mp *MixParams) []float64 {
	if pure {
		return []float64{math.Exp(mdl.LnPhi(Z, mp.A, mp.B))}
	}
	phi := make([]float64, len(mp.X))
	for i := range phi {
		phi[i] = math.Exp(mdl.LnPhiMix(i, Z, mp))
	}
	return phi
}
