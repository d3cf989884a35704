// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/ChE-Toolbox/che-toolbox/chem"
)

// PureParams holds the EOS parameters of a pure compound at (T, P)
type PureParams struct {
	Aattr float64 // attraction parameter a(T) [Pa・m⁶/mol²]
	Bcov  float64 // co-volume b [m³/mol]
	A     float64 // dimensionless group a・P/(R・T)²
	B     float64 // dimensionless group b・P/(R・T)
}

// MixParams holds the one-fluid mixture parameters at (T, P).
// The dimensionless per-component groups carry the same scaling as the
// mixture groups, so ratios like Aᵢⱼ/A equal aᵢⱼ/a_mix exactly.
type MixParams struct {
	Aattr float64   // mixture attraction parameter a_mix [Pa・m⁶/mol²]
	Bcov  float64   // mixture co-volume b_mix [m³/mol]
	A     float64   // mixture group a_mix・P/(R・T)²
	B     float64   // mixture group b_mix・P/(R・T)
	Ai    []float64 // per-component groups aᵢ・P/(R・T)²
	Bi    []float64 // per-component groups bᵢ・P/(R・T)
	SumXA []float64 // Σⱼ xⱼ・Aᵢⱼ with Aᵢⱼ = (1-kᵢⱼ)・√(Aᵢ・Aⱼ)
	X     []float64 // mole fractions (copy of the mixture's)
}

// BuildPure computes the EOS parameters of a pure compound
func BuildPure(mdl Model, cmp *chem.Compound, T, P, R float64) (*PureParams, error) {
	if P <= 0 {
		return nil, chem.ErrInvalid("pressure must be positive; P=%g Pa", P)
	}
	a, b, err := mdl.Params(cmp, T, R)
	if err != nil {
		return nil, err
	}
	rt := R * T
	return &PureParams{
		Aattr: a,
		Bcov:  b,
		A:     a * P / (rt * rt),
		B:     b * P / rt,
	}, nil
}

// BuildMix computes the one-fluid mixture parameters
//   b_mix = Σᵢ xᵢ・bᵢ
//   a_mix = ΣᵢΣⱼ xᵢ・xⱼ・(1-kᵢⱼ)・√(aᵢ・aⱼ)
func BuildMix(mdl Model, mix *chem.Mixture, T, P, R float64) (*MixParams, error) {
	if P <= 0 {
		return nil, chem.ErrInvalid("pressure must be positive; P=%g Pa", P)
	}
	n := mix.Ncomp()
	ai := make([]float64, n)
	bi := make([]float64, n)
	for i, cmp := range mix.Compounds {
		a, b, err := mdl.Params(cmp, T, R)
		if err != nil {
			return nil, err
		}
		ai[i], bi[i] = a, b
	}
	amix, bmix := 0.0, 0.0
	for i := 0; i < n; i++ {
		bmix += mix.X[i] * bi[i]
		for j := 0; j < n; j++ {
			amix += mix.X[i] * mix.X[j] * (1.0 - mix.Kij[i][j]) * math.Sqrt(ai[i]*ai[j])
		}
	}
	rt := R * T
	o := &MixParams{
		Aattr: amix,
		Bcov:  bmix,
		A:     amix * P / (rt * rt),
		B:     bmix * P / rt,
		Ai:    make([]float64, n),
		Bi:    make([]float64, n),
		SumXA: make([]float64, n),
		X:     append([]float64{}, mix.X...),
	}
	for i := 0; i < n; i++ {
		o.Ai[i] = ai[i] * P / (rt * rt)
		o.Bi[i] = bi[i] * P / rt
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			o.SumXA[i] += mix.X[j] * (1.0 - mix.Kij[i][j]) * math.Sqrt(o.Ai[i]*o.Ai[j])
		}
	}
	return o, nil
}
