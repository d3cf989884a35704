// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"

	"github.com/ChE-Toolbox/che-toolbox/chem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// PengRobinson implements the Peng-Robinson (1976) equation of state
//   a(T) = 0.45724・R²Tc²/Pc・α(T)
//   α(T) = [1 + κ(1 - √(T/Tc))]²
//   κ    = κ0 + κ1・ω + κ2・ω²
//   b    = 0.07780・R・Tc/Pc
type PengRobinson struct {
	K0, K1, K2 float64 // κ polynomial coefficients
}

// add model to factory
func init() {
	allocators["pr"] = func() Model { return new(PengRobinson) }
}

// Init initialises model. The published κ coefficients can be
// overridden with parameters "kap0", "kap1", "kap2".
func (o *PengRobinson) Init(prms dbf.Params) error {
	o.K0, o.K1, o.K2 = 0.37464, 1.54226, -0.26992
	for _, p := range prms {
		switch p.N {
		case "kap0":
			o.K0 = p.V
		case "kap1":
			o.K1 = p.V
		case "kap2":
			o.K2 = p.V
		default:
			return chk.Err("pr: parameter named %q is incorrect", p.N)
		}
	}
	return nil
}

// Name returns the registry name
func (o *PengRobinson) Name() string { return "pr" }

// CriticalZ returns Zc of the Peng-Robinson EOS
func (o *PengRobinson) CriticalZ() float64 { return 0.3074 }

// Params computes a(T) and b from the critical properties
func (o *PengRobinson) Params(cmp *chem.Compound, T, R float64) (a, b float64, err error) {
	if err = cmp.Validate(); err != nil {
		return
	}
	if T <= 0 {
		err = chem.ErrInvalid("temperature must be positive; T=%g K", T)
		return
	}
	kappa := o.K0 + o.K1*cmp.Omega + o.K2*cmp.Omega*cmp.Omega
	alpha := 1.0 + kappa*(1.0-math.Sqrt(T/cmp.Tc))
	alpha *= alpha
	a = 0.45724 * R * R * cmp.Tc * cmp.Tc / cmp.Pc * alpha
	b = 0.07780 * R * cmp.Tc / cmp.Pc
	return
}

// CubicCoeffs returns the monic cubic coefficients in Z
func (o *PengRobinson) CubicCoeffs(A, B float64) (c2, c1, c0 float64) {
	c2 = -(1.0 - B)
	c1 = A - 3.0*B*B - 2.0*B
	c0 = -(A*B - B*B - B*B*B)
	return
}

// LnPhi returns ln(φ) of a pure fluid
func (o *PengRobinson) LnPhi(Z, A, B float64) float64 {
	s2 := math.Sqrt2
	return Z - 1.0 - math.Log(Z-B) -
		A/(2.0*s2*B)*math.Log((Z+(1.0+s2)*B)/(Z+(1.0-s2)*B))
}

// LnPhiMix returns ln(φᵢ) of component i in a mixture
func (o *PengRobinson) LnPhiMix(i int, Z float64, mp *MixParams) float64 {
	s2 := math.Sqrt2
	bfrac := mp.Bi[i] / mp.B
	return bfrac*(Z-1.0) - math.Log(Z-mp.B) -
		mp.A/(2.0*s2*mp.B)*(2.0*mp.SumXA[i]/mp.A-bfrac)*
			math.Log((Z+(1.0+s2)*mp.B)/(Z+(1.0-s2)*mp.B))
}
