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

// VanDerWaals implements the van der Waals equation of state
//   a = 27・R²Tc²/(64・Pc)   (temperature-independent)
//   b = R・Tc/(8・Pc)
type VanDerWaals struct{}

// add model to factory
func init() {
	allocators["vdw"] = func() Model { return new(VanDerWaals) }
}

// Init initialises model; vdw takes no parameters
func (o *VanDerWaals) Init(prms dbf.Params) error {
	for _, p := range prms {
		return chk.Err("vdw: parameter named %q is incorrect", p.N)
	}
	return nil
}

// Name returns the registry name
func (o *VanDerWaals) Name() string { return "vdw" }

// CriticalZ returns Zc of the van der Waals EOS
func (o *VanDerWaals) CriticalZ() float64 { return 0.375 }

// Params computes a and b from the critical properties
func (o *VanDerWaals) Params(cmp *chem.Compound, T, R float64) (a, b float64, err error) {
	if err = cmp.Validate(); err != nil {
		return
	}
	if T <= 0 {
		err = chem.ErrInvalid("temperature must be positive; T=%g K", T)
		return
	}
	a = 27.0 * R * R * cmp.Tc * cmp.Tc / (64.0 * cmp.Pc)
	b = R * cmp.Tc / (8.0 * cmp.Pc)
	return
}

// CubicCoeffs returns the monic cubic coefficients in Z
func (o *VanDerWaals) CubicCoeffs(A, B float64) (c2, c1, c0 float64) {
	c2 = -(B + 1.0)
	c1 = A
	c0 = -A * B
	return
}

// LnPhi returns ln(φ) of a pure fluid
func (o *VanDerWaals) LnPhi(Z, A, B float64) float64 {
	return Z - 1.0 - math.Log(Z-B) - A/Z
}

// LnPhiMix returns ln(φᵢ) of component i in a mixture
func (o *VanDerWaals) LnPhiMix(i int, Z float64, mp *MixParams) float64 {
	return mp.Bi[i]/(Z-mp.B) - math.Log(Z-mp.B) - 2.0*mp.SumXA[i]/Z
}
