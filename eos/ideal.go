// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/ChE-Toolbox/che-toolbox/chem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// IdealGas implements the ideal-gas law as a degenerate EOS: no
// attraction or co-volume parameters, Z fixed at 1 and φ fixed at 1.
// The cubic coefficients reduce to Z³ - Z² = 0 so the ideal model runs
// through the same solver pipeline as the cubic models.
type IdealGas struct{}

// add model to factory
func init() {
	allocators["ideal"] = func() Model { return new(IdealGas) }
}

// Init initialises model; ideal takes no parameters
func (o *IdealGas) Init(prms dbf.Params) error {
	for _, p := range prms {
		return chk.Err("ideal: parameter named %q is incorrect", p.N)
	}
	return nil
}

// Name returns the registry name
func (o *IdealGas) Name() string { return "ideal" }

// CriticalZ returns the classification threshold. Below the ideal-gas
// root Z = 1, so a subcritical ideal state always classifies as vapour.
func (o *IdealGas) CriticalZ() float64 { return 0.9 }

// Params returns zero parameters; input validation still applies
func (o *IdealGas) Params(cmp *chem.Compound, T, R float64) (a, b float64, err error) {
	if err = cmp.Validate(); err != nil {
		return
	}
	if T <= 0 {
		err = chem.ErrInvalid("temperature must be positive; T=%g K", T)
	}
	return
}

// CubicCoeffs returns coefficients whose only positive root is Z = 1
func (o *IdealGas) CubicCoeffs(A, B float64) (c2, c1, c0 float64) {
	return -1.0, 0.0, 0.0
}

// LnPhi returns 0: the ideal-gas fugacity coefficient is unity
func (o *IdealGas) LnPhi(Z, A, B float64) float64 { return 0 }

// LnPhiMix returns 0 for every component
func (o *IdealGas) LnPhiMix(i int, Z float64, mp *MixParams) float64 { return 0 }
