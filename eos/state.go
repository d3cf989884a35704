// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "github.com/ChE-Toolbox/che-toolbox/chem"

// State is the ephemeral input of one calculation: absolute temperature
// and pressure (SI) plus either a pure compound or a mixture. Exactly
// one of Cmp/Mix must be set. The engine never mutates it.
type State struct {
	T   float64        // temperature [K]
	P   float64        // pressure [Pa]
	Cmp *chem.Compound // pure compound, or
	Mix *chem.Mixture  // mixture
}

// Validate rejects malformed states before any numeric work begins
func (o *State) Validate() error {
	if o.T <= 0 {
		return chem.ErrInvalid("temperature must be positive; T=%g K", o.T)
	}
	if o.P <= 0 {
		return chem.ErrInvalid("pressure must be positive; P=%g Pa", o.P)
	}
	if o.Cmp == nil && o.Mix == nil {
		return chem.ErrInvalid("state needs a compound or a mixture")
	}
	if o.Cmp != nil && o.Mix != nil {
		return chem.ErrInvalid("state must have either a compound or a mixture, not both")
	}
	if o.Cmp != nil {
		return o.Cmp.Validate()
	}
	for _, c := range o.Mix.Compounds {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PseudoTc returns the compound's Tc, or Kay's mole-fraction weighted
// pseudo-critical temperature for a mixture
func (o *State) PseudoTc() float64 {
	if o.Cmp != nil {
		return o.Cmp.Tc
	}
	tc := 0.0
	for i, c := range o.Mix.Compounds {
		tc += o.Mix.X[i] * c.Tc
	}
	return tc
}

// Ncomp returns 1 for a pure state or the number of mixture components
func (o *State) Ncomp() int {
	if o.Cmp != nil {
		return 1
	}
	return o.Mix.Ncomp()
}
