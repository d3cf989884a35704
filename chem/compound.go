// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package chem implements the basic value types of the equation-of-state
// engine: pure compounds with critical properties and multi-component
// mixtures with binary interaction parameters. All types are immutable
// after construction.
package chem

// tolerance for the sum of mole fractions
const sumXtol = 1e-6

// Compound holds the critical properties of a pure fluid. Records are
// created once, at database load, and never mutated afterwards.
type Compound struct {
	Name  string  // common name; e.g. "methane"
	CAS   string  // CAS registry number; e.g. "74-82-8"
	Tc    float64 // critical temperature [K]
	Pc    float64 // critical pressure [Pa]
	Omega float64 // acentric factor ω [-]
	MW    float64 // molecular weight [g/mol]
}

// Validate checks the critical properties against physically plausible
// ranges. Out-of-range data is rejected, never auto-corrected.
func (o *Compound) Validate() error {
	if o.Tc <= 0 {
		return ErrInvalid("compound %q: critical temperature must be positive; Tc=%g K", o.Name, o.Tc)
	}
	if o.Pc <= 0 {
		return ErrInvalid("compound %q: critical pressure must be positive; Pc=%g Pa", o.Name, o.Pc)
	}
	if o.Omega < -1.0 || o.Omega > 2.0 {
		return ErrInvalid("compound %q: acentric factor out of range [-1,2]; ω=%g", o.Name, o.Omega)
	}
	return nil
}
