// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements cubic equation-of-state models (Peng-Robinson,
// van der Waals, ideal gas) with one-fluid mixing rules, phase-root
// selection and fugacity-coefficient evaluation. Models form a closed
// set of strategies selected once, by name, at construction.
package eos

import (
	"github.com/ChE-Toolbox/che-toolbox/chem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines one EOS family. Implementations are stateless apart
// from their correlation constants; all methods are safe for concurrent
// use after Init.
type Model interface {

	// Init initialises correlation constants; most models take no parameters
	Init(prms dbf.Params) error

	// Name returns the registry name; e.g. "pr"
	Name() string

	// CriticalZ returns the model's critical compressibility factor,
	// used as the density-magnitude threshold when classifying a lone
	// subcritical root
	CriticalZ() float64

	// Params computes the attraction parameter a(T) [Pa・m⁶/mol²] and
	// co-volume b [m³/mol] for one compound
	Params(cmp *chem.Compound, T, R float64) (a, b float64, err error)

	// CubicCoeffs returns the monic cubic coefficients in Z for the
	// dimensionless groups A = aP/(RT)² and B = bP/(RT):
	//   Z³ + c2・Z² + c1・Z + c0 = 0
	CubicCoeffs(A, B float64) (c2, c1, c0 float64)

	// LnPhi returns ln(φ) of a pure fluid from the departure function
	LnPhi(Z, A, B float64) float64

	// LnPhiMix returns ln(φᵢ) of component i in a mixture using the
	// partial-molar derivatives of the one-fluid mixing rules
	LnPhiMix(i int, Z float64, mp *MixParams) float64
}

// New returns a new EOS model by registry name, initialised with prms
// (nil for the published correlation constants)
func New(name string, prms dbf.Params) (Model, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("EOS model %q is not available in database", name)
	}
	mdl := allocator()
	if err := mdl.Init(prms); err != nil {
		return nil, err
	}
	return mdl, nil
}

// ModelNames returns the names of all registered models
func ModelNames() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// allocators holds all available models
var allocators = map[string]func() Model{}
