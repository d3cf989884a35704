// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import "math"

// Mixture holds an ordered list of compounds with mole fractions and a
// symmetric binary-interaction-parameter matrix. Constructed per
// calculation call; immutable thereafter.
type Mixture struct {
	Compounds []*Compound // components, in caller order
	X         []float64   // mole fractions; Σx = 1 ± 1e-6
	Kij       [][]float64 // binary interaction parameters; kij = kji, kii = 0
}

// NewMixture creates and validates a mixture. A nil kij matrix means all
// interaction parameters are zero. The input slices are copied so the
// mixture stays immutable regardless of what the caller does afterwards.
func NewMixture(compounds []*Compound, x []float64, kij [][]float64) (*Mixture, error) {
	n := len(compounds)
	if n < 1 {
		return nil, ErrInvalid("mixture must have at least one component")
	}
	if len(x) != n {
		return nil, ErrInvalid("mixture has %d compounds but %d mole fractions", n, len(x))
	}
	sum := 0.0
	for i, xi := range x {
		if xi < 0 || xi > 1 {
			return nil, ErrInvalid("mole fraction of component %d (%s) out of [0,1]; x=%g", i, compounds[i].Name, xi)
		}
		sum += xi
	}
	if math.Abs(sum-1.0) > sumXtol {
		return nil, ErrInvalid("mole fractions must sum to 1 ± %g; Σx=%g", sumXtol, sum)
	}
	for i, c := range compounds {
		if c == nil {
			return nil, ErrInvalid("component %d is nil", i)
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	o := &Mixture{
		Compounds: append([]*Compound{}, compounds...),
		X:         append([]float64{}, x...),
		Kij:       make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		o.Kij[i] = make([]float64, n)
	}
	if kij != nil {
		if len(kij) != n {
			return nil, ErrInvalid("kij matrix must be %d×%d", n, n)
		}
		for i := 0; i < n; i++ {
			if len(kij[i]) != n {
				return nil, ErrInvalid("kij matrix must be %d×%d", n, n)
			}
			for j := 0; j < n; j++ {
				o.Kij[i][j] = kij[i][j]
			}
		}
		for i := 0; i < n; i++ {
			if o.Kij[i][i] != 0 {
				return nil, ErrInvalid("kij diagonal must be zero; k[%d][%d]=%g", i, i, o.Kij[i][i])
			}
			for j := i + 1; j < n; j++ {
				if o.Kij[i][j] != o.Kij[j][i] {
					return nil, ErrInvalid("kij matrix must be symmetric; k[%d][%d]=%g but k[%d][%d]=%g",
						i, j, o.Kij[i][j], j, i, o.Kij[j][i])
				}
			}
		}
	}
	return o, nil
}

// Ncomp returns the number of components
func (o *Mixture) Ncomp() int { return len(o.Compounds) }

// IsPure tells whether the mixture degenerates to a single component,
// either because it has one entry or because one fraction equals 1
func (o *Mixture) IsPure() bool {
	if len(o.Compounds) == 1 {
		return true
	}
	for _, xi := range o.X {
		if math.Abs(xi-1.0) <= sumXtol {
			return true
		}
	}
	return false
}

// Dominant returns the component with the largest mole fraction
func (o *Mixture) Dominant() *Compound {
	best, xbest := 0, -1.0
	for i, xi := range o.X {
		if xi > xbest {
			best, xbest = i, xi
		}
	}
	return o.Compounds[best]
}
