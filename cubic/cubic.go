// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cubic solves the cubic compressibility equation
//   Z³ + c2・Z² + c1・Z + c0 = 0
// for its real, strictly positive roots. Two strategies are available:
// a closed-form analytical method (robust near degenerate and multiple
// roots, e.g. close to the critical point) and a numerical method based
// on the eigenvalues of the companion matrix (fast, general). The
// default hybrid strategy runs the numerical method first and falls
// back to the analytical one whenever no positive real root is found or
// the eigensolver signals ill-conditioning.
package cubic

import (
	"math"
	"sort"

	"github.com/ChE-Toolbox/che-toolbox/chem"
	"gonum.org/v1/gonum/mat"
)

// Strategy selects the root-finding method
type Strategy int

const (
	// Hybrid tries Numerical first and falls back to Analytical
	Hybrid Strategy = iota

	// Analytical uses the closed-form (Cardano/trigonometric) solution
	Analytical

	// Numerical uses companion-matrix eigenvalues
	Numerical
)

const (
	tinyRoot = 1e-12 // roots at or below this are not strictly positive
	imagTol  = 1e-8  // relative imaginary part above which a root is complex
	dupTol   = 1e-9  // relative spacing below which two roots coincide
)

// Solve returns the ascending tuple of real, strictly positive roots of
// Z³ + c2・Z² + c1・Z + c0 = 0. In the EOS-physical case the tuple has
// 1 or 3 entries; an empty tuple yields a NoRootError, because zero
// positive roots signal unphysical EOS parameters and must never be
// silently defaulted.
func Solve(c2, c1, c0 float64, strategy Strategy) (roots []float64, err error) {
	if math.IsNaN(c2) || math.IsNaN(c1) || math.IsNaN(c0) ||
		math.IsInf(c2, 0) || math.IsInf(c1, 0) || math.IsInf(c0, 0) {
		return nil, chem.ErrInvalid("cubic coefficients are not finite: c2=%g c1=%g c0=%g", c2, c1, c0)
	}
	switch strategy {
	case Analytical:
		roots = solveAnalytical(c2, c1, c0)
	case Numerical:
		roots, err = solveNumerical(c2, c1, c0)
		if err != nil {
			return nil, err
		}
	default: // Hybrid
		roots, err = solveNumerical(c2, c1, c0)
		if err != nil || len(roots) == 0 {
			roots = solveAnalytical(c2, c1, c0)
			err = nil
		}
	}
	if len(roots) == 0 {
		return nil, chem.ErrNoRoot("cubic Z³ + (%g)Z² + (%g)Z + (%g) has no positive real root", c2, c1, c0)
	}
	return roots, nil
}

// solveAnalytical finds the real roots with Cardano's formula, using
// the trigonometric form when the discriminant indicates three real
// roots. Stable near the double/triple-root degeneracy found at the
// critical point.
func solveAnalytical(c2, c1, c0 float64) []float64 {
	// depressed cubic t³ + p・t + q = 0 with Z = t - c2/3
	p := c1 - c2*c2/3.0
	q := 2.0*c2*c2*c2/27.0 - c2*c1/3.0 + c0
	shift := -c2 / 3.0

	// discriminant
	disc := q*q/4.0 + p*p*p/27.0

	// scale-aware degeneracy threshold
	scale := math.Max(math.Abs(p), math.Abs(q))
	eps := 1e-14 * math.Max(1.0, scale*scale)

	var ts []float64
	switch {
	case disc > eps: // one real root
		sq := math.Sqrt(disc)
		ts = []float64{math.Cbrt(-q/2.0+sq) + math.Cbrt(-q/2.0-sq)}

	case disc < -eps: // three distinct real roots (trigonometric form)
		m := 2.0 * math.Sqrt(-p/3.0)
		arg := 3.0 * q / (p * m) // = 3q/(2p)・√(-3/p), clamped against rounding
		if arg > 1.0 {
			arg = 1.0
		} else if arg < -1.0 {
			arg = -1.0
		}
		theta := math.Acos(arg)
		ts = []float64{
			m * math.Cos(theta/3.0),
			m * math.Cos(theta/3.0-2.0*math.Pi/3.0),
			m * math.Cos(theta/3.0-4.0*math.Pi/3.0),
		}

	default: // degenerate: double or triple root
		if math.Abs(p) < eps { // triple root
			ts = []float64{math.Cbrt(-q)}
		} else { // double root at -3q/(2p), simple root at 3q/p
			ts = []float64{3.0 * q / p, -3.0 * q / (2.0 * p), -3.0 * q / (2.0 * p)}
		}
	}

	return filterRoots(ts, shift)
}

// solveNumerical finds the real roots via the eigenvalues of the 3×3
// companion matrix. Returns an error when the eigendecomposition fails
// to converge (ill-conditioned coefficients).
func solveNumerical(c2, c1, c0 float64) ([]float64, error) {
	// companion matrix of the monic cubic
	a := mat.NewDense(3, 3, []float64{
		0, 0, -c0,
		1, 0, -c1,
		0, 1, -c2,
	})
	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		return nil, chem.ErrNoRoot("companion-matrix eigendecomposition failed for c2=%g c1=%g c0=%g", c2, c1, c0)
	}
	vals := eig.Values(nil)
	ts := make([]float64, 0, 3)
	for _, v := range vals {
		re, im := real(v), imag(v)
		if math.Abs(im) <= imagTol*math.Max(1.0, math.Abs(re)) {
			ts = append(ts, re)
		}
	}
	return filterRoots(ts, 0), nil
}

// filterRoots shifts depressed-cubic roots back, drops non-positive and
// near-duplicate values, and sorts ascending
func filterRoots(ts []float64, shift float64) []float64 {
	out := make([]float64, 0, 3)
	for _, t := range ts {
		z := t + shift
		if z > tinyRoot {
			out = append(out, z)
		}
	}
	sort.Float64s(out)
	dedup := out[:0]
	for i, z := range out {
		if i > 0 && math.Abs(z-dedup[len(dedup)-1]) <= dupTol*math.Max(1.0, z) {
			continue
		}
		dedup = append(dedup, z)
	}
	return dedup
}
