// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"math"

	"github.com/ChE-Toolbox/che-toolbox/chem"
	"github.com/ChE-Toolbox/che-toolbox/eos"
)

// bracket of the saturation-pressure search, as fractions of Pc
const (
	bracketLo = 1e-6
	bracketHi = 0.999
	nscan     = 64 // log-spaced stations used to locate the sign change
)

// VapResult holds the outcome of a vapour-pressure calculation
type VapResult struct {
	Psat       float64 // saturation pressure [Pa]; best estimate when not converged
	Residual   float64 // final |φ_vap - φ_liq|
	Iterations int     // Brent iterations spent
	Status     Status  // StatusConverged or StatusIterLimit
}

// VapourPressure finds the saturation pressure of a pure compound at T
// by solving φ_vap(T,P) = φ_liq(T,P) with Brent's method over the
// bracket [1e-6・Pc, 0.999・Pc]. Preconditions: pure compound and
// T < Tc; at or above Tc vapour pressure is undefined and a domain
// error is returned. Exceeding the iteration cap is not a hard
// failure: the result carries the best estimate, the final residual
// and the iteration count with StatusIterLimit, so the caller may
// accept an approximate answer near the critical point.
func VapourPressure(mdl eos.Model, cmp *chem.Compound, T float64, cons *eos.Constants) (*VapResult, error) {
	if err := cmp.Validate(); err != nil {
		return nil, err
	}
	if T <= 0 {
		return nil, chem.ErrInvalid("temperature must be positive; T=%g K", T)
	}
	if T >= cmp.Tc {
		return nil, chem.ErrDomain("vapour pressure is undefined at T=%g K ≥ Tc=%g K for %q", T, cmp.Tc, cmp.Name)
	}

	// residual(P) = φ_vap - φ_liq, evaluated from the extreme cubic
	// roots; identically zero where the cubic has a single root
	residual := func(P float64) (float64, error) {
		st := &eos.State{T: T, P: P, Cmp: cmp}
		res, err := eos.CalcFugacity(mdl, st, eos.WantBoth, cons)
		if err != nil {
			return 0, err
		}
		var phiL, phiV float64
		switch {
		case res.PhiLiq != nil && res.PhiVap != nil:
			phiL, phiV = res.PhiLiq[0], res.PhiVap[0]
		case res.PhiVap != nil:
			phiL, phiV = res.PhiVap[0], res.PhiVap[0]
		default:
			phiL, phiV = res.PhiLiq[0], res.PhiLiq[0]
		}
		return phiV - phiL, nil
	}

	// scan the bracket on a log grid for a strict sign change; outside
	// the three-root band the residual vanishes, so Brent needs a
	// verified sub-bracket to work on
	pa, pb := bracketLo*cmp.Pc, bracketHi*cmp.Pc
	lga, lgb := math.Log(pa), math.Log(pb)
	var xlo, xhi, flo, fhi float64
	var found bool
	xprev, fprev, okprev := 0.0, 0.0, false
	best, fbest := pa, math.Inf(1)
	for i := 0; i < nscan; i++ {
		p := math.Exp(lga + (lgb-lga)*float64(i)/float64(nscan-1))
		f, err := residual(p)
		if err != nil {
			okprev = false
			continue
		}
		if math.Abs(f) < fbest {
			best, fbest = p, math.Abs(f)
		}
		if okprev && fprev < 0 && f > 0 {
			xlo, flo, xhi, fhi = xprev, fprev, p, f
			found = true
			break
		}
		xprev, fprev, okprev = p, f, true
	}
	if !found {
		// no verified sign change (near-critical flat residual):
		// report the least-residual station as an approximate answer
		return &VapResult{Psat: best, Residual: fbest, Iterations: nscan, Status: StatusIterLimit}, nil
	}

	res := brent(residual, xlo, xhi, flo, fhi, cons.TolVap, cons.MaxItVap)
	return res, nil
}

// brent is the classical derivative-free bracketing root-finder with
// inverse quadratic interpolation and bisection fallback. It returns a
// soft StatusIterLimit outcome instead of failing when maxit is hit.
func brent(ffcn func(float64) (float64, error), xa, xb, fa, fb, tol float64, maxit int) *VapResult {
	a, b := xa, xb
	c, fc := a, fa
	d, e := b-a, b-a
	for it := 1; it <= maxit; it++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			c, fc = a, fa
			d, e = b-a, b-a
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2.0*machEps*math.Abs(b) + 0.5*tol*math.Max(1.0, math.Abs(b))
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 || math.Abs(fb) < tol {
			return &VapResult{Psat: b, Residual: math.Abs(fb), Iterations: it, Status: StatusConverged}
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// attempt inverse quadratic interpolation
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2.0 * xm * s
				q = 1.0 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2.0*xm*q*(q-r) - (b-a)*(r-1.0))
				q = (q - 1.0) * (r - 1.0) * (s - 1.0)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2.0*p < math.Min(3.0*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				e, d = d, p/q
			} else {
				d, e = xm, xm // interpolation failed: bisect
			}
		} else {
			d, e = xm, xm
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fnew, err := ffcn(b)
		if err != nil {
			// unphysical station inside the bracket: shrink towards c
			b = 0.5 * (b + c)
			fnew, err = ffcn(b)
			if err != nil {
				return &VapResult{Psat: c, Residual: math.Abs(fc), Iterations: it, Status: StatusIterLimit}
			}
		}
		fb = fnew
	}
	return &VapResult{Psat: b, Residual: math.Abs(fb), Iterations: maxit, Status: StatusIterLimit}
}

const machEps = 2.220446049250313e-16
