// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"math"

	"github.com/ChE-Toolbox/che-toolbox/chem"
	"github.com/ChE-Toolbox/che-toolbox/eos"
)

// damped K-value update constants. The flash deliberately blends the
// old K towards unity instead of re-evaluating EOS fugacities every
// iteration; this is a documented approximation and the constants are
// part of the algorithm's compatibility contract.
const (
	dampOld = 0.7
	dampNew = 0.3
)

// flash component count limits
const (
	minComp = 2
	maxComp = 5
)

// kExplode flags numerically exploding K-values
const kExplode = 1e10

// FlashResult holds the two-phase split of a feed at (T, P)
type FlashResult struct {
	V          float64   // vapour mole fraction
	L          float64   // liquid mole fraction
	X          []float64 // liquid composition
	Y          []float64 // vapour composition
	K          []float64 // equilibrium ratios yᵢ/xᵢ of the reported split
	Iterations int       // iterations spent
	Tol        float64   // K-value stability metric achieved
	Status     Status    // convergence status
	MatBalErr  float64   // max |zᵢ - (L・xᵢ + V・yᵢ)|
}

// Flash computes the two-phase PT split of a feed by Rachford-Rice
// iteration. K-values start from the Wilson correlation and are
// relaxed with the damped blend K ← 0.7・K + 0.3 each pass. A pure or
// supercritical feed short-circuits as single-phase-detected. The
// material-balance error is reported as a field, never raised.
func Flash(feed *chem.Mixture, T, P float64, cons *eos.Constants) (*FlashResult, error) {
	if T <= 0 {
		return nil, chem.ErrInvalid("temperature must be positive; T=%g K", T)
	}
	if P <= 0 {
		return nil, chem.ErrInvalid("pressure must be positive; P=%g Pa", P)
	}
	n := feed.Ncomp()
	if n > maxComp {
		return nil, chem.ErrInvalid("flash supports at most %d components; feed has %d", maxComp, n)
	}

	res := &FlashResult{Status: StatusNotRun}

	// single-phase short circuits: pure feed, or supercritical by the
	// pseudo-critical (Kay) temperature
	st := &eos.State{T: T, P: P, Mix: feed}
	if feed.IsPure() {
		res.Status = StatusSinglePhase
		res.L, res.V = 1, 0
		res.X = append([]float64{}, feed.X...)
		res.Y = append([]float64{}, feed.X...)
		return res, nil
	}
	if n < minComp {
		return nil, chem.ErrInvalid("flash needs at least %d components; feed has %d", minComp, n)
	}
	if T >= st.PseudoTc() {
		res.Status = StatusSinglePhase
		res.L, res.V = 0, 1
		res.X = append([]float64{}, feed.X...)
		res.Y = append([]float64{}, feed.X...)
		return res, nil
	}

	// Wilson correlation initial K-values
	z := feed.X
	K := make([]float64, n)
	for i, c := range feed.Compounds {
		K[i] = c.Pc / P * math.Exp(5.373*(1.0+c.Omega)*(1.0-c.Tc/T))
	}

	x := make([]float64, n)
	y := make([]float64, n)
	krep := make([]float64, n) // K that produced the current x, y
	V := 0.5
	metric := math.Inf(1)

	for it := 1; it <= cons.MaxItFlash; it++ {
		res.Iterations = it

		// solve the scalar Rachford-Rice equation for V by
		// Newton-Raphson, clamped to [0,1]
		V = solveRachfordRice(z, K, V)

		// phase compositions
		for i := range z {
			x[i] = z[i] / (1.0 + V*(K[i]-1.0))
			y[i] = K[i] * x[i]
		}
		copy(krep, K)

		// damped K update towards unity (documented approximation;
		// NOT an EOS-fugacity-consistent update)
		metric = 0
		for i := range K {
			knew := dampOld*K[i] + dampNew
			if d := math.Abs(knew - K[i]); d > metric {
				metric = d
			}
			K[i] = knew
		}

		// divergence guard
		for i := range K {
			if math.IsNaN(K[i]) || math.IsInf(K[i], 0) || K[i] <= 0 || K[i] > kExplode {
				res.Status = StatusDiverged
				res.Tol = metric
				fillFlash(res, V, x, y, krep, z)
				return res, nil
			}
		}

		if metric < cons.TolFlash {
			res.Status = StatusConverged
			res.Tol = metric
			fillFlash(res, V, x, y, krep, z)
			return res, nil
		}
	}

	res.Status = StatusIterLimit
	res.Tol = metric
	fillFlash(res, V, x, y, krep, z)
	return res, nil
}

// solveRachfordRice finds V ∈ [0,1] with Σ zᵢ(Kᵢ-1)/(1+V(Kᵢ-1)) = 0
// by Newton-Raphson from the previous estimate
func solveRachfordRice(z, K []float64, V0 float64) float64 {
	V := V0
	for it := 0; it < 50; it++ {
		f, df := 0.0, 0.0
		for i := range z {
			den := 1.0 + V*(K[i]-1.0)
			f += z[i] * (K[i] - 1.0) / den
			df -= z[i] * (K[i] - 1.0) * (K[i] - 1.0) / (den * den)
		}
		if df == 0 {
			break
		}
		Vnew := V - f/df
		if Vnew < 0 {
			Vnew = 0
		} else if Vnew > 1 {
			Vnew = 1
		}
		if math.Abs(Vnew-V) < 1e-12 {
			return Vnew
		}
		V = Vnew
	}
	return V
}

// fillFlash copies the final state and the material-balance error into
// the result
func fillFlash(res *FlashResult, V float64, x, y, K, z []float64) {
	res.V, res.L = V, 1.0-V
	res.X = append([]float64{}, x...)
	res.Y = append([]float64{}, y...)
	res.K = append([]float64{}, K...)
	res.MatBalErr = 0
	for i := range z {
		if e := math.Abs(z[i] - (res.L*x[i] + V*y[i])); e > res.MatBalErr {
			res.MatBalErr = e
		}
	}
}
