// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flow implements simple closed-form fluid-mechanics formulas
// for pipe, pump and valve sizing. All quantities are SI.
package flow

import (
	"math"

	"github.com/ChE-Toolbox/che-toolbox/chem"
)

// laminar/turbulent transition Reynolds number
const ReTransition = 2300.0

// Reynolds returns the Reynolds number of pipe flow
//   rho -- density [kg/m³]
//   v   -- mean velocity [m/s]
//   d   -- inner diameter [m]
//   mu  -- dynamic viscosity [Pa・s]
func Reynolds(rho, v, d, mu float64) (float64, error) {
	if rho <= 0 || d <= 0 || mu <= 0 {
		return 0, chem.ErrInvalid("density, diameter and viscosity must be positive; ρ=%g d=%g μ=%g", rho, d, mu)
	}
	return rho * math.Abs(v) * d / mu, nil
}

// FrictionFactor returns the Darcy friction factor: 64/Re in the
// laminar regime, Swamee-Jain explicit approximation of the Colebrook
// equation otherwise
//   eps -- absolute roughness [m]
func FrictionFactor(re, eps, d float64) (float64, error) {
	if re <= 0 {
		return 0, chem.ErrInvalid("Reynolds number must be positive; Re=%g", re)
	}
	if d <= 0 || eps < 0 {
		return 0, chem.ErrInvalid("diameter must be positive and roughness non-negative; d=%g ε=%g", d, eps)
	}
	if re < ReTransition {
		return 64.0 / re, nil
	}
	den := math.Log10(eps/(3.7*d) + 5.74/math.Pow(re, 0.9))
	return 0.25 / (den * den), nil
}

// PipePressureDrop returns the Darcy-Weisbach pressure drop [Pa] over
// a straight pipe of length l
func PipePressureDrop(rho, v, d, l, mu, eps float64) (float64, error) {
	re, err := Reynolds(rho, v, d, mu)
	if err != nil {
		return 0, err
	}
	f, err := FrictionFactor(re, eps, d)
	if err != nil {
		return 0, err
	}
	return f * l / d * 0.5 * rho * v * v, nil
}

// PumpPower returns the hydraulic power [W] to move a volumetric flow
// q [m³/s] across a head difference dp [Pa] at efficiency eta ∈ (0,1]
func PumpPower(q, dp, eta float64) (float64, error) {
	if q < 0 || dp < 0 {
		return 0, chem.ErrInvalid("flow and pressure rise must be non-negative; q=%g Δp=%g", q, dp)
	}
	if eta <= 0 || eta > 1 {
		return 0, chem.ErrInvalid("pump efficiency must be in (0,1]; η=%g", eta)
	}
	return q * dp / eta, nil
}

// ValveKv returns the metric valve flow coefficient Kv [m³/h] for a
// liquid of specific gravity sg flowing q [m³/h] across dp [Pa]
func ValveKv(q, dp, sg float64) (float64, error) {
	if q < 0 || sg <= 0 {
		return 0, chem.ErrInvalid("flow must be non-negative and specific gravity positive; q=%g sg=%g", q, sg)
	}
	if dp <= 0 {
		return 0, chem.ErrInvalid("valve pressure drop must be positive; Δp=%g Pa", dp)
	}
	return q * math.Sqrt(sg/(dp/1e5)), nil
}
