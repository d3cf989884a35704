// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package steam implements a region-routed engineering approximation
// of water/steam properties, independent of the cubic EOS engine:
// a saturation line (region S), a compressed-liquid region (region L)
// and a superheated-vapour region (region V). The property equations
// are deliberately simple correlations, not the full IAPWS-IF97
// formulation; validity is limited to 273.16 K ≤ T ≤ 473.15 K.
package steam

import (
	"math"

	"github.com/ChE-Toolbox/che-toolbox/chem"
)

// validity limits [K]
const (
	Tmin = 273.16
	Tmax = 473.15
)

// reference constants
const (
	cpLiq  = 4186.8   // liquid heat capacity [J/(kg・K)]
	cpVap  = 1900.0   // low-pressure steam heat capacity [J/(kg・K)]
	hfg373 = 2.2564e6 // enthalpy of vaporisation at 373.15 K [J/kg]
	Tref   = 273.15   // enthalpy/entropy datum [K]
	Tcrit  = 647.10   // critical temperature [K]
	rhoLiq = 958.4    // saturated-liquid density near 373 K [kg/m³]
	Rsteam = 461.52   // specific gas constant of steam [J/(kg・K)]
)

// Region identifies which property branch served a request
type Region int

const (
	// RegionLiquid is compressed (subcooled) liquid: P > Psat(T)
	RegionLiquid Region = iota

	// RegionVapour is superheated vapour: P < Psat(T)
	RegionVapour

	// RegionSaturated means P is on the saturation line within tolerance
	RegionSaturated
)

// String returns a human readable region name
func (o Region) String() string {
	switch o {
	case RegionLiquid:
		return "compressed-liquid"
	case RegionVapour:
		return "superheated-vapour"
	case RegionSaturated:
		return "saturated"
	}
	return "unknown"
}

// Properties holds the computed state of water/steam
type Properties struct {
	Region Region
	Psat   float64 // saturation pressure at T [Pa]
	V      float64 // specific volume [m³/kg]
	H      float64 // specific enthalpy, datum 273.15 K liquid [J/kg]
	S      float64 // specific entropy, same datum [J/(kg・K)]
}

// SatPressure returns the saturation pressure of water [Pa] from the
// Sonntag (1990) correlation. Below the range a domain error is
// returned; above 373.15 K the ice branch never applies.
func SatPressure(T float64) (float64, error) {
	if T < Tmin || T > Tmax {
		return 0, chem.ErrDomain("steam tables are valid for %g K ≤ T ≤ %g K; T=%g K", Tmin, Tmax, T)
	}
	// Sonntag correlation over liquid water
	const (
		a1 = -6096.9385
		a2 = 21.2409642
		a3 = -0.02711193
		a4 = 0.00001673952
		a5 = 2.433502
	)
	return math.Exp(a1/T + a2 + a3*T + a4*T*T + a5*math.Log(T)), nil
}

// SatTemperature inverts the saturation line: Tsat(P) by bisection on
// the monotone Sonntag correlation
func SatTemperature(P float64) (float64, error) {
	if P <= 0 {
		return 0, chem.ErrInvalid("pressure must be positive; P=%g Pa", P)
	}
	plo, _ := SatPressure(Tmin)
	phi, _ := SatPressure(Tmax)
	if P < plo || P > phi {
		return 0, chem.ErrDomain("saturation temperature is out of the table range for P=%g Pa", P)
	}
	a, b := Tmin, Tmax
	for i := 0; i < 100; i++ {
		m := 0.5 * (a + b)
		pm, _ := SatPressure(m)
		if pm < P {
			a = m
		} else {
			b = m
		}
		if b-a < 1e-8 {
			break
		}
	}
	return 0.5 * (a + b), nil
}

// Hvap returns the enthalpy of vaporisation [J/kg] via the Watson
// relation anchored at 373.15 K
func Hvap(T float64) (float64, error) {
	if T < Tmin || T > Tmax {
		return 0, chem.ErrDomain("steam tables are valid for %g K ≤ T ≤ %g K; T=%g K", Tmin, Tmax, T)
	}
	return hfg373 * math.Pow((Tcrit-T)/(Tcrit-373.15), 0.38), nil
}

// Calc routes (T, P) to a region and computes the properties there
func Calc(T, P float64) (*Properties, error) {
	if P <= 0 {
		return nil, chem.ErrInvalid("pressure must be positive; P=%g Pa", P)
	}
	psat, err := SatPressure(T)
	if err != nil {
		return nil, err
	}
	o := &Properties{Psat: psat}

	// region routing on the saturation line, 0.1% band
	switch {
	case math.Abs(P-psat) <= 1e-3*psat:
		o.Region = RegionSaturated
	case P > psat:
		o.Region = RegionLiquid
	default:
		o.Region = RegionVapour
	}

	hf := cpLiq * (T - Tref)              // saturated-liquid enthalpy
	sf := cpLiq * math.Log(T/Tref)        // saturated-liquid entropy
	hfg, _ := Hvap(T)

	switch o.Region {
	case RegionLiquid:
		// liquid properties are nearly pressure-independent
		o.V = 1.0 / rhoLiq
		o.H = hf
		o.S = sf
	case RegionSaturated:
		// report the vapour side of the dome
		o.V = Rsteam * T / psat
		o.H = hf + hfg
		o.S = sf + hfg/T
	case RegionVapour:
		tsat, err := SatTemperature(P)
		if err != nil {
			// P below the table's saturation range: ideal steam from
			// the 273.16 K anchor
			tsat = Tmin
		}
		hfSat := cpLiq * (tsat - Tref)
		sfSat := cpLiq * math.Log(tsat/Tref)
		hfgSat, _ := Hvap(tsat)
		// superheat isobarically from the dome at Tsat(P)
		o.V = Rsteam * T / P
		o.H = hfSat + hfgSat + cpVap*(T-tsat)
		o.S = sfSat + hfgSat/tsat + cpVap*math.Log(T/tsat)
	}
	return o, nil
}
