// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package units implements the engineering-unit conversions of the
// calling layer. The core engine only accepts SI-consistent absolute
// temperature [K] and pressure [Pa]; every conversion happens here,
// before and after invoking the core.
package units

import "github.com/cpmech/gosl/chk"

// pressure unit factors to Pa
var pressureFactors = map[string]float64{
	"pa":   1.0,
	"kpa":  1e3,
	"mpa":  1e6,
	"bar":  1e5,
	"atm":  101325.0,
	"psi":  6894.757293168,
	"mmhg": 133.322387415,
}

// ToPascal converts a pressure value in the named unit to Pa
func ToPascal(v float64, unit string) (float64, error) {
	f, ok := pressureFactors[unit]
	if !ok {
		return 0, chk.Err("unknown pressure unit %q", unit)
	}
	return v * f, nil
}

// FromPascal converts a pressure in Pa to the named unit
func FromPascal(pa float64, unit string) (float64, error) {
	f, ok := pressureFactors[unit]
	if !ok {
		return 0, chk.Err("unknown pressure unit %q", unit)
	}
	return pa / f, nil
}

// ToKelvin converts a temperature in the named unit ("k", "c", "f",
// "r") to absolute Kelvin
func ToKelvin(v float64, unit string) (float64, error) {
	switch unit {
	case "k":
		return v, nil
	case "c":
		return v + 273.15, nil
	case "f":
		return (v-32.0)/1.8 + 273.15, nil
	case "r":
		return v / 1.8, nil
	}
	return 0, chk.Err("unknown temperature unit %q", unit)
}

// FromKelvin converts an absolute temperature to the named unit
func FromKelvin(k float64, unit string) (float64, error) {
	switch unit {
	case "k":
		return k, nil
	case "c":
		return k - 273.15, nil
	case "f":
		return (k-273.15)*1.8 + 32.0, nil
	case "r":
		return k * 1.8, nil
	}
	return 0, chk.Err("unknown temperature unit %q", unit)
}

// PressureUnits returns the supported pressure unit names
func PressureUnits() []string {
	return []string{"pa", "kpa", "mpa", "bar", "atm", "psi", "mmhg"}
}
