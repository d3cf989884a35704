// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"errors"
	"testing"

	"github.com/ChE-Toolbox/che-toolbox/chem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

func Test_flow01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flow01. water in a 50 mm commercial-steel pipe")

	// ρ=998 kg/m³, v=2 m/s, d=50 mm, μ=1 mPa・s, ε=45 μm, l=10 m
	re, err := Reynolds(998.0, 2.0, 0.05, 1e-3)
	if err != nil {
		tst.Errorf("Reynolds failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Re", 1e-9, re, 99800.0)

	f, err := FrictionFactor(re, 4.5e-5, 0.05)
	if err != nil {
		tst.Errorf("FrictionFactor failed: %v\n", err)
		return
	}
	io.Pforan("Re = %v  f = %v\n", re, f)
	chk.Float64(tst, "f", 1e-12, f, 0.021993154632137135)

	dp, err := PipePressureDrop(998.0, 2.0, 0.05, 10.0, 1e-3, 4.5e-5)
	if err != nil {
		tst.Errorf("PipePressureDrop failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Δp", 1e-8, dp, 8779.667329149144)
}

func Test_flow02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flow02. laminar regime uses 64/Re")

	f, err := FrictionFactor(1000.0, 4.5e-5, 0.05)
	if err != nil {
		tst.Errorf("FrictionFactor failed: %v\n", err)
		return
	}
	chk.Float64(tst, "f_lam", 1e-15, f, 0.064)
}

func Test_flow03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flow03. pump power and valve coefficient")

	w, err := PumpPower(0.01, 2e5, 0.7)
	if err != nil {
		tst.Errorf("PumpPower failed: %v\n", err)
		return
	}
	chk.Float64(tst, "W", 1e-9, w, 0.01*2e5/0.7)

	kv, err := ValveKv(10.0, 1e5, 1.0)
	if err != nil {
		tst.Errorf("ValveKv failed: %v\n", err)
		return
	}
	// 1 bar drop of water: Kv equals the flow itself
	chk.Float64(tst, "Kv", 1e-12, kv, 10.0)
}

func Test_flow04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flow04. invalid arguments are rejected")

	checks := []func() (float64, error){
		func() (float64, error) { return Reynolds(-1, 2, 0.05, 1e-3) },
		func() (float64, error) { return Reynolds(998, 2, 0, 1e-3) },
		func() (float64, error) { return FrictionFactor(-1, 0, 0.05) },
		func() (float64, error) { return FrictionFactor(1e5, -1e-6, 0.05) },
		func() (float64, error) { return PumpPower(0.01, 2e5, 0) },
		func() (float64, error) { return PumpPower(0.01, 2e5, 1.2) },
		func() (float64, error) { return ValveKv(10, 0, 1) },
		func() (float64, error) { return ValveKv(10, 1e5, -1) },
	}
	for i, fcn := range checks {
		_, err := fcn()
		var inv *chem.InvalidInputError
		if err == nil || !errors.As(err, &inv) {
			tst.Errorf("case %d should have been rejected with an invalid-input error\n", i)
			return
		}
	}
}
