// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"errors"
	"math"
	"testing"

	"github.com/ChE-Toolbox/che-toolbox/chem"
	"github.com/ChE-Toolbox/che-toolbox/eos"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

var (
	methane = &chem.Compound{Name: "methane", Tc: 190.56, Pc: 4.599e6, Omega: 0.0115, MW: 16.043}
	ethane  = &chem.Compound{Name: "ethane", Tc: 305.32, Pc: 4.872e6, Omega: 0.0995, MW: 30.070}
	propane = &chem.Compound{Name: "propane", Tc: 369.83, Pc: 4.248e6, Omega: 0.1523, MW: 44.097}
	water   = &chem.Compound{Name: "water", Tc: 647.10, Pc: 22.064e6, Omega: 0.3449, MW: 18.015}
)

func Test_psat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("psat01. propane at 300 K")

	mdl, _ := eos.New("pr", nil)
	cons := eos.DefaultConstants()
	res, err := VapourPressure(mdl, propane, 300, cons)
	if err != nil {
		tst.Errorf("VapourPressure failed: %v\n", err)
		return
	}
	io.Pforan("Psat = %v Pa  status = %v  it = %d  residual = %v\n",
		res.Psat, res.Status, res.Iterations, res.Residual)
	chk.IntAssert(int(res.Status), int(StatusConverged))
	chk.Float64(tst, "Psat", 200.0, res.Psat, 997794.0)
	if res.Residual > 1e-4 {
		tst.Errorf("residual too large at the solution: %v\n", res.Residual)
		return
	}
}

func Test_psat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("psat02. water at 373.15 K")

	mdl, _ := eos.New("pr", nil)
	cons := eos.DefaultConstants()
	res, err := VapourPressure(mdl, water, 373.15, cons)
	if err != nil {
		tst.Errorf("VapourPressure failed: %v\n", err)
		return
	}
	io.Pforan("Psat = %v Pa (water @ 373.15 K; PR underpredicts the steam point by ≈5%%)\n", res.Psat)
	chk.IntAssert(int(res.Status), int(StatusConverged))
	chk.Float64(tst, "Psat", 200.0, res.Psat, 96097.4)

	// fugacity equality holds at the reported solution
	fres, err := eos.CalcFugacity(mdl, &eos.State{T: 373.15, P: res.Psat, Cmp: water}, eos.WantBoth, cons)
	if err != nil {
		tst.Errorf("CalcFugacity failed: %v\n", err)
		return
	}
	if math.Abs(fres.PhiVap[0]*res.Psat-fres.PhiLiq[0]*res.Psat)/res.Psat >= 1e-4 {
		tst.Errorf("fugacity equality violated at the solution\n")
		return
	}
}

func Test_psat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("psat03. methane at 150 K")

	mdl, _ := eos.New("pr", nil)
	cons := eos.DefaultConstants()
	res, err := VapourPressure(mdl, methane, 150, cons)
	if err != nil {
		tst.Errorf("VapourPressure failed: %v\n", err)
		return
	}
	chk.IntAssert(int(res.Status), int(StatusConverged))
	chk.Float64(tst, "Psat", 300.0, res.Psat, 1047045.5)
}

func Test_psat04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("psat04. T ≥ Tc is a domain violation, never a number")

	mdl, _ := eos.New("pr", nil)
	cons := eos.DefaultConstants()
	for _, T := range []float64{propane.Tc, propane.Tc + 0.001, propane.Tc + 100} {
		res, err := VapourPressure(mdl, propane, T, cons)
		if err == nil {
			tst.Errorf("T=%g K should have been rejected; got Psat=%v\n", T, res.Psat)
			return
		}
		var dom *chem.DomainError
		if !errors.As(err, &dom) {
			tst.Errorf("wrong error kind: %v\n", err)
			return
		}
	}
}

func Test_psat05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("psat05. iteration cap yields a soft outcome with diagnostics")

	mdl, _ := eos.New("pr", nil)
	cons := eos.DefaultConstants()
	cons.MaxItVap = 1
	res, err := VapourPressure(mdl, propane, 300, cons)
	if err != nil {
		tst.Errorf("cap exhaustion must not hard-fail: %v\n", err)
		return
	}
	chk.IntAssert(int(res.Status), int(StatusIterLimit))
	if res.Psat <= 0 {
		tst.Errorf("soft outcome must carry a best estimate; got %v\n", res.Psat)
		return
	}
	io.Pforan("best estimate = %v Pa after %d iteration(s); residual = %v\n",
		res.Psat, res.Iterations, res.Residual)
}
