// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"errors"
	"testing"

	"github.com/ChE-Toolbox/che-toolbox/chem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
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

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. registry and construction")

	for _, name := range []string{"pr", "vdw", "ideal"} {
		mdl, err := New(name, nil)
		if err != nil {
			tst.Errorf("cannot allocate %q: %v\n", name, err)
			return
		}
		chk.String(tst, mdl.Name(), name)
	}

	if _, err := New("srk", nil); err == nil {
		tst.Errorf("unknown model must be rejected\n")
		return
	}

	// wrong parameter name
	if _, err := New("pr", dbf.Params{&dbf.P{N: "bogus", V: 1}}); err == nil {
		tst.Errorf("unknown parameter must be rejected\n")
		return
	}
}

func Test_z01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("z01. methane, Peng-Robinson, 300 K, 5 MPa")

	mdl, _ := New("pr", nil)
	cons := DefaultConstants()
	st := &State{T: 300, P: 5e6, Cmp: methane}
	res, err := CalcZ(mdl, st, cons)
	if err != nil {
		tst.Errorf("CalcZ failed: %v\n", err)
		return
	}
	io.Pforan("phase = %v  Z = %v\n", res.Phase, res.Zvap)

	// methane at 300 K is above Tc = 190.56 K: supercritical, one root
	chk.IntAssert(int(res.Phase), int(PhaseSupercritical))
	chk.Float64(tst, "Z", 1e-6, res.Zvap, 0.9018468274086515)
	chk.Float64(tst, "Zliq==Zvap", 1e-17, res.Zliq, res.Zvap)
}

func Test_z02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("z02. methane, van der Waals, 300 K, 50 MPa")

	mdl, _ := New("vdw", nil)
	cons := DefaultConstants()
	st := &State{T: 300, P: 5e7, Cmp: methane}
	res, err := CalcZ(mdl, st, cons)
	if err != nil {
		tst.Errorf("CalcZ failed: %v\n", err)
		return
	}
	io.Pforan("Z = %v\n", res.Zvap)
	chk.Float64(tst, "Z", 1e-6, res.Zvap, 1.3648919890398672)
}

func Test_z03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("z03. water two-phase region, 300 K, 1 atm")

	mdl, _ := New("pr", nil)
	cons := DefaultConstants()
	st := &State{T: 300, P: 101325, Cmp: water}
	res, err := CalcZ(mdl, st, cons)
	if err != nil {
		tst.Errorf("CalcZ failed: %v\n", err)
		return
	}
	chk.IntAssert(int(res.Phase), int(PhaseTwoPhase))
	chk.Float64(tst, "Zliq", 1e-9, res.Zliq, 0.0008633934905407092)
	chk.Float64(tst, "Zvap", 1e-9, res.Zvap, 0.9845755371795246)
}

func Test_z04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("z04. ideal gas returns Z = 1 through the same pipeline")

	mdl, _ := New("ideal", nil)
	cons := DefaultConstants()
	st := &State{T: 300, P: 5e6, Cmp: methane}
	res, err := CalcZ(mdl, st, cons)
	if err != nil {
		tst.Errorf("CalcZ failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Z", 1e-12, res.Zvap, 1.0)
}

func Test_z05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("z05. invalid states rejected before any numeric work")

	mdl, _ := New("pr", nil)
	cons := DefaultConstants()
	for _, st := range []*State{
		{T: -10, P: 1e5, Cmp: methane},
		{T: 300, P: 0, Cmp: methane},
		{T: 300, P: 1e5},
	} {
		_, err := CalcZ(mdl, st, cons)
		if err == nil {
			tst.Errorf("state %+v should have been rejected\n", st)
			return
		}
		var inv *chem.InvalidInputError
		if !errors.As(err, &inv) {
			tst.Errorf("wrong error kind: %v\n", err)
			return
		}
	}
}

func Test_phi01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phi01. pure fugacity coefficients, both phases")

	mdl, _ := New("pr", nil)
	cons := DefaultConstants()

	// supercritical methane: only the vapour side exists
	res, err := CalcFugacity(mdl, &State{T: 300, P: 5e6, Cmp: methane}, WantBoth, cons)
	if err != nil {
		tst.Errorf("CalcFugacity failed: %v\n", err)
		return
	}
	chk.Float64(tst, "φ", 1e-6, res.PhiVap[0], 0.9013869252779166)
	if res.PhiLiq != nil {
		tst.Errorf("supercritical state should not report liquid φ\n")
		return
	}

	// two-phase propane at 300 K and 0.9 MPa
	res, err = CalcFugacity(mdl, &State{T: 300, P: 0.9e6, Cmp: propane}, WantBoth, cons)
	if err != nil {
		tst.Errorf("CalcFugacity failed: %v\n", err)
		return
	}
	chk.IntAssert(int(res.Phase), int(PhaseTwoPhase))
	chk.Float64(tst, "Zliq", 1e-8, res.Zliq, 0.03133937279025123)
	chk.Float64(tst, "Zvap", 1e-8, res.Zvap, 0.8361686731914697)
	chk.Float64(tst, "φ liq", 1e-7, res.PhiLiq[0], 0.9308142088955915)
	chk.Float64(tst, "φ vap", 1e-7, res.PhiVap[0], 0.8577142852839641)
}

func Test_phi02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phi02. requesting an unavailable phase is invalid input")

	mdl, _ := New("pr", nil)
	cons := DefaultConstants()
	_, err := CalcFugacity(mdl, &State{T: 300, P: 5e6, Cmp: methane}, WantLiquid, cons)
	if err == nil {
		tst.Errorf("liquid φ under supercritical conditions must be rejected\n")
		return
	}
	var inv *chem.InvalidInputError
	if !errors.As(err, &inv) {
		tst.Errorf("wrong error kind: %v\n", err)
		return
	}
}

func Test_mix01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix01. one-fluid mixing rules, methane/ethane")

	mdl, _ := New("pr", nil)
	cons := DefaultConstants()
	mix, err := chem.NewMixture([]*chem.Compound{methane, ethane}, []float64{0.5, 0.5}, nil)
	if err != nil {
		tst.Errorf("mixture rejected: %v\n", err)
		return
	}

	mp, err := BuildMix(mdl, mix, 250, 3e6, cons.R)
	if err != nil {
		tst.Errorf("BuildMix failed: %v\n", err)
		return
	}
	chk.Float64(tst, "a_mix", 1e-9, mp.Aattr, 0.4145059779260625)
	chk.Float64(tst, "b_mix", 1e-15, mp.Bcov, 3.3670433961421724e-05)

	st := &State{T: 250, P: 3e6, Mix: mix}
	res, err := CalcFugacity(mdl, st, WantBoth, cons)
	if err != nil {
		tst.Errorf("CalcFugacity failed: %v\n", err)
		return
	}
	// 250 K is above the pseudo-critical temperature (247.94 K)
	chk.IntAssert(int(res.Phase), int(PhaseSupercritical))
	chk.Float64(tst, "Z", 1e-8, res.Zvap, 0.718161581625599)
	chk.Array(tst, "φ", 1e-7, res.PhiVap, []float64{0.9282982019250356, 0.6441908480543834})
}

func Test_mix02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix02. binary interaction parameter shifts a_mix")

	mdl, _ := New("pr", nil)
	cons := DefaultConstants()
	kij := [][]float64{{0, 0.02}, {0.02, 0}}
	mix, err := chem.NewMixture([]*chem.Compound{methane, ethane}, []float64{0.5, 0.5}, kij)
	if err != nil {
		tst.Errorf("mixture rejected: %v\n", err)
		return
	}
	mp, err := BuildMix(mdl, mix, 250, 3e6, cons.R)
	if err != nil {
		tst.Errorf("BuildMix failed: %v\n", err)
		return
	}
	chk.Float64(tst, "a_mix", 1e-9, mp.Aattr, 0.4106593009096521)

	res, err := CalcZ(mdl, &State{T: 250, P: 3e6, Mix: mix}, cons)
	if err != nil {
		tst.Errorf("CalcZ failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Z", 1e-8, res.Zvap, 0.7230280420224415)
}

func Test_mix03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mix03. single-component mixture reproduces the pure fluid")

	cons := DefaultConstants()
	for _, name := range []string{"pr", "vdw"} {
		mdl, _ := New(name, nil)
		mix, err := chem.NewMixture([]*chem.Compound{propane}, []float64{1.0}, nil)
		if err != nil {
			tst.Errorf("mixture rejected: %v\n", err)
			return
		}
		pure, err := CalcFugacity(mdl, &State{T: 300, P: 0.9e6, Cmp: propane}, WantBoth, cons)
		if err != nil {
			tst.Errorf("pure CalcFugacity failed: %v\n", err)
			return
		}
		asMix, err := CalcFugacity(mdl, &State{T: 300, P: 0.9e6, Mix: mix}, WantBoth, cons)
		if err != nil {
			tst.Errorf("mixture CalcFugacity failed: %v\n", err)
			return
		}
		chk.Float64(tst, io.Sf("Zliq (%s)", name), 1e-12, asMix.Zliq, pure.Zliq)
		chk.Float64(tst, io.Sf("Zvap (%s)", name), 1e-12, asMix.Zvap, pure.Zvap)
		if pure.PhiVap != nil {
			chk.Float64(tst, io.Sf("φvap (%s)", name), 1e-10, asMix.PhiVap[0], pure.PhiVap[0])
		}
		if pure.PhiLiq != nil {
			chk.Float64(tst, io.Sf("φliq (%s)", name), 1e-10, asMix.PhiLiq[0], pure.PhiLiq[0])
		}
	}
}

func Test_idem01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("idem01. identical inputs give bit-identical outputs")

	mdl, _ := New("pr", nil)
	cons := DefaultConstants()
	st := &State{T: 300, P: 0.9e6, Cmp: propane}
	first, err := CalcFugacity(mdl, st, WantBoth, cons)
	if err != nil {
		tst.Errorf("CalcFugacity failed: %v\n", err)
		return
	}
	for i := 0; i < 10; i++ {
		again, err := CalcFugacity(mdl, st, WantBoth, cons)
		if err != nil {
			tst.Errorf("CalcFugacity failed: %v\n", err)
			return
		}
		if again.Zliq != first.Zliq || again.Zvap != first.Zvap ||
			again.PhiLiq[0] != first.PhiLiq[0] || again.PhiVap[0] != first.PhiVap[0] {
			tst.Errorf("outputs differ across repeated invocations\n")
			return
		}
	}
}
