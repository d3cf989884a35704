// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

func Test_compounds01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compounds01. read database and look compounds up")

	db, err := ReadCompounds("../data", "compounds.json")
	if err != nil {
		tst.Errorf("ReadCompounds failed: %v\n", err)
		return
	}
	chk.IntAssert(len(db.Compounds), 7)
	io.Pforan("compounds = %v\n", db.Names())

	// case-insensitive name lookup
	for _, id := range []string{"propane", "Propane", "PROPANE"} {
		c, err := db.Get(id)
		if err != nil {
			tst.Errorf("Get(%q) failed: %v\n", id, err)
			return
		}
		chk.Float64(tst, "Tc", 1e-15, c.Tc, 369.83)
		chk.Float64(tst, "Pc", 1e-15, c.Pc, 4.248e6)
		chk.Float64(tst, "ω", 1e-15, c.Omega, 0.1523)
	}

	// CAS lookup resolves to the same record
	byCAS, err := db.Get("74-98-6")
	if err != nil {
		tst.Errorf("Get by CAS failed: %v\n", err)
		return
	}
	byName, _ := db.Get("propane")
	if byCAS != byName {
		tst.Errorf("CAS and name lookups must return the same record\n")
		return
	}
}

func Test_compounds02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("compounds02. unknown compound and missing file")

	db, err := ReadCompounds("../data", "compounds.json")
	if err != nil {
		tst.Errorf("ReadCompounds failed: %v\n", err)
		return
	}
	if _, err := db.Get("unobtainium"); err == nil {
		tst.Errorf("unknown compound should have been rejected\n")
		return
	}
	if _, err := ReadCompounds("../data", "nosuchfile.json"); err == nil {
		tst.Errorf("missing database file should have been an error\n")
		return
	}
}
