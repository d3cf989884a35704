// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the compound database: critical-property
// records loaded once from a JSON file into an immutable lookup table.
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/ChE-Toolbox/che-toolbox/chem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CompoundData mirrors one record of the JSON database
type CompoundData struct {
	Name  string  `json:"name"`  // common name
	CAS   string  `json:"cas"`   // CAS registry number
	Tc    float64 `json:"tc"`    // critical temperature [K]
	Pc    float64 `json:"pc"`    // critical pressure [Pa]
	Omega float64 `json:"omega"` // acentric factor
	MW    float64 `json:"mw"`    // molecular weight [g/mol]
}

// Db implements a database of compounds with case-insensitive
// name lookup and exact CAS lookup. Immutable after ReadCompounds.
type Db struct {

	// input
	Compounds []*CompoundData `json:"compounds"` // all records

	// derived
	byName map[string]*chem.Compound
	byCAS  map[string]*chem.Compound
}

// ReadCompounds reads the compound database from a JSON file and
// validates every record
func ReadCompounds(dir, fn string) (*Db, error) {

	// read file
	path := filepath.Join(dir, fn)
	if _, err := os.Stat(path); err != nil {
		return nil, chk.Err("cannot find compound database %q", path)
	}
	b := io.ReadFile(path)

	// decode
	db := new(Db)
	if err := json.Unmarshal(b, db); err != nil {
		return nil, chk.Err("cannot parse compound database %q: %v", fn, err)
	}

	// build lookup maps
	db.byName = make(map[string]*chem.Compound)
	db.byCAS = make(map[string]*chem.Compound)
	for _, d := range db.Compounds {
		c := &chem.Compound{Name: d.Name, CAS: d.CAS, Tc: d.Tc, Pc: d.Pc, Omega: d.Omega, MW: d.MW}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		key := strings.ToLower(d.Name)
		if _, dup := db.byName[key]; dup {
			return nil, chk.Err("duplicate compound %q in database %q", d.Name, fn)
		}
		db.byName[key] = c
		if d.CAS != "" {
			db.byCAS[d.CAS] = c
		}
	}
	return db, nil
}

// Get returns the compound with the given name (case-insensitive) or
// CAS number, or a not-found error
func (o *Db) Get(id string) (*chem.Compound, error) {
	if c, ok := o.byName[strings.ToLower(id)]; ok {
		return c, nil
	}
	if c, ok := o.byCAS[id]; ok {
		return c, nil
	}
	return nil, chk.Err("compound %q is not in the database", id)
}

// Names returns all compound names, for error messages and listings
func (o *Db) Names() (names []string) {
	for _, d := range o.Compounds {
		names = append(names, d.Name)
	}
	return
}
