// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ChE-Toolbox/che-toolbox/inp"
)

// config holds the CLI defaults; flag values win over the TOML file
type config struct {
	File    string `toml:"-"`       // path of the TOML file, from --config
	DataDir string `toml:"data"`    // compound database directory
	Model   string `toml:"model"`   // EOS model name
	TUnit   string `toml:"tunit"`   // temperature unit of CLI inputs
	PUnit   string `toml:"punit"`   // pressure unit of CLI inputs/outputs
	JSON    bool   `toml:"json"`    // render JSON instead of tables
	Verbose bool   `toml:"verbose"` // debug logging
}

// load merges the TOML file, if any, under the flag values
func (o *config) load() error {
	if o.File == "" {
		return nil
	}
	fromFile := new(config)
	if _, err := toml.DecodeFile(o.File, fromFile); err != nil {
		return err
	}
	// only fill fields still at their flag defaults
	if o.DataDir == "data" && fromFile.DataDir != "" {
		o.DataDir = fromFile.DataDir
	}
	if o.Model == "pr" && fromFile.Model != "" {
		o.Model = fromFile.Model
	}
	if o.TUnit == "k" && fromFile.TUnit != "" {
		o.TUnit = fromFile.TUnit
	}
	if o.PUnit == "pa" && fromFile.PUnit != "" {
		o.PUnit = fromFile.PUnit
	}
	if fromFile.JSON {
		o.JSON = true
	}
	if fromFile.Verbose {
		o.Verbose = true
	}
	return nil
}

// database opens the compound database once per invocation
func (o *config) database() (*inp.Db, error) {
	dir := o.DataDir
	if dir == "" {
		dir, _ = os.Getwd()
	}
	return inp.ReadCompounds(dir, "compounds.json")
}
