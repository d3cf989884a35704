// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// chetk is the command line front end of the engine: Z-factors,
// fugacity coefficients, vapour pressures, PT flashes, steam properties
// and pipe/pump/valve sizing on plain numeric inputs.
package main

import (
	"errors"
	"os"

	"github.com/ChE-Toolbox/che-toolbox/chem"
	"github.com/cpmech/gosl/io"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fail(err)
	}
}

// fail prints the failing condition by error kind and exits non-zero.
// Hard kinds (invalid input, no physical root, domain violation) are
// named so the user sees which contract was broken.
func fail(err error) {
	var inv *chem.InvalidInputError
	var nrt *chem.NoRootError
	var dom *chem.DomainError
	switch {
	case errors.As(err, &inv):
		io.PfRed("rejected (invalid input): %s\n", inv.Msg)
	case errors.As(err, &nrt):
		io.PfRed("rejected (no physical root): %s\n", nrt.Msg)
	case errors.As(err, &dom):
		io.PfRed("rejected (domain violation): %s\n", dom.Msg)
	default:
		io.PfRed("error: %v\n", err)
	}
	os.Exit(1)
}

func newRootCmd() *cobra.Command {
	cfg := new(config)
	root := &cobra.Command{
		Use:           "chetk",
		Short:         "cubic-EOS engine and vapour-liquid equilibrium solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.load(); err != nil {
				return err
			}
			if cfg.Verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&cfg.File, "config", "", "TOML configuration file")
	pf.StringVar(&cfg.DataDir, "data", "data", "directory with compounds.json")
	pf.StringVar(&cfg.Model, "model", "pr", "EOS model: pr, vdw or ideal")
	pf.StringVar(&cfg.TUnit, "tunit", "k", "temperature unit of inputs: k, c, f, r")
	pf.StringVar(&cfg.PUnit, "punit", "pa", "pressure unit of inputs and outputs")
	pf.BoolVar(&cfg.JSON, "json", false, "render results as JSON")
	pf.BoolVar(&cfg.Verbose, "verbose", false, "debug logging")

	root.AddCommand(
		newZCmd(cfg),
		newPhiCmd(cfg),
		newPsatCmd(cfg),
		newFlashCmd(cfg),
		newSteamCmd(cfg),
		newFlowCmd(cfg),
	)
	return root
}
