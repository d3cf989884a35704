// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/ChE-Toolbox/che-toolbox/chem"
	"github.com/ChE-Toolbox/che-toolbox/eos"
	"github.com/ChE-Toolbox/che-toolbox/equil"
	"github.com/ChE-Toolbox/che-toolbox/flow"
	"github.com/ChE-Toolbox/che-toolbox/inp"
	"github.com/ChE-Toolbox/che-toolbox/out"
	"github.com/ChE-Toolbox/che-toolbox/steam"
	"github.com/ChE-Toolbox/che-toolbox/units"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// readTP converts the CLI temperature and pressure to SI
func readTP(cfg *config, t, p float64) (T, P float64, err error) {
	if T, err = units.ToKelvin(t, cfg.TUnit); err != nil {
		return
	}
	P, err = units.ToPascal(p, cfg.PUnit)
	return
}

// setup resolves the EOS model and the pure/mixture state
func setup(cfg *config, name string, t, p float64) (eos.Model, *eos.State, error) {
	mdl, err := eos.New(cfg.Model, nil)
	if err != nil {
		return nil, nil, err
	}
	T, P, err := readTP(cfg, t, p)
	if err != nil {
		return nil, nil, err
	}
	db, err := cfg.database()
	if err != nil {
		return nil, nil, err
	}
	st := &eos.State{T: T, P: P}
	if strings.Contains(name, "=") {
		mix, err := parseFeed(db, name)
		if err != nil {
			return nil, nil, err
		}
		st.Mix = mix
	} else {
		cmp, err := db.Get(name)
		if err != nil {
			return nil, nil, err
		}
		st.Cmp = cmp
	}
	return mdl, st, nil
}

// parseFeed parses "ethane=0.5,propane=0.5" into a mixture
func parseFeed(db *inp.Db, spec string) (*chem.Mixture, error) {
	var compounds []*chem.Compound
	var x []float64
	for _, part := range strings.Split(spec, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			return nil, chem.ErrInvalid("malformed feed entry %q; want name=fraction", part)
		}
		cmp, err := db.Get(kv[0])
		if err != nil {
			return nil, err
		}
		xi, err := strconv.ParseFloat(kv[1], 64)
		if err != nil {
			return nil, chem.ErrInvalid("malformed mole fraction %q", kv[1])
		}
		compounds = append(compounds, cmp)
		x = append(x, xi)
	}
	return chem.NewMixture(compounds, x, nil)
}

func render(cfg *config, human string, v interface{}) error {
	if cfg.JSON {
		s, err := out.JSON(v)
		if err != nil {
			return err
		}
		io.Pf("%s", s)
		return nil
	}
	io.Pf("%s", human)
	return nil
}

func newZCmd(cfg *config) *cobra.Command {
	var t, p float64
	c := &cobra.Command{
		Use:   "z <compound | feed>",
		Short: "compute compressibility factor(s)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mdl, st, err := setup(cfg, args[0], t, p)
			if err != nil {
				return err
			}
			log.Debugf("z: model=%s T=%g K P=%g Pa", mdl.Name(), st.T, st.P)
			res, err := eos.CalcZ(mdl, st, eos.DefaultConstants())
			if err != nil {
				return err
			}
			return render(cfg, out.ReportZ(res, feedNames(st)), res)
		},
	}
	c.Flags().Float64VarP(&t, "temperature", "T", 298.15, "temperature")
	c.Flags().Float64VarP(&p, "pressure", "P", 101325, "pressure")
	return c
}

func newPhiCmd(cfg *config) *cobra.Command {
	var t, p float64
	var phase string
	c := &cobra.Command{
		Use:   "phi <compound | feed>",
		Short: "compute fugacity coefficient(s)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mdl, st, err := setup(cfg, args[0], t, p)
			if err != nil {
				return err
			}
			want := eos.WantBoth
			switch phase {
			case "liquid":
				want = eos.WantLiquid
			case "vapour", "vapor":
				want = eos.WantVapour
			case "both":
			default:
				return chem.ErrInvalid("unknown phase %q; want liquid, vapour or both", phase)
			}
			res, err := eos.CalcFugacity(mdl, st, want, eos.DefaultConstants())
			if err != nil {
				return err
			}
			return render(cfg, out.ReportZ(res, feedNames(st)), res)
		},
	}
	c.Flags().Float64VarP(&t, "temperature", "T", 298.15, "temperature")
	c.Flags().Float64VarP(&p, "pressure", "P", 101325, "pressure")
	c.Flags().StringVar(&phase, "phase", "both", "phase to report: liquid, vapour or both")
	return c
}

func newPsatCmd(cfg *config) *cobra.Command {
	var t float64
	c := &cobra.Command{
		Use:   "psat <compound>",
		Short: "compute pure-compound vapour pressure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mdl, err := eos.New(cfg.Model, nil)
			if err != nil {
				return err
			}
			T, err := units.ToKelvin(t, cfg.TUnit)
			if err != nil {
				return err
			}
			db, err := cfg.database()
			if err != nil {
				return err
			}
			cmp, err := db.Get(args[0])
			if err != nil {
				return err
			}
			res, err := equil.VapourPressure(mdl, cmp, T, eos.DefaultConstants())
			if err != nil {
				return err
			}
			return render(cfg, out.ReportVap(res), res)
		},
	}
	c.Flags().Float64VarP(&t, "temperature", "T", 298.15, "temperature")
	return c
}

func newFlashCmd(cfg *config) *cobra.Command {
	var t, p float64
	c := &cobra.Command{
		Use:   "flash <feed>",
		Short: "compute a two-phase PT flash; feed like ethane=0.5,propane=0.5",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			T, P, err := readTP(cfg, t, p)
			if err != nil {
				return err
			}
			db, err := cfg.database()
			if err != nil {
				return err
			}
			feed, err := parseFeed(db, args[0])
			if err != nil {
				return err
			}
			res, err := equil.Flash(feed, T, P, eos.DefaultConstants())
			if err != nil {
				return err
			}
			names := make([]string, feed.Ncomp())
			for i, cmp := range feed.Compounds {
				names[i] = cmp.Name
			}
			return render(cfg, out.ReportFlash(res, names), res)
		},
	}
	c.Flags().Float64VarP(&t, "temperature", "T", 298.15, "temperature")
	c.Flags().Float64VarP(&p, "pressure", "P", 101325, "pressure")
	return c
}

func newSteamCmd(cfg *config) *cobra.Command {
	var t, p float64
	c := &cobra.Command{
		Use:   "steam",
		Short: "compute water/steam properties by region",
		RunE: func(cmd *cobra.Command, args []string) error {
			T, P, err := readTP(cfg, t, p)
			if err != nil {
				return err
			}
			props, err := steam.Calc(T, P)
			if err != nil {
				return err
			}
			human := io.Sf("region: %v\nPsat = %.6g Pa\nv = %.6g m³/kg\nh = %.6g J/kg\ns = %.6g J/(kg・K)\n",
				props.Region, props.Psat, props.V, props.H, props.S)
			return render(cfg, human, props)
		},
	}
	c.Flags().Float64VarP(&t, "temperature", "T", 373.15, "temperature")
	c.Flags().Float64VarP(&p, "pressure", "P", 101325, "pressure")
	return c
}

func newFlowCmd(cfg *config) *cobra.Command {
	var rho, v, d, l, mu, eps float64
	c := &cobra.Command{
		Use:   "flow",
		Short: "compute pipe pressure drop (Darcy-Weisbach)",
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := flow.Reynolds(rho, v, d, mu)
			if err != nil {
				return err
			}
			f, err := flow.FrictionFactor(re, eps, d)
			if err != nil {
				return err
			}
			dp, err := flow.PipePressureDrop(rho, v, d, l, mu, eps)
			if err != nil {
				return err
			}
			human := io.Sf("Re = %.6g\nf = %.6g\nΔp = %.6g Pa\n", re, f, dp)
			return render(cfg, human, map[string]float64{"re": re, "f": f, "dp": dp})
		},
	}
	c.Flags().Float64Var(&rho, "rho", 998.0, "density [kg/m³]")
	c.Flags().Float64Var(&v, "velocity", 1.0, "mean velocity [m/s]")
	c.Flags().Float64Var(&d, "diameter", 0.05, "inner diameter [m]")
	c.Flags().Float64Var(&l, "length", 10.0, "pipe length [m]")
	c.Flags().Float64Var(&mu, "viscosity", 1.0e-3, "dynamic viscosity [Pa·s]")
	c.Flags().Float64Var(&eps, "roughness", 4.5e-5, "absolute roughness [m]")
	return c
}

// feedNames lists component names for table rendering
func feedNames(st *eos.State) []string {
	if st.Cmp != nil {
		return []string{st.Cmp.Name}
	}
	names := make([]string, st.Mix.Ncomp())
	for i, cmp := range st.Mix.Compounds {
		names[i] = cmp.Name
	}
	return names
}
