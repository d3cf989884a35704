// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out renders calculation results for the calling layer:
// human-readable tables and JSON. Hard error kinds are surfaced by the
// CLI before rendering; this package only ever sees result values,
// including soft non-converged ones, which it labels "approximate".
package out

import (
	"encoding/json"

	"github.com/ChE-Toolbox/che-toolbox/eos"
	"github.com/ChE-Toolbox/che-toolbox/equil"
	"github.com/cpmech/gosl/io"
)

// ReportZ renders a Z-factor / fugacity result
func ReportZ(res *eos.Result, names []string) string {
	l := io.Sf("phase: %v\n", res.Phase)
	if res.Phase == eos.PhaseTwoPhase {
		l += io.Sf("Z (liquid) = %.6f\n", res.Zliq)
		l += io.Sf("Z (vapour) = %.6f\n", res.Zvap)
	} else {
		l += io.Sf("Z = %.6f\n", res.Zvap)
	}
	l += phiLines(res.PhiLiq, "φ (liquid)", names)
	l += phiLines(res.PhiVap, "φ (vapour)", names)
	return l
}

// ReportVap renders a vapour-pressure result; non-converged outcomes
// are labeled approximate with tolerance and iteration diagnostics
func ReportVap(res *equil.VapResult) string {
	l := io.Sf("Psat = %.6g Pa\n", res.Psat)
	if res.Status != equil.StatusConverged {
		l += io.Sf("APPROXIMATE: %v after %d iterations; residual = %.3g\n",
			res.Status, res.Iterations, res.Residual)
	} else {
		l += io.Sf("converged in %d iterations; residual = %.3g\n", res.Iterations, res.Residual)
	}
	return l
}

// ReportFlash renders a flash result
func ReportFlash(res *equil.FlashResult, names []string) string {
	l := io.Sf("status: %v\n", res.Status)
	if res.Status == equil.StatusIterLimit || res.Status == equil.StatusDiverged {
		l += io.Sf("APPROXIMATE: best estimate after %d iterations; metric = %.3g\n", res.Iterations, res.Tol)
	}
	l += io.Sf("V = %.6f   L = %.6f\n", res.V, res.L)
	l += io.Sf("%-14s %12s %12s %12s\n", "component", "x", "y", "K")
	for i := range res.X {
		name := io.Sf("comp%d", i)
		if i < len(names) {
			name = names[i]
		}
		k := 0.0
		if i < len(res.K) {
			k = res.K[i]
		}
		l += io.Sf("%-14s %12.6f %12.6f %12.6f\n", name, res.X[i], res.Y[i], k)
	}
	l += io.Sf("material-balance error = %.3g\n", res.MatBalErr)
	return l
}

// phiLines formats one fugacity-coefficient set, if present
func phiLines(phi []float64, label string, names []string) string {
	if phi == nil {
		return ""
	}
	if len(phi) == 1 {
		return io.Sf("%s = %.6f\n", label, phi[0])
	}
	l := ""
	for i, p := range phi {
		name := io.Sf("comp%d", i)
		if i < len(names) {
			name = names[i]
		}
		l += io.Sf("%s[%s] = %.6f\n", label, name, p)
	}
	return l
}

// JSON marshals any result value with indentation
func JSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
