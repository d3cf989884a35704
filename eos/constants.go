// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import "github.com/ChE-Toolbox/che-toolbox/cubic"

// Constants collects the gas constant, default tolerances and iteration
// caps. An explicit value is passed into every entry point so tests can
// exercise alternate tolerances without shared mutable state.
type Constants struct {
	R          float64        // universal gas constant [J/(mol・K)]
	Strategy   cubic.Strategy // cubic root-finding strategy
	TolVap     float64        // vapour-pressure residual tolerance
	MaxItVap   int            // vapour-pressure iteration cap
	TolFlash   float64        // flash K-value stability tolerance
	MaxItFlash int            // flash iteration cap
}

// DefaultConstants returns the published defaults
func DefaultConstants() *Constants {
	return &Constants{
		R:          8.314462618, // CODATA 2018
		Strategy:   cubic.Hybrid,
		TolVap:     1e-6,
		MaxItVap:   100,
		TolFlash:   1e-6,
		MaxItFlash: 50,
	}
}
