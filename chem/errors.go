// Copyright 2017 The ChE-Toolbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import "github.com/cpmech/gosl/io"

// The engine distinguishes three hard failure kinds. They carry no
// payload beyond the message; callers match on the type with errors.As.
// Soft non-convergence is NOT an error kind: it is returned as a status
// inside the result value (see package equil).

// InvalidInputError flags malformed input: non-positive T or P, mole
// fractions that do not sum to one, non-physical critical properties.
// Detected before any numeric work begins; never silently corrected.
type InvalidInputError struct {
	Msg string
}

// NoRootError flags that the cubic solver found zero positive real
// roots: the EOS parameters or the input state are unphysical.
type NoRootError struct {
	Msg string
}

// DomainError flags a request outside the model's domain of definition;
// e.g. vapour pressure at or above the critical temperature.
type DomainError struct {
	Msg string
}

func (e *InvalidInputError) Error() string { return "invalid input: " + e.Msg }
func (e *NoRootError) Error() string { return "no physical root: " + e.Msg }
func (e *DomainError) Error() string { return "domain violation: " + e.Msg }

// ErrInvalid creates a formatted InvalidInputError
func ErrInvalid(msg string, prm ...interface{}) error {
	return &InvalidInputError{Msg: io.Sf(msg, prm...)}
}

// ErrNoRoot creates a formatted NoRootError
func ErrNoRoot(msg string, prm ...interface{}) error {
	return &NoRootError{Msg: io.Sf(msg, prm...)}
}

// ErrDomain creates a formatted DomainError
func ErrDomain(msg string, prm ...interface{}) error {
	return &DomainError{Msg: io.Sf(msg, prm...)}
}
