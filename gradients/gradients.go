// Copyright 2026 QuGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradients provides the public API for finite-difference
// differentiation of quantum tapes.
//
// Example:
//
//	t := tape.New()
//	t.Append(tape.RX(0.4, 0))
//	t.Measure(tape.ExpvalOf(tape.PauliZ, 0))
//
//	batch, fn, err := gradients.FiniteDiff(t, gradients.Options{Form: gradients.Center, Order: 2})
//	results, err := dev.Execute(batch)
//	jac, err := fn(results)
package gradients

import (
	internalgradients "github.com/qugrad-ml/qugrad/internal/gradients"
	"github.com/qugrad-ml/qugrad/tape"
)

// Form selects the finite-difference stencil shape.
type Form = internalgradients.Form

// Supported stencil forms.
const (
	Forward  = internalgradients.Forward
	Backward = internalgradients.Backward
	Center   = internalgradients.Center
)

// Stencil is a finite-difference rule: matched coefficient/shift pairs
// approximating a derivative.
type Stencil = internalgradients.Stencil

// Options configures the finite-difference driver.
type Options = internalgradients.Options

// ProcessFn reduces raw batch results into a Jacobian.
type ProcessFn = internalgradients.ProcessFn

// ColumnFn reduces raw batch results into one flat gradient column.
type ColumnFn = internalgradients.ColumnFn

// ErrInvalidConfig is returned for configurations that cannot produce a
// stencil.
var ErrInvalidConfig = internalgradients.ErrInvalidConfig

// GenerateStencil solves for the finite-difference rule approximating the
// n-th derivative to the given accuracy order.
func GenerateStencil(n, order int, form Form) (Stencil, error) {
	return internalgradients.GenerateStencil(n, order, form)
}

// GenerateShiftedTapes returns one copy of t per shift value, with the
// idx-th trainable parameter offset by the corresponding shift.
func GenerateShiftedTapes(t *tape.Tape, idx int, shifts []float64) []*tape.Tape {
	return internalgradients.GenerateShiftedTapes(t, idx, shifts)
}

// FiniteDiff generates the shifted-tape batch and post-processing
// function needed to compute the finite-difference Jacobian of a tape.
func FiniteDiff(t *tape.Tape, opts Options) ([]*tape.Tape, ProcessFn, error) {
	return internalgradients.FiniteDiff(t, opts)
}

// ParamGrad is the single-parameter strategy form of FiniteDiff, shaped
// for the batched VJP combinator.
func ParamGrad(t *tape.Tape, idx int, opts Options) ([]*tape.Tape, ColumnFn, error) {
	return internalgradients.ParamGrad(t, idx, opts)
}
