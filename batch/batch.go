// Copyright 2026 QuGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package batch provides the public API for the batched
// vector-Jacobian-product combinator.
//
// Example:
//
//	grad := func(t *tape.Tape, idx int) ([]*tape.Tape, gradients.ColumnFn, error) {
//	    return gradients.ParamGrad(t, idx, gradients.Options{})
//	}
//	vjps, err := batch.VJP(dys, tapes, dev.Execute, grad, batch.DotReducer)
package batch

import (
	"gonum.org/v1/gonum/mat"

	internalbatch "github.com/qugrad-ml/qugrad/internal/batch"
	"github.com/qugrad-ml/qugrad/tape"
)

// ExecuteFn evaluates a batch of tapes, one result per tape in submission
// order.
type ExecuteFn = internalbatch.ExecuteFn

// GradientFn produces the gradient-tape batch and reduction for one
// trainable parameter position of a tape.
type GradientFn = internalbatch.GradientFn

// Reducer contracts one cotangent row with one tape's Jacobian and
// appends the result to the accumulated VJP list.
type Reducer = internalbatch.Reducer

// VJP computes vector-Jacobian products for a batch of tapes. Entries for
// tapes with zero trainable parameters are nil.
func VJP(dys [][]float64, tapes []*tape.Tape, execute ExecuteFn, grad GradientFn, reduce Reducer) ([][]float64, error) {
	return internalbatch.VJP(dys, tapes, execute, grad, reduce)
}

// DotReducer is the standard reducer: the VJP is dy·J.
func DotReducer(vjps [][]float64, dy []float64, jac *mat.Dense) [][]float64 {
	return internalbatch.DotReducer(vjps, dy, jac)
}
