// Copyright 2026 QuGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package qmath provides the public API for the numeric dispatch layer:
// the result type returned by executors and the array helpers the
// gradient drivers are built on.
package qmath

import (
	"gonum.org/v1/gonum/mat"

	internalqmath "github.com/qugrad-ml/qugrad/internal/qmath"
)

// Result is the raw output of executing a single tape: one row per
// measurement, in measurement order. Rows may have different lengths.
type Result = internalqmath.Result

// Flatten concatenates all rows of a result into a single row.
func Flatten(r Result) []float64 {
	return internalqmath.Flatten(r)
}

// Zeros returns an all-zero row of length n.
func Zeros(n int) []float64 {
	return internalqmath.Zeros(n)
}

// Scaled returns c*r as a new result.
func Scaled(r Result, c float64) Result {
	return internalqmath.Scaled(r, c)
}

// Add returns a+b elementwise.
func Add(a, b Result) Result {
	return internalqmath.Add(a, b)
}

// Stack assembles equal-length rows into a dense matrix.
func Stack(rows [][]float64) *mat.Dense {
	return internalqmath.Stack(rows)
}

// Transpose returns a dense copy of m transposed.
func Transpose(m *mat.Dense) *mat.Dense {
	return internalqmath.Transpose(m)
}
