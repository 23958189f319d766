// Copyright 2026 QuGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transforms provides the public API for tape compilation passes.
//
// Example:
//
//	compiled, err := transforms.Compile(t, nil, 1)
package transforms

import (
	internaltransforms "github.com/qugrad-ml/qugrad/internal/transforms"
	"github.com/qugrad-ml/qugrad/tape"
)

// TapeTransform rewrites a tape into a new tape without mutating the
// input.
type TapeTransform = internaltransforms.TapeTransform

// CancelInverses removes adjacent pairs of self-inverse gates acting on
// identical wires.
func CancelInverses(t *tape.Tape) *tape.Tape {
	return internaltransforms.CancelInverses(t)
}

// MergeRotations returns a transform that merges adjacent rotations of
// the same type on identical wires.
func MergeRotations(atol float64) TapeTransform {
	return internaltransforms.MergeRotations(atol)
}

// DefaultPipeline is the standard compilation pass list.
func DefaultPipeline() []TapeTransform {
	return internaltransforms.DefaultPipeline()
}

// Compile applies a transform pipeline to a tape numPasses times.
func Compile(t *tape.Tape, pipeline []TapeTransform, numPasses int) (*tape.Tape, error) {
	return internaltransforms.Compile(t, pipeline, numPasses)
}
