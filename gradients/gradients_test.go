// Copyright 2026 QuGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gradients_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qugrad-ml/qugrad/batch"
	"github.com/qugrad-ml/qugrad/device"
	"github.com/qugrad-ml/qugrad/gradients"
	"github.com/qugrad-ml/qugrad/tape"
	"github.com/qugrad-ml/qugrad/transforms"
)

// TestEndToEnd walks the whole public surface: build a tape, compile it,
// differentiate it, execute the batch, and contract the Jacobian into a
// VJP.
func TestEndToEnd(t *testing.T) {
	a, b := 0.543, -0.654

	tp := tape.New()
	tp.Append(
		tape.Hadamard(0),
		tape.Hadamard(0), // cancels with the one above
		tape.RX(a, 0),
		tape.RY(b, 1),
		tape.CNOT(0, 1),
	)
	tp.Measure(tape.ExpvalOf(tape.PauliZ, 0), tape.ExpvalOf(tape.PauliZ, 1))

	compiled, err := transforms.Compile(tp, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, compiled.NumGates(), "HH pair compiled away")

	dev, err := device.New(2)
	require.NoError(t, err)

	opts := gradients.Options{Form: gradients.Center, Order: 2, H: 1e-5}
	tapes, fn, err := gradients.FiniteDiff(compiled, opts)
	require.NoError(t, err)

	results, err := dev.Execute(tapes)
	require.NoError(t, err)

	jac, err := fn(results)
	require.NoError(t, err)

	rows, cols := jac.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)

	// <Z0> = cos(a), <Z1> = cos(a) cos(b)
	assert.InDelta(t, -math.Sin(a), jac.At(0, 0), 1e-7)
	assert.InDelta(t, 0.0, jac.At(0, 1), 1e-7)
	assert.InDelta(t, -math.Sin(a)*math.Cos(b), jac.At(1, 0), 1e-7)
	assert.InDelta(t, -math.Cos(a)*math.Sin(b), jac.At(1, 1), 1e-7)

	// The same pipeline through the VJP combinator, contracting with the
	// cotangent (1, 1) sums the Jacobian rows.
	grad := func(t *tape.Tape, idx int) ([]*tape.Tape, gradients.ColumnFn, error) {
		return gradients.ParamGrad(t, idx, opts)
	}
	vjps, err := batch.VJP([][]float64{{1, 1}}, []*tape.Tape{compiled}, dev.Execute, grad, batch.DotReducer)
	require.NoError(t, err)
	require.Len(t, vjps, 1)
	require.Len(t, vjps[0], 2)
	assert.InDelta(t, jac.At(0, 0)+jac.At(1, 0), vjps[0][0], 1e-9)
	assert.InDelta(t, jac.At(0, 1)+jac.At(1, 1), vjps[0][1], 1e-9)
}

func TestGenerateStencil_PublicSurface(t *testing.T) {
	s, err := gradients.GenerateStencil(1, 2, gradients.Center)
	require.NoError(t, err)
	require.Len(t, s.Coeffs, 2)
	assert.InDelta(t, -0.5, s.Coeffs[0], 1e-12)
	assert.InDelta(t, 0.5, s.Coeffs[1], 1e-12)
}
