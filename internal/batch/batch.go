// Package batch implements the batched vector-Jacobian-product combinator
// used by autodiff-framework bridges.
//
// Given a batch of tapes and upstream cotangents, the combinator applies a
// differentiation strategy per (tape, parameter) pair, flattens every
// generated gradient tape into a single executor call, then slices the
// results back apart and contracts each tape's Jacobian against its
// cotangent.
package batch

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/qugrad-ml/qugrad/internal/gradients"
	"github.com/qugrad-ml/qugrad/internal/qmath"
	"github.com/qugrad-ml/qugrad/internal/tape"
)

// ExecuteFn evaluates a batch of tapes and returns one result per tape,
// in submission order. This is the single blocking call of a VJP
// computation; failures propagate unchanged to the caller.
type ExecuteFn func(tapes []*tape.Tape) ([]qmath.Result, error)

// GradientFn produces the gradient-tape batch and reduction for one
// trainable parameter position of a tape. gradients.ParamGrad (wrapped
// with options) is the canonical implementation, but any compatible
// strategy can be substituted.
type GradientFn func(t *tape.Tape, idx int) ([]*tape.Tape, gradients.ColumnFn, error)

// Reducer appends the contraction of one cotangent row with one tape's
// Jacobian to the accumulated VJP list. The contraction itself is the
// reducer's responsibility.
type Reducer func(vjps [][]float64, dy []float64, jac *mat.Dense) [][]float64

// DotReducer is the standard reducer: the VJP is dy·J, a row vector with
// one entry per trainable parameter.
func DotReducer(vjps [][]float64, dy []float64, jac *mat.Dense) [][]float64 {
	r, _ := jac.Dims()
	if len(dy) != r {
		panic(fmt.Sprintf("batch: cotangent length %d does not match jacobian rows %d", len(dy), r))
	}
	var out mat.Dense
	out.Mul(mat.NewDense(1, r, append([]float64(nil), dy...)), jac)
	return append(vjps, mat.Row(nil, 0, &out))
}

// VJP computes vector-Jacobian products for a batch of tapes.
//
// dys holds one flattened cotangent row per tape, positionally matching
// tapes. The returned slice has one entry per tape in the same order; a
// tape with zero trainable parameters yields a nil entry.
//
// All gradient tapes across every (tape, parameter) pair are concatenated
// and executed exactly once.
func VJP(dys [][]float64, tapes []*tape.Tape, execute ExecuteFn, grad GradientFn, reduce Reducer) ([][]float64, error) {
	if len(dys) != len(tapes) {
		return nil, fmt.Errorf("batch: %d cotangents for %d tapes", len(dys), len(tapes))
	}

	// reshapeInfo records, per (tape, parameter) pair in iteration order,
	// how many gradient tapes that pair contributed to the flat batch.
	var reshapeInfo []int
	var gradientTapes []*tape.Tape
	columnFns := make([][]gradients.ColumnFn, len(tapes))

	for ti, t := range tapes {
		for idx := 0; idx < t.NumTrainable(); idx++ {
			gTapes, fn, err := grad(t, idx)
			if err != nil {
				return nil, err
			}
			reshapeInfo = append(reshapeInfo, len(gTapes))
			gradientTapes = append(gradientTapes, gTapes...)
			columnFns[ti] = append(columnFns[ti], fn)
		}
	}

	results, err := execute(gradientTapes)
	if err != nil {
		return nil, err
	}
	if len(results) != len(gradientTapes) {
		return nil, fmt.Errorf("batch: executor returned %d results for %d tapes", len(results), len(gradientTapes))
	}

	vjps := make([][]float64, 0, len(tapes))
	start := 0
	pair := 0 // cursor into reshapeInfo

	for ti, t := range tapes {
		if t.NumTrainable() == 0 {
			vjps = append(vjps, nil)
			continue
		}

		cols := make([][]float64, 0, t.NumTrainable())
		for _, fn := range columnFns[ti] {
			resLen := reshapeInfo[pair]
			pair++
			sub := results[start : start+resLen]
			start += resLen

			col, err := fn(sub)
			if err != nil {
				return nil, err
			}
			cols = append(cols, col)
		}

		// Columns stack to (numParams, outputDim); transpose to the
		// canonical (outputDim, numParams) layout before contraction.
		jac := qmath.Transpose(qmath.Stack(cols))
		vjps = reduce(vjps, dys[ti], jac)
	}

	return vjps, nil
}
