// Package qmath is the numeric dispatch layer shared by the gradient
// drivers. It owns the small set of array operations the drivers need
// (stacking, flattening, scaled accumulation) so that none of them commit
// to a concrete result layout beyond "rows of float64".
package qmath

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Result is the raw output of executing a single tape: one row per
// measurement, in measurement order. Rows may have different lengths
// (an expectation value next to a probability distribution), so a Result
// is ragged in general.
type Result [][]float64

// Copy returns a deep copy of the result.
func (r Result) Copy() Result {
	out := make(Result, len(r))
	for i, row := range r {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Flatten concatenates all rows of a result into a single row.
//
// This is how ragged per-measurement outputs are folded into one gradient
// row per parameter. The behavior is provisional: it mirrors how devices
// currently stack heterogeneous measurement arrays, and may become a
// structured (per-measurement) representation later.
func Flatten(r Result) []float64 {
	n := 0
	for _, row := range r {
		n += len(row)
	}
	out := make([]float64, 0, n)
	for _, row := range r {
		out = append(out, row...)
	}
	return out
}

// Zeros returns an all-zero row of length n.
func Zeros(n int) []float64 {
	return make([]float64, n)
}

// Scaled returns c*r as a new result.
func Scaled(r Result, c float64) Result {
	out := make(Result, len(r))
	for i, row := range r {
		s := make([]float64, len(row))
		for j, v := range row {
			s[j] = c * v
		}
		out[i] = s
	}
	return out
}

// Add returns a+b elementwise. The two results must have identical
// structure; a mismatch means the executor broke the batch contract.
func Add(a, b Result) Result {
	if len(a) != len(b) {
		panic(fmt.Sprintf("qmath: result row count mismatch: %d vs %d", len(a), len(b)))
	}
	out := make(Result, len(a))
	for i := range a {
		if len(a[i]) != len(b[i]) {
			panic(fmt.Sprintf("qmath: result row %d length mismatch: %d vs %d", i, len(a[i]), len(b[i])))
		}
		row := make([]float64, len(a[i]))
		for j := range a[i] {
			row[j] = a[i][j] + b[i][j]
		}
		out[i] = row
	}
	return out
}

// Stack assembles equal-length rows into a dense (len(rows), len(rows[0]))
// matrix. Ragged input panics; rows are expected to be flattened first.
func Stack(rows [][]float64) *mat.Dense {
	if len(rows) == 0 {
		panic("qmath: cannot stack zero rows")
	}
	cols := len(rows[0])
	if cols == 0 {
		panic("qmath: cannot stack zero-length rows")
	}
	m := mat.NewDense(len(rows), cols, nil)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("qmath: ragged stack: row %d has %d entries, want %d", i, len(row), cols))
		}
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m
}

// Transpose returns a dense copy of m transposed.
func Transpose(m *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(c, r, nil)
	out.Copy(m.T())
	return out
}
