// Package gradients computes numeric gradients of quantum tapes via
// finite-difference approximation.
//
// The entry point is FiniteDiff: given a tape, it returns a batch of
// shifted tapes to execute plus a post-processing function that reduces
// the raw batch results into a Jacobian. Execution itself is the caller's
// concern; any executor that evaluates the batch in order can be used.
package gradients

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/qugrad-ml/qugrad/internal/qmath"
	"github.com/qugrad-ml/qugrad/internal/tape"
)

// Options configures the finite-difference driver. The zero value selects
// the defaults: a first-order forward difference of the first derivative
// with step size 1e-7, over all trainable parameters.
type Options struct {
	// Argnum selects trainable parameter positions to differentiate.
	// Nil means all trainable parameters.
	Argnum []int
	// H is the finite-difference step size.
	H float64
	// Order is the accuracy order of the stencil.
	Order int
	// N is the derivative order.
	N int
	// Form is the stencil form: forward, backward, or center.
	Form Form
}

func (o Options) withDefaults() Options {
	if o.H == 0 {
		o.H = 1e-7
	}
	if o.Order == 0 {
		o.Order = 1
	}
	if o.N == 0 {
		o.N = 1
	}
	if o.Form == "" {
		o.Form = Forward
	}
	return o
}

// ProcessFn reduces the ordered raw results of executing a gradient-tape
// batch into a Jacobian of shape (outputDim, numSelectedParams).
//
// Ragged per-measurement results (e.g. an expectation value next to a
// probability distribution) are flattened by concatenation into a single
// row per parameter. This mirrors current device behavior for mixed
// measurements and is provisional, not a guaranteed contract.
type ProcessFn func(results []qmath.Result) (*mat.Dense, error)

// ColumnFn is the per-parameter form of ProcessFn, producing one flat
// gradient column. It is the shape consumed by the batched VJP combinator.
type ColumnFn func(results []qmath.Result) ([]float64, error)

// FiniteDiff generates the shifted-tape batch and post-processing function
// needed to compute the finite-difference Jacobian of a tape.
//
// If the stencil contains a zero shift, the unshifted tape is evaluated
// once at the head of the batch and shared across all parameters instead
// of being re-evaluated per parameter.
//
// A tape with no trainable parameters, or whose trainable parameters all
// have a known-zero gradient, is a degenerate success: the batch is empty
// and the post-processing function returns an all-zero Jacobian.
func FiniteDiff(t *tape.Tape, opts Options) ([]*tape.Tape, ProcessFn, error) {
	opts = opts.withDefaults()

	methods, err := t.GradMethods("numeric")
	if err != nil {
		return nil, nil, err
	}

	outputDim := t.OutputDim()
	numTrainable := t.NumTrainable()

	allZero := true
	for _, m := range methods {
		if m != tape.MethodZero {
			allZero = false
			break
		}
	}
	if numTrainable == 0 || allZero {
		fn := func([]qmath.Result) (*mat.Dense, error) {
			return zeroJacobian(outputDim, numTrainable), nil
		}
		return nil, fn, nil
	}

	st, err := GenerateStencil(opts.N, opts.Order, opts.Form)
	if err != nil {
		return nil, nil, err
	}
	coeffs, shifts := st.Coeffs, st.Shifts

	var gradientTapes []*tape.Tape
	var c0 float64
	hasC0 := false
	if len(shifts) > 0 && shifts[0] == 0 {
		// The zero-shift term reuses one unperturbed evaluation for
		// every parameter.
		c0 = coeffs[0]
		hasC0 = true
		gradientTapes = append(gradientTapes, t.Copy())
		coeffs = coeffs[1:]
		shifts = shifts[1:]
	}

	chosen, err := t.ChooseParams(methods, opts.Argnum)
	if err != nil {
		return nil, nil, err
	}

	scaled := make([]float64, len(shifts))
	for i, s := range shifts {
		scaled[i] = s * opts.H
	}

	shapes := make([]int, 0, len(chosen))
	for _, pm := range chosen {
		if pm.Method == tape.MethodZero {
			shapes = append(shapes, 0)
			continue
		}
		sub := GenerateShiftedTapes(t, pm.Index, scaled)
		gradientTapes = append(gradientTapes, sub...)
		shapes = append(shapes, len(sub))
	}

	state := reduceState{
		shapes:    shapes,
		coeffs:    coeffs,
		c0:        c0,
		hasC0:     hasC0,
		h:         opts.H,
		n:         opts.N,
		outputDim: outputDim,
	}
	fn := func(results []qmath.Result) (*mat.Dense, error) {
		return reduceResults(state, results)
	}
	return gradientTapes, fn, nil
}

// ParamGrad is the single-parameter strategy form of FiniteDiff: it
// differentiates one trainable parameter position and returns its flat
// gradient column. This is the gradient function contract the batched
// VJP combinator consumes.
func ParamGrad(t *tape.Tape, idx int, opts Options) ([]*tape.Tape, ColumnFn, error) {
	opts.Argnum = []int{idx}
	tapes, fn, err := FiniteDiff(t, opts)
	if err != nil {
		return nil, nil, err
	}
	outputDim := t.OutputDim()
	col := func(results []qmath.Result) ([]float64, error) {
		jac, err := fn(results)
		if err != nil {
			return nil, err
		}
		r, c := jac.Dims()
		if r == 0 || c == 0 {
			return qmath.Zeros(outputDim), nil
		}
		if c != 1 {
			return nil, fmt.Errorf("gradients: expected a single-column jacobian, got %d columns", c)
		}
		return mat.Col(nil, 0, jac), nil
	}
	return tapes, col, nil
}

// reduceState carries everything the batch reduction needs. It replaces
// closure-captured mutable cursors: the cursor lives on the stack of each
// reduceResults call, so repeated invocations cannot alias state.
type reduceState struct {
	shapes    []int
	coeffs    []float64
	c0        float64
	hasC0     bool
	h         float64
	n         int
	outputDim int
}

func reduceResults(st reduceState, results []qmath.Result) (*mat.Dense, error) {
	expected := 0
	if st.hasC0 {
		expected = 1
	}
	for _, s := range st.shapes {
		expected += s
	}
	if len(results) != expected {
		return nil, fmt.Errorf("gradients: expected %d batch results, got %d", expected, len(results))
	}

	cursor := 0
	if st.hasC0 {
		cursor = 1
	}
	hn := math.Pow(st.h, float64(st.n))

	rows := make([][]float64, 0, len(st.shapes))
	for _, s := range st.shapes {
		if s == 0 {
			rows = append(rows, qmath.Zeros(st.outputDim))
			continue
		}
		sub := results[cursor : cursor+s]
		cursor += s

		var acc qmath.Result
		for i, r := range sub {
			term := qmath.Scaled(r, st.coeffs[i])
			if acc == nil {
				acc = term
			} else {
				acc = qmath.Add(acc, term)
			}
		}
		if st.hasC0 {
			acc = qmath.Add(acc, qmath.Scaled(results[0], st.c0))
		}
		rows = append(rows, qmath.Flatten(qmath.Scaled(acc, 1/hn)))
	}

	return qmath.Transpose(qmath.Stack(rows)), nil
}

// zeroJacobian builds the degenerate all-zero Jacobian. With zero
// trainable parameters there is no valid dense shape, so an empty matrix
// is returned.
func zeroJacobian(outputDim, numTrainable int) *mat.Dense {
	if outputDim == 0 || numTrainable == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(outputDim, numTrainable, nil)
}
