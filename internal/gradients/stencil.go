package gradients

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidConfig is returned for finite-difference configurations that
// cannot produce a stencil: non-positive derivative or accuracy orders,
// unknown forms, odd-order centered differences, or an (n, order, form)
// combination whose Vandermonde system is singular.
var ErrInvalidConfig = errors.New("invalid finite-difference configuration")

// Form selects the finite-difference stencil shape.
type Form string

// Supported stencil forms.
const (
	Forward  Form = "forward"
	Backward Form = "backward"
	Center   Form = "center"
)

// Stencil is a finite-difference rule: matched coefficient/shift pairs
// approximating a derivative. Columns are sorted by ascending |shift|, so
// a zero shift, if present, sits at index 0.
type Stencil struct {
	Coeffs []float64
	Shifts []float64
}

// Coefficients below this magnitude are treated as exact zeros.
const coeffEps = 1e-10

// GenerateStencil solves for the finite-difference rule approximating the
// n-th derivative to the given accuracy order. The result is a pure
// function of (n, order, form).
//
// The shift set is built from the point count the (n, order) pair
// requires; the coefficients solve the Vandermonde system A·c = b with
// A[i][j] = shift[j]^i and b zero except b[n] = n!.
func GenerateStencil(n, order int, form Form) (Stencil, error) {
	if n < 1 {
		return Stencil{}, fmt.Errorf("%w: derivative order n must be a positive integer, got %d", ErrInvalidConfig, n)
	}
	if order < 1 {
		return Stencil{}, fmt.Errorf("%w: accuracy order must be a positive integer, got %d", ErrInvalidConfig, order)
	}

	basePoints := order + 2*((n+1)/2) - 1
	numPoints := basePoints
	if n%2 == 0 {
		numPoints++
	}

	var shifts []float64
	switch form {
	case Forward:
		for i := 0; i < numPoints; i++ {
			shifts = append(shifts, float64(i))
		}
	case Backward:
		for i := -(numPoints - 1); i <= 0; i++ {
			shifts = append(shifts, float64(i))
		}
	case Center:
		if order%2 != 0 {
			return Stencil{}, fmt.Errorf("%w: centered finite difference requires an even order, got %d", ErrInvalidConfig, order)
		}
		half := basePoints / 2
		for i := -half; i <= half; i++ {
			shifts = append(shifts, float64(i))
		}
	default:
		return Stencil{}, fmt.Errorf("%w: unknown form %q, must be one of %q, %q, %q",
			ErrInvalidConfig, form, Forward, Backward, Center)
	}

	size := len(shifts)
	if n >= size {
		return Stencil{}, fmt.Errorf("%w: %d stencil points cannot resolve derivative order %d", ErrInvalidConfig, size, n)
	}

	// Vandermonde matrix in the shifts, one row per power.
	a := mat.NewDense(size, size, nil)
	for j, s := range shifts {
		v := 1.0
		for i := 0; i < size; i++ {
			a.Set(i, j, v)
			v *= s
		}
	}
	b := mat.NewVecDense(size, nil)
	b.SetVec(n, factorial(n))

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return Stencil{}, fmt.Errorf("%w: singular stencil system for (n=%d, order=%d, form=%q)",
			ErrInvalidConfig, n, order, form)
	}

	coeffs := make([]float64, size)
	for i := range coeffs {
		c := x.AtVec(i)
		if math.Abs(c) < coeffEps {
			c = 0
		}
		coeffs[i] = c
	}

	// Drop all-zero columns, then order by ascending shift magnitude.
	st := Stencil{}
	for i := range coeffs {
		if coeffs[i] == 0 && shifts[i] == 0 {
			continue
		}
		st.Coeffs = append(st.Coeffs, coeffs[i])
		st.Shifts = append(st.Shifts, shifts[i])
	}
	idx := make([]int, len(st.Shifts))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return math.Abs(st.Shifts[idx[i]]) < math.Abs(st.Shifts[idx[j]])
	})
	sorted := Stencil{
		Coeffs: make([]float64, len(idx)),
		Shifts: make([]float64, len(idx)),
	}
	for i, k := range idx {
		sorted.Coeffs[i] = st.Coeffs[k]
		sorted.Shifts[i] = st.Shifts[k]
	}
	return sorted, nil
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
