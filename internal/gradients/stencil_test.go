package gradients

import (
	"errors"
	"math"
	"testing"
)

func assertFloatsEqual(t *testing.T, expected, actual []float64, tol float64, msg string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("%s: expected %v, got %v", msg, expected, actual)
	}
	for i := range expected {
		if math.Abs(expected[i]-actual[i]) > tol {
			t.Errorf("%s: entry %d: expected %v, got %v", msg, i, expected[i], actual[i])
		}
	}
}

func TestGenerateStencil_KnownRules(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		order  int
		form   Form
		coeffs []float64
		shifts []float64
	}{
		{"first forward", 1, 1, Forward, []float64{-1, 1}, []float64{0, 1}},
		{"first backward", 1, 1, Backward, []float64{1, -1}, []float64{0, -1}},
		{"first center", 1, 2, Center, []float64{-0.5, 0.5}, []float64{-1, 1}},
		{"second center", 2, 2, Center, []float64{-2, 1, 1}, []float64{0, -1, 1}},
		{"first forward second order", 1, 2, Forward, []float64{-1.5, 2, -0.5}, []float64{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := GenerateStencil(tt.n, tt.order, tt.form)
			if err != nil {
				t.Fatalf("GenerateStencil(%d, %d, %q) failed: %v", tt.n, tt.order, tt.form, err)
			}
			assertFloatsEqual(t, tt.shifts, st.Shifts, 1e-9, "shifts")
			assertFloatsEqual(t, tt.coeffs, st.Coeffs, 1e-9, "coefficients")
		})
	}
}

// The defining property of a stencil: its coefficients reproduce n! on the
// n-th power of the shifts and annihilate every other power below the
// stencil size.
func TestGenerateStencil_VandermondeExactness(t *testing.T) {
	cases := []struct {
		n, order int
		form     Form
	}{
		{1, 1, Forward}, {1, 2, Forward}, {1, 3, Forward},
		{2, 1, Forward}, {2, 2, Forward}, {3, 2, Forward},
		{1, 1, Backward}, {2, 2, Backward}, {3, 1, Backward},
		{1, 2, Center}, {1, 4, Center}, {2, 2, Center}, {2, 4, Center}, {3, 2, Center},
	}

	for _, tc := range cases {
		st, err := GenerateStencil(tc.n, tc.order, tc.form)
		if err != nil {
			t.Fatalf("GenerateStencil(%d, %d, %q) failed: %v", tc.n, tc.order, tc.form, err)
		}
		for k := 0; k < len(st.Shifts); k++ {
			sum := 0.0
			for i, s := range st.Shifts {
				sum += st.Coeffs[i] * math.Pow(s, float64(k))
			}
			want := 0.0
			if k == tc.n {
				want = factorial(tc.n)
			}
			if math.Abs(sum-want) > 1e-6 {
				t.Errorf("(n=%d, order=%d, form=%q): sum over shift^%d = %v, want %v",
					tc.n, tc.order, tc.form, k, sum, want)
			}
		}
	}
}

func TestGenerateStencil_SortedByShiftMagnitude(t *testing.T) {
	st, err := GenerateStencil(2, 4, Center)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(st.Shifts); i++ {
		if math.Abs(st.Shifts[i-1]) > math.Abs(st.Shifts[i]) {
			t.Fatalf("shifts not sorted by magnitude: %v", st.Shifts)
		}
	}
	if st.Shifts[0] != 0 {
		t.Fatalf("even-derivative center stencil should retain the zero shift at index 0, got %v", st.Shifts)
	}
}

func TestGenerateStencil_InvalidConfig(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		order int
		form  Form
	}{
		{"zero derivative order", 0, 1, Forward},
		{"negative derivative order", -1, 1, Forward},
		{"zero accuracy order", 1, 0, Forward},
		{"odd order center", 1, 1, Center},
		{"unknown form", 1, 1, Form("sideways")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateStencil(tt.n, tt.order, tt.form)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("GenerateStencil(%d, %d, %q): expected ErrInvalidConfig, got %v",
					tt.n, tt.order, tt.form, err)
			}
		})
	}
}
