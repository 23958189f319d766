package qmath

import (
	"math"
	"testing"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   Result
		want []float64
	}{
		{"empty", Result{}, []float64{}},
		{"single row", Result{{1, 2}}, []float64{1, 2}},
		{"ragged rows", Result{{1}, {2, 3, 4}, {5}}, []float64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		got := Flatten(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("%s: Flatten() = %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: Flatten()[%d] = %v, want %v", tt.name, i, got[i], tt.want[i])
			}
		}
	}
}

func TestScaledAndAdd(t *testing.T) {
	a := Result{{1, 2}, {3}}
	b := Result{{10, 20}, {30}}

	sum := Add(Scaled(a, 2), b)
	want := Result{{12, 24}, {36}}
	for i := range want {
		for j := range want[i] {
			if math.Abs(sum[i][j]-want[i][j]) > 1e-12 {
				t.Errorf("sum[%d][%d] = %v, want %v", i, j, sum[i][j], want[i][j])
			}
		}
	}

	// Inputs untouched.
	if a[0][0] != 1 || b[0][0] != 10 {
		t.Error("Scaled/Add must not mutate their inputs")
	}
}

func TestAdd_MismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Add with mismatched structure should panic")
		}
	}()
	Add(Result{{1}}, Result{{1, 2}})
}

func TestStackTranspose(t *testing.T) {
	m := Stack([][]float64{{1, 2, 3}, {4, 5, 6}})
	r, c := m.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("Stack dims = (%d, %d), want (2, 3)", r, c)
	}

	mt := Transpose(m)
	r, c = mt.Dims()
	if r != 3 || c != 2 {
		t.Fatalf("Transpose dims = (%d, %d), want (3, 2)", r, c)
	}
	if mt.At(2, 1) != 6 || mt.At(0, 0) != 1 {
		t.Errorf("Transpose values wrong: %v", mt)
	}
}

func TestStack_RaggedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Stack with ragged rows should panic")
		}
	}()
	Stack([][]float64{{1, 2}, {3}})
}

func TestZeros(t *testing.T) {
	z := Zeros(4)
	if len(z) != 4 {
		t.Fatalf("Zeros(4) length = %d", len(z))
	}
	for i, v := range z {
		if v != 0 {
			t.Errorf("Zeros(4)[%d] = %v", i, v)
		}
	}
}

func TestResultCopy(t *testing.T) {
	a := Result{{1, 2}}
	b := a.Copy()
	b[0][0] = 99
	if a[0][0] != 1 {
		t.Error("Copy must be deep")
	}
}
