package gradients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qugrad-ml/qugrad/internal/tape"
)

func rotationTape(a, b float64) *tape.Tape {
	t := tape.New()
	t.Append(tape.RX(a, 0), tape.RY(b, 0))
	t.Measure(tape.ExpvalOf(tape.PauliZ, 0))
	return t
}

func TestGenerateShiftedTapes(t *testing.T) {
	base := rotationTape(0.3, -0.2)
	shifts := []float64{0.1, -0.1, 0.5}

	tapes := GenerateShiftedTapes(base, 1, shifts)
	require.Len(t, tapes, len(shifts))

	for i, st := range tapes {
		params := st.GetParameters(true)
		assert.InDelta(t, 0.3, params[0], 1e-12, "untargeted parameter must be unchanged")
		assert.InDelta(t, -0.2+shifts[i], params[1], 1e-12, "targeted parameter must be shifted")
		assert.NotEqual(t, base.ID(), st.ID(), "shifted tapes must be independent copies")
		assert.Equal(t, base.NumGates(), st.NumGates())
	}

	// Base tape untouched.
	assert.Equal(t, []float64{0.3, -0.2}, base.GetParameters(true))
}

func TestGenerateShiftedTapes_CopiesAreIndependent(t *testing.T) {
	base := rotationTape(1.0, 2.0)
	tapes := GenerateShiftedTapes(base, 0, []float64{0.5})
	require.Len(t, tapes, 1)

	require.NoError(t, tapes[0].SetParameters([]float64{9, 9}, true))
	assert.Equal(t, []float64{1.0, 2.0}, base.GetParameters(true), "mutating a copy must not touch the base")
}

func TestGenerateShiftedTapes_EmptyShifts(t *testing.T) {
	base := rotationTape(0.1, 0.2)
	tapes := GenerateShiftedTapes(base, 0, nil)
	assert.Empty(t, tapes)
}

func TestGenerateShiftedTapes_IndexOutOfRange(t *testing.T) {
	base := rotationTape(0.1, 0.2)
	assert.Panics(t, func() {
		GenerateShiftedTapes(base, 2, []float64{0.1})
	})
}
