package gradients

import (
	"fmt"

	"github.com/qugrad-ml/qugrad/internal/tape"
)

// GenerateShiftedTapes returns one independently mutable copy of t per
// shift value, with the idx-th trainable parameter offset by the
// corresponding shift. The base tape is never modified.
//
// idx is a position in the trainable parameter list, matching the
// ordering of Tape.GetParameters(true).
func GenerateShiftedTapes(t *tape.Tape, idx int, shifts []float64) []*tape.Tape {
	params := t.GetParameters(true)
	if idx < 0 || idx >= len(params) {
		panic(fmt.Sprintf("gradients: trainable parameter index %d out of range [0, %d)", idx, len(params)))
	}

	tapes := make([]*tape.Tape, len(shifts))
	for i, s := range shifts {
		shifted := t.Copy()
		p := append([]float64(nil), params...)
		p[idx] += s
		if err := shifted.SetParameters(p, true); err != nil {
			panic(fmt.Sprintf("gradients: %v", err))
		}
		tapes[i] = shifted
	}
	return tapes
}
