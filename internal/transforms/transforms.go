// Package transforms implements tape compilation passes: peephole
// rewrites that shrink a tape's gate list without changing the program it
// describes.
//
// Passes operate on list-adjacent gates only; gates are never commuted
// past each other, so a Barrier (or any intervening gate) blocks
// cancellation and merging across it.
package transforms

import (
	"fmt"
	"math"

	"github.com/qugrad-ml/qugrad/internal/tape"
)

// TapeTransform rewrites a tape into a new tape. Transforms never mutate
// their input; the returned tape has all parameters trainable.
type TapeTransform func(*tape.Tape) *tape.Tape

// CancelInverses removes adjacent pairs of self-inverse gates acting on
// identical wires. Cancellation cascades: after a pair is removed, the
// gates on either side become adjacent and are reconsidered.
func CancelInverses(t *tape.Tape) *tape.Tape {
	var kept []tape.Gate
	for _, g := range t.Gates() {
		spec, _ := tape.Lookup(g.Name)
		if spec.SelfInverse && len(kept) > 0 {
			last := kept[len(kept)-1]
			if last.Name == g.Name && equalWires(last.Wires, g.Wires) {
				kept = kept[:len(kept)-1]
				continue
			}
		}
		kept = append(kept, g)
	}
	return rebuild(t, kept)
}

// MergeRotations returns a transform that merges adjacent rotations of
// the same type on identical wires by summing their angles. Merged
// rotations whose total angle falls below atol are dropped entirely.
func MergeRotations(atol float64) TapeTransform {
	return func(t *tape.Tape) *tape.Tape {
		var kept []tape.Gate
		for _, g := range t.Gates() {
			spec, _ := tape.Lookup(g.Name)
			if spec.Rotation && len(kept) > 0 {
				last := &kept[len(kept)-1]
				if last.Name == g.Name && equalWires(last.Wires, g.Wires) {
					last.Params[0] += g.Params[0]
					if math.Abs(last.Params[0]) < atol {
						kept = kept[:len(kept)-1]
					}
					continue
				}
			}
			kept = append(kept, g)
		}
		return rebuild(t, kept)
	}
}

// DefaultPipeline is the standard compilation pass list.
func DefaultPipeline() []TapeTransform {
	return []TapeTransform{CancelInverses, MergeRotations(1e-8)}
}

// Compile applies a transform pipeline to a tape numPasses times. A nil
// pipeline selects DefaultPipeline. Applying the pipeline once may leave
// further opportunities (a merge can expose a cancellation), so more than
// one pass can improve the result.
func Compile(t *tape.Tape, pipeline []TapeTransform, numPasses int) (*tape.Tape, error) {
	if numPasses < 1 {
		return nil, fmt.Errorf("transforms: number of passes must be at least 1, got %d", numPasses)
	}
	if pipeline == nil {
		pipeline = DefaultPipeline()
	}
	out := t
	for pass := 0; pass < numPasses; pass++ {
		for _, tr := range pipeline {
			out = tr(out)
		}
	}
	if out == t {
		// No pipeline entries: still honor the no-mutation contract.
		out = t.Copy()
	}
	return out, nil
}

func equalWires(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func rebuild(t *tape.Tape, gates []tape.Gate) *tape.Tape {
	out := tape.New()
	out.Append(gates...)
	out.Measure(t.Measurements()...)
	return out
}
