package device

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qugrad-ml/qugrad/internal/tape"
)

// Wire 0 is the most significant bit of the basis index, so probabilities
// over wires [0, 1] come out in |00>, |01>, |10>, |11> order.
func (s *Simulator) wireMask(wire int) int {
	return 1 << (s.numWires - 1 - wire)
}

func (s *Simulator) applyGate(state []complex128, g tape.Gate) error {
	spec, ok := tape.Lookup(g.Name)
	if !ok {
		return fmt.Errorf("unknown gate %q", g.Name)
	}
	if spec.Meta {
		return nil
	}
	if err := s.checkWires(g); err != nil {
		return err
	}

	switch g.Name {
	case "RX":
		half := g.Params[0] / 2
		c, sn := complex(math.Cos(half), 0), complex(0, -math.Sin(half))
		s.applySingle(state, g.Wires[0], [2][2]complex128{{c, sn}, {sn, c}})
	case "RY":
		half := g.Params[0] / 2
		c, sn := complex(math.Cos(half), 0), complex(math.Sin(half), 0)
		s.applySingle(state, g.Wires[0], [2][2]complex128{{c, -sn}, {sn, c}})
	case "RZ":
		half := g.Params[0] / 2
		s.applySingle(state, g.Wires[0], [2][2]complex128{
			{cmplx.Exp(complex(0, -half)), 0},
			{0, cmplx.Exp(complex(0, half))},
		})
	case "PhaseShift":
		s.applySingle(state, g.Wires[0], [2][2]complex128{
			{1, 0},
			{0, cmplx.Exp(complex(0, g.Params[0]))},
		})
	case "GlobalPhase":
		phase := cmplx.Exp(complex(0, -g.Params[0]))
		for i := range state {
			state[i] *= phase
		}
	case "Hadamard":
		inv := complex(1/math.Sqrt2, 0)
		s.applySingle(state, g.Wires[0], [2][2]complex128{{inv, inv}, {inv, -inv}})
	case "PauliX":
		s.applySingle(state, g.Wires[0], [2][2]complex128{{0, 1}, {1, 0}})
	case "PauliY":
		s.applySingle(state, g.Wires[0], [2][2]complex128{{0, -1i}, {1i, 0}})
	case "PauliZ":
		s.applySingle(state, g.Wires[0], [2][2]complex128{{1, 0}, {0, -1}})
	case "CNOT":
		control, target := s.wireMask(g.Wires[0]), s.wireMask(g.Wires[1])
		for i := range state {
			if i&control != 0 && i&target == 0 {
				j := i | target
				state[i], state[j] = state[j], state[i]
			}
		}
	case "CZ":
		control, target := s.wireMask(g.Wires[0]), s.wireMask(g.Wires[1])
		for i := range state {
			if i&control != 0 && i&target != 0 {
				state[i] = -state[i]
			}
		}
	default:
		return fmt.Errorf("gate %q is not implemented by the statevector simulator", g.Name)
	}
	return nil
}

// applySingle applies a 2x2 unitary to one wire.
func (s *Simulator) applySingle(state []complex128, wire int, m [2][2]complex128) {
	mask := s.wireMask(wire)
	for i := range state {
		if i&mask == 0 {
			j := i | mask
			a, b := state[i], state[j]
			state[i] = m[0][0]*a + m[0][1]*b
			state[j] = m[1][0]*a + m[1][1]*b
		}
	}
}
