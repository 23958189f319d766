package device

import (
	"fmt"
	"math/cmplx"

	"github.com/qugrad-ml/qugrad/internal/tape"
)

func (s *Simulator) measure(state []complex128, m tape.Measurement) ([]float64, error) {
	for _, w := range m.Wires {
		if w < 0 || w >= s.numWires {
			return nil, fmt.Errorf("%s measurement: wire %d out of range [0, %d)", m.Kind, w, s.numWires)
		}
	}

	switch m.Kind {
	case tape.Expval:
		e, err := s.expval(state, m.Obs, m.Wires[0])
		if err != nil {
			return nil, err
		}
		return []float64{e}, nil
	case tape.Var:
		// Pauli observables square to the identity, so
		// Var(P) = <P^2> - <P>^2 = 1 - <P>^2.
		e, err := s.expval(state, m.Obs, m.Wires[0])
		if err != nil {
			return nil, err
		}
		return []float64{1 - e*e}, nil
	case tape.Probs:
		return s.probs(state, m.Wires), nil
	}
	return nil, fmt.Errorf("unknown measurement kind %d", int(m.Kind))
}

// expval computes <psi| P |psi> for a single-wire Pauli observable.
func (s *Simulator) expval(state []complex128, obs tape.Observable, wire int) (float64, error) {
	mask := s.wireMask(wire)
	applied := make([]complex128, len(state))

	switch obs {
	case tape.PauliX:
		for i := range state {
			applied[i] = state[i^mask]
		}
	case tape.PauliY:
		for i := range state {
			if i&mask == 0 {
				applied[i] = -1i * state[i^mask]
			} else {
				applied[i] = 1i * state[i^mask]
			}
		}
	case tape.PauliZ:
		for i := range state {
			if i&mask == 0 {
				applied[i] = state[i]
			} else {
				applied[i] = -state[i]
			}
		}
	default:
		return 0, fmt.Errorf("unsupported observable %s", obs)
	}

	e := complex128(0)
	for i := range state {
		e += cmplx.Conj(state[i]) * applied[i]
	}
	return real(e), nil
}

// probs marginalizes |psi|^2 onto the given wires, in wire order.
func (s *Simulator) probs(state []complex128, wires []int) []float64 {
	out := make([]float64, 1<<len(wires))
	for i, amp := range state {
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		idx := 0
		for _, w := range wires {
			idx <<= 1
			if i&s.wireMask(w) != 0 {
				idx |= 1
			}
		}
		out[idx] += p
	}
	return out
}
