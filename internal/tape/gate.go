package tape

import "fmt"

// Gate is one operation in a tape: a named unitary (or marker) applied to
// specific wires with zero or more real parameters.
type Gate struct {
	Name   string
	Wires  []int
	Params []float64
	Tag    string // optional label, used by Snapshot
}

// Copy returns a deep copy of the gate.
func (g Gate) Copy() Gate {
	return Gate{
		Name:   g.Name,
		Wires:  append([]int(nil), g.Wires...),
		Params: append([]float64(nil), g.Params...),
		Tag:    g.Tag,
	}
}

// Validate checks the gate against its registry spec.
func (g Gate) Validate() error {
	spec, ok := Lookup(g.Name)
	if !ok {
		return fmt.Errorf("unknown gate %q", g.Name)
	}
	if spec.NumWires != AnyWires && len(g.Wires) != spec.NumWires {
		return fmt.Errorf("gate %s: expected %d wires, got %d", g.Name, spec.NumWires, len(g.Wires))
	}
	if len(g.Params) != spec.NumParams {
		return fmt.Errorf("gate %s: expected %d parameters, got %d", g.Name, spec.NumParams, len(g.Params))
	}
	if g.Name == "WireCut" && len(g.Wires) == 0 {
		return fmt.Errorf("gate WireCut: at least one wire has to be given")
	}
	return nil
}

// Rotation gate constructors.

// RX returns an X-axis rotation gate.
func RX(theta float64, wire int) Gate {
	return Gate{Name: "RX", Wires: []int{wire}, Params: []float64{theta}}
}

// RY returns a Y-axis rotation gate.
func RY(theta float64, wire int) Gate {
	return Gate{Name: "RY", Wires: []int{wire}, Params: []float64{theta}}
}

// RZ returns a Z-axis rotation gate.
func RZ(theta float64, wire int) Gate {
	return Gate{Name: "RZ", Wires: []int{wire}, Params: []float64{theta}}
}

// PhaseShift returns a phase-shift gate on one wire.
func PhaseShift(phi float64, wire int) Gate {
	return Gate{Name: "PhaseShift", Wires: []int{wire}, Params: []float64{phi}}
}

// GlobalPhase returns a global phase gate. It has a parameter but no
// observable effect, so its gradient method is MethodZero.
func GlobalPhase(phi float64) Gate {
	return Gate{Name: "GlobalPhase", Params: []float64{phi}}
}

// Fixed gate constructors.

// Hadamard returns a Hadamard gate.
func Hadamard(wire int) Gate {
	return Gate{Name: "Hadamard", Wires: []int{wire}}
}

// PauliXGate returns a Pauli-X gate. (The plain PauliX name is taken by
// the observable constant.)
func PauliXGate(wire int) Gate {
	return Gate{Name: "PauliX", Wires: []int{wire}}
}

// PauliYGate returns a Pauli-Y gate.
func PauliYGate(wire int) Gate {
	return Gate{Name: "PauliY", Wires: []int{wire}}
}

// PauliZGate returns a Pauli-Z gate.
func PauliZGate(wire int) Gate {
	return Gate{Name: "PauliZ", Wires: []int{wire}}
}

// CNOT returns a controlled-NOT gate (control, target).
func CNOT(control, target int) Gate {
	return Gate{Name: "CNOT", Wires: []int{control, target}}
}

// CZ returns a controlled-Z gate.
func CZ(control, target int) Gate {
	return Gate{Name: "CZ", Wires: []int{control, target}}
}

// Meta operations. These are markers carried on the tape: they have no
// effect on the simulated state, and transforms treat them as opaque
// fences (nothing is merged or cancelled across them).

// Barrier returns a barrier marker over the given wires.
func Barrier(wires ...int) Gate {
	return Gate{Name: "Barrier", Wires: wires}
}

// Snapshot returns a snapshot marker with an optional tag.
func Snapshot(tag string) Gate {
	return Gate{Name: "Snapshot", Tag: tag}
}

// WireCut returns a wire-cut marker. At least one wire is required.
func WireCut(wires ...int) Gate {
	return Gate{Name: "WireCut", Wires: wires}
}
