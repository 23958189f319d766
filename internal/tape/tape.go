// Package tape implements the differentiable quantum program: an ordered
// gate list with a flat parameter store, trainability metadata, and
// terminal measurements. Gradient drivers consume tapes through copies;
// the original tape is never mutated by differentiation.
package tape

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// paramRef locates one flat parameter inside the gate list.
type paramRef struct {
	gate int
	slot int
}

// Tape is an ordered, parameterized description of a quantum computation.
type Tape struct {
	id           string
	gates        []Gate
	measurements []Measurement
	parInfo      []paramRef
	trainable    []int // sorted flat parameter indices
}

// New returns an empty tape with a fresh ID.
func New() *Tape {
	return &Tape{id: uuid.NewString()}
}

// ID returns the tape's unique identifier.
func (t *Tape) ID() string {
	return t.id
}

// Append adds gates to the tape. New parameters are trainable by default.
// Invalid gates panic: appending a gate that fails validation is a
// construction bug, not a runtime condition.
func (t *Tape) Append(gates ...Gate) *Tape {
	for _, g := range gates {
		if err := g.Validate(); err != nil {
			panic(fmt.Sprintf("tape: %v", err))
		}
		gi := len(t.gates)
		t.gates = append(t.gates, g.Copy())
		for slot := range g.Params {
			t.trainable = append(t.trainable, len(t.parInfo))
			t.parInfo = append(t.parInfo, paramRef{gate: gi, slot: slot})
		}
	}
	return t
}

// Measure adds terminal measurements to the tape. Invalid measurements
// panic, as with Append.
func (t *Tape) Measure(ms ...Measurement) *Tape {
	for _, m := range ms {
		if err := m.Validate(); err != nil {
			panic(fmt.Sprintf("tape: %v", err))
		}
		t.measurements = append(t.measurements, m.Copy())
	}
	return t
}

// NumGates returns the number of gates on the tape.
func (t *Tape) NumGates() int {
	return len(t.gates)
}

// Gates returns a deep copy of the gate list.
func (t *Tape) Gates() []Gate {
	out := make([]Gate, len(t.gates))
	for i, g := range t.gates {
		out[i] = g.Copy()
	}
	return out
}

// Measurements returns a deep copy of the measurement list.
func (t *Tape) Measurements() []Measurement {
	out := make([]Measurement, len(t.measurements))
	for i, m := range t.measurements {
		out[i] = m.Copy()
	}
	return out
}

// NumParams returns the total number of gate parameters on the tape.
func (t *Tape) NumParams() int {
	return len(t.parInfo)
}

// NumTrainable returns the number of trainable parameters.
func (t *Tape) NumTrainable() int {
	return len(t.trainable)
}

// TrainableParams returns the sorted flat indices of trainable parameters.
func (t *Tape) TrainableParams() []int {
	return append([]int(nil), t.trainable...)
}

// SetTrainableParams replaces the trainable parameter set. Indices are
// flat parameter indices; they are deduplicated and stored sorted.
func (t *Tape) SetTrainableParams(indices []int) error {
	seen := make(map[int]bool, len(indices))
	sorted := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(t.parInfo) {
			return fmt.Errorf("trainable parameter index %d out of range [0, %d)", idx, len(t.parInfo))
		}
		if !seen[idx] {
			seen[idx] = true
			sorted = append(sorted, idx)
		}
	}
	sort.Ints(sorted)
	t.trainable = sorted
	return nil
}

// GetParameters returns the current parameter values. With trainableOnly,
// only trainable parameters are returned, in trainable order.
func (t *Tape) GetParameters(trainableOnly bool) []float64 {
	if trainableOnly {
		out := make([]float64, len(t.trainable))
		for i, idx := range t.trainable {
			ref := t.parInfo[idx]
			out[i] = t.gates[ref.gate].Params[ref.slot]
		}
		return out
	}
	out := make([]float64, len(t.parInfo))
	for i, ref := range t.parInfo {
		out[i] = t.gates[ref.gate].Params[ref.slot]
	}
	return out
}

// SetParameters overwrites parameter values. With trainableOnly, values
// are assigned to the trainable parameters in trainable order.
func (t *Tape) SetParameters(values []float64, trainableOnly bool) error {
	if trainableOnly {
		if len(values) != len(t.trainable) {
			return fmt.Errorf("expected %d trainable parameter values, got %d", len(t.trainable), len(values))
		}
		for i, idx := range t.trainable {
			ref := t.parInfo[idx]
			t.gates[ref.gate].Params[ref.slot] = values[i]
		}
		return nil
	}
	if len(values) != len(t.parInfo) {
		return fmt.Errorf("expected %d parameter values, got %d", len(t.parInfo), len(values))
	}
	for i, ref := range t.parInfo {
		t.gates[ref.gate].Params[ref.slot] = values[i]
	}
	return nil
}

// OutputDim returns the total number of scalars the tape's measurements
// produce.
func (t *Tape) OutputDim() int {
	dim := 0
	for _, m := range t.measurements {
		dim += m.OutputDim()
	}
	return dim
}

// Copy returns an independently mutable deep copy with a fresh ID.
func (t *Tape) Copy() *Tape {
	c := &Tape{
		id:           uuid.NewString(),
		gates:        make([]Gate, len(t.gates)),
		measurements: make([]Measurement, len(t.measurements)),
		parInfo:      append([]paramRef(nil), t.parInfo...),
		trainable:    append([]int(nil), t.trainable...),
	}
	for i, g := range t.gates {
		c.gates[i] = g.Copy()
	}
	for i, m := range t.measurements {
		c.measurements[i] = m.Copy()
	}
	return c
}

// GradMethods classifies each trainable parameter for the given
// differentiation strategy. Only the "numeric" strategy is supported;
// parameters of gates with no gradient method fail classification.
func (t *Tape) GradMethods(strategy string) ([]string, error) {
	if strategy != "numeric" {
		return nil, fmt.Errorf("unsupported differentiation strategy %q", strategy)
	}
	methods := make([]string, len(t.trainable))
	for i, idx := range t.trainable {
		ref := t.parInfo[idx]
		g := t.gates[ref.gate]
		spec, _ := Lookup(g.Name)
		if spec.GradMethod == "" {
			return nil, fmt.Errorf("cannot differentiate parameter %d of gate %s", idx, g.Name)
		}
		methods[i] = spec.GradMethod
	}
	return methods, nil
}

// ParamMethod pairs a trainable parameter position with its gradient
// method.
type ParamMethod struct {
	Index  int // position in the trainable parameter list
	Method string
}

// ChooseParams filters trainable parameter positions by argnum. A nil
// argnum selects every trainable parameter. Positions are returned in
// trainable order regardless of argnum order.
func (t *Tape) ChooseParams(methods []string, argnum []int) ([]ParamMethod, error) {
	if len(methods) != len(t.trainable) {
		return nil, fmt.Errorf("expected %d gradient methods, got %d", len(t.trainable), len(methods))
	}
	selected := make(map[int]bool, len(argnum))
	for _, a := range argnum {
		if a < 0 || a >= len(t.trainable) {
			return nil, fmt.Errorf("argnum %d out of range [0, %d)", a, len(t.trainable))
		}
		selected[a] = true
	}
	var out []ParamMethod
	for i := range t.trainable {
		if argnum != nil && !selected[i] {
			continue
		}
		out = append(out, ParamMethod{Index: i, Method: methods[i]})
	}
	return out, nil
}
