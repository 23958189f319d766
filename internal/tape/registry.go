package tape

// Gradient method classifications for gate parameters.
//
// MethodNumeric marks parameters that support numeric (finite-difference)
// differentiation. MethodZero marks parameters whose gradient is exactly
// zero for every observable (the driver skips them and emits a zero
// column). An empty method means the parameter cannot be differentiated
// at all.
const (
	MethodNumeric = "F"
	MethodZero    = "0"
)

// AnyWires marks gates that accept an arbitrary number of wires.
const AnyWires = -1

// GateSpec describes the static properties of a gate type.
type GateSpec struct {
	NumWires   int    // exact wire count, or AnyWires
	NumParams  int    // parameter count
	GradMethod string // per-parameter gradient method ("" = non-differentiable)

	SelfInverse bool // G·G = I on the same wires
	Rotation    bool // adjacent same-type gates merge by angle addition
	Meta        bool // marker op with no effect on the state
}

var registry = map[string]GateSpec{
	"RX":         {NumWires: 1, NumParams: 1, GradMethod: MethodNumeric, Rotation: true},
	"RY":         {NumWires: 1, NumParams: 1, GradMethod: MethodNumeric, Rotation: true},
	"RZ":         {NumWires: 1, NumParams: 1, GradMethod: MethodNumeric, Rotation: true},
	"PhaseShift": {NumWires: 1, NumParams: 1, GradMethod: MethodNumeric, Rotation: true},

	// A global phase is unobservable, so its parameter has an exactly
	// zero gradient for every measurement.
	"GlobalPhase": {NumWires: 0, NumParams: 1, GradMethod: MethodZero, Rotation: true},

	"Hadamard": {NumWires: 1, SelfInverse: true},
	"PauliX":   {NumWires: 1, SelfInverse: true},
	"PauliY":   {NumWires: 1, SelfInverse: true},
	"PauliZ":   {NumWires: 1, SelfInverse: true},
	"CNOT":     {NumWires: 2, SelfInverse: true},
	"CZ":       {NumWires: 2, SelfInverse: true},

	"Barrier":  {NumWires: AnyWires, Meta: true},
	"Snapshot": {NumWires: 0, Meta: true},
	"WireCut":  {NumWires: AnyWires, Meta: true},
}

// Lookup returns the spec for a gate name.
func Lookup(name string) (GateSpec, bool) {
	spec, ok := registry[name]
	return spec, ok
}
