package tape

import "fmt"

// MeasurementKind selects what statistic a measurement returns.
type MeasurementKind int

// Measurement kinds.
const (
	Expval MeasurementKind = iota // expectation value of an observable
	Var                           // variance of an observable
	Probs                         // computational-basis probabilities
)

// String returns the kind name.
func (k MeasurementKind) String() string {
	switch k {
	case Expval:
		return "expval"
	case Var:
		return "var"
	case Probs:
		return "probs"
	}
	return fmt.Sprintf("MeasurementKind(%d)", int(k))
}

// Observable is a single-wire Pauli observable.
type Observable int

// Observables.
const (
	NoObservable Observable = iota // probs has no observable
	PauliX
	PauliY
	PauliZ
)

// String returns the observable name.
func (o Observable) String() string {
	switch o {
	case NoObservable:
		return "none"
	case PauliX:
		return "PauliX"
	case PauliY:
		return "PauliY"
	case PauliZ:
		return "PauliZ"
	}
	return fmt.Sprintf("Observable(%d)", int(o))
}

// Measurement is one terminal measurement on a tape.
//
// Expval and Var measure Obs on Wires[0]. Probs returns the probability
// distribution over the computational basis of Wires.
type Measurement struct {
	Kind  MeasurementKind
	Obs   Observable
	Wires []int
}

// Copy returns a deep copy of the measurement.
func (m Measurement) Copy() Measurement {
	return Measurement{Kind: m.Kind, Obs: m.Obs, Wires: append([]int(nil), m.Wires...)}
}

// OutputDim is the number of scalars this measurement contributes to the
// tape output: 1 for expval/var, 2^len(wires) for probs.
func (m Measurement) OutputDim() int {
	if m.Kind == Probs {
		return 1 << len(m.Wires)
	}
	return 1
}

// Validate checks the measurement for structural errors.
func (m Measurement) Validate() error {
	switch m.Kind {
	case Expval, Var:
		if m.Obs == NoObservable {
			return fmt.Errorf("%s measurement requires an observable", m.Kind)
		}
		if len(m.Wires) != 1 {
			return fmt.Errorf("%s measurement requires exactly one wire, got %d", m.Kind, len(m.Wires))
		}
	case Probs:
		if m.Obs != NoObservable {
			return fmt.Errorf("probs measurement does not take an observable")
		}
		if len(m.Wires) == 0 {
			return fmt.Errorf("probs measurement requires at least one wire")
		}
	default:
		return fmt.Errorf("unknown measurement kind %d", int(m.Kind))
	}
	return nil
}

// ExpvalOf returns an expectation-value measurement of obs on wire.
func ExpvalOf(obs Observable, wire int) Measurement {
	return Measurement{Kind: Expval, Obs: obs, Wires: []int{wire}}
}

// VarOf returns a variance measurement of obs on wire.
func VarOf(obs Observable, wire int) Measurement {
	return Measurement{Kind: Var, Obs: obs, Wires: []int{wire}}
}

// ProbsOf returns a basis-probability measurement over the given wires.
func ProbsOf(wires ...int) Measurement {
	return Measurement{Kind: Probs, Wires: wires}
}
