// Package circuit loads tape descriptions from YAML files. It exists for
// the CLI and examples; library callers normally build tapes directly.
package circuit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/qugrad-ml/qugrad/internal/tape"
)

// File is the on-disk circuit schema.
//
//	wires: 2
//	gates:
//	  - {name: RX, wires: [0], params: [0.4]}
//	  - {name: CNOT, wires: [0, 1]}
//	measurements:
//	  - {kind: expval, observable: PauliZ, wires: [0]}
//	trainable: [0]   # optional, default: all parameters
type File struct {
	Wires        int               `yaml:"wires"`
	Gates        []GateSpec        `yaml:"gates"`
	Measurements []MeasurementSpec `yaml:"measurements"`
	Trainable    []int             `yaml:"trainable"`
}

// GateSpec is one gate entry.
type GateSpec struct {
	Name   string    `yaml:"name"`
	Wires  []int     `yaml:"wires"`
	Params []float64 `yaml:"params"`
	Tag    string    `yaml:"tag"`
}

// MeasurementSpec is one measurement entry.
type MeasurementSpec struct {
	Kind       string `yaml:"kind"`
	Observable string `yaml:"observable"`
	Wires      []int  `yaml:"wires"`
}

// Load reads and parses a circuit file, returning the tape and the wire
// count.
func Load(path string) (*tape.Tape, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("circuit: %w", err)
	}
	return Parse(data)
}

// Parse builds a tape from YAML circuit data. Validation is eager: the
// first invalid gate or measurement fails the whole load, with its list
// index in the error.
func Parse(data []byte) (*tape.Tape, int, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, 0, fmt.Errorf("circuit: %w", err)
	}
	if f.Wires < 1 {
		return nil, 0, fmt.Errorf("circuit: wires must be at least 1, got %d", f.Wires)
	}
	if len(f.Measurements) == 0 {
		return nil, 0, fmt.Errorf("circuit: at least one measurement is required")
	}

	t := tape.New()
	for i, gs := range f.Gates {
		g := tape.Gate{Name: gs.Name, Wires: gs.Wires, Params: gs.Params, Tag: gs.Tag}
		if err := g.Validate(); err != nil {
			return nil, 0, fmt.Errorf("circuit: gate %d: %w", i, err)
		}
		for _, w := range g.Wires {
			if w < 0 || w >= f.Wires {
				return nil, 0, fmt.Errorf("circuit: gate %d (%s): wire %d out of range [0, %d)", i, g.Name, w, f.Wires)
			}
		}
		t.Append(g)
	}

	for i, ms := range f.Measurements {
		m, err := parseMeasurement(ms)
		if err != nil {
			return nil, 0, fmt.Errorf("circuit: measurement %d: %w", i, err)
		}
		for _, w := range m.Wires {
			if w < 0 || w >= f.Wires {
				return nil, 0, fmt.Errorf("circuit: measurement %d: wire %d out of range [0, %d)", i, w, f.Wires)
			}
		}
		t.Measure(m)
	}

	if f.Trainable != nil {
		if err := t.SetTrainableParams(f.Trainable); err != nil {
			return nil, 0, fmt.Errorf("circuit: %w", err)
		}
	}
	return t, f.Wires, nil
}

func parseMeasurement(ms MeasurementSpec) (tape.Measurement, error) {
	var kind tape.MeasurementKind
	switch ms.Kind {
	case "expval":
		kind = tape.Expval
	case "var":
		kind = tape.Var
	case "probs":
		kind = tape.Probs
	default:
		return tape.Measurement{}, fmt.Errorf("unknown kind %q", ms.Kind)
	}

	obs := tape.NoObservable
	switch ms.Observable {
	case "":
	case "PauliX":
		obs = tape.PauliX
	case "PauliY":
		obs = tape.PauliY
	case "PauliZ":
		obs = tape.PauliZ
	default:
		return tape.Measurement{}, fmt.Errorf("unknown observable %q", ms.Observable)
	}

	m := tape.Measurement{Kind: kind, Obs: obs, Wires: ms.Wires}
	if err := m.Validate(); err != nil {
		return tape.Measurement{}, err
	}
	return m, nil
}
