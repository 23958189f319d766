package circuit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qugrad-ml/qugrad/internal/tape"
)

const validCircuit = `
wires: 2
gates:
  - {name: RX, wires: [0], params: [0.4]}
  - {name: Hadamard, wires: [1]}
  - {name: CNOT, wires: [0, 1]}
  - {name: RZ, wires: [1], params: [-0.2]}
measurements:
  - {kind: expval, observable: PauliZ, wires: [0]}
  - {kind: probs, wires: [0, 1]}
`

func TestParse_Valid(t *testing.T) {
	tp, wires, err := Parse([]byte(validCircuit))
	require.NoError(t, err)

	assert.Equal(t, 2, wires)
	assert.Equal(t, 4, tp.NumGates())
	assert.Equal(t, 2, tp.NumParams())
	assert.Equal(t, 2, tp.NumTrainable(), "all parameters trainable by default")
	assert.Equal(t, []float64{0.4, -0.2}, tp.GetParameters(false))
	assert.Equal(t, 5, tp.OutputDim(), "expval (1) + probs over 2 wires (4)")
}

func TestParse_TrainableOverride(t *testing.T) {
	tp, _, err := Parse([]byte(validCircuit + "trainable: [1]\n"))
	require.NoError(t, err)

	assert.Equal(t, []int{1}, tp.TrainableParams())
	assert.Equal(t, []float64{-0.2}, tp.GetParameters(true))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"unknown gate",
			"wires: 1\ngates:\n  - {name: Toffoli, wires: [0]}\nmeasurements:\n  - {kind: probs, wires: [0]}\n",
			"gate 0",
		},
		{
			"gate wire out of range",
			"wires: 1\ngates:\n  - {name: RX, wires: [3], params: [0.1]}\nmeasurements:\n  - {kind: probs, wires: [0]}\n",
			"out of range",
		},
		{
			"measurement wire out of range",
			"wires: 1\nmeasurements:\n  - {kind: probs, wires: [2]}\n",
			"out of range",
		},
		{
			"unknown measurement kind",
			"wires: 1\nmeasurements:\n  - {kind: sample, wires: [0]}\n",
			"unknown kind",
		},
		{
			"unknown observable",
			"wires: 1\nmeasurements:\n  - {kind: expval, observable: Hermitian, wires: [0]}\n",
			"unknown observable",
		},
		{
			"missing measurements",
			"wires: 1\ngates:\n  - {name: Hadamard, wires: [0]}\n",
			"measurement",
		},
		{
			"zero wires",
			"wires: 0\nmeasurements:\n  - {kind: probs, wires: [0]}\n",
			"wires",
		},
		{
			"trainable out of range",
			validCircuit + "trainable: [7]\n",
			"trainable",
		},
		{
			"malformed yaml",
			"wires: [not an int\n",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse([]byte(tt.in))
			require.Error(t, err)
			if tt.want != "" {
				assert.Contains(t, err.Error(), tt.want)
			}
		})
	}
}

func TestParse_SecondGateIndexInError(t *testing.T) {
	in := "wires: 1\ngates:\n  - {name: Hadamard, wires: [0]}\n  - {name: RX, wires: [0]}\nmeasurements:\n  - {kind: probs, wires: [0]}\n"
	_, _, err := Parse([]byte(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gate 1")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "circuit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCircuit), 0o644))

	tp, wires, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, wires)
	assert.Equal(t, 4, tp.NumGates())

	_, _, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_MeasurementValidation(t *testing.T) {
	// The measurement validator runs behind the parser: expval without an
	// observable must be rejected even though the YAML is well formed.
	in := "wires: 1\nmeasurements:\n  - {kind: expval, wires: [0]}\n"
	_, _, err := Parse([]byte(in))
	require.Error(t, err)

	// Probs never takes an observable.
	in = "wires: 1\nmeasurements:\n  - {kind: probs, observable: PauliZ, wires: [0]}\n"
	_, _, err = Parse([]byte(in))
	require.Error(t, err)
}

func TestParse_VarMeasurement(t *testing.T) {
	in := "wires: 1\ngates:\n  - {name: RY, wires: [0], params: [0.3]}\nmeasurements:\n  - {kind: var, observable: PauliX, wires: [0]}\n"
	tp, _, err := Parse([]byte(in))
	require.NoError(t, err)

	ms := tp.Measurements()
	require.Len(t, ms, 1)
	assert.Equal(t, tape.Var, ms[0].Kind)
	assert.Equal(t, tape.PauliX, ms[0].Obs)
}
