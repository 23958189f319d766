// Package device implements a CPU statevector simulator used as the batch
// executor for gradient computations. It is a reference collaborator: any
// executor that evaluates tapes in submission order can replace it.
package device

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/qugrad-ml/qugrad/internal/parallel"
	"github.com/qugrad-ml/qugrad/internal/qmath"
	"github.com/qugrad-ml/qugrad/internal/tape"
)

// maxWires bounds the statevector size (2^maxWires amplitudes).
const maxWires = 24

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		s.log = l
	}
}

// WithWorkers bounds the number of goroutines used to execute a batch.
// Workers <= 1 forces sequential execution.
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		s.pool.Workers = n
	}
}

// Simulator is a dense statevector simulator over a fixed number of wires.
// It is stateless across Execute calls: every tape gets a fresh |0...0>
// state.
type Simulator struct {
	numWires int
	log      *zap.Logger
	pool     parallel.Config
}

// New creates a simulator for the given wire count.
func New(numWires int, opts ...Option) (*Simulator, error) {
	if numWires < 1 || numWires > maxWires {
		return nil, fmt.Errorf("device: wire count must be in [1, %d], got %d", maxWires, numWires)
	}
	s := &Simulator{numWires: numWires, log: zap.NewNop(), pool: parallel.DefaultConfig()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NumWires returns the simulator's wire count.
func (s *Simulator) NumWires() int {
	return s.numWires
}

// Execute evaluates a batch of tapes and returns one result per tape, in
// submission order. A failure on any tape fails the whole batch; no
// partial results are returned.
func (s *Simulator) Execute(tapes []*tape.Tape) ([]qmath.Result, error) {
	s.log.Debug("executing tape batch", zap.Int("tapes", len(tapes)), zap.Int("wires", s.numWires))

	// Tapes are independent simulations; only results[i] and errs[i] are
	// shared, at distinct indices.
	results := make([]qmath.Result, len(tapes))
	errs := make([]error, len(tapes))
	parallel.For(len(tapes), func(i int) {
		results[i], errs[i] = s.run(tapes[i])
	}, s.pool)

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("device: tape %d (%s): %w", i, tapes[i].ID(), err)
		}
	}
	return results, nil
}

func (s *Simulator) run(t *tape.Tape) (qmath.Result, error) {
	state := make([]complex128, 1<<s.numWires)
	state[0] = 1

	for _, g := range t.Gates() {
		if err := s.applyGate(state, g); err != nil {
			return nil, err
		}
	}

	ms := t.Measurements()
	res := make(qmath.Result, 0, len(ms))
	for _, m := range ms {
		row, err := s.measure(state, m)
		if err != nil {
			return nil, err
		}
		res = append(res, row)
	}
	return res, nil
}

func (s *Simulator) checkWires(g tape.Gate) error {
	for _, w := range g.Wires {
		if w < 0 || w >= s.numWires {
			return fmt.Errorf("gate %s: wire %d out of range [0, %d)", g.Name, w, s.numWires)
		}
	}
	return nil
}
