// Copyright 2026 QuGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package device provides the public API for the reference CPU
// statevector simulator.
//
// Example:
//
//	dev, err := device.New(2)
//	results, err := dev.Execute(tapes)
package device

import (
	"go.uber.org/zap"

	internaldevice "github.com/qugrad-ml/qugrad/internal/device"
)

// Simulator is a dense statevector simulator over a fixed number of
// wires. Its Execute method satisfies batch.ExecuteFn.
type Simulator = internaldevice.Simulator

// Option configures a Simulator.
type Option = internaldevice.Option

// New creates a simulator for the given wire count.
func New(numWires int, opts ...Option) (*Simulator, error) {
	return internaldevice.New(numWires, opts...)
}

// WithLogger attaches a logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return internaldevice.WithLogger(l)
}

// WithWorkers bounds the number of goroutines used to execute a batch.
func WithWorkers(n int) Option {
	return internaldevice.WithWorkers(n)
}
