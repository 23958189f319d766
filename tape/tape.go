// Copyright 2026 QuGrad Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tape provides the public API for quantum tapes: ordered,
// parameterized circuit descriptions with trainability metadata.
//
// Example:
//
//	t := tape.New()
//	t.Append(tape.RX(0.4, 0), tape.CNOT(0, 1))
//	t.Measure(tape.ExpvalOf(tape.PauliZ, 0))
package tape

import (
	internaltape "github.com/qugrad-ml/qugrad/internal/tape"
)

// Tape is an ordered, parameterized description of a quantum computation.
type Tape = internaltape.Tape

// Gate is one operation in a tape.
type Gate = internaltape.Gate

// GateSpec describes the static properties of a gate type.
type GateSpec = internaltape.GateSpec

// Measurement is one terminal measurement on a tape.
type Measurement = internaltape.Measurement

// MeasurementKind selects what statistic a measurement returns.
type MeasurementKind = internaltape.MeasurementKind

// Observable is a single-wire Pauli observable.
type Observable = internaltape.Observable

// ParamMethod pairs a trainable parameter position with its gradient
// method.
type ParamMethod = internaltape.ParamMethod

// Measurement kinds.
const (
	Expval = internaltape.Expval
	Var    = internaltape.Var
	Probs  = internaltape.Probs
)

// Observables.
const (
	NoObservable = internaltape.NoObservable
	PauliX       = internaltape.PauliX
	PauliY       = internaltape.PauliY
	PauliZ       = internaltape.PauliZ
)

// Gradient method classifications.
const (
	MethodNumeric = internaltape.MethodNumeric
	MethodZero    = internaltape.MethodZero
)

// AnyWires marks gates that accept an arbitrary number of wires.
const AnyWires = internaltape.AnyWires

// New returns an empty tape with a fresh ID.
func New() *Tape {
	return internaltape.New()
}

// Lookup returns the spec for a gate name.
func Lookup(name string) (GateSpec, bool) {
	return internaltape.Lookup(name)
}

// Gate constructors.

// RX returns an X-axis rotation gate.
func RX(theta float64, wire int) Gate { return internaltape.RX(theta, wire) }

// RY returns a Y-axis rotation gate.
func RY(theta float64, wire int) Gate { return internaltape.RY(theta, wire) }

// RZ returns a Z-axis rotation gate.
func RZ(theta float64, wire int) Gate { return internaltape.RZ(theta, wire) }

// PhaseShift returns a phase-shift gate on one wire.
func PhaseShift(phi float64, wire int) Gate { return internaltape.PhaseShift(phi, wire) }

// GlobalPhase returns a global phase gate (zero gradient by definition).
func GlobalPhase(phi float64) Gate { return internaltape.GlobalPhase(phi) }

// Hadamard returns a Hadamard gate.
func Hadamard(wire int) Gate { return internaltape.Hadamard(wire) }

// PauliXGate returns a Pauli-X gate.
func PauliXGate(wire int) Gate { return internaltape.PauliXGate(wire) }

// PauliYGate returns a Pauli-Y gate.
func PauliYGate(wire int) Gate { return internaltape.PauliYGate(wire) }

// PauliZGate returns a Pauli-Z gate.
func PauliZGate(wire int) Gate { return internaltape.PauliZGate(wire) }

// CNOT returns a controlled-NOT gate (control, target).
func CNOT(control, target int) Gate { return internaltape.CNOT(control, target) }

// CZ returns a controlled-Z gate.
func CZ(control, target int) Gate { return internaltape.CZ(control, target) }

// Barrier returns a barrier marker over the given wires.
func Barrier(wires ...int) Gate { return internaltape.Barrier(wires...) }

// Snapshot returns a snapshot marker with an optional tag.
func Snapshot(tag string) Gate { return internaltape.Snapshot(tag) }

// WireCut returns a wire-cut marker. At least one wire is required.
func WireCut(wires ...int) Gate { return internaltape.WireCut(wires...) }

// Measurement constructors.

// ExpvalOf returns an expectation-value measurement of obs on wire.
func ExpvalOf(obs Observable, wire int) Measurement { return internaltape.ExpvalOf(obs, wire) }

// VarOf returns a variance measurement of obs on wire.
func VarOf(obs Observable, wire int) Measurement { return internaltape.VarOf(obs, wire) }

// ProbsOf returns a basis-probability measurement over the given wires.
func ProbsOf(wires ...int) Measurement { return internaltape.ProbsOf(wires...) }
