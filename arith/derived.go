// Package arith generates phase-domain arithmetic circuits: the quantum Fourier
// transform, controlled modular adders and subtractors, the modular multiplier,
// and a flag-selected add-or-multiply unit built from them.
//
// Every generator is a pure function from sizes to a finished *circuit.Circuit.
// Larger circuits embed smaller ones with circuit.Builder.Compose under an
// explicit qubit mapping; nothing is executed here.
package arith

import (
	"qcalc/circuit"
)

// Swap exchanges the values of its two qubits using three CNOTs.
func Swap() (*circuit.Circuit, error) {
	b := circuit.NewBuilder("swap", 2)
	b.CX(0, 1)
	b.CX(1, 0)
	b.CX(0, 1)
	return b.Build()
}

// ControlledPhase builds PHASE(angle) on qubit 1 conditioned on qubit 0:
//
//	P(angle/2, t); CX(c, t); P(-angle/2, t); CX(c, t)
//
// With the control set the target picks up e^(-i*angle/2)*P(angle), a phase
// that depends on the control alone; the control is never modified.
func ControlledPhase(angle float64) (*circuit.Circuit, error) {
	b := circuit.NewBuilder("cp", 2)
	b.P(angle/2, 1)
	b.CX(0, 1)
	b.P(-angle/2, 1)
	b.CX(0, 1)
	return b.Build()
}

// DoublyControlledPhase is ControlledPhase with both CNOTs replaced by a
// Toffoli on controls 0 and 1; qubit 2 is the target.
func DoublyControlledPhase(angle float64) (*circuit.Circuit, error) {
	b := circuit.NewBuilder("ccp", 3)
	b.P(angle/2, 2)
	b.CCX(0, 1, 2)
	b.P(-angle/2, 2)
	b.CCX(0, 1, 2)
	return b.Build()
}
