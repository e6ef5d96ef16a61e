package arith

import (
	"math"

	"github.com/pkg/errors"

	"qcalc/circuit"
)

// QFT builds the quantum Fourier transform over n qubits: a bit-reversal swap
// stage followed by, for each qubit in register order, a Hadamard and a ladder
// of controlled phases pi/2^j onto the qubits j places after it.
//
// After QFT, qubit i of a register that held x carries the phase
// 2*pi*x/2^(n-i) on its |1> component.
func QFT(n int) (*circuit.Circuit, error) {
	if n < 1 {
		return nil, circuit.Violation("qft", "register size must be positive, got %d", n)
	}
	x := circuit.NewAllocator().MustAllocate("x", n)
	b := circuit.NewBuilder("QFT", n)

	if err := swapStage(b, x); err != nil {
		return nil, errors.Wrap(err, "qft swap stage")
	}
	for i, q := range x.Qubits {
		b.H(q)
		for j := 1; i+j < n; j++ {
			cp, err := ControlledPhase(math.Ldexp(math.Pi, -j))
			if err != nil {
				return nil, errors.Wrap(err, "qft")
			}
			b.Compose(cp, []circuit.Qubit{q, x.At(i + j)})
		}
	}
	return b.Build()
}

// InverseQFT builds the exact inverse of QFT(n): the rotation ladder in reverse
// order with every angle negated, then the same swap stage.
func InverseQFT(n int) (*circuit.Circuit, error) {
	if n < 1 {
		return nil, circuit.Violation("iqft", "register size must be positive, got %d", n)
	}
	x := circuit.NewAllocator().MustAllocate("x", n)
	b := circuit.NewBuilder("IQFT", n)

	for i := n - 1; i >= 0; i-- {
		q := x.At(i)
		for k := n - 1; k > i; k-- {
			cp, err := ControlledPhase(-math.Ldexp(math.Pi, -(k - i)))
			if err != nil {
				return nil, errors.Wrap(err, "iqft")
			}
			b.Compose(cp, []circuit.Qubit{q, x.At(k)})
		}
		b.H(q)
	}
	if err := swapStage(b, x); err != nil {
		return nil, errors.Wrap(err, "iqft swap stage")
	}
	return b.Build()
}

// swapStage reverses the order of the register's qubits.
func swapStage(b *circuit.Builder, x circuit.Register) error {
	swap, err := Swap()
	if err != nil {
		return err
	}
	n := x.Len()
	for i := 0; i < n/2; i++ {
		if err := b.Compose(swap, []circuit.Qubit{x.At(i), x.At(n - 1 - i)}); err != nil {
			return err
		}
	}
	return nil
}
