package arith

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"qcalc/circuit"
)

// AdderOptions selects the adder variant.
type AdderOptions struct {
	// Mirror negates every phase, turning A <- A+B into A <- A-B.
	Mirror bool
}

// AdderLayout returns the registers of a d-qubit adder: a (augend and output),
// b (addend) and the single control qubit c, in qubit order.
func AdderLayout(d int) ([]circuit.Register, error) {
	if d < 1 {
		return nil, circuit.Violation("adder", "register size must be positive, got %d", d)
	}
	alloc := circuit.NewAllocator()
	alloc.MustAllocate("a", d)
	alloc.MustAllocate("b", d)
	alloc.MustAllocate("c", 1)
	return alloc.Registers(), nil
}

// Adder builds the controlled modular adder on 2d+1 qubits: given |a>|b>|c> it
// yields |a+b mod 2^d>|b>|c> when c=1 and leaves the state unchanged when c=0.
func Adder(d int) (*circuit.Circuit, error) {
	return BuildAdder(d, AdderOptions{})
}

// Subtractor builds the mirror of Adder: |a-b mod 2^d>|b>|c> when c=1.
func Subtractor(d int) (*circuit.Circuit, error) {
	return BuildAdder(d, AdderOptions{Mirror: true})
}

// BuildAdder builds the adder or, with Mirror set, the subtractor.
//
// A is moved into the Fourier domain, where adding b means adding the phase
// 2*pi*b/2^(d-i) to Fourier qubit i. Bit idb of b contributes pi*2^idb/2^ida
// to the qubit ida places from the top of A; each contribution is conditioned
// on c and on that bit, which makes the whole sum conditional on c.
func BuildAdder(d int, opts AdderOptions) (*circuit.Circuit, error) {
	regs, err := AdderLayout(d)
	if err != nil {
		return nil, err
	}
	a, bReg, c := regs[0], regs[1], regs[2]

	name, sign := fmt.Sprintf("%d-qubit adder", d), 1.0
	if opts.Mirror {
		name, sign = fmt.Sprintf("%d-qubit subtractor", d), -1.0
	}

	qft, err := QFT(d)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	iqft, err := InverseQFT(d)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}

	b := circuit.NewBuilder(name, 2*d+1)
	b.Compose(qft, a.Qubits)
	for ida, q := range a.Reversed() {
		for idb, r := range bReg.Qubits {
			ccp, err := DoublyControlledPhase(sign * math.Ldexp(math.Pi, idb-ida))
			if err != nil {
				return nil, errors.Wrapf(err, "%s phase stage", name)
			}
			b.Compose(ccp, []circuit.Qubit{c.At(0), r, q})
		}
	}
	b.Compose(iqft, a.Qubits)
	return b.Build()
}
