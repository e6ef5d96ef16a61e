package arith

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"qcalc/circuit"
)

// MultiplierOptions selects the multiplier variant.
type MultiplierOptions struct {
	// Mirror negates every phase, turning Z <- Z+A*B into Z <- Z-A*B.
	Mirror bool
}

// MultiplierLayout returns the registers of a d-qubit multiplier: the
// multiplicands a and b and the accumulator z, in qubit order.
func MultiplierLayout(d int) ([]circuit.Register, error) {
	if d < 1 {
		return nil, circuit.Violation("multiplier", "register size must be positive, got %d", d)
	}
	alloc := circuit.NewAllocator()
	alloc.MustAllocate("a", d)
	alloc.MustAllocate("b", d)
	alloc.MustAllocate("z", d)
	return alloc.Registers(), nil
}

// Multiplier builds the modular multiplier on 3d qubits: |a>|b>|z> becomes
// |a>|b>|z+a*b mod 2^d>. It has no control qubit.
func Multiplier(d int) (*circuit.Circuit, error) {
	return BuildMultiplier(d, MultiplierOptions{})
}

// MultiplierMirror builds the inverse of Multiplier: |a>|b>|z-a*b mod 2^d>.
func MultiplierMirror(d int) (*circuit.Circuit, error) {
	return BuildMultiplier(d, MultiplierOptions{Mirror: true})
}

// BuildMultiplier builds the multiplier or, with Mirror set, its inverse.
//
// Fourier qubit k of z must gain 2*pi*a*b/2^(d-k). The bit pair (a_s, b_t)
// contributes pi*2^(s+t)/2^(d-1-k); with s = d-1-ida that is
// pi*2^(idb+k)/2^ida, applied under the two bits as controls.
func BuildMultiplier(d int, opts MultiplierOptions) (*circuit.Circuit, error) {
	regs, err := MultiplierLayout(d)
	if err != nil {
		return nil, err
	}
	a, bReg, z := regs[0], regs[1], regs[2]

	name, sign := fmt.Sprintf("%d-qubit multiplier", d), 1.0
	if opts.Mirror {
		name, sign = fmt.Sprintf("%d-qubit multiplier†", d), -1.0
	}

	qft, err := QFT(d)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	iqft, err := InverseQFT(d)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}

	b := circuit.NewBuilder(name, 3*d)
	b.Compose(qft, z.Qubits)
	for k := 0; k < d; k++ {
		for ida, q := range a.Reversed() {
			for idb, r := range bReg.Qubits {
				ccp, err := DoublyControlledPhase(sign * math.Ldexp(math.Pi, idb+k-ida))
				if err != nil {
					return nil, errors.Wrapf(err, "%s phase stage", name)
				}
				b.Compose(ccp, []circuit.Qubit{r, q, z.At(k)})
			}
		}
	}
	b.Compose(iqft, z.Qubits)
	return b.Build()
}
