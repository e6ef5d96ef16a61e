package arith

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"qcalc/circuit"
)

// CalcOptions gives the register sizes of the conditional unit. The unit is only
// defined when all four are equal; CalcOptionsFor fills them from one width.
type CalcOptions struct {
	A       int
	B       int
	Result  int
	Ancilla int
}

// CalcOptionsFor returns the options of a d-qubit unit.
func CalcOptionsFor(d int) CalcOptions {
	return CalcOptions{A: d, B: d, Result: d, Ancilla: d}
}

func (o CalcOptions) validate() (int, error) {
	d := o.A
	switch {
	case o.A < 1 || o.B < 1 || o.Result < 1 || o.Ancilla < 1:
		return 0, circuit.Violation("calc", "register sizes must be positive, got a=%d b=%d result=%d ancilla=%d",
			o.A, o.B, o.Result, o.Ancilla)
	case o.B != d || o.Result != d || o.Ancilla != d:
		return 0, circuit.Violation("calc", "register sizes must match, got a=%d b=%d result=%d ancilla=%d",
			o.A, o.B, o.Result, o.Ancilla)
	}
	return d, nil
}

// CalcLayout returns the registers of a d-qubit unit in qubit order: a, b, the
// one-qubit flag, result and ancilla. Width is 4d+1.
func CalcLayout(d int) ([]circuit.Register, error) {
	regs, _, err := calcLayout(CalcOptionsFor(d))
	return regs, err
}

func calcLayout(opts CalcOptions) ([]circuit.Register, int, error) {
	d, err := opts.validate()
	if err != nil {
		return nil, 0, err
	}
	alloc := circuit.NewAllocator()
	alloc.MustAllocate("a", opts.A)
	alloc.MustAllocate("b", opts.B)
	alloc.MustAllocate("flag", 1)
	alloc.MustAllocate("result", opts.Result)
	alloc.MustAllocate("ancilla", opts.Ancilla)
	return alloc.Registers(), d, nil
}

// Calc builds the d-qubit conditional unit.
func Calc(d int) (*circuit.Circuit, error) {
	return BuildCalc(CalcOptionsFor(d))
}

// BuildCalc builds a reversible if/else between multiplication and addition:
//
//	flag=1: result <- result + a*b mod 2^d
//	flag=0: result <- result + a+b mod 2^d
//
// a, b and flag are unchanged and the ancilla, which must start at 0, ends at 0.
// The flag may be in superposition, so both branches are built: the product is
// staged in the ancilla, folded into the result under flag, the sum is folded
// in under NOT flag, and the staged product is then subtracted back out of the
// ancilla by the mirrored multiplier.
func BuildCalc(opts CalcOptions) (*circuit.Circuit, error) {
	regs, d, err := calcLayout(opts)
	if err != nil {
		return nil, err
	}
	a, bReg, flag, result, ancilla := regs[0], regs[1], regs[2], regs[3], regs[4]

	mul, err := Multiplier(d)
	if err != nil {
		return nil, errors.Wrap(err, "calc")
	}
	unmul, err := MultiplierMirror(d)
	if err != nil {
		return nil, errors.Wrap(err, "calc")
	}
	add, err := Adder(d)
	if err != nil {
		return nil, errors.Wrap(err, "calc")
	}

	b := circuit.NewBuilder("QCalc", 4*d+1)

	// ancilla <- a*b
	b.Compose(mul, circuit.Concat(a, bReg, ancilla))
	// if flag: result <- result + ancilla
	b.Compose(add, circuit.Concat(result, ancilla, flag))

	// if not flag: result <- result + a + b
	b.X(flag.At(0))
	b.Compose(add, circuit.Concat(result, a, flag))
	b.Compose(add, circuit.Concat(result, bReg, flag))
	b.X(flag.At(0))

	// ancilla <- ancilla - a*b = 0
	b.Compose(unmul, circuit.Concat(a, bReg, ancilla))

	c, err := b.Build()
	if err != nil {
		return nil, errors.Wrap(err, "calc")
	}
	log.WithFields(log.Fields{
		"width":      c.Width(),
		"operations": c.Len(),
		"segments":   len(c.Segments()),
	}).Debug("conditional unit ready")
	return c, nil
}
