package arith

import (
	"strings"

	"github.com/pkg/errors"

	"qcalc/circuit"
)

// Generator describes one circuit family for front-ends.
type Generator struct {
	Name        string
	Description string
	Build       func(d int) (*circuit.Circuit, error)
	Layout      func(d int) ([]circuit.Register, error)
}

// Generators lists the circuit families in menu order.
var Generators = []Generator{
	{Name: "qft", Description: "Fourier transform", Build: QFT, Layout: fourierLayout},
	{Name: "iqft", Description: "Inverse Fourier transform", Build: InverseQFT, Layout: fourierLayout},
	{Name: "adder", Description: "a <- a+b if c", Build: Adder, Layout: AdderLayout},
	{Name: "subtractor", Description: "a <- a-b if c", Build: Subtractor, Layout: AdderLayout},
	{Name: "multiplier", Description: "z <- z+a*b", Build: Multiplier, Layout: MultiplierLayout},
	{Name: "multiplier-mirror", Description: "z <- z-a*b", Build: MultiplierMirror, Layout: MultiplierLayout},
	{Name: "calc", Description: "result <- flag ? a*b : a+b", Build: Calc, Layout: CalcLayout},
}

// Lookup finds a generator by name.
func Lookup(name string) (Generator, error) {
	for _, g := range Generators {
		if g.Name == name {
			return g, nil
		}
	}
	names := make([]string, len(Generators))
	for i, g := range Generators {
		names[i] = g.Name
	}
	return Generator{}, errors.Errorf("unknown generator %q (want one of %s)", name, strings.Join(names, ", "))
}

func fourierLayout(n int) ([]circuit.Register, error) {
	if n < 1 {
		return nil, circuit.Violation("qft", "register size must be positive, got %d", n)
	}
	return []circuit.Register{circuit.NewAllocator().MustAllocate("x", n)}, nil
}
