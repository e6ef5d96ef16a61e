package sim

import (
	"fmt"

	"qcalc/circuit"
)

// Value assigns an integer to a register.
type Value struct {
	Register circuit.Register
	Value    uint64
}

// Encode returns the basis index holding the given register values. Qubits not
// covered by any register are 0.
func Encode(values ...Value) (int, error) {
	index := 0
	for _, v := range values {
		n := v.Register.Len()
		if n < 64 && v.Value>>n != 0 {
			return 0, fmt.Errorf("sim: value %d does not fit in %d-qubit register %s", v.Value, n, v.Register.Name)
		}
		for i, q := range v.Register.Qubits {
			if v.Value>>i&1 == 1 {
				index |= 1 << q
			}
		}
	}
	return index, nil
}

// Decode reads a register's value out of a basis index.
func Decode(index int, reg circuit.Register) uint64 {
	var v uint64
	for i, q := range reg.Qubits {
		if index>>q&1 == 1 {
			v |= 1 << i
		}
	}
	return v
}

// Outcome is the dominant basis state after a run, decoded per register.
// Marginals holds every qubit's distribution.
type Outcome struct {
	Index       int
	Probability float64
	Values      map[string]uint64
	Marginals   []QubitProbability
}

// Measure decodes the most likely basis state of s against the given registers.
func Measure(s *StateVector, regs []circuit.Register) Outcome {
	index, prob := s.MostLikely()
	out := Outcome{
		Index:       index,
		Probability: prob,
		Values:      make(map[string]uint64, len(regs)),
		Marginals:   s.GetQubitProbabilities(),
	}
	for _, r := range regs {
		out.Values[r.Name] = Decode(index, r)
	}
	return out
}
