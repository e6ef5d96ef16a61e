// Package sim is a reference state-vector executor for circuits built by the
// circuit package. Qubit q of a circuit is bit q of the basis-state index.
package sim

import (
	"fmt"
	"math"
	"math/cmplx"

	"qcalc/circuit"
)

type Complex = complex128

// MaxQubits bounds the state size the executor will allocate.
const MaxQubits = 24

type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// NewStateVector returns |0...0> over numQubits qubits.
func NewStateVector(numQubits int) *StateVector {
	return FromBasis(numQubits, 0)
}

// FromBasis returns the computational basis state with the given index. It
// panics when index is not in [0, 2^numQubits).
func FromBasis(numQubits int, index int) *StateVector {
	n := 1 << numQubits
	if index < 0 || index >= n {
		panic(fmt.Sprintf("sim: basis state %d outside %d-qubit state", index, numQubits))
	}
	amps := make([]Complex, n)
	amps[index] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// Apply applies a single operation.
func (s *StateVector) Apply(op circuit.Operation) error {
	for _, q := range op.Qubits {
		if q < 0 || int(q) >= s.NumQubits {
			return fmt.Errorf("sim: %s: qubit %d outside %d-qubit state", op, q, s.NumQubits)
		}
	}
	switch op.Kind {
	case circuit.H:
		s.applyH(int(op.Qubits[0]))
	case circuit.X:
		s.applyX(int(op.Qubits[0]))
	case circuit.CX:
		s.applyCX(int(op.Qubits[0]), int(op.Qubits[1]))
	case circuit.CCX:
		s.applyCCX(int(op.Qubits[0]), int(op.Qubits[1]), int(op.Qubits[2]))
	case circuit.P:
		s.applyP(int(op.Qubits[0]), op.Angle)
	default:
		return fmt.Errorf("sim: unsupported operation %q", op.Kind)
	}
	return nil
}

func (s *StateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			a, b := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = hFactor * (a + b)
			s.Amplitudes[j] = hFactor * (a - b)
		}
	}
}

func (s *StateVector) applyX(q int) {
	n := len(s.Amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	n := len(s.Amplitudes)
	cBit := 1 << control
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyCCX(c1, c2, target int) {
	n := len(s.Amplitudes)
	cBits := 1<<c1 | 1<<c2
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cBits == cBits && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyP(q int, theta float64) {
	n := len(s.Amplitudes)
	bit := 1 << q
	phase := cmplx.Exp(complex(0, theta))
	for i := 0; i < n; i++ {
		if i&bit != 0 {
			s.Amplitudes[i] *= phase
		}
	}
}

// Probability returns the probability of measuring the given basis state.
func (s *StateVector) Probability(index int) float64 {
	amp := s.Amplitudes[index]
	return real(amp * cmplx.Conj(amp))
}

// MostLikely returns the basis state with the largest probability.
func (s *StateVector) MostLikely() (int, float64) {
	best, bestProb := 0, -1.0
	for i := range s.Amplitudes {
		if p := s.Probability(i); p > bestProb {
			best, bestProb = i, p
		}
	}
	return best, bestProb
}

// Norm returns the sum of all probabilities.
func (s *StateVector) Norm() float64 {
	total := 0.0
	for i := range s.Amplitudes {
		total += s.Probability(i)
	}
	return total
}

// QubitProbability is the chance of reading 0 or 1 on one qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// GetQubitProbabilities returns the marginal distribution of every qubit.
func (s *StateVector) GetQubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	n := len(s.Amplitudes)

	for i := 0; i < n; i++ {
		prob := s.Probability(i)
		for q := 0; q < s.NumQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += prob
			} else {
				probs[q].Prob0 += prob
			}
		}
	}

	return probs
}

// Run applies every operation of c to state, in order. The state must have
// exactly c.Width() qubits.
func Run(c *circuit.Circuit, state *StateVector) error {
	if state.NumQubits != c.Width() {
		return fmt.Errorf("sim: %s needs %d qubits, state has %d", c.Name(), c.Width(), state.NumQubits)
	}
	var err error
	c.Each(func(i int, op circuit.Operation) {
		if err == nil {
			if e := state.Apply(op); e != nil {
				err = fmt.Errorf("operation %d: %w", i, e)
			}
		}
	})
	return err
}

// RunBasis runs c on the basis state with the given index and returns the
// final state.
func RunBasis(c *circuit.Circuit, index int) (*StateVector, error) {
	if c.Width() > MaxQubits {
		return nil, fmt.Errorf("sim: %s has %d qubits, limit is %d", c.Name(), c.Width(), MaxQubits)
	}
	if index < 0 || index >= 1<<c.Width() {
		return nil, fmt.Errorf("sim: basis state %d outside %d-qubit circuit %s", index, c.Width(), c.Name())
	}
	state := FromBasis(c.Width(), index)
	if err := Run(c, state); err != nil {
		return nil, err
	}
	return state, nil
}
