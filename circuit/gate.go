package circuit

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Qubit is an index into the qubit space of one top-level circuit.
type Qubit int

// Kind names an elementary operation. The values are the upper-cased OpenQASM 2.0
// gate names so that a Kind can be written out and parsed back unchanged.
type Kind string

// The gate library.
const (
	// X flips the value of its qubit.
	X Kind = "X"
	// CX flips the target iff the control is 1. Qubits: control, target.
	CX Kind = "CX"
	// CCX flips the target iff both controls are 1. Qubits: control, control, target.
	CCX Kind = "CCX"
	// P multiplies the |1> amplitude of its qubit by e^(i*angle).
	P Kind = "P"
	// H is the Hadamard basis change used by the Fourier transform.
	H Kind = "H"
)

// Aliases matching the reversible-logic names.
const (
	NOT     = X
	CNOT    = CX
	TOFFOLI = CCX
	PHASE   = P
)

// Kinds lists the gate library in a fixed order.
var Kinds = []Kind{X, CX, CCX, P, H}

// Arity returns the number of qubits an operation of this kind acts on, or 0 for
// an unknown kind.
func (k Kind) Arity() int {
	switch k {
	case X, P, H:
		return 1
	case CX:
		return 2
	case CCX:
		return 3
	default:
		return 0
	}
}

// Parameterized reports whether the kind carries an angle.
func (k Kind) Parameterized() bool {
	return k == P
}

// Operation is one gate application. For controlled kinds the controls come
// first and the target is the last qubit.
type Operation struct {
	Kind   Kind
	Qubits []Qubit
	Angle  float64
}

// Op builds an operation without an angle.
func Op(kind Kind, qubits ...Qubit) Operation {
	return Operation{Kind: kind, Qubits: qubits}
}

// Phase builds a phase operation.
func Phase(angle float64, q Qubit) Operation {
	return Operation{Kind: P, Qubits: []Qubit{q}, Angle: angle}
}

// Target returns the qubit the operation acts on (the last one).
func (o Operation) Target() Qubit {
	return o.Qubits[len(o.Qubits)-1]
}

// Controls returns the control qubits, empty for single-qubit kinds.
func (o Operation) Controls() []Qubit {
	return o.Qubits[:len(o.Qubits)-1]
}

// Inverse returns the operation undoing o. Every kind is self-inverse except P,
// whose inverse negates the angle.
func (o Operation) Inverse() Operation {
	inv := o.clone()
	if o.Kind == P {
		inv.Angle = -o.Angle
	}
	return inv
}

// References reports whether the operation touches the given qubit.
func (o Operation) References(q Qubit) bool {
	return slices.Contains(o.Qubits, q)
}

func (o Operation) clone() Operation {
	return Operation{Kind: o.Kind, Qubits: slices.Clone(o.Qubits), Angle: o.Angle}
}

// validate checks the operation against a qubit space of the given width.
func (o Operation) validate(width int) error {
	arity := o.Kind.Arity()
	if arity == 0 {
		return fmt.Errorf("%w: unknown gate %q", ErrArity, string(o.Kind))
	}
	if len(o.Qubits) != arity {
		return fmt.Errorf("%w: %s takes %d qubit(s), got %d", ErrArity, o.Kind, arity, len(o.Qubits))
	}
	for i, q := range o.Qubits {
		if q < 0 || int(q) >= width {
			return fmt.Errorf("%w: qubit %d not in [0,%d)", ErrQubitOutOfRange, q, width)
		}
		if slices.Contains(o.Qubits[:i], q) {
			return fmt.Errorf("%w: qubit %d used twice by %s", ErrDuplicateQubit, q, o.Kind)
		}
	}
	if o.Kind.Parameterized() {
		if math.IsNaN(o.Angle) || math.IsInf(o.Angle, 0) {
			return fmt.Errorf("%w: %v", ErrAngle, o.Angle)
		}
	} else if o.Angle != 0 {
		return fmt.Errorf("%w: %s takes no angle", ErrAngle, o.Kind)
	}
	return nil
}

func (o Operation) String() string {
	qubits := make([]string, len(o.Qubits))
	for i, q := range o.Qubits {
		qubits[i] = fmt.Sprintf("q[%d]", q)
	}
	name := strings.ToLower(string(o.Kind))
	if o.Kind.Parameterized() {
		return fmt.Sprintf("%s(%s) %s", name, FormatAngle(o.Angle), strings.Join(qubits, ", "))
	}
	return fmt.Sprintf("%s %s", name, strings.Join(qubits, ", "))
}
