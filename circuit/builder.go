package circuit

import (
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"
)

// Builder accumulates operations for one circuit. It is owned by a single
// caller until Build is called, after which it rejects further changes.
//
// Every method validates its input and fails without appending anything. The
// first failure is also remembered: later calls return it unchanged and Build
// reports it, so straight-line generator code can check once at the end.
type Builder struct {
	name     string
	width    int
	ops      []Operation
	segments []Segment
	err      error
	built    bool
}

// NewBuilder starts a circuit over width qubits.
func NewBuilder(name string, width int) *Builder {
	b := &Builder{name: name, width: width}
	if width < 1 {
		b.err = Violation(name, "circuit width must be positive, got %d", width)
	}
	return b
}

// Width returns the declared qubit count.
func (b *Builder) Width() int {
	return b.width
}

// Len returns the number of operations appended so far.
func (b *Builder) Len() int {
	return len(b.ops)
}

// Err returns the first error encountered, if any.
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) fail(op string, err error) error {
	cerr := &ConstructionError{Circuit: b.name, Op: op, Err: err}
	if b.err == nil {
		b.err = cerr
	}
	return cerr
}

func (b *Builder) check(op string) error {
	if b.err != nil {
		return b.err
	}
	if b.built {
		return b.fail(op, ErrFinalized)
	}
	return nil
}

// Append validates and appends a single operation.
func (b *Builder) Append(op Operation) error {
	if err := b.check("append"); err != nil {
		return err
	}
	if err := op.validate(b.width); err != nil {
		return b.fail("append", err)
	}
	b.ops = append(b.ops, op.clone())
	return nil
}

// X appends NOT(q).
func (b *Builder) X(q Qubit) error {
	return b.Append(Op(X, q))
}

// CX appends CNOT(control, target).
func (b *Builder) CX(control, target Qubit) error {
	return b.Append(Op(CX, control, target))
}

// CCX appends TOFFOLI(c1, c2, target).
func (b *Builder) CCX(c1, c2, target Qubit) error {
	return b.Append(Op(CCX, c1, c2, target))
}

// P appends PHASE(angle, q).
func (b *Builder) P(angle float64, q Qubit) error {
	return b.Append(Phase(angle, q))
}

// H appends a Hadamard on q.
func (b *Builder) H(q Qubit) error {
	return b.Append(Op(H, q))
}

// Compose appends every operation of sub with each local qubit i replaced by
// mapping[i]. The mapping must cover exactly sub's width, stay inside this
// circuit, and be injective. Either all of sub is appended or nothing is.
func (b *Builder) Compose(sub *Circuit, mapping []Qubit) error {
	if err := b.check("compose"); err != nil {
		return err
	}
	if sub == nil {
		return b.fail("compose", fmt.Errorf("%w: no sub-circuit", ErrWidthMismatch))
	}
	if len(mapping) != sub.Width() {
		return b.fail("compose", fmt.Errorf("%w: %s has %d qubits, mapping has %d",
			ErrWidthMismatch, sub.Name(), sub.Width(), len(mapping)))
	}
	for i, q := range mapping {
		if q < 0 || int(q) >= b.width {
			return b.fail("compose", fmt.Errorf("%w: mapping[%d]=%d not in [0,%d)",
				ErrQubitOutOfRange, i, q, b.width))
		}
		if j := slices.Index(mapping[:i], q); j >= 0 {
			return b.fail("compose", fmt.Errorf("%w: mapping[%d] and mapping[%d] are both %d",
				ErrNonInjective, j, i, q))
		}
	}

	ops := make([]Operation, 0, sub.Len())
	for _, op := range sub.ops {
		mapped := Operation{Kind: op.Kind, Angle: op.Angle, Qubits: make([]Qubit, len(op.Qubits))}
		for j, q := range op.Qubits {
			if q < 0 || int(q) >= len(mapping) {
				return b.fail("compose", fmt.Errorf("%w: %s uses qubit %d", ErrQubitOutOfRange, sub.Name(), q))
			}
			mapped.Qubits[j] = mapping[q]
		}
		ops = append(ops, mapped)
	}

	start := len(b.ops)
	b.ops = append(b.ops, ops...)
	b.segments = append(b.segments, Segment{Name: sub.Name(), Start: start, End: len(b.ops)})
	return nil
}

// Build finalises the circuit. It returns the first error recorded by the
// builder, in which case no circuit is produced.
func (b *Builder) Build() (*Circuit, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.built {
		return nil, b.fail("build", ErrFinalized)
	}
	b.built = true
	log.Debugf("built %s: %d qubits, %d operations", b.name, b.width, len(b.ops))
	return &Circuit{
		name:     b.name,
		width:    b.width,
		ops:      b.ops,
		segments: b.segments,
	}, nil
}
