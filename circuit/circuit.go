package circuit

import (
	"slices"
)

// Segment records that operations [Start, End) of a circuit came from composing
// the named sub-circuit. Segments are diagnostics only.
type Segment struct {
	Name  string
	Start int
	End   int
}

// Circuit is a finished, immutable gate list over a fixed number of qubits.
// Circuits are produced by a Builder; the zero value is an empty circuit of
// width zero.
type Circuit struct {
	name     string
	width    int
	ops      []Operation
	segments []Segment
}

// Name returns the display name of the circuit.
func (c *Circuit) Name() string {
	return c.name
}

// Width returns the declared qubit count.
func (c *Circuit) Width() int {
	return c.width
}

// Len returns the number of operations.
func (c *Circuit) Len() int {
	return len(c.ops)
}

// At returns a copy of the i-th operation.
func (c *Circuit) At(i int) Operation {
	return c.ops[i].clone()
}

// Operations returns a copy of the operation list in application order.
func (c *Circuit) Operations() []Operation {
	ops := make([]Operation, len(c.ops))
	for i, op := range c.ops {
		ops[i] = op.clone()
	}
	return ops
}

// Each calls fn with a copy of every operation in order.
func (c *Circuit) Each(fn func(i int, op Operation)) {
	for i, op := range c.ops {
		fn(i, op.clone())
	}
}

// Segments returns the composition record of the circuit.
func (c *Circuit) Segments() []Segment {
	return slices.Clone(c.segments)
}

// Inverse returns the circuit undoing c: operations in reverse order, each one
// inverted.
func (c *Circuit) Inverse() *Circuit {
	inv := &Circuit{
		name:  c.name + "†",
		width: c.width,
		ops:   make([]Operation, len(c.ops)),
	}
	for i, op := range c.ops {
		inv.ops[len(c.ops)-1-i] = op.Inverse()
	}
	for i := len(c.segments) - 1; i >= 0; i-- {
		s := c.segments[i]
		inv.segments = append(inv.segments, Segment{
			Name:  s.Name + "†",
			Start: len(c.ops) - s.End,
			End:   len(c.ops) - s.Start,
		})
	}
	return inv
}

// Counts returns the number of operations of each kind.
func (c *Circuit) Counts() map[Kind]int {
	counts := make(map[Kind]int, len(Kinds))
	for _, op := range c.ops {
		counts[op.Kind]++
	}
	return counts
}
