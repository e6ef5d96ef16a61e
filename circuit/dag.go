package circuit

import (
	"slices"
)

// DAGNode is one operation of a circuit seen as a node in its dependency graph.
// An operation depends on the previous operations touching any of its qubits.
type DAGNode struct {
	Index        int   // position in the circuit's operation list
	Layer        int   // earliest layer the operation can occupy
	Dependencies []int // indices of the operations it must follow
}

// CircuitDAG layers a circuit: every operation sits one layer after the latest
// layer among its dependencies. Operations in the same layer touch disjoint
// qubits. Layering only groups operations for display and depth reporting; the
// circuit's operation order is never changed.
type CircuitDAG struct {
	Nodes  []DAGNode
	Layers [][]int // operation indices per layer, in circuit order
}

// NewCircuitDAG layers c by the qubits each operation acts on.
func NewCircuitDAG(c *Circuit) *CircuitDAG {
	return buildDAG(c, func(op Operation) []Qubit { return op.Qubits })
}

// NewSpanDAG layers c treating every operation as occupying all qubits between
// its lowest and highest index, so that drawn connectors never cross another
// gate of the same layer.
func NewSpanDAG(c *Circuit) *CircuitDAG {
	return buildDAG(c, func(op Operation) []Qubit {
		lo, hi := slices.Min(op.Qubits), slices.Max(op.Qubits)
		span := make([]Qubit, 0, hi-lo+1)
		for q := lo; q <= hi; q++ {
			span = append(span, q)
		}
		return span
	})
}

func buildDAG(c *Circuit, occupied func(Operation) []Qubit) *CircuitDAG {
	dag := &CircuitDAG{
		Nodes: make([]DAGNode, len(c.ops)),
	}
	// Track the last operation on each qubit to establish dependencies
	lastOnQubit := make([]int, c.width)
	for i := range lastOnQubit {
		lastOnQubit[i] = -1
	}

	for i, op := range c.ops {
		node := DAGNode{Index: i}
		for _, q := range occupied(op) {
			last := lastOnQubit[q]
			if last < 0 || slices.Contains(node.Dependencies, last) {
				continue
			}
			node.Dependencies = append(node.Dependencies, last)
			node.Layer = max(node.Layer, dag.Nodes[last].Layer+1)
		}
		slices.Sort(node.Dependencies)
		dag.Nodes[i] = node

		for _, q := range occupied(op) {
			lastOnQubit[q] = i
		}
		for len(dag.Layers) <= node.Layer {
			dag.Layers = append(dag.Layers, nil)
		}
		dag.Layers[node.Layer] = append(dag.Layers[node.Layer], i)
	}
	return dag
}

// Depth returns the number of layers.
func (dag *CircuitDAG) Depth() int {
	return len(dag.Layers)
}

// TopologicalSort returns operation indices layer by layer. Any such order
// applies the same transformation as the circuit order.
func (dag *CircuitDAG) TopologicalSort() []int {
	order := make([]int, 0, len(dag.Nodes))
	for _, layer := range dag.Layers {
		order = append(order, layer...)
	}
	return order
}

// NodeAt returns the operation of the given layer acting on q, if any.
func (dag *CircuitDAG) NodeAt(c *Circuit, layer int, q Qubit) (int, bool) {
	if layer < 0 || layer >= len(dag.Layers) {
		return 0, false
	}
	for _, i := range dag.Layers[layer] {
		if c.ops[i].References(q) {
			return i, true
		}
	}
	return 0, false
}
