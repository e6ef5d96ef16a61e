package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitDAGLayers(t *testing.T) {
	b := NewBuilder("layers", 4)
	require.NoError(t, b.H(0))        // 0: layer 0
	require.NoError(t, b.H(3))        // 1: layer 0
	require.NoError(t, b.CX(0, 2))    // 2: layer 1
	require.NoError(t, b.X(1))        // 3: layer 0
	require.NoError(t, b.CCX(1, 2, 3)) // 4: layer 2
	c, err := b.Build()
	require.NoError(t, err)

	dag := NewCircuitDAG(c)
	assert.Equal(t, 3, dag.Depth())
	assert.Equal(t, [][]int{{0, 1, 3}, {2}, {4}}, dag.Layers)
	assert.Equal(t, []int{1, 2, 3}, dag.Nodes[4].Dependencies)
	assert.Equal(t, []int{0, 1, 3, 2, 4}, dag.TopologicalSort())

	i, ok := dag.NodeAt(c, 1, 2)
	require.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = dag.NodeAt(c, 1, 1)
	assert.False(t, ok)
	_, ok = dag.NodeAt(c, 7, 0)
	assert.False(t, ok)
}

func TestSpanDAGKeepsConnectorsClear(t *testing.T) {
	b := NewBuilder("span", 3)
	require.NoError(t, b.CX(0, 2))
	require.NoError(t, b.X(1))
	c, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 1, NewCircuitDAG(c).Depth())
	assert.Equal(t, 2, NewSpanDAG(c).Depth())
}

func TestLayersNeverShareQubits(t *testing.T) {
	swap := swapCircuit(t)
	b := NewBuilder("dense", 5)
	for i := 0; i < 4; i++ {
		require.NoError(t, b.Compose(swap, []Qubit{Qubit(i), Qubit(i + 1)}))
		require.NoError(t, b.P(0.5, Qubit(4-i)))
	}
	c, err := b.Build()
	require.NoError(t, err)

	dag := NewCircuitDAG(c)
	for l, layer := range dag.Layers {
		seen := map[Qubit]bool{}
		for _, i := range layer {
			for _, q := range c.At(i).Qubits {
				assert.False(t, seen[q], "layer %d uses qubit %d twice", l, q)
				seen[q] = true
			}
		}
	}
}
