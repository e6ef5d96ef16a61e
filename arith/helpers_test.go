package arith

import (
	"testing"

	"github.com/stretchr/testify/require"

	"qcalc/circuit"
	"qcalc/sim"
)

// evaluate runs c on the basis state holding the given register values and
// returns every register's value afterwards. The output must be a single
// basis state.
func evaluate(t *testing.T, c *circuit.Circuit, regs []circuit.Register, in map[string]uint64) map[string]uint64 {
	t.Helper()
	values := make([]sim.Value, 0, len(regs))
	for _, r := range regs {
		values = append(values, sim.Value{Register: r, Value: in[r.Name]})
	}
	index, err := sim.Encode(values...)
	require.NoError(t, err)
	state, err := sim.RunBasis(c, index)
	require.NoError(t, err)
	out := sim.Measure(state, regs)
	require.InDelta(t, 1.0, out.Probability, 1e-9, "%s did not end in a basis state for %v", c.Name(), in)
	return out.Values
}
