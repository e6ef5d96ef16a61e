package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qcalc/circuit"
)

func TestGeneratorsAgreeWithLayouts(t *testing.T) {
	for _, g := range Generators {
		t.Run(g.Name, func(t *testing.T) {
			c, err := g.Build(2)
			require.NoError(t, err)
			regs, err := g.Layout(2)
			require.NoError(t, err)
			assert.Len(t, circuit.Concat(regs...), c.Width())

			_, err = g.Build(0)
			var violation *circuit.ContractViolation
			assert.ErrorAs(t, err, &violation)
		})
	}
}

func TestLookup(t *testing.T) {
	g, err := Lookup("calc")
	require.NoError(t, err)
	assert.Equal(t, "calc", g.Name)

	_, err = Lookup("divider")
	assert.ErrorContains(t, err, "unknown generator")
}
