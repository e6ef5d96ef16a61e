package arith

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qcalc/circuit"
	"qcalc/sim"
)

func TestSwap(t *testing.T) {
	swap, err := Swap()
	require.NoError(t, err)
	assert.Equal(t, 2, swap.Width())
	assert.Equal(t, map[circuit.Kind]int{circuit.CX: 3}, swap.Counts())

	for in, want := range []int{0b00, 0b10, 0b01, 0b11} {
		s, err := sim.RunBasis(swap, in)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, s.Probability(want), 1e-12, "input %02b", in)
	}
}

func TestControlledPhase(t *testing.T) {
	angle := 3 * math.Pi / 8
	cp, err := ControlledPhase(angle)
	require.NoError(t, err)
	assert.Equal(t, 2, cp.Width())
	assert.Equal(t, map[circuit.Kind]int{circuit.P: 2, circuit.CX: 2}, cp.Counts())

	for _, control := range []int{0, 1} {
		// control set as given, target in |+>
		state := sim.FromBasis(2, control)
		require.NoError(t, state.Apply(circuit.Op(circuit.H, 1)))
		require.NoError(t, sim.Run(cp, state))

		ratio := state.Amplitudes[control|0b10] / state.Amplitudes[control]
		want := complex(1, 0)
		if control == 1 {
			want = cmplx.Exp(complex(0, angle))
		}
		assert.InDelta(t, 0, cmplx.Abs(ratio-want), 1e-12, "control=%d", control)
		assert.InDelta(t, 0.5, state.Probability(control), 1e-12, "control must not change")
	}
}

func TestDoublyControlledPhase(t *testing.T) {
	angle := -math.Pi / 4
	ccp, err := DoublyControlledPhase(angle)
	require.NoError(t, err)
	assert.Equal(t, 3, ccp.Width())
	assert.Equal(t, map[circuit.Kind]int{circuit.P: 2, circuit.CCX: 2}, ccp.Counts())

	for controls := 0; controls < 4; controls++ {
		state := sim.FromBasis(3, controls)
		require.NoError(t, state.Apply(circuit.Op(circuit.H, 2)))
		require.NoError(t, sim.Run(ccp, state))

		ratio := state.Amplitudes[controls|0b100] / state.Amplitudes[controls]
		want := complex(1, 0)
		if controls == 0b11 {
			want = cmplx.Exp(complex(0, angle))
		}
		assert.InDelta(t, 0, cmplx.Abs(ratio-want), 1e-12, "controls=%02b", controls)
	}
}
