package arith

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qcalc/circuit"
)

func TestMultiplierExhaustive(t *testing.T) {
	for d := 1; d <= 3; d++ {
		regs, err := MultiplierLayout(d)
		require.NoError(t, err)
		mul, err := Multiplier(d)
		require.NoError(t, err)
		unmul, err := MultiplierMirror(d)
		require.NoError(t, err)
		assert.Equal(t, 3*d, mul.Width())

		mod := uint64(1) << d
		for a := uint64(0); a < mod; a++ {
			for b := uint64(0); b < mod; b++ {
				for z := uint64(0); z < mod; z++ {
					in := map[string]uint64{"a": a, "b": b, "z": z}

					got := evaluate(t, mul, regs, in)
					assert.Equal(t, map[string]uint64{"a": a, "b": b, "z": (z + a*b) % mod}, got,
						"multiplier d=%d a=%d b=%d z=%d", d, a, b, z)

					got = evaluate(t, unmul, regs, in)
					assert.Equal(t, map[string]uint64{"a": a, "b": b, "z": (z + mod*mod - a*b) % mod}, got,
						"mirror d=%d a=%d b=%d z=%d", d, a, b, z)
				}
			}
		}
	}
}

func TestMultiplierExample(t *testing.T) {
	regs, err := MultiplierLayout(2)
	require.NoError(t, err)
	mul, err := Multiplier(2)
	require.NoError(t, err)

	got := evaluate(t, mul, regs, map[string]uint64{"a": 3, "b": 3})
	assert.Equal(t, uint64(1), got["z"])
}

func TestMultiplierContract(t *testing.T) {
	_, err := Multiplier(0)
	var violation *circuit.ContractViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "multiplier", violation.Generator)
}
