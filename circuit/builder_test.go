package circuit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swapCircuit(t *testing.T) *Circuit {
	t.Helper()
	b := NewBuilder("swap", 2)
	require.NoError(t, b.CX(0, 1))
	require.NoError(t, b.CX(1, 0))
	require.NoError(t, b.CX(0, 1))
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func TestBuilderAppendsInOrder(t *testing.T) {
	b := NewBuilder("demo", 3)
	require.NoError(t, b.X(0))
	require.NoError(t, b.CX(0, 1))
	require.NoError(t, b.CCX(0, 1, 2))
	require.NoError(t, b.P(math.Pi/4, 2))
	require.NoError(t, b.H(1))

	c, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "demo", c.Name())
	assert.Equal(t, 3, c.Width())
	assert.Equal(t, []Operation{
		Op(X, 0),
		Op(CX, 0, 1),
		Op(CCX, 0, 1, 2),
		Phase(math.Pi/4, 2),
		Op(H, 1),
	}, c.Operations())
}

func TestBuilderRejectsMalformedOperations(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want error
	}{
		{"duplicate cx", Op(CX, 1, 1), ErrDuplicateQubit},
		{"duplicate toffoli", Op(CCX, 0, 2, 0), ErrDuplicateQubit},
		{"out of range", Op(X, 3), ErrQubitOutOfRange},
		{"negative", Op(H, -1), ErrQubitOutOfRange},
		{"arity", Op(CX, 0), ErrArity},
		{"unknown", Op(Kind("Y"), 0), ErrArity},
		{"nan angle", Phase(math.NaN(), 0), ErrAngle},
		{"angle on x", Operation{Kind: X, Qubits: []Qubit{0}, Angle: 1}, ErrAngle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder("bad", 3)
			err := b.Append(tt.op)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			var cerr *ConstructionError
			assert.ErrorAs(t, err, &cerr)
			assert.Equal(t, 0, b.Len())
		})
	}
}

func TestComposeRemapsQubits(t *testing.T) {
	swap := swapCircuit(t)
	b := NewBuilder("parent", 4)
	require.NoError(t, b.X(0))
	require.NoError(t, b.Compose(swap, []Qubit{3, 1}))

	c, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 4, c.Width())
	assert.Equal(t, []Operation{
		Op(X, 0),
		Op(CX, 3, 1),
		Op(CX, 1, 3),
		Op(CX, 3, 1),
	}, c.Operations())
	assert.Equal(t, []Segment{{Name: "swap", Start: 1, End: 4}}, c.Segments())
}

func TestComposeIsAtomic(t *testing.T) {
	swap := swapCircuit(t)
	tests := []struct {
		name    string
		mapping []Qubit
		want    error
	}{
		{"short mapping", []Qubit{0}, ErrWidthMismatch},
		{"long mapping", []Qubit{0, 1, 2}, ErrWidthMismatch},
		{"out of range", []Qubit{0, 4}, ErrQubitOutOfRange},
		{"negative", []Qubit{-1, 0}, ErrQubitOutOfRange},
		{"not injective", []Qubit{2, 2}, ErrNonInjective},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder("parent", 4)
			require.NoError(t, b.H(0))
			err := b.Compose(swap, tt.mapping)
			assert.ErrorIs(t, err, tt.want)
			var cerr *ConstructionError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, "compose", cerr.Op)
			assert.Equal(t, 1, b.Len(), "failed compose must not append")

			_, err = b.Build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBuilderErrorIsSticky(t *testing.T) {
	b := NewBuilder("sticky", 2)
	first := b.CX(0, 0)
	require.Error(t, first)

	assert.Equal(t, first, b.X(1))
	assert.Equal(t, 0, b.Len())
	_, err := b.Build()
	assert.Equal(t, first, err)
}

func TestBuilderFinalized(t *testing.T) {
	b := NewBuilder("done", 1)
	require.NoError(t, b.X(0))
	c, err := b.Build()
	require.NoError(t, err)

	assert.ErrorIs(t, b.X(0), ErrFinalized)
	assert.Equal(t, 1, c.Len(), "built circuit must not change")
}

func TestBuilderWidthContract(t *testing.T) {
	b := NewBuilder("empty", 0)
	err := b.X(0)
	var violation *ContractViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, "empty", violation.Generator)
}

func TestCircuitIsImmutable(t *testing.T) {
	b := NewBuilder("imm", 2)
	require.NoError(t, b.CX(0, 1))
	c, err := b.Build()
	require.NoError(t, err)

	ops := c.Operations()
	ops[0].Qubits[0] = 1
	ops[0].Kind = H
	assert.Equal(t, Op(CX, 0, 1), c.At(0))

	op := c.At(0)
	op.Qubits[1] = 0
	assert.Equal(t, Op(CX, 0, 1), c.At(0))
}

func TestEachHandsOutCopies(t *testing.T) {
	c := swapCircuit(t)
	c.Each(func(_ int, op Operation) {
		op.Qubits[0], op.Qubits[1] = 1, 0
	})
	assert.Equal(t, Op(CX, 0, 1), c.At(0))
	assert.Equal(t, Op(CX, 1, 0), c.At(1))
}

func TestComposeNilCircuit(t *testing.T) {
	b := NewBuilder("parent", 2)
	err := b.Compose(nil, nil)
	assert.ErrorIs(t, err, ErrWidthMismatch)
	var cerr *ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "compose", cerr.Op)
	assert.Equal(t, 0, b.Len())
}

func TestCircuitInverse(t *testing.T) {
	b := NewBuilder("fwd", 2)
	require.NoError(t, b.H(0))
	require.NoError(t, b.P(math.Pi/8, 1))
	require.NoError(t, b.CX(0, 1))
	c, err := b.Build()
	require.NoError(t, err)

	inv := c.Inverse()
	assert.Equal(t, "fwd†", inv.Name())
	assert.Equal(t, []Operation{
		Op(CX, 0, 1),
		Phase(-math.Pi/8, 1),
		Op(H, 0),
	}, inv.Operations())
}

func TestCircuitCounts(t *testing.T) {
	swap := swapCircuit(t)
	b := NewBuilder("counts", 3)
	require.NoError(t, b.Compose(swap, []Qubit{0, 2}))
	require.NoError(t, b.P(1, 1))
	c, err := b.Build()
	require.NoError(t, err)

	counts := c.Counts()
	assert.Equal(t, 3, counts[CX])
	assert.Equal(t, 1, counts[P])
	assert.Equal(t, 0, counts[CCX])
}

func TestErrorMessages(t *testing.T) {
	err := &ConstructionError{Circuit: "adder", Op: "compose", Err: ErrNonInjective}
	assert.Equal(t, "construction error [adder compose]: mapping is not injective", err.Error())
	assert.True(t, errors.Is(err, ErrNonInjective))

	v := Violation("calc", "sizes differ: %d != %d", 2, 3)
	assert.Equal(t, "contract violation [calc]: sizes differ: 2 != 3", v.Error())
}
