package circuit

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestParseQASMGateLibrary(t *testing.T) {
	qasm := `OPENQASM 2.0;
include "qelib1.inc";

// circuit: demo
qreg q[3];
creg c[3];

x q[0];
cx q[0], q[1];
ccx q[0], q[1], q[2];
toffoli q[2], q[1], q[0];
p(pi/4) q[2];
p(-0.25) q[1];
barrier q[0];
h q[1];`

	c, err := ParseQASM(qasm)
	if err != nil {
		t.Fatalf("ParseQASM error: %v", err)
	}
	if c.Name() != "demo" {
		t.Errorf("expected name demo, got %q", c.Name())
	}
	if c.Width() != 3 {
		t.Errorf("expected width 3, got %d", c.Width())
	}

	want := []Operation{
		Op(X, 0),
		Op(CX, 0, 1),
		Op(CCX, 0, 1, 2),
		Op(CCX, 2, 1, 0),
		Phase(math.Pi/4, 2),
		Phase(-0.25, 1),
		Op(H, 1),
	}
	if c.Len() != len(want) {
		t.Fatalf("expected %d operations, got %d", len(want), c.Len())
	}
	for i, w := range want {
		got := c.At(i)
		if got.Kind != w.Kind || !equalQubits(got.Qubits, w.Qubits) || math.Abs(got.Angle-w.Angle) > 1e-10 {
			t.Errorf("operation %d: got %s, want %s", i, got, w)
		}
	}
}

func TestParseQASMErrors(t *testing.T) {
	tests := []struct {
		name string
		qasm string
		line int
		want error
	}{
		{"gate before qreg", "x q[0];\nqreg q[1];", 1, errNoQreg},
		{"no qreg", "OPENQASM 2.0;\n", 0, errMissingWidth},
		{"second qreg", "qreg q[2];\nqreg q[2];", 2, errSecondQreg},
		{"measure", "qreg q[1];\ncreg c[1];\nmeasure q[0] -> c[0];", 3, errUnsupported},
		{"unknown gate", "qreg q[1];\ny q[0];", 2, errUnknownGate},
		{"rotation", "qreg q[1];\nrz(pi) q[0];", 2, errUnknownGate},
		{"out of range", "qreg q[2];\ncx q[0], q[2];", 2, ErrQubitOutOfRange},
		{"duplicate", "qreg q[2];\ncx q[1], q[1];", 2, ErrDuplicateQubit},
		{"empty register", "qreg q[0];", 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQASM(tt.qasm)
			if err == nil {
				t.Fatalf("expected an error")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if perr.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, perr.Line)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRoundTripQASM(t *testing.T) {
	swap := swapCircuit(t)
	b := NewBuilder("parent", 3)
	mustOK(t, b.H(0))
	mustOK(t, b.Compose(swap, []Qubit{2, 0}))
	mustOK(t, b.P(3*math.Pi/4, 1))
	mustOK(t, b.P(0.1, 2))
	mustOK(t, b.CCX(0, 1, 2))
	c, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}

	qasm := ToQASM(c)
	for _, s := range []string{"// circuit: parent", "qreg q[3];", "// swap\ncx q[2], q[0];", "p(3*pi/4) q[1];", "p(0.1) q[2];"} {
		if !strings.Contains(qasm, s) {
			t.Errorf("expected %q in QASM, got:\n%s", s, qasm)
		}
	}

	c2, err := ParseQASM(qasm)
	if err != nil {
		t.Fatalf("ParseQASM error: %v\n%s", err, qasm)
	}
	if c2.Name() != c.Name() || c2.Width() != c.Width() || c2.Len() != c.Len() {
		t.Fatalf("round trip changed the circuit: %s/%d/%d vs %s/%d/%d",
			c2.Name(), c2.Width(), c2.Len(), c.Name(), c.Width(), c.Len())
	}
	for i := 0; i < c.Len(); i++ {
		want, got := c.At(i), c2.At(i)
		if got.Kind != want.Kind || !equalQubits(got.Qubits, want.Qubits) || math.Abs(got.Angle-want.Angle) > 1e-12 {
			t.Errorf("operation %d: got %s, want %s", i, got, want)
		}
	}
}

func equalQubits(a, b []Qubit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
