package circuit

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regexps for QASM parsing.
var (
	singleGateRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\]\s*;?$`)
	singleGateParamRegex = regexp.MustCompile(`^(\w+)\s*\(\s*(` + anglePattern + `)\s*\)\s+q\[(\d+)\]\s*;?$`)
	twoQubitRegex        = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\]\s*,\s*q\[(\d+)\]\s*;?$`)
	threeQubitRegex      = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\]\s*,\s*q\[(\d+)\]\s*,\s*q\[(\d+)\]\s*;?$`)
	qregRegex            = regexp.MustCompile(`^qreg\s+q\[(\d+)\]\s*;?$`)
	nameRegex            = regexp.MustCompile(`^//\s*circuit:\s*(.+)$`)
)

var (
	errNoQreg       = errors.New("gate before qreg declaration")
	errUnsupported  = errors.New("unsupported statement")
	errBadAngle     = errors.New("cannot parse angle")
	errSecondQreg   = errors.New("more than one qreg declaration")
	errUnknownGate  = errors.New("unknown gate")
	errMissingWidth = errors.New("no qreg declaration")
)

// ToQASM writes the circuit as OpenQASM 2.0. Composition segments are written
// as comments ahead of their first operation.
func ToQASM(c *Circuit) string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	if c.name != "" {
		fmt.Fprintf(&sb, "// circuit: %s\n", c.name)
	}
	fmt.Fprintf(&sb, "qreg q[%d];\n\n", c.width)

	seg := 0
	for i, op := range c.ops {
		for seg < len(c.segments) && c.segments[seg].Start <= i {
			if c.segments[seg].Start == i {
				fmt.Fprintf(&sb, "// %s\n", c.segments[seg].Name)
			}
			seg++
		}
		sb.WriteString(op.String())
		sb.WriteString(";\n")
	}
	return sb.String()
}

// ParseQASM rebuilds a circuit from OpenQASM 2.0 text restricted to the gate
// library (x, cx, ccx, p, h over a single register q). Every operation goes
// through a Builder and is validated like any other append.
func ParseQASM(qasm string) (*Circuit, error) {
	var b *Builder
	name := "qasm"

	for n, line := range strings.Split(qasm, "\n") {
		lineNo := n + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "//") {
			if matches := nameRegex.FindStringSubmatch(line); matches != nil && b == nil {
				name = strings.TrimSpace(matches[1])
			}
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") ||
			strings.HasPrefix(line, "include") ||
			strings.HasPrefix(line, "creg") ||
			strings.HasPrefix(line, "barrier") {
			continue
		}
		if strings.HasPrefix(line, "qreg") {
			matches := qregRegex.FindStringSubmatch(line)
			if matches == nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: errUnsupported}
			}
			if b != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: errSecondQreg}
			}
			width, _ := strconv.Atoi(matches[1])
			b = NewBuilder(name, width)
			if err := b.Err(); err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Err: err}
			}
			continue
		}
		if b == nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: errNoQreg}
		}

		op, err := parseOperation(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		if err := b.Append(op); err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
	}

	if b == nil {
		return nil, &ParseError{Err: errMissingWidth}
	}
	return b.Build()
}

func parseOperation(line string) (Operation, error) {
	// Single-qubit parameterized gate: "p(pi/4) q[0];"
	if matches := singleGateParamRegex.FindStringSubmatch(line); matches != nil {
		kind := Kind(strings.ToUpper(matches[1]))
		if !kind.Parameterized() {
			return Operation{}, fmt.Errorf("%w: %s", errUnknownGate, matches[1])
		}
		angle, ok := ParseAngle(matches[2])
		if !ok {
			return Operation{}, fmt.Errorf("%w: %q", errBadAngle, matches[2])
		}
		target, _ := strconv.Atoi(matches[3])
		return Phase(angle, Qubit(target)), nil
	}

	var (
		kind   Kind
		qubits []Qubit
	)
	switch {
	case threeQubitRegex.MatchString(line):
		matches := threeQubitRegex.FindStringSubmatch(line)
		kind = Kind(strings.ToUpper(matches[1]))
		qubits = atoiQubits(matches[2:5])
	case twoQubitRegex.MatchString(line):
		matches := twoQubitRegex.FindStringSubmatch(line)
		kind = Kind(strings.ToUpper(matches[1]))
		qubits = atoiQubits(matches[2:4])
	case singleGateRegex.MatchString(line):
		matches := singleGateRegex.FindStringSubmatch(line)
		kind = Kind(strings.ToUpper(matches[1]))
		qubits = atoiQubits(matches[2:3])
	default:
		return Operation{}, errUnsupported
	}

	if kind == "TOFFOLI" {
		kind = CCX
	}
	if kind.Arity() == 0 || kind.Parameterized() {
		return Operation{}, fmt.Errorf("%w: %s", errUnknownGate, strings.ToLower(string(kind)))
	}
	return Op(kind, qubits...), nil
}

func atoiQubits(fields []string) []Qubit {
	qubits := make([]Qubit, len(fields))
	for i, f := range fields {
		n, _ := strconv.Atoi(f)
		qubits[i] = Qubit(n)
	}
	return qubits
}
