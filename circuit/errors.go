package circuit

import (
	"errors"
	"fmt"
)

// Reasons a construction step is rejected. They are wrapped in a
// *ConstructionError; test for them with errors.Is.
var (
	ErrWidthMismatch   = errors.New("mapping width does not match sub-circuit width")
	ErrQubitOutOfRange = errors.New("qubit out of range")
	ErrDuplicateQubit  = errors.New("duplicate qubit")
	ErrNonInjective    = errors.New("mapping is not injective")
	ErrArity           = errors.New("wrong number of qubits")
	ErrAngle           = errors.New("invalid angle")
	ErrFinalized       = errors.New("circuit already built")
	ErrRegister        = errors.New("invalid register")
)

// ConstructionError reports a malformed append, composition or allocation.
type ConstructionError struct {
	Circuit string // circuit (or allocator) being built
	Op      string // "append", "compose", "allocate", ...
	Err     error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construction error [%s %s]: %v", e.Circuit, e.Op, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// ContractViolation reports a generator invoked with sizes outside its contract.
// It is raised before any operation is appended.
type ContractViolation struct {
	Generator string
	Reason    string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("contract violation [%s]: %s", e.Generator, e.Reason)
}

// Violation is a shorthand for building a *ContractViolation.
func Violation(generator, format string, args ...any) error {
	return &ContractViolation{Generator: generator, Reason: fmt.Sprintf(format, args...)}
}

// ParseError reports an OpenQASM line that could not be turned into an operation.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("qasm line %d: %v\n%s", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
