package circuit

import (
	"fmt"
	"slices"
)

// Register is a named, ordered run of qubits. Bit i of the value held by the
// register lives on Qubits[i].
type Register struct {
	Name   string
	Qubits []Qubit
}

// Len returns the number of qubits in the register.
func (r Register) Len() int {
	return len(r.Qubits)
}

// At returns the i-th qubit of the register.
func (r Register) At(i int) Qubit {
	return r.Qubits[i]
}

// Reversed returns the register's qubits from most to least significant.
func (r Register) Reversed() []Qubit {
	qs := slices.Clone(r.Qubits)
	slices.Reverse(qs)
	return qs
}

func (r Register) String() string {
	if len(r.Qubits) == 0 {
		return r.Name + "[]"
	}
	return fmt.Sprintf("%s[%d..%d]", r.Name, r.Qubits[0], r.Qubits[len(r.Qubits)-1])
}

// Concat joins registers into a composition mapping. Passing the same register
// more than once is how a caller deliberately aliases qubits across several
// compositions; within a single mapping Compose still rejects repeats.
func Concat(regs ...Register) []Qubit {
	var mapping []Qubit
	for _, r := range regs {
		mapping = append(mapping, r.Qubits...)
	}
	return mapping
}

// Allocator hands out consecutive, non-overlapping qubit indices to named
// registers. Allocation is append-only.
type Allocator struct {
	next  int
	regs  []Register
	index map[string]int
}

// NewAllocator creates an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{index: make(map[string]int)}
}

// Allocate reserves size fresh qubits under the given name.
func (a *Allocator) Allocate(name string, size int) (Register, error) {
	if size < 1 {
		return Register{}, Violation("allocator", "register %q must have at least one qubit, got %d", name, size)
	}
	if name == "" {
		return Register{}, &ConstructionError{Circuit: "allocator", Op: "allocate", Err: fmt.Errorf("%w: empty name", ErrRegister)}
	}
	if _, ok := a.index[name]; ok {
		return Register{}, &ConstructionError{Circuit: "allocator", Op: "allocate", Err: fmt.Errorf("%w: %q allocated twice", ErrRegister, name)}
	}
	reg := Register{Name: name, Qubits: make([]Qubit, size)}
	for i := 0; i < size; i++ {
		reg.Qubits[i] = Qubit(a.next + i)
	}
	a.next += size
	a.index[name] = len(a.regs)
	a.regs = append(a.regs, reg)
	return reg, nil
}

// MustAllocate is Allocate for layouts whose sizes were already validated.
func (a *Allocator) MustAllocate(name string, size int) Register {
	reg, err := a.Allocate(name, size)
	if err != nil {
		panic(err)
	}
	return reg
}

// Width returns the number of qubits handed out so far.
func (a *Allocator) Width() int {
	return a.next
}

// Registers returns the allocated registers in allocation order.
func (a *Allocator) Registers() []Register {
	regs := make([]Register, len(a.regs))
	for i, r := range a.regs {
		regs[i] = Register{Name: r.Name, Qubits: slices.Clone(r.Qubits)}
	}
	return regs
}

// Register looks up a register by name.
func (a *Allocator) Register(name string) (Register, bool) {
	i, ok := a.index[name]
	if !ok {
		return Register{}, false
	}
	r := a.regs[i]
	return Register{Name: r.Name, Qubits: slices.Clone(r.Qubits)}, true
}
