// Package tui is a terminal viewer for generated circuits: a layered wire
// diagram next to the circuit's OpenQASM text.
package tui

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"

	"qcalc/arith"
	"qcalc/circuit"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusCircuit focus = iota
	focusQASM
	focusMenu
)

// Model represents the viewer state.
type Model struct {
	generator arith.Generator
	size      int

	circuit     *circuit.Circuit
	dag         *circuit.CircuitDAG // span layering used for drawing
	labels      []string            // wire label per qubit
	cursorQubit int
	cursorStep  int
	width       int
	height      int
	qasmEditor  textarea.Model
	focus       focus
	lastQASM    string
	statusMsg   string // transient status message (e.g. save confirmation)
	statusErr   bool

	menuItem int
}

// NewModel builds the d-qubit circuit of gen and returns a viewer on it.
func NewModel(gen arith.Generator, d int) (Model, error) {
	ta := textarea.New()
	ta.SetWidth(40)
	ta.SetHeight(20)
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0

	m := Model{
		generator:  gen,
		size:       d,
		qasmEditor: ta,
		focus:      focusCircuit,
		menuItem:   generatorIndex(gen.Name),
	}
	if err := m.rebuild(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Run starts the viewer and blocks until it quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// rebuild regenerates the circuit from the current generator and size.
func (m *Model) rebuild() error {
	regs, err := m.generator.Layout(m.size)
	if err != nil {
		return err
	}
	c, err := m.generator.Build(m.size)
	if err != nil {
		return err
	}
	m.load(c, regs)
	return nil
}

// load shows c, labelling its wires from regs.
func (m *Model) load(c *circuit.Circuit, regs []circuit.Register) {
	m.circuit = c
	m.dag = circuit.NewSpanDAG(c)
	m.labels = wireLabels(c.Width(), regs)
	m.cursorQubit = min(m.cursorQubit, c.Width()-1)
	m.cursorStep = min(m.cursorStep, max(m.dag.Depth()-1, 0))

	qasm := circuit.ToQASM(c)
	m.qasmEditor.SetValue(qasm)
	m.lastQASM = qasm
	log.Debugf("viewer loaded %s: %d layers", c.Name(), m.dag.Depth())
}

// wireLabels names each qubit after its register, e.g. "a0" or "flag".
func wireLabels(width int, regs []circuit.Register) []string {
	labels := make([]string, width)
	for q := range labels {
		labels[q] = "q" + strconv.Itoa(q)
	}
	for _, r := range regs {
		for i, q := range r.Qubits {
			switch {
			case r.Len() == 1:
				labels[q] = r.Name[:min(len(r.Name), 5)]
			default:
				labels[q] = r.Name[:min(len(r.Name), 3)] + strconv.Itoa(i)
			}
		}
	}
	return labels
}

// parseQASMInput replaces the circuit with the edited QASM text. Invalid text
// leaves the circuit as it was and reports the error.
func (m *Model) parseQASMInput() {
	qasm := m.qasmEditor.Value()
	if qasm == m.lastQASM {
		return
	}
	c, err := circuit.ParseQASM(qasm)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.load(c, []circuit.Register{{Name: "q", Qubits: identity(c.Width())}})
	m.setStatus(fmt.Sprintf("Parsed %d operations", c.Len()), false)
}

func identity(n int) []circuit.Qubit {
	qubits := make([]circuit.Qubit, n)
	for i := range qubits {
		qubits[i] = circuit.Qubit(i)
	}
	return qubits
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

func (m Model) title() string {
	return fmt.Sprintf("%s  (%d qubits, %d operations)", m.circuit.Name(), m.circuit.Width(), m.circuit.Len())
}

// cursorCell returns the cell under the cursor.
func (m Model) cursorCell() cellInfo {
	return cellAt(m.circuit, m.dag, m.cursorStep, circuit.Qubit(m.cursorQubit))
}

// segmentOf returns the composed sub-circuit containing operation i.
func (m Model) segmentOf(i int) (circuit.Segment, bool) {
	for _, s := range m.circuit.Segments() {
		if i >= s.Start && i < s.End {
			return s, true
		}
	}
	return circuit.Segment{}, false
}

// jumpSegment moves the cursor to the first layer of the next (dir=1) or
// previous (dir=-1) segment.
func (m *Model) jumpSegment(dir int) {
	segs := m.circuit.Segments()
	if dir < 0 {
		for i := len(segs) - 1; i >= 0; i-- {
			if segs[i].Start == segs[i].End {
				continue
			}
			if layer := m.dag.Nodes[segs[i].Start].Layer; layer < m.cursorStep {
				m.cursorStep = layer
				m.setStatus(segs[i].Name, false)
				return
			}
		}
		return
	}
	for _, s := range segs {
		if s.Start == s.End {
			continue
		}
		if layer := m.dag.Nodes[s.Start].Layer; layer > m.cursorStep {
			m.cursorStep = layer
			m.setStatus(s.Name, false)
			return
		}
	}
}

// resize changes the register size and rebuilds.
func (m *Model) resize(d int) {
	prev := m.size
	m.size = d
	if err := m.rebuild(); err != nil {
		m.size = prev
		m.setStatus(err.Error(), true)
	}
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		qasmW := max(msg.Width/3-6, 20)
		m.qasmEditor.SetWidth(qasmW)
		ctrlH := 6
		circH := msg.Height - ctrlH - 4
		editorH := max(circH-8, 4)
		m.qasmEditor.SetHeight(editorH)

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusCircuit:
			m.setStatus("", false)
			switch key {
			case "q":
				return m, tea.Quit
			case "tab":
				m.focus = focusQASM
				cmds = append(cmds, m.qasmEditor.Focus())
			case "ctrl+r":
				if err := m.rebuild(); err != nil {
					m.setStatus(err.Error(), true)
				}
			case "ctrl+s":
				name := m.generator.Name + ".qasm"
				if err := os.WriteFile(name, []byte(circuit.ToQASM(m.circuit)), 0644); err != nil {
					m.setStatus(fmt.Sprintf("Save error: %v", err), true)
				} else {
					m.setStatus("Saved "+name, false)
				}
			case "up", "k":
				if m.cursorQubit > 0 {
					m.cursorQubit--
				}
			case "down", "j":
				if m.cursorQubit < m.circuit.Width()-1 {
					m.cursorQubit++
				}
			case "left", "h":
				if m.cursorStep > 0 {
					m.cursorStep--
				}
			case "right", "l":
				if m.cursorStep < m.dag.Depth()-1 {
					m.cursorStep++
				}
			case "home":
				m.cursorStep = 0
			case "end":
				m.cursorStep = max(m.dag.Depth()-1, 0)
			case "n":
				m.jumpSegment(1)
			case "p":
				m.jumpSegment(-1)
			case "+", "=":
				m.resize(m.size + 1)
			case "-":
				if m.size > 1 {
					m.resize(m.size - 1)
				}
			case "g", "a":
				m.focus = focusMenu
				m.menuItem = generatorIndex(m.generator.Name)
			}

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusCircuit
			case "up", "k":
				if m.menuItem > 0 {
					m.menuItem--
				}
			case "down", "j":
				if m.menuItem < len(arith.Generators)-1 {
					m.menuItem++
				}
			case "enter":
				prev := m.generator
				m.generator = arith.Generators[m.menuItem]
				if err := m.rebuild(); err != nil {
					m.generator = prev
					m.setStatus(err.Error(), true)
				}
				m.focus = focusCircuit
			}

		case focusQASM:
			switch key {
			case "esc", "tab":
				m.qasmEditor.Blur()
				m.focus = focusCircuit
				m.parseQASMInput()
			default:
				var cmd tea.Cmd
				m.qasmEditor, cmd = m.qasmEditor.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	qasmWidth := m.width / 3
	circuitWidth := m.width - qasmWidth - 4
	controlsHeight := 6
	circuitHeight := max(m.height-controlsHeight-2, 6)

	circuitPanel := m.renderCircuitPanel(circuitWidth, circuitHeight)
	qasmPanel := m.renderQASMPanel(qasmWidth, circuitHeight)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, qasmPanel)
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)

	if m.focus == focusMenu {
		frame = overlayAt(frame, m.renderMenu(), 2, 2)
	}

	return frame
}
