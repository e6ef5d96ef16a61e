package tui

import (
	"fmt"
	"slices"
	"strings"

	"qcalc/circuit"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return string([]rune(s)[:width])
	}
	total := width - n
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// controlSymbol returns the wire symbol for a control qubit.
func controlSymbol() string {
	return "●"
}

// targetSymbol returns the wire symbol for the target of a controlled NOT.
func targetSymbol() string {
	return "⊕"
}

// cellInfo describes what one (layer, qubit) cell of the diagram shows.
type cellInfo struct {
	op          *circuit.Operation
	index       int // operation index, -1 for an empty wire
	isControl   bool
	isTarget    bool
	passThrough bool // inside an operation's span without being one of its qubits
	vertAbove   bool
	vertBelow   bool
}

// span returns the lowest and highest qubit an operation touches.
func span(op circuit.Operation) (lo, hi circuit.Qubit) {
	lo, hi = op.Qubits[0], op.Qubits[0]
	for _, q := range op.Qubits[1:] {
		lo = min(lo, q)
		hi = max(hi, q)
	}
	return lo, hi
}

// cellAt builds the cell for qubit q in the given layer of dag.
func cellAt(c *circuit.Circuit, dag *circuit.CircuitDAG, layer int, q circuit.Qubit) cellInfo {
	info := cellInfo{index: -1}
	if layer < 0 || layer >= len(dag.Layers) {
		return info
	}
	i, ok := dag.NodeAt(c, layer, q)
	if !ok {
		// spans in a layer are disjoint, so at most one operation crosses q
		for _, j := range dag.Layers[layer] {
			if lo, hi := span(c.At(j)); q > lo && q < hi {
				i, ok = j, true
				info.passThrough = true
				break
			}
		}
		if !ok {
			return info
		}
	}
	op := c.At(i)
	lo, hi := span(op)
	info.index = i
	info.vertAbove = q > lo
	info.vertBelow = q < hi
	switch {
	case info.passThrough:
	case slices.Contains(op.Controls(), q):
		info.isControl = true
	case len(op.Qubits) > 1:
		info.isTarget = true
	}
	info.op = &op
	return info
}

type cellHighlight int

const (
	hlNone cellHighlight = iota
	hlCursor
)

// gateLabel returns the boxed name of a single-qubit operation.
func gateLabel(op *circuit.Operation) string {
	return string(op.Kind)
}

// ──────────────────────────── Cell rendering ────────────────────────────

// renderCell returns 3 lines (top, mid, bot) for a single cell.
// Each line is exactly cellW (11) visual characters wide.
func renderCell(info cellInfo, hl cellHighlight) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)

	// ── Highlighted cell ──
	if hl == hlCursor {
		bdr := cursorBoxStyle
		innerW := cellW - 2
		dashL := (innerW - 1) / 2
		dashR := innerW - dashL - 1

		top = bdr.Render("╔" + strings.Repeat("═", innerW) + "╗")
		bot = bdr.Render("╚" + strings.Repeat("═", innerW) + "╝")

		switch {
		case info.isControl:
			mid = bdr.Render("║") + strings.Repeat("─", dashL) + gateStyle.Render(controlSymbol()) + strings.Repeat("─", dashR) + bdr.Render("║")
		case info.isTarget:
			mid = bdr.Render("║") + strings.Repeat("─", dashL) + gateStyle.Render(targetSymbol()) + strings.Repeat("─", dashR) + bdr.Render("║")
		case info.passThrough:
			mid = bdr.Render("║") + strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR) + bdr.Render("║")
		case info.op != nil:
			name := padCenter(gateLabel(info.op), gateNameW)
			mid = bdr.Render("║") + "─┤" + gateStyle.Render(name) + "├─" + bdr.Render("║")
		default:
			mid = bdr.Render("║") + strings.Repeat("─", innerW) + bdr.Render("║")
		}
		return
	}

	// ── Normal (non-highlighted) cells ──
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	top, bot = emptyRow, emptyRow
	if info.vertAbove {
		top = vertRow
	}
	if info.vertBelow {
		bot = vertRow
	}

	switch {
	case info.isControl:
		mid = strings.Repeat("─", dashL) + gateStyle.Render(controlSymbol()) + strings.Repeat("─", dashR)
	case info.isTarget:
		mid = strings.Repeat("─", dashL) + gateStyle.Render(targetSymbol()) + strings.Repeat("─", dashR)
	case info.passThrough:
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
	case info.op != nil:
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		name := padCenter(gateLabel(info.op), gateNameW)

		top = strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
	default:
		mid = strings.Repeat("─", cellW)
	}
	return
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderCircuitPanel renders the layered wire diagram.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.title()))
	sb.WriteString("\n\n")

	// How many layers and qubits fit
	availWidth := width - labelVisualW - 4
	maxSteps := max(availWidth/cellW, 1)
	maxQubits := max((height-8)/3, 1)

	startStep := 0
	if m.cursorStep >= maxSteps {
		startStep = m.cursorStep - maxSteps + 1
	}
	endStep := min(startStep+maxSteps, m.dag.Depth())
	startQubit := 0
	if m.cursorQubit >= maxQubits {
		startQubit = m.cursorQubit - maxQubits + 1
	}
	endQubit := min(startQubit+maxQubits, m.circuit.Width())

	if startStep > 0 || startQubit > 0 {
		fmt.Fprintf(&sb, "  ◀ showing layers %d–%d, qubits %d–%d\n", startStep, endStep-1, startQubit, endQubit-1)
	}

	// Layer number header
	header := strings.Repeat(" ", labelVisualW)
	for step := startStep; step < endStep; step++ {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", step), cellW))
	}
	sb.WriteString(header + "\n")

	// Render each qubit as 3 lines
	for qubit := startQubit; qubit < endQubit; qubit++ {
		topLine := strings.Repeat(" ", labelVisualW)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", m.labels[qubit])) + "──"
		botLine := strings.Repeat(" ", labelVisualW)

		for step := startStep; step < endStep; step++ {
			info := cellAt(m.circuit, m.dag, step, circuit.Qubit(qubit))

			hl := hlNone
			if step == m.cursorStep && qubit == m.cursorQubit && m.focus != focusQASM {
				hl = hlCursor
			}

			top, mid, bot := renderCell(info, hl)
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	// Status line
	fmt.Fprintf(&sb, "\n  Layer %d/%d, %s", m.cursorStep, m.dag.Depth(), m.labels[m.cursorQubit])
	if info := m.cursorCell(); info.op != nil {
		fmt.Fprintf(&sb, "  │  %s", activeGateStyle.Render(info.op.String()))
		if seg, ok := m.segmentOf(info.index); ok {
			fmt.Fprintf(&sb, "  │  %s", segmentStyle.Render(seg.Name))
		}
	}
	if m.statusMsg != "" {
		style := activeGateStyle
		if m.statusErr {
			style = errorStyle
		}
		fmt.Fprintf(&sb, "\n  %s", style.Render(m.statusMsg))
	}

	return circuitStyle.Width(width).Height(height).Render(sb.String())
}

// renderQASMPanel renders the QASM editor panel.
func (m Model) renderQASMPanel(width, height int) string {
	var sb strings.Builder

	title := "OpenQASM"
	if m.focus == focusQASM {
		title += " [ACTIVE]"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(m.qasmEditor.View())

	return qasmStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help/controls bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(activeGateStyle.Render("Navigate: "))
	sb.WriteString("↑↓/jk Qubit  ←→/hl Layer  n/p Next/prev segment  +/- Register size")
	sb.WriteString("    ")
	sb.WriteString(activeGateStyle.Render("g"))
	sb.WriteString(" Generator\n")

	sb.WriteString(activeGateStyle.Render("Actions:  "))
	sb.WriteString("Tab Edit QASM  ^R Rebuild  ^S Save  q/^C Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}

// ──────────────────────────── Overlay helpers ────────────────────────────

// overlayAt composites the overlay string on top of the background at position (x, y).
// It handles ANSI escape sequences by tracking visible column positions.
func overlayAt(bg, overlay string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	ovLines := strings.Split(overlay, "\n")

	for i, ovLine := range ovLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}
		bgLines[bgIdx] = spliceLineAt(bgLines[bgIdx], ovLine, x)
	}
	return strings.Join(bgLines, "\n")
}

// isEscEnd reports whether r terminates an ANSI escape sequence.
func isEscEnd(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// spliceLineAt replaces visible columns starting at position x in bgLine with overlay content.
func spliceLineAt(bgLine, overlay string, x int) string {
	runes := []rune(bgLine)
	ovWidth := visibleLen(overlay)

	var prefix, suffix strings.Builder
	col, i := 0, 0

	// Collect prefix: everything up to visible column x
	for i < len(runes) && col < x {
		if runes[i] == '\x1b' {
			for i < len(runes) {
				r := runes[i]
				prefix.WriteRune(r)
				i++
				if r != '\x1b' && r != '[' && isEscEnd(r) {
					break
				}
			}
			continue
		}
		prefix.WriteRune(runes[i])
		col++
		i++
	}

	// Pad prefix if bg line is shorter than x
	for col < x {
		prefix.WriteRune(' ')
		col++
	}

	// Skip over ovWidth visible columns in the background
	skipped := 0
	for i < len(runes) && skipped < ovWidth {
		if runes[i] == '\x1b' {
			for i < len(runes) {
				r := runes[i]
				i++
				if r != '\x1b' && r != '[' && isEscEnd(r) {
					break
				}
			}
			continue
		}
		skipped++
		i++
	}

	for i < len(runes) {
		suffix.WriteRune(runes[i])
		i++
	}

	return prefix.String() + overlay + suffix.String()
}

// visibleLen returns the number of visible (non-ANSI-escape) characters in a string.
func visibleLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
			continue
		}
		if inEsc {
			if isEscEnd(r) {
				inEsc = false
			}
			continue
		}
		n++
	}
	return n
}
