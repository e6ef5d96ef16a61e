package tui

import (
	"fmt"
	"strings"

	"qcalc/arith"
)

// renderMenu renders the floating generator-picker popup.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Generator"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", 42)))
	sb.WriteString("\n")

	for i, g := range arith.Generators {
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render(" ▸ "))
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("%-18s", g.Name)))
			sb.WriteString(gateStyle.Render(g.Description))
		} else {
			sb.WriteString("   ")
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("%-18s", g.Name)))
			sb.WriteString(dimStyle.Render(g.Description))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(fmt.Sprintf(" d=%d  ↑↓ Select  ⏎ Build  Esc ✕", m.size)))

	return menuBorderStyle.Render(sb.String())
}

// generatorIndex returns the menu position of the named generator.
func generatorIndex(name string) int {
	for i, g := range arith.Generators {
		if g.Name == name {
			return i
		}
	}
	return 0
}
