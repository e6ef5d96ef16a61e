package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	cellW        = 11 // width of each layer column in characters
	labelVisualW = 7  // visual width of qubit label area
	gateNameW    = 5  // width of gate name inside box
	gateBoxW     = 7  // ┤ + gateNameW + ├ = 1 + 5 + 1
)

// Palette holds the viewer colours as lipgloss colour strings.
type Palette struct {
	Circuit  string `yaml:"circuit"`
	QASM     string `yaml:"qasm"`
	Controls string `yaml:"controls"`
	Accent   string `yaml:"accent"`
	Active   string `yaml:"active"`
	Label    string `yaml:"label"`
	Gate     string `yaml:"gate"`
	Wire     string `yaml:"wire"`
	Text     string `yaml:"text"`
}

// DefaultPalette returns the built-in colours.
func DefaultPalette() Palette {
	return Palette{
		Circuit:  "#7aa2f7",
		QASM:     "#bb9af7",
		Controls: "#9ece6a",
		Accent:   "#ff9e64",
		Active:   "#e0af68",
		Label:    "#7dcfff",
		Gate:     "#73daca",
		Wire:     "#565f89",
		Text:     "#c0caf5",
	}
}

// Lipgloss styles used across the TUI.
var (
	circuitStyle      lipgloss.Style
	qasmStyle         lipgloss.Style
	controlsStyle     lipgloss.Style
	titleStyle        lipgloss.Style
	cursorBoxStyle    lipgloss.Style
	segmentStyle      lipgloss.Style
	activeGateStyle   lipgloss.Style
	qubitLabelStyle   lipgloss.Style
	gateStyle         lipgloss.Style
	dimStyle          lipgloss.Style
	menuBorderStyle   lipgloss.Style
	menuSelectedStyle lipgloss.Style
	menuNormalStyle   lipgloss.Style
	errorStyle        lipgloss.Style
)

func init() {
	SetPalette(DefaultPalette())
}

// SetPalette rebuilds the styles from p. Empty entries fall back to the
// default colour.
func SetPalette(p Palette) {
	def := DefaultPalette()
	pick := func(c, fallback string) lipgloss.Color {
		if c == "" {
			return lipgloss.Color(fallback)
		}
		return lipgloss.Color(c)
	}
	accent := pick(p.Accent, def.Accent)

	circuitStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pick(p.Circuit, def.Circuit)).
		Padding(1)

	qasmStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pick(p.QASM, def.QASM)).
		Padding(1)

	controlsStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pick(p.Controls, def.Controls)).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)

	cursorBoxStyle = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	segmentStyle = lipgloss.NewStyle().
		Foreground(pick(p.QASM, def.QASM)).
		Bold(true)

	activeGateStyle = lipgloss.NewStyle().
		Foreground(pick(p.Active, def.Active))

	qubitLabelStyle = lipgloss.NewStyle().
		Foreground(pick(p.Label, def.Label))

	gateStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(pick(p.Gate, def.Gate))

	dimStyle = lipgloss.NewStyle().
		Foreground(pick(p.Wire, def.Wire))

	menuBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)

	menuSelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)

	menuNormalStyle = lipgloss.NewStyle().
		Foreground(pick(p.Text, def.Text))

	errorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f7768e"))
}
