package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"qcalc/circuit"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff9e64"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] [generator]",
	Short: "print summary information about a generated circuit.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTarget(cmd, args)
		if err != nil {
			return err
		}
		printStats(cmd.OutOrStdout(), t.circuit, t.registers, GetFlag(cmd, "segments"), GetFlag(cmd, "layers"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	addSizeFlag(statsCmd)
	statsCmd.Flags().Bool("segments", false, "list every composed sub-circuit")
	statsCmd.Flags().Bool("layers", false, "list the operation count of every layer")
}

func printStats(w io.Writer, c *circuit.Circuit, regs []circuit.Register, segments, layers bool) {
	fmt.Fprintln(w, headingStyle.Render(c.Name()))
	row := func(label string, value any) {
		fmt.Fprintf(w, "  %s %v\n", labelStyle.Render(fmt.Sprintf("%-12s", label)), value)
	}
	row("qubits", c.Width())
	names := make([]string, len(regs))
	for i, r := range regs {
		names[i] = r.String()
	}
	row("registers", strings.Join(names, " "))
	row("operations", c.Len())
	counts := c.Counts()
	for _, k := range circuit.Kinds {
		if counts[k] > 0 {
			row("  "+strings.ToLower(string(k)), counts[k])
		}
	}
	dag := circuit.NewCircuitDAG(c)
	row("depth", dag.Depth())
	if layers {
		for l, layer := range dag.Layers {
			fmt.Fprintf(w, "    %s %d\n", dimStyle.Render(fmt.Sprintf("layer %d", l)), len(layer))
		}
	}
	row("segments", len(c.Segments()))
	if segments {
		for _, s := range c.Segments() {
			fmt.Fprintf(w, "    %s %s\n", dimStyle.Render(fmt.Sprintf("[%d,%d)", s.Start, s.End)), s.Name)
		}
	}
}
