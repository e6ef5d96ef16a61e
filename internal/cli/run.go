package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"qcalc/circuit"
	"qcalc/sim"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [generator]",
	Short: "simulate a generated circuit on a basis input.",
	Long: `Simulate one of the arithmetic circuits on the basis state given by
	--set register=value and print every register's value afterwards.
	Registers that are not set start at 0.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTarget(cmd, args)
		if err != nil {
			return err
		}
		in, err := parseAssignments(GetStringArray(cmd, "set"), t.registers)
		if err != nil {
			return err
		}
		c := t.circuit
		if GetFlag(cmd, "inverse") {
			c = c.Inverse()
		}
		out, err := simulate(c, t.registers, in)
		if err != nil {
			return err
		}
		printOutcome(cmd.OutOrStdout(), t.registers, in, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addSizeFlag(runCmd)
	runCmd.Flags().StringArray("set", nil, "initial register value, as name=value (repeatable)")
	runCmd.Flags().Bool("inverse", false, "run the inverse circuit")
}

func simulate(c *circuit.Circuit, regs []circuit.Register, in map[string]uint64) (sim.Outcome, error) {
	values := make([]sim.Value, 0, len(regs))
	for _, r := range regs {
		values = append(values, sim.Value{Register: r, Value: in[r.Name]})
	}
	index, err := sim.Encode(values...)
	if err != nil {
		return sim.Outcome{}, err
	}
	log.Debugf("simulating %s on basis state %d", c.Name(), index)
	state, err := sim.RunBasis(c, index)
	if err != nil {
		return sim.Outcome{}, err
	}
	return sim.Measure(state, regs), nil
}

func printOutcome(w io.Writer, regs []circuit.Register, in map[string]uint64, out sim.Outcome) {
	rows := make([][]string, 0, len(regs))
	for _, r := range regs {
		rows = append(rows, []string{
			r.Name,
			r.String(),
			fmt.Sprint(in[r.Name]),
			fmt.Sprint(out.Values[r.Name]),
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("register", "qubits", "in", "out").
		Rows(rows...)
	fmt.Fprintln(w, t.String())
	if out.Probability < 1-1e-9 {
		fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("most likely basis state %d, p=%.4f", out.Index, out.Probability)))
		for q, m := range out.Marginals {
			if m.Prob0 > 1e-9 && m.Prob1 > 1e-9 {
				fmt.Fprintf(w, "  %s p(0)=%.4f p(1)=%.4f\n", labelStyle.Render(fmt.Sprintf("q%d", q)), m.Prob0, m.Prob1)
			}
		}
	}
}
