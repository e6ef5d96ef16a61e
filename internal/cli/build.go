package cli

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"qcalc/circuit"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [generator]",
	Short: "write a generated circuit as OpenQASM.",
	Long: `Generate one of the arithmetic circuits and write it as OpenQASM 2.0,
	either to stdout or to the file given with --output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := resolveTarget(cmd, args)
		if err != nil {
			return err
		}
		c := t.circuit
		if GetFlag(cmd, "layered") {
			if c, err = layered(c); err != nil {
				return err
			}
		}
		qasm := circuit.ToQASM(c)

		output := config.Output
		if cmd.Flags().Changed("output") {
			output = GetString(cmd, "output")
		}
		if output == "" {
			fmt.Fprint(cmd.OutOrStdout(), qasm)
			return nil
		}
		if err := os.WriteFile(output, []byte(qasm), 0644); err != nil {
			return errors.Wrapf(err, "write %s", output)
		}
		log.Infof("wrote %s (%d qubits, %d operations) to %s", c.Name(), c.Width(), c.Len(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	addSizeFlag(buildCmd)
	buildCmd.Flags().StringP("output", "o", "", "write QASM to this file")
	buildCmd.Flags().Bool("layered", false, "emit operations layer by layer instead of in construction order")
}

// layered rebuilds c with its operations in dependency-layer order. Segment
// boundaries do not survive the reordering.
func layered(c *circuit.Circuit) (*circuit.Circuit, error) {
	b := circuit.NewBuilder(c.Name(), c.Width())
	for _, i := range circuit.NewCircuitDAG(c).TopologicalSort() {
		if err := b.Append(c.At(i)); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
