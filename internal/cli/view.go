package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"qcalc/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] [generator]",
	Short: "browse a generated circuit in the terminal.",
	Long: `Browse one of the arithmetic circuits layer by layer in an interactive
	(terminal-based) viewer, next to its OpenQASM text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("view needs an interactive terminal")
		}
		t, err := resolveTarget(cmd, args)
		if err != nil {
			return err
		}
		tui.SetPalette(config.Palette)
		m, err := tui.NewModel(t.generator, t.size)
		if err != nil {
			return err
		}
		return tui.Run(m)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	addSizeFlag(viewCmd)
}
