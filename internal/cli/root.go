package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// config holds the settings loaded before any subcommand runs.
var config = DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qcalc",
	Short: "A compiler for phase-domain reversible arithmetic circuits.",
	Long: `Generate, inspect and simulate quantum Fourier transform based
	adders, multipliers and the flag-selected add-or-multiply unit.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		path := GetString(cmd, "config")
		if path == "" {
			return nil
		}
		cfg, err := LoadConfig(path)
		if err != nil {
			return err
		}
		config = cfg
		log.Debugf("loaded config %s", path)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Fprint(cmd.OutOrStdout(), "qcalc ")
			if Version != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s", info.Main.Version)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "(unknown version)")
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("config", "", "read defaults from a YAML file")
}
