package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"qcalc/arith"
	"qcalc/circuit"
)

// GetFlag gets an expected flag, or exit with status 2 if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed integer, or exit with status 2 if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exit with status 2 if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or exit with status 2 if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// target is the circuit a subcommand works on.
type target struct {
	generator arith.Generator
	size      int
	circuit   *circuit.Circuit
	registers []circuit.Register
}

// resolveTarget builds the circuit named by the first argument (or the
// configured generator) at the size given by --size (or the configured width).
func resolveTarget(cmd *cobra.Command, args []string) (*target, error) {
	name := config.Generator
	if len(args) > 0 {
		name = args[0]
	}
	size := config.Width
	if cmd.Flags().Changed("size") {
		size = GetInt(cmd, "size")
	}
	gen, err := arith.Lookup(name)
	if err != nil {
		return nil, err
	}
	regs, err := gen.Layout(size)
	if err != nil {
		return nil, err
	}
	c, err := gen.Build(size)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s", name)
	}
	return &target{generator: gen, size: size, circuit: c, registers: regs}, nil
}

func addSizeFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("size", "d", 2, "register size in qubits")
}

// parseAssignments reads "name=value" pairs into register values. Every name
// must be one of the given registers.
func parseAssignments(items []string, regs []circuit.Register) (map[string]uint64, error) {
	known := make(map[string]bool, len(regs))
	for _, r := range regs {
		known[r.Name] = true
	}
	values := make(map[string]uint64, len(items))
	for _, item := range items {
		name, text, ok := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.Errorf("expected register=value, got %q", item)
		}
		if !known[name] {
			return nil, errors.Errorf("unknown register %q", name)
		}
		if _, dup := values[name]; dup {
			return nil, errors.Errorf("register %q set twice", name)
		}
		v, err := strconv.ParseUint(strings.TrimSpace(text), 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value of %s", name)
		}
		values[name] = v
	}
	return values, nil
}
