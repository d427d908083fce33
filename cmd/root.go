// Package cmd holds the solver's cobra CLI surface (spec.md §6's
// "CLI surface (non-core, external)"). Grounded on the teacher's
// cmd/root.go: a persistent --verbose flag wired into pkg/common, plus
// a PersistentPreRunE that applies it before any subcommand runs.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/weftloop/conduit-solver/cmd/solve"
	"github.com/weftloop/conduit-solver/pkg/common"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "conduit-solver",
	Short: "Solver core for the 8x4 circuit-building puzzle",
	Long: `conduit-solver runs the combination driver and depth-first search
over a level's obligatory hints, reporting whether the fixed 10-piece
inventory can tile the 8x4 grid into a valid circuit.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose
		return nil
	},
}

// Execute runs the root command; called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose solver diagnostics")
	rootCmd.AddCommand(solve.GetCommand())
}
