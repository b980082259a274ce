// Package cli wraps the checker/evaluator/driver pipeline in a Cobra
// command tree, mirroring cmd/dwscript/cmd's root/run split: a thin
// shell around the core that owns process-level concerns (flags, file
// reading, exit status) the core itself never touches.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags, the same way go-dws's cmd/dwscript
	// stamps its root command.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:     "n",
	Short:   "n language checker and evaluator",
	Version: Version,
	Long: `n runs the type checker and evaluator over a pre-built program tree.

This binary has no parser: it reads a JSON-encoded tree matching the fixed
shape the language's grammar produces, runs the type checker over it,
prints any diagnostics, then always runs the evaluator — a type error
never prevents the program from running.`,
}

// Execute runs the root command; main calls this and exits on error.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "disable ANSI-colored diagnostic output")
	rootCmd.PersistentFlags().Bool("debug", false, "tag diagnostic output with a per-run id")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
