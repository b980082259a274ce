package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cwbudde/n/internal/diagnostics"
	"github.com/cwbudde/n/internal/driver"
	"github.com/cwbudde/n/internal/treeio"
)

var (
	evalFlag   string
	sourceFlag string
)

// runCmd is the one command this binary offers: read a pre-built program
// tree, type-check it, print diagnostics, then evaluate it regardless of
// what the checker found. There's no "check only" or "run only" split —
// spec.md §6's driver always does both.
var runCmd = &cobra.Command{
	Use:   "run [tree.json]",
	Short: "type-check and evaluate a program tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, name, err := readTree(args)
		if err != nil {
			exitWithError("%v", err)
			return nil
		}

		prog, err := treeio.Load(raw)
		if err != nil {
			exitWithError("couldn't load the program tree: %v", err)
			return nil
		}

		cfg, err := loadConfig(".nrc.yaml")
		if err != nil {
			exitWithError("couldn't read .nrc.yaml: %v", err)
			return nil
		}

		src := sourceFor(name, cfg.TabWidth)

		resolve := hostResolver(os.Stdout, os.Stdin)
		summary := driver.Run(prog, os.Stdout, resolve)

		noColor, _ := cmd.Flags().GetBool("no-color")
		debug, _ := cmd.Flags().GetBool("debug")

		if len(summary.Diagnostics) > 0 {
			if colorEnabled(noColor) {
				fmt.Fprintln(os.Stderr, diagnostics.FormatAll(src, summary.Diagnostics, true))
			} else {
				fmt.Fprintln(os.Stderr, diagnostics.Compact(src, summary.Diagnostics))
			}
		}

		if summary.RuntimeErr != nil {
			fmt.Fprintf(os.Stderr, "runtime error: %v\n", summary.RuntimeErr)
		}

		trailing := driver.TrailingLine(summary.Diagnostics)
		if debug {
			trailing = fmt.Sprintf("[run %s] %s", uuid.NewString(), trailing)
		}
		fmt.Println(trailing)

		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&evalFlag, "eval", "e", "", "inline JSON tree, instead of reading a file")
	runCmd.Flags().StringVar(&sourceFlag, "source", "", "original source text, for highlighted diagnostic excerpts")
	rootCmd.AddCommand(runCmd)
}

func readTree(args []string) (raw []byte, name string, err error) {
	if evalFlag != "" {
		return []byte(evalFlag), "<eval>", nil
	}
	if len(args) == 0 {
		return nil, "", fmt.Errorf("give me a tree file, or use --eval")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("couldn't read %s: %w", args[0], err)
	}
	return data, args[0], nil
}

// sourceFor builds the SourceFile diagnostics are rendered against. With
// no --source given there's no original text to underline, so callers
// fall back to diagnostics.Compact, which never touches src.Lines.
func sourceFor(name string, tabWidth int) *diagnostics.SourceFile {
	if sourceFlag == "" {
		return diagnostics.NewSourceFile(name, "", tabWidth)
	}
	text, err := os.ReadFile(sourceFlag)
	if err != nil {
		return diagnostics.NewSourceFile(name, "", tabWidth)
	}
	return diagnostics.NewSourceFile(sourceFlag, string(text), tabWidth)
}
