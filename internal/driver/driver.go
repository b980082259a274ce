// Package driver wires the checker and evaluator together into the one
// unconditional two-pass run spec.md §6 describes: the checker always
// runs first and its diagnostics are always collected, then the evaluator
// always runs regardless of what the checker found — exactly
// original_source/python/n.py's top level, which calls `type_check`
// followed unconditionally by `parse_tree`.
package driver

import (
	"fmt"
	"io"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/checker"
	"github.com/cwbudde/n/internal/diagnostics"
	"github.com/cwbudde/n/internal/evaluator"
	"github.com/cwbudde/n/internal/scope"
)

// Summary is what the CLI reports after a run: the diagnostics collected
// by the checker pass and the runtime error, if any, the evaluator pass
// stopped on.
type Summary struct {
	Diagnostics []diagnostics.Diagnostic
	RuntimeErr  error
}

// Run type-checks prog, then evaluates it, writing `print` output to
// stdout and returning every diagnostic the checker collected plus any
// runtime error the evaluator stopped on. Neither pass's errors are
// fatal to the other — spec.md §6: "the exit code is zero even when the
// checker reported errors."
func Run(prog *ast.Program, stdout io.Writer, resolve scope.Resolver) Summary {
	checkRoot := scope.NewRoot()
	c := checker.NewWithResolver(resolve)
	c.CheckProgram(prog, checkRoot)

	evalRoot := scope.NewRoot()
	ev := evaluator.NewWithResolver(stdout, resolve)
	runtimeErr := ev.EvalProgram(prog, evalRoot)

	return Summary{
		Diagnostics: checkRoot.Sink().All(),
		RuntimeErr:  runtimeErr,
	}
}

// TrailingLine renders the "N error(s), M warning(s)" summary spec.md §6
// requires after every run.
func TrailingLine(diags []diagnostics.Diagnostic) string {
	errs, warns := 0, 0
	for _, d := range diags {
		if d.Severity == diagnostics.SeverityWarning {
			warns++
		} else {
			errs++
		}
	}
	return fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)
}
