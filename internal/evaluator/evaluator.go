// Package evaluator implements the tree-walking evaluator of spec.md §4.5:
// a second pass over the same tree the checker just annotated, executing
// it for effect (print output) and value (function/expression results).
// It trusts the checker's types entirely and never re-derives them; if the
// checker already reported a type error, the evaluator simply does its
// best with whatever runtime values it actually finds (spec.md §6: the
// driver runs both passes unconditionally, so a program with reported
// errors is still evaluated).
//
// Grounded on go-dws's internal/interp.Interpreter: a small struct holding
// the output writer and nothing else mutable, with evaluation split one
// file per construct family, and rule for rule on
// original_source/python/n.py's eval_expr/eval_command.
package evaluator

import (
	"fmt"
	"io"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/values"
)

// Evaluator executes a checked program. It carries the output writer and
// the host's library Resolver; everything else threads through the Scope
// argument of every method, the same discipline the checker uses for its
// Scope/Sink pair. The evaluator keeps its own Resolver (rather than
// sharing the checker's) because it walks its own, freshly rooted scope
// tree — spec.md §6 runs the checker and the evaluator as two independent
// passes over one tree, each with its own scope chain.
type Evaluator struct {
	output  io.Writer
	resolve scope.Resolver
}

// New creates an Evaluator that writes `print` output to w, with no
// library resolver: `imp` statements run but resolve nothing.
func New(w io.Writer) *Evaluator {
	return &Evaluator{output: w}
}

// NewWithResolver creates an Evaluator that resolves `imp` statements
// through resolve, the host callable hook of spec.md §1/§4.5.
func NewWithResolver(w io.Writer, resolve scope.Resolver) *Evaluator {
	return &Evaluator{output: w, resolve: resolve}
}

// EvalProgram runs every top-level command in order. A `return` at the
// top level (outside any function) is a type error the checker already
// reported; the evaluator stops the program there rather than
// continuing past it, since there's nowhere for the value to go.
func (ev *Evaluator) EvalProgram(prog *ast.Program, root *scope.Scope) error {
	for _, stmt := range prog.Statements {
		exited, _, err := ev.ExecCommand(stmt, root)
		if err != nil {
			return err
		}
		if exited {
			return nil
		}
	}
	return nil
}

func unexpectedExpr(e ast.Expression) error {
	return fmt.Errorf("internal problem: unexpected expression node %T", e)
}

func unexpectedCommand(s ast.Statement) error {
	return fmt.Errorf("internal problem: unexpected command node %T", s)
}

// truthy mirrors the original source's reliance on Python truthiness for
// `or`/`and`/`not` on non-bool operands (spec.md §4.2): a bool is its own
// truth value, an int is truthy iff nonzero.
func truthy(v values.Value) bool {
	switch val := v.(type) {
	case values.BoolValue:
		return bool(val)
	case values.IntValue:
		return val != 0
	default:
		return true
	}
}
