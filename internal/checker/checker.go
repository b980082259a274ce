// Package checker implements the type checker of spec.md §4.4: a
// recursive pass over the tree that annotates each expression with a
// type (or the types.Unknown sentinel), emits diagnostics into the
// scope's shared sink, and tracks reachability across commands so that
// code after a return can be flagged unreachable.
//
// Grounded on the overall shape of go-dws's internal/semantic.Analyzer
// (a pass split across one file per construct family) and, rule for
// rule, on original_source/python/n.py's type_check_expr/type_check_command.
package checker

import (
	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
)

// ExitPoint names the command that unconditionally transfers control out
// of the enclosing function body (spec.md's GLOSSARY). A zero ExitPoint
// (Node == nil) means the checked command never exits unconditionally.
type ExitPoint struct {
	Node ast.Node
}

// NoExit is the zero ExitPoint: this command does not unconditionally
// exit its enclosing function.
func NoExit() ExitPoint { return ExitPoint{} }

// Exits wraps n as the exit point: n is the command (a return, or a
// construct both of whose branches exit) that unconditionally ends the
// enclosing function body.
func Exits(n ast.Node) ExitPoint { return ExitPoint{Node: n} }

// Present reports whether e actually names an exit point.
func (e ExitPoint) Present() bool { return e.Node != nil }

// Checker holds only the one thing every check call needs but that
// doesn't belong on a Scope: the host's library Resolver. Everything
// else threads through the scope (and, through it, the shared
// diagnostic sink) explicitly, per spec.md §9's "design as an explicit
// context object ... not a mutable global" note.
type Checker struct {
	resolve scope.Resolver
}

// New creates a Checker with no library resolver: `imp` statements will
// type-check but never resolve to a usable namespace.
func New() *Checker { return &Checker{} }

// NewWithResolver creates a Checker that resolves `imp` statements
// through resolve, the host callable hook of spec.md §1/§4.5.
func NewWithResolver(resolve scope.Resolver) *Checker {
	return &Checker{resolve: resolve}
}

// CheckProgram type-checks every top-level command in order, using root
// as the top-level scope. It never returns early: every diagnostic class
// is non-fatal to the check pass (spec.md §7).
func (c *Checker) CheckProgram(prog *ast.Program, root *scope.Scope) {
	for _, stmt := range prog.Statements {
		c.CheckCommand(stmt, root)
	}
}
