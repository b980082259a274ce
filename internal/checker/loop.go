package checker

import (
	"fmt"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/types"
	"github.com/cwbudde/n/internal/values"
)

// checkLoop types `count times as (name: type) do { body }` (spec.md
// §4.4): the count must be an int, the induction variable's declared
// type must be int too, and the body runs in its own child scope with
// the variable bound. Whatever exit point the body reaches propagates
// upward, mirroring eval_loop.go's own propagation of the body's return.
func (c *Checker) checkLoop(l *ast.Loop, s *scope.Scope) ExitPoint {
	countType := c.CheckExpr(l.Count, s)
	intType := types.NewPrimitive(types.Int)
	if !types.IsUnknown(countType) && !types.Equal(countType, intType) {
		s.Sink().AddError(fmt.Sprintf("a loop count should be an int, not a %s", countType), l.Count.Range())
	}

	varKind, ok := types.ParsePrimitiveName(l.Var.Type())
	if !ok {
		s.Sink().AddError(fmt.Sprintf("`%s` is not a known type", l.Var.Type()), l.Var.Range())
	} else if varKind != types.Int {
		s.Sink().AddError(fmt.Sprintf("a loop's induction variable must be declared as int, not %s", l.Var.Type()), l.Var.Range())
	}

	body := s.NewChild(nil)
	body.Insert(l.Var.Name(), &values.Variable{Declared: intType}, l.Var.Range())
	return c.checkBlock(l.Body, body)
}
