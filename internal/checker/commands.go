package checker

import (
	"fmt"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/types"
	"github.com/cwbudde/n/internal/values"
)

// CheckCommand type-checks one command (top-level or inside a block) and returns its exit
// point (spec.md §4.4). Every diagnostic class is non-fatal: this
// function always returns, it never aborts the pass.
func (c *Checker) CheckCommand(stmt ast.Statement, s *scope.Scope) ExitPoint {
	switch v := stmt.(type) {
	case *ast.Import:
		return c.checkImport(v, s)
	case *ast.FunctionDef:
		return c.checkFunctionDef(v, s)
	case *ast.Loop:
		return c.checkLoop(v, s)
	case *ast.Print:
		return c.checkPrint(v, s)
	case *ast.Return:
		return c.checkReturn(v, s)
	case *ast.Declare:
		return c.checkDeclare(v, s)
	case *ast.If:
		return c.checkIf(v, s)
	case *ast.IfElse:
		return c.checkIfElse(v, s)
	case *ast.ExprStatement:
		c.CheckExpr(v.Expr, s)
		return NoExit()
	default:
		s.Sink().AddError(fmt.Sprintf("internal problem: unexpected command node %T", stmt), stmt.Range())
		return NoExit()
	}
}

// checkImport registers the namespace eagerly during checking so that
// later commands in the same scope can find it (spec.md §4.4); calls
// into it are still never typed (see CheckExpr). Resolution of the library name to an actual
// Namespace is supplied by the host via c.resolve; with no resolver
// wired, the import is a no-op and later ImportedCommand expressions
// against it simply go unresolved.
func (c *Checker) checkImport(imp *ast.Import, s *scope.Scope) ExitPoint {
	if c.resolve == nil {
		return NoExit()
	}
	if _, ok := s.FindImport(imp.Library.Literal); ok {
		return NoExit()
	}
	if ns, ok := c.resolve(imp.Library.Literal); ok {
		s.AddImport(ns)
	} else {
		s.Sink().AddError(fmt.Sprintf("I don't know of a library called `%s`", imp.Library.Literal), imp.Range())
	}
	return NoExit()
}

func (c *Checker) checkPrint(p *ast.Print, s *scope.Scope) ExitPoint {
	c.CheckExpr(p.Arg, s)
	return NoExit()
}

func (c *Checker) checkReturn(r *ast.Return, s *scope.Scope) ExitPoint {
	returnType := c.CheckExpr(r.Value, s)
	fn := s.EnclosingFunction()
	if fn == nil {
		s.Sink().AddError("you can't return outside a function", r.Range())
	} else if !types.IsUnknown(returnType) && !types.IsUnknown(fn.Return) && !types.Equal(returnType, fn.Return) {
		s.Sink().AddError(fmt.Sprintf(
			"you returned a %s, but the function is supposed to return a %s", returnType, fn.Return), r.Value.Range())
	}
	return Exits(r)
}

func (c *Checker) checkDeclare(d *ast.Declare, s *scope.Scope) ExitPoint {
	declared, ok := types.ParsePrimitiveName(d.Name.Type())
	var declaredType types.Type = types.Unknown
	if ok {
		declaredType = types.NewPrimitive(declared)
	} else {
		s.Sink().AddError(fmt.Sprintf("`%s` is not a known type", d.Name.Type()), d.Name.Range())
	}

	valueType := c.CheckExpr(d.Value, s)
	if ok && !types.IsUnknown(valueType) && !types.Equal(valueType, declaredType) {
		s.Sink().AddError(fmt.Sprintf(
			"you set %s, which is declared to be a %s, to what evaluates to a %s",
			d.Name.Name(), declaredType, valueType), d.Value.Range())
	}

	s.Insert(d.Name.Name(), &values.Variable{Declared: declaredType}, d.Name.Range())
	return NoExit()
}

func (c *Checker) checkIf(i *ast.If, s *scope.Scope) ExitPoint {
	condType := c.CheckExpr(i.Cond, s)
	if !types.IsUnknown(condType) && !types.Equal(condType, types.NewPrimitive(types.Bool)) {
		s.Sink().AddError(fmt.Sprintf("the condition here should be a bool, not a %s", condType), i.Cond.Range())
	}
	c.checkBlock(i.Body, s.NewChild(nil))
	// An `if` with no else is never an exit point: the branch not taken
	// means control can still fall through (spec.md §4.4).
	return NoExit()
}

func (c *Checker) checkIfElse(i *ast.IfElse, s *scope.Scope) ExitPoint {
	condType := c.CheckExpr(i.Cond, s)
	if !types.IsUnknown(condType) && !types.Equal(condType, types.NewPrimitive(types.Bool)) {
		s.Sink().AddError(fmt.Sprintf("the condition here should be a bool, not a %s", condType), i.Cond.Range())
	}
	exitTrue := c.checkBlock(i.IfTrue, s.NewChild(nil))
	exitFalse := c.checkBlock(i.IfFalse, s.NewChild(nil))
	// spec.md §4.4/§9: corrected from the original source's bug (which
	// type-checked if_true twice and never if_false); an if-else is an
	// exit point only when *both* branches unconditionally exit.
	if exitTrue.Present() && exitFalse.Present() {
		return Exits(i)
	}
	return NoExit()
}

// checkBlock checks a sequence of commands that share one child scope
// (a function body, loop body, or if/else branch), tracking the first
// exit point and warning exactly once about any command that follows it
// (spec.md §4.4, testable property in spec.md §8).
func (c *Checker) checkBlock(body []ast.Statement, s *scope.Scope) ExitPoint {
	var exitPoint ExitPoint
	warned := false
	for _, stmt := range body {
		e := c.CheckCommand(stmt, s)
		if !exitPoint.Present() {
			exitPoint = e
		} else if !warned {
			warned = true
			s.Sink().AddWarning("there are commands after this return statement, but they will never run", exitPoint.Node.Range())
		}
	}
	return exitPoint
}
