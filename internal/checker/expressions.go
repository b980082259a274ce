package checker

import (
	"fmt"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/token"
	"github.com/cwbudde/n/internal/types"
)

// CheckExpr type-checks e and returns its inferred type, or types.Unknown
// once a diagnostic has already been emitted for it (so that nothing
// downstream re-reports the same problem — spec.md §4.4/§8).
func (c *Checker) CheckExpr(e ast.Expression, s *scope.Scope) types.Type {
	switch v := e.(type) {
	case *ast.Value:
		return c.checkValue(v, s)
	case *ast.IfElseExpr:
		return c.checkIfElseExpr(v, s)
	case *ast.FunctionCallback:
		return c.checkCall(v, s)
	case *ast.ImportedCommand:
		s.Sink().AddWarning("imported commands are not type-checked", v.Range())
		return types.Unknown
	case *ast.BinaryExpr:
		if v.Op.Type.IsComparison() {
			return c.checkCompareChain(v, s)
		}
		return c.checkBinary(v, s)
	case *ast.UnaryExpr:
		return c.checkUnary(v, s)
	default:
		s.Sink().AddError(fmt.Sprintf("internal problem: unexpected expression node %T", e), e.Range())
		return types.Unknown
	}
}

func (c *Checker) checkValue(v *ast.Value, s *scope.Scope) types.Type {
	if v.Inner != nil {
		return c.CheckExpr(v.Inner, s)
	}
	tok := *v.Tok
	switch tok.Type {
	case token.NUMBER:
		return types.NewPrimitive(types.Int)
	case token.STRING:
		return types.NewPrimitive(types.Str)
	case token.BOOLEAN:
		return types.NewPrimitive(types.Bool)
	case token.NAME:
		variable, ok := s.Lookup(tok.Literal)
		if !ok {
			s.Sink().AddError(fmt.Sprintf("you haven't yet defined `%s`", tok.Literal), tok.Pos)
			return types.Unknown
		}
		return variable.Declared
	default:
		s.Sink().AddError(fmt.Sprintf("internal problem: unexpected value token type %s", tok.Type), tok.Pos)
		return types.Unknown
	}
}

func (c *Checker) checkIfElseExpr(e *ast.IfElseExpr, s *scope.Scope) types.Type {
	condType := c.CheckExpr(e.Cond, s)
	trueType := c.CheckExpr(e.IfTrue, s)
	falseType := c.CheckExpr(e.IfFalse, s)

	if !types.IsUnknown(condType) && !types.Equal(condType, types.NewPrimitive(types.Bool)) {
		s.Sink().AddError(fmt.Sprintf("the condition here should be a bool, not a %s", condType), e.Cond.Range())
	}
	if types.IsUnknown(trueType) || types.IsUnknown(falseType) {
		return types.Unknown
	}
	if !types.Equal(trueType, falseType) {
		s.Sink().AddError(fmt.Sprintf(
			"the branches of the if-else expression should have the same type, but the true branch has type %s while the false branch has type %s",
			trueType, falseType), e.Range())
		return types.Unknown
	}
	return trueType
}

func (c *Checker) checkCall(call *ast.FunctionCallback, s *scope.Scope) types.Type {
	calleeType := c.CheckExpr(call.Callee, s)
	if types.IsUnknown(calleeType) {
		for _, arg := range call.Args {
			c.CheckExpr(arg, s)
		}
		return types.Unknown
	}
	fn, ok := calleeType.(types.Func)
	if !ok {
		s.Sink().AddError(fmt.Sprintf("%s is not callable", calleeType), call.Range())
		for _, arg := range call.Args {
			c.CheckExpr(arg, s)
		}
		return types.Unknown
	}

	for i, arg := range call.Args {
		argType := c.CheckExpr(arg, s)
		if i >= len(fn.Args) {
			continue
		}
		if !types.IsUnknown(argType) && !types.Equal(argType, fn.Args[i]) {
			s.Sink().AddError(fmt.Sprintf(
				"for a %s's argument #%d, you gave a %s, but you should've given a %s",
				fn, i+1, argType, fn.Args[i]), call.Range())
		}
	}
	if len(call.Args) != len(fn.Args) {
		s.Sink().AddError(fmt.Sprintf("a %s has %d argument(s), but you gave %d", fn, len(fn.Args), len(call.Args)), call.Range())
	}
	return fn.Return
}

func (c *Checker) checkBinary(b *ast.BinaryExpr, s *scope.Scope) types.Type {
	leftType := c.CheckExpr(b.Left, s)
	rightType := c.CheckExpr(b.Right, s)
	if types.IsUnknown(leftType) || types.IsUnknown(rightType) {
		return types.Unknown
	}
	leftPrim, leftOK := leftType.(types.Primitive)
	rightPrim, rightOK := rightType.(types.Primitive)
	if !leftOK || !rightOK {
		s.Sink().AddError(fmt.Sprintf("I don't know how to use %s on a %s and %s", b.Op.Type, leftType, rightType), b.Range())
		return types.Unknown
	}
	result, ok := types.LookupBinary(b.Op.Type, leftPrim.Kind, rightPrim.Kind)
	if !ok {
		s.Sink().AddError(fmt.Sprintf("I don't know how to use %s on a %s and %s", b.Op.Type, leftType, rightType), b.Range())
		return types.Unknown
	}
	return types.NewPrimitive(result)
}

func (c *Checker) checkUnary(u *ast.UnaryExpr, s *scope.Scope) types.Type {
	operandType := c.CheckExpr(u.Operand, s)
	if types.IsUnknown(operandType) {
		return types.Unknown
	}
	operandPrim, ok := operandType.(types.Primitive)
	if !ok {
		s.Sink().AddError(fmt.Sprintf("I don't know how to use %s on a %s", u.Op.Type, operandType), u.Range())
		return types.Unknown
	}
	result, ok := types.LookupUnary(u.Op.Type, operandPrim.Kind)
	if !ok {
		s.Sink().AddError(fmt.Sprintf("I don't know how to use %s on a %s", u.Op.Type, operandType), u.Range())
		return types.Unknown
	}
	return types.NewPrimitive(result)
}
