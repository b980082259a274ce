package checker

import (
	"fmt"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/types"
	"github.com/cwbudde/n/internal/values"
)

// checkFunctionDef builds the FunctionValue eagerly and inserts it into
// the defining scope before checking its body, so a function can call
// itself recursively (spec.md §4.4: "insert the function's own name
// before checking its body"). The scope reference it closes over is the
// defining scope itself, for spec.md §4.5's lexical-capture rule.
func (c *Checker) checkFunctionDef(f *ast.FunctionDef, s *scope.Scope) ExitPoint {
	returnType, ok := types.ParsePrimitiveName(f.ReturnType.Literal)
	declaredReturn := types.Unknown
	if ok {
		declaredReturn = types.NewPrimitive(returnType)
	} else {
		s.Sink().AddError(fmt.Sprintf("`%s` is not a known type", f.ReturnType.Literal), f.ReturnType.Pos)
	}

	params := make([]values.Param, len(f.Args))
	for i, arg := range f.Args {
		kind, ok := types.ParsePrimitiveName(arg.Type())
		paramType := types.Unknown
		if ok {
			paramType = types.NewPrimitive(kind)
		} else {
			s.Sink().AddError(fmt.Sprintf("`%s` is not a known type", arg.Type()), arg.Range())
		}
		params[i] = values.Param{Name: arg.Name(), Type: paramType}
	}

	fn := &values.FunctionValue{
		Name:          f.Name.Literal,
		Scope:         s,
		Params:        params,
		Return:        declaredReturn,
		Body:          f.Body,
		DefaultReturn: f.DefaultReturn,
	}
	s.Insert(f.Name.Literal, &values.Variable{Declared: fn.Type(), Value: fn}, f.Name.Pos)

	body := s.NewChild(fn)
	for i, p := range params {
		body.Insert(p.Name, &values.Variable{Declared: p.Type}, f.Args[i].Range())
	}

	exitPoint := c.checkBlock(f.Body, body)

	switch {
	case f.DefaultReturn != nil:
		defaultType := c.CheckExpr(f.DefaultReturn, body)
		if exitPoint.Present() {
			body.Sink().AddWarning("every path already returns, so this default return will never run", f.DefaultReturn.Range())
		} else if !types.IsUnknown(defaultType) && !types.Equal(defaultType, declaredReturn) {
			s.Sink().AddError(fmt.Sprintf(
				"this function's default return evaluates to a %s, but it's supposed to return a %s",
				defaultType, declaredReturn), f.DefaultReturn.Range())
		}
	case !exitPoint.Present():
		s.Sink().AddError(fmt.Sprintf(
			"`%s` doesn't always return a value; give it a default return or make sure every path returns", f.Name.Literal), f.Range())
	}

	// A function definition is a declaration, never itself a control-flow
	// exit point of the scope it appears in.
	return NoExit()
}
