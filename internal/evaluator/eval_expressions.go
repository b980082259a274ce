package evaluator

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/token"
	"github.com/cwbudde/n/internal/values"
)

// EvalExpr evaluates e in s and returns its runtime value.
func (ev *Evaluator) EvalExpr(e ast.Expression, s *scope.Scope) (values.Value, error) {
	switch v := e.(type) {
	case *ast.Value:
		return ev.evalValue(v, s)
	case *ast.IfElseExpr:
		return ev.evalIfElseExpr(v, s)
	case *ast.FunctionCallback:
		return ev.evalCall(v, s)
	case *ast.ImportedCommand:
		return ev.evalImportedCommand(v, s)
	case *ast.BinaryExpr:
		if v.Op.Type.IsComparison() {
			return ev.evalCompareChain(v, s)
		}
		return ev.evalBinary(v, s)
	case *ast.UnaryExpr:
		return ev.evalUnary(v, s)
	default:
		return nil, unexpectedExpr(e)
	}
}

func (ev *Evaluator) evalValue(v *ast.Value, s *scope.Scope) (values.Value, error) {
	if v.Inner != nil {
		return ev.EvalExpr(v.Inner, s)
	}
	tok := *v.Tok
	switch tok.Type {
	case token.NUMBER:
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s is not a valid number: %w", tok.Literal, err)
		}
		return values.IntValue(n), nil
	case token.STRING:
		// Escapes were already resolved once, when the tree was built
		// (spec.md §6); the literal here is the string's actual contents.
		return values.StrValue(tok.Literal), nil
	case token.BOOLEAN:
		switch tok.Literal {
		case "true":
			return values.BoolValue(true), nil
		case "false":
			return values.BoolValue(false), nil
		default:
			return nil, fmt.Errorf("unexpected boolean value %q", tok.Literal)
		}
	case token.NAME:
		variable, ok := s.Lookup(tok.Literal)
		if !ok {
			return nil, fmt.Errorf("`%s` isn't defined", tok.Literal)
		}
		return variable.Value, nil
	default:
		return nil, fmt.Errorf("unexpected value token type %s", tok.Type)
	}
}

func (ev *Evaluator) evalIfElseExpr(e *ast.IfElseExpr, s *scope.Scope) (values.Value, error) {
	cond, err := ev.EvalExpr(e.Cond, s)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return ev.EvalExpr(e.IfTrue, s)
	}
	return ev.EvalExpr(e.IfFalse, s)
}

func (ev *Evaluator) evalCall(call *ast.FunctionCallback, s *scope.Scope) (values.Value, error) {
	callee, err := ev.EvalExpr(call.Callee, s)
	if err != nil {
		return nil, err
	}
	args := make([]values.Value, len(call.Args))
	for i, a := range call.Args {
		args[i], err = ev.EvalExpr(a, s)
		if err != nil {
			return nil, err
		}
	}
	return ev.callFunction(callee, args)
}

// callFunction dispatches a callee value to either a user-defined
// function (a new scope parented to its defining scope, spec.md §4.5's
// lexical-capture rule) or a native one (a direct Go call).
func (ev *Evaluator) callFunction(callee values.Value, args []values.Value) (values.Value, error) {
	switch fn := callee.(type) {
	case *values.FunctionValue:
		return ev.runFunction(fn, args)
	case *values.NativeFunctionValue:
		return fn.Fn(args)
	default:
		return nil, fmt.Errorf("%s is not callable", callee.Type())
	}
}

func (ev *Evaluator) runFunction(fn *values.FunctionValue, args []values.Value) (values.Value, error) {
	if len(args) < len(fn.Params) {
		return nil, fmt.Errorf("`%s` expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}
	call := scope.NewChildFrom(fn.Scope, fn)
	for i, p := range fn.Params {
		call.Insert(p.Name, &values.Variable{Declared: p.Type, Value: args[i]}, token.Position{})
	}
	for _, stmt := range fn.Body {
		exited, value, err := ev.ExecCommand(stmt, call)
		if err != nil {
			return nil, err
		}
		if exited {
			return value, nil
		}
	}
	if fn.DefaultReturn == nil {
		return nil, fmt.Errorf("`%s` fell off the end of its body without returning a value", fn.Name)
	}
	return ev.EvalExpr(fn.DefaultReturn, call)
}

func (ev *Evaluator) evalImportedCommand(ic *ast.ImportedCommand, s *scope.Scope) (values.Value, error) {
	ns, ok := s.FindImport(ic.Library.Literal)
	if !ok {
		return nil, fmt.Errorf("library `%s` isn't imported", ic.Library.Literal)
	}
	cmd, ok := ns.Command(ic.Command.Literal)
	if !ok {
		return nil, fmt.Errorf("`%s` has no command `%s`", ic.Library.Literal, ic.Command.Literal)
	}
	args := make([]values.Value, len(ic.Args))
	for i, a := range ic.Args {
		v, err := ev.EvalExpr(a, s)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return cmd.Fn(args)
}
