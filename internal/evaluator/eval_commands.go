package evaluator

import (
	"fmt"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/types"
	"github.com/cwbudde/n/internal/values"
)

// ExecCommand executes one command (top-level or inside a block). It
// returns (exited, value, err): exited reports whether this command left
// its enclosing function (a return, or an if, if/else or loop whose body
// ran a return),
// in which case value is the function's result. Grounded on
// original_source/python/n.py's eval_command, which threads the same
// (exit, value) pair back up through if/loop/function bodies.
func (ev *Evaluator) ExecCommand(stmt ast.Statement, s *scope.Scope) (bool, values.Value, error) {
	switch v := stmt.(type) {
	case *ast.Import:
		return ev.execImport(v, s)
	case *ast.FunctionDef:
		return ev.execFunctionDef(v, s)
	case *ast.Loop:
		return ev.execLoop(v, s)
	case *ast.Print:
		return ev.execPrint(v, s)
	case *ast.Return:
		val, err := ev.EvalExpr(v.Value, s)
		if err != nil {
			return false, nil, err
		}
		return true, val, nil
	case *ast.Declare:
		return ev.execDeclare(v, s)
	case *ast.If:
		return ev.execIf(v, s)
	case *ast.IfElse:
		return ev.execIfElse(v, s)
	case *ast.ExprStatement:
		_, err := ev.EvalExpr(v.Expr, s)
		return false, nil, err
	default:
		return false, nil, unexpectedCommand(stmt)
	}
}

func (ev *Evaluator) execImport(imp *ast.Import, s *scope.Scope) (bool, values.Value, error) {
	if ev.resolve == nil {
		return false, nil, nil
	}
	if _, ok := s.FindImport(imp.Library.Literal); ok {
		return false, nil, nil
	}
	ns, ok := ev.resolve(imp.Library.Literal)
	if !ok {
		return false, nil, fmt.Errorf("I don't know of a library called `%s`", imp.Library.Literal)
	}
	s.AddImport(ns)
	return false, nil, nil
}

func (ev *Evaluator) execFunctionDef(f *ast.FunctionDef, s *scope.Scope) (bool, values.Value, error) {
	kind, _ := types.ParsePrimitiveName(f.ReturnType.Literal)
	params := make([]values.Param, len(f.Args))
	for i, arg := range f.Args {
		argKind, _ := types.ParsePrimitiveName(arg.Type())
		params[i] = values.Param{Name: arg.Name(), Type: types.NewPrimitive(argKind)}
	}
	fn := &values.FunctionValue{
		Name:          f.Name.Literal,
		Scope:         s,
		Params:        params,
		Return:        types.NewPrimitive(kind),
		Body:          f.Body,
		DefaultReturn: f.DefaultReturn,
	}
	s.Insert(f.Name.Literal, &values.Variable{Declared: fn.Type(), Value: fn}, f.Name.Pos)
	return false, nil, nil
}

func (ev *Evaluator) execPrint(p *ast.Print, s *scope.Scope) (bool, values.Value, error) {
	val, err := ev.EvalExpr(p.Arg, s)
	if err != nil {
		return false, nil, err
	}
	fmt.Fprintln(ev.output, val.String())
	return false, nil, nil
}

func (ev *Evaluator) execDeclare(d *ast.Declare, s *scope.Scope) (bool, values.Value, error) {
	val, err := ev.EvalExpr(d.Value, s)
	if err != nil {
		return false, nil, err
	}
	s.Insert(d.Name.Name(), &values.Variable{Declared: val.Type(), Value: val}, d.Name.Range())
	return false, nil, nil
}

func (ev *Evaluator) execIf(i *ast.If, s *scope.Scope) (bool, values.Value, error) {
	cond, err := ev.EvalExpr(i.Cond, s)
	if err != nil {
		return false, nil, err
	}
	if !truthy(cond) {
		return false, nil, nil
	}
	return ev.execBlock(i.Body, s.NewChild(nil))
}

func (ev *Evaluator) execIfElse(i *ast.IfElse, s *scope.Scope) (bool, values.Value, error) {
	cond, err := ev.EvalExpr(i.Cond, s)
	if err != nil {
		return false, nil, err
	}
	if truthy(cond) {
		return ev.execBlock(i.IfTrue, s.NewChild(nil))
	}
	return ev.execBlock(i.IfFalse, s.NewChild(nil))
}

// execBlock runs a sequence of commands sharing one child scope (a
// function body, loop iteration, or if/else branch), stopping and
// propagating the first exit it sees.
func (ev *Evaluator) execBlock(body []ast.Statement, s *scope.Scope) (bool, values.Value, error) {
	for _, stmt := range body {
		exited, val, err := ev.ExecCommand(stmt, s)
		if err != nil {
			return false, nil, err
		}
		if exited {
			return true, val, nil
		}
	}
	return false, nil, nil
}
