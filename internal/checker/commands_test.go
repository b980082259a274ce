package checker

import (
	"testing"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/token"
	"github.com/cwbudde/n/internal/types"
)

func resolveOnly(name string, ns *scope.Namespace) scope.Resolver {
	return func(lib string) (*scope.Namespace, bool) {
		if lib == name {
			return ns, true
		}
		return nil, false
	}
}

func TestCheckImportNoResolverIsSilent(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	imp := &ast.Import{Library: tok(token.NAME, "io")}
	c.CheckCommand(imp, root)
	if root.Sink().ErrorCount() != 0 {
		t.Error("an import with no resolver configured should not diagnose")
	}
	if _, ok := root.FindImport("io"); ok {
		t.Error("an import with no resolver should not register a namespace")
	}
}

func TestCheckImportUnknownLibrary(t *testing.T) {
	c := NewWithResolver(func(string) (*scope.Namespace, bool) { return nil, false })
	root := scope.NewRoot()

	imp := &ast.Import{Library: tok(token.NAME, "nope")}
	c.CheckCommand(imp, root)
	if root.Sink().ErrorCount() != 1 {
		t.Error("an unresolvable library should diagnose once")
	}
}

func TestCheckImportKnownLibraryRegisters(t *testing.T) {
	ns := scope.NewNamespace("io")
	c := NewWithResolver(resolveOnly("io", ns))
	root := scope.NewRoot()

	imp := &ast.Import{Library: tok(token.NAME, "io")}
	c.CheckCommand(imp, root)
	if root.Sink().ErrorCount() != 0 {
		t.Error("a resolvable library should not diagnose")
	}
	if _, ok := root.FindImport("io"); !ok {
		t.Error("a resolvable library should be registered into the scope")
	}
}

func TestCheckReturnOutsideFunction(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	r := &ast.Return{Value: number("1")}
	c.CheckCommand(r, root)
	if root.Sink().ErrorCount() != 1 {
		t.Error("a return outside any function should diagnose once")
	}
}

func TestCheckReturnTypeMismatch(t *testing.T) {
	c := New()
	root := scope.NewRoot()
	fn := &ast.FunctionDef{
		Name:       tok(token.NAME, "f"),
		ReturnType: tok(token.NAME, "int"),
		Body:       []ast.Statement{&ast.Return{Value: str("oops")}},
	}
	c.checkFunctionDef(fn, root)
	if root.Sink().ErrorCount() != 1 {
		t.Errorf("returning a str from an int function should diagnose once, got %d", root.Sink().ErrorCount())
	}
}

func TestCheckDeclareTypeMismatch(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	d := &ast.Declare{Name: typedName("x", "int"), Value: str("oops")}
	c.CheckCommand(d, root)
	if root.Sink().ErrorCount() != 1 {
		t.Error("declaring x: int = \"oops\" should diagnose once")
	}
	v, ok := root.Lookup("x")
	if !ok || !types.Equal(v.Declared, types.NewPrimitive(types.Int)) {
		t.Error("x should still be inserted with its declared type, even after a mismatch")
	}
}

func TestCheckDeclareUnknownType(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	d := &ast.Declare{Name: typedName("x", "notatype"), Value: number("1")}
	c.CheckCommand(d, root)
	if root.Sink().ErrorCount() != 1 {
		t.Error("declaring with an unknown type name should diagnose once")
	}
}

func TestCheckIfNonBoolCond(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	i := &ast.If{Cond: number("1"), Body: nil}
	c.CheckCommand(i, root)
	if root.Sink().ErrorCount() != 1 {
		t.Error("a non-bool if condition should diagnose once")
	}
}

func TestCheckIfNeverExits(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	i := &ast.If{Cond: boolean("true"), Body: []ast.Statement{&ast.Return{Value: number("1")}}}
	exit := c.CheckCommand(i, root)
	if exit.Present() {
		t.Error("an if without an else can never be a guaranteed exit point, even if its body returns")
	}
}

func TestCheckIfElseBothBranchesExit(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	ie := &ast.IfElse{
		Cond:    boolean("true"),
		IfTrue:  []ast.Statement{&ast.Return{Value: number("1")}},
		IfFalse: []ast.Statement{&ast.Return{Value: number("2")}},
	}
	exit := c.CheckCommand(ie, root)
	if !exit.Present() {
		t.Error("an if/else where both branches return should be an exit point")
	}
}

func TestCheckIfElseOnlyOneBranchExits(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	// Regression for the original source's bug: only checking if_true
	// would wrongly treat this as an unconditional exit.
	ie := &ast.IfElse{
		Cond:    boolean("true"),
		IfTrue:  []ast.Statement{&ast.Return{Value: number("1")}},
		IfFalse: []ast.Statement{&ast.Print{Arg: number("2")}},
	}
	exit := c.CheckCommand(ie, root)
	if exit.Present() {
		t.Error("an if/else should only exit when BOTH branches exit")
	}
}

func TestCheckBlockWarnsOnCodeAfterReturn(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	body := []ast.Statement{
		&ast.Return{Value: number("1")},
		&ast.Print{Arg: number("2")},
	}
	exit := c.checkBlock(body, root)
	if !exit.Present() {
		t.Error("checkBlock should report the return as the block's exit point")
	}
	if root.Sink().WarningCount() != 1 {
		t.Errorf("commands after a return should warn once, got %d", root.Sink().WarningCount())
	}
}

func TestCheckExprStatement(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	stmt := &ast.ExprStatement{Expr: binary(token.ADD, number("1"), boolean("true"))}
	c.CheckCommand(stmt, root)
	if root.Sink().ErrorCount() != 1 {
		t.Error("an ExprStatement should still type-check its inner expression")
	}
}
