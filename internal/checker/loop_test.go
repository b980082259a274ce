package checker

import (
	"testing"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
)

func TestCheckLoopValid(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	l := &ast.Loop{
		Count: number("10"),
		Var:   typedName("i", "int"),
		Body:  []ast.Statement{&ast.Print{Arg: name("i")}},
	}
	c.checkLoop(l, root)
	if root.Sink().ErrorCount() != 0 {
		t.Errorf("a valid loop should not diagnose, got %d errors", root.Sink().ErrorCount())
	}
}

func TestCheckLoopNonIntCount(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	l := &ast.Loop{
		Count: str("oops"),
		Var:   typedName("i", "int"),
		Body:  nil,
	}
	c.checkLoop(l, root)
	if root.Sink().ErrorCount() != 1 {
		t.Errorf("a non-int loop count should diagnose once, got %d", root.Sink().ErrorCount())
	}
}

func TestCheckLoopInductionVarMustBeInt(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	l := &ast.Loop{
		Count: number("10"),
		Var:   typedName("i", "str"),
		Body:  nil,
	}
	c.checkLoop(l, root)
	if root.Sink().ErrorCount() != 1 {
		t.Errorf("a non-int induction variable should diagnose once, got %d", root.Sink().ErrorCount())
	}
}

func TestCheckLoopPropagatesBodyExit(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	l := &ast.Loop{
		Count: number("3"),
		Var:   typedName("i", "int"),
		Body:  []ast.Statement{&ast.Return{Value: name("i")}},
	}
	exit := c.checkLoop(l, root)
	if !exit.Present() {
		t.Error("a loop whose body unconditionally returns should propagate that as its own exit point")
	}
}

func TestCheckLoopVarScopedToBody(t *testing.T) {
	c := New()
	root := scope.NewRoot()

	l := &ast.Loop{
		Count: number("3"),
		Var:   typedName("i", "int"),
		Body:  nil,
	}
	c.checkLoop(l, root)
	if _, ok := root.LookupLocal("i"); ok {
		t.Error("the induction variable should not leak into the enclosing scope")
	}
}
