package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/values"
)

func TestExecLoopBindsInductionVariableEachIteration(t *testing.T) {
	var buf bytes.Buffer
	ev := New(&buf)
	root := scope.NewRoot()

	l := &ast.Loop{
		Count: number("3"),
		Var:   typedName("i", "int"),
		Body:  []ast.Statement{&ast.Print{Arg: name("i")}},
	}
	ev.ExecCommand(l, root)
	if got := buf.String(); got != "0\n1\n2\n" {
		t.Errorf("loop output = %q, want %q", got, "0\n1\n2\n")
	}
}

func TestExecLoopZeroCountRunsNothing(t *testing.T) {
	var buf bytes.Buffer
	ev := New(&buf)
	root := scope.NewRoot()

	l := &ast.Loop{
		Count: number("0"),
		Var:   typedName("i", "int"),
		Body:  []ast.Statement{&ast.Print{Arg: name("i")}},
	}
	ev.ExecCommand(l, root)
	if buf.Len() != 0 {
		t.Error("a zero-count loop should run its body zero times")
	}
}

func TestExecLoopNonIntCountErrors(t *testing.T) {
	ev := New(&bytes.Buffer{})
	root := scope.NewRoot()

	l := &ast.Loop{Count: str("oops"), Var: typedName("i", "int"), Body: nil}
	if _, _, err := ev.ExecCommand(l, root); err == nil {
		t.Error("a non-int loop count should error at runtime")
	}
}

func TestExecLoopPropagatesExitFromBody(t *testing.T) {
	var buf bytes.Buffer
	ev := New(&buf)
	root := scope.NewRoot()

	l := &ast.Loop{
		Count: number("5"),
		Var:   typedName("i", "int"),
		Body: []ast.Statement{
			&ast.Return{Value: name("i")},
			&ast.Print{Arg: str("unreachable")},
		},
	}
	exited, val, err := ev.ExecCommand(l, root)
	if err != nil || !exited || val != values.IntValue(0) {
		t.Errorf("loop exiting on first iteration = (%v, %v, %v), want (true, 0, nil)", exited, val, err)
	}
	if strings.Contains(buf.String(), "unreachable") {
		t.Error("a return inside a loop body should stop that iteration immediately")
	}
}

func TestExecLoopInductionVarNotVisibleAfterLoop(t *testing.T) {
	ev := New(&bytes.Buffer{})
	root := scope.NewRoot()

	l := &ast.Loop{Count: number("2"), Var: typedName("i", "int"), Body: nil}
	ev.ExecCommand(l, root)
	if _, ok := root.LookupLocal("i"); ok {
		t.Error("the induction variable should not leak into the enclosing scope")
	}
}
