package treeio

import (
	"testing"

	"github.com/cwbudde/n/internal/ast"
)

func mustLoad(t *testing.T, raw string) *ast.Program {
	t.Helper()
	prog, err := Load([]byte(raw))
	if err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	return prog
}

func valueTok(typ, lit string) string {
	return `{"kind":"value","token":{"type":"` + typ + `","literal":"` + lit + `","pos":{"line":1,"column":1,"endLine":1,"endColumn":2}}}`
}

func TestLoadImport(t *testing.T) {
	raw := `{"statements":[{"kind":"import","impTok":{"type":"NAME","literal":"imp","pos":{"line":1,"column":1,"endLine":1,"endColumn":4}},"library":{"type":"NAME","literal":"io","pos":{"line":1,"column":5,"endLine":1,"endColumn":7}}}]}`
	prog := mustLoad(t, raw)
	imp, ok := prog.Statements[0].(*ast.Import)
	if !ok {
		t.Fatalf("statement 0 = %T, want *ast.Import", prog.Statements[0])
	}
	if imp.Library.Literal != "io" {
		t.Errorf("imp.Library.Literal = %q, want %q", imp.Library.Literal, "io")
	}
}

func TestLoadFunctionDef(t *testing.T) {
	raw := `{"statements":[{"kind":"functionDef",
		"funTok":{"type":"NAME","literal":"fun","pos":{"line":1,"column":1,"endLine":1,"endColumn":4}},
		"name":{"type":"NAME","literal":"f","pos":{"line":1,"column":5,"endLine":1,"endColumn":6}},
		"args":[{"name":{"type":"NAME","literal":"n","pos":{"line":1,"column":7,"endLine":1,"endColumn":8}},"type":{"type":"NAME","literal":"int","pos":{"line":1,"column":9,"endLine":1,"endColumn":12}}}],
		"returnType":{"type":"NAME","literal":"int","pos":{"line":1,"column":13,"endLine":1,"endColumn":16}},
		"body":[{"kind":"return","returnTok":{"type":"NAME","literal":"return","pos":{"line":1,"column":17,"endLine":1,"endColumn":23}},"value":` + valueTok("NAME", "n") + `}],
		"endTok":{"type":"NAME","literal":"}","pos":{"line":1,"column":24,"endLine":1,"endColumn":25}}
	}]}`
	prog := mustLoad(t, raw)
	f, ok := prog.Statements[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("statement 0 = %T, want *ast.FunctionDef", prog.Statements[0])
	}
	if f.Name.Literal != "f" || len(f.Args) != 1 || f.Args[0].Name() != "n" || f.Args[0].Type() != "int" {
		t.Errorf("decoded FunctionDef = %+v", f)
	}
	if len(f.Body) != 1 {
		t.Fatalf("f.Body has %d statements, want 1", len(f.Body))
	}
	if _, ok := f.Body[0].(*ast.Return); !ok {
		t.Errorf("f.Body[0] = %T, want *ast.Return", f.Body[0])
	}
}

func TestLoadLoop(t *testing.T) {
	raw := `{"statements":[{"kind":"loop",
		"loopTok":{"type":"NUMBER","literal":"3","pos":{"line":1,"column":1,"endLine":1,"endColumn":2}},
		"count":` + valueTok("NUMBER", "3") + `,
		"var":{"name":{"type":"NAME","literal":"i","pos":{"line":1,"column":3,"endLine":1,"endColumn":4}},"type":{"type":"NAME","literal":"int","pos":{"line":1,"column":5,"endLine":1,"endColumn":8}}},
		"body":[],
		"endTok":{"type":"NAME","literal":"}","pos":{"line":1,"column":9,"endLine":1,"endColumn":10}}
	}]}`
	prog := mustLoad(t, raw)
	l, ok := prog.Statements[0].(*ast.Loop)
	if !ok {
		t.Fatalf("statement 0 = %T, want *ast.Loop", prog.Statements[0])
	}
	if l.Var.Name() != "i" || l.Var.Type() != "int" {
		t.Errorf("decoded Loop.Var = %+v", l.Var)
	}
}

func TestLoadPrint(t *testing.T) {
	raw := `{"statements":[{"kind":"print","printTok":{"type":"NAME","literal":"print","pos":{"line":1,"column":1,"endLine":1,"endColumn":6}},"arg":` + valueTok("STRING", "hi") + `}]}`
	prog := mustLoad(t, raw)
	p, ok := prog.Statements[0].(*ast.Print)
	if !ok {
		t.Fatalf("statement 0 = %T, want *ast.Print", prog.Statements[0])
	}
	v, ok := p.Arg.(*ast.Value)
	if !ok || v.Tok.Literal != "hi" {
		t.Errorf("decoded Print.Arg = %+v", p.Arg)
	}
}

func TestLoadDeclare(t *testing.T) {
	raw := `{"statements":[{"kind":"declare",
		"varTok":{"type":"NAME","literal":"var","pos":{"line":1,"column":1,"endLine":1,"endColumn":4}},
		"name":{"name":{"type":"NAME","literal":"x","pos":{"line":1,"column":5,"endLine":1,"endColumn":6}},"type":{"type":"NAME","literal":"int","pos":{"line":1,"column":7,"endLine":1,"endColumn":10}}},
		"value":` + valueTok("NUMBER", "5") + `
	}]}`
	prog := mustLoad(t, raw)
	d, ok := prog.Statements[0].(*ast.Declare)
	if !ok {
		t.Fatalf("statement 0 = %T, want *ast.Declare", prog.Statements[0])
	}
	if d.Name.Name() != "x" || d.Name.Type() != "int" {
		t.Errorf("decoded Declare.Name = %+v", d.Name)
	}
}

func TestLoadIfAndIfElse(t *testing.T) {
	raw := `{"statements":[
		{"kind":"if","ifTok":{"type":"NAME","literal":"if","pos":{"line":1,"column":1,"endLine":1,"endColumn":3}},"cond":` + valueTok("BOOLEAN", "true") + `,"body":[],"endTok":{"type":"NAME","literal":"}","pos":{"line":1,"column":4,"endLine":1,"endColumn":5}}},
		{"kind":"ifElse","ifTok":{"type":"NAME","literal":"if","pos":{"line":1,"column":1,"endLine":1,"endColumn":3}},"cond":` + valueTok("BOOLEAN", "false") + `,"ifTrue":[],"ifFalse":[],"endTok":{"type":"NAME","literal":"}","pos":{"line":1,"column":4,"endLine":1,"endColumn":5}}}
	]}`
	prog := mustLoad(t, raw)
	if _, ok := prog.Statements[0].(*ast.If); !ok {
		t.Errorf("statement 0 = %T, want *ast.If", prog.Statements[0])
	}
	if _, ok := prog.Statements[1].(*ast.IfElse); !ok {
		t.Errorf("statement 1 = %T, want *ast.IfElse", prog.Statements[1])
	}
}

func TestLoadExprStatement(t *testing.T) {
	raw := `{"statements":[{"kind":"exprStatement","expr":` + valueTok("NUMBER", "1") + `}]}`
	prog := mustLoad(t, raw)
	if _, ok := prog.Statements[0].(*ast.ExprStatement); !ok {
		t.Errorf("statement 0 = %T, want *ast.ExprStatement", prog.Statements[0])
	}
}

func TestLoadExpressionKinds(t *testing.T) {
	raw := `{"statements":[{"kind":"exprStatement","expr":{
		"kind":"ifElseExpr",
		"questionTok":{"type":"NAME","literal":"?","pos":{"line":1,"column":1,"endLine":1,"endColumn":2}},
		"cond":` + valueTok("BOOLEAN", "true") + `,
		"ifTrue":{"kind":"functionCallback","callee":` + valueTok("NAME", "f") + `,"args":[` + valueTok("NUMBER", "1") + `],"endTok":{"type":"NAME","literal":")","pos":{"line":1,"column":1,"endLine":1,"endColumn":2}}},
		"ifFalse":{"kind":"importedCommand","library":{"type":"NAME","literal":"io","pos":{"line":1,"column":1,"endLine":1,"endColumn":3}},"command":{"type":"NAME","literal":"println","pos":{"line":1,"column":1,"endLine":1,"endColumn":8}},"args":[],"endTok":{"type":"NAME","literal":")","pos":{"line":1,"column":1,"endLine":1,"endColumn":2}}}
	}}]}`
	prog := mustLoad(t, raw)
	es, ok := prog.Statements[0].(*ast.ExprStatement)
	if !ok {
		t.Fatalf("statement 0 = %T, want *ast.ExprStatement", prog.Statements[0])
	}
	ie, ok := es.Expr.(*ast.IfElseExpr)
	if !ok {
		t.Fatalf("expr = %T, want *ast.IfElseExpr", es.Expr)
	}
	if _, ok := ie.IfTrue.(*ast.FunctionCallback); !ok {
		t.Errorf("ifTrue = %T, want *ast.FunctionCallback", ie.IfTrue)
	}
	if _, ok := ie.IfFalse.(*ast.ImportedCommand); !ok {
		t.Errorf("ifFalse = %T, want *ast.ImportedCommand", ie.IfFalse)
	}
}

func TestLoadBinaryAndUnaryExpr(t *testing.T) {
	raw := `{"statements":[{"kind":"exprStatement","expr":{
		"kind":"binaryExpr",
		"left":{"kind":"unaryExpr","op":{"type":"NEGATE","literal":"-","pos":{"line":1,"column":1,"endLine":1,"endColumn":2}},"operand":` + valueTok("NUMBER", "1") + `},
		"op":{"type":"ADD","literal":"+","pos":{"line":1,"column":1,"endLine":1,"endColumn":2}},
		"right":` + valueTok("NUMBER", "2") + `
	}}]}`
	prog := mustLoad(t, raw)
	es := prog.Statements[0].(*ast.ExprStatement)
	b, ok := es.Expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expr = %T, want *ast.BinaryExpr", es.Expr)
	}
	if _, ok := b.Left.(*ast.UnaryExpr); !ok {
		t.Errorf("b.Left = %T, want *ast.UnaryExpr", b.Left)
	}
}

func TestLoadValueWithInnerExpression(t *testing.T) {
	raw := `{"statements":[{"kind":"exprStatement","expr":{"kind":"value","inner":` + valueTok("NUMBER", "7") + `}}]}`
	prog := mustLoad(t, raw)
	es := prog.Statements[0].(*ast.ExprStatement)
	v, ok := es.Expr.(*ast.Value)
	if !ok || v.Inner == nil {
		t.Fatalf("expr = %+v, want a *ast.Value wrapping an inner expression", es.Expr)
	}
	inner, ok := v.Inner.(*ast.Value)
	if !ok || inner.Tok.Literal != "7" {
		t.Errorf("v.Inner = %+v, want a literal 7", v.Inner)
	}
}

func TestLoadUnknownStatementKindErrors(t *testing.T) {
	if _, err := Load([]byte(`{"statements":[{"kind":"bogus"}]}`)); err == nil {
		t.Error("an unrecognized statement kind should error")
	}
}

func TestLoadUnknownTokenTypeErrors(t *testing.T) {
	raw := `{"statements":[{"kind":"print","printTok":{"type":"NAME","literal":"print","pos":{}},"arg":{"kind":"value","token":{"type":"NOT_A_TYPE","literal":"x","pos":{}}}}]}`
	if _, err := Load([]byte(raw)); err == nil {
		t.Error("an unrecognized token type should error")
	}
}
