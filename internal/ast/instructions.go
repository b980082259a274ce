package ast

import (
	"strings"

	"github.com/cwbudde/n/internal/token"
)

// Import is the `imp "library"` command.
type Import struct {
	ImpTok  token.Token
	Library token.Token
}

func (i *Import) statementNode()      {}
func (i *Import) TokenLiteral() string { return i.ImpTok.Literal }
func (i *Import) String() string       { return "imp " + i.Library.Literal }
func (i *Import) Range() token.Position {
	return token.Position{Line: i.ImpTok.Pos.Line, Column: i.ImpTok.Pos.Column, EndLine: i.Library.Pos.EndLine, EndColumn: i.Library.Pos.EndColumn}
}

// FunctionDef is `fun name(args) -> returntype { body } [defaultreturn]`.
type FunctionDef struct {
	FunTok        token.Token
	Name          token.Token
	Args          []TypedName
	ReturnType    token.Token
	Body          []Statement
	DefaultReturn Expression // nil when absent
	EndTok        token.Token
}

func (f *FunctionDef) statementNode()      {}
func (f *FunctionDef) TokenLiteral() string { return f.FunTok.Literal }
func (f *FunctionDef) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.Name() + ": " + a.Type()
	}
	return "fun " + f.Name.Literal + "(" + strings.Join(parts, ", ") + ") -> " + f.ReturnType.Literal + " { ... }"
}
func (f *FunctionDef) Range() token.Position {
	return token.Position{Line: f.FunTok.Pos.Line, Column: f.FunTok.Pos.Column, EndLine: f.EndTok.Pos.EndLine, EndColumn: f.EndTok.Pos.EndColumn}
}

// Loop is `N times as (name: type) do { body }`.
type Loop struct {
	LoopTok token.Token
	Count   Expression
	Var     TypedName
	Body    []Statement
	EndTok  token.Token
}

func (l *Loop) statementNode()      {}
func (l *Loop) TokenLiteral() string { return l.LoopTok.Literal }
func (l *Loop) String() string {
	return l.Count.String() + " times as (" + l.Var.Name() + ": " + l.Var.Type() + ") do { ... }"
}
func (l *Loop) Range() token.Position {
	start := l.Count.Range()
	return token.Position{Line: start.Line, Column: start.Column, EndLine: l.EndTok.Pos.EndLine, EndColumn: l.EndTok.Pos.EndColumn}
}

// Print is `print expr`.
type Print struct {
	PrintTok token.Token
	Arg      Expression
}

func (p *Print) statementNode()      {}
func (p *Print) TokenLiteral() string { return p.PrintTok.Literal }
func (p *Print) String() string       { return "print " + p.Arg.String() }
func (p *Print) Range() token.Position {
	end := p.Arg.Range()
	return token.Position{Line: p.PrintTok.Pos.Line, Column: p.PrintTok.Pos.Column, EndLine: end.EndLine, EndColumn: end.EndColumn}
}

// Return is `return expr`.
type Return struct {
	ReturnTok token.Token
	Value     Expression
}

func (r *Return) statementNode()      {}
func (r *Return) TokenLiteral() string { return r.ReturnTok.Literal }
func (r *Return) String() string       { return "return " + r.Value.String() }
func (r *Return) Range() token.Position {
	end := r.Value.Range()
	return token.Position{Line: r.ReturnTok.Pos.Line, Column: r.ReturnTok.Pos.Column, EndLine: end.EndLine, EndColumn: end.EndColumn}
}

// Declare is `var name: type = expr`.
type Declare struct {
	VarTok token.Token
	Name   TypedName
	Value  Expression
}

func (d *Declare) statementNode()      {}
func (d *Declare) TokenLiteral() string { return d.VarTok.Literal }
func (d *Declare) String() string {
	return "var " + d.Name.Name() + ": " + d.Name.Type() + " = " + d.Value.String()
}
func (d *Declare) Range() token.Position {
	end := d.Value.Range()
	return token.Position{Line: d.VarTok.Pos.Line, Column: d.VarTok.Pos.Column, EndLine: end.EndLine, EndColumn: end.EndColumn}
}

// If is `if cond { body }`, with no else branch.
type If struct {
	IfTok  token.Token
	Cond   Expression
	Body   []Statement
	EndTok token.Token
}

func (i *If) statementNode()      {}
func (i *If) TokenLiteral() string { return i.IfTok.Literal }
func (i *If) String() string       { return "if " + i.Cond.String() + " { ... }" }
func (i *If) Range() token.Position {
	return token.Position{Line: i.IfTok.Pos.Line, Column: i.IfTok.Pos.Column, EndLine: i.EndTok.Pos.EndLine, EndColumn: i.EndTok.Pos.EndColumn}
}

// IfElse is `if cond { if_true } else { if_false }`.
type IfElse struct {
	IfTok   token.Token
	Cond    Expression
	IfTrue  []Statement
	IfFalse []Statement
	EndTok  token.Token
}

func (i *IfElse) statementNode()      {}
func (i *IfElse) TokenLiteral() string { return i.IfTok.Literal }
func (i *IfElse) String() string {
	return "if " + i.Cond.String() + " { ... } else { ... }"
}
func (i *IfElse) Range() token.Position {
	return token.Position{Line: i.IfTok.Pos.Line, Column: i.IfTok.Pos.Column, EndLine: i.EndTok.Pos.EndLine, EndColumn: i.EndTok.Pos.EndColumn}
}

// ExprStatement wraps a bare expression used as a command (e.g. an
// imported_command call invoked for its side effect, not its value).
type ExprStatement struct {
	Expr Expression
}

func (e *ExprStatement) statementNode()      {}
func (e *ExprStatement) TokenLiteral() string { return e.Expr.TokenLiteral() }
func (e *ExprStatement) String() string       { return e.Expr.String() }
func (e *ExprStatement) Range() token.Position { return e.Expr.Range() }
