package ast

import (
	"strings"

	"github.com/cwbudde/n/internal/token"
)

// Value wraps a single leaf literal/identifier token, or (for a
// parenthesized sub-expression) another Expression — the "value" node of
// spec.md §6, whose child is "token_or_tree".
type Value struct {
	Tok   *token.Token // set when this value is a literal or identifier leaf
	Inner Expression   // set instead of Tok when this value wraps a sub-expression
}

func (v *Value) expressionNode() {}
func (v *Value) TokenLiteral() string {
	if v.Tok != nil {
		return v.Tok.Literal
	}
	return v.Inner.TokenLiteral()
}
func (v *Value) String() string {
	if v.Tok != nil {
		return v.Tok.Literal
	}
	return v.Inner.String()
}
func (v *Value) Range() token.Position {
	if v.Tok != nil {
		return v.Tok.Pos
	}
	return v.Inner.Range()
}

// IsName reports whether this value is a NAME leaf, and returns it.
func (v *Value) IsName() (string, bool) {
	if v.Tok != nil && v.Tok.Type == token.NAME {
		return v.Tok.Literal, true
	}
	return "", false
}

// IfElseExpr is the `cond ? a : b` expression.
type IfElseExpr struct {
	QuestionTok token.Token
	Cond        Expression
	IfTrue      Expression
	IfFalse     Expression
}

func (e *IfElseExpr) expressionNode()      {}
func (e *IfElseExpr) TokenLiteral() string { return e.QuestionTok.Literal }
func (e *IfElseExpr) String() string {
	return "(" + e.Cond.String() + " ? " + e.IfTrue.String() + " : " + e.IfFalse.String() + ")"
}
func (e *IfElseExpr) Range() token.Position { return spanOf(e.Cond, e.IfFalse) }

// FunctionCallback is a call expression: callee followed by its arguments.
type FunctionCallback struct {
	Callee Expression
	Args   []Expression
	EndTok token.Token // closing ')' token, for range inference when Args is empty
}

func (c *FunctionCallback) expressionNode()      {}
func (c *FunctionCallback) TokenLiteral() string { return c.Callee.TokenLiteral() }
func (c *FunctionCallback) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Callee.String() + "(" + strings.Join(parts, ", ") + ")"
}
func (c *FunctionCallback) Range() token.Position {
	start := c.Callee.Range()
	end := c.EndTok.Pos
	if len(c.Args) > 0 {
		end = c.Args[len(c.Args)-1].Range()
	}
	return token.Position{Line: start.Line, Column: start.Column, EndLine: end.EndLine, EndColumn: end.EndColumn}
}

// ImportedCommand is a call into an imported namespace: `library.command(args)`.
// Per spec.md §4.4 it is never typed, only evaluated.
type ImportedCommand struct {
	Library token.Token
	Command token.Token
	Args    []Expression
	EndTok  token.Token
}

func (c *ImportedCommand) expressionNode()      {}
func (c *ImportedCommand) TokenLiteral() string { return c.Library.Literal }
func (c *ImportedCommand) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Library.Literal + "." + c.Command.Literal + "(" + strings.Join(parts, ", ") + ")"
}
func (c *ImportedCommand) Range() token.Position {
	end := c.EndTok.Pos
	if len(c.Args) > 0 {
		end = c.Args[len(c.Args)-1].Range()
	}
	return token.Position{Line: c.Library.Pos.Line, Column: c.Library.Pos.Column, EndLine: end.EndLine, EndColumn: end.EndColumn}
}

// BinaryExpr covers every two-operand precedence level of spec.md §6 in a
// single node kind (or_expression, and_expression, compare_expression,
// sum_expression, product_expression, exponent_expression): the operator
// token's Type alone tells the checker and evaluator which table/rule
// applies, the way the teacher's internal/ast.BinaryExpression dispatches
// purely off an Operator field rather than one Go type per grammar label.
type BinaryExpr struct {
	Left  Expression
	Op    token.Token
	Right Expression
}

func (b *BinaryExpr) expressionNode()      {}
func (b *BinaryExpr) TokenLiteral() string { return b.Op.Literal }
func (b *BinaryExpr) String() string {
	return "(" + b.Left.String() + " " + b.Op.Literal + " " + b.Right.String() + ")"
}
func (b *BinaryExpr) Range() token.Position { return spanOf(b.Left, b.Right) }

// IsCompareChainLink reports whether this node's left operand is itself a
// comparison link, i.e. whether this BinaryExpr is the outer link of a
// left-leaning compare_expression chain (spec.md §4.4/§4.5).
func (b *BinaryExpr) IsCompareChainLink() bool {
	left, ok := b.Left.(*BinaryExpr)
	return ok && left.Op.Type.IsComparison()
}

// UnaryExpr covers not_expression (NOT) and unary_expression (NEGATE).
type UnaryExpr struct {
	Op      token.Token
	Operand Expression
}

func (u *UnaryExpr) expressionNode()      {}
func (u *UnaryExpr) TokenLiteral() string { return u.Op.Literal }
func (u *UnaryExpr) String() string       { return "(" + u.Op.Literal + u.Operand.String() + ")" }
func (u *UnaryExpr) Range() token.Position {
	end := u.Operand.Range()
	return token.Position{Line: u.Op.Pos.Line, Column: u.Op.Pos.Column, EndLine: end.EndLine, EndColumn: end.EndColumn}
}
