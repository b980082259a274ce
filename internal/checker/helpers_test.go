package checker

import (
	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/token"
)

func tok(ty token.Type, lit string) token.Token {
	return token.Token{Type: ty, Literal: lit, Pos: token.Position{Line: 1, Column: 1, EndLine: 1, EndColumn: 1 + len(lit)}}
}

func name(n string) *ast.Value {
	t := tok(token.NAME, n)
	return &ast.Value{Tok: &t}
}

func number(n string) *ast.Value {
	t := tok(token.NUMBER, n)
	return &ast.Value{Tok: &t}
}

func str(s string) *ast.Value {
	t := tok(token.STRING, s)
	return &ast.Value{Tok: &t}
}

func boolean(b string) *ast.Value {
	t := tok(token.BOOLEAN, b)
	return &ast.Value{Tok: &t}
}

func typedName(n, ty string) ast.TypedName {
	return ast.TypedName{NameTok: tok(token.NAME, n), TypeTok: tok(token.NAME, ty)}
}

func binary(op token.Type, left, right ast.Expression) *ast.BinaryExpr {
	return &ast.BinaryExpr{Left: left, Op: tok(op, op.String()), Right: right}
}

func unary(op token.Type, operand ast.Expression) *ast.UnaryExpr {
	return &ast.UnaryExpr{Op: tok(op, op.String()), Operand: operand}
}
