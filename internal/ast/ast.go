// Package ast is a direct Go encoding of the fixed input tree shape defined
// in spec.md §6. The grammar and the parser that produce this tree are
// external collaborators; this package never builds or reduces a tree
// itself, it only gives the checker and evaluator something typed to walk.
package ast

import (
	"strings"

	"github.com/cwbudde/n/internal/token"
)

// Node is the base interface every tree element implements.
type Node interface {
	// TokenLiteral returns the literal text of the node's defining token,
	// used in a handful of diagnostic messages and for debug printing.
	TokenLiteral() string
	// String renders the node back to source-like text, for debugging.
	String() string
	// Range returns the source span the node covers: for a leaf, its own
	// token position; for an interior node, the span from its leftmost to
	// its rightmost leaf (spec.md §9, "tree-range inference").
	Range() token.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is an instruction: a command that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the tree: a flat sequence of top-level
// instructions.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (p *Program) Range() token.Position {
	if len(p.Statements) == 0 {
		return token.Position{Line: 1, Column: 1, EndLine: 1, EndColumn: 1}
	}
	return spanOf(p.Statements[0], p.Statements[len(p.Statements)-1])
}

// TypedName is the `(name, type)` pair spec.md §6 calls out for function
// arguments, loop induction variables, and declare statements. The
// declared type is carried as its literal name (one of the four primitive
// type names); this core has no user-defined types (Non-goal).
type TypedName struct {
	NameTok token.Token
	TypeTok token.Token
}

func (tn TypedName) Name() string { return tn.NameTok.Literal }
func (tn TypedName) Type() string { return tn.TypeTok.Literal }

func (tn TypedName) Range() token.Position {
	return token.Position{
		Line:      tn.NameTok.Pos.Line,
		Column:    tn.NameTok.Pos.Column,
		EndLine:   tn.TypeTok.Pos.EndLine,
		EndColumn: tn.TypeTok.Pos.EndColumn,
	}
}

// spanOf infers a range from the first and last leaf of a run of nodes,
// exactly the "tree-range inference" design spec.md §9 describes.
func spanOf(first, last Node) token.Position {
	a := first.Range()
	b := last.Range()
	return token.Position{
		Line:      a.Line,
		Column:    a.Column,
		EndLine:   b.EndLine,
		EndColumn: b.EndColumn,
	}
}
