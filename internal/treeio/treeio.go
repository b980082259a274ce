// Package treeio loads an ast.Program from the JSON encoding of the fixed
// tree shape spec.md §6 defines. Building that tree from source text is an
// external collaborator's job (the grammar/parser is explicitly out of
// core scope, spec.md §1); this package only gives the CLI a way to feed
// an already-built tree — produced by whatever front end — into the
// checker and evaluator, the way a test fixture builder would.
package treeio

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/token"
)

// Load decodes raw JSON into an ast.Program.
func Load(raw []byte) (*ast.Program, error) {
	var doc struct {
		Statements []json.RawMessage `json:"statements"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding program: %w", err)
	}
	stmts := make([]ast.Statement, len(doc.Statements))
	for i, raw := range doc.Statements {
		s, err := decodeStatement(raw)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		stmts[i] = s
	}
	return &ast.Program{Statements: stmts}, nil
}

type kindTag struct {
	Kind string `json:"kind"`
}

type posJSON struct {
	Line      int `json:"line"`
	Column    int `json:"column"`
	EndLine   int `json:"endLine"`
	EndColumn int `json:"endColumn"`
	Offset    int `json:"offset"`
}

func (p posJSON) toPosition() token.Position {
	return token.Position{Line: p.Line, Column: p.Column, EndLine: p.EndLine, EndColumn: p.EndColumn, Offset: p.Offset}
}

type tokenJSON struct {
	Type    string  `json:"type"`
	Literal string  `json:"literal"`
	Pos     posJSON `json:"pos"`
}

var tokenTypeByName = map[string]token.Type{
	"ILLEGAL": token.ILLEGAL, "EOF": token.EOF,
	"NUMBER": token.NUMBER, "STRING": token.STRING, "BOOLEAN": token.BOOLEAN, "NAME": token.NAME,
	"ADD": token.ADD, "SUBTRACT": token.SUBTRACT, "MULTIPLY": token.MULTIPLY, "DIVIDE": token.DIVIDE,
	"ROUNDDIV": token.ROUNDDIV, "MODULO": token.MODULO, "EXPONENT": token.EXPONENT,
	"NEGATE": token.NEGATE, "NOT": token.NOT, "OR": token.OR, "AND": token.AND,
	"EQUALS": token.EQUALS, "NEQUALS": token.NEQUALS, "NEQUALS_QUIRKY": token.NEQUALS_QUIRKY,
	"LESS": token.LESS, "GREATER": token.GREATER, "LORE": token.LORE, "GORE": token.GORE,
}

func (t tokenJSON) toToken() (token.Token, error) {
	ty, ok := tokenTypeByName[t.Type]
	if !ok {
		return token.Token{}, fmt.Errorf("unknown token type %q", t.Type)
	}
	return token.Token{Type: ty, Literal: t.Literal, Pos: t.Pos.toPosition()}, nil
}

type typedNameJSON struct {
	Name tokenJSON `json:"name"`
	Type tokenJSON `json:"type"`
}

func (tn typedNameJSON) decode() (ast.TypedName, error) {
	name, err := tn.Name.toToken()
	if err != nil {
		return ast.TypedName{}, err
	}
	typ, err := tn.Type.toToken()
	if err != nil {
		return ast.TypedName{}, err
	}
	return ast.TypedName{NameTok: name, TypeTok: typ}, nil
}

func decodeStatements(raw []json.RawMessage) ([]ast.Statement, error) {
	out := make([]ast.Statement, len(raw))
	for i, r := range raw {
		s, err := decodeStatement(r)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

func decodeExpressions(raw []json.RawMessage) ([]ast.Expression, error) {
	out := make([]ast.Expression, len(raw))
	for i, r := range raw {
		e, err := decodeExpression(r)
		if err != nil {
			return nil, fmt.Errorf("expression %d: %w", i, err)
		}
		out[i] = e
	}
	return out, nil
}

func decodeStatement(raw json.RawMessage) (ast.Statement, error) {
	var tag kindTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}
	switch tag.Kind {
	case "import":
		var v struct {
			ImpTok  tokenJSON `json:"impTok"`
			Library tokenJSON `json:"library"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		imp, err := v.ImpTok.toToken()
		if err != nil {
			return nil, err
		}
		lib, err := v.Library.toToken()
		if err != nil {
			return nil, err
		}
		return &ast.Import{ImpTok: imp, Library: lib}, nil

	case "functionDef":
		var v struct {
			FunTok        tokenJSON         `json:"funTok"`
			Name          tokenJSON         `json:"name"`
			Args          []typedNameJSON   `json:"args"`
			ReturnType    tokenJSON         `json:"returnType"`
			Body          []json.RawMessage `json:"body"`
			DefaultReturn *json.RawMessage  `json:"defaultReturn"`
			EndTok        tokenJSON         `json:"endTok"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		funTok, err := v.FunTok.toToken()
		if err != nil {
			return nil, err
		}
		name, err := v.Name.toToken()
		if err != nil {
			return nil, err
		}
		returnType, err := v.ReturnType.toToken()
		if err != nil {
			return nil, err
		}
		endTok, err := v.EndTok.toToken()
		if err != nil {
			return nil, err
		}
		args := make([]ast.TypedName, len(v.Args))
		for i, a := range v.Args {
			args[i], err = a.decode()
			if err != nil {
				return nil, err
			}
		}
		body, err := decodeStatements(v.Body)
		if err != nil {
			return nil, err
		}
		var defaultReturn ast.Expression
		if v.DefaultReturn != nil {
			defaultReturn, err = decodeExpression(*v.DefaultReturn)
			if err != nil {
				return nil, err
			}
		}
		return &ast.FunctionDef{
			FunTok: funTok, Name: name, Args: args, ReturnType: returnType,
			Body: body, DefaultReturn: defaultReturn, EndTok: endTok,
		}, nil

	case "loop":
		var v struct {
			LoopTok tokenJSON         `json:"loopTok"`
			Count   json.RawMessage   `json:"count"`
			Var     typedNameJSON     `json:"var"`
			Body    []json.RawMessage `json:"body"`
			EndTok  tokenJSON         `json:"endTok"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		loopTok, err := v.LoopTok.toToken()
		if err != nil {
			return nil, err
		}
		endTok, err := v.EndTok.toToken()
		if err != nil {
			return nil, err
		}
		count, err := decodeExpression(v.Count)
		if err != nil {
			return nil, err
		}
		variable, err := v.Var.decode()
		if err != nil {
			return nil, err
		}
		body, err := decodeStatements(v.Body)
		if err != nil {
			return nil, err
		}
		return &ast.Loop{LoopTok: loopTok, Count: count, Var: variable, Body: body, EndTok: endTok}, nil

	case "print":
		var v struct {
			PrintTok tokenJSON       `json:"printTok"`
			Arg      json.RawMessage `json:"arg"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		printTok, err := v.PrintTok.toToken()
		if err != nil {
			return nil, err
		}
		arg, err := decodeExpression(v.Arg)
		if err != nil {
			return nil, err
		}
		return &ast.Print{PrintTok: printTok, Arg: arg}, nil

	case "return":
		var v struct {
			ReturnTok tokenJSON       `json:"returnTok"`
			Value     json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		returnTok, err := v.ReturnTok.toToken()
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(v.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Return{ReturnTok: returnTok, Value: value}, nil

	case "declare":
		var v struct {
			VarTok tokenJSON       `json:"varTok"`
			Name   typedNameJSON   `json:"name"`
			Value  json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		varTok, err := v.VarTok.toToken()
		if err != nil {
			return nil, err
		}
		name, err := v.Name.decode()
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(v.Value)
		if err != nil {
			return nil, err
		}
		return &ast.Declare{VarTok: varTok, Name: name, Value: value}, nil

	case "if":
		var v struct {
			IfTok  tokenJSON         `json:"ifTok"`
			Cond   json.RawMessage   `json:"cond"`
			Body   []json.RawMessage `json:"body"`
			EndTok tokenJSON         `json:"endTok"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		ifTok, err := v.IfTok.toToken()
		if err != nil {
			return nil, err
		}
		endTok, err := v.EndTok.toToken()
		if err != nil {
			return nil, err
		}
		cond, err := decodeExpression(v.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeStatements(v.Body)
		if err != nil {
			return nil, err
		}
		return &ast.If{IfTok: ifTok, Cond: cond, Body: body, EndTok: endTok}, nil

	case "ifElse":
		var v struct {
			IfTok   tokenJSON         `json:"ifTok"`
			Cond    json.RawMessage   `json:"cond"`
			IfTrue  []json.RawMessage `json:"ifTrue"`
			IfFalse []json.RawMessage `json:"ifFalse"`
			EndTok  tokenJSON         `json:"endTok"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		ifTok, err := v.IfTok.toToken()
		if err != nil {
			return nil, err
		}
		endTok, err := v.EndTok.toToken()
		if err != nil {
			return nil, err
		}
		cond, err := decodeExpression(v.Cond)
		if err != nil {
			return nil, err
		}
		ifTrue, err := decodeStatements(v.IfTrue)
		if err != nil {
			return nil, err
		}
		ifFalse, err := decodeStatements(v.IfFalse)
		if err != nil {
			return nil, err
		}
		return &ast.IfElse{IfTok: ifTok, Cond: cond, IfTrue: ifTrue, IfFalse: ifFalse, EndTok: endTok}, nil

	case "exprStatement":
		var v struct {
			Expr json.RawMessage `json:"expr"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		expr, err := decodeExpression(v.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStatement{Expr: expr}, nil

	default:
		return nil, fmt.Errorf("unknown statement kind %q", tag.Kind)
	}
}

func decodeExpression(raw json.RawMessage) (ast.Expression, error) {
	var tag kindTag
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}
	switch tag.Kind {
	case "value":
		var v struct {
			Token *tokenJSON       `json:"token"`
			Inner *json.RawMessage `json:"inner"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		if v.Token != nil {
			tok, err := v.Token.toToken()
			if err != nil {
				return nil, err
			}
			return &ast.Value{Tok: &tok}, nil
		}
		if v.Inner != nil {
			inner, err := decodeExpression(*v.Inner)
			if err != nil {
				return nil, err
			}
			return &ast.Value{Inner: inner}, nil
		}
		return nil, fmt.Errorf("value node has neither token nor inner expression")

	case "ifElseExpr":
		var v struct {
			QuestionTok tokenJSON       `json:"questionTok"`
			Cond        json.RawMessage `json:"cond"`
			IfTrue      json.RawMessage `json:"ifTrue"`
			IfFalse     json.RawMessage `json:"ifFalse"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		q, err := v.QuestionTok.toToken()
		if err != nil {
			return nil, err
		}
		cond, err := decodeExpression(v.Cond)
		if err != nil {
			return nil, err
		}
		ifTrue, err := decodeExpression(v.IfTrue)
		if err != nil {
			return nil, err
		}
		ifFalse, err := decodeExpression(v.IfFalse)
		if err != nil {
			return nil, err
		}
		return &ast.IfElseExpr{QuestionTok: q, Cond: cond, IfTrue: ifTrue, IfFalse: ifFalse}, nil

	case "functionCallback":
		var v struct {
			Callee json.RawMessage   `json:"callee"`
			Args   []json.RawMessage `json:"args"`
			EndTok tokenJSON         `json:"endTok"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		callee, err := decodeExpression(v.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressions(v.Args)
		if err != nil {
			return nil, err
		}
		endTok, err := v.EndTok.toToken()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionCallback{Callee: callee, Args: args, EndTok: endTok}, nil

	case "importedCommand":
		var v struct {
			Library tokenJSON         `json:"library"`
			Command tokenJSON         `json:"command"`
			Args    []json.RawMessage `json:"args"`
			EndTok  tokenJSON         `json:"endTok"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		library, err := v.Library.toToken()
		if err != nil {
			return nil, err
		}
		command, err := v.Command.toToken()
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressions(v.Args)
		if err != nil {
			return nil, err
		}
		endTok, err := v.EndTok.toToken()
		if err != nil {
			return nil, err
		}
		return &ast.ImportedCommand{Library: library, Command: command, Args: args, EndTok: endTok}, nil

	case "binaryExpr":
		var v struct {
			Left  json.RawMessage `json:"left"`
			Op    tokenJSON       `json:"op"`
			Right json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		left, err := decodeExpression(v.Left)
		if err != nil {
			return nil, err
		}
		op, err := v.Op.toToken()
		if err != nil {
			return nil, err
		}
		right, err := decodeExpression(v.Right)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: op, Right: right}, nil

	case "unaryExpr":
		var v struct {
			Op      tokenJSON       `json:"op"`
			Operand json.RawMessage `json:"operand"`
		}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		op, err := v.Op.toToken()
		if err != nil {
			return nil, err
		}
		operand, err := decodeExpression(v.Operand)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Operand: operand}, nil

	default:
		return nil, fmt.Errorf("unknown expression kind %q", tag.Kind)
	}
}
