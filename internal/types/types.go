// Package types models the small type grammar of spec.md §3: primitive
// types and function arrow types, plus the "unknown" sentinel the checker
// uses to suppress cascading diagnostics.
package types

import "strings"

// Kind identifies a primitive type.
type Kind int

const (
	Int Kind = iota
	Float
	Str
	Bool
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Str:
		return "str"
	case Bool:
		return "bool"
	default:
		return "?"
	}
}

// Type is either a Primitive or a Func arrow type. unknownType is a
// private sentinel so callers can't accidentally construct one.
type Type interface {
	String() string
	isType()
}

// Primitive is one of int, float, str, bool.
type Primitive struct {
	Kind Kind
}

func (p Primitive) String() string { return p.Kind.String() }
func (Primitive) isType()          {}

// NewPrimitive constructs a Type for the given Kind.
func NewPrimitive(k Kind) Type { return Primitive{Kind: k} }

// Func is a function arrow type: Args... -> Return. Args may be empty
// (a niladic function still has a Return).
type Func struct {
	Args   []Type
	Return Type
}

func (f Func) String() string {
	parts := make([]string, 0, len(f.Args)+1)
	for _, a := range f.Args {
		parts = append(parts, a.String())
	}
	parts = append(parts, f.Return.String())
	return strings.Join(parts, " -> ")
}
func (Func) isType() {}

type unknownType struct{}

func (unknownType) String() string { return "unknown" }
func (unknownType) isType()         {}

// Unknown is the sentinel the checker returns once an error has already
// been diagnosed for a sub-expression, so that further rules checking the
// same expression suppress cascading "I don't know how to..." diagnostics
// (spec.md §4.4, §8). It is never stored on a Variable.
var Unknown Type = unknownType{}

// IsUnknown reports whether t is the Unknown sentinel.
func IsUnknown(t Type) bool {
	_, ok := t.(unknownType)
	return ok
}

// Equal is structural type equality: two primitives are equal iff their
// Kind matches; two Func types are equal iff their argument lists and
// return type are pairwise equal. Unknown is never equal to anything,
// including itself, since it represents "already diagnosed, don't know".
func Equal(a, b Type) bool {
	if IsUnknown(a) || IsUnknown(b) {
		return false
	}
	switch av := a.(type) {
	case Primitive:
		bv, ok := b.(Primitive)
		return ok && av.Kind == bv.Kind
	case Func:
		bv, ok := b.(Func)
		if !ok || len(av.Args) != len(bv.Args) || !Equal(av.Return, bv.Return) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ParsePrimitiveName maps a declared-type literal (as it appears in source:
// "int", "float", "str", "bool") to its Kind.
func ParsePrimitiveName(name string) (Kind, bool) {
	switch name {
	case "int":
		return Int, true
	case "float":
		return Float, true
	case "str":
		return Str, true
	case "bool":
		return Bool, true
	default:
		return 0, false
	}
}
