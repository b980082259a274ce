// Package values implements the runtime value union of spec.md §3: the
// tagged union of Int/Float/Bool/Str/Function the evaluator produces, in
// the same "Type()/String() on every variant" idiom go-dws's
// internal/interp/runtime package uses for its own Value union.
package values

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/types"
)

// Value is the runtime value union. Every concrete variant below
// implements it.
type Value interface {
	Type() types.Type
	String() string
	value()
}

// IntValue is a 64-bit signed integer.
type IntValue int64

func (IntValue) value()            {}
func (IntValue) Type() types.Type  { return types.NewPrimitive(types.Int) }
func (v IntValue) String() string  { return strconv.FormatInt(int64(v), 10) }

// FloatValue is a 64-bit float.
type FloatValue float64

func (FloatValue) value()           {}
func (FloatValue) Type() types.Type { return types.NewPrimitive(types.Float) }
func (v FloatValue) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

// BoolValue is a boolean.
type BoolValue bool

func (BoolValue) value()           {}
func (BoolValue) Type() types.Type { return types.NewPrimitive(types.Bool) }
func (v BoolValue) String() string {
	if v {
		return "true"
	}
	return "false"
}

// StrValue is a string.
type StrValue string

func (StrValue) value()            {}
func (StrValue) Type() types.Type  { return types.NewPrimitive(types.Str) }
func (v StrValue) String() string  { return string(v) }

// Param is one declared (name, type) argument slot of a function value.
type Param struct {
	Name string
	Type types.Type
}

// FunctionValue is a user-defined function: it carries the scope it
// closed over (its defining scope, by reference — spec.md §3's "capturing
// scope"), its declared signature, its body, and an optional default
// return expression.
//
// The Scope field is typed as `any` to avoid an import cycle between
// values and scope (a Scope holds Variables, which hold Values, which
// includes FunctionValue, which must reference back to its defining
// Scope). Callers type-assert it back to *scope.Scope; see
// scope.AsFunctionScope for the accessor that does this safely.
type FunctionValue struct {
	Name          string
	Scope         any
	Params        []Param
	Return        types.Type
	Body          []ast.Statement
	DefaultReturn ast.Expression
}

func (*FunctionValue) value() {}
func (f *FunctionValue) Type() types.Type {
	args := make([]types.Type, len(f.Params))
	for i, p := range f.Params {
		args[i] = p.Type
	}
	return types.Func{Args: args, Return: f.Return}
}
func (f *FunctionValue) String() string {
	return fmt.Sprintf("<function %s: %s>", f.Name, f.Type().String())
}

// NativeFunc is a host callable: a flat list of already-evaluated
// argument values in, one value out. It is the shape of the "core
// exposes a hook" extension point of spec.md §6.
type NativeFunc func(args []Value) (Value, error)

// NativeFunctionValue wraps a host callable with its declared signature,
// so it can be typed identically to a user-defined FunctionValue.
type NativeFunctionValue struct {
	Name   string
	Params []Param
	Return types.Type
	Fn     NativeFunc
}

func (*NativeFunctionValue) value() {}
func (f *NativeFunctionValue) Type() types.Type {
	args := make([]types.Type, len(f.Params))
	for i, p := range f.Params {
		args[i] = p.Type
	}
	return types.Func{Args: args, Return: f.Return}
}
func (f *NativeFunctionValue) String() string {
	return fmt.Sprintf("<native function %s: %s>", f.Name, f.Type().String())
}

// NewNativeFunction is the constructor behind the host-callable
// extension hook of spec.md §6: register a named native function with a
// declared argument-type list and return type.
func NewNativeFunction(name string, params []Param, ret types.Type, fn NativeFunc) *NativeFunctionValue {
	return &NativeFunctionValue{Name: name, Params: params, Return: ret, Fn: fn}
}

// Variable is a declared (type, value) slot. Once inserted into a scope
// its Declared type never changes; the language has no assignment
// statement (spec.md §3).
type Variable struct {
	Declared types.Type
	Value    Value
}
