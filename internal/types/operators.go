package types

import "github.com/cwbudde/n/internal/token"

type binaryKey struct {
	op    token.Type
	left  Kind
	right Kind
}

// binaryTable is the fixed operator table of spec.md §4.2, carried over
// from the original `binary_operation_types` table (original_source/python/n.py).
var binaryTable = map[binaryKey]Kind{
	{token.OR, Bool, Bool}: Bool,
	{token.OR, Int, Int}:   Int,

	{token.AND, Bool, Bool}: Bool,
	{token.AND, Int, Int}:   Int,

	{token.ADD, Int, Int}:     Int,
	{token.ADD, Float, Float}: Float,
	{token.ADD, Str, Str}:     Str,

	{token.SUBTRACT, Int, Int}:     Int,
	{token.SUBTRACT, Float, Float}: Float,

	{token.MULTIPLY, Int, Int}:     Int,
	{token.MULTIPLY, Float, Float}: Float,

	{token.DIVIDE, Int, Int}:     Int,
	{token.DIVIDE, Float, Float}: Float,

	{token.ROUNDDIV, Int, Int}:     Int,
	{token.ROUNDDIV, Float, Float}: Float,

	{token.MODULO, Int, Int}:     Int,
	{token.MODULO, Float, Float}: Float,

	// Exponents are weird because a negative power isn't an integer, so an
	// int base raised to an int power still produces a float (this mirrors
	// the original source's EXPONENT table exactly; see original_source).
	{token.EXPONENT, Int, Int}:     Float,
	{token.EXPONENT, Float, Float}: Float,
}

var unaryTable = map[token.Type]map[Kind]Kind{
	token.NEGATE: {Int: Int, Float: Float},
	token.NOT:    {Bool: Bool, Int: Int},
}

// comparableKinds are the primitive kinds that support ordering comparisons
// (<, >, <=, >=). EQUALS/NEQUALS accept any pair of equal types.
var comparableKinds = map[Kind]bool{Int: true, Float: true}

// LookupBinary returns the result Kind for op applied to (left, right), or
// ok=false if the table has no entry (spec.md §4.2's operator table).
func LookupBinary(op token.Type, left, right Kind) (Kind, bool) {
	k, ok := binaryTable[binaryKey{op, left, right}]
	return k, ok
}

// LookupUnary returns the result Kind for a unary op applied to operand.
func LookupUnary(op token.Type, operand Kind) (Kind, bool) {
	table, ok := unaryTable[op]
	if !ok {
		return 0, false
	}
	k, ok := table[operand]
	return k, ok
}

// IsOrderable reports whether k supports <, >, <=, >=.
func IsOrderable(k Kind) bool {
	return comparableKinds[k]
}
