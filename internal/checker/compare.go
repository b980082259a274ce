package checker

import (
	"fmt"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/types"
)

// checkCompareChain types a compare_expression link (spec.md §4.4). The
// grammar's left-leaning chain `a OP1 b OP2 c` parses as `(a OP1 b) OP2
// c`: when this link's own Left is itself a comparison link, that nested
// chain is checked (and its diagnostics reported) once, then this link's
// effective left-hand type is re-derived from *that chain's own right
// operand* — using a throwaway-sink scope so the re-derivation doesn't
// double-report.
func (c *Checker) checkCompareChain(b *ast.BinaryExpr, s *scope.Scope) types.Type {
	var leftType types.Type
	if b.IsCompareChainLink() {
		left := b.Left.(*ast.BinaryExpr)
		c.checkCompareChain(left, s)
		leftType = c.CheckExpr(left.Right, s.Discard())
	} else {
		leftType = c.CheckExpr(b.Left, s)
	}
	rightType := c.CheckExpr(b.Right, s)

	if !types.IsUnknown(leftType) {
		if !types.IsUnknown(rightType) && !types.Equal(leftType, rightType) {
			s.Sink().AddError(fmt.Sprintf(
				"I can't compare %s and %s because they aren't the same type; you know they won't ever be equal",
				leftType, rightType), b.Op.Pos)
		}
		if b.Op.Type.IsOrdering() {
			prim, ok := leftType.(types.Primitive)
			if !ok || !types.IsOrderable(prim.Kind) {
				s.Sink().AddError(fmt.Sprintf("I don't know how to compare %s", leftType), b.Op.Pos)
			}
		}
	}

	// Result is always bool, even when the operands mismatch — spec.md
	// §4.4: "Result is always bool regardless of type errors."
	return types.NewPrimitive(types.Bool)
}
