package evaluator

import (
	"fmt"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/token"
	"github.com/cwbudde/n/internal/values"
)

// evalCompareChain evaluates a left-leaning compare_expression chain
// left to right, short-circuiting on the first false link — exactly
// original_source/python/n.py's eval_expr compare_expression branch,
// which reuses `left`'s right operand as the next link's effective left
// value once the nested chain itself has been evaluated.
func (ev *Evaluator) evalCompareChain(b *ast.BinaryExpr, s *scope.Scope) (values.Value, error) {
	var leftVal values.Value
	var err error
	if b.IsCompareChainLink() {
		left := b.Left.(*ast.BinaryExpr)
		chainResult, err := ev.evalCompareChain(left, s)
		if err != nil {
			return nil, err
		}
		if !truthy(chainResult) {
			return values.BoolValue(false), nil
		}
		leftVal, err = ev.EvalExpr(left.Right, s)
		if err != nil {
			return nil, err
		}
	} else {
		leftVal, err = ev.EvalExpr(b.Left, s)
		if err != nil {
			return nil, err
		}
	}

	rightVal, err := ev.EvalExpr(b.Right, s)
	if err != nil {
		return nil, err
	}

	result, err := compareValues(b.Op.Type, leftVal, rightVal)
	if err != nil {
		return nil, err
	}
	return values.BoolValue(result), nil
}

func compareValues(op token.Type, left, right values.Value) (bool, error) {
	switch op {
	case token.EQUALS:
		return valuesEqual(left, right), nil
	case token.NEQUALS, token.NEQUALS_QUIRKY:
		// NEQUALS_QUIRKY behaves identically to NEQUALS (spec.md §9).
		return !valuesEqual(left, right), nil
	case token.LESS, token.GREATER, token.LORE, token.GORE:
		return orderedCompare(op, left, right)
	default:
		return false, fmt.Errorf("unexpected comparison operator %s", op)
	}
}

func valuesEqual(left, right values.Value) bool {
	switch l := left.(type) {
	case values.IntValue:
		r, ok := right.(values.IntValue)
		return ok && l == r
	case values.FloatValue:
		r, ok := right.(values.FloatValue)
		return ok && l == r
	case values.StrValue:
		r, ok := right.(values.StrValue)
		return ok && l == r
	case values.BoolValue:
		r, ok := right.(values.BoolValue)
		return ok && l == r
	default:
		return false
	}
}

func numericValue(v values.Value) (float64, bool) {
	switch val := v.(type) {
	case values.IntValue:
		return float64(val), true
	case values.FloatValue:
		return float64(val), true
	default:
		return 0, false
	}
}

func orderedCompare(op token.Type, left, right values.Value) (bool, error) {
	lf, lok := numericValue(left)
	rf, rok := numericValue(right)
	if !lok || !rok {
		return false, fmt.Errorf("I don't know how to order a %s and a %s", left.Type(), right.Type())
	}
	switch op {
	case token.LESS:
		return lf < rf, nil
	case token.GREATER:
		return lf > rf, nil
	case token.LORE:
		return lf <= rf, nil
	case token.GORE:
		return lf >= rf, nil
	default:
		return false, fmt.Errorf("unexpected ordering operator %s", op)
	}
}
