package evaluator

import (
	"fmt"

	"github.com/cwbudde/n/internal/ast"
	"github.com/cwbudde/n/internal/scope"
	"github.com/cwbudde/n/internal/types"
	"github.com/cwbudde/n/internal/values"
)

// execLoop runs `count times as (name: type) do { body }`: a fresh child
// scope per iteration binding the induction variable to the zero-based
// iteration index (spec.md §4.5, mirroring original_source/python/n.py's
// `for i in range(int(times))`), stopping and propagating the first exit
// the body produces.
func (ev *Evaluator) execLoop(l *ast.Loop, s *scope.Scope) (bool, values.Value, error) {
	countVal, err := ev.EvalExpr(l.Count, s)
	if err != nil {
		return false, nil, err
	}
	count, ok := countVal.(values.IntValue)
	if !ok {
		return false, nil, fmt.Errorf("a loop count should be an int, not a %s", countVal.Type())
	}

	for i := values.IntValue(0); i < count; i++ {
		iter := s.NewChild(nil)
		iter.Insert(l.Var.Name(), &values.Variable{Declared: types.NewPrimitive(types.Int), Value: i}, l.Var.Range())
		exited, val, err := ev.execBlock(l.Body, iter)
		if err != nil {
			return false, nil, err
		}
		if exited {
			return true, val, nil
		}
	}
	return false, nil, nil
}
