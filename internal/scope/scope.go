// Package scope implements the lexically nested symbol environment of
// spec.md §3/§4.3: a chain of scopes mapping names to typed variable
// cells, each holding a reference to its parent, the enclosing function
// (for typing `return`), its imported namespaces, and a diagnostic sink
// shared by reference across every scope of one run.
//
// Grounded on go-dws's internal/interp/runtime.Environment (store/outer
// chain, Get/Set/Define), generalized with the three extra fields spec.md
// §3 requires that a plain variable environment doesn't carry: an
// enclosing-function reference, an imported-namespace list, and the
// shared error/warning sink.
package scope

import (
	"github.com/cwbudde/n/internal/diagnostics"
	"github.com/cwbudde/n/internal/token"
	"github.com/cwbudde/n/internal/values"
)

// Scope is one lexical environment: a function body, an if/else branch,
// a loop iteration, or the top-level program.
type Scope struct {
	parent         *Scope
	parentFunction *values.FunctionValue
	vars           map[string]*values.Variable
	imports        []*Namespace
	sink           *diagnostics.Sink
}

// NewRoot creates the top-level scope of one check-or-evaluate run. It
// owns a fresh Sink that every descendant scope shares by reference.
func NewRoot() *Scope {
	return &Scope{
		vars: make(map[string]*values.Variable),
		sink: diagnostics.NewSink(),
	}
}

// NewChild creates a child scope. If parentFunction is non-nil it becomes
// this scope's (and its descendants') enclosing function; otherwise the
// enclosing function is inherited from s (spec.md §4.3: "new_child:
// ... enclosing function is the explicit one if given else inherited").
func (s *Scope) NewChild(parentFunction *values.FunctionValue) *Scope {
	fn := parentFunction
	if fn == nil {
		fn = s.parentFunction
	}
	return &Scope{
		parent:         s,
		parentFunction: fn,
		vars:           make(map[string]*values.Variable),
		sink:           s.sink,
	}
}

// Sink returns the diagnostic sink shared by this scope and every
// relative of it within the same run.
func (s *Scope) Sink() *diagnostics.Sink { return s.sink }

// Lookup walks the parent chain looking for name, spec.md §4.3.
func (s *Scope) Lookup(name string) (*values.Variable, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// LookupLocal looks only in this scope, without walking to parents. Used
// to detect shadowing-vs-duplicate (spec.md §3: shadowing in a child
// scope is allowed and silent; re-inserting in the *same* scope is not).
func (s *Scope) LookupLocal(name string) (*values.Variable, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Insert adds name to this scope. A duplicate in the same scope is a
// diagnostic, not a hard failure: the later insertion wins so checking
// (and evaluation, on re-declare) can proceed (spec.md §4.3).
func (s *Scope) Insert(name string, v *values.Variable, r token.Position) {
	if _, exists := s.vars[name]; exists {
		s.sink.AddError("You've already defined `"+name+"`.", r)
	}
	s.vars[name] = v
}

// EnclosingFunction returns the nearest enclosing function, or nil at top
// level (spec.md §4.3). It does not walk the chain at lookup time: NewChild
// already copied the parent's enclosing function into this scope.
func (s *Scope) EnclosingFunction() *values.FunctionValue {
	return s.parentFunction
}

// Discard returns a scope that shares this scope's variable bindings and
// parent chain but has its own, throwaway diagnostic sink. It exists
// purely for the compare-chain typing rule of spec.md §4.4: re-deriving
// the type of an already-checked sub-expression (to use as the effective
// left-hand side of the next comparison link) must not re-report
// diagnostics that the first pass over that sub-expression already
// logged — grounded on original_source/python/n.py's type_check_expr,
// which does exactly this with a scratch Scope whose errors/warnings
// lists are reset to empty.
func (s *Scope) Discard() *Scope {
	return &Scope{
		parent:         s.parent,
		parentFunction: s.parentFunction,
		vars:           s.vars,
		imports:        s.imports,
		sink:           diagnostics.NewSink(),
	}
}

// AsFunctionScope type-asserts a values.FunctionValue's opaque Scope
// field back to *Scope. FunctionValue.Scope is typed `any` purely to
// break the values<->scope import cycle (a function value must reference
// the scope it closed over, and a scope holds variables whose values may
// themselves be function values) — see values.FunctionValue's doc comment.
func AsFunctionScope(s any) *Scope {
	sc, _ := s.(*Scope)
	return sc
}

// NewChildFrom is a convenience used by the evaluator when it must open a
// new call scope parented to a function's *defining* scope rather than
// the caller's scope (spec.md §4.5: "create a child scope parented to
// the function's defining scope (lexical capture)").
func NewChildFrom(defining any, fn *values.FunctionValue) *Scope {
	return AsFunctionScope(defining).NewChild(fn)
}
