package scope

import "github.com/cwbudde/n/internal/values"

// Namespace is a resolved imported library: a name-keyed lookup of host
// callables, the shape spec.md §6 calls "Host callable surface". The
// core never loads a namespace itself (loading foreign libraries is an
// explicit external collaborator, spec.md §1); it only stores whatever a
// Resolver handed back for an `imp` statement.
type Namespace struct {
	Name  string
	funcs map[string]*values.NativeFunctionValue
}

// NewNamespace creates an empty namespace named name.
func NewNamespace(name string) *Namespace {
	return &Namespace{Name: name, funcs: make(map[string]*values.NativeFunctionValue)}
}

// Command looks up a command (function) by name within the namespace,
// spec.md §4.5's "look up the namespace, then the command name within
// it".
func (n *Namespace) Command(name string) (*values.NativeFunctionValue, bool) {
	v, ok := n.funcs[name]
	return v, ok
}

// Add registers an already-constructed native function value under name.
func (n *Namespace) Add(name string, fn *values.NativeFunctionValue) {
	n.funcs[name] = fn
}

// Resolver resolves an `imp "library"` statement's library name to a
// Namespace. It is the hook spec.md §1 reserves for the host: "The core
// exposes a hook that resolves an imported symbol to a callable ...".
// The core never implements one itself.
type Resolver func(libraryName string) (*Namespace, bool)

// FindImport linearly scans this scope's imported namespaces by name
// (spec.md §4.3).
func (s *Scope) FindImport(name string) (*Namespace, bool) {
	for _, ns := range s.imports {
		if ns.Name == name {
			return ns, true
		}
	}
	return nil, false
}

// AddImport appends a resolved namespace to this scope's import list.
// Both the checker and the evaluator call this when executing an `imp`
// command (spec.md §4.4: "import: register the namespace eagerly").
func (s *Scope) AddImport(ns *Namespace) {
	s.imports = append(s.imports, ns)
}
