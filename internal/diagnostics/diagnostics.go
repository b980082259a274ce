// Package diagnostics implements the diagnostic collection and rendering
// contract of spec.md §4.1: structured errors/warnings carrying a source
// range, rendered against the original source with line/column
// underlining and color. Grounded on go-dws's internal/errors package
// (header + numbered source line + caret) and on the original Python
// source's File.display/TypeCheckError.display, which is where the
// multi-line first/middle/last coloring rule actually comes from.
package diagnostics

import "github.com/cwbudde/n/internal/token"

// Severity distinguishes an error from a warning. Rendering color and the
// header word ("Error"/"Warning") both come from this.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "Warning"
	}
	return "Error"
}

// Diagnostic is a single collected error or warning: a message plus the
// source range it refers to (a single token's position, or a subtree's
// inferred span — both are just a token.Position, since Position already
// carries start and end).
type Diagnostic struct {
	Severity Severity
	Message  string
	Range    token.Position
}

// Sink is the shared, append-only diagnostic collector every scope in one
// check run holds a reference to (spec.md §3, §5: "the diagnostic sinks
// are the *same* collections across every derived scope of one top-level
// run"). It is not safe for concurrent use; the language model is
// single-threaded (spec.md §5).
type Sink struct {
	diags []Diagnostic
}

// NewSink creates an empty, ready-to-share diagnostic sink.
func NewSink() *Sink {
	return &Sink{}
}

// AddError appends an error diagnostic.
func (s *Sink) AddError(msg string, r token.Position) {
	s.diags = append(s.diags, Diagnostic{Severity: SeverityError, Message: msg, Range: r})
}

// AddWarning appends a warning diagnostic.
func (s *Sink) AddWarning(msg string, r token.Position) {
	s.diags = append(s.diags, Diagnostic{Severity: SeverityWarning, Message: msg, Range: r})
}

// All returns every diagnostic collected so far, in emission order.
func (s *Sink) All() []Diagnostic {
	return s.diags
}

// Errors returns only the error-severity diagnostics.
func (s *Sink) Errors() []Diagnostic {
	return s.filter(SeverityError)
}

// Warnings returns only the warning-severity diagnostics.
func (s *Sink) Warnings() []Diagnostic {
	return s.filter(SeverityWarning)
}

func (s *Sink) filter(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range s.diags {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// ErrorCount and WarningCount back the driver's trailing summary line
// (spec.md §6: "a trailing line reports the diagnostic counts").
func (s *Sink) ErrorCount() int   { return len(s.filter(SeverityError)) }
func (s *Sink) WarningCount() int { return len(s.filter(SeverityWarning)) }
