package diagnostics

import (
	"fmt"
	"strings"

	"github.com/cwbudde/n/internal/token"
)

// ANSI escape codes, used exactly as go-dws's internal/errors package
// and the original Python source's colorama Fore/Style constants do: raw
// escapes, no color library, since neither the teacher nor the rest of
// the retrieval pack reaches for one to print to a terminal.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
	ansiBlue   = "\033[34m"
)

func colorize(color bool, code, s string) string {
	if !color || code == "" {
		return s
	}
	return code + s + ansiReset
}

func severityColor(sev Severity) string {
	if sev == SeverityWarning {
		return ansiYellow
	}
	return ansiRed
}

// Render produces the full multi-line diagnostic text for one diagnostic
// against src, following the contract of spec.md §4.1:
//   - a header "Error: <message>" or "Warning: <message>";
//   - a "--> file:line:column" marker at the range's start;
//   - the affected source line(s), underlined or colored per the
//     single-line/multi-line split documented on highlightRange.
func Render(src *SourceFile, d Diagnostic, color bool) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s: %s", colorize(color, ansiBold+severityColor(d.Severity), d.Severity.String()), d.Message)
	sb.WriteString(header)
	sb.WriteByte('\n')

	arrow := colorize(color, ansiCyan, "-->")
	loc := colorize(color, ansiBlue, fmt.Sprintf("%s:%d:%d", src.Name, d.Range.Line, d.Range.Column))
	sb.WriteString(fmt.Sprintf("  %s %s\n", arrow, loc))

	sb.WriteString(highlightRange(src, d.Range, color))
	return sb.String()
}

// highlightRange renders the source excerpt for r. Single-line ranges get
// the source line followed by a caret row spanning [start_col, end_col).
// Multi-line ranges color the text in place: the first line from
// start_col onward, intermediate lines entirely, the last line up to
// end_col — grounded directly on original_source/python/n.py's
// File.display.
func highlightRange(src *SourceFile, r token.Position, color bool) string {
	var sb strings.Builder

	if r.Line == r.EndLine {
		line := src.Line(r.Line)
		sb.WriteString(src.gutter(r.Line))
		sb.WriteString(line)
		sb.WriteByte('\n')

		width := max(r.EndColumn-r.Column, 1)
		sb.WriteString(strings.Repeat(" ", src.GutterW+3+r.Column-1))
		sb.WriteString(colorize(color, ansiBold+ansiRed, strings.Repeat("^", width)))
		return sb.String()
	}

	for ln := r.Line; ln <= r.EndLine; ln++ {
		line := src.Line(ln)
		var rendered string
		switch ln {
		case r.Line:
			col := clampCol(r.Column, line)
			rendered = line[:col] + colorize(color, ansiRed, line[col:])
		case r.EndLine:
			col := clampCol(r.EndColumn, line)
			rendered = colorize(color, ansiRed, line[:col]) + line[col:]
		default:
			rendered = colorize(color, ansiRed, line)
		}
		sb.WriteString(src.gutter(ln))
		sb.WriteString(rendered)
		if ln != r.EndLine {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func clampCol(col int, line string) int {
	c := col - 1
	if c < 0 {
		return 0
	}
	if c > len(line) {
		return len(line)
	}
	return c
}

// FormatAll renders every diagnostic in diags against src, separated by a
// blank line, the way go-dws's errors.FormatErrors joins multiple
// CompilerErrors.
func FormatAll(src *SourceFile, diags []Diagnostic, color bool) string {
	parts := make([]string, len(diags))
	for i, d := range diags {
		parts[i] = Render(src, d, color)
	}
	return strings.Join(parts, "\n\n")
}

// Compact renders one line per diagnostic ("file:line:col: Error: msg"),
// for non-TTY / log-stream output where underlined excerpts don't help.
func Compact(src *SourceFile, diags []Diagnostic) string {
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("%s:%d:%d: %s: %s", src.Name, d.Range.Line, d.Range.Column, d.Severity, d.Message)
	}
	return strings.Join(lines, "\n")
}
