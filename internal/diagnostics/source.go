package diagnostics

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultTabWidth is the fixed expansion width spec.md §4.1 calls for:
// "Tabs in source input are normalized to a fixed width (default 4
// spaces) before any column arithmetic."
const DefaultTabWidth = 4

// SourceFile holds the tab-expanded, line-indexed source a diagnostic's
// range is rendered against, plus the line-number gutter width (the
// largest line number's digit count, right-aligned per spec.md §4.1).
//
// Ground truth for tab expansion: original_source/python/n.py's
// `File.__init__` does `line.rstrip().replace('\t', ' ' * tab_length)`.
// We keep rstrip's trailing-whitespace trim too, since otherwise a
// caret line computed from a tab-expanded column could run past a
// ragged trailing-whitespace line.
type SourceFile struct {
	Name      string
	Lines     []string
	GutterW   int
	tabWidth  int
}

// NewSourceFile builds a SourceFile from raw source text, expanding tabs
// to tabWidth spaces (DefaultTabWidth if tabWidth <= 0).
func NewSourceFile(name, src string, tabWidth int) *SourceFile {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	rawLines := strings.Split(src, "\n")
	lines := make([]string, len(rawLines))
	for i, l := range rawLines {
		lines[i] = expandTabs(strings.TrimRight(l, " \t\r"), tabWidth)
	}
	return &SourceFile{
		Name:     name,
		Lines:    lines,
		GutterW:  len(strconv.Itoa(len(lines))),
		tabWidth: tabWidth,
	}
}

func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			pad := width - (col % width)
			sb.WriteString(strings.Repeat(" ", pad))
			col += pad
		} else {
			sb.WriteRune(r)
			col++
		}
	}
	return sb.String()
}

// Line returns the 1-indexed source line, or "" if out of range.
func (f *SourceFile) Line(n int) string {
	if n < 1 || n > len(f.Lines) {
		return ""
	}
	return f.Lines[n-1]
}

// gutter renders a right-aligned "NNN | " prefix for line n.
func (f *SourceFile) gutter(n int) string {
	return fmt.Sprintf("%*d | ", f.GutterW, n)
}
