// SPDX-License-Identifier: Apache-2.0
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Setheum-Labs/solang/internal/ast"
)

// Reporter formats diagnostics with Rust-like styling: a severity header,
// a location arrow, the offending source line with a caret marker, and one
// indented block per note.
type Reporter struct {
	files   []string
	sources map[int][]string
	Verbose bool
}

// NewReporter creates a reporter. files maps file indices to display names,
// sources maps file indices to file contents.
func NewReporter(files []string, sources map[int]string) *Reporter {
	lines := make(map[int][]string, len(sources))
	for no, src := range sources {
		lines[no] = strings.Split(src, "\n")
	}
	return &Reporter{files: files, sources: lines}
}

// Print writes every diagnostic to w. Debug records are skipped unless the
// reporter is verbose.
func (r *Reporter) Print(w io.Writer, diagnostics Diagnostics) {
	for _, d := range diagnostics {
		if d.Severity == Debug && !r.Verbose {
			continue
		}
		fmt.Fprint(w, r.Format(d))
	}
}

// Format renders a single diagnostic.
func (r *Reporter) Format(d Diagnostic) string {
	var result strings.Builder

	levelColor := r.levelColor(d.Severity)
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	result.WriteString(fmt.Sprintf("%s: %s\n", levelColor(d.Severity.String()), bold(d.Message)))

	lineNumberWidth := r.lineNumberWidth(d.Pos.Line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("-->"), r.location(d.Pos)))
	r.writeExcerpt(&result, d.Pos, d.Severity, indent, lineNumberWidth)

	noteColor := color.New(color.FgBlue, color.Bold).SprintFunc()
	for _, note := range d.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, noteColor("note:"), note.Message))
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("-->"), r.location(note.Pos)))
		r.writeExcerpt(&result, note.Pos, Info, indent, lineNumberWidth)
	}

	result.WriteString("\n")
	return result.String()
}

func (r *Reporter) writeExcerpt(out *strings.Builder, pos ast.Position, severity Severity, indent string, width int) {
	lines, ok := r.sources[pos.File]
	if !ok || pos.Line < 1 || pos.Line > len(lines) {
		return
	}

	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	out.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
	out.WriteString(fmt.Sprintf("%s %s %s\n",
		bold(fmt.Sprintf("%*d", width, pos.Line)), dim("│"), lines[pos.Line-1]))

	marker := strings.Repeat(" ", maxInt(0, pos.Column-1)) + r.markerColor(severity)("^")
	out.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))
}

func (r *Reporter) location(pos ast.Position) string {
	name := "<unknown>"
	if pos.File >= 0 && pos.File < len(r.files) {
		name = r.files[pos.File]
	}
	return fmt.Sprintf("%s:%d:%d", name, pos.Line, pos.Column)
}

func (r *Reporter) levelColor(severity Severity) func(...interface{}) string {
	switch severity {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Debug, Info:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (r *Reporter) markerColor(severity Severity) func(...interface{}) string {
	switch severity {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Debug, Info:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (r *Reporter) lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
