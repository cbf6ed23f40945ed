// SPDX-License-Identifier: Apache-2.0

// Package diag defines the structured diagnostics accumulated by the
// resolver, and a terminal reporter for them.
package diag

import (
	"fmt"
	"strings"

	"github.com/Setheum-Labs/solang/internal/ast"
)

// Severity of a diagnostic.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	}
	return "error"
}

// Note is a secondary location attached to a diagnostic, typically pointing
// at a previous definition.
type Note struct {
	Pos     ast.Position
	Message string
}

// Diagnostic is a single structured error, warning or debug record. The
// taxonomy is flat: kinds are distinguished by message, not by type.
type Diagnostic struct {
	Severity Severity
	Pos      ast.Position
	Message  string
	Notes    []Note
}

func Errorf(pos ast.Position, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Error, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func Warningf(pos ast.Position, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Warning, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func Debugf(pos ast.Position, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: Debug, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// ErrorWithNote builds an error with a single secondary location.
func ErrorWithNote(pos ast.Position, message string, notePos ast.Position, noteMessage string) Diagnostic {
	return Diagnostic{
		Severity: Error,
		Pos:      pos,
		Message:  message,
		Notes:    []Note{{Pos: notePos, Message: noteMessage}},
	}
}

// ErrorWithNotes builds an error with a list of secondary locations.
func ErrorWithNotes(pos ast.Position, message string, notes []Note) Diagnostic {
	return Diagnostic{Severity: Error, Pos: pos, Message: message, Notes: notes}
}

// Fingerprint is a structural-equality key over (location, message, notes).
// Diagnostics discoverable along multiple recursive graph paths are
// deduplicated on it before being merged into the namespace.
func (d Diagnostic) Fingerprint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:%d:%d:%d:%s", d.Severity, d.Pos.File, d.Pos.Line, d.Pos.Column, d.Message)
	for _, n := range d.Notes {
		fmt.Fprintf(&b, "|%d:%d:%d:%s", n.Pos.File, n.Pos.Line, n.Pos.Column, n.Message)
	}
	return b.String()
}

// Diagnostics is an append-only, ordered collection.
type Diagnostics []Diagnostic

func (ds *Diagnostics) Push(d Diagnostic) {
	*ds = append(*ds, d)
}

func (ds *Diagnostics) Extend(other []Diagnostic) {
	*ds = append(*ds, other...)
}

// HasErrors reports whether any diagnostic has error severity.
func (ds Diagnostics) HasErrors() bool {
	for _, d := range ds {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Set deduplicates diagnostics by structural equality while preserving
// insertion order. Used where the same issue can be found along multiple
// recursive paths through the inheritance graph.
type Set struct {
	seen  map[string]struct{}
	order []Diagnostic
}

func NewSet() *Set {
	return &Set{seen: make(map[string]struct{})}
}

func (s *Set) Insert(d Diagnostic) {
	key := d.Fingerprint()
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.order = append(s.order, d)
}

func (s *Set) All() []Diagnostic {
	return s.order
}
