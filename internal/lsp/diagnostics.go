// SPDX-License-Identifier: Apache-2.0
package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Setheum-Labs/solang/internal/diag"
)

// ConvertDiagnostics transforms resolver diagnostics into LSP diagnostics
// for IDE display. Secondary notes become related information entries so
// the editor can link to previous definitions. Debug records are dropped.
func ConvertDiagnostics(diagnostics diag.Diagnostics) []protocol.Diagnostic {
	var out []protocol.Diagnostic

	for _, d := range diagnostics {
		if d.Severity == diag.Debug {
			continue
		}

		converted := protocol.Diagnostic{
			Range:    positionRange(d.Pos.Line, d.Pos.Column),
			Severity: ptrSeverity(severity(d.Severity)),
			Source:   ptrString("solang"),
			Message:  d.Message,
		}

		for _, note := range d.Notes {
			converted.RelatedInformation = append(converted.RelatedInformation,
				protocol.DiagnosticRelatedInformation{
					Location: protocol.Location{
						Range: positionRange(note.Pos.Line, note.Pos.Column),
					},
					Message: note.Message,
				})
		}

		out = append(out, converted)
	}

	return out
}

func positionRange(line, column int) protocol.Range {
	if line < 1 {
		line = 1
	}
	if column < 1 {
		column = 1
	}
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(line - 1),   // Convert to 0-based indexing
			Character: uint32(column - 1), // Convert to 0-based indexing
		},
		End: protocol.Position{
			Line:      uint32(line - 1),
			Character: uint32(column + 5), // Rough span for visibility
		},
	}
}

func severity(s diag.Severity) protocol.DiagnosticSeverity {
	switch s {
	case diag.Warning:
		return protocol.DiagnosticSeverityWarning
	case diag.Info:
		return protocol.DiagnosticSeverityInformation
	}
	return protocol.DiagnosticSeverityError
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
