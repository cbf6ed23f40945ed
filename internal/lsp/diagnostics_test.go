// SPDX-License-Identifier: Apache-2.0
package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Setheum-Labs/solang/internal/ast"
	"github.com/Setheum-Labs/solang/internal/diag"
)

func TestConvertDiagnostics(t *testing.T) {
	var ds diag.Diagnostics
	ds.Push(diag.Debugf(ast.Position{Line: 1, Column: 1}, "found contract ‘C’"))
	ds.Push(diag.Warningf(ast.Position{Line: 2, Column: 3}, "unused variable"))
	ds.Push(diag.ErrorWithNote(
		ast.Position{Line: 4, Column: 5},
		"already defined ‘x’",
		ast.Position{Line: 2, Column: 5},
		"previous definition of ‘x’"))

	out := ConvertDiagnostics(ds)
	require.Len(t, out, 2, "debug records are dropped")

	warning := out[0]
	assert.Equal(t, protocol.DiagnosticSeverityWarning, *warning.Severity)
	assert.Equal(t, "solang", *warning.Source)
	assert.Equal(t, uint32(1), warning.Range.Start.Line, "lines are 0-based")
	assert.Equal(t, uint32(2), warning.Range.Start.Character)

	err := out[1]
	assert.Equal(t, protocol.DiagnosticSeverityError, *err.Severity)
	assert.Equal(t, "already defined ‘x’", err.Message)
	require.Len(t, err.RelatedInformation, 1)
	assert.Equal(t, "previous definition of ‘x’", err.RelatedInformation[0].Message)
	assert.Equal(t, uint32(1), err.RelatedInformation[0].Location.Range.Start.Line)
}

func TestConvertDiagnosticsClampsPositions(t *testing.T) {
	var ds diag.Diagnostics
	ds.Push(diag.Errorf(ast.Position{Line: 0, Column: 0}, "no position"))

	out := ConvertDiagnostics(ds)
	require.Len(t, out, 1)
	assert.Equal(t, uint32(0), out[0].Range.Start.Line)
	assert.Equal(t, uint32(0), out[0].Range.Start.Character)
}
