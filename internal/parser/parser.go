// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/Setheum-Labs/solang/internal/ast"
	"github.com/Setheum-Labs/solang/internal/diag"
)

var unitParser = participle.MustBuild[sourceUnit](
	participle.Lexer(solidityLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.UseLookahead(2),
)

// ParseSource parses one source file into the declaration tree. Failures are
// reported as diagnostics carrying fileNo in their positions; a nil source
// unit is returned only when the file could not be parsed at all.
func ParseSource(fileNo int, filename, source string) (*ast.SourceUnit, diag.Diagnostics) {
	var diagnostics diag.Diagnostics

	unit, err := unitParser.ParseString(filename, source)
	if err != nil {
		diagnostics.Push(parseErrorDiagnostic(fileNo, err))
		return nil, diagnostics
	}

	conv := &converter{fileNo: fileNo}
	tree := conv.sourceUnit(unit)
	diagnostics.Extend(conv.diagnostics)

	return tree, diagnostics
}

func parseErrorDiagnostic(fileNo int, err error) diag.Diagnostic {
	if perr, ok := err.(participle.Error); ok {
		pos := perr.Position()
		return diag.Errorf(ast.Position{File: fileNo, Line: pos.Line, Column: pos.Column},
			"%s", perr.Message())
	}
	return diag.Errorf(ast.Position{File: fileNo, Line: 1, Column: 1}, "%s", err.Error())
}

func position(fileNo int, pos lexer.Position) ast.Position {
	return ast.Position{File: fileNo, Line: pos.Line, Column: pos.Column}
}
