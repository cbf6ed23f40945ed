// SPDX-License-Identifier: Apache-2.0

// Package parser turns Solidity source text into the declaration tree in
// internal/ast. Only the declaration-level subset the resolver consumes is
// recognized.
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var solidityLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments, both styles
		{Name: "Comment", Pattern: `//[^\n]*|/\*[\s\S]*?\*/`, Action: nil},

		// String literals
		{Name: "String", Pattern: `"[^"]*"`, Action: nil},

		// Integer literals, hex before decimal
		{Name: "Number", Pattern: `0x[0-9a-fA-F]+|[0-9]+`, Action: nil},

		// Keywords and identifiers
		{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`, Action: nil},

		// Mapping arrow, before the operators that share its characters
		{Name: "Arrow", Pattern: `=>`, Action: nil},

		// Operators
		{Name: "Operator", Pattern: `\|\||&&|==|!=|<=|>=|[-+*/%<>=!^]`, Action: nil},

		// Punctuation
		{Name: "Punct", Pattern: `[{}()\[\],;.]`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},
	},
})
