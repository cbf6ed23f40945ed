// SPDX-License-Identifier: Apache-2.0
package lsp

import (
	"sort"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/Setheum-Labs/solang/internal/ast"
)

// Token type indices into SemanticTokenTypes
const (
	tokenType      = 1
	tokenFunction  = 3
	tokenVariable  = 4
	tokenParameter = 5
	tokenProperty  = 6
)

// Token modifier bits into SemanticTokenModifiers
const (
	modifierDeclaration = 1 << 0
	modifierReadonly    = 1 << 2
	modifierAbstract    = 1 << 5
)

type semanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      uint32
	TokenModifiers uint32
}

// collectSemanticTokens walks the declaration tree and produces tokens for
// names the grammar alone cannot classify: contract names, base names,
// function names, parameters and state variables.
func collectSemanticTokens(unit *ast.SourceUnit) []semanticToken {
	var tokens []semanticToken

	if unit == nil {
		return tokens
	}

	add := func(id ast.Identifier, tokenType uint32, modifiers uint32) {
		if id.Name == "" || !id.Pos.Valid() {
			return
		}
		tokens = append(tokens, semanticToken{
			Line:           uint32(id.Pos.Line - 1),
			StartChar:      uint32(id.Pos.Column - 1),
			Length:         uint32(len(id.Name)),
			TokenType:      tokenType,
			TokenModifiers: modifiers,
		})
	}

	addType := func(ty ast.TypeName) {
		if user, ok := ty.(*ast.UserType); ok {
			add(user.Name, tokenType, 0)
		}
	}

	for _, contract := range unit.Contracts {
		modifiers := uint32(modifierDeclaration)
		if contract.Kind == ast.KindAbstractContract {
			modifiers |= modifierAbstract
		}
		add(contract.Name, tokenType, modifiers)

		for _, base := range contract.Bases {
			add(base.Name, tokenType, 0)
		}

		for _, part := range contract.Parts {
			switch p := part.(type) {
			case *ast.FunctionDefinition:
				add(p.Name, tokenFunction, modifierDeclaration)
				for _, param := range p.Params {
					add(param.Name, tokenParameter, 0)
					addType(param.Type)
				}
				for _, ret := range p.Returns {
					add(ret.Name, tokenParameter, 0)
					addType(ret.Type)
				}
			case *ast.VariableDefinition:
				varModifiers := uint32(modifierDeclaration)
				if p.Constant {
					varModifiers |= modifierReadonly
				}
				add(p.Name, tokenVariable, varModifiers)
				addType(p.Type)
			case *ast.EventDefinition:
				add(p.Name, tokenProperty, modifierDeclaration)
			case *ast.UsingDefinition:
				add(p.Library, tokenType, 0)
			}
		}
	}

	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Line != tokens[j].Line {
			return tokens[i].Line < tokens[j].Line
		}
		return tokens[i].StartChar < tokens[j].StartChar
	})

	return tokens
}

var completionKeywords = []string{
	"abstract", "contract", "interface", "library", "is",
	"function", "constructor", "fallback", "receive", "modifier",
	"public", "private", "internal", "external",
	"payable", "view", "pure", "virtual", "override", "returns",
	"using", "for", "event", "constant", "mapping", "return",
	"bool", "address", "string", "bytes", "uint256", "int256",
}

// keywordCompletions returns the keyword and elementary type completion set
func keywordCompletions() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindKeyword
	items := make([]protocol.CompletionItem, 0, len(completionKeywords))
	for _, keyword := range completionKeywords {
		items = append(items, protocol.CompletionItem{
			Label: keyword,
			Kind:  &kind,
		})
	}
	return items
}
