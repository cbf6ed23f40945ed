// SPDX-License-Identifier: Apache-2.0
package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Setheum-Labs/solang/internal/parser"
)

func TestCollectSemanticTokens(t *testing.T) {
	source := `contract Token is Owned {
    uint256 constant FEE = 1;

    function transfer(address to) public {}
}`

	unit, diagnostics := parser.ParseSource(0, "test.sol", source)
	require.NotNil(t, unit)
	require.Empty(t, diagnostics)

	tokens := collectSemanticTokens(unit)
	require.Len(t, tokens, 5)

	// sorted by position: Token, Owned, FEE, transfer, to
	assert.Equal(t, uint32(0), tokens[0].Line)
	assert.Equal(t, uint32(len("Token")), tokens[0].Length)
	assert.Equal(t, uint32(tokenType), tokens[0].TokenType)
	assert.Equal(t, uint32(modifierDeclaration), tokens[0].TokenModifiers)

	assert.Equal(t, uint32(tokenType), tokens[1].TokenType, "base names are types")
	assert.Equal(t, uint32(0), tokens[1].TokenModifiers)

	assert.Equal(t, uint32(tokenVariable), tokens[2].TokenType)
	assert.Equal(t, uint32(modifierDeclaration|modifierReadonly), tokens[2].TokenModifiers,
		"constants carry the readonly modifier")

	assert.Equal(t, uint32(tokenFunction), tokens[3].TokenType)
	assert.Equal(t, uint32(tokenParameter), tokens[4].TokenType)
}

func TestCollectSemanticTokensNilUnit(t *testing.T) {
	assert.Empty(t, collectSemanticTokens(nil))
}

func TestKeywordCompletions(t *testing.T) {
	items := keywordCompletions()
	require.NotEmpty(t, items)

	labels := make(map[string]bool, len(items))
	for _, item := range items {
		labels[item.Label] = true
	}
	assert.True(t, labels["contract"])
	assert.True(t, labels["override"])
	assert.True(t, labels["mapping"])
}
