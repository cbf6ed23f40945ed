// SPDX-License-Identifier: Apache-2.0
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Setheum-Labs/solang/internal/ast"
)

func TestParseContractWithBases(t *testing.T) {
	source := `
pragma solidity ^0.4.25;

contract Token is Owned, ERC20(1000) {
    uint256 public total;

    constructor(uint256 supply) Owned() {
        total = supply;
    }

    function transfer(address to, uint256 amount) public virtual returns (bool ok) {
        return true;
    }
}`

	unit, diagnostics := ParseSource(0, "test.sol", source)
	require.NotNil(t, unit)
	assert.Empty(t, diagnostics)

	require.Len(t, unit.Contracts, 1)
	contract := unit.Contracts[0]
	assert.Equal(t, ast.KindContract, contract.Kind)
	assert.Equal(t, "Token", contract.Name.Name)

	require.Len(t, contract.Bases, 2)
	assert.Equal(t, "Owned", contract.Bases[0].Name.Name)
	assert.False(t, contract.Bases[0].HasArgs)
	assert.Equal(t, "ERC20", contract.Bases[1].Name.Name)
	assert.True(t, contract.Bases[1].HasArgs)
	assert.Len(t, contract.Bases[1].Args, 1)

	require.Len(t, contract.Parts, 3)

	variable, ok := contract.Parts[0].(*ast.VariableDefinition)
	require.True(t, ok)
	assert.Equal(t, "total", variable.Name.Name)
	assert.Equal(t, ast.VisibilityPublic, variable.Visibility)

	constructor, ok := contract.Parts[1].(*ast.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, ast.KindConstructor, constructor.Kind)
	require.Len(t, constructor.BaseCalls, 1)
	assert.Equal(t, "Owned", constructor.BaseCalls[0].Name.Name)

	transfer, ok := contract.Parts[2].(*ast.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "transfer", transfer.Name.Name)
	assert.True(t, transfer.Virtual)
	assert.Len(t, transfer.Params, 2)
	assert.Len(t, transfer.Returns, 1)
	require.NotNil(t, transfer.Body)
	assert.Len(t, transfer.Body.Stmts, 1)
}

func TestParseAbstractAndInterfaceAndLibrary(t *testing.T) {
	source := `
abstract contract A {
    function f() public virtual;
}

interface I {
    function g() external;
}

library L {
    function h(uint256 x) internal pure returns (uint256 y) {
        return x;
    }
}`

	unit, diagnostics := ParseSource(0, "test.sol", source)
	require.NotNil(t, unit)
	assert.Empty(t, diagnostics)

	require.Len(t, unit.Contracts, 3)
	assert.Equal(t, ast.KindAbstractContract, unit.Contracts[0].Kind)
	assert.Equal(t, ast.KindInterface, unit.Contracts[1].Kind)
	assert.Equal(t, ast.KindLibrary, unit.Contracts[2].Kind)

	f := unit.Contracts[0].Parts[0].(*ast.FunctionDefinition)
	assert.Nil(t, f.Body, "bodyless function parses with a nil body")
}

func TestParseOverrideList(t *testing.T) {
	source := `
contract C is A, B {
    function f() public override(A, B) {}
}`

	unit, diagnostics := ParseSource(0, "test.sol", source)
	require.NotNil(t, unit)
	assert.Empty(t, diagnostics)

	f := unit.Contracts[0].Parts[0].(*ast.FunctionDefinition)
	require.NotNil(t, f.Override)
	require.Len(t, f.Override.Bases, 2)
	assert.Equal(t, "A", f.Override.Bases[0].Name)
	assert.Equal(t, "B", f.Override.Bases[1].Name)
}

func TestParseMappingAndArrayTypes(t *testing.T) {
	source := `
contract C {
    mapping(address => mapping(address => uint256)) allowed;
    uint256[4] fixed_;
    bytes32[] open;
}`

	unit, diagnostics := ParseSource(0, "test.sol", source)
	require.NotNil(t, unit)
	assert.Empty(t, diagnostics)

	parts := unit.Contracts[0].Parts
	require.Len(t, parts, 3)

	allowed := parts[0].(*ast.VariableDefinition)
	outer, ok := allowed.Type.(*ast.MappingType)
	require.True(t, ok)
	_, ok = outer.Value.(*ast.MappingType)
	assert.True(t, ok, "mapping values nest")

	fixed := parts[1].(*ast.VariableDefinition)
	arr, ok := fixed.Type.(*ast.ArrayType)
	require.True(t, ok)
	assert.NotNil(t, arr.Length)

	open := parts[2].(*ast.VariableDefinition)
	arr, ok = open.Type.(*ast.ArrayType)
	require.True(t, ok)
	assert.Nil(t, arr.Length)
}

func TestParseUsingAndEvent(t *testing.T) {
	source := `
contract C {
    using SafeMath for uint256;
    using SafeMath for *;

    event Transfer(address from, address to, uint256 value);
}`

	unit, diagnostics := ParseSource(0, "test.sol", source)
	require.NotNil(t, unit)
	assert.Empty(t, diagnostics)

	parts := unit.Contracts[0].Parts
	require.Len(t, parts, 3)

	typed := parts[0].(*ast.UsingDefinition)
	assert.Equal(t, "SafeMath", typed.Library.Name)
	assert.NotNil(t, typed.Type)

	wildcard := parts[1].(*ast.UsingDefinition)
	assert.Nil(t, wildcard.Type)

	event := parts[2].(*ast.EventDefinition)
	assert.Equal(t, "Transfer", event.Name.Name)
	assert.Len(t, event.Params, 3)
}

func TestParseExpressionPrecedenceIsFlat(t *testing.T) {
	source := `
contract C {
    uint256 constant X = 1 + 2 * 3;
}`

	unit, diagnostics := ParseSource(0, "test.sol", source)
	require.NotNil(t, unit)
	assert.Empty(t, diagnostics)

	variable := unit.Contracts[0].Parts[0].(*ast.VariableDefinition)
	expr, ok := variable.Initializer.(*ast.BinaryExpr)
	require.True(t, ok)
	// the chain folds left-associatively: (1 + 2) * 3
	assert.Equal(t, "*", expr.Op)
}

func TestParseErrorReported(t *testing.T) {
	unit, diagnostics := ParseSource(0, "test.sol", `contract {`)

	assert.Nil(t, unit)
	require.Len(t, diagnostics, 1)
	assert.True(t, diagnostics.HasErrors())
	assert.Equal(t, 0, diagnostics[0].Pos.File)
}

func TestAbstractOnInterfaceRejected(t *testing.T) {
	unit, diagnostics := ParseSource(0, "test.sol", `abstract interface I {}`)

	require.NotNil(t, unit)
	require.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0].Message, "‘abstract’ is not valid on interface ‘I’")
}

func TestHexNumberLiteral(t *testing.T) {
	source := `
contract C {
    uint256 constant X = 0xff;
}`

	unit, diagnostics := ParseSource(0, "test.sol", source)
	require.NotNil(t, unit)
	assert.Empty(t, diagnostics)

	variable := unit.Contracts[0].Parts[0].(*ast.VariableDefinition)
	literal, ok := variable.Initializer.(*ast.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, "0xff", literal.Text)
}
