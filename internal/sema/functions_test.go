// SPDX-License-Identifier: Apache-2.0
package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionSignature(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract Token {
    function transfer(address to, uint256 amount) public {}
}`)

	require.Empty(t, errorMessages(ns))

	no := contractNo(t, ns, "Token")
	require.Len(t, ns.Contracts[no].Functions, 1)

	fn := &ns.Contracts[no].Functions[0]
	assert.Equal(t, "transfer(address,uint256)", fn.Signature)
	assert.Equal(t, uint32(0xa9059cbb), fn.Selector(),
		"selector is the first four bytes of keccak256 of the signature, big-endian")
}

func TestContractSelector(t *testing.T) {
	// keccak256("foo") = 41b1a064...; the selector reads the first four
	// bytes little-endian
	c := Contract{Name: "foo"}
	assert.Equal(t, uint32(0x64a0b141), c.Selector())
}

func TestVirtualFunctionResolution(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
abstract contract A {
    function f() public virtual;
}
contract B is A {
    function f() public override {}
}`)

	require.Empty(t, errorMessages(ns))

	b := contractNo(t, ns, "B")
	ref, ok := ns.Contracts[b].VirtualFunctions["f()"]
	require.True(t, ok, "signature should resolve to an implementation")
	assert.Equal(t, b, ref.ContractNo, "the derived override wins")
	assert.True(t, ns.function(ref).HasBody)
}

func TestConstructorNeedsArguments(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    constructor(uint256 a) {}
}
abstract contract B {
    constructor() {}
}
contract C {}`)

	require.Empty(t, errorMessages(ns))

	assert.True(t, ns.Contracts[contractNo(t, ns, "A")].ConstructorNeedsArguments())
	assert.False(t, ns.Contracts[contractNo(t, ns, "B")].ConstructorNeedsArguments())
	assert.False(t, ns.Contracts[contractNo(t, ns, "C")].ConstructorNeedsArguments())
}

func TestLibraryFunctionCannotBeVirtual(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
library L {
    function f() internal virtual {}
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "functions in a library cannot be virtual"),
		"got %v", messages)
}

func TestConstructorNotAllowedInInterface(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
interface I {
    constructor();
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "constructor not allowed in an interface"),
		"got %v", messages)
}

func TestInterfaceFunctionCannotHaveBody(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
interface I {
    function f() external {}
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "function in an interface cannot have a body"),
		"got %v", messages)
}

func TestUnknownNameInBody(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract C {
    function f() public returns (uint256 r) {
        r = missing;
        return r;
    }
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "‘missing’ not found"),
		"got %v", messages)
}

func TestStateVariableVisibleInBody(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    uint256 total;
}
contract B is A {
    function bump(uint256 by) public {
        total = total + by;
    }
}`)

	assert.Empty(t, errorMessages(ns))
}

func TestPrivateStateVariableNotVisibleInDerivedBody(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    uint256 private total;
}
contract B is A {
    function bump(uint256 by) public {
        total = total + by;
    }
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "‘total’ not found"),
		"got %v", messages)
}

func TestReturnArityChecked(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract C {
    function f() public returns (uint256 a, uint256 b) {
        return 1;
    }
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "expected 2 return values, got 1"),
		"got %v", messages)
}
