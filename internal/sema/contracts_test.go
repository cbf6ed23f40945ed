// SPDX-License-Identifier: Apache-2.0
package sema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Setheum-Labs/solang/internal/diag"
	"github.com/Setheum-Labs/solang/internal/parser"
)

func resolveSource(t *testing.T, target Target, source string) *Namespace {
	t.Helper()

	ns := NewNamespace(target)
	fileNo := ns.AddFile("test.sol")

	unit, diagnostics := parser.ParseSource(fileNo, "test.sol", source)
	require.NotNil(t, unit, "source should parse")
	ns.Diagnostics.Extend(diagnostics)

	ns.ResolveSourceUnit(fileNo, unit)
	return ns
}

func errorMessages(ns *Namespace) []string {
	var out []string
	for _, d := range ns.Diagnostics {
		if d.Severity == diag.Error {
			out = append(out, d.Message)
		}
	}
	return out
}

func hasError(messages []string, substr string) bool {
	for _, m := range messages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func contractNo(t *testing.T, ns *Namespace, name string) int {
	t.Helper()
	for no := range ns.Contracts {
		if ns.Contracts[no].Name == name {
			return no
		}
	}
	t.Fatalf("contract %s not resolved", name)
	return -1
}

func linearization(ns *Namespace, no int) []string {
	var names []string
	for _, base := range ns.VisitBases(no) {
		names = append(names, ns.Contracts[base].Name)
	}
	return names
}

func TestSimpleInheritance(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {}
contract B {}
contract C is A, B {}`)

	assert.Empty(t, errorMessages(ns), "should have no errors")
	assert.Equal(t, []string{"B", "A", "C"}, linearization(ns, contractNo(t, ns, "C")),
		"bases are visited post-order in reverse declaration order")
}

func TestDiamondLinearization(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {}
contract B is A {}
contract C is A {}
contract D is B, C {}`)

	assert.Empty(t, errorMessages(ns), "should have no errors")
	assert.Equal(t, []string{"A", "C", "B", "D"}, linearization(ns, contractNo(t, ns, "D")),
		"shared base appears once, at its first post-order visit")
}

func TestSelfInheritance(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `contract C is C {}`)

	messages := errorMessages(ns)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "contract ‘C’ cannot have itself as a base contract")
}

func TestDuplicateBase(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {}
contract C is A, A {}`)

	messages := errorMessages(ns)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "contract ‘C’ duplicate base ‘A’")
}

func TestCyclicBase(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A is B {}
contract B is A {}`)

	messages := errorMessages(ns)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "base ‘A’ from contract ‘B’ is cyclic")
}

func TestUnknownBaseSuggestion(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract Base {}
contract C is Basee {}`)

	messages := errorMessages(ns)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "contract ‘Basee’ not found")
	assert.Contains(t, messages[0], "did you mean ‘Base’?")
}

func TestInterfaceCannotHaveContractBase(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {}
interface I is A {}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "interface ‘I’ cannot have contract ‘A’ as a base"),
		"got %v", messages)
}

func TestLibraryCannotBeBase(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
library L {}
contract C is L {}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "library ‘L’ cannot be used as base contract for contract ‘C’"),
		"got %v", messages)
}

func TestLibraryCannotHaveBase(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {}
library L is A {}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "library ‘L’ cannot have a base contract"),
		"got %v", messages)
}

func TestConcreteContractWithBodylessFunction(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract C {
    function f() public virtual;
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages,
		"contract should be marked ‘abstract contract’ since it has 1 functions with no body"),
		"got %v", messages)
}

func TestAbstractContractWithBodylessFunction(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
abstract contract C {
    function f() public virtual;
}`)

	assert.Empty(t, errorMessages(ns), "abstract contracts may have bodyless functions")
}

func TestInterfaceImplementationNeedsNoOverride(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
interface I {
    function f() external;
}
contract C is I {
    function f() public {}
}`)

	assert.Empty(t, errorMessages(ns), "implementing an interface does not require ‘override’")
}

func TestAbstractBaseImplementationNeedsOverride(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
abstract contract A {
    function f() public virtual;
}
contract B is A {
    function f() public {}
}`)

	messages := errorMessages(ns)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "function ‘f’ should specify ‘override’")
}

func TestOverrideWithAbstractBase(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
abstract contract A {
    function f() public virtual;
}
contract B is A {
    function f() public override {}
}`)

	assert.Empty(t, errorMessages(ns))
}

func TestMissingOverrideInConcreteContract(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
abstract contract A {
    function f() public virtual;
}
contract B is A {}`)

	messages := errorMessages(ns)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "contract ‘B’ missing override for function ‘f’")
}

func TestOverridesNonVirtualFunction(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    function f() public {}
}
contract B is A {
    function f() public override {}
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "function ‘f’ overrides function which is not virtual"),
		"got %v", messages)
}

func TestOverrideWithoutAnythingToOverride(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    function f() public override {}
}`)

	messages := errorMessages(ns)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "function ‘f’ does not override anything")
}

func TestExtraneousOverrideList(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
interface I {
    function f() external;
}
contract X {}
contract C is I {
    function f() public override(X) {}
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "function ‘f’ includes extraneous overrides ‘X’"),
		"got %v", messages)
}

func TestOverrideListMustNameEveryBase(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    function f() public virtual {}
}
contract B {
    function f() public virtual {}
}
contract C is A, B {
    function f() public override(A) {}
}`)

	messages := errorMessages(ns)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "function ‘f’ missing overrides ‘B’")
	assert.Contains(t, messages[0], "specify ‘override(B,A)’")
}

func TestBareOverrideNeedsOverrideList(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    function f() public virtual {}
}
contract B {
    function f() public virtual {}
}
contract C is A, B {
    function f() public override {}
}`)

	messages := errorMessages(ns)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "function ‘f’ should specify override list ‘override(B,A)’")
}

func TestRedefinitionWithoutOverrideOfVirtual(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    function f() public virtual {}
}
contract B is A {
    function f() public {}
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "function ‘f’ with this signature already defined"),
		"got %v", messages)
}

func TestDuplicateOverloadInContract(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract C {
    function f() public {}
    function f() public {}
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "overloaded function with this signature already exist"),
		"got %v", messages)
}

func TestOverloadsAreDistinct(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract C {
    function f() public {}
    function f(uint256 x) public {}
}`)

	assert.Empty(t, errorMessages(ns), "different signatures are not duplicates")
}

func TestVariableClashAcrossInheritance(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    uint256 x;
}
contract B is A {
    bool x;
}`)

	messages := errorMessages(ns)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "already defined ‘x’")
}

func TestPrivateVariableInvisibleToDerived(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    uint256 private x;
}
contract B is A {
    bool x;
}`)

	assert.Empty(t, errorMessages(ns), "private base variables do not clash")
}

func TestAccessorExemptsVariableClash(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    uint256 public x;
}
contract B is A {
    function x() public {}
}`)

	assert.Empty(t, errorMessages(ns), "public variables are checked on their accessor")
}

func TestMissingBaseConstructorArguments(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    constructor(uint256 a) {}
}
contract B is A {}`)

	messages := errorMessages(ns)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "missing arguments to base contract ‘A’ constructor")
}

func TestAbstractContractNeedsNoBaseArguments(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    constructor(uint256 a) {}
}
abstract contract B is A {}`)

	assert.Empty(t, errorMessages(ns), "only concrete contracts need complete base arguments")
}

func TestBaseArgumentsOnInheritanceSpecifier(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    uint256 a;
    constructor(uint256 v) {
        a = v;
    }
}
contract B is A(1) {}`)

	assert.Empty(t, errorMessages(ns))
}

func TestBaseArgumentsOnConstructor(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    uint256 a;
    constructor(uint256 v) {
        a = v;
    }
}
contract B is A {
    constructor(uint256 v) A(v) {}
}`)

	assert.Empty(t, errorMessages(ns))
}

func TestDuplicateBaseConstructorArguments(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    constructor(uint256 a) {}
}
contract B is A(1) {
    constructor() A(2) {}
}`)

	messages := errorMessages(ns)
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "duplicate argument for base contract ‘A’")
}

func TestBaseCallToNonBase(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {}
contract B {
    constructor() A() {}
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "contract ‘A’ is not a base contract of ‘B’"),
		"got %v", messages)
}

func TestNoMatchingBaseConstructor(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    constructor(uint256 a) {}
}
contract B is A(1, 2) {}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "cannot find matching constructor for contract ‘A’ with 2 arguments"),
		"got %v", messages)
}

func TestUsingRequiresLibrary(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {}
contract C {
    using A for uint256;
}`)

	messages := errorMessages(ns)
	assert.True(t, hasError(messages, "library expected but contract ‘A’ found"),
		"got %v", messages)
}

func TestUsingLibrary(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
library SafeMath {
    function add(uint256 a, uint256 b) internal pure returns (uint256 c) {
        c = a + b;
        return c;
    }
}
contract C {
    using SafeMath for uint256;
    using SafeMath for *;
}`)

	assert.Empty(t, errorMessages(ns))
	c := contractNo(t, ns, "C")
	assert.Len(t, ns.Contracts[c].Using, 2)
	assert.NotNil(t, ns.Contracts[c].Using[0].Type)
	assert.Nil(t, ns.Contracts[c].Using[1].Type, "wildcard using has no type")
}

func TestEventsMayBeRedefined(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    event Transfer(address from, address to, uint256 value);
}
contract B is A {
    event Transfer(address from, address to, uint256 value);
}`)

	assert.Empty(t, errorMessages(ns))
}

func TestLayoutIdempotent(t *testing.T) {
	ns := resolveSource(t, TargetSubstrate, `
contract A {
    uint256 a;
    bool b;
}`)

	no := contractNo(t, ns, "A")
	require.Len(t, ns.Contracts[no].Layout, 2)

	ns.layoutContract(no)
	assert.Len(t, ns.Contracts[no].Layout, 2, "repeated layout must not duplicate entries")
}
