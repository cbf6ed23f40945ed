// SPDX-License-Identifier: Apache-2.0
package sema

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/sha3"

	"github.com/Setheum-Labs/solang/internal/ast"
)

// Contract is a resolved contract. Bases, Layout and the override state are
// filled in by the resolver phases in order; FileNo is the file the contract
// was declared in.
type Contract struct {
	Pos    ast.Position
	Kind   ast.ContractKind
	Name   string
	FileNo int

	// Bases in declaration order, resolved to contract indices. A base's
	// Constructor is set once arguments for it are known, either from an
	// inheritance specifier or from a constructor's base call.
	Bases []Base

	Using     []Using
	Variables []Variable
	Functions []Function

	// Layout covers the whole inheritance graph of this contract, most
	// base-like first. FixedLayoutSize is the slot cursor after the last
	// entry.
	Layout          []LayoutEntry
	FixedLayoutSize *big.Int
	DynamicStorage  bool

	// AllFunctions is every function reachable through the inheritance
	// graph, in linearization order. VirtualFunctions maps a signature to
	// its most derived virtual or overriding implementation.
	AllFunctions     []FunctionRef
	VirtualFunctions map[string]FunctionRef

	definition *ast.ContractDefinition
	layoutDone bool
}

// FunctionRef names a function by owning contract and index.
type FunctionRef struct {
	ContractNo int
	FunctionNo int
}

func (ns *Namespace) function(ref FunctionRef) *Function {
	return &ns.Contracts[ref.ContractNo].Functions[ref.FunctionNo]
}

// Base is one resolved inheritance edge.
type Base struct {
	Pos        ast.Position
	ContractNo int
	// Constructor pairs a base constructor with the arguments passed to
	// it; nil while no arguments have been supplied.
	Constructor *BaseConstructor
}

type BaseConstructor struct {
	FunctionNo int
	Args       []ast.Expression
}

// Using is a resolved using-for directive; a nil Type means the wildcard
// form that applies the library to every type.
type Using struct {
	LibraryNo int
	Type      Type
}

// LayoutEntry places one state variable of the inheritance graph in storage.
type LayoutEntry struct {
	Slot       *big.Int
	ContractNo int
	VarNo      int
	Type       Type
}

func (c *Contract) IsLibrary() bool {
	return c.Kind == ast.KindLibrary
}

func (c *Contract) IsInterface() bool {
	return c.Kind == ast.KindInterface
}

// IsConcrete reports whether the contract can be instantiated on-chain.
func (c *Contract) IsConcrete() bool {
	return c.Kind == ast.KindContract
}

// Selector is the dispatch discriminator for the contract: the first four
// bytes of the keccak256 of its name, read little-endian.
func (c *Contract) Selector() uint32 {
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(c.Name))
	var sum [32]byte
	hash.Sum(sum[:0])
	return binary.LittleEndian.Uint32(sum[:4])
}

func (c *Contract) HaveConstructor() bool {
	for _, fn := range c.Functions {
		if fn.IsConstructor() {
			return true
		}
	}
	return false
}

func (c *Contract) NoArgsConstructor() bool {
	for _, fn := range c.Functions {
		if fn.IsConstructor() && len(fn.Params) == 0 {
			return true
		}
	}
	return false
}

// ConstructorNeedsArguments reports whether instantiating the contract
// requires passing constructor arguments.
func (c *Contract) ConstructorNeedsArguments() bool {
	return c.HaveConstructor() && !c.NoArgsConstructor()
}

// noArgsConstructor returns the function number of the constructor taking
// no arguments, if one exists.
func (c *Contract) noArgsConstructor() (int, bool) {
	for i, fn := range c.Functions {
		if fn.IsConstructor() && len(fn.Params) == 0 {
			return i, true
		}
	}
	return 0, false
}

// constructorList returns the function numbers of all constructors.
func (c *Contract) constructorList() []int {
	var out []int
	for i, fn := range c.Functions {
		if fn.IsConstructor() {
			out = append(out, i)
		}
	}
	return out
}

// isBase reports whether base appears anywhere in the inheritance graph of
// derived, including derived itself.
func (ns *Namespace) isBase(base, derived int) bool {
	if base == derived {
		return true
	}
	for _, b := range ns.Contracts[derived].Bases {
		if ns.isBase(base, b.ContractNo) {
			return true
		}
	}
	return false
}

// VisitBases linearizes the inheritance graph: post-order depth-first over
// the bases in reverse declaration order, each contract appearing once at
// its first visit, the contract itself last. The most base-like contract
// comes first.
func (ns *Namespace) VisitBases(contractNo int) []int {
	var order []int

	var visit func(no int)
	visit = func(no int) {
		for _, seen := range order {
			if seen == no {
				return
			}
		}
		bases := ns.Contracts[no].Bases
		for i := len(bases) - 1; i >= 0; i-- {
			visit(bases[i].ContractNo)
		}
		order = append(order, no)
	}
	visit(contractNo)

	return order
}
