// SPDX-License-Identifier: Apache-2.0

// Package ast holds the parsed, still-untyped declaration tree produced by the
// parser. Semantic resolution reads this tree and never mutates it.
package ast

// Position is a source location. File indexes the namespace file table,
// Line and Column are 1-based.
type Position struct {
	File   int
	Line   int
	Column int
}

func (p Position) Valid() bool {
	return p.Line > 0
}

// Identifier is a name with the position it was written at.
type Identifier struct {
	Pos  Position
	Name string
}

// SourceUnit is the contents of a single source file.
type SourceUnit struct {
	Contracts []*ContractDefinition
}

// ContractKind distinguishes the four kinds of contract-like declarations.
// The rule set per kind is closed, so consumers switch exhaustively.
type ContractKind int

const (
	KindContract ContractKind = iota
	KindAbstractContract
	KindInterface
	KindLibrary
)

func (k ContractKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindAbstractContract:
		return "abstract contract"
	case KindInterface:
		return "interface"
	case KindLibrary:
		return "library"
	}
	return "unknown"
}

// ContractDefinition is a contract, abstract contract, interface or library
// declaration with its inheritance list and body parts in declaration order.
type ContractDefinition struct {
	Pos   Position
	Kind  ContractKind
	Name  Identifier
	Bases []BaseSpecifier
	Parts []ContractPart
}

// BaseSpecifier is one entry of the "is" list. HasArgs distinguishes
// "is Base()" from "is Base"; Args may be empty in the former case.
type BaseSpecifier struct {
	Pos     Position
	Name    Identifier
	HasArgs bool
	Args    []Expression
}

// ContractPart is a single declaration in a contract body.
type ContractPart interface {
	part()
}

func (*VariableDefinition) part() {}
func (*FunctionDefinition) part() {}
func (*UsingDefinition) part()    {}
func (*EventDefinition) part()    {}

// Visibility of a state variable or function.
type Visibility int

const (
	VisibilityDefault Visibility = iota
	VisibilityPublic
	VisibilityPrivate
	VisibilityInternal
	VisibilityExternal
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityPrivate:
		return "private"
	case VisibilityInternal:
		return "internal"
	case VisibilityExternal:
		return "external"
	}
	return "internal"
}

// Mutability of a function.
type Mutability int

const (
	MutabilityNonpayable Mutability = iota
	MutabilityPayable
	MutabilityView
	MutabilityPure
)

func (m Mutability) String() string {
	switch m {
	case MutabilityPayable:
		return "payable"
	case MutabilityView:
		return "view"
	case MutabilityPure:
		return "pure"
	}
	return "nonpayable"
}

// VariableDefinition is a state variable declaration.
type VariableDefinition struct {
	Pos         Position
	Type        TypeName
	Visibility  Visibility
	Constant    bool
	Name        Identifier
	Initializer Expression
}

// FunctionKind distinguishes the function-like declarations.
type FunctionKind int

const (
	KindFunction FunctionKind = iota
	KindConstructor
	KindFallback
	KindReceive
	KindModifier
)

func (k FunctionKind) String() string {
	switch k {
	case KindConstructor:
		return "constructor"
	case KindFallback:
		return "fallback"
	case KindReceive:
		return "receive"
	case KindModifier:
		return "modifier"
	}
	return "function"
}

// OverrideSpecifier is the "override" keyword with its optional contract list.
// An empty Bases slice means a bare "override".
type OverrideSpecifier struct {
	Pos   Position
	Bases []Identifier
}

// BaseCall is a modifier-style base constructor invocation attached to a
// constructor definition, e.g. "constructor() Base(1) {}".
type BaseCall struct {
	Pos  Position
	Name Identifier
	Args []Expression
}

// Parameter is a single function parameter or return value.
type Parameter struct {
	Pos  Position
	Type TypeName
	Name Identifier
}

// FunctionDefinition is a function, constructor, fallback or receive
// declaration. Body is nil when the declaration has no body.
type FunctionDefinition struct {
	Pos        Position
	Kind       FunctionKind
	Name       Identifier
	Params     []Parameter
	Returns    []Parameter
	Visibility Visibility
	Mutability Mutability
	Virtual    bool
	Override   *OverrideSpecifier
	BaseCalls  []BaseCall
	Body       *Block
}

// UsingDefinition is a "using L for T" declaration. Type is nil when the
// declaration is "using L for *" or a bare "using L".
type UsingDefinition struct {
	Pos     Position
	Library Identifier
	Type    TypeName
}

// EventDefinition is an event declaration. Events carry no further semantics
// in the resolver beyond symbol registration.
type EventDefinition struct {
	Pos    Position
	Name   Identifier
	Params []Parameter
}
