// SPDX-License-Identifier: Apache-2.0
package ast

// TypeName is an unresolved type as written in source. The semantic type
// resolver turns these into resolved types.
type TypeName interface {
	typeName()
	TypePos() Position
}

func (*ElementaryType) typeName() {}
func (*UserType) typeName()       {}
func (*MappingType) typeName()    {}
func (*ArrayType) typeName()      {}

// ElementaryType is a builtin type keyword such as bool, address, uint256,
// bytes32, bytes or string.
type ElementaryType struct {
	Pos  Position
	Name string
}

func (t *ElementaryType) TypePos() Position { return t.Pos }

// UserType is a reference to a user-declared type, which in this subset is
// always a contract, interface or library name.
type UserType struct {
	Pos  Position
	Name Identifier
}

func (t *UserType) TypePos() Position { return t.Pos }

// MappingType is "mapping(K => V)".
type MappingType struct {
	Pos   Position
	Key   TypeName
	Value TypeName
}

func (t *MappingType) TypePos() Position { return t.Pos }

// ArrayType is "T[]" or "T[n]". Length is nil for a dynamic array.
type ArrayType struct {
	Pos    Position
	Elem   TypeName
	Length Expression
}

func (t *ArrayType) TypePos() Position { return t.Pos }
