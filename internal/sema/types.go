// SPDX-License-Identifier: Apache-2.0
package sema

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/Setheum-Labs/solang/internal/ast"
	"github.com/Setheum-Labs/solang/internal/diag"
)

// Type is a resolved type. The variant set is closed; consumers switch
// exhaustively over the concrete types.
type Type interface {
	typ()
}

type BoolType struct{}

type AddressType struct{}

// IntType covers intN and uintN.
type IntType struct {
	Bits   int
	Signed bool
}

// BytesType is a fixed-length bytesN.
type BytesType struct {
	Length int
}

type DynamicBytesType struct{}

type StringType struct{}

type MappingType struct {
	Key   Type
	Value Type
}

// ArrayType has a nil Length for dynamic arrays.
type ArrayType struct {
	Elem   Type
	Length *big.Int
}

// ContractType references a contract by namespace index.
type ContractType struct {
	ContractNo int
}

func (BoolType) typ()         {}
func (AddressType) typ()      {}
func (IntType) typ()          {}
func (BytesType) typ()        {}
func (DynamicBytesType) typ() {}
func (StringType) typ()       {}
func (MappingType) typ()      {}
func (ArrayType) typ()        {}
func (ContractType) typ()     {}

// TypeString renders the canonical form used in signatures and messages.
func (ns *Namespace) TypeString(ty Type) string {
	switch t := ty.(type) {
	case BoolType:
		return "bool"
	case AddressType:
		return "address"
	case IntType:
		if t.Signed {
			return fmt.Sprintf("int%d", t.Bits)
		}
		return fmt.Sprintf("uint%d", t.Bits)
	case BytesType:
		return fmt.Sprintf("bytes%d", t.Length)
	case DynamicBytesType:
		return "bytes"
	case StringType:
		return "string"
	case MappingType:
		return fmt.Sprintf("mapping(%s => %s)", ns.TypeString(t.Key), ns.TypeString(t.Value))
	case ArrayType:
		if t.Length == nil {
			return ns.TypeString(t.Elem) + "[]"
		}
		return fmt.Sprintf("%s[%s]", ns.TypeString(t.Elem), t.Length)
	case ContractType:
		return ns.Contracts[t.ContractNo].Name
	}
	return "unknown"
}

// TypesEqual is structural equality; contract types compare by index.
func TypesEqual(a, b Type) bool {
	switch at := a.(type) {
	case BoolType:
		_, ok := b.(BoolType)
		return ok
	case AddressType:
		_, ok := b.(AddressType)
		return ok
	case IntType:
		bt, ok := b.(IntType)
		return ok && at.Bits == bt.Bits && at.Signed == bt.Signed
	case BytesType:
		bt, ok := b.(BytesType)
		return ok && at.Length == bt.Length
	case DynamicBytesType:
		_, ok := b.(DynamicBytesType)
		return ok
	case StringType:
		_, ok := b.(StringType)
		return ok
	case MappingType:
		bt, ok := b.(MappingType)
		return ok && TypesEqual(at.Key, bt.Key) && TypesEqual(at.Value, bt.Value)
	case ArrayType:
		bt, ok := b.(ArrayType)
		if !ok || !TypesEqual(at.Elem, bt.Elem) {
			return false
		}
		if (at.Length == nil) != (bt.Length == nil) {
			return false
		}
		return at.Length == nil || at.Length.Cmp(bt.Length) == 0
	case ContractType:
		bt, ok := b.(ContractType)
		return ok && at.ContractNo == bt.ContractNo
	}
	return false
}

// TypeIsDynamic reports whether a type has unbounded storage size.
func (ns *Namespace) TypeIsDynamic(ty Type) bool {
	switch t := ty.(type) {
	case DynamicBytesType, StringType, MappingType:
		return true
	case ArrayType:
		if t.Length == nil {
			return true
		}
		return ns.TypeIsDynamic(t.Elem)
	}
	return false
}

// TypeAlign is the required storage alignment in bytes on aligned targets.
func (ns *Namespace) TypeAlign(ty Type) *big.Int {
	switch t := ty.(type) {
	case BoolType:
		return big.NewInt(1)
	case IntType:
		bytes := int64(t.Bits / 8)
		if bytes > 8 {
			bytes = 8
		}
		return big.NewInt(bytes)
	case BytesType:
		length := int64(t.Length)
		if length > 8 {
			length = 8
		}
		return big.NewInt(length)
	case AddressType, ContractType:
		return big.NewInt(8)
	case DynamicBytesType, StringType, MappingType:
		// stored as a u32 offset into the account heap
		return big.NewInt(4)
	case ArrayType:
		if t.Length == nil {
			return big.NewInt(4)
		}
		return ns.TypeAlign(t.Elem)
	}
	return big.NewInt(1)
}

// TypeStorageSlots is the storage footprint of a type: bytes on byte-addressed
// targets, 256-bit slots elsewhere.
func (ns *Namespace) TypeStorageSlots(ty Type) *big.Int {
	if ns.Target.AlignedStorage() {
		return ns.typeByteSize(ty)
	}

	switch t := ty.(type) {
	case ArrayType:
		if t.Length != nil {
			return new(big.Int).Mul(t.Length, ns.TypeStorageSlots(t.Elem))
		}
	}
	return big.NewInt(1)
}

func (ns *Namespace) typeByteSize(ty Type) *big.Int {
	switch t := ty.(type) {
	case BoolType:
		return big.NewInt(1)
	case IntType:
		return big.NewInt(int64(t.Bits / 8))
	case BytesType:
		return big.NewInt(int64(t.Length))
	case AddressType, ContractType:
		return big.NewInt(32)
	case DynamicBytesType, StringType, MappingType:
		return big.NewInt(4)
	case ArrayType:
		if t.Length == nil {
			return big.NewInt(4)
		}
		return new(big.Int).Mul(t.Length, ns.typeByteSize(t.Elem))
	}
	return big.NewInt(1)
}

// ResolveType turns an unresolved type name into a resolved type. Errors go
// into diagnostics, not the namespace, so callers decide whether to forward
// them.
func (ns *Namespace) ResolveType(fileNo int, contractNo int, raw ast.TypeName, diagnostics *diag.Diagnostics) (Type, bool) {
	switch t := raw.(type) {
	case *ast.ElementaryType:
		return elementaryType(t), true
	case *ast.UserType:
		if no, ok := ns.ResolveContract(fileNo, t.Name.Name); ok {
			return ContractType{ContractNo: no}, true
		}
		diagnostics.Push(diag.Errorf(t.Pos, "type ‘%s’ not found", t.Name.Name))
		return nil, false
	case *ast.MappingType:
		key, ok := ns.ResolveType(fileNo, contractNo, t.Key, diagnostics)
		if !ok {
			return nil, false
		}
		switch key.(type) {
		case MappingType, ArrayType, ContractType:
			diagnostics.Push(diag.Errorf(t.Key.TypePos(),
				"‘%s’ is not an elementary mapping key type", ns.TypeString(key)))
			return nil, false
		}
		value, ok := ns.ResolveType(fileNo, contractNo, t.Value, diagnostics)
		if !ok {
			return nil, false
		}
		return MappingType{Key: key, Value: value}, true
	case *ast.ArrayType:
		elem, ok := ns.ResolveType(fileNo, contractNo, t.Elem, diagnostics)
		if !ok {
			return nil, false
		}
		if t.Length == nil {
			return ArrayType{Elem: elem}, true
		}
		length, ok := ns.resolveConstExpr(t.Length, fileNo, contractNo, nil, diagnostics)
		if !ok {
			return nil, false
		}
		if length.Int == nil || length.Int.Sign() <= 0 {
			diagnostics.Push(diag.Errorf(t.Length.ExprPos(), "array length must be a positive integer"))
			return nil, false
		}
		return ArrayType{Elem: elem, Length: length.Int}, true
	}
	return nil, false
}

func elementaryType(t *ast.ElementaryType) Type {
	switch t.Name {
	case "bool":
		return BoolType{}
	case "address":
		return AddressType{}
	case "string":
		return StringType{}
	case "bytes":
		return DynamicBytesType{}
	}
	if strings.HasPrefix(t.Name, "bytes") {
		return BytesType{Length: mustAtoi(t.Name[len("bytes"):])}
	}
	signed := strings.HasPrefix(t.Name, "int")
	digits := strings.TrimPrefix(strings.TrimPrefix(t.Name, "u"), "int")
	bits := 256
	if digits != "" {
		bits = mustAtoi(digits)
	}
	return IntType{Bits: bits, Signed: signed}
}

func mustAtoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
