// SPDX-License-Identifier: Apache-2.0
package sema

import (
	"encoding/binary"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/Setheum-Labs/solang/internal/ast"
	"github.com/Setheum-Labs/solang/internal/diag"
)

// Function is a resolved function, constructor, modifier, fallback or
// receive declaration.
type Function struct {
	Pos        ast.Position
	Name       string
	Kind       ast.FunctionKind
	Signature  string
	Visibility ast.Visibility
	Mutability ast.Mutability
	Params     []Parameter
	Returns    []Parameter

	IsVirtual bool
	// Override is non-nil when the declaration carries an override
	// specifier; Bases are the contracts named in it, resolved.
	Override *Override

	// Bases holds the base constructor calls this constructor makes, by
	// base contract number.
	Bases map[int]BaseCallArgs

	Body    []Statement
	HasBody bool

	definition *ast.FunctionDefinition
}

type Parameter struct {
	Pos  ast.Position
	Name string
	Type Type
}

type Override struct {
	Pos   ast.Position
	Bases []int
}

// BaseCallArgs is one base constructor invocation from a constructor's
// attribute list.
type BaseCallArgs struct {
	Pos        ast.Position
	FunctionNo int
	Args       []ast.Expression
}

func (f *Function) IsConstructor() bool {
	return f.Kind == ast.KindConstructor
}

// Selector is the external dispatch selector: the first four bytes of the
// keccak256 of the signature, read big-endian.
func (f *Function) Selector() uint32 {
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(f.Signature))
	var sum [32]byte
	hash.Sum(sum[:0])
	return binary.BigEndian.Uint32(sum[:4])
}

// signature renders the canonical name(type,...) form used for overload
// and override matching.
func (ns *Namespace) signature(name string, params []Parameter) string {
	types := make([]string, 0, len(params))
	for _, p := range params {
		types = append(types, ns.TypeString(p.Type))
	}
	return name + "(" + strings.Join(types, ",") + ")"
}

// resolveFunctionDecl resolves one function declaration of a contract and
// appends it to the contract's function list. The function number is
// returned so callers can register symbols.
func (ns *Namespace) resolveFunctionDecl(fileNo, contractNo int, def *ast.FunctionDefinition) (int, bool) {
	contract := &ns.Contracts[contractNo]

	fn := Function{
		Pos:        def.Pos,
		Name:       def.Name.Name,
		Kind:       def.Kind,
		Visibility: def.Visibility,
		Mutability: def.Mutability,
		IsVirtual:  def.Virtual,
		HasBody:    def.Body != nil,
		definition: def,
	}

	switch def.Kind {
	case ast.KindConstructor:
		if contract.IsInterface() {
			ns.Diagnostics.Push(diag.Errorf(def.Pos,
				"constructor not allowed in an interface"))
			return 0, false
		}
		if contract.IsLibrary() {
			ns.Diagnostics.Push(diag.Errorf(def.Pos,
				"constructor not allowed in a library"))
			return 0, false
		}
	case ast.KindFallback, ast.KindReceive:
		fn.Name = def.Kind.String()
	case ast.KindFunction:
		// interface functions are implicitly virtual
		if contract.IsInterface() {
			fn.IsVirtual = true
		}
	}

	if def.Virtual && contract.IsLibrary() {
		ns.Diagnostics.Push(diag.Errorf(def.Pos,
			"functions in a library cannot be virtual"))
		fn.IsVirtual = false
	}

	if def.Override != nil {
		if contract.IsLibrary() {
			ns.Diagnostics.Push(diag.Errorf(def.Override.Pos,
				"functions in a library cannot override"))
		} else {
			fn.Override = ns.resolveOverrideList(fileNo, def.Override)
		}
	}

	if contract.IsInterface() && def.Body != nil && def.Kind == ast.KindFunction {
		ns.Diagnostics.Push(diag.Errorf(def.Pos,
			"function in an interface cannot have a body"))
	}

	ok := true
	fn.Params, ok = ns.resolveParams(fileNo, contractNo, def.Params, ok)
	fn.Returns, ok = ns.resolveParams(fileNo, contractNo, def.Returns, ok)
	if !ok {
		return 0, false
	}

	fn.Signature = ns.signature(fn.Name, fn.Params)

	if def.Kind == ast.KindFunction || def.Kind == ast.KindModifier {
		for _, prev := range contract.Functions {
			if prev.Kind == def.Kind && prev.Signature == fn.Signature {
				ns.Diagnostics.Push(diag.ErrorWithNote(def.Pos,
					"overloaded function with this signature already exist",
					prev.Pos, "location of previous definition"))
				return 0, false
			}
		}
	}

	contract.Functions = append(contract.Functions, fn)
	return len(contract.Functions) - 1, true
}

func (ns *Namespace) resolveParams(fileNo, contractNo int, raw []ast.Parameter, ok bool) ([]Parameter, bool) {
	var params []Parameter
	for _, p := range raw {
		ty, resolved := ns.ResolveType(fileNo, contractNo, p.Type, &ns.Diagnostics)
		if !resolved {
			ok = false
			continue
		}
		params = append(params, Parameter{Pos: p.Pos, Name: p.Name.Name, Type: ty})
	}
	return params, ok
}

// resolveOverrideList resolves the contracts named in an override specifier.
// Unknown names are diagnosed; the rest survive so override checking can
// still run.
func (ns *Namespace) resolveOverrideList(fileNo int, spec *ast.OverrideSpecifier) *Override {
	override := &Override{Pos: spec.Pos}
	for _, name := range spec.Bases {
		no, ok := ns.ResolveContract(fileNo, name.Name)
		if !ok {
			ns.Diagnostics.Push(diag.Errorf(name.Pos,
				"contract ‘%s’ in override list not found", name.Name))
			continue
		}
		override.Bases = append(override.Bases, no)
	}
	return override
}
