// SPDX-License-Identifier: Apache-2.0
package sema

import (
	"github.com/Setheum-Labs/solang/internal/ast"
	"github.com/Setheum-Labs/solang/internal/diag"
)

// Variable is a resolved state variable. Storage placement lives in the
// contract's Layout, not here, since a variable's slot depends on the most
// derived contract.
type Variable struct {
	Pos         ast.Position
	Name        string
	Type        Type
	Visibility  ast.Visibility
	Constant    bool
	Initializer ast.Expression
	// Value is the evaluated initializer of a constant.
	Value *Value
}

// resolveVariableDecl resolves one state variable declaration and appends it
// to the contract's variable list.
func (ns *Namespace) resolveVariableDecl(fileNo, contractNo int, def *ast.VariableDefinition) (int, bool) {
	ty, ok := ns.ResolveType(fileNo, contractNo, def.Type, &ns.Diagnostics)
	if !ok {
		return 0, false
	}

	variable := Variable{
		Pos:         def.Pos,
		Name:        def.Name.Name,
		Type:        ty,
		Visibility:  def.Visibility,
		Constant:    def.Constant,
		Initializer: def.Initializer,
	}

	if def.Constant {
		if def.Initializer == nil {
			ns.Diagnostics.Push(diag.Errorf(def.Pos,
				"missing initializer for constant ‘%s’", def.Name.Name))
		} else if value, ok := ns.resolveConstExpr(def.Initializer, fileNo, contractNo, ty, &ns.Diagnostics); ok {
			variable.Value = &value
		}
	}

	if ns.Contracts[contractNo].IsInterface() {
		ns.Diagnostics.Push(diag.Errorf(def.Pos,
			"interface ‘%s’ cannot have state variable", ns.Contracts[contractNo].Name))
	}

	contract := &ns.Contracts[contractNo]
	contract.Variables = append(contract.Variables, variable)
	return len(contract.Variables) - 1, true
}
