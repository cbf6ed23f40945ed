// SPDX-License-Identifier: Apache-2.0
package sema

import (
	"math/big"
	"strings"

	"github.com/Setheum-Labs/solang/internal/ast"
	"github.com/Setheum-Labs/solang/internal/diag"
)

// Value is an evaluated constant expression. Exactly one of Int, Bool or
// Str is meaningful, per Kind.
type Value struct {
	Pos  ast.Position
	Kind ValueKind
	Int  *big.Int
	Bool bool
	Str  string
}

type ValueKind int

const (
	ValueInt ValueKind = iota
	ValueBool
	ValueString
)

// resolveConstExpr evaluates an expression that must be constant at
// resolution time: literals, references to constant state variables, unary
// minus and integer arithmetic. expected may be nil when no target type is
// known yet.
func (ns *Namespace) resolveConstExpr(expr ast.Expression, fileNo, contractNo int, expected Type, diagnostics *diag.Diagnostics) (Value, bool) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		n := new(big.Int)
		text := strings.ReplaceAll(e.Text, "_", "")
		if _, ok := n.SetString(text, 0); !ok {
			diagnostics.Push(diag.Errorf(e.Pos, "invalid number literal ‘%s’", e.Text))
			return Value{}, false
		}
		return Value{Pos: e.Pos, Kind: ValueInt, Int: n}, true
	case *ast.BoolLiteral:
		return Value{Pos: e.Pos, Kind: ValueBool, Bool: e.Value}, true
	case *ast.StringLiteral:
		return Value{Pos: e.Pos, Kind: ValueString, Str: e.Value}, true
	case *ast.Ident:
		return ns.resolveConstIdent(e, fileNo, contractNo, diagnostics)
	case *ast.UnaryExpr:
		value, ok := ns.resolveConstExpr(e.Expr, fileNo, contractNo, expected, diagnostics)
		if !ok {
			return Value{}, false
		}
		switch e.Op {
		case "-":
			if value.Kind != ValueInt {
				break
			}
			return Value{Pos: e.Pos, Kind: ValueInt, Int: new(big.Int).Neg(value.Int)}, true
		case "!":
			if value.Kind != ValueBool {
				break
			}
			return Value{Pos: e.Pos, Kind: ValueBool, Bool: !value.Bool}, true
		}
		diagnostics.Push(diag.Errorf(e.Pos, "operator ‘%s’ not allowed in constant expression", e.Op))
		return Value{}, false
	case *ast.BinaryExpr:
		return ns.resolveConstBinary(e, fileNo, contractNo, expected, diagnostics)
	}

	diagnostics.Push(diag.Errorf(expr.ExprPos(), "expression is not constant"))
	return Value{}, false
}

// resolveConstIdent looks up a name as a constant state variable, checking
// the contract itself and then its bases.
func (ns *Namespace) resolveConstIdent(e *ast.Ident, fileNo, contractNo int, diagnostics *diag.Diagnostics) (Value, bool) {
	if contractNo == NoContract {
		diagnostics.Push(diag.Errorf(e.Pos, "‘%s’ not found", e.Name))
		return Value{}, false
	}

	for _, no := range ns.reverseBases(contractNo) {
		key := SymbolKey{File: ns.Contracts[no].FileNo, Contract: no, Name: e.Name}
		sym, ok := ns.VariableSymbols[key]
		if !ok || sym.Kind != SymbolVariable {
			continue
		}
		variable := ns.Contracts[sym.ContractNo].Variables[sym.VarNo]
		if !variable.Constant || variable.Value == nil {
			diagnostics.Push(diag.Errorf(e.Pos,
				"‘%s’ is not a constant", e.Name))
			return Value{}, false
		}
		return *variable.Value, true
	}

	diagnostics.Push(diag.Errorf(e.Pos, "‘%s’ not found", e.Name))
	return Value{}, false
}

// reverseBases is the linearization from most derived to most base-like,
// the order name lookup walks.
func (ns *Namespace) reverseBases(contractNo int) []int {
	order := ns.VisitBases(contractNo)
	out := make([]int, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		out = append(out, order[i])
	}
	return out
}

func (ns *Namespace) resolveConstBinary(e *ast.BinaryExpr, fileNo, contractNo int, expected Type, diagnostics *diag.Diagnostics) (Value, bool) {
	left, ok := ns.resolveConstExpr(e.Left, fileNo, contractNo, expected, diagnostics)
	if !ok {
		return Value{}, false
	}
	right, ok := ns.resolveConstExpr(e.Right, fileNo, contractNo, expected, diagnostics)
	if !ok {
		return Value{}, false
	}

	if left.Kind != ValueInt || right.Kind != ValueInt {
		diagnostics.Push(diag.Errorf(e.Pos,
			"operator ‘%s’ needs integer operands in constant expression", e.Op))
		return Value{}, false
	}

	result := new(big.Int)
	switch e.Op {
	case "+":
		result.Add(left.Int, right.Int)
	case "-":
		result.Sub(left.Int, right.Int)
	case "*":
		result.Mul(left.Int, right.Int)
	case "/":
		if right.Int.Sign() == 0 {
			diagnostics.Push(diag.Errorf(e.Pos, "division by zero"))
			return Value{}, false
		}
		result.Quo(left.Int, right.Int)
	case "%":
		if right.Int.Sign() == 0 {
			diagnostics.Push(diag.Errorf(e.Pos, "division by zero"))
			return Value{}, false
		}
		result.Rem(left.Int, right.Int)
	default:
		diagnostics.Push(diag.Errorf(e.Pos,
			"operator ‘%s’ not allowed in constant expression", e.Op))
		return Value{}, false
	}

	return Value{Pos: e.Pos, Kind: ValueInt, Int: result}, true
}

// matchConstructorToArgs finds the constructor of a contract that takes the
// given number of arguments. The default constructor matches an empty
// argument list and is reported as function number -1.
func (ns *Namespace) matchConstructorToArgs(pos ast.Position, contractNo int, args []ast.Expression) (int, bool) {
	contract := &ns.Contracts[contractNo]

	for _, fnNo := range contract.constructorList() {
		if len(contract.Functions[fnNo].Params) == len(args) {
			return fnNo, true
		}
	}

	if !contract.HaveConstructor() && len(args) == 0 {
		return -1, true
	}

	ns.Diagnostics.Push(diag.Errorf(pos,
		"cannot find matching constructor for contract ‘%s’ with %d arguments",
		contract.Name, len(args)))
	return 0, false
}
