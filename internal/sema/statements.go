// SPDX-License-Identifier: Apache-2.0
package sema

import (
	"github.com/Setheum-Labs/solang/internal/ast"
	"github.com/Setheum-Labs/solang/internal/diag"
)

// Statement is a resolved statement. The variant set mirrors the source
// statement forms, with declared types resolved.
type Statement interface {
	stmt()
}

type VarDeclStatement struct {
	Pos  ast.Position
	Name string
	Type Type
	Init ast.Expression
}

type AssignStatement struct {
	Pos    ast.Position
	Target string
	Value  ast.Expression
}

type ReturnStatement struct {
	Pos   ast.Position
	Exprs []ast.Expression
}

type ExprStatement struct {
	Pos  ast.Position
	Expr ast.Expression
}

func (*VarDeclStatement) stmt() {}
func (*AssignStatement) stmt()  {}
func (*ReturnStatement) stmt()  {}
func (*ExprStatement) stmt()    {}

// builtinFunctions are callable without declaration.
var builtinFunctions = map[string]bool{
	"require":   true,
	"assert":    true,
	"revert":    true,
	"keccak256": true,
}

// resolveFunctionBody resolves one function's base constructor calls and
// body statements. Bodies are resolved only after every contract's
// declarations, layout and overrides are settled, so name lookup can walk
// the full inheritance graph.
func (ns *Namespace) resolveFunctionBody(fileNo, contractNo, fnNo int) {
	fn := &ns.Contracts[contractNo].Functions[fnNo]
	def := fn.definition

	if len(def.BaseCalls) > 0 {
		ns.resolveConstructorBaseCalls(fileNo, contractNo, fn, def)
	}

	if def.Body == nil {
		return
	}

	st := newSymtable()
	for _, p := range fn.Params {
		st.add(p.Pos, p.Name, p.Type, &ns.Diagnostics)
	}
	for _, p := range fn.Returns {
		st.add(p.Pos, p.Name, p.Type, &ns.Diagnostics)
	}

	for _, raw := range def.Body.Stmts {
		switch s := raw.(type) {
		case *ast.VarDeclStmt:
			ty, ok := ns.ResolveType(fileNo, contractNo, s.Type, &ns.Diagnostics)
			if !ok {
				continue
			}
			if s.Init != nil {
				ns.checkExpr(s.Init, fileNo, contractNo, st)
			}
			st.add(s.Pos, s.Name.Name, ty, &ns.Diagnostics)
			fn.Body = append(fn.Body, &VarDeclStatement{
				Pos: s.Pos, Name: s.Name.Name, Type: ty, Init: s.Init,
			})
		case *ast.AssignStmt:
			if !ns.nameIsAssignable(s.Target.Name, fileNo, contractNo, st) {
				ns.Diagnostics.Push(diag.Errorf(s.Target.Pos,
					"‘%s’ not found", s.Target.Name))
			}
			ns.checkExpr(s.Value, fileNo, contractNo, st)
			fn.Body = append(fn.Body, &AssignStatement{
				Pos: s.Pos, Target: s.Target.Name, Value: s.Value,
			})
		case *ast.ReturnStmt:
			if len(s.Exprs) != len(fn.Returns) {
				ns.Diagnostics.Push(diag.Errorf(s.Pos,
					"expected %d return values, got %d", len(fn.Returns), len(s.Exprs)))
			}
			for _, e := range s.Exprs {
				ns.checkExpr(e, fileNo, contractNo, st)
			}
			fn.Body = append(fn.Body, &ReturnStatement{Pos: s.Pos, Exprs: s.Exprs})
		case *ast.ExprStmt:
			ns.checkExpr(s.Expr, fileNo, contractNo, st)
			fn.Body = append(fn.Body, &ExprStatement{Pos: s.Pos, Expr: s.Expr})
		}
	}
}

// resolveConstructorBaseCalls resolves the Base(args) attributes on a
// constructor into the function's base constructor map.
func (ns *Namespace) resolveConstructorBaseCalls(fileNo, contractNo int, fn *Function, def *ast.FunctionDefinition) {
	if !fn.IsConstructor() {
		for _, call := range def.BaseCalls {
			ns.Diagnostics.Push(diag.Errorf(call.Pos,
				"base contract ‘%s’ not allowed on %s", call.Name.Name, fn.Kind))
		}
		return
	}

	if fn.Bases == nil {
		fn.Bases = make(map[int]BaseCallArgs)
	}

	for _, call := range def.BaseCalls {
		baseNo, ok := ns.ResolveContract(fileNo, call.Name.Name)
		if !ok {
			ns.Diagnostics.Push(diag.Errorf(call.Pos,
				"contract ‘%s’ not found", call.Name.Name))
			continue
		}
		if baseNo == contractNo || !ns.isBase(baseNo, contractNo) {
			ns.Diagnostics.Push(diag.Errorf(call.Pos,
				"contract ‘%s’ is not a base contract of ‘%s’",
				call.Name.Name, ns.Contracts[contractNo].Name))
			continue
		}
		if prev, ok := fn.Bases[baseNo]; ok {
			ns.Diagnostics.Push(diag.ErrorWithNote(call.Pos,
				"duplicate base contract ‘"+call.Name.Name+"’",
				prev.Pos, "previous base contract ‘"+call.Name.Name+"’"))
			continue
		}

		constructorNo, ok := ns.matchConstructorToArgs(call.Pos, baseNo, call.Args)
		if !ok {
			continue
		}
		for _, arg := range call.Args {
			ns.checkExpr(arg, fileNo, contractNo, constructorScope(fn))
		}
		fn.Bases[baseNo] = BaseCallArgs{
			Pos:        call.Pos,
			FunctionNo: constructorNo,
			Args:       call.Args,
		}
	}
}

// constructorScope is the symtable visible to base call arguments: just the
// constructor's own parameters.
func constructorScope(fn *Function) *symtable {
	st := newSymtable()
	for _, p := range fn.Params {
		if p.Name != "" {
			st.vars[p.Name] = &localVar{Pos: p.Pos, Name: p.Name, Type: p.Type}
		}
	}
	return st
}

// checkExpr verifies every name an expression references exists in scope.
func (ns *Namespace) checkExpr(expr ast.Expression, fileNo, contractNo int, st *symtable) {
	switch e := expr.(type) {
	case *ast.Ident:
		if _, ok := st.find(e.Name); ok {
			return
		}
		if ns.findStateVariable(e.Name, fileNo, contractNo) == nil {
			ns.Diagnostics.Push(diag.Errorf(e.Pos, "‘%s’ not found", e.Name))
		}
	case *ast.UnaryExpr:
		ns.checkExpr(e.Expr, fileNo, contractNo, st)
	case *ast.BinaryExpr:
		ns.checkExpr(e.Left, fileNo, contractNo, st)
		ns.checkExpr(e.Right, fileNo, contractNo, st)
	case *ast.CallExpr:
		if callee, ok := e.Func.(*ast.Ident); ok {
			if !builtinFunctions[callee.Name] && !ns.functionExists(callee.Name, fileNo, contractNo) {
				ns.Diagnostics.Push(diag.Errorf(callee.Pos,
					"unknown function or type ‘%s’", callee.Name))
			}
		}
		for _, arg := range e.Args {
			ns.checkExpr(arg, fileNo, contractNo, st)
		}
	}
}

func (ns *Namespace) nameIsAssignable(name string, fileNo, contractNo int, st *symtable) bool {
	if _, ok := st.find(name); ok {
		return true
	}
	variable := ns.findStateVariable(name, fileNo, contractNo)
	return variable != nil && !variable.Constant
}

// findStateVariable walks the linearization from most derived to most
// base-like; private variables of bases are invisible.
func (ns *Namespace) findStateVariable(name string, fileNo, contractNo int) *Variable {
	if contractNo == NoContract {
		return nil
	}
	for _, no := range ns.reverseBases(contractNo) {
		key := SymbolKey{File: ns.Contracts[no].FileNo, Contract: no, Name: name}
		sym, ok := ns.VariableSymbols[key]
		if !ok || sym.Kind != SymbolVariable {
			continue
		}
		variable := &ns.Contracts[sym.ContractNo].Variables[sym.VarNo]
		if no != contractNo && variable.Visibility == ast.VisibilityPrivate {
			continue
		}
		return variable
	}
	return nil
}

// functionExists reports whether a function of the given name is visible
// anywhere in the inheritance graph, or names a contract (a cast).
func (ns *Namespace) functionExists(name string, fileNo, contractNo int) bool {
	if _, ok := ns.ResolveContract(fileNo, name); ok {
		return true
	}
	if contractNo == NoContract {
		return false
	}
	for _, no := range ns.reverseBases(contractNo) {
		key := SymbolKey{File: ns.Contracts[no].FileNo, Contract: no, Name: name}
		if sym, ok := ns.FunctionSymbols[key]; ok && sym.Kind == SymbolFunction {
			return true
		}
	}
	return false
}
