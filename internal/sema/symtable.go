// SPDX-License-Identifier: Apache-2.0
package sema

import (
	"github.com/Setheum-Labs/solang/internal/ast"
	"github.com/Setheum-Labs/solang/internal/diag"
)

// symtable tracks the local variables of one function body. Scoping is flat
// per function since the statement subset has no nested blocks.
type symtable struct {
	vars map[string]*localVar
}

type localVar struct {
	Pos  ast.Position
	Name string
	Type Type
}

func newSymtable() *symtable {
	return &symtable{vars: make(map[string]*localVar)}
}

func (st *symtable) add(pos ast.Position, name string, ty Type, diagnostics *diag.Diagnostics) {
	if name == "" {
		return
	}
	if prev, ok := st.vars[name]; ok {
		diagnostics.Push(diag.ErrorWithNote(pos,
			"‘"+name+"’ shadows previous declaration",
			prev.Pos, "previous declaration of ‘"+name+"’"))
	}
	st.vars[name] = &localVar{Pos: pos, Name: name, Type: ty}
}

func (st *symtable) find(name string) (*localVar, bool) {
	v, ok := st.vars[name]
	return v, ok
}
