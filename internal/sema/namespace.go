// SPDX-License-Identifier: Apache-2.0

// Package sema resolves a parsed set of contract declarations into a fully
// linearized, storage-laid-out program: base graph validation, inheritance
// linearization, symbol merge, storage layout, virtual-override resolution
// and base-constructor argument propagation.
package sema

import (
	"sort"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/Setheum-Labs/solang/internal/ast"
	"github.com/Setheum-Labs/solang/internal/diag"
)

// NoContract marks a symbol key as file-scoped rather than contract-scoped.
const NoContract = -1

// Namespace is the process-wide compilation state: every phase reads and
// mutates it in turn; there is exactly one writer at a time by call
// discipline.
type Namespace struct {
	Target          Target
	Files           []string
	Contracts       []Contract
	VariableSymbols map[SymbolKey]*Symbol
	FunctionSymbols map[SymbolKey]*Symbol
	Diagnostics     diag.Diagnostics
}

// SymbolKey addresses a symbol by file, owning contract (NoContract for file
// scope) and name.
type SymbolKey struct {
	File     int
	Contract int
	Name     string
}

type SymbolKind int

const (
	SymbolContract SymbolKind = iota
	SymbolFunction
	SymbolVariable
	SymbolEvent
)

// Symbol is one entry in the global symbol tables. Function symbols carry
// the whole overload set; event symbols may accumulate redefinitions.
type Symbol struct {
	Kind        SymbolKind
	Pos         ast.Position
	ContractNo  int
	VarNo       int
	FunctionNos []int
}

func NewNamespace(target Target) *Namespace {
	return &Namespace{
		Target:          target,
		VariableSymbols: make(map[SymbolKey]*Symbol),
		FunctionSymbols: make(map[SymbolKey]*Symbol),
	}
}

// AddFile registers a file name and returns its index.
func (ns *Namespace) AddFile(name string) int {
	ns.Files = append(ns.Files, name)
	return len(ns.Files) - 1
}

// ResolveContract looks a contract name up at file scope.
func (ns *Namespace) ResolveContract(fileNo int, name string) (int, bool) {
	if sym, ok := ns.VariableSymbols[SymbolKey{File: fileNo, Contract: NoContract, Name: name}]; ok {
		if sym.Kind == SymbolContract {
			return sym.ContractNo, true
		}
	}
	return 0, false
}

// ContractSuggestion returns the closest known contract name, if any is
// close enough to be a plausible typo.
func (ns *Namespace) ContractSuggestion(name string) (string, bool) {
	best := ""
	bestDistance := 3
	for _, contract := range ns.Contracts {
		distance := levenshtein.DistanceForStrings(
			[]rune(name), []rune(contract.Name), levenshtein.DefaultOptions)
		if distance < bestDistance {
			best = contract.Name
			bestDistance = distance
		}
	}
	return best, best != ""
}

// addSymbol inserts a symbol, accumulating function overloads and event
// redefinitions, and diagnosing any other clash.
func (ns *Namespace) addSymbol(key SymbolKey, sym *Symbol) {
	var table, other map[SymbolKey]*Symbol
	if sym.Kind == SymbolFunction || sym.Kind == SymbolEvent {
		table, other = ns.FunctionSymbols, ns.VariableSymbols
	} else {
		table, other = ns.VariableSymbols, ns.FunctionSymbols
	}

	if prev, ok := table[key]; ok {
		switch {
		case prev.Kind == SymbolFunction && sym.Kind == SymbolFunction:
			prev.FunctionNos = append(prev.FunctionNos, sym.FunctionNos...)
		case prev.Kind == SymbolEvent && sym.Kind == SymbolEvent:
			// events may be redefined
		default:
			ns.Diagnostics.Push(diag.ErrorWithNote(sym.Pos,
				"already defined ‘"+key.Name+"’",
				prev.Pos, "previous definition of ‘"+key.Name+"’"))
		}
		return
	}

	if prev, ok := other[key]; ok {
		ns.Diagnostics.Push(diag.ErrorWithNote(sym.Pos,
			"already defined ‘"+key.Name+"’",
			prev.Pos, "previous definition of ‘"+key.Name+"’"))
		return
	}

	table[key] = sym
}

// symbolsOfContract returns the symbols declared directly in a contract in
// its declaration file, variables first, each group sorted by name so merge
// diagnostics are deterministic.
func (ns *Namespace) symbolsOfContract(fileNo, contractNo int) []namedSymbol {
	var out []namedSymbol
	for _, table := range []map[SymbolKey]*Symbol{ns.VariableSymbols, ns.FunctionSymbols} {
		var group []namedSymbol
		for key, sym := range table {
			if key.File == fileNo && key.Contract == contractNo {
				group = append(group, namedSymbol{Name: key.Name, Symbol: sym})
			}
		}
		sort.Slice(group, func(i, j int) bool { return group[i].Name < group[j].Name })
		out = append(out, group...)
	}
	return out
}

type namedSymbol struct {
	Name   string
	Symbol *Symbol
}

// symbolIsPrivateVariable reports whether a symbol is a private state
// variable; private variables are invisible to derived contracts.
func (ns *Namespace) symbolIsPrivateVariable(sym *Symbol) bool {
	if sym.Kind != SymbolVariable {
		return false
	}
	variable := ns.Contracts[sym.ContractNo].Variables[sym.VarNo]
	return variable.Visibility == ast.VisibilityPrivate
}

// symbolHasAccessor reports whether a symbol is a public state variable,
// which gets an accessor function; clashes with explicit functions of the
// same name are then checked on the accessor instead.
func (ns *Namespace) symbolHasAccessor(sym *Symbol) bool {
	if sym.Kind != SymbolVariable {
		return false
	}
	variable := ns.Contracts[sym.ContractNo].Variables[sym.VarNo]
	return variable.Visibility == ast.VisibilityPublic
}
