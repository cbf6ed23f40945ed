// SPDX-License-Identifier: Apache-2.0
package sema

import (
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/Setheum-Labs/solang/internal/ast"
	"github.com/Setheum-Labs/solang/internal/diag"
)

// resolveContracts runs the resolution pipeline over the contracts of one
// file: base graph, using directives, declarations, base constructor
// arguments, storage layout with override resolution, and finally function
// bodies and the base argument completeness check.
func (ns *Namespace) resolveContracts(fileNo int, contractNos []int) {
	ns.resolveBaseContracts(fileNo, contractNos)

	ns.resolveUsing(fileNo, contractNos)

	// declarations first, so bodies can call functions and constructors of
	// contracts declared later in the file
	var bodies []FunctionRef
	for _, contractNo := range contractNos {
		bodies = append(bodies, ns.resolveDeclarations(fileNo, contractNo)...)
	}

	// base constructor arguments on the inheritance specifiers themselves
	ns.resolveBaseArgs(fileNo, contractNos)

	// all declarations are known; lay out storage and settle overrides
	for _, contractNo := range contractNos {
		ns.layoutContract(contractNo)
	}

	if !ns.resolveBodies(fileNo, bodies) {
		// only when every body resolved
		for _, contractNo := range contractNos {
			ns.checkBaseArgs(contractNo)
		}
	}
}

// resolveBaseContracts resolves the inheritance specifier list of each
// contract and rejects self-inheritance, duplicates, cycles and kind
// violations. Constructor arguments are left for resolveBaseArgs, since no
// constants have been resolved yet.
func (ns *Namespace) resolveBaseContracts(fileNo int, contractNos []int) {
	for _, contractNo := range contractNos {
		def := ns.Contracts[contractNo].definition

		for _, base := range def.Bases {
			if ns.Contracts[contractNo].IsLibrary() {
				ns.Diagnostics.Push(diag.Errorf(base.Pos,
					"library ‘%s’ cannot have a base contract",
					ns.Contracts[contractNo].Name))
				continue
			}

			name := base.Name
			no, ok := ns.ResolveContract(fileNo, name.Name)
			if !ok {
				d := diag.Errorf(name.Pos, "contract ‘%s’ not found", name.Name)
				if suggestion, ok := ns.ContractSuggestion(name.Name); ok {
					d.Message += fmt.Sprintf(", did you mean ‘%s’?", suggestion)
				}
				ns.Diagnostics.Push(d)
				continue
			}

			switch {
			case no == contractNo:
				ns.Diagnostics.Push(diag.Errorf(name.Pos,
					"contract ‘%s’ cannot have itself as a base contract", name.Name))
			case hasBaseEdge(ns.Contracts[contractNo].Bases, no):
				ns.Diagnostics.Push(diag.Errorf(name.Pos,
					"contract ‘%s’ duplicate base ‘%s’",
					ns.Contracts[contractNo].Name, name.Name))
			case ns.isBase(contractNo, no):
				ns.Diagnostics.Push(diag.Errorf(name.Pos,
					"base ‘%s’ from contract ‘%s’ is cyclic",
					name.Name, ns.Contracts[contractNo].Name))
			case ns.Contracts[contractNo].IsInterface() && !ns.Contracts[no].IsInterface():
				ns.Diagnostics.Push(diag.Errorf(name.Pos,
					"interface ‘%s’ cannot have %s ‘%s’ as a base",
					ns.Contracts[contractNo].Name, ns.Contracts[no].Kind, name.Name))
			case ns.Contracts[no].IsLibrary():
				contract := &ns.Contracts[contractNo]
				ns.Diagnostics.Push(diag.Errorf(name.Pos,
					"library ‘%s’ cannot be used as base contract for %s ‘%s’",
					name.Name, contract.Kind, contract.Name))
			default:
				ns.Contracts[contractNo].Bases = append(ns.Contracts[contractNo].Bases, Base{
					Pos:        base.Pos,
					ContractNo: no,
				})
			}
		}
	}
}

func hasBaseEdge(bases []Base, contractNo int) bool {
	for _, b := range bases {
		if b.ContractNo == contractNo {
			return true
		}
	}
	return false
}

// resolveBaseArgs matches the argument lists of inheritance specifiers to a
// base constructor, for every base edge that survived resolveBaseContracts.
func (ns *Namespace) resolveBaseArgs(fileNo int, contractNos []int) {
	for _, contractNo := range contractNos {
		def := ns.Contracts[contractNo].definition

		for _, base := range def.Bases {
			baseNo, ok := ns.ResolveContract(fileNo, base.Name.Name)
			if !ok {
				continue
			}
			pos := -1
			for i, b := range ns.Contracts[contractNo].Bases {
				if b.ContractNo == baseNo {
					pos = i
					break
				}
			}
			if pos < 0 || !base.HasArgs {
				continue
			}

			if constructorNo, ok := ns.matchConstructorToArgs(base.Pos, baseNo, base.Args); ok && constructorNo >= 0 {
				ns.Contracts[contractNo].Bases[pos].Constructor = &BaseConstructor{
					FunctionNo: constructorNo,
					Args:       base.Args,
				}
			}
		}
	}
}

// resolveDeclarations resolves the function signatures and state variables
// of one contract and registers their symbols. Bodies are returned for
// later resolution.
func (ns *Namespace) resolveDeclarations(fileNo, contractNo int) []FunctionRef {
	def := ns.Contracts[contractNo].definition

	ns.Diagnostics.Push(diag.Debugf(def.Pos,
		"found %s ‘%s’", def.Kind, def.Name.Name))

	var noBody []int
	var bodies []FunctionRef

	for _, part := range def.Parts {
		f, ok := part.(*ast.FunctionDefinition)
		if !ok {
			continue
		}
		functionNo, ok := ns.resolveFunctionDecl(fileNo, contractNo, f)
		if !ok {
			continue
		}
		if f.Body != nil {
			bodies = append(bodies, FunctionRef{ContractNo: contractNo, FunctionNo: functionNo})
		} else {
			noBody = append(noBody, functionNo)
		}

		fn := &ns.Contracts[contractNo].Functions[functionNo]
		if f.Kind == ast.KindFunction || f.Kind == ast.KindModifier {
			ns.addSymbol(SymbolKey{File: fileNo, Contract: contractNo, Name: fn.Name}, &Symbol{
				Kind:        SymbolFunction,
				Pos:         fn.Pos,
				ContractNo:  contractNo,
				FunctionNos: []int{functionNo},
			})
		}
	}

	if ns.Contracts[contractNo].Kind == ast.KindContract && len(noBody) > 0 {
		var notes []diag.Note
		for _, functionNo := range noBody {
			fn := &ns.Contracts[contractNo].Functions[functionNo]
			notes = append(notes, diag.Note{
				Pos:     fn.Pos,
				Message: fmt.Sprintf("location of function ‘%s’ with no body", fn.Name),
			})
		}
		ns.Diagnostics.Push(diag.ErrorWithNotes(def.Pos,
			fmt.Sprintf("contract should be marked ‘abstract contract’ since it has %d functions with no body",
				len(notes)),
			notes))
	}

	ns.resolveContractVariables(fileNo, contractNo, def)

	return bodies
}

// resolveContractVariables resolves the state variables and events of a
// contract and registers their symbols.
func (ns *Namespace) resolveContractVariables(fileNo, contractNo int, def *ast.ContractDefinition) {
	for _, part := range def.Parts {
		switch v := part.(type) {
		case *ast.VariableDefinition:
			varNo, ok := ns.resolveVariableDecl(fileNo, contractNo, v)
			if !ok {
				continue
			}
			ns.addSymbol(SymbolKey{File: fileNo, Contract: contractNo, Name: v.Name.Name}, &Symbol{
				Kind:       SymbolVariable,
				Pos:        v.Pos,
				ContractNo: contractNo,
				VarNo:      varNo,
			})
		case *ast.EventDefinition:
			ns.addSymbol(SymbolKey{File: fileNo, Contract: contractNo, Name: v.Name.Name}, &Symbol{
				Kind:       SymbolEvent,
				Pos:        v.Pos,
				ContractNo: contractNo,
			})
		}
	}
}

// resolveUsing resolves the using-for directives of each contract.
func (ns *Namespace) resolveUsing(fileNo int, contractNos []int) {
	for _, contractNo := range contractNos {
		def := ns.Contracts[contractNo].definition

		for _, part := range def.Parts {
			using, ok := part.(*ast.UsingDefinition)
			if !ok {
				continue
			}

			libraryNo, found := ns.ResolveContract(fileNo, using.Library.Name)
			if !found {
				ns.Diagnostics.Push(diag.Errorf(using.Library.Pos,
					"library ‘%s’ not found", using.Library.Name))
				continue
			}
			if !ns.Contracts[libraryNo].IsLibrary() {
				ns.Diagnostics.Push(diag.Errorf(using.Library.Pos,
					"library expected but %s ‘%s’ found",
					ns.Contracts[libraryNo].Kind, using.Library.Name))
				continue
			}

			var ty Type
			if using.Type != nil {
				var diagnostics diag.Diagnostics
				resolved, ok := ns.ResolveType(fileNo, contractNo, using.Type, &diagnostics)
				if !ok {
					ns.Diagnostics.Extend(diagnostics)
					continue
				}
				if _, isContract := resolved.(ContractType); isContract {
					ns.Diagnostics.Push(diag.Errorf(using.Library.Pos,
						"using library ‘%s’ to extend contract type not possible",
						using.Library.Name))
					continue
				}
				ty = resolved
			}

			ns.Contracts[contractNo].Using = append(ns.Contracts[contractNo].Using, Using{
				LibraryNo: libraryNo,
				Type:      ty,
			})
		}
	}
}

// resolveBodies resolves every collected function body; it reports whether
// any body was broken.
func (ns *Namespace) resolveBodies(fileNo int, bodies []FunctionRef) bool {
	broken := false

	for _, ref := range bodies {
		before := len(ns.Diagnostics)
		ns.resolveFunctionBody(fileNo, ref.ContractNo, ref.FunctionNo)
		if ns.Diagnostics[before:].HasErrors() {
			broken = true
		}
	}

	return broken
}

// layoutContract lays out the storage variables of the whole inheritance
// graph of a contract, merges the symbols of its bases, and resolves which
// function implements each virtual signature. Calling it a second time is a
// no-op.
func (ns *Namespace) layoutContract(contractNo int) {
	if ns.Contracts[contractNo].layoutDone {
		return
	}
	ns.Contracts[contractNo].layoutDone = true

	functionSyms := make(map[string]*Symbol)
	variableSyms := make(map[string]*Symbol)
	overrideNeeded := make(map[string][]FunctionRef)

	slot := ns.Target.FirstStorageOffset()

	for _, baseContractNo := range ns.VisitBases(contractNo) {
		contractFileNo := ns.Contracts[baseContractNo].FileNo

		// merge the base's symbols, checking for clashes with what the
		// graph has accumulated so far
		for _, entry := range ns.symbolsOfContract(contractFileNo, baseContractNo) {
			name, sym := entry.Name, entry.Symbol

			done := false
			if prev, ok := functionSyms[name]; ok && prev.Kind == SymbolFunction && sym.Kind == SymbolFunction {
				// overloads accumulate across the graph
				done = true
			}

			if !done {
				prev, ok := variableSyms[name]
				if !ok {
					prev, ok = functionSyms[name]
				}
				if ok {
					// events can be redefined; a variable with an accessor
					// (public) is checked on the accessor function instead
					if !(ns.symbolHasAccessor(prev) || ns.symbolHasAccessor(sym) ||
						prev.Kind == SymbolEvent && sym.Kind == SymbolEvent) {
						ns.Diagnostics.Push(diag.ErrorWithNote(sym.Pos,
							"already defined ‘"+name+"’",
							prev.Pos, "previous definition of ‘"+name+"’"))
					}
				}
			}

			if !ns.symbolIsPrivateVariable(sym) {
				if sym.Kind == SymbolFunction {
					functionSyms[name] = sym
				} else {
					variableSyms[name] = sym
				}
			}
		}

		// place the base's variables in storage
		for varNo := range ns.Contracts[baseContractNo].Variables {
			variable := &ns.Contracts[baseContractNo].Variables[varNo]
			if variable.Constant {
				continue
			}
			ty := variable.Type

			if ns.Target.AlignedStorage() {
				alignment := ns.TypeAlign(ty)
				offset := new(big.Int).Mod(slot, alignment)
				if offset.Sign() > 0 {
					slot = new(big.Int).Add(slot, new(big.Int).Sub(alignment, offset))
				}
			}

			ns.Contracts[contractNo].Layout = append(ns.Contracts[contractNo].Layout, LayoutEntry{
				Slot:       new(big.Int).Set(slot),
				ContractNo: baseContractNo,
				VarNo:      varNo,
				Type:       ty,
			})

			if ns.TypeIsDynamic(ty) {
				ns.Contracts[contractNo].DynamicStorage = true
			}

			slot = new(big.Int).Add(slot, ns.TypeStorageSlots(ty))
		}

		// fold the base's functions into the override state
		for functionNo := range ns.Contracts[baseContractNo].Functions {
			ns.applyFunctionOverrides(contractNo, baseContractNo, functionNo, overrideNeeded)
		}
	}

	ns.Contracts[contractNo].FixedLayoutSize = slot

	ns.reportPendingOverrides(contractNo, overrideNeeded)
}

// applyFunctionOverrides folds one function of a base into the override
// state accumulated while walking the linearization.
func (ns *Namespace) applyFunctionOverrides(contractNo, baseContractNo, functionNo int, overrideNeeded map[string][]FunctionRef) {
	curRef := FunctionRef{ContractNo: baseContractNo, FunctionNo: functionNo}
	cur := ns.function(curRef)
	signature := cur.Signature

	if entry, pending := overrideNeeded[signature]; pending {
		// this function satisfies earlier declarations waiting for an
		// implementation
		var nonVirtual []diag.Note
		for _, ref := range entry {
			fn := ns.function(ref)
			if !fn.IsVirtual {
				nonVirtual = append(nonVirtual, diag.Note{
					Pos:     fn.Pos,
					Message: fmt.Sprintf("function ‘%s’ is not specified ‘virtual’", fn.Name),
				})
			}
		}
		if len(nonVirtual) > 0 {
			ns.Diagnostics.Push(diag.ErrorWithNotes(cur.Pos,
				fmt.Sprintf("function ‘%s’ overrides functions which are not ‘virtual’", cur.Name),
				nonVirtual))
		}

		sourceOverride := ns.contractNameList(entry)

		if cur.Override != nil {
			if len(cur.Override.Bases) == 0 && len(entry) > 1 {
				ns.Diagnostics.Push(diag.Errorf(cur.Override.Pos,
					"function ‘%s’ should specify override list ‘override(%s)’",
					cur.Name, sourceOverride))
			} else {
				specified := make(map[int]bool)
				for _, no := range cur.Override.Bases {
					specified[no] = true
				}
				needed := make(map[int]bool)
				for _, ref := range entry {
					needed[ref.ContractNo] = true
				}

				missing := ns.contractNameDifference(needed, specified)
				if len(missing) > 0 && len(needed) >= 2 {
					ns.Diagnostics.Push(diag.Errorf(cur.Override.Pos,
						"function ‘%s’ missing overrides ‘%s’, specify ‘override(%s)’",
						cur.Name, strings.Join(missing, ","), sourceOverride))
				}

				extra := ns.contractNameDifference(specified, needed)
				if len(extra) > 0 {
					ns.Diagnostics.Push(diag.Errorf(cur.Override.Pos,
						"function ‘%s’ includes extraneous overrides ‘%s’, specify ‘override(%s)’",
						cur.Name, strings.Join(extra, ","), sourceOverride))
				}
			}

			delete(overrideNeeded, signature)
		} else if len(entry) == 1 {
			// implementing an interface never requires the override
			// keyword; anything else does
			if !ns.Contracts[entry[0].ContractNo].IsInterface() {
				ns.Diagnostics.Push(diag.Errorf(cur.Pos,
					"function ‘%s’ should specify ‘override’", cur.Name))
			}

			delete(overrideNeeded, signature)
		} else {
			ns.Diagnostics.Push(diag.Errorf(cur.Pos,
				"function ‘%s’ should specify override list ‘override(%s)’",
				cur.Name, sourceOverride))
		}
	} else {
		var previousDefs []FunctionRef
		for _, ref := range ns.Contracts[contractNo].AllFunctions {
			fn := ns.function(ref)
			if !fn.IsConstructor() && fn.Signature == signature {
				previousDefs = append(previousDefs, ref)
			}
		}

		if len(previousDefs) == 0 && cur.Override != nil {
			ns.Diagnostics.Push(diag.Errorf(cur.Pos,
				"function ‘%s’ does not override anything", cur.Name))
			return
		}

		// a function without a body waits for an override
		if len(previousDefs) == 0 && !cur.HasBody {
			overrideNeeded[signature] = []FunctionRef{curRef}
			return
		}

		for _, prevRef := range previousDefs {
			funcPrev := ns.function(prevRef)

			if prevRef.ContractNo == baseContractNo {
				ns.Diagnostics.Push(diag.ErrorWithNote(cur.Pos,
					fmt.Sprintf("function ‘%s’ overrides function in same contract", cur.Name),
					funcPrev.Pos,
					fmt.Sprintf("previous definition of ‘%s’", funcPrev.Name)))
				continue
			}

			if funcPrev.Kind != cur.Kind {
				ns.Diagnostics.Push(diag.ErrorWithNote(cur.Pos,
					fmt.Sprintf("%s ‘%s’ overrides %s", cur.Kind, cur.Name, funcPrev.Kind),
					funcPrev.Pos,
					fmt.Sprintf("previous definition of ‘%s’", funcPrev.Name)))
				continue
			}

			if paramsDiffer(funcPrev.Params, cur.Params) {
				ns.Diagnostics.Push(diag.ErrorWithNote(cur.Pos,
					fmt.Sprintf("%s ‘%s’ overrides %s with different argument types",
						cur.Kind, cur.Name, funcPrev.Kind),
					funcPrev.Pos,
					fmt.Sprintf("previous definition of ‘%s’", funcPrev.Name)))
				continue
			}

			if paramsDiffer(funcPrev.Returns, cur.Returns) {
				ns.Diagnostics.Push(diag.ErrorWithNote(cur.Pos,
					fmt.Sprintf("%s ‘%s’ overrides %s with different return types",
						cur.Kind, cur.Name, funcPrev.Kind),
					funcPrev.Pos,
					fmt.Sprintf("previous definition of ‘%s’", funcPrev.Name)))
				continue
			}

			if cur.Override != nil {
				if !funcPrev.IsVirtual {
					ns.Diagnostics.Push(diag.ErrorWithNote(cur.Pos,
						fmt.Sprintf("function ‘%s’ overrides function which is not virtual", cur.Name),
						funcPrev.Pos,
						fmt.Sprintf("previous definition of function ‘%s’", funcPrev.Name)))
					continue
				}

				if len(cur.Override.Bases) > 0 && !containsInt(cur.Override.Bases, prevRef.ContractNo) {
					ns.Diagnostics.Push(diag.ErrorWithNote(cur.Override.Pos,
						fmt.Sprintf("function ‘%s’ override list does not contain ‘%s’",
							cur.Name, ns.Contracts[prevRef.ContractNo].Name),
						funcPrev.Pos,
						fmt.Sprintf("previous definition of function ‘%s’", funcPrev.Name)))
					continue
				}
			} else if cur.HasBody {
				if entry, ok := overrideNeeded[signature]; ok {
					overrideNeeded[signature] = append(entry, curRef)
				} else {
					overrideNeeded[signature] = []FunctionRef{prevRef, curRef}
				}
				continue
			}
		}
	}

	if cur.Override != nil || cur.IsVirtual {
		if ns.Contracts[contractNo].VirtualFunctions == nil {
			ns.Contracts[contractNo].VirtualFunctions = make(map[string]FunctionRef)
		}
		ns.Contracts[contractNo].VirtualFunctions[signature] = curRef
	}

	ns.Contracts[contractNo].AllFunctions = append(ns.Contracts[contractNo].AllFunctions, curRef)
}

// reportPendingOverrides diagnoses the signatures that are still waiting
// for an override once the whole linearization has been folded.
func (ns *Namespace) reportPendingOverrides(contractNo int, overrideNeeded map[string][]FunctionRef) {
	signatures := make([]string, 0, len(overrideNeeded))
	for signature := range overrideNeeded {
		signatures = append(signatures, signature)
	}
	sort.Strings(signatures)

	for _, signature := range signatures {
		list := overrideNeeded[signature]
		fn := ns.function(list[0])

		// interfaces and abstract contracts may leave virtual functions
		// unimplemented
		if fn.IsVirtual && !ns.Contracts[contractNo].IsConcrete() {
			continue
		}

		if len(list) == 1 {
			pos := ns.Contracts[contractNo].Pos
			switch fn.Kind {
			case ast.KindFallback, ast.KindReceive:
				ns.Diagnostics.Push(diag.ErrorWithNote(pos,
					fmt.Sprintf("contract ‘%s’ missing override for ‘%s’ function",
						ns.Contracts[contractNo].Name, fn.Kind),
					fn.Pos,
					fmt.Sprintf("declaration of ‘%s’ function", fn.Kind)))
			default:
				ns.Diagnostics.Push(diag.ErrorWithNote(pos,
					fmt.Sprintf("contract ‘%s’ missing override for function ‘%s’",
						ns.Contracts[contractNo].Name, fn.Name),
					fn.Pos,
					fmt.Sprintf("declaration of function ‘%s’", fn.Name)))
			}
			continue
		}

		var notes []diag.Note
		for _, ref := range list[1:] {
			other := ns.function(ref)
			notes = append(notes, diag.Note{
				Pos:     other.Pos,
				Message: fmt.Sprintf("previous definition of function ‘%s’", other.Name),
			})
		}
		ns.Diagnostics.Push(diag.ErrorWithNotes(fn.Pos,
			fmt.Sprintf("function ‘%s’ with this signature already defined", fn.Name),
			notes))
	}
}

func (ns *Namespace) contractNameList(refs []FunctionRef) string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ns.Contracts[ref.ContractNo].Name)
	}
	return strings.Join(names, ",")
}

// contractNameDifference returns the names of the contracts in a but not in
// b, sorted for stable messages.
func (ns *Namespace) contractNameDifference(a, b map[int]bool) []string {
	var names []string
	for no := range a {
		if !b[no] {
			names = append(names, ns.Contracts[no].Name)
		}
	}
	sort.Strings(names)
	return names
}

func paramsDiffer(a, b []Parameter) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if !TypesEqual(a[i].Type, b[i].Type) {
			return true
		}
	}
	return false
}

func containsInt(list []int, want int) bool {
	for _, n := range list {
		if n == want {
			return true
		}
	}
	return false
}

// baseOrModifier records where the arguments for a base constructor came
// from while walking the graph.
type baseOrModifier struct {
	Pos                  ast.Position
	DefinedConstructorNo int // -1 when the arguments came from an inheritance specifier
	CallingConstructorNo int
	Args                 []ast.Expression
}

// collectBaseArgs walks the base contracts of contractNo and collects every
// base constructor argument list, diagnosing duplicates. constructorNo is
// the constructor whose base calls to follow, or -1 for none.
func (ns *Namespace) collectBaseArgs(contractNo, constructorNo int, baseArgs map[int]baseOrModifier, diagnostics *diag.Set) {
	contract := &ns.Contracts[contractNo]

	if constructorNo >= 0 {
		constructor := &contract.Functions[constructorNo]

		baseNos := make([]int, 0, len(constructor.Bases))
		for baseNo := range constructor.Bases {
			baseNos = append(baseNos, baseNo)
		}
		sort.Ints(baseNos)

		for _, baseNo := range baseNos {
			call := constructor.Bases[baseNo]
			if prev, ok := baseArgs[baseNo]; ok {
				diagnostics.Insert(diag.ErrorWithNote(call.Pos,
					fmt.Sprintf("duplicate argument for base contract ‘%s’",
						ns.Contracts[baseNo].Name),
					prev.Pos,
					fmt.Sprintf("previous argument for base contract ‘%s’",
						ns.Contracts[baseNo].Name)))
			} else {
				baseArgs[baseNo] = baseOrModifier{
					Pos:                  call.Pos,
					DefinedConstructorNo: constructorNo,
					CallingConstructorNo: call.FunctionNo,
					Args:                 call.Args,
				}

				ns.collectBaseArgs(baseNo, call.FunctionNo, baseArgs, diagnostics)
			}
		}
	}

	for _, base := range contract.Bases {
		if base.Constructor != nil {
			if prev, ok := baseArgs[base.ContractNo]; ok {
				diagnostics.Insert(diag.ErrorWithNote(base.Pos,
					fmt.Sprintf("duplicate argument for base contract ‘%s’",
						ns.Contracts[base.ContractNo].Name),
					prev.Pos,
					fmt.Sprintf("previous argument for base contract ‘%s’",
						ns.Contracts[base.ContractNo].Name)))
			} else {
				baseArgs[base.ContractNo] = baseOrModifier{
					Pos:                  base.Pos,
					DefinedConstructorNo: -1,
					CallingConstructorNo: base.Constructor.FunctionNo,
					Args:                 base.Constructor.Args,
				}

				ns.collectBaseArgs(base.ContractNo, base.Constructor.FunctionNo, baseArgs, diagnostics)
			}
		} else {
			next := -1
			if no, ok := ns.Contracts[base.ContractNo].noArgsConstructor(); ok {
				next = no
			}
			ns.collectBaseArgs(base.ContractNo, next, baseArgs, diagnostics)
		}
	}
}

// checkBaseArgs verifies that a concrete contract supplies arguments for
// every base constructor in its graph that requires them.
func (ns *Namespace) checkBaseArgs(contractNo int) {
	contract := &ns.Contracts[contractNo]

	if !contract.IsConcrete() {
		return
	}

	diagnostics := diag.NewSet()

	var baseArgsNeeded []int
	for _, baseNo := range ns.VisitBases(contractNo) {
		if baseNo != contractNo && ns.Contracts[baseNo].ConstructorNeedsArguments() {
			baseArgsNeeded = append(baseArgsNeeded, baseNo)
		}
	}

	if contract.HaveConstructor() {
		for _, constructorNo := range contract.constructorList() {
			baseArgs := make(map[int]baseOrModifier)

			ns.collectBaseArgs(contractNo, constructorNo, baseArgs, diagnostics)

			for _, baseNo := range baseArgsNeeded {
				if _, ok := baseArgs[baseNo]; !ok {
					diagnostics.Insert(diag.Errorf(contract.Pos,
						"missing arguments to base contract ‘%s’ constructor",
						ns.Contracts[baseNo].Name))
				}
			}
		}
	} else {
		baseArgs := make(map[int]baseOrModifier)

		ns.collectBaseArgs(contractNo, -1, baseArgs, diagnostics)

		for _, baseNo := range baseArgsNeeded {
			if _, ok := baseArgs[baseNo]; !ok {
				diagnostics.Insert(diag.Errorf(contract.Pos,
					"missing arguments to base contract ‘%s’ constructor",
					ns.Contracts[baseNo].Name))
			}
		}
	}

	ns.Diagnostics.Extend(diagnostics.All())
}
