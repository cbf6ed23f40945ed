// SPDX-License-Identifier: Apache-2.0
package sema

import (
	"fmt"
	"strings"

	"github.com/Setheum-Labs/solang/internal/ast"
)

// DumpContract renders a resolved contract: bases, storage layout and
// resolved functions with their selectors. Used by the emit modes of the
// compiler driver.
func (ns *Namespace) DumpContract(contractNo int) string {
	contract := &ns.Contracts[contractNo]
	var b strings.Builder

	fmt.Fprintf(&b, "#\n# %s %s selector:%08x\n#\n", contract.Kind, contract.Name, contract.Selector())

	if len(contract.Bases) > 0 {
		names := make([]string, 0, len(contract.Bases))
		for _, base := range contract.Bases {
			names = append(names, ns.Contracts[base.ContractNo].Name)
		}
		fmt.Fprintf(&b, "# bases: %s\n", strings.Join(names, ","))
	}

	order := ns.VisitBases(contractNo)
	if len(order) > 1 {
		names := make([]string, 0, len(order))
		for _, no := range order {
			names = append(names, ns.Contracts[no].Name)
		}
		fmt.Fprintf(&b, "# inheritance order: %s\n", strings.Join(names, ","))
	}

	for _, entry := range contract.Layout {
		variable := &ns.Contracts[entry.ContractNo].Variables[entry.VarNo]
		fmt.Fprintf(&b, "# slot %s: %s %s.%s\n",
			entry.Slot, ns.TypeString(entry.Type),
			ns.Contracts[entry.ContractNo].Name, variable.Name)
	}
	fmt.Fprintf(&b, "# fixed layout size: %s\n", contract.FixedLayoutSize)

	for _, ref := range contract.AllFunctions {
		fn := ns.function(ref)

		fmt.Fprintf(&b, "\n# %s %s selector:%08x %s", fn.Kind, fn.Signature, fn.Selector(), fn.Visibility)
		if fn.Mutability != ast.MutabilityNonpayable {
			fmt.Fprintf(&b, " %s", fn.Mutability)
		}
		if fn.IsVirtual {
			b.WriteString(" virtual")
		}
		if fn.Override != nil {
			b.WriteString(" override")
		}
		if !fn.HasBody {
			b.WriteString(" (no body)")
		}
		b.WriteString("\n")

		fmt.Fprintf(&b, "# params: %s\n", ns.paramTypeList(fn.Params))
		fmt.Fprintf(&b, "# returns: %s\n", ns.paramTypeList(fn.Returns))
	}

	return b.String()
}

// DumpNamespace renders every contract in the namespace.
func (ns *Namespace) DumpNamespace() string {
	var b strings.Builder
	for contractNo := range ns.Contracts {
		b.WriteString(ns.DumpContract(contractNo))
		b.WriteString("\n")
	}
	return b.String()
}

func (ns *Namespace) paramTypeList(params []Parameter) string {
	types := make([]string, 0, len(params))
	for _, p := range params {
		types = append(types, ns.TypeString(p.Type))
	}
	return strings.Join(types, ",")
}
