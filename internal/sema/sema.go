// SPDX-License-Identifier: Apache-2.0
package sema

import (
	"math/big"

	"github.com/Setheum-Labs/solang/internal/ast"
)

// ResolveSourceUnit registers the contracts of one parsed file and runs the
// resolution pipeline over them. Diagnostics accumulate on the namespace;
// callers check HasErrors afterwards.
func (ns *Namespace) ResolveSourceUnit(fileNo int, unit *ast.SourceUnit) {
	var contractNos []int

	for _, def := range unit.Contracts {
		contractNo := len(ns.Contracts)
		ns.Contracts = append(ns.Contracts, Contract{
			Pos:             def.Pos,
			Kind:            def.Kind,
			Name:            def.Name.Name,
			FileNo:          fileNo,
			FixedLayoutSize: big.NewInt(0),
			definition:      def,
		})

		ns.addSymbol(SymbolKey{File: fileNo, Contract: NoContract, Name: def.Name.Name}, &Symbol{
			Kind:       SymbolContract,
			Pos:        def.Pos,
			ContractNo: contractNo,
		})

		contractNos = append(contractNos, contractNo)
	}

	ns.resolveContracts(fileNo, contractNos)
}
