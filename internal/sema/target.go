// SPDX-License-Identifier: Apache-2.0
package sema

import "math/big"

// Target selects the platform-specific storage layout rules.
type Target int

const (
	TargetSubstrate Target = iota
	TargetEwasm
	TargetGeneric
	TargetSolana
)

// SolanaFirstOffset is the size of the reserved region at the start of a
// Solana account; storage layout starts after it.
const SolanaFirstOffset = 16

func ParseTarget(name string) (Target, bool) {
	switch name {
	case "substrate":
		return TargetSubstrate, true
	case "ewasm":
		return TargetEwasm, true
	case "generic":
		return TargetGeneric, true
	case "solana":
		return TargetSolana, true
	}
	return TargetSubstrate, false
}

func (t Target) String() string {
	switch t {
	case TargetEwasm:
		return "ewasm"
	case TargetGeneric:
		return "generic"
	case TargetSolana:
		return "solana"
	}
	return "substrate"
}

// AlignedStorage reports whether storage fields must be aligned to their
// type's natural alignment on this target.
func (t Target) AlignedStorage() bool {
	return t == TargetSolana
}

// FirstStorageOffset is the slot cursor's starting value.
func (t Target) FirstStorageOffset() *big.Int {
	if t == TargetSolana {
		return big.NewInt(SolanaFirstOffset)
	}
	return big.NewInt(0)
}
