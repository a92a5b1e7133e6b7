// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/set"
	"github.com/ava-labs/txassembler/vms/components/avax"
)

// UnsignedTx is an unsigned transaction
type UnsignedTx interface {
	// InputIDs returns the set of inputs this transaction consumes
	InputIDs() set.Set[ids.ID]

	Outputs() []*avax.TransferableOutput

	// Attempts to verify this transaction without any provided state.
	SyntacticVerify() error

	// Visit calls [visitor] with this transaction's concrete type
	Visit(visitor Visitor) error
}
