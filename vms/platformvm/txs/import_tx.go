// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/set"
	"github.com/ava-labs/txassembler/vms/components/avax"
)

var (
	_ UnsignedTx = (*ImportTx)(nil)

	ErrNoImportInputs = errors.New("tx has no imported inputs")
)

// ImportTx is an unsigned importTx
type ImportTx struct {
	// Metadata, inputs and outputs
	BaseTx `json:"baseTx"`

	// Which chain to consume the funds from
	SourceChain ids.ID `json:"sourceChain"`

	// Inputs that consume UTXOs produced on the chain
	ImportedInputs []*avax.TransferableInput `json:"importedInputs"`
}

// InputUTXOs returns the UTXOIDs of the imported funds
func (tx *ImportTx) InputUTXOs() set.Set[ids.ID] {
	set := set.NewSet[ids.ID](len(tx.ImportedInputs))
	for _, in := range tx.ImportedInputs {
		set.Add(in.InputID())
	}
	return set
}

func (tx *ImportTx) InputIDs() set.Set[ids.ID] {
	inputs := tx.BaseTx.InputIDs()
	atomicInputs := tx.InputUTXOs()
	inputs.Union(atomicInputs)
	return inputs
}

// SyntacticVerify this transaction is well-formed
func (tx *ImportTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case len(tx.ImportedInputs) == 0:
		return ErrNoImportInputs
	}

	if err := tx.BaseTx.SyntacticVerify(); err != nil {
		return err
	}
	return verifyInputs(tx.ImportedInputs)
}

func (tx *ImportTx) Visit(visitor Visitor) error {
	return visitor.ImportTx(tx)
}
