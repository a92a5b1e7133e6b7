// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/vms/components/avax"
	"github.com/ava-labs/txassembler/vms/platformvm/stakeable"
)

var (
	_ UnsignedTx = (*ExportTx)(nil)

	ErrWrongLocktime   = errors.New("wrong locktime reported")
	ErrNoExportOutputs = errors.New("no export outputs")
)

// ExportTx is an unsigned exportTx
type ExportTx struct {
	// Metadata, inputs and outputs
	BaseTx `json:"baseTx"`

	// Which chain to send the funds to
	DestinationChain ids.ID `json:"destinationChain"`

	// Outputs that are exported to the chain
	ExportedOutputs []*avax.TransferableOutput `json:"exportedOutputs"`
}

// SyntacticVerify this transaction is well-formed
func (tx *ExportTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case len(tx.ExportedOutputs) == 0:
		return ErrNoExportOutputs
	}

	if err := tx.BaseTx.SyntacticVerify(); err != nil {
		return err
	}
	if err := verifyOutputs(tx.ExportedOutputs); err != nil {
		return err
	}
	for _, out := range tx.ExportedOutputs {
		if _, ok := out.Output().(*stakeable.LockOut); ok {
			return ErrWrongLocktime
		}
	}
	return nil
}

func (tx *ExportTx) Visit(visitor Visitor) error {
	return visitor.ExportTx(tx)
}
