// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txs

import (
	"errors"
	"fmt"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/set"
	"github.com/ava-labs/txassembler/vms/components/avax"
)

// MaxMemoSize is the maximum number of bytes in the memo field
const MaxMemoSize = 256

var (
	_ UnsignedTx = (*BaseTx)(nil)

	ErrNilTx        = errors.New("tx is nil")
	ErrMemoTooLarge = errors.New("memo exceeds maximum length")
)

// BaseTx contains fields common to many transaction types. It should be
// embedded in transaction implementations.
type BaseTx struct {
	NetworkID    uint32                     `json:"networkID"`
	BlockchainID ids.ID                     `json:"blockchainID"`
	Outs         []*avax.TransferableOutput `json:"outputs"`
	Ins          []*avax.TransferableInput  `json:"inputs"`
	Memo         []byte                     `json:"memo"`
}

func (tx *BaseTx) InputIDs() set.Set[ids.ID] {
	inputIDs := set.NewSet[ids.ID](len(tx.Ins))
	for _, in := range tx.Ins {
		inputIDs.Add(in.InputID())
	}
	return inputIDs
}

func (tx *BaseTx) Outputs() []*avax.TransferableOutput {
	return tx.Outs
}

// SyntacticVerify returns nil iff this tx is well formed
func (tx *BaseTx) SyntacticVerify() error {
	switch {
	case tx == nil:
		return ErrNilTx
	case len(tx.Memo) > MaxMemoSize:
		return fmt.Errorf("%w: %d > %d", ErrMemoTooLarge, len(tx.Memo), MaxMemoSize)
	}
	if err := verifyOutputs(tx.Outs); err != nil {
		return err
	}
	return verifyInputs(tx.Ins)
}

func (tx *BaseTx) Visit(visitor Visitor) error {
	return visitor.BaseTx(tx)
}

func verifyOutputs(outs []*avax.TransferableOutput) error {
	for _, out := range outs {
		if err := out.Verify(); err != nil {
			return fmt.Errorf("output failed verification: %w", err)
		}
	}
	if !avax.IsSortedTransferableOutputs(outs) {
		return avax.ErrOutputsNotSorted
	}
	return nil
}

func verifyInputs(ins []*avax.TransferableInput) error {
	for _, in := range ins {
		if err := in.Verify(); err != nil {
			return fmt.Errorf("input failed verification: %w", err)
		}
	}
	if !avax.IsSortedAndUniqueTransferableInputs(ins) {
		return avax.ErrInputsNotSortedUnique
	}
	return nil
}
