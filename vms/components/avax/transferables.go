// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package avax

import (
	"cmp"
	"errors"
	"slices"

	"github.com/ava-labs/txassembler/utils"
	"github.com/ava-labs/txassembler/vms/components/verify"
)

var (
	ErrNilTransferableOutput   = errors.New("nil transferable output is not valid")
	ErrNilTransferableFxOutput = errors.New("nil transferable feature extension output is not valid")
	ErrOutputsNotSorted        = errors.New("outputs not sorted")

	ErrNilTransferableInput   = errors.New("nil transferable input is not valid")
	ErrNilTransferableFxInput = errors.New("nil transferable feature extension input is not valid")
	ErrInputsNotSortedUnique  = errors.New("inputs not sorted and unique")

	_ verify.Verifiable                   = (*TransferableOutput)(nil)
	_ verify.Verifiable                   = (*TransferableInput)(nil)
	_ utils.Sortable[*TransferableInput]  = (*TransferableInput)(nil)
	_ utils.Sortable[*TransferableOutput] = (*TransferableOutput)(nil)
)

// Amounter is a data structure that has an amount of something associated
// with it
type Amounter interface {
	// Amount returns how much value this element represents of the asset in its
	// transaction.
	Amount() uint64
}

// TransferableIn is the interface a feature extension must provide to transfer
// value between features extensions.
type TransferableIn interface {
	verify.Verifiable
	Amounter
}

// TransferableOut is the interface a feature extension must provide to
// transfer value between features extensions.
type TransferableOut interface {
	verify.State
	Amounter
}

type TransferableOutput struct {
	Asset `json:"asset"`

	Out TransferableOut `json:"output"`
}

// Output returns the feature extension output that this Output is using.
func (out *TransferableOutput) Output() TransferableOut {
	return out.Out
}

func (out *TransferableOutput) Verify() error {
	switch {
	case out == nil:
		return ErrNilTransferableOutput
	case out.Out == nil:
		return ErrNilTransferableFxOutput
	default:
		return verify.All(&out.Asset, out.Out)
	}
}

// Compare orders outputs by asset and then by amount.
func (out *TransferableOutput) Compare(other *TransferableOutput) int {
	if assetComp := out.Asset.ID.Compare(other.Asset.ID); assetComp != 0 {
		return assetComp
	}
	return cmp.Compare(out.Out.Amount(), other.Out.Amount())
}

// SortTransferableOutputs sorts output objects. Outputs that compare equal
// keep their relative order.
func SortTransferableOutputs(outs []*TransferableOutput) {
	slices.SortStableFunc(outs, (*TransferableOutput).Compare)
}

// IsSortedTransferableOutputs returns true if output objects are sorted
func IsSortedTransferableOutputs(outs []*TransferableOutput) bool {
	return utils.IsSorted(outs)
}

type TransferableInput struct {
	UTXOID `json:"utxoID"`
	Asset  `json:"asset"`

	In TransferableIn `json:"input"`
}

// Input returns the feature extension input that this Input is using.
func (in *TransferableInput) Input() TransferableIn {
	return in.In
}

func (in *TransferableInput) Verify() error {
	switch {
	case in == nil:
		return ErrNilTransferableInput
	case in.In == nil:
		return ErrNilTransferableFxInput
	default:
		return verify.All(&in.UTXOID, &in.Asset, in.In)
	}
}

func (in *TransferableInput) Compare(other *TransferableInput) int {
	return in.UTXOID.Compare(&other.UTXOID)
}

// SortTransferableInputs sorts inputs by the UTXO they consume.
func SortTransferableInputs(ins []*TransferableInput) {
	utils.Sort(ins)
}

// IsSortedAndUniqueTransferableInputs returns true if the inputs are sorted and
// no two inputs consume the same UTXO.
func IsSortedAndUniqueTransferableInputs(ins []*TransferableInput) bool {
	return utils.IsSortedAndUnique(ins)
}
