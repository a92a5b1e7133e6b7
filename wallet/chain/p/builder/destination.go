// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"slices"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/set"
	"github.com/ava-labs/txassembler/vms/components/avax"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
)

// spendDestination describes a single spend: who pays, who receives, where
// change goes and how much of each asset is required. It accumulates the
// selected inputs and the produced outputs.
//
// A spendDestination is populated by exactly one call to spend and must not
// be reused.
type spendDestination struct {
	senders set.Set[ids.ShortID]
	// Receives the delivered value.
	to *secp256k1fx.OutputOwners
	// Receives change. Nil if no change addresses were provided.
	changeOwner *secp256k1fx.OutputOwners
	// If true, delivered value is staked rather than transferred.
	stake bool

	amounts map[ids.ID]*assetAmount

	inputs         []*avax.TransferableInput
	primaryOutputs []*avax.TransferableOutput
	changeOutputs  []*avax.TransferableOutput
	stakeOutputs   []*avax.TransferableOutput
}

func newSpendDestination(
	senders set.Set[ids.ShortID],
	to *secp256k1fx.OutputOwners,
	changeAddrs set.Set[ids.ShortID],
	stake bool,
) *spendDestination {
	return &spendDestination{
		senders:     senders,
		to:          to,
		changeOwner: changeOwnerOf(changeAddrs),
		stake:       stake,
		amounts:     make(map[ids.ID]*assetAmount),
	}
}

// addTarget registers [amount] to deliver and [burn] to destroy of [assetID].
// Repeated calls for the same asset accumulate.
func (d *spendDestination) addTarget(assetID ids.ID, amount, burn uint64) error {
	if amount == 0 && burn == 0 {
		return nil
	}
	assetAmount, ok := d.amounts[assetID]
	if !ok {
		assetAmount = newAssetAmount(assetID)
		d.amounts[assetID] = assetAmount
	}
	return assetAmount.addTarget(amount, burn)
}

// assetIDs returns the registered assets in a deterministic order.
func (d *spendDestination) assetIDs() []ids.ID {
	assetIDs := make([]ids.ID, 0, len(d.amounts))
	for assetID := range d.amounts {
		assetIDs = append(assetIDs, assetID)
	}
	slices.SortFunc(assetIDs, ids.ID.Compare)
	return assetIDs
}

func (d *spendDestination) isFinished() bool {
	for _, assetAmount := range d.amounts {
		if !assetAmount.isFinished() {
			return false
		}
	}
	return true
}

// outputs returns the primary and change outputs sorted together.
func (d *spendDestination) outputs() []*avax.TransferableOutput {
	outs := slices.Concat(d.primaryOutputs, d.changeOutputs)
	avax.SortTransferableOutputs(outs)
	return outs
}

// changeOwnerOf returns a 1-of-n owner over [addrs], or nil if [addrs] is
// empty. Change is never time locked.
func changeOwnerOf(addrs set.Set[ids.ShortID]) *secp256k1fx.OutputOwners {
	if addrs.Len() == 0 {
		return nil
	}
	return &secp256k1fx.OutputOwners{
		Locktime:  0,
		Threshold: 1,
		Addrs:     set.SortedList(addrs),
	}
}
