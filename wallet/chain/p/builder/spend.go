// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/ava-labs/txassembler/vms/components/avax"
	"github.com/ava-labs/txassembler/vms/components/verify"
	"github.com/ava-labs/txassembler/vms/platformvm/stakeable"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
	"github.com/ava-labs/txassembler/wallet/subnet/primary/common"
)

// spend selects UTXOs from [utxos] until every target registered in [dest]
// is met, then populates the outputs of [dest].
//
// If [spendStakeable] is true, stake locked UTXOs may be consumed to satisfy the
// amounts of [dest]. They are consumed before any other UTXO, longest lock
// first.
//
// On error, [dest] is left partially populated and must be discarded.
func (b *builder) spend(
	utxos *common.UTXOSet,
	dest *spendDestination,
	minIssuanceTime uint64,
	spendStakeable bool,
) error {
	candidates := utxos.Consumable(minIssuanceTime, spendStakeable)
	if spendStakeable {
		candidates = lockedFirst(candidates)
	}

	for _, utxo := range candidates {
		assetAmount, ok := dest.amounts[utxo.AssetID()]
		if !ok {
			// This asset isn't needed
			continue
		}

		out, locktime, err := unwrapOutput(utxo.Out)
		if err != nil || out.Amt == 0 {
			// Only outputs that hold value can be spent
			continue
		}

		locked := spendStakeable && locktime > minIssuanceTime
		if locked && !assetAmount.acceptsLocked() {
			continue
		}
		if !locked && assetAmount.isFinished() {
			continue
		}

		inputSigIndices, ok := common.MatchOwners(&out.OutputOwners, dest.senders, minIssuanceTime)
		if !ok {
			// We couldn't spend this UTXO, so we skip to the next one
			continue
		}

		var in avax.TransferableIn = &secp256k1fx.TransferInput{
			Amt: out.Amt,
			Input: secp256k1fx.Input{
				SigIndices: inputSigIndices,
			},
		}
		if locked {
			in = &stakeable.LockIn{
				Locktime:       locktime,
				TransferableIn: in,
			}
			assetAmount.lockedOuts = append(assetAmount.lockedOuts, lockedOutput{
				locktime: locktime,
				out:      out,
			})
		}
		if err := assetAmount.recordSpend(out.Amt, locked); err != nil {
			return err
		}

		dest.inputs = append(dest.inputs, &avax.TransferableInput{
			UTXOID: utxo.UTXOID,
			Asset:  utxo.Asset,
			In:     in,
		})

		if dest.isFinished() {
			break
		}
	}

	assetIDs := dest.assetIDs()
	for _, assetID := range assetIDs {
		assetAmount := dest.amounts[assetID]
		if !assetAmount.isFinished() {
			return fmt.Errorf(
				"%w: provided UTXOs need %d more units of asset %q",
				ErrInsufficientFunds,
				assetAmount.missing(),
				assetID,
			)
		}
	}

	for _, assetID := range assetIDs {
		if err := dest.produceOutputs(dest.amounts[assetID]); err != nil {
			return err
		}
	}

	avax.SortTransferableInputs(dest.inputs)

	b.log.Debug("spent UTXOs",
		zap.Int("numCandidates", len(candidates)),
		zap.Int("numInputs", len(dest.inputs)),
		zap.Int("numPrimaryOutputs", len(dest.primaryOutputs)),
		zap.Int("numChangeOutputs", len(dest.changeOutputs)),
		zap.Int("numStakeOutputs", len(dest.stakeOutputs)),
		zap.Bool("spendStakeable", spendStakeable),
	)
	return nil
}

// produceOutputs emits the stake, change and delivered outputs of a finished
// asset.
func (d *spendDestination) produceOutputs(assetAmount *assetAmount) error {
	asset := avax.Asset{ID: assetAmount.assetID}

	if assetAmount.change() > 0 && d.changeOwner == nil {
		return ErrNoChangeAddress
	}

	// Locked value keeps its lock. Any locked value beyond what is staked is
	// carved out of the last locked output consumed.
	lockedChange := assetAmount.lockedChange()
	for i, locked := range assetAmount.lockedOuts {
		remaining := locked.out.Amt
		if i == len(assetAmount.lockedOuts)-1 && lockedChange > 0 {
			remaining = mustSub(remaining, lockedChange)
			d.changeOutputs = append(d.changeOutputs, &avax.TransferableOutput{
				Asset: asset,
				Out: &stakeable.LockOut{
					Locktime: locked.locktime,
					TransferableOut: &secp256k1fx.TransferOutput{
						Amt:          lockedChange,
						OutputOwners: *d.changeOwner,
					},
				},
			})
		}
		d.stakeOutputs = append(d.stakeOutputs, &avax.TransferableOutput{
			Asset: asset,
			Out: &stakeable.LockOut{
				Locktime: locked.locktime,
				TransferableOut: &secp256k1fx.TransferOutput{
					Amt:          remaining,
					OutputOwners: locked.out.OutputOwners,
				},
			},
		})
	}

	if unlockedChange := assetAmount.unlockedChange(); unlockedChange > 0 {
		d.changeOutputs = append(d.changeOutputs, &avax.TransferableOutput{
			Asset: asset,
			Out: &secp256k1fx.TransferOutput{
				Amt:          unlockedChange,
				OutputOwners: *d.changeOwner,
			},
		})
	}

	if delivered := assetAmount.delivered(); delivered > 0 {
		out := &avax.TransferableOutput{
			Asset: asset,
			Out: &secp256k1fx.TransferOutput{
				Amt:          delivered,
				OutputOwners: *d.to,
			},
		}
		if d.stake {
			d.stakeOutputs = append(d.stakeOutputs, out)
		} else {
			d.primaryOutputs = append(d.primaryOutputs, out)
		}
	}
	return nil
}

// lockedFirst moves the stake locked UTXOs to the front, longest lock first.
// The relative order of everything else is kept. Expired locks are ordered
// with the locked UTXOs but are spent as unlocked value.
func lockedFirst(utxos []*avax.UTXO) []*avax.UTXO {
	var (
		locked   = make([]*avax.UTXO, 0, len(utxos))
		unlocked = make([]*avax.UTXO, 0, len(utxos))
	)
	for _, utxo := range utxos {
		if _, ok := utxo.Out.(*stakeable.LockOut); ok {
			locked = append(locked, utxo)
		} else {
			unlocked = append(unlocked, utxo)
		}
	}
	slices.SortStableFunc(locked, func(a, b *avax.UTXO) int {
		return cmp.Compare(
			b.Out.(*stakeable.LockOut).Locktime,
			a.Out.(*stakeable.LockOut).Locktime,
		)
	})
	return slices.Concat(locked, unlocked)
}

// unwrapOutput returns the *secp256k1fx.TransferOutput that was, potentially,
// wrapped by a *stakeable.LockOut.
//
// If the output was stakeable, the locktime is returned. Otherwise, the
// locktime returned will be 0.
//
// If the output is not a, potentially wrapped, *secp256k1fx.TransferOutput, an
// error is returned.
func unwrapOutput(output verify.State) (*secp256k1fx.TransferOutput, uint64, error) {
	var locktime uint64
	if lockedOut, ok := output.(*stakeable.LockOut); ok {
		output = lockedOut.TransferableOut
		locktime = lockedOut.Locktime
	}

	unwrappedOutput, ok := output.(*secp256k1fx.TransferOutput)
	if !ok {
		return nil, 0, ErrUnknownOutputType
	}
	return unwrappedOutput, locktime, nil
}
