// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/logging"
	"github.com/ava-labs/txassembler/utils/set"
	"github.com/ava-labs/txassembler/vms/components/avax"
	"github.com/ava-labs/txassembler/vms/components/verify"
	"github.com/ava-labs/txassembler/vms/platformvm/stakeable"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
	"github.com/ava-labs/txassembler/wallet/subnet/primary/common"
)

func TestUnwrapOutput(t *testing.T) {
	normalOutput := transferOutput(123, senderAddr)

	tests := []struct {
		name             string
		output           verify.State
		expectedOutput   *secp256k1fx.TransferOutput
		expectedLocktime uint64
		expectedErr      error
	}{
		{
			name:             "normal output",
			output:           normalOutput,
			expectedOutput:   normalOutput,
			expectedLocktime: 0,
			expectedErr:      nil,
		},
		{
			name: "locked output",
			output: &stakeable.LockOut{
				Locktime:        123,
				TransferableOut: normalOutput,
			},
			expectedOutput:   normalOutput,
			expectedLocktime: 123,
			expectedErr:      nil,
		},
		{
			name: "locked output with no locktime",
			output: &stakeable.LockOut{
				Locktime:        0,
				TransferableOut: normalOutput,
			},
			expectedOutput:   normalOutput,
			expectedLocktime: 0,
			expectedErr:      nil,
		},
		{
			name:             "invalid output",
			output:           &secp256k1fx.OutputOwners{},
			expectedOutput:   nil,
			expectedLocktime: 0,
			expectedErr:      ErrUnknownOutputType,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			output, locktime, err := unwrapOutput(test.output)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expectedOutput, output)
			require.Equal(test.expectedLocktime, locktime)
		})
	}
}

func TestLockedFirst(t *testing.T) {
	require := require.New(t)

	utxos := []*avax.UTXO{
		newUTXO(1, avaxAssetID, transferOutput(1, senderAddr)),
		lockedUTXO(2, 10, 1),
		newUTXO(3, avaxAssetID, transferOutput(1, senderAddr)),
		lockedUTXO(4, 30, 1),
		lockedUTXO(5, 10, 1),
		lockedUTXO(6, 20, 1),
	}

	sorted := lockedFirst(utxos)
	txIDs := make([]ids.ID, len(sorted))
	for i, utxo := range sorted {
		txIDs[i] = utxo.TxID
	}
	require.Equal([]ids.ID{{4}, {6}, {2}, {5}, {1}, {3}}, txIDs)

	// The input isn't reordered.
	require.Equal(ids.ID{1}, utxos[0].TxID)
}

func TestSpendInputsAreSortedAndUnique(t *testing.T) {
	require := require.New(t)

	b, _ := newTestBuilder(t)
	utxos := common.NewUTXOSet(
		lockedUTXO(9, now+10, 5),
		newUTXO(1, avaxAssetID, transferOutput(5, senderAddr)),
		lockedUTXO(3, now+20, 5),
		newUTXO(2, avaxAssetID, transferOutput(5, senderAddr)),
	)

	dest := newSpendDestination(set.Of(senderAddr), changeOwnerOf(set.Of(senderAddr)), set.Of(senderAddr), true)
	require.NoError(dest.addTarget(avaxAssetID, 10, 10))
	require.NoError(b.spend(utxos, dest, now, true))

	require.Len(dest.inputs, 4)
	require.True(avax.IsSortedAndUniqueTransferableInputs(dest.inputs))
	require.Equal(uint64(10), sumOutputs(dest.stakeOutputs, avaxAssetID))
	require.Empty(dest.primaryOutputs)
	require.Empty(dest.changeOutputs)
}

// TestSpendConservesValue checks that, for any set of candidate UTXOs, the
// value consumed is exactly the value produced plus the value burned, and
// that stake locked value never pays for the burn.
func TestSpendConservesValue(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("consumed value is produced or burned", prop.ForAll(
		func(amounts []uint64, locked []bool, amount uint64, burn uint64, spendStakeable bool) string {
			var (
				utxos           = common.NewUTXOSet()
				availableLocked uint64
				availableTotal  uint64
			)
			for i, utxoAmount := range amounts {
				txIndex := byte(i + 1)
				if locked[i] {
					utxos.Add(lockedUTXO(txIndex, now+uint64(i)+1, utxoAmount))
					if spendStakeable {
						availableLocked += utxoAmount
					}
					continue
				}
				utxos.Add(newUTXO(txIndex, avaxAssetID, transferOutput(utxoAmount, senderAddr)))
				availableTotal += utxoAmount
			}

			b := &builder{
				context: testContext,
				log:     logging.NoLog{},
			}
			senders := set.Of(senderAddr)
			dest := newSpendDestination(senders, changeOwnerOf(senders), senders, spendStakeable)
			if err := dest.addTarget(avaxAssetID, amount, burn); err != nil {
				return fmt.Sprintf("unexpected target error: %v", err)
			}

			err := b.spend(utxos, dest, now, spendStakeable)
			canAfford := availableTotal+min(availableLocked, amount) >= amount+burn
			switch {
			case errors.Is(err, ErrInsufficientFunds):
				if canAfford {
					return fmt.Sprintf("reported insufficient funds with %d unlocked and %d locked available", availableTotal, availableLocked)
				}
				return ""
			case err != nil:
				return fmt.Sprintf("unexpected error: %v", err)
			case !canAfford:
				return "spent more than was available"
			}

			var (
				consumed       uint64
				consumedLocked uint64
			)
			for _, in := range dest.inputs {
				consumed += in.In.Amount()
				if _, ok := in.In.(*stakeable.LockIn); ok {
					consumedLocked += in.In.Amount()
				}
			}

			var produced uint64
			for _, outs := range [][]*avax.TransferableOutput{
				dest.primaryOutputs,
				dest.changeOutputs,
				dest.stakeOutputs,
			} {
				produced += sumOutputs(outs, avaxAssetID)
			}
			if consumed != produced+burn {
				return fmt.Sprintf("consumed %d but produced %d and burned %d", consumed, produced, burn)
			}

			var producedLocked uint64
			for _, outs := range [][]*avax.TransferableOutput{
				dest.changeOutputs,
				dest.stakeOutputs,
			} {
				for _, out := range outs {
					if _, ok := out.Out.(*stakeable.LockOut); ok {
						producedLocked += amountOf(out)
					}
				}
			}
			if consumedLocked != producedLocked {
				return fmt.Sprintf("consumed %d locked but produced %d locked", consumedLocked, producedLocked)
			}

			delivered := sumOutputs(dest.primaryOutputs, avaxAssetID)
			if spendStakeable {
				delivered = sumOutputs(dest.stakeOutputs, avaxAssetID)
			}
			if delivered != amount {
				return fmt.Sprintf("delivered %d instead of %d", delivered, amount)
			}
			return ""
		},
		gen.SliceOfN(8, gen.UInt64Range(1, 1_000)),
		gen.SliceOfN(8, gen.Bool()),
		gen.UInt64Range(0, 3_000),
		gen.UInt64Range(0, 1_000),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
