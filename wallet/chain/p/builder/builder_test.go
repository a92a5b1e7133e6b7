// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package builder

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/constants"
	"github.com/ava-labs/txassembler/utils/logging"
	"github.com/ava-labs/txassembler/utils/set"
	"github.com/ava-labs/txassembler/vms/components/avax"
	"github.com/ava-labs/txassembler/vms/components/verify"
	"github.com/ava-labs/txassembler/vms/platformvm/reward"
	"github.com/ava-labs/txassembler/vms/platformvm/stakeable"
	"github.com/ava-labs/txassembler/vms/platformvm/txs"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
	"github.com/ava-labs/txassembler/wallet/subnet/primary/common"
)

const now = 1_700_000_000

var (
	avaxAssetID = ids.ID{'a', 'v', 'a', 'x'}
	xAssetID    = ids.ID{'x'}
	yAssetID    = ids.ID{'y'}

	senderAddr   = ids.ShortID{1}
	otherAddr    = ids.ShortID{2}
	receiverAddr = ids.ShortID{3}

	errTest = errors.New("non-nil error")

	testContext = &Context{
		NetworkID:                     constants.UnitTestID,
		AVAXAssetID:                   avaxAssetID,
		BaseTxFee:                     1,
		CreateSubnetTxFee:             10,
		CreateBlockchainTxFee:         20,
		AddPrimaryNetworkValidatorFee: 0,
		AddPrimaryNetworkDelegatorFee: 0,
		AddSubnetValidatorFee:         5,
		MinValidatorStake:             2_000,
		MinDelegatorStake:             25,
	}
)

type testOwner struct{}

func (testOwner) Verify() error {
	return nil
}

func owners(addrs ...ids.ShortID) secp256k1fx.OutputOwners {
	return secp256k1fx.OutputOwners{
		Threshold: 1,
		Addrs:     addrs,
	}
}

func transferOutput(amount uint64, addrs ...ids.ShortID) *secp256k1fx.TransferOutput {
	return &secp256k1fx.TransferOutput{
		Amt:          amount,
		OutputOwners: owners(addrs...),
	}
}

func newUTXO(txIndex byte, assetID ids.ID, out verify.State) *avax.UTXO {
	return &avax.UTXO{
		UTXOID: avax.UTXOID{
			TxID: ids.ID{txIndex},
		},
		Asset: avax.Asset{ID: assetID},
		Out:   out,
	}
}

func lockedUTXO(txIndex byte, locktime uint64, amount uint64) *avax.UTXO {
	return newUTXO(txIndex, avaxAssetID, &stakeable.LockOut{
		Locktime:        locktime,
		TransferableOut: transferOutput(amount, senderAddr),
	})
}

func newTestBuilder(t *testing.T) (*builder, *MockBackend) {
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	b := New(
		set.Of(senderAddr),
		testContext,
		backend,
		logging.NoLog{},
	).(*builder)
	b.clock.Set(time.Unix(now, 0))
	return b, backend
}

func expectUTXOs(backend *MockBackend, chainID ids.ID, utxos ...*avax.UTXO) {
	backend.EXPECT().UTXOs(gomock.Any(), chainID).Return(common.NewUTXOSet(utxos...), nil).AnyTimes()
}

func amountOf(out *avax.TransferableOutput) uint64 {
	return out.Out.(avax.TransferableOut).Amount()
}

func TestNewBaseTx(t *testing.T) {
	to := owners(receiverAddr)

	type test struct {
		name            string
		utxos           []*avax.UTXO
		options         []common.Option
		expectedIns     []uint64
		expectedPrimary uint64
		expectedChange  map[ids.ID]uint64
	}
	tests := []test{
		{
			name: "fee paid with the sent asset",
			utxos: []*avax.UTXO{
				newUTXO(1, xAssetID, transferOutput(100, senderAddr)),
			},
			options: []common.Option{
				common.WithFeeAssetID(xAssetID),
				common.WithTxFee(1),
			},
			expectedIns:     []uint64{100},
			expectedPrimary: 40,
			expectedChange: map[ids.ID]uint64{
				xAssetID: 59,
			},
		},
		{
			name: "fee paid with a separate asset",
			utxos: []*avax.UTXO{
				newUTXO(1, xAssetID, transferOutput(100, senderAddr)),
				newUTXO(2, yAssetID, transferOutput(5, senderAddr)),
			},
			options: []common.Option{
				common.WithFeeAssetID(yAssetID),
				common.WithTxFee(1),
			},
			expectedIns:     []uint64{100, 5},
			expectedPrimary: 40,
			expectedChange: map[ids.ID]uint64{
				xAssetID: 60,
				yAssetID: 4,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			b, backend := newTestBuilder(t)
			expectUTXOs(backend, constants.PlatformChainID, test.utxos...)

			tx, err := b.NewBaseTx(xAssetID, 40, &to, test.options...)
			require.NoError(err)
			require.Equal(constants.UnitTestID, tx.NetworkID)
			require.Equal(constants.PlatformChainID, tx.BlockchainID)

			require.Len(tx.Ins, len(test.expectedIns))
			for i, in := range tx.Ins {
				require.Equal(test.expectedIns[i], in.In.Amount())
			}

			var (
				primary uint64
				change  = make(map[ids.ID]uint64)
			)
			for _, out := range tx.Outs {
				owned := out.Out.(*secp256k1fx.TransferOutput)
				if owned.OutputOwners.Equals(&to) {
					primary += owned.Amt
					continue
				}
				require.Equal([]ids.ShortID{senderAddr}, owned.Addrs)
				change[out.AssetID()] += owned.Amt
			}
			require.Equal(test.expectedPrimary, primary)
			require.Equal(test.expectedChange, change)
		})
	}
}

func TestNewBaseTxInsufficientFunds(t *testing.T) {
	require := require.New(t)

	b, backend := newTestBuilder(t)
	expectUTXOs(backend, constants.PlatformChainID,
		newUTXO(1, xAssetID, transferOutput(10, senderAddr)),
	)

	to := owners(receiverAddr)
	tx, err := b.NewBaseTx(xAssetID, 100, &to,
		common.WithFeeAssetID(xAssetID),
		common.WithTxFee(0),
	)
	require.ErrorIs(err, ErrInsufficientFunds)
	require.Nil(tx)
}

func TestNewBaseTxZeroAmount(t *testing.T) {
	require := require.New(t)

	// The backend must not be queried.
	b, _ := newTestBuilder(t)

	to := owners(receiverAddr)
	tx, err := b.NewBaseTx(xAssetID, 0, &to)
	require.NoError(err)
	require.Nil(tx)
}

func TestNewBaseTxThresholdExceedsAddresses(t *testing.T) {
	require := require.New(t)

	// The backend must not be queried.
	b, _ := newTestBuilder(t)

	to := secp256k1fx.OutputOwners{
		Threshold: 2,
		Addrs:     []ids.ShortID{receiverAddr},
	}
	_, err := b.NewBaseTx(xAssetID, 1, &to)
	require.ErrorIs(err, ErrThresholdExceedsAddresses)
}

func TestNewBaseTxInvalidOwner(t *testing.T) {
	tests := []struct {
		name        string
		to          secp256k1fx.OutputOwners
		expectedErr error
	}{
		{
			name: "duplicate addresses",
			to: secp256k1fx.OutputOwners{
				Threshold: 1,
				Addrs:     []ids.ShortID{receiverAddr, receiverAddr},
			},
			expectedErr: secp256k1fx.ErrAddrsNotSortedUnique,
		},
		{
			name: "zero threshold with addresses",
			to: secp256k1fx.OutputOwners{
				Threshold: 0,
				Addrs:     []ids.ShortID{receiverAddr},
			},
			expectedErr: secp256k1fx.ErrOutputUnoptimized,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			// The owner is rejected before the backend is queried.
			b, _ := newTestBuilder(t)

			tx, err := b.NewBaseTx(avaxAssetID, 1, &test.to)
			require.ErrorIs(err, test.expectedErr)
			require.Nil(tx)
		})
	}
}

func TestNewBaseTxChangeIsNeverLocked(t *testing.T) {
	require := require.New(t)

	b, backend := newTestBuilder(t)
	expectUTXOs(backend, constants.PlatformChainID,
		newUTXO(1, avaxAssetID, transferOutput(100, senderAddr)),
	)

	to := secp256k1fx.OutputOwners{
		Locktime:  now + 1_000,
		Threshold: 1,
		Addrs:     []ids.ShortID{receiverAddr},
	}
	tx, err := b.NewBaseTx(avaxAssetID, 40, &to)
	require.NoError(err)
	require.Len(tx.Outs, 2)

	var primary, change *secp256k1fx.TransferOutput
	for _, out := range tx.Outs {
		owned := out.Out.(*secp256k1fx.TransferOutput)
		if owned.OutputOwners.Equals(&to) {
			primary = owned
		} else {
			change = owned
		}
	}
	require.NotNil(primary)
	require.Equal(uint64(40), primary.Amt)
	require.Equal(uint64(now+1_000), primary.Locktime)

	require.NotNil(change)
	require.Equal(uint64(59), change.Amt)
	require.Zero(change.Locktime)
	require.Equal(uint32(1), change.Threshold)
	require.Equal([]ids.ShortID{senderAddr}, change.Addrs)
}

func TestNewBaseTxMemoTooLarge(t *testing.T) {
	require := require.New(t)

	b, _ := newTestBuilder(t)

	to := owners(receiverAddr)
	_, err := b.NewBaseTx(xAssetID, 1, &to,
		common.WithMemo(make([]byte, txs.MaxMemoSize+1)),
	)
	require.ErrorIs(err, txs.ErrMemoTooLarge)
}

func TestNewBaseTxNoChangeAddress(t *testing.T) {
	b, backend := newTestBuilder(t)
	expectUTXOs(backend, constants.PlatformChainID,
		newUTXO(1, avaxAssetID, transferOutput(10, senderAddr)),
	)

	to := owners(receiverAddr)
	noChange := common.WithChangeAddresses(set.Set[ids.ShortID]{})

	t.Run("exact spend", func(t *testing.T) {
		tx, err := b.NewBaseTx(avaxAssetID, 9, &to, noChange)
		require.NoError(t, err)
		require.Len(t, tx.Outs, 1)
	})
	t.Run("spend with change", func(t *testing.T) {
		_, err := b.NewBaseTx(avaxAssetID, 5, &to, noChange)
		require.ErrorIs(t, err, ErrNoChangeAddress)
	})
}

func TestNewBaseTxSkipsUnspendableUTXOs(t *testing.T) {
	require := require.New(t)

	b, backend := newTestBuilder(t)
	expectUTXOs(backend, constants.PlatformChainID,
		// Owned by someone else
		newUTXO(1, avaxAssetID, transferOutput(1_000, otherAddr)),
		// Time locked
		newUTXO(2, avaxAssetID, &secp256k1fx.TransferOutput{
			Amt: 1_000,
			OutputOwners: secp256k1fx.OutputOwners{
				Locktime:  now + 1,
				Threshold: 1,
				Addrs:     []ids.ShortID{senderAddr},
			},
		}),
		// Requires a second signer
		newUTXO(3, avaxAssetID, &secp256k1fx.TransferOutput{
			Amt: 1_000,
			OutputOwners: secp256k1fx.OutputOwners{
				Threshold: 2,
				Addrs:     []ids.ShortID{senderAddr, otherAddr},
			},
		}),
		// Stake locked
		lockedUTXO(4, now+1, 1_000),
		// Not a transfer output
		newUTXO(5, avaxAssetID, &secp256k1fx.OutputOwners{
			Threshold: 1,
			Addrs:     []ids.ShortID{senderAddr},
		}),
		// Unrequested asset
		newUTXO(6, yAssetID, transferOutput(1_000, senderAddr)),
		newUTXO(7, avaxAssetID, transferOutput(11, senderAddr)),
	)

	to := owners(receiverAddr)
	tx, err := b.NewBaseTx(avaxAssetID, 10, &to)
	require.NoError(err)
	require.Len(tx.Ins, 1)
	require.Equal(ids.ID{7}, tx.Ins[0].TxID)
	require.Len(tx.Outs, 1)
	require.Equal(uint64(10), amountOf(tx.Outs[0]))
}

func TestNewBaseTxExpiredLocks(t *testing.T) {
	require := require.New(t)

	b, backend := newTestBuilder(t)
	expectUTXOs(backend, constants.PlatformChainID,
		// An expired stake lock is spent like any other output
		lockedUTXO(1, now, 50),
	)

	to := owners(receiverAddr)
	tx, err := b.NewBaseTx(avaxAssetID, 49, &to)
	require.NoError(err)
	require.Len(tx.Ins, 1)
	require.IsType(&secp256k1fx.TransferInput{}, tx.Ins[0].In)
}

func TestNewBaseTxBackendError(t *testing.T) {
	require := require.New(t)

	b, backend := newTestBuilder(t)
	backend.EXPECT().UTXOs(gomock.Any(), constants.PlatformChainID).Return(nil, errTest)

	to := owners(receiverAddr)
	_, err := b.NewBaseTx(avaxAssetID, 1, &to)
	require.ErrorIs(err, errTest)
}

func TestNewImportTx(t *testing.T) {
	sourceChainID := ids.ID{'c'}
	to := owners(receiverAddr)

	t.Run("atomic UTXO covers the fee", func(t *testing.T) {
		require := require.New(t)

		b, backend := newTestBuilder(t)
		expectUTXOs(backend, sourceChainID,
			newUTXO(1, avaxAssetID, transferOutput(testContext.BaseTxFee, senderAddr)),
		)

		tx, err := b.NewImportTx(sourceChainID, &to)
		require.NoError(err)
		require.Equal(sourceChainID, tx.SourceChain)
		require.Len(tx.ImportedInputs, 1)
		require.Empty(tx.Ins)
		require.Empty(tx.Outs)
	})

	t.Run("remainder sent to the recipient", func(t *testing.T) {
		require := require.New(t)

		b, backend := newTestBuilder(t)
		expectUTXOs(backend, sourceChainID,
			newUTXO(1, avaxAssetID, transferOutput(100, senderAddr)),
			newUTXO(2, xAssetID, transferOutput(7, senderAddr)),
			newUTXO(3, xAssetID, transferOutput(7, otherAddr)),
		)

		tx, err := b.NewImportTx(sourceChainID, &to)
		require.NoError(err)
		require.Len(tx.ImportedInputs, 2)
		require.Empty(tx.Ins)
		require.Len(tx.Outs, 2)
		for _, out := range tx.Outs {
			owned := out.Out.(*secp256k1fx.TransferOutput)
			require.True(owned.OutputOwners.Equals(&to))
		}
	})

	t.Run("fee paid locally", func(t *testing.T) {
		require := require.New(t)

		b, backend := newTestBuilder(t)
		expectUTXOs(backend, sourceChainID,
			newUTXO(1, xAssetID, transferOutput(7, senderAddr)),
		)
		expectUTXOs(backend, constants.PlatformChainID,
			newUTXO(2, avaxAssetID, transferOutput(3, senderAddr)),
		)

		tx, err := b.NewImportTx(sourceChainID, &to)
		require.NoError(err)
		require.Len(tx.ImportedInputs, 1)
		require.Len(tx.Ins, 1)
		require.Len(tx.Outs, 2)

		require.Equal(uint64(2), sumOutputs(tx.Outs, avaxAssetID))
	})

	t.Run("nothing to import", func(t *testing.T) {
		require := require.New(t)

		b, backend := newTestBuilder(t)
		expectUTXOs(backend, sourceChainID,
			newUTXO(1, avaxAssetID, transferOutput(100, otherAddr)),
		)

		_, err := b.NewImportTx(sourceChainID, &to)
		require.ErrorIs(err, ErrInsufficientFunds)
	})
}

func TestNewExportTx(t *testing.T) {
	destinationChainID := ids.ID{'x'}
	to := owners(receiverAddr)

	t.Run("exported outputs are separate", func(t *testing.T) {
		require := require.New(t)

		b, backend := newTestBuilder(t)
		expectUTXOs(backend, constants.PlatformChainID,
			newUTXO(1, avaxAssetID, transferOutput(100, senderAddr)),
		)

		tx, err := b.NewExportTx(destinationChainID, avaxAssetID, 40, &to)
		require.NoError(err)
		require.Equal(destinationChainID, tx.DestinationChain)
		require.Len(tx.ExportedOutputs, 1)
		require.Equal(uint64(40), amountOf(tx.ExportedOutputs[0]))
		require.Len(tx.Outs, 1)
		require.Equal(uint64(59), amountOf(tx.Outs[0]))
	})

	t.Run("fee asset mismatch", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		_, err := b.NewExportTx(destinationChainID, avaxAssetID, 40, &to,
			common.WithFeeAssetID(xAssetID),
		)
		require.ErrorIs(t, err, ErrFeeAssetMismatch)
	})

	t.Run("zero amount", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		tx, err := b.NewExportTx(destinationChainID, avaxAssetID, 0, &to)
		require.NoError(t, err)
		require.Nil(t, tx)
	})
}

func TestNewAddValidatorTx(t *testing.T) {
	rewardsOwner := owners(otherAddr, receiverAddr)
	vdr := &txs.Validator{
		NodeID: ids.GenerateTestNodeID(),
		Start:  now + 10,
		End:    now + 1_000,
		Wght:   2_000,
	}

	t.Run("locked value beyond the stake", func(t *testing.T) {
		require := require.New(t)

		b, backend := newTestBuilder(t)
		expectUTXOs(backend, constants.PlatformChainID,
			lockedUTXO(1, now+5_000, 3_000),
			newUTXO(2, avaxAssetID, transferOutput(100, senderAddr)),
		)

		tx, err := b.NewAddValidatorTx(vdr, &rewardsOwner, reward.PercentDenominator,
			common.WithTxFee(10),
		)
		require.NoError(err)

		require.Len(tx.Ins, 2)
		require.IsType(&stakeable.LockIn{}, tx.Ins[0].In)
		require.IsType(&secp256k1fx.TransferInput{}, tx.Ins[1].In)

		require.Len(tx.StakeOuts, 1)
		require.Equal(uint64(2_000), amountOf(tx.StakeOuts[0]))
		require.IsType(&stakeable.LockOut{}, tx.StakeOuts[0].Out)

		require.Len(tx.Outs, 2)
		var (
			lockedChange   uint64
			unlockedChange uint64
		)
		for _, out := range tx.Outs {
			switch out := out.Out.(type) {
			case *stakeable.LockOut:
				require.Equal(uint64(now+5_000), out.Locktime)
				lockedChange += out.Amount()
			case *secp256k1fx.TransferOutput:
				unlockedChange += out.Amount()
			}
		}
		require.Equal(uint64(1_000), lockedChange)
		require.Equal(uint64(90), unlockedChange)
	})

	t.Run("unlocked stake", func(t *testing.T) {
		require := require.New(t)

		b, backend := newTestBuilder(t)
		expectUTXOs(backend, constants.PlatformChainID,
			newUTXO(1, avaxAssetID, transferOutput(2_500, senderAddr)),
		)

		tx, err := b.NewAddValidatorTx(vdr, &rewardsOwner, 20_000)
		require.NoError(err)
		require.Len(tx.StakeOuts, 1)
		require.IsType(&secp256k1fx.TransferOutput{}, tx.StakeOuts[0].Out)
		require.Equal(uint64(2_000), amountOf(tx.StakeOuts[0]))
		require.Len(tx.Outs, 1)
		require.Equal(uint64(500), amountOf(tx.Outs[0]))
	})

	t.Run("locked value cannot pay the fee", func(t *testing.T) {
		require := require.New(t)

		b, backend := newTestBuilder(t)
		expectUTXOs(backend, constants.PlatformChainID,
			lockedUTXO(1, now+5_000, 3_000),
		)

		_, err := b.NewAddValidatorTx(vdr, &rewardsOwner, 0,
			common.WithTxFee(10),
		)
		require.ErrorIs(err, ErrInsufficientFunds)
	})

	t.Run("too many shares", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		_, err := b.NewAddValidatorTx(vdr, &rewardsOwner, reward.PercentDenominator+1)
		require.ErrorIs(t, err, ErrInvalidDelegationShares)
	})

	t.Run("stake too low", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		lowVdr := *vdr
		lowVdr.Wght = testContext.MinValidatorStake - 1
		_, err := b.NewAddValidatorTx(&lowVdr, &rewardsOwner, 0)
		require.ErrorIs(t, err, ErrStakeTooLow)
	})

	t.Run("start in the past", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		pastVdr := *vdr
		pastVdr.Start = now
		_, err := b.NewAddValidatorTx(&pastVdr, &rewardsOwner, 0)
		require.ErrorIs(t, err, ErrInvalidTimeWindow)
	})

	t.Run("end before start", func(t *testing.T) {
		b, _ := newTestBuilder(t)

		badVdr := *vdr
		badVdr.End = badVdr.Start
		_, err := b.NewAddValidatorTx(&badVdr, &rewardsOwner, 0)
		require.ErrorIs(t, err, ErrInvalidTimeWindow)
	})
}

func TestNewAddDelegatorTxLongestLockFirst(t *testing.T) {
	require := require.New(t)

	b, backend := newTestBuilder(t)
	expectUTXOs(backend, constants.PlatformChainID,
		lockedUTXO(1, now+100, 30),
		lockedUTXO(2, now+300, 30),
		lockedUTXO(3, now+200, 30),
		newUTXO(4, avaxAssetID, transferOutput(30, senderAddr)),
	)

	rewardsOwner := owners(receiverAddr)
	vdr := &txs.Validator{
		NodeID: ids.GenerateTestNodeID(),
		Start:  now + 10,
		End:    now + 1_000,
		Wght:   50,
	}
	tx, err := b.NewAddDelegatorTx(vdr, &rewardsOwner, common.WithTxFee(0))
	require.NoError(err)

	// The two longest locks cover the stake.
	require.Len(tx.Ins, 2)
	require.Equal(ids.ID{2}, tx.Ins[0].TxID)
	require.Equal(ids.ID{3}, tx.Ins[1].TxID)

	require.Len(tx.StakeOuts, 2)
	require.Equal(vdr.Wght, sumOutputs(tx.StakeOuts, avaxAssetID))

	// The excess keeps the lock of the last consumed output.
	require.Len(tx.Outs, 1)
	change, ok := tx.Outs[0].Out.(*stakeable.LockOut)
	require.True(ok)
	require.Equal(uint64(now+200), change.Locktime)
	require.Equal(uint64(10), change.Amount())
}

func TestNewAddSubnetValidatorTx(t *testing.T) {
	subnetID := ids.ID{'s'}
	vdr := &txs.SubnetValidator{
		Validator: txs.Validator{
			NodeID: ids.GenerateTestNodeID(),
			Start:  now + 10,
			End:    now + 1_000,
			Wght:   1,
		},
		Subnet: subnetID,
	}

	t.Run("authorized", func(t *testing.T) {
		require := require.New(t)

		b, backend := newTestBuilder(t)
		subnetOwner := secp256k1fx.OutputOwners{
			Threshold: 1,
			Addrs:     []ids.ShortID{otherAddr, senderAddr},
		}
		subnetOwner.Sort()
		backend.EXPECT().GetSubnetOwner(gomock.Any(), subnetID).Return(&subnetOwner, nil)
		expectUTXOs(backend, constants.PlatformChainID,
			newUTXO(1, avaxAssetID, transferOutput(8, senderAddr)),
		)

		tx, err := b.NewAddSubnetValidatorTx(vdr)
		require.NoError(err)
		subnetAuth, ok := tx.SubnetAuth.(*secp256k1fx.Input)
		require.True(ok)
		idx, _ := subnetOwner.AddressIndex(senderAddr)
		require.Equal([]uint32{idx}, subnetAuth.SigIndices)
		require.Len(tx.Outs, 1)
		require.Equal(uint64(3), amountOf(tx.Outs[0]))
	})

	t.Run("insufficient authorization", func(t *testing.T) {
		b, backend := newTestBuilder(t)
		subnetOwner := owners(otherAddr)
		backend.EXPECT().GetSubnetOwner(gomock.Any(), subnetID).Return(&subnetOwner, nil)

		_, err := b.NewAddSubnetValidatorTx(vdr)
		require.ErrorIs(t, err, ErrInsufficientAuthorization)
	})

	t.Run("unknown owner type", func(t *testing.T) {
		b, backend := newTestBuilder(t)
		backend.EXPECT().GetSubnetOwner(gomock.Any(), subnetID).Return(testOwner{}, nil)

		_, err := b.NewAddSubnetValidatorTx(vdr)
		require.ErrorIs(t, err, ErrUnknownOwnerType)
	})

	t.Run("unknown subnet", func(t *testing.T) {
		b, backend := newTestBuilder(t)
		backend.EXPECT().GetSubnetOwner(gomock.Any(), subnetID).Return(nil, errTest)

		_, err := b.NewAddSubnetValidatorTx(vdr)
		require.ErrorIs(t, err, errTest)
	})
}

func TestNewCreateSubnetTx(t *testing.T) {
	require := require.New(t)

	b, backend := newTestBuilder(t)
	expectUTXOs(backend, constants.PlatformChainID,
		newUTXO(1, avaxAssetID, transferOutput(10, senderAddr)),
	)

	owner := secp256k1fx.OutputOwners{
		Threshold: 1,
		Addrs:     []ids.ShortID{receiverAddr, otherAddr},
	}
	tx, err := b.NewCreateSubnetTx(&owner)
	require.NoError(err)
	require.Len(tx.Ins, 1)
	require.Empty(tx.Outs)

	subnetOwner, ok := tx.Owner.(*secp256k1fx.OutputOwners)
	require.True(ok)
	require.Equal([]ids.ShortID{otherAddr, receiverAddr}, subnetOwner.Addrs)
	// The caller's owner is not modified.
	require.Equal([]ids.ShortID{receiverAddr, otherAddr}, owner.Addrs)
}

func TestNewCreateChainTx(t *testing.T) {
	require := require.New(t)

	subnetID := ids.ID{'s'}
	b, backend := newTestBuilder(t)
	subnetOwner := owners(senderAddr)
	backend.EXPECT().GetSubnetOwner(gomock.Any(), subnetID).Return(&subnetOwner, nil)

	fxIDs := []ids.ID{{2}, {1}}
	tx, err := b.NewCreateChainTx(
		subnetID,
		[]byte("genesis"),
		ids.ID{'v', 'm'},
		fxIDs,
		"chain",
		// Without a fee, the local UTXOs are never requested.
		common.WithTxFee(0),
	)
	require.NoError(err)
	require.Empty(tx.Ins)
	require.Empty(tx.Outs)
	require.Equal([]ids.ID{{1}, {2}}, tx.FxIDs)
	require.Equal([]ids.ID{{2}, {1}}, fxIDs)
}

func TestGetBalance(t *testing.T) {
	require := require.New(t)

	b, backend := newTestBuilder(t)
	expectUTXOs(backend, constants.PlatformChainID,
		newUTXO(1, avaxAssetID, transferOutput(10, senderAddr)),
		newUTXO(2, avaxAssetID, transferOutput(5, senderAddr, otherAddr)),
		newUTXO(3, xAssetID, transferOutput(7, senderAddr)),
		newUTXO(4, xAssetID, transferOutput(7, otherAddr)),
		lockedUTXO(5, now+1, 1_000),
	)

	balance, err := b.GetBalance()
	require.NoError(err)
	require.Equal(map[ids.ID]uint64{
		avaxAssetID: 15,
		xAssetID:    7,
	}, balance)

	balance, err = b.GetBalance(common.WithMinIssuanceTime(now + 1))
	require.NoError(err)
	require.Equal(uint64(1_015), balance[avaxAssetID])
}

func TestGetImportableBalance(t *testing.T) {
	require := require.New(t)

	sourceChainID := ids.ID{'c'}
	b, backend := newTestBuilder(t)
	expectUTXOs(backend, sourceChainID,
		newUTXO(1, avaxAssetID, transferOutput(10, senderAddr)),
	)

	balance, err := b.GetImportableBalance(sourceChainID)
	require.NoError(err)
	require.Equal(map[ids.ID]uint64{avaxAssetID: 10}, balance)
}

func sumOutputs(outs []*avax.TransferableOutput, assetID ids.ID) uint64 {
	var total uint64
	for _, out := range outs {
		if out.AssetID() == assetID {
			total += amountOf(out)
		}
	}
	return total
}
