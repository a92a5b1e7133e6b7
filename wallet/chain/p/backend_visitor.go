// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p

import (
	"fmt"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/constants"
	"github.com/ava-labs/txassembler/vms/components/avax"
	"github.com/ava-labs/txassembler/vms/platformvm/fx"
	"github.com/ava-labs/txassembler/vms/platformvm/txs"
	"github.com/ava-labs/txassembler/wallet/subnet/primary/common"
)

var _ txs.Visitor = (*backendVisitor)(nil)

// backendVisitor handles accepting of transactions for the backend
type backendVisitor struct {
	b    *backend
	txID ids.ID

	// chainID -> modified copy of the chain's UTXOs
	pending     map[ids.ID]*common.UTXOSet
	subnetOwner fx.Owner
}

func (v *backendVisitor) BaseTx(tx *txs.BaseTx) error {
	return v.baseTx(tx)
}

func (v *backendVisitor) ImportTx(tx *txs.ImportTx) error {
	if err := v.removeUTXOs(tx.SourceChain, tx.ImportedInputs); err != nil {
		return err
	}
	return v.baseTx(&tx.BaseTx)
}

func (v *backendVisitor) ExportTx(tx *txs.ExportTx) error {
	// Exported outputs are indexed after the local outputs.
	v.addUTXOs(tx.DestinationChain, len(tx.Outs), tx.ExportedOutputs)
	return v.baseTx(&tx.BaseTx)
}

// Staked outputs only return to the wallet once the staking period ends.

func (v *backendVisitor) AddValidatorTx(tx *txs.AddValidatorTx) error {
	return v.baseTx(&tx.BaseTx)
}

func (v *backendVisitor) AddDelegatorTx(tx *txs.AddDelegatorTx) error {
	return v.baseTx(&tx.BaseTx)
}

func (v *backendVisitor) AddSubnetValidatorTx(tx *txs.AddSubnetValidatorTx) error {
	return v.baseTx(&tx.BaseTx)
}

func (v *backendVisitor) CreateSubnetTx(tx *txs.CreateSubnetTx) error {
	v.subnetOwner = tx.Owner
	return v.baseTx(&tx.BaseTx)
}

func (v *backendVisitor) CreateChainTx(tx *txs.CreateChainTx) error {
	return v.baseTx(&tx.BaseTx)
}

// chainUTXOs returns the writable copy of the UTXOs of [chainID]. Must be
// called with the lock held.
func (v *backendVisitor) chainUTXOs(chainID ids.ID) *common.UTXOSet {
	if chainUTXOs, ok := v.pending[chainID]; ok {
		return chainUTXOs
	}

	chainUTXOs, ok := v.b.utxos[chainID]
	if ok {
		chainUTXOs = chainUTXOs.Clone()
	} else {
		chainUTXOs = common.NewUTXOSet()
	}
	v.pending[chainID] = chainUTXOs
	return chainUTXOs
}

func (v *backendVisitor) removeUTXOs(chainID ids.ID, ins []*avax.TransferableInput) error {
	chainUTXOs := v.chainUTXOs(chainID)
	for _, in := range ins {
		utxoID := in.InputID()
		if !chainUTXOs.Remove(utxoID) {
			return fmt.Errorf("%w: %s on chain %s", ErrMissingUTXO, &in.UTXOID, chainID)
		}
	}
	return nil
}

func (v *backendVisitor) addUTXOs(chainID ids.ID, firstIndex int, outs []*avax.TransferableOutput) {
	chainUTXOs := v.chainUTXOs(chainID)
	for i, out := range outs {
		chainUTXOs.Add(&avax.UTXO{
			UTXOID: avax.UTXOID{
				TxID:        v.txID,
				OutputIndex: uint32(firstIndex + i),
			},
			Asset: avax.Asset{ID: out.AssetID()},
			Out:   out.Out,
		})
	}
}

func (v *backendVisitor) baseTx(tx *txs.BaseTx) error {
	if err := v.removeUTXOs(constants.PlatformChainID, tx.Ins); err != nil {
		return err
	}
	v.addUTXOs(constants.PlatformChainID, 0, tx.Outs)
	return nil
}
