// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/vms/components/avax"
	"github.com/ava-labs/txassembler/vms/platformvm/fx"
	"github.com/ava-labs/txassembler/vms/platformvm/txs"
	"github.com/ava-labs/txassembler/wallet/chain/p/builder"
	"github.com/ava-labs/txassembler/wallet/subnet/primary/common"
)

var (
	_ Backend = (*backend)(nil)

	ErrNotFound    = errors.New("not found")
	ErrMissingUTXO = errors.New("missing UTXO")
)

// Backend defines the full interface required to support a P-chain wallet.
type Backend interface {
	builder.Backend

	// AddUTXOs makes [utxos] consumable from [sourceChainID].
	AddUTXOs(ctx context.Context, sourceChainID ids.ID, utxos ...*avax.UTXO)
	SetSubnetOwner(subnetID ids.ID, owner fx.Owner)

	// AcceptTx marks the UTXOs consumed by [tx] as spent and makes the UTXOs
	// it produces available. Either all of the changes are applied or none
	// are.
	AcceptTx(ctx context.Context, txID ids.ID, tx txs.UnsignedTx) error
}

type backend struct {
	lock sync.RWMutex
	// sourceChainID -> UTXOs
	utxos map[ids.ID]*common.UTXOSet
	// subnetID -> owner
	subnetOwners map[ids.ID]fx.Owner
}

func NewBackend() Backend {
	return &backend{
		utxos:        make(map[ids.ID]*common.UTXOSet),
		subnetOwners: make(map[ids.ID]fx.Owner),
	}
}

func (b *backend) AddUTXOs(_ context.Context, sourceChainID ids.ID, utxos ...*avax.UTXO) {
	b.lock.Lock()
	defer b.lock.Unlock()

	chainUTXOs, ok := b.utxos[sourceChainID]
	if !ok {
		chainUTXOs = common.NewUTXOSet()
		b.utxos[sourceChainID] = chainUTXOs
	}
	for _, utxo := range utxos {
		chainUTXOs.Add(utxo)
	}
}

func (b *backend) UTXOs(_ context.Context, sourceChainID ids.ID) (*common.UTXOSet, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	chainUTXOs, ok := b.utxos[sourceChainID]
	if !ok {
		return common.NewUTXOSet(), nil
	}
	return chainUTXOs.Clone(), nil
}

func (b *backend) SetSubnetOwner(subnetID ids.ID, owner fx.Owner) {
	b.lock.Lock()
	defer b.lock.Unlock()

	b.subnetOwners[subnetID] = owner
}

func (b *backend) GetSubnetOwner(_ context.Context, subnetID ids.ID) (fx.Owner, error) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	owner, exists := b.subnetOwners[subnetID]
	if !exists {
		return nil, fmt.Errorf("%w: subnet %s", ErrNotFound, subnetID)
	}
	return owner, nil
}

func (b *backend) AcceptTx(_ context.Context, txID ids.ID, tx txs.UnsignedTx) error {
	b.lock.Lock()
	defer b.lock.Unlock()

	visitor := &backendVisitor{
		b:       b,
		txID:    txID,
		pending: make(map[ids.ID]*common.UTXOSet),
	}
	if err := tx.Visit(visitor); err != nil {
		return err
	}

	for chainID, chainUTXOs := range visitor.pending {
		b.utxos[chainID] = chainUTXOs
	}
	if visitor.subnetOwner != nil {
		b.subnetOwners[txID] = visitor.subnetOwner
	}
	return nil
}
