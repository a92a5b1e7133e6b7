// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/ava-labs/txassembler/ids"
	"github.com/ava-labs/txassembler/utils/constants"
	"github.com/ava-labs/txassembler/utils/formatting/address"
	"github.com/ava-labs/txassembler/vms/components/avax"
	"github.com/ava-labs/txassembler/vms/components/verify"
	"github.com/ava-labs/txassembler/vms/platformvm/stakeable"
	"github.com/ava-labs/txassembler/vms/secp256k1fx"
	"github.com/ava-labs/txassembler/wallet/chain/p"
)

var errInvalidSnapshot = errors.New("invalid snapshot")

// snapshot is the on-disk description of the UTXOs and subnets a wallet
// knows about. It can be written as YAML or JSON.
//
//	utxos:
//	- txID: 2JVSBoinj9C2J33VntvzYtVJNZdN2NKiwwKjcumHUWEb5DbBrm
//	  outputIndex: 0
//	  assetID: FvwEAhmxKfeiG8SnEvq42hc6whRyY3EFYAvebMqDNDGCgxN5Z
//	  amount: 1000000000
//	  threshold: 1
//	  addresses:
//	  - P-avax1...
//	subnets:
//	- subnetID: yH8D7ThNJkxmtkuv2jgBa4P1Rn3Qpr4pPr7QYNfcdoS6k6HWp
//	  threshold: 1
//	  addresses:
//	  - P-avax1...
type snapshot struct {
	UTXOs   []snapshotUTXO   `json:"utxos"`
	Subnets []snapshotSubnet `json:"subnets"`
}

type snapshotOwners struct {
	Locktime  uint64   `json:"locktime"`
	Threshold uint32   `json:"threshold"`
	Addresses []string `json:"addresses"`
}

type snapshotUTXO struct {
	// Chain the UTXO can be consumed from. Defaults to the P-chain.
	SourceChainID ids.ID `json:"sourceChainID"`
	TxID          ids.ID `json:"txID"`
	OutputIndex   uint32 `json:"outputIndex"`
	AssetID       ids.ID `json:"assetID"`
	Amount        uint64 `json:"amount"`
	// If non-zero, the output is only usable for staking until this time.
	StakeableLocktime uint64 `json:"stakeableLocktime"`

	snapshotOwners
}

type snapshotSubnet struct {
	SubnetID ids.ID `json:"subnetID"`

	snapshotOwners
}

func (o *snapshotOwners) owners() (*secp256k1fx.OutputOwners, error) {
	addrs, err := address.ParseToIDs(o.Addresses)
	if err != nil {
		return nil, err
	}
	owners := &secp256k1fx.OutputOwners{
		Locktime:  o.Locktime,
		Threshold: o.Threshold,
		Addrs:     addrs,
	}
	owners.Sort()
	if err := owners.Verify(); err != nil {
		return nil, err
	}
	return owners, nil
}

func (u *snapshotUTXO) utxo() (*avax.UTXO, error) {
	owners, err := u.owners()
	if err != nil {
		return nil, err
	}

	var out verify.State = &secp256k1fx.TransferOutput{
		Amt:          u.Amount,
		OutputOwners: *owners,
	}
	if u.StakeableLocktime != 0 {
		out = &stakeable.LockOut{
			Locktime:        u.StakeableLocktime,
			TransferableOut: out.(avax.TransferableOut),
		}
	}

	utxo := &avax.UTXO{
		UTXOID: avax.UTXOID{
			TxID:        u.TxID,
			OutputIndex: u.OutputIndex,
		},
		Asset: avax.Asset{ID: u.AssetID},
		Out:   out,
	}
	return utxo, utxo.Verify()
}

// loadSnapshot reads the snapshot at [path] into [backend].
func loadSnapshot(ctx context.Context, path string, backend p.Backend) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	var s snapshot
	if err := yaml.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("failed to parse snapshot: %w", err)
	}

	for i, u := range s.UTXOs {
		utxo, err := u.utxo()
		if err != nil {
			return fmt.Errorf("%w: utxo %d: %w", errInvalidSnapshot, i, err)
		}

		sourceChainID := u.SourceChainID
		if sourceChainID == ids.Empty {
			sourceChainID = constants.PlatformChainID
		}
		backend.AddUTXOs(ctx, sourceChainID, utxo)
	}

	for i, subnet := range s.Subnets {
		owners, err := subnet.owners()
		if err != nil {
			return fmt.Errorf("%w: subnet %d: %w", errInvalidSnapshot, i, err)
		}
		backend.SetSubnetOwner(subnet.SubnetID, owners)
	}
	return nil
}
